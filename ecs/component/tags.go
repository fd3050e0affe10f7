package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type MapTag struct{}

var MapTagComponent = NewComponent[MapTag]()

type HintTag struct{}

var HintTagComponent = NewComponent[HintTag]()
