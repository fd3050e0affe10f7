package ecs

import "github.com/milk9111/getitemanim/ecs/component"

// World owns entities, component storage and the system order.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	frame     uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once. One call is one frame tick.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.frame++
	w.scheduler.Update(w)
}

// Frame returns the number of completed Update calls.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Clear destroys every entity but keeps the systems.
func (w *World) Clear() {
	if w == nil {
		return
	}
	for _, e := range w.entities.all() {
		DestroyEntity(w, e)
	}
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}
