package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to its chipmunk body. The transform is the
// top-left of the box; the body position is its center.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
