package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/getitemanim/ecs"
	"github.com/milk9111/getitemanim/ecs/component"
)

// PhysicsStep is the fixed simulation step; ebiten ticks at 60 TPS.
const PhysicsStep = 1.0 / 60.0

// PhysicsSystem moves dynamic bodies on a top-down map: no gravity, input
// sets velocity directly and map walls are static boxes.
type PhysicsSystem struct {
	space *cp.Space

	entities map[ecs.Entity]*bodyInfo
	mapEnt   ecs.Entity
	walls    []*cp.Shape
}

type bodyInfo struct {
	body  *cp.Body
	shape *cp.Shape
}

func NewPhysicsSystem() *PhysicsSystem {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncWalls(w)
	ps.syncEntities(w)
	ps.applyInput(w)

	ps.space.Step(PhysicsStep)

	ps.syncTransforms(w)
}

// syncWalls rebuilds the static wall shapes when the map entity changes.
func (ps *PhysicsSystem) syncWalls(w *ecs.World) {
	ent, ok := ecs.First(w, component.MapInfoComponent.Kind())
	if !ok {
		ent = 0
	}
	if ent == ps.mapEnt && (ent == 0 || ecs.IsAlive(w, ent)) {
		return
	}

	for _, shape := range ps.walls {
		ps.space.RemoveShape(shape)
	}
	ps.walls = ps.walls[:0]
	ps.mapEnt = ent
	if ent == 0 {
		return
	}

	info, ok := ecs.Get(w, ent, component.MapInfoComponent.Kind())
	if !ok {
		return
	}
	for _, cell := range info.Walls {
		x := float64(cell[0]) * info.TileWidth
		y := float64(cell[1]) * info.TileHeight
		shape := cp.NewBox2(ps.space.StaticBody, cp.BB{L: x, B: y, R: x + info.TileWidth, T: y + info.TileHeight}, 0)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		ps.space.AddShape(shape)
		ps.walls = append(ps.walls, shape)
	}
}

// syncEntities adds new bodies to the space and drops bodies whose entity
// is gone.
func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	seen := make(map[ecs.Entity]struct{}, len(ps.entities))
	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody) {
		if pb.Body == nil {
			return
		}
		seen[e] = struct{}{}
		if info, ok := ps.entities[e]; ok && info.body == pb.Body {
			return
		}
		ps.remove(e)
		ps.space.AddBody(pb.Body)
		if pb.Shape != nil {
			ps.space.AddShape(pb.Shape)
		}
		ps.entities[e] = &bodyInfo{body: pb.Body, shape: pb.Shape}
	})

	for e := range ps.entities {
		if _, ok := seen[e]; !ok {
			ps.remove(e)
		}
	}
}

func (ps *PhysicsSystem) remove(e ecs.Entity) {
	info, ok := ps.entities[e]
	if !ok {
		return
	}
	if info.shape != nil && ps.space.ContainsShape(info.shape) {
		ps.space.RemoveShape(info.shape)
	}
	if ps.space.ContainsBody(info.body) {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.entities, e)
}

func (ps *PhysicsSystem) applyInput(w *ecs.World) {
	ecs.ForEach3(w, component.PhysicsBodyComponent.Kind(), component.InputComponent.Kind(), component.PlayerComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, in *component.Input, p *component.Player) {
		if pb.Body == nil {
			return
		}
		pb.Body.SetVelocity(in.MoveX*p.MoveSpeed, in.MoveY*p.MoveSpeed)
	})
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil {
			return
		}
		pos := pb.Body.Position()
		t.X = pos.X - pb.Width/2
		t.Y = pos.Y - pb.Height/2
	})
}
