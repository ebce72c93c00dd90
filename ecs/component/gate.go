package component

import mgl "github.com/go-gl/mathgl/mgl32"

// Gate is a finish volume that sends the player to TargetLevel when entered.
// Min and Max are world-space corners.
type Gate struct {
	ID          string
	TargetLevel string
	Min         mgl.Vec3
	Max         mgl.Vec3
}

func (g *Gate) Contains(p mgl.Vec3) bool {
	return p.X() >= g.Min.X() && p.X() <= g.Max.X() &&
		p.Y() >= g.Min.Y() && p.Y() <= g.Max.Y() &&
		p.Z() >= g.Min.Z() && p.Z() <= g.Max.Z()
}

var GateComponent = NewComponent[Gate]()
