package ecs

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

const collisionTypeObstacle cp.CollisionType = 1

// sweepSkin keeps a swept body this far short of the surface it hit so the
// next sweep does not start in contact.
const sweepSkin = 0.01

// PhysicsWorld owns the Chipmunk space that indexes static obstacles in the
// ground plane (X/Y). Each shape carries a vertical extent so sweeps resolve
// in 3D: Chipmunk's spatial index provides the candidates, and a slab test
// against the full box decides the hit.
type PhysicsWorld struct {
	space *cp.Space

	shapeToEntity map[*cp.Shape]Entity
	extents       map[*cp.Shape]box

	groundZ     float64
	groundSolid bool
}

type box struct {
	min mgl.Vec3
	max mgl.Vec3
}

// SweepHit describes the first blocking contact along a sweep.
type SweepHit struct {
	// Fraction of the requested displacement travelled before contact.
	Fraction float64
	Point    mgl.Vec3
	Normal   mgl.Vec3
	// Entity is the obstacle that was hit; zero for the ground plane.
	Entity Entity
}

// NewPhysicsWorld creates an empty physics world with a solid ground plane at
// Z = 0.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetGravity(cp.Vector{})
	return &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
		extents:       make(map[*cp.Shape]box),
		groundSolid:   true,
	}
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// SetGround configures the ground plane. A non-solid ground lets sweeps pass
// below z.
func (pw *PhysicsWorld) SetGround(z float64, solid bool) {
	if pw == nil {
		return
	}
	pw.groundZ = z
	pw.groundSolid = solid
}

// Ground returns the ground height and whether it blocks.
func (pw *PhysicsWorld) Ground() (float64, bool) {
	if pw == nil {
		return 0, false
	}
	return pw.groundZ, pw.groundSolid
}

// AddObstacle registers a static box for entity e. Corners may be given in
// any order.
func (pw *PhysicsWorld) AddObstacle(e Entity, a, b mgl.Vec3) {
	if pw == nil || pw.space == nil {
		return
	}
	lo := mgl.Vec3{min(a.X(), b.X()), min(a.Y(), b.Y()), min(a.Z(), b.Z())}
	hi := mgl.Vec3{max(a.X(), b.X()), max(a.Y(), b.Y()), max(a.Z(), b.Z())}

	bb := cp.BB{L: float64(lo.X()), B: float64(lo.Y()), R: float64(hi.X()), T: float64(hi.Y())}
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	shape.SetCollisionType(collisionTypeObstacle)
	pw.space.AddShape(shape)

	pw.shapeToEntity[shape] = e
	pw.extents[shape] = box{min: lo, max: hi}
}

// ObstacleCount reports the number of registered obstacles.
func (pw *PhysicsWorld) ObstacleCount() int {
	if pw == nil {
		return 0
	}
	return len(pw.extents)
}

// Sweep moves a sphere of the given radius from `from` to `to` and returns the
// first blocking contact, if any.
func (pw *PhysicsWorld) Sweep(from, to mgl.Vec3, radius float64) (SweepHit, bool) {
	if pw == nil || pw.space == nil {
		return SweepHit{}, false
	}
	d := to.Sub(from)
	if d.Len() == 0 {
		return SweepHit{}, false
	}
	r := float32(radius)

	best := SweepHit{Fraction: math.Inf(1)}
	found := false

	// Candidate shapes are those whose footprint touches the swept bounds.
	bb := cp.BB{
		L: float64(min(from.X(), to.X()) - r),
		B: float64(min(from.Y(), to.Y()) - r),
		R: float64(max(from.X(), to.X()) + r),
		T: float64(max(from.Y(), to.Y()) + r),
	}
	pw.space.BBQuery(bb, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		ext, ok := pw.extents[shape]
		if !ok {
			return
		}
		grown := box{
			min: ext.min.Sub(mgl.Vec3{r, r, r}),
			max: ext.max.Add(mgl.Vec3{r, r, r}),
		}
		t, normal, hit := segmentBoxHit(from, d, grown)
		if !hit || t >= best.Fraction {
			return
		}
		best = SweepHit{Fraction: t, Normal: normal, Entity: pw.shapeToEntity[shape]}
		found = true
	}, nil)

	if pw.groundSolid && d.Z() < 0 {
		floor := float32(pw.groundZ) + r
		if to.Z() < floor {
			t := 0.0
			if from.Z() > floor {
				t = float64((from.Z() - floor) / (from.Z() - to.Z()))
			}
			if t < best.Fraction {
				best = SweepHit{Fraction: t, Normal: mgl.Vec3{0, 0, 1}}
				found = true
			}
		}
	}

	if !found {
		return SweepHit{}, false
	}
	best.Point = from.Add(d.Mul(float32(best.Fraction)))
	return best, true
}

// Resolve returns where a sweep from `from` along d ends given hit, backed
// off by a small skin along the direction of travel.
func Resolve(from, d mgl.Vec3, hit SweepHit) mgl.Vec3 {
	length := d.Len()
	if length == 0 {
		return from
	}
	travel := float32(hit.Fraction)*length - sweepSkin
	if travel <= 0 {
		return from
	}
	return from.Add(d.Mul(travel / length))
}

// segmentBoxHit runs a slab test of the segment from+t*d, t in [0,1], against
// b. It returns the entry parameter and the face normal at entry. A segment
// that starts inside b hits at t=0 with the normal opposing the dominant
// direction of travel.
func segmentBoxHit(from, d mgl.Vec3, b box) (float64, mgl.Vec3, bool) {
	tmin := math.Inf(-1)
	tmax := math.Inf(1)
	var normal mgl.Vec3

	for axis := 0; axis < 3; axis++ {
		o := float64(from[axis])
		dir := float64(d[axis])
		lo := float64(b.min[axis])
		hi := float64(b.max[axis])
		if dir == 0 {
			if o < lo || o > hi {
				return 0, mgl.Vec3{}, false
			}
			continue
		}
		t1 := (lo - o) / dir
		t2 := (hi - o) / dir
		n := mgl.Vec3{}
		n[axis] = -1
		if t1 > t2 {
			t1, t2 = t2, t1
			n[axis] = 1
		}
		if t1 > tmin {
			tmin = t1
			normal = n
		}
		tmax = math.Min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 || tmin > 1 {
		return 0, mgl.Vec3{}, false
	}
	if tmin < 0 {
		// started inside
		return 0, dominantOpposing(d), true
	}
	return tmin, normal, true
}

func dominantOpposing(d mgl.Vec3) mgl.Vec3 {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(float64(d[i])) > math.Abs(float64(d[axis])) {
			axis = i
		}
	}
	n := mgl.Vec3{}
	if d[axis] > 0 {
		n[axis] = -1
	} else {
		n[axis] = 1
	}
	return n
}
