package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// contactEpsilon is the overlap tolerance: gaps wider than this count as
// separation. Set to float32 machine epsilon so barely-touching pairs
// register as contacts.
const contactEpsilon = 1.1920929e-07

// Shape is the closed set of collidable shapes: Circle and Plane.
// The unexported method keeps the set closed so Detect can type-switch
// exhaustively.
type Shape interface {
	shape()
}

// Circle is a disc centered at Center with the given radius.
type Circle struct {
	Center rl.Vector2
	Radius float32
}

// Plane is an infinite line through Position. Rotation (radians) gives the
// direction of the unit normal: (cos, sin). Planes are static.
type Plane struct {
	Position rl.Vector2
	Rotation float32
}

func (Circle) shape() {}
func (Plane) shape()  {}

// Normal returns the plane's unit normal.
func (p Plane) Normal() rl.Vector2 {
	return rl.NewVector2(math32.Cos(p.Rotation), math32.Sin(p.Rotation))
}

// Detect reports whether two shapes overlap. On contact the returned vector
// is the minimum translation for the first shape: it points from b toward a
// and its length is the penetration depth, so pushing a by the vector (or
// splitting it across the pair) separates them. Plane-plane pairs never
// contact.
func Detect(a, b Shape) (rl.Vector2, bool) {
	switch a := a.(type) {
	case Circle:
		switch b := b.(type) {
		case Circle:
			return circleCircle(a, b)
		case Plane:
			return circlePlane(a, b)
		}
	case Plane:
		if c, ok := b.(Circle); ok {
			// Same contact seen from the plane's side.
			mtv, hit := circlePlane(c, a)
			return rl.Vector2Scale(mtv, -1), hit
		}
	}
	return rl.Vector2{}, false
}

// circleCircle measures the gap between the two circles' surfaces. The gap
// is negative on contact; scaling the a->b direction by it yields a vector
// from b toward a with the (positive) penetration depth as its length.
func circleCircle(a, b Circle) (rl.Vector2, bool) {
	d := rl.Vector2Subtract(b.Center, a.Center)
	overlap := rl.Vector2Length(d) - (a.Radius + b.Radius)
	if overlap > contactEpsilon {
		return rl.Vector2{}, false
	}
	return rl.Vector2Scale(safeNormalize(d), overlap), true
}

// circlePlane projects the center onto the plane normal; the perpendicular
// component's length against the radius gives the gap. Contact on either
// side of the plane counts.
func circlePlane(c Circle, p Plane) (rl.Vector2, bool) {
	n := p.Normal()
	v := rl.Vector2Subtract(c.Center, p.Position)
	perp := rl.Vector2Scale(n, rl.Vector2DotProduct(v, n))
	gap := rl.Vector2Length(perp) - c.Radius
	if gap > contactEpsilon {
		return rl.Vector2{}, false
	}
	return rl.Vector2Scale(safeNormalize(perp), -gap), true
}

// safeNormalize returns the unit vector of v, falling back to +X for a
// zero-length input (coincident centers, a center exactly on a plane) so
// contact resolution never sees NaN.
func safeNormalize(v rl.Vector2) rl.Vector2 {
	length := rl.Vector2Length(v)
	if length == 0 {
		return rl.NewVector2(1, 0)
	}
	return rl.Vector2Scale(v, 1/length)
}
