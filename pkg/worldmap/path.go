// Package worldmap supplies the waypoint paths enemies walk. It is pure data:
// the simulation only needs an ordered list of at least two points.
package worldmap

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

var (
	ErrPathTooShort = errors.New("path needs at least two waypoints")
	ErrUnknownWorld = errors.New("unknown world")
)

// Path is an ordered waypoint list; Path[0] is the enemy entry point.
type Path []dmath.Vec2

// Validate reports whether the path can be walked.
func (p Path) Validate() error {
	if len(p) < 2 {
		return fmt.Errorf("%w: got %d", ErrPathTooShort, len(p))
	}
	return nil
}

// Entry is where enemies spawn.
func (p Path) Entry() dmath.Vec2 {
	return p[0]
}

// Length is the total polyline length in pixels.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += p[i].Distance(p[i-1])
	}
	return total
}

// DistanceTo returns the shortest distance from pt to any segment of the path.
func (p Path) DistanceTo(pt dmath.Vec2) float64 {
	if len(p) == 0 {
		return math.Inf(1)
	}
	if len(p) == 1 {
		return p[0].Distance(pt)
	}
	best := math.Inf(1)
	for i := 1; i < len(p); i++ {
		if d := segmentDistance(p[i-1], p[i], pt); d < best {
			best = d
		}
	}
	return best
}

// Clone returns a copy that does not share the backing array.
func (p Path) Clone() Path {
	return append(Path(nil), p...)
}

func segmentDistance(a, b, pt dmath.Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return a.Distance(pt)
	}
	ap := pt.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = math.Max(0, math.Min(1, t))
	closest := a.Add(ab.MulScalar(t))
	return closest.Distance(pt)
}
