// internal/utils/math.go
package utils

import dmath "github.com/yohamta/donburi/features/math"

// StepTowards сдвигает from к to не более чем на maxStep. Возвращает новую
// позицию и признак того, что цель достигнута (точка поставлена ровно на to).
func StepTowards(from, to dmath.Vec2, maxStep float64) (dmath.Vec2, bool) {
	dist := from.Distance(to)
	if dist <= maxStep || dist == 0 {
		return to, true
	}
	dir := to.Sub(from).MulScalar(1 / dist)
	return from.Add(dir.MulScalar(maxStep)), false
}

// WithinRadius — евклидово расстояние не больше radius.
func WithinRadius(a, b dmath.Vec2, radius float64) bool {
	return a.Distance(b) <= radius
}
