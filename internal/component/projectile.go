// internal/component/projectile.go
package component

import "go-pub-defense/internal/types"

// Projectile представляет летящий самонаводящийся снаряд.
type Projectile struct {
	ID       types.EntityID
	Position Position
	TargetID types.EntityID
	Damage   float64
	Speed    float64 // пикселей в секунду
	TowerID  types.EntityID
}
