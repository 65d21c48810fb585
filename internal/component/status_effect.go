// internal/component/status_effect.go
package component

import (
	"time"

	"go-pub-defense/internal/types"
)

// EffectKind — вид статус-эффекта.
type EffectKind string

const (
	EffectStun   EffectKind = "stun"
	EffectShield EffectKind = "shield"
)

// StatusEffect — временный эффект на враге.
type StatusEffect struct {
	ID        types.EntityID
	Kind      EffectKind
	Factor    float64       // множитель скорости; 1 — не влияет
	ExpiresAt time.Duration // игровое время окончания
}

// HasEffect reports whether the enemy currently carries an effect of the given kind.
func (e *Enemy) HasEffect(kind EffectKind) bool {
	for _, eff := range e.Effects {
		if eff.Kind == kind {
			return true
		}
	}
	return false
}

// RecalculateSpeed rebuilds Speed from BaseSpeed. With no effects left Speed equals BaseSpeed exactly.
func (e *Enemy) RecalculateSpeed() {
	speed := e.BaseSpeed
	for _, eff := range e.Effects {
		speed *= eff.Factor
	}
	e.Speed = speed
}
