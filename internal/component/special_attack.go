package component

import (
	"time"

	"go-pub-defense/internal/defs"
)

// SpecialAttack — особая атака игрока с текущей перезарядкой.
type SpecialAttack struct {
	Def             defs.SpecialAttackDefinition
	CurrentCooldown time.Duration
}

// Ready reports whether the attack can be used now.
func (s *SpecialAttack) Ready() bool {
	return s.CurrentCooldown <= 0
}
