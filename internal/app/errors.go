package app

import "errors"

// Отказы команд. Булевы обертки (PlaceTower и т.п.) сводят их к false.
var (
	ErrUnknownTowerType     = errors.New("unknown tower type")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidPlacement     = errors.New("invalid tower placement")
	ErrTowerNotFound        = errors.New("tower not found")
	ErrUnknownSpecialAttack = errors.New("unknown special attack")
	ErrOnCooldown           = errors.New("special attack on cooldown")
	ErrRunOver              = errors.New("run is over")
	ErrTickDiscarded        = errors.New("simulation tick discarded")
)
