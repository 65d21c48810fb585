// internal/interfaces/game_context.go
package interfaces

import "time"

// Scheduler откладывает действие на игровое время. Реализуется scheduler.Queue.
type Scheduler interface {
	Now() time.Duration
	After(delay time.Duration, label string, fn func())
}
