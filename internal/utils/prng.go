// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-pub-defense/internal/defs"
)

// PRNGService — обертка над генератором случайных чисел, чтобы весь случайный
// выбор в симуляции шел от одного сида и был воспроизводим.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает сервис с указанным сидом. При сиде 0 берется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// ChooseWeighted выбирает тип приспешника с учетом весов. Пустая таблица дает "".
func (s *PRNGService) ChooseWeighted(entries []defs.MinionEntry) defs.EnemyType {
	if len(entries) == 0 {
		return ""
	}

	totalWeight := 0
	for _, entry := range entries {
		if entry.Weight > 0 {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return entries[0].Type
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if entry.Weight <= 0 {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Type
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Type
}
