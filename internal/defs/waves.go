package defs

import "time"

// EnemyGroup is one batch of identical enemies inside a wave.
type EnemyGroup struct {
	Type         EnemyType `yaml:"type"`
	Count        int       `yaml:"count"`
	DelayMs      int       `yaml:"delay"`      // between units of the group
	StartDelayMs int       `yaml:"startDelay"` // from wave start to the first unit
}

// SpawnOffset returns when the i-th unit of the group fires, relative to wave start.
func (g EnemyGroup) SpawnOffset(i int) time.Duration {
	return Ms(g.StartDelayMs) + time.Duration(i)*Ms(g.DelayMs)
}

// WaveDefinition описывает одну волну: группы врагов и награду за её прохождение.
type WaveDefinition struct {
	Enemies []EnemyGroup `yaml:"enemies"`
	Reward  int          `yaml:"reward"`
}

// TotalUnits is the number of spawns the wave will schedule.
func (w WaveDefinition) TotalUnits() int {
	total := 0
	for _, g := range w.Enemies {
		total += g.Count
	}
	return total
}

// defaultWaves определяет последовательность волн в игре. Индекс 0 — первая волна.
var defaultWaves = []WaveDefinition{
	{Reward: 50, Enemies: []EnemyGroup{{Type: EnemyGoblin, Count: 8, DelayMs: 1000}}},
	{Reward: 60, Enemies: []EnemyGroup{{Type: EnemyGoblin, Count: 10, DelayMs: 900}}},
	{Reward: 70, Enemies: []EnemyGroup{
		{Type: EnemyGoblin, Count: 8, DelayMs: 900},
		{Type: EnemyWolf, Count: 5, DelayMs: 600, StartDelayMs: 4000},
	}},
	{Reward: 80, Enemies: []EnemyGroup{
		{Type: EnemyWolf, Count: 12, DelayMs: 500},
		{Type: EnemyOrc, Count: 3, DelayMs: 1500, StartDelayMs: 3000},
	}},
	{Reward: 100, Enemies: []EnemyGroup{
		{Type: EnemyOrc, Count: 8, DelayMs: 1200},
		{Type: EnemyGoblin, Count: 12, DelayMs: 400, StartDelayMs: 2000},
	}},
	{Reward: 150, Enemies: []EnemyGroup{
		{Type: EnemyGoblin, Count: 10, DelayMs: 500},
		{Type: EnemyGoblinKing, Count: 1, StartDelayMs: 6000},
	}},
	{Reward: 120, Enemies: []EnemyGroup{
		{Type: EnemyTroll, Count: 4, DelayMs: 2000},
		{Type: EnemyWolf, Count: 15, DelayMs: 400, StartDelayMs: 1000},
	}},
	{Reward: 140, Enemies: []EnemyGroup{
		{Type: EnemyOrc, Count: 12, DelayMs: 800},
		{Type: EnemyTroll, Count: 4, DelayMs: 1800, StartDelayMs: 5000},
	}},
	{Reward: 160, Enemies: []EnemyGroup{
		{Type: EnemyWolf, Count: 20, DelayMs: 300},
		{Type: EnemyTroll, Count: 6, DelayMs: 1500, StartDelayMs: 3000},
		{Type: EnemyOrc, Count: 10, DelayMs: 700, StartDelayMs: 6000},
	}},
	{Reward: 300, Enemies: []EnemyGroup{
		{Type: EnemyOrc, Count: 10, DelayMs: 700},
		{Type: EnemyOgreChief, Count: 1, StartDelayMs: 8000},
	}},
}
