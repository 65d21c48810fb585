package event

const (
	WaveStarted       EventType = "WaveStarted"       // Волна началась
	WaveCompleted     EventType = "WaveCompleted"     // Волна пройдена, награда выдана
	EnemySpawned      EventType = "EnemySpawned"
	EnemyKilled       EventType = "EnemyKilled"       // Враг убит (золото и очко начислены)
	EnemyLeaked       EventType = "EnemyLeaked"       // Враг дошёл до конца пути
	TowerPlaced       EventType = "TowerPlaced"       // Башня построена
	TowerUpgraded     EventType = "TowerUpgraded"
	TowerSold         EventType = "TowerSold"
	SpecialAttackUsed EventType = "SpecialAttackUsed"
	BossAbilityUsed   EventType = "BossAbilityUsed"
	GameOver          EventType = "GameOver"
	Victory           EventType = "Victory"
	GameReset         EventType = "GameReset"
	TickDiscarded     EventType = "TickDiscarded"     // Кадр отброшен после паники
)
