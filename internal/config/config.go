// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 960
	ScreenHeight = 640
	MaxDeltaTime = 0.06 // секунды; длинные кадры обрезаются

	StartingGold  = 200
	StartingLives = 20

	// Скорость врагов задана в пикселях за кадр при 60 FPS.
	FrameRateNormalization = 60.0
	SnapThreshold          = 15.0 // радиус прибытия на точку пути
	HitThreshold           = 10.0 // радиус попадания снаряда

	ProjectileSpeed = 400.0 // pixels per second

	UpgradeDamageMultiplier      = 1.5
	UpgradeRangeMultiplier       = 1.1
	UpgradeAttackSpeedMultiplier = 1.2
	SellRefundRatio              = 0.75

	MaxGameSpeed = 4.0

	// Отступы при установке башен (в пикселях)
	DefaultPathClearance = 20.0
	DefaultTowerSpacing  = 30.0

	TextOffsetX = 8
	TextOffsetY = 16
	LineHeight  = 16
)

// GameSpeeds — значения, которые перебирает кнопка скорости.
var GameSpeeds = []float64{1, 2, 4}

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	WaveStateColor  = color.RGBA{220, 60, 60, 255}
	BuildStateColor = color.RGBA{70, 130, 180, 255}
)
