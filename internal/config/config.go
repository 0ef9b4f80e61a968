// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 648
	HUDHeight    = 48

	BeamHalfLength = 200.0
	BeamThickness  = 20.0
	BeamCapRadius  = 20.0

	ProjectileSpeed  = 500.0 // units per second
	ProjectileRadius = 10.0

	// Front view
	FrontProjectileRadius = 3 * ProjectileRadius
	FrontDepthScale       = 1.6
	FrontBeamBaseHalf     = 60.0
	FrontBeamTopHalf      = BeamThickness / 2
	FrontHorizonWidth     = 2.0

	DefaultAngularSpeed = 1.0 // rad/s
	MinAngularSpeed     = -3.0
	MaxAngularSpeed     = 3.0

	SliderX      = 20
	SliderY      = 18
	SliderWidth  = 260
	SliderHeight = 12
	SliderKnob   = 9.0

	ButtonY          = 12
	ButtonWidth      = 80
	ButtonHeight     = 24
	LaunchButtonX    = 440
	ResetButtonX     = 530
	StatsX           = 630
	IndicatorOffsetX = 30
	IndicatorRadius  = 10.0

	FontSize = 14
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	HUDColor         = color.RGBA{32, 32, 46, 255}
	BeamColor        = color.RGBA{70, 130, 180, 255}
	BeamCapColor     = color.RGBA{50, 205, 50, 255}
	ProjectileColor  = color.RGBA{255, 0, 0, 255}
	SkyColor         = color.RGBA{135, 190, 235, 255}
	GroundColor      = color.RGBA{110, 150, 80, 255}
	HorizonColor     = color.RGBA{240, 240, 240, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	SliderTrackColor = color.RGBA{70, 70, 90, 255}
	SliderKnobColor  = color.RGBA{194, 178, 128, 255}
	ButtonColor      = color.RGBA{90, 90, 120, 255}
	AttachedColor    = color.RGBA{128, 128, 128, 255}
	LaunchedColor    = ProjectileColor
	SeparatorColor   = color.RGBA{0, 0, 0, 255}
)
