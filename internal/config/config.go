package config

import "time"

const (
	WindowWidth  = 1280
	WindowHeight = 800
	WindowTitle  = "Motioncraft - Esc/Q: Quit"

	// Background particle field
	ParticleCount      = 80
	MaxDeviceScale     = 2.0
	WrapMargin         = 10.0
	ParallaxAmplitude  = 10.0
	VelocitySpread     = 0.2 // components drawn from [-0.1, 0.1)
	RadiusMin          = 0.5
	RadiusSpread       = 2.0
	AlphaMin           = 0.2
	AlphaSpread        = 0.6
	HueTeal            = 175.0
	HueViolet          = 270.0
	ParticleSaturation = 0.9
	ParticleLightness  = 0.6
	GlowAlphaFactor    = 0.8
	GlowBlur           = 8.0

	// Page layout
	HeaderHeight    = 64
	ScrollGap       = 10 // extra space kept above an anchor target
	NavBreakpoint   = 720
	RevealThreshold = 0.15
	RevealFade      = 600 * time.Millisecond
	ScrollFrequency = 6.0
	ScrollDamping   = 1.0
	WheelStep       = 60.0

	// Showcase tiles
	TileWidth      = 260
	TileHeight     = 160
	TileGap        = 24
	ToggleSize     = 28
	MixerRate      = 44100
	VisualRingSize = 8192
	MeterBands     = 24
	MeterSmoothing = 0.6

	// Contact form
	ContactEndpoint = "https://formspree.io/f/xeopjdew"
	SubmitTimeout   = 15 * time.Second
)
