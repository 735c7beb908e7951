package constants

// Line geometry, half-open ranges
const (
	MinLineLength = 3
	MaxLineLength = 15

	MinLineSpeed = 0.5
	MaxLineSpeed = 1.5
)

// Brightness ramp: Base + value * Span * (speed / MaxLineSpeed * SpeedWeight)
const (
	BrightnessBase        = 0.3
	BrightnessSpan        = 0.7
	BrightnessSpeedWeight = 0.8
)

// GlyphSet is the alphanumeric set glyphs are drawn from, in draw-index order
const GlyphSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789"
