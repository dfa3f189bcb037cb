package color

import "math"

// Coefficients of the display curve f(x) = (curveA*x + curveB) * x.
// f(0) = 0, f(1) = 1 and f is strictly increasing on [0,1]
// (its vertex lies at x ≈ 1.044).
const (
	curveA = -0.9192
	curveB = 1.9192
)

// ToDisplay maps a linear value in [0,1] to a display-encoded value in [0,1]
// using a quadratic approximation of the sRGB transfer curve.
// Inputs outside [0,1] are clamped.
func ToDisplay(x float32) float32 {
	x = clamp01(x)
	return (curveA*x + curveB) * x
}

// FromDisplay inverts ToDisplay on [0,1].
func FromDisplay(y float32) float32 {
	y = clamp01(y)
	// Root of curveA*x² + curveB*x - y = 0 that lies in [0,1].
	// Computed in float64: the discriminant nearly cancels at y = 1.
	d := curveB*curveB + 4*curveA*float64(y)
	if d < 0 {
		d = 0
	}
	return clamp01(float32((-curveB + math.Sqrt(d)) / (2 * curveA)))
}

// Encode8 returns clamp_round(255 * ToDisplay(x)).
func Encode8(x float32) uint8 {
	return clampAndRound(ToDisplay(x))
}

// Decode8 maps an 8-bit display value back to linear light.
func Decode8(v uint8) float32 {
	return FromDisplay(float32(v) / 255)
}

// LinearToSRGB is the exact piecewise sRGB encoding (OETF).
// The display curve above approximates it; tests use it as the reference.
func LinearToSRGB(l float32) float32 {
	l = clamp01(l)
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// clamp01 clamps v to [0,1]. NaN maps to 0.
func clamp01(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}
