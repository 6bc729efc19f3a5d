package tint

import "github.com/lixenwraith/tween/remap"

// RGB stores explicit 8-bit color channels for renderers that consume
// integer channels (terminal cells, framebuffers).
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// FromHex parses "#rrggbb" or "rrggbb" into an RGB.
// Malformed input yields black, matching HexToRGBA.
func FromHex(hex string) RGB {
	r, g, b := parseHex(hex)
	return RGB{r, g, b}
}

// Lerp linearly interpolates between two colors.
// t=0 returns c, t=1 returns other; t is clamped to [0, 1] since
// channel extrapolation would wrap.
func (c RGB) Lerp(other RGB, t float64) RGB {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return RGB{
		R: uint8(remap.Lerp(float64(c.R), float64(other.R), t)),
		G: uint8(remap.Lerp(float64(c.G), float64(other.G), t)),
		B: uint8(remap.Lerp(float64(c.B), float64(other.B), t)),
	}
}

// Blend performs alpha blending: result = src*alpha + c*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}
