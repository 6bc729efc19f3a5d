// Package tint interpolates colors expressed as CSS-style strings or
// explicit 8-bit channel structs. String interpolation re-parses its
// inputs on every call and never fails: unparseable colors degrade to
// opaque black rather than returning an error, keeping the package safe
// on render hot paths.
package tint

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lixenwraith/tween/remap"
)

// numberPattern matches integer or decimal substrings in channel order.
var numberPattern = regexp.MustCompile(`\d*\.?\d+`)

// channels holds one parsed color: r/g/b in [0, 255], a in [0, 1].
type channels struct {
	r, g, b, a float64
}

// fallback is the tuple used for colors that fail to parse.
var fallback = channels{0, 0, 0, 1}

// parseChannels extracts up to four numeric substrings from s in order
// of appearance. The first three become r, g, b; a fourth, if present,
// becomes alpha, otherwise alpha is 1. Fewer than three numbers means
// the string is unparseable and yields the black fallback.
func parseChannels(s string) channels {
	nums := numberPattern.FindAllString(s, 4)
	if len(nums) < 3 {
		return fallback
	}

	vals := make([]float64, 0, 4)
	for _, n := range nums {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return fallback
		}
		vals = append(vals, v)
	}

	c := channels{r: vals[0], g: vals[1], b: vals[2], a: 1}
	if len(vals) >= 4 {
		c.a = vals[3]
	}
	return c
}

// MergeRGB interpolates between two color strings and formats the
// result. Accepted inputs are any strings carrying numeric substrings
// in channel order ("rgb(...)", "rgba(...)" and equivalents); a missing
// alpha defaults to 1. Red, green and blue interpolate via Lerp and
// round to the nearest integer; alpha interpolates unrounded.
//
// The output is "rgb(r, g, b)" when the interpolated alpha is exactly
// 1, "rgba(r, g, b, a)" otherwise.
func MergeRGB(colorA, colorB string, progress float64) string {
	ca := parseChannels(colorA)
	cb := parseChannels(colorB)

	r := int(math.Round(remap.Lerp(ca.r, cb.r, progress)))
	g := int(math.Round(remap.Lerp(ca.g, cb.g, progress)))
	b := int(math.Round(remap.Lerp(ca.b, cb.b, progress)))
	a := remap.Lerp(ca.a, cb.a, progress)

	if a == 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, a)
}

// parseHex splits a hex color into consecutive two-character base-16
// groups and returns the first three as r, g, b. A leading '#' is
// tolerated and stripped before pairing. Malformed input (short string
// or a non-hex pair) falls back to 0, 0, 0.
func parseHex(hex string) (r, g, b uint8) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) < 6 {
		return 0, 0, 0
	}

	var out [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0
		}
		out[i] = uint8(v)
	}
	return out[0], out[1], out[2]
}

// HexToRGBA converts a hex color ("#rrggbb" or "rrggbb") into an
// "rgba(r, g, b, a)" string with the supplied alpha. Unlike MergeRGB it
// always emits the rgba form, including for alpha 1.
func HexToRGBA(hex string, alpha float64) string {
	r, g, b := parseHex(hex)
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", r, g, b, alpha)
}
