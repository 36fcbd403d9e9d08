// Package colormath implements the color arithmetic the DrawingML and
// SpreadsheetML resolvers need: hex/RGBA conversion, HSL and HSV round trips,
// and the OOXML color transforms (tint, shade, modulation, offset, gamma,
// grayscale, complement, inverse).
//
// Colors move through the package as RGBA with 0-255 channels and a 0.0-1.0
// alpha. Resolved colors are rendered as 8-digit lowercase hex with the alpha
// last ("rrggbbaa"), the form the processed entities expose.
package colormath

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGBA is a color with byte channels and a fractional alpha.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// ParseHex parses a 6- or 8-digit hex color, with or without a leading "#".
// alphaFirst selects between the AARRGGBB layout (SpreadsheetML's ARGB
// attributes) and RRGGBBAA.
func ParseHex(s string, alphaFirst bool) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	if len(s) == 6 {
		return RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 1.0}, nil
	}
	if alphaFirst {
		return RGBA{
			R: uint8(n >> 16),
			G: uint8(n >> 8),
			B: uint8(n),
			A: float64(uint8(n>>24)) / 255.0,
		}, nil
	}
	return RGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: float64(uint8(n)) / 255.0,
	}, nil
}

// Hex renders the color as lowercase "rrggbbaa".
func (c RGBA) Hex() string {
	a := uint8(math.Round(clamp01(c.A) * 255.0))
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, a)
}

// NormalizeHex re-encodes a 6- or 8-digit hex string into the canonical
// "rrggbbaa" form. A 6-digit input gains an opaque alpha.
func NormalizeHex(s string, alphaFirst bool) (string, error) {
	c, err := ParseHex(s, alphaFirst)
	if err != nil {
		return "", err
	}
	return c.Hex(), nil
}

// HSLA is hue 0-360, saturation and lightness 0-100, alpha 0-1.
type HSLA struct {
	H, S, L float64
	A       float64
}

// ToHSL converts to HSL.
func (c RGBA) ToHSL() HSLA {
	r, g, b := float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0
	max, maxIdx := max3(r, g, b)
	min, _ := min3(r, g, b)

	l := (max + min) / 2.0
	if max == min {
		return HSLA{H: 0, S: 0, L: l * 100.0, A: c.A}
	}

	chroma := max - min
	s := chroma / (1.0 - math.Abs(2.0*l-1.0))

	var h float64
	switch maxIdx {
	case 0:
		h = (g - b) / chroma
		if g < b {
			h += 6.0
		}
	case 1:
		h = (b-r)/chroma + 2.0
	default:
		h = (r-g)/chroma + 4.0
	}
	return HSLA{H: wrapHue(h * 60.0), S: s * 100.0, L: l * 100.0, A: c.A}
}

// ToRGBA converts back from HSL.
func (c HSLA) ToRGBA() RGBA {
	h, s, l := wrapHue(c.H)/360.0, clamp01(c.S/100.0), clamp01(c.L/100.0)
	if s == 0 {
		v := uint8(math.Round(l * 255.0))
		return RGBA{R: v, G: v, B: v, A: c.A}
	}

	var q float64
	if l < 0.5 {
		q = l * (1.0 + s)
	} else {
		q = l + s - l*s
	}
	p := 2.0*l - q

	conv := func(t float64) float64 {
		if t < 0 {
			t++
		}
		if t > 1 {
			t--
		}
		switch {
		case t < 1.0/6.0:
			return p + (q-p)*6.0*t
		case t < 1.0/2.0:
			return q
		case t < 2.0/3.0:
			return p + (q-p)*(2.0/3.0-t)*6.0
		}
		return p
	}

	return RGBA{
		R: uint8(math.Round(conv(h+1.0/3.0) * 255.0)),
		G: uint8(math.Round(conv(h) * 255.0)),
		B: uint8(math.Round(conv(h-1.0/3.0) * 255.0)),
		A: c.A,
	}
}

// HSVA is hue 0-360, saturation and value 0-100, alpha 0-1.
type HSVA struct {
	H, S, V float64
	A       float64
}

// ToHSV converts to HSV.
func (c RGBA) ToHSV() HSVA {
	r, g, b := float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0
	max, maxIdx := max3(r, g, b)
	min, _ := min3(r, g, b)

	if max == min {
		return HSVA{H: 0, S: 0, V: max * 100.0, A: c.A}
	}

	diff := max - min
	var h float64
	switch maxIdx {
	case 0:
		h = (g - b) / diff
	case 1:
		h = 2.0 + (b-r)/diff
	default:
		h = 4.0 + (r-g)/diff
	}
	return HSVA{H: wrapHue(h * 60.0), S: diff / max * 100.0, V: max * 100.0, A: c.A}
}

// ToRGBA converts back from HSV.
func (c HSVA) ToRGBA() RGBA {
	h, s, v := wrapHue(c.H)/360.0, clamp01(c.S/100.0), clamp01(c.V/100.0)
	if s == 0 {
		ch := uint8(math.Round(v * 255.0))
		return RGBA{R: ch, G: ch, B: ch, A: c.A}
	}

	i := math.Floor(h * 6.0)
	f := h*6.0 - i
	p := v * (1.0 - s)
	q := v * (1.0 - f*s)
	t := v * (1.0 - (1.0-f)*s)

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return RGBA{
		R: uint8(math.Round(r * 255.0)),
		G: uint8(math.Round(g * 255.0)),
		B: uint8(math.Round(b * 255.0)),
		A: c.A,
	}
}

// ApplyTint lightens or darkens the color per the SpreadsheetML tint rule.
// tint ranges over [-1, 1]: negative darkens (-1 is 100% darken), positive
// lightens (1 is 100% lighten), 0 leaves the color unchanged.
func ApplyTint(c RGBA, tint float64) RGBA {
	if tint == 0 {
		return c
	}
	hsl := c.ToHSL()
	l := hsl.L / 100.0
	if tint < 0 {
		l *= 1.0 + tint
	} else {
		l = l*(1.0-tint) + tint
	}
	hsl.L = clamp01(l) * 100.0
	return hsl.ToRGBA()
}

// Modulate scales a 0-1 component by a percentage expressed in 1000ths of a
// percent (a 50% modulation of 0.8 yields 0.4). The result is clamped to
// [0, 1].
func Modulate(component float64, pct int64) float64 {
	return clamp01(component * float64(pct) / 100000.0)
}

// Offset shifts a 0-1 component by a percentage expressed in 1000ths of a
// percent (a 10% offset of 0.5 yields 0.6). The result is clamped to [0, 1].
func Offset(component float64, pct int64) float64 {
	return clamp01(component + float64(pct)/100000.0)
}

// Shade darkens per the DrawingML shade transform: pct of the input color
// combined with black.
func Shade(c RGBA, pct int64) RGBA {
	f := clamp01(float64(pct) / 100000.0)
	return RGBA{
		R: uint8(math.Round(float64(c.R) * f)),
		G: uint8(math.Round(float64(c.G) * f)),
		B: uint8(math.Round(float64(c.B) * f)),
		A: c.A,
	}
}

// Tint lightens per the DrawingML tint transform: pct of the input color
// combined with white.
func Tint(c RGBA, pct int64) RGBA {
	f := clamp01(float64(pct) / 100000.0)
	lift := func(ch uint8) uint8 {
		return uint8(math.Round(float64(ch)*f + 255.0*(1.0-f)))
	}
	return RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: c.A}
}

// Complement rotates the hue by 180 degrees.
func Complement(c RGBA) RGBA {
	hsv := c.ToHSV()
	hsv.H = wrapHue(hsv.H + 180.0)
	return hsv.ToRGBA()
}

// Inverse inverts each channel.
func Inverse(c RGBA) RGBA {
	return RGBA{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
}

// Grayscale converts to gray using the Rec. 601 luma weights.
func Grayscale(c RGBA) RGBA {
	gray := uint8(math.Round(0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)))
	return RGBA{R: gray, G: gray, B: gray, A: c.A}
}

// GammaShift applies the sRGB gamma shift to the value channel.
func GammaShift(c RGBA) RGBA {
	hsv := c.ToHSV()
	hsv.V = math.Pow(hsv.V/100.0, 2.2) * 100.0
	return hsv.ToRGBA()
}

// InverseGammaShift applies the inverse sRGB gamma shift.
func InverseGammaShift(c RGBA) RGBA {
	hsv := c.ToHSV()
	hsv.V = math.Pow(hsv.V/100.0, 1.0/2.2) * 100.0
	return hsv.ToRGBA()
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func wrapHue(h float64) float64 {
	for h < 0 {
		h += 360.0
	}
	for h >= 360.0 {
		h -= 360.0
	}
	return h
}

func max3(a, b, c float64) (float64, int) {
	m, idx := a, 0
	if b > m {
		m, idx = b, 1
	}
	if c > m {
		m, idx = c, 2
	}
	return m, idx
}

func min3(a, b, c float64) (float64, int) {
	m, idx := a, 0
	if b < m {
		m, idx = b, 1
	}
	if c < m {
		m, idx = c, 2
	}
	return m, idx
}
