package model

import (
	"math"

	"github.com/tsawler/cellula/dml"
	"github.com/tsawler/cellula/internal/colormath"
	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/sml"
)

// defaultPalette is the built-in indexed color table. Indices 0-7 repeat at
// 8-15 (the legacy chart foreground/background pairs); 64 and 65 are the
// system foreground and background.
var defaultPalette = []string{
	"000000ff", "ffffffff", "ff0000ff", "00ff00ff",
	"0000ffff", "ffff00ff", "ff00ffff", "00ffffff",
	"000000ff", "ffffffff", "ff0000ff", "00ff00ff",
	"0000ffff", "ffff00ff", "ff00ffff", "00ffffff",
	"800000ff", "008000ff", "000080ff", "808000ff",
	"800080ff", "008080ff", "c0c0c0ff", "808080ff",
	"9999ffff", "993366ff", "ffffccff", "ccffffff",
	"660066ff", "ff8080ff", "0066ccff", "ccccffff",
	"000080ff", "ff00ffff", "ffff00ff", "00ffffff",
	"800080ff", "800000ff", "008080ff", "0000ffff",
	"00ccffff", "ccffffff", "ccffccff", "ffff99ff",
	"99ccffff", "ff99ccff", "cc99ffff", "ffcc99ff",
	"3366ffff", "33ccccff", "99cc00ff", "ffcc00ff",
	"ff9900ff", "ff6600ff", "666699ff", "969696ff",
	"003366ff", "339966ff", "003300ff", "333300ff",
	"993300ff", "993366ff", "333399ff", "333333ff",
	"000000ff", "ffffffff",
}

// schemeSlotFallback supplies a concrete color for a scheme slot when no
// theme part is available. The values are the Office default theme.
var schemeSlotFallback = map[string]string{
	"dk1": "000000ff", "tx1": "000000ff",
	"lt1": "ffffffff", "bg1": "ffffffff",
	"dk2": "44546aff", "tx2": "44546aff",
	"lt2": "e7e6e6ff", "bg2": "e7e6e6ff",
	"accent1":  "4472c4ff",
	"accent2":  "ed7d31ff",
	"accent3":  "a5a5a5ff",
	"accent4":  "ffc000ff",
	"accent5":  "5b9bd5ff",
	"accent6":  "70ad47ff",
	"hlink":    "0563c1ff",
	"folHlink": "954f72ff",
}

// presetColors maps the prstClr token set to hex. "transparent" is the one
// entry with a non-opaque alpha.
var presetColors = map[string]string{
	"aliceBlue": "f0f8ff", "antiqueWhite": "faebd7", "aqua": "00ffff",
	"aquamarine": "7fffd4", "azure": "f0ffff", "beige": "f5f5dc",
	"bisque": "ffe4c4", "black": "000000", "blanchedAlmond": "ffebcd",
	"blue": "0000ff", "blueViolet": "8a2be2", "brown": "a52a2a",
	"burlyWood": "deb887", "cadetBlue": "5f9ea0", "chartreuse": "7fff00",
	"chocolate": "d2691e", "coral": "ff7f50", "cornflowerBlue": "6495ed",
	"cornsilk": "fff8dc", "crimson": "dc143c", "cyan": "00ffff",
	"dkBlue": "00008b", "darkBlue": "00008b",
	"dkCyan": "008b8b", "darkCyan": "008b8b",
	"dkGoldenrod": "b8860b", "darkGoldenrod": "b8860b",
	"dkGray": "a9a9a9", "darkGray": "a9a9a9",
	"dkGrey": "a9a9a9", "darkGrey": "a9a9a9",
	"dkGreen": "006400", "darkGreen": "006400",
	"dkKhaki": "bdb76b", "darkKhaki": "bdb76b",
	"dkMagenta": "8b008b", "darkMagenta": "8b008b",
	"dkOliveGreen": "556b2f", "darkOliveGreen": "556b2f",
	"dkOrange": "ff8c00", "darkOrange": "ff8c00",
	"dkOrchid": "9932cc", "darkOrchid": "9932cc",
	"dkRed": "8b0000", "darkRed": "8b0000",
	"dkSalmon": "e9967a", "darkSalmon": "e9967a",
	"dkSeaGreen": "8fbc8f", "darkSeaGreen": "8fbc8f",
	"dkSlateBlue": "483d8b", "darkSlateBlue": "483d8b",
	"dkSlateGray": "2f4f4f", "darkSlateGray": "2f4f4f",
	"dkSlateGrey": "2f4f4f", "darkSlateGrey": "2f4f4f",
	"dkTurquoise": "00ced1", "darkTurquoise": "00ced1",
	"dkViolet": "9400d3", "darkViolet": "9400d3",
	"deepPink": "ff1493", "deepSkyBlue": "00bfff",
	"dimGray": "696969", "dimGrey": "696969",
	"dodgerBlue": "1e90ff", "firebrick": "b22222",
	"floralWhite": "fffaf0", "forestGreen": "228b22", "fuchsia": "ff00ff",
	"gainsboro": "dcdcdc", "ghostWhite": "f8f8ff", "gold": "ffd700",
	"goldenrod": "daa520", "gray": "808080", "grey": "808080",
	"green": "008000", "greenYellow": "adff2f", "honeydew": "f0fff0",
	"hotPink": "ff69b4", "indianRed": "cd5c5c", "indigo": "4b0082",
	"ivory": "fffff0", "khaki": "f0e68c", "lavender": "e6e6fa",
	"lavenderBlush": "fff0f5", "lawnGreen": "7cfc00",
	"lemonChiffon": "fffacd",
	"ltBlue":       "add8e6", "lightBlue": "add8e6",
	"ltCoral": "f08080", "lightCoral": "f08080",
	"ltCyan": "e0ffff", "lightCyan": "e0ffff",
	"ltGoldenrodYellow": "fafad2", "lightGoldenrodYellow": "fafad2",
	"ltGray": "d3d3d3", "lightGray": "d3d3d3",
	"ltGrey": "d3d3d3", "lightGrey": "d3d3d3",
	"ltGreen": "90ee90", "lightGreen": "90ee90",
	"ltPink": "ffb6c1", "lightPink": "ffb6c1",
	"ltSalmon": "ffa07a", "lightSalmon": "ffa07a",
	"ltSeaGreen": "20b2aa", "lightSeaGreen": "20b2aa",
	"ltSkyBlue": "87cefa", "lightSkyBlue": "87cefa",
	"ltSlateGray": "778899", "lightSlateGray": "778899",
	"ltSlateGrey": "778899", "lightSlateGrey": "778899",
	"ltSteelBlue": "b0c4de", "lightSteelBlue": "b0c4de",
	"ltYellow": "ffffe0", "lightYellow": "ffffe0",
	"lime": "00ff00", "limeGreen": "32cd32", "linen": "faf0e6",
	"magenta": "ff00ff", "maroon": "800000",
	"medAquamarine": "66cdaa", "mediumAquamarine": "66cdaa",
	"medBlue": "0000cd", "mediumBlue": "0000cd",
	"medOrchid": "ba55d3", "mediumOrchid": "ba55d3",
	"medPurple": "9370db", "mediumPurple": "9370db",
	"medSeaGreen": "3cb371", "mediumSeaGreen": "3cb371",
	"medSlateBlue": "7b68ee", "mediumSlateBlue": "7b68ee",
	"medSpringGreen": "00fa9a", "mediumSpringGreen": "00fa9a",
	"medTurquoise": "48d1cc", "mediumTurquoise": "48d1cc",
	"medVioletRed": "c71585", "mediumVioletRed": "c71585",
	"midnightBlue": "191970", "mintCream": "f5fffa",
	"mistyRose": "ffe4e1", "moccasin": "ffe4b5",
	"navajoWhite": "ffdead", "navy": "000080", "oldLace": "fdf5e6",
	"olive": "808000", "oliveDrab": "6b8e23", "orange": "ffa500",
	"orangeRed": "ff4500", "orchid": "da70d6",
	"paleGoldenrod": "eee8aa", "paleGreen": "98fb98",
	"paleTurquoise": "afeeee", "paleVioletRed": "db7093",
	"papayaWhip": "ffefd5", "peachPuff": "ffdab9", "peru": "cd853f",
	"pink": "ffc0cb", "plum": "dda0dd", "powderBlue": "b0e0e6",
	"purple": "800080", "red": "ff0000", "rosyBrown": "bc8f8f",
	"royalBlue": "4169e1", "saddleBrown": "8b4513", "salmon": "fa8072",
	"sandyBrown": "f4a460", "seaGreen": "2e8b57", "seaShell": "fff5ee",
	"sienna": "a0522d", "silver": "c0c0c0", "skyBlue": "87ceeb",
	"slateBlue": "6a5acd", "slateGray": "708090", "slateGrey": "708090",
	"snow": "fffafa", "springGreen": "00ff7f", "steelBlue": "4682b4",
	"tan": "d2b48c", "teal": "008080", "thistle": "d8bfd8",
	"tomato": "ff6347", "transparent": "00000000", "turquoise": "40e0d0",
	"violet": "ee82ee", "wheat": "f5deb3", "white": "ffffff",
	"whiteSmoke": "f5f5f5", "yellow": "ffff00", "yellowGreen": "9acd32",
}

// resolveSheetColor resolves a SpreadsheetML color reference to a concrete
// "rrggbbaa" string. Precedence: theme index against the color scheme,
// direct ARGB attribute, indexed against the stylesheet's custom table,
// indexed against the default palette. The tint, when present, adjusts the
// resolved base color. ok is false when no terminal value exists.
func resolveSheetColor(c *sml.Color, ss *sml.Stylesheet, scheme *dml.ColorScheme) (string, bool) {
	if c == nil {
		return "", false
	}

	var base string
	switch {
	case c.Theme != nil && scheme != nil:
		slot := scheme.ByIndex(*c.Theme)
		if slot == nil {
			return "", false
		}
		hex, ok := resolveDrawingColor(slot, scheme, "")
		if !ok {
			return "", false
		}
		base = hex
	case c.RGB != "":
		hex, err := colormath.NormalizeHex(c.RGB, true)
		if err != nil {
			return "", false
		}
		base = hex
	case c.Indexed != nil && ss != nil && len(ss.IndexedColors) > 0:
		if *c.Indexed >= uint64(len(ss.IndexedColors)) {
			return "", false
		}
		hex, err := colormath.NormalizeHex(ss.IndexedColors[*c.Indexed], true)
		if err != nil {
			return "", false
		}
		base = hex
	case c.Indexed != nil:
		if *c.Indexed >= uint64(len(defaultPalette)) {
			return "", false
		}
		base = defaultPalette[*c.Indexed]
	default:
		return "", false
	}

	if c.Tint == 0 {
		return base, true
	}
	parsed, err := colormath.ParseHex(base, false)
	if err != nil {
		return base, true
	}
	return colormath.ApplyTint(parsed, c.Tint).Hex(), true
}

// resolveDrawingColor resolves a DrawingML color union member, transform
// chain included, to "rrggbbaa". refColor substitutes for the phClr
// placeholder; pass "" when no reference color applies.
func resolveDrawingColor(c *dml.Color, scheme *dml.ColorScheme, refColor string) (string, bool) {
	if c == nil {
		return "", false
	}

	var base colormath.RGBA
	switch c.Kind {
	case dml.ColorSrgb:
		parsed, err := colormath.ParseHex(c.Value, false)
		if err != nil {
			return "", false
		}
		base = parsed
	case dml.ColorScrgb:
		base = colormath.RGBA{
			R: percentChannel(c.R),
			G: percentChannel(c.G),
			B: percentChannel(c.B),
			A: 1.0,
		}
	case dml.ColorSystem:
		// Only the producer's lastClr hint is usable; the live system
		// color is unknowable outside the producing machine.
		if c.LastColor == "" {
			return "", false
		}
		parsed, err := colormath.ParseHex(c.LastColor, false)
		if err != nil {
			return "", false
		}
		base = parsed
	case dml.ColorSchemeRef:
		hex, ok := resolveSchemeSlot(c.Value, scheme, refColor)
		if !ok {
			return "", false
		}
		parsed, err := colormath.ParseHex(hex, false)
		if err != nil {
			return "", false
		}
		base = parsed
	case dml.ColorHsl:
		base = colormath.HSLA{
			H: conv.AngleToDegrees(c.Hue),
			S: conv.PercentToFloat(c.Sat) * 100.0,
			L: conv.PercentToFloat(c.Lum) * 100.0,
			A: 1.0,
		}.ToRGBA()
	case dml.ColorPreset:
		hex, ok := presetColors[c.Value]
		if !ok {
			return "", false
		}
		parsed, err := colormath.ParseHex(hex, false)
		if err != nil {
			return "", false
		}
		base = parsed
	default:
		return "", false
	}

	return applyTransforms(base, c.Transforms).Hex(), true
}

// resolveSchemeSlot resolves a schemeClr token: phClr against the reference
// color, named slots against the theme, and finally against the fixed
// fallback table so resolution stays total without a theme part.
func resolveSchemeSlot(name string, scheme *dml.ColorScheme, refColor string) (string, bool) {
	if name == "phClr" {
		if refColor == "" {
			return "", false
		}
		return refColor, true
	}
	if slot := scheme.BySlot(name); slot != nil {
		if hex, ok := resolveDrawingColor(slot, scheme, refColor); ok {
			return hex, true
		}
	}
	hex, ok := schemeSlotFallback[name]
	return hex, ok
}

// applyTransforms runs a transform chain over a color in document order.
func applyTransforms(c colormath.RGBA, transforms []dml.Transform) colormath.RGBA {
	for _, t := range transforms {
		c = applyTransform(c, t)
	}
	return c
}

func applyTransform(c colormath.RGBA, t dml.Transform) colormath.RGBA {
	pct := conv.PercentToFloat(t.Value)

	switch t.Kind {
	case dml.TransformAlpha:
		c.A = clamp01(pct)
	case dml.TransformAlphaMod:
		c.A = colormath.Modulate(c.A, t.Value)
	case dml.TransformAlphaOff:
		c.A = colormath.Offset(c.A, t.Value)

	case dml.TransformRed:
		c.R = percentChannel(t.Value)
	case dml.TransformRedMod:
		c.R = channel(colormath.Modulate(float64(c.R)/255.0, t.Value))
	case dml.TransformRedOff:
		c.R = channel(colormath.Offset(float64(c.R)/255.0, t.Value))
	case dml.TransformGreen:
		c.G = percentChannel(t.Value)
	case dml.TransformGreenMod:
		c.G = channel(colormath.Modulate(float64(c.G)/255.0, t.Value))
	case dml.TransformGreenOff:
		c.G = channel(colormath.Offset(float64(c.G)/255.0, t.Value))
	case dml.TransformBlue:
		c.B = percentChannel(t.Value)
	case dml.TransformBlueMod:
		c.B = channel(colormath.Modulate(float64(c.B)/255.0, t.Value))
	case dml.TransformBlueOff:
		c.B = channel(colormath.Offset(float64(c.B)/255.0, t.Value))

	// hue and hueOff are angles in 60000ths of a degree; hueMod is a
	// percentage. HSLA conversion wraps the hue, so no clamping here.
	case dml.TransformHue:
		hsl := c.ToHSL()
		hsl.H = conv.AngleToDegrees(t.Value)
		return hsl.ToRGBA()
	case dml.TransformHueMod:
		hsl := c.ToHSL()
		hsl.H *= pct
		return hsl.ToRGBA()
	case dml.TransformHueOff:
		hsl := c.ToHSL()
		hsl.H += conv.AngleToDegrees(t.Value)
		return hsl.ToRGBA()
	case dml.TransformSat:
		hsl := c.ToHSL()
		hsl.S = pct * 100.0
		return hsl.ToRGBA()
	case dml.TransformSatMod:
		hsl := c.ToHSL()
		hsl.S = colormath.Modulate(hsl.S/100.0, t.Value) * 100.0
		return hsl.ToRGBA()
	case dml.TransformSatOff:
		hsl := c.ToHSL()
		hsl.S = colormath.Offset(hsl.S/100.0, t.Value) * 100.0
		return hsl.ToRGBA()
	case dml.TransformLum:
		hsl := c.ToHSL()
		hsl.L = pct * 100.0
		return hsl.ToRGBA()
	case dml.TransformLumMod:
		hsl := c.ToHSL()
		hsl.L = colormath.Modulate(hsl.L/100.0, t.Value) * 100.0
		return hsl.ToRGBA()
	case dml.TransformLumOff:
		hsl := c.ToHSL()
		hsl.L = colormath.Offset(hsl.L/100.0, t.Value) * 100.0
		return hsl.ToRGBA()

	case dml.TransformComp:
		return colormath.Complement(c)
	case dml.TransformGamma:
		return colormath.GammaShift(c)
	case dml.TransformGray:
		return colormath.Grayscale(c)
	case dml.TransformInv:
		return colormath.Inverse(c)
	case dml.TransformInvGamma:
		return colormath.InverseGammaShift(c)

	case dml.TransformShade:
		return colormath.Shade(c, t.Value)
	case dml.TransformTint:
		return colormath.Tint(c, t.Value)
	}
	return c
}

func percentChannel(v int64) uint8 {
	return channel(clamp01(conv.PercentToFloat(v)))
}

func channel(f float64) uint8 {
	return uint8(math.Round(clamp01(f) * 255.0))
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
