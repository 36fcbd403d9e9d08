package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// ColorKind identifies which member of the DrawingML color union was present.
type ColorKind int

const (
	ColorSrgb      ColorKind = iota // srgbClr, hex value
	ColorScrgb                      // scrgbClr, linear percentages
	ColorSystem                     // sysClr
	ColorSchemeRef                  // schemeClr
	ColorHsl                        // hslClr
	ColorPreset                     // prstClr
)

// Color is one member of the DrawingML color union together with its
// transform chain.
type Color struct {
	Kind ColorKind

	// Value holds the hex digits (srgbClr), the scheme slot name
	// (schemeClr), the system color name (sysClr) or the preset name
	// (prstClr).
	Value string

	// LastColor is sysClr's lastClr hint.
	LastColor string

	// R, G, B are scrgbClr channel percentages in 1000ths of a percent.
	R, G, B int64

	// Hue is in 60000ths of a degree; Sat and Lum are percentages, for
	// hslClr.
	Hue, Sat, Lum int64

	Transforms []Transform
}

// TransformKind is a color transform element name.
type TransformKind int

const (
	TransformAlpha TransformKind = iota
	TransformAlphaMod
	TransformAlphaOff
	TransformBlue
	TransformBlueMod
	TransformBlueOff
	TransformComp
	TransformGamma
	TransformGray
	TransformGreen
	TransformGreenMod
	TransformGreenOff
	TransformHue
	TransformHueMod
	TransformHueOff
	TransformInv
	TransformInvGamma
	TransformLum
	TransformLumMod
	TransformLumOff
	TransformRed
	TransformRedMod
	TransformRedOff
	TransformSat
	TransformSatMod
	TransformSatOff
	TransformShade
	TransformTint
)

var transformTokens = map[string]TransformKind{
	"alpha":    TransformAlpha,
	"alphaMod": TransformAlphaMod,
	"alphaOff": TransformAlphaOff,
	"blue":     TransformBlue,
	"blueMod":  TransformBlueMod,
	"blueOff":  TransformBlueOff,
	"comp":     TransformComp,
	"gamma":    TransformGamma,
	"gray":     TransformGray,
	"green":    TransformGreen,
	"greenMod": TransformGreenMod,
	"greenOff": TransformGreenOff,
	"hue":      TransformHue,
	"hueMod":   TransformHueMod,
	"hueOff":   TransformHueOff,
	"inv":      TransformInv,
	"invGamma": TransformInvGamma,
	"lum":      TransformLum,
	"lumMod":   TransformLumMod,
	"lumOff":   TransformLumOff,
	"red":      TransformRed,
	"redMod":   TransformRedMod,
	"redOff":   TransformRedOff,
	"sat":      TransformSat,
	"satMod":   TransformSatMod,
	"satOff":   TransformSatOff,
	"shade":    TransformShade,
	"tint":     TransformTint,
}

// Transform is one color transform. Value is the val attribute, already in
// its markup unit (1000ths of a percent or 60000ths of a degree); the
// parameterless transforms (comp, gamma, gray, inv, invGamma) carry zero.
type Transform struct {
	Kind  TransformKind
	Value int64
}

// IsColorElement reports whether the local tag name is one of the color
// union's members.
func IsColorElement(local string) bool {
	switch local {
	case "srgbClr", "scrgbClr", "sysClr", "schemeClr", "hslClr", "prstClr":
		return true
	}
	return false
}

// loadColor loads one color union member, transforms included. start must be
// a color element.
func loadColor(cur *xmlcur.Cursor, start xml.StartElement) (*Color, error) {
	c := &Color{}
	switch start.Name.Local {
	case "srgbClr":
		c.Kind = ColorSrgb
		c.Value = xmlcur.AttrValue(start, "val")
	case "scrgbClr":
		c.Kind = ColorScrgb
		c.R, _ = conv.Int(xmlcur.AttrValue(start, "r"))
		c.G, _ = conv.Int(xmlcur.AttrValue(start, "g"))
		c.B, _ = conv.Int(xmlcur.AttrValue(start, "b"))
	case "sysClr":
		c.Kind = ColorSystem
		c.Value = xmlcur.AttrValue(start, "val")
		c.LastColor = xmlcur.AttrValue(start, "lastClr")
	case "schemeClr":
		c.Kind = ColorSchemeRef
		c.Value = xmlcur.AttrValue(start, "val")
	case "hslClr":
		c.Kind = ColorHsl
		c.Hue, _ = conv.Int(xmlcur.AttrValue(start, "hue"))
		c.Sat, _ = conv.Int(xmlcur.AttrValue(start, "sat"))
		c.Lum, _ = conv.Int(xmlcur.AttrValue(start, "lum"))
	case "prstClr":
		c.Kind = ColorPreset
		c.Value = xmlcur.AttrValue(start, "val")
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		if kind, ok := transformTokens[child.Name.Local]; ok {
			t := Transform{Kind: kind}
			t.Value, _ = conv.Int(xmlcur.AttrValue(child, "val"))
			c.Transforms = append(c.Transforms, t)
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// loadSingleColor scans the children of parent for the one color union
// member it holds. Non-color children are skipped.
func loadSingleColor(cur *xmlcur.Cursor, parent xml.StartElement) (*Color, error) {
	var out *Color
	err := cur.Children(parent, func(child xml.StartElement) error {
		if !IsColorElement(child.Name.Local) {
			return cur.Skip()
		}
		c, err := loadColor(cur, child)
		if err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
