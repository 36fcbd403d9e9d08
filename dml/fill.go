package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// FillKind identifies which fill member was present.
type FillKind int

const (
	FillNone FillKind = iota
	FillSolid
	FillGradient
	FillPattern
	FillBlip
	FillGroup
)

// Fill is one member of the DrawingML fill union.
type Fill struct {
	Kind     FillKind
	Color    *Color // solid
	Gradient *GradientFill
	Pattern  *PatternFill
	Blip     *BlipFill
}

// GradientFill is a gradient fill with its stop list and either a linear
// direction or a path shape.
type GradientFill struct {
	Stops []GradientStop

	// lin
	LinearAngle  int64 // 60000ths of a degree
	LinearScaled bool

	// path: "shape", "circle" or "rect"
	Path string

	RotWithShape *bool
	Flip         string
}

// GradientStop is one gsLst entry. Position is in 1000ths of a percent.
type GradientStop struct {
	Position int64
	Color    *Color
}

// PatternFill is a preset pattern fill.
type PatternFill struct {
	Preset     string
	Foreground *Color
	Background *Color
}

// BlipFill is a picture fill. EmbedRelID names the image part through the
// drawing's relationships.
type BlipFill struct {
	EmbedRelID   string
	LinkRelID    string
	Stretch      bool
	Tile         *Tile
	Alpha        *int64 // alphaModFix amt, 1000ths of a percent
	RotWithShape *bool
}

// Tile is blip tiling geometry.
type Tile struct {
	TX, TY int64 // EMU offsets
	SX, SY int64 // scale, 1000ths of a percent
	Flip   string
	Align  string
}

// IsFillElement reports whether the local tag name is a fill union member.
func IsFillElement(local string) bool {
	switch local {
	case "noFill", "solidFill", "gradFill", "pattFill", "blipFill", "grpFill":
		return true
	}
	return false
}

// loadFill loads one fill union member. start must be a fill element.
func loadFill(cur *xmlcur.Cursor, start xml.StartElement) (*Fill, error) {
	f := &Fill{}
	switch start.Name.Local {
	case "noFill":
		f.Kind = FillNone
		return f, cur.Skip()
	case "grpFill":
		f.Kind = FillGroup
		return f, cur.Skip()
	case "solidFill":
		f.Kind = FillSolid
		c, err := loadSingleColor(cur, start)
		if err != nil {
			return nil, err
		}
		f.Color = c
		return f, nil
	case "gradFill":
		f.Kind = FillGradient
		g, err := loadGradientFill(cur, start)
		if err != nil {
			return nil, err
		}
		f.Gradient = g
		return f, nil
	case "pattFill":
		f.Kind = FillPattern
		p := &PatternFill{Preset: xmlcur.AttrValue(start, "prst")}
		err := cur.Children(start, func(child xml.StartElement) error {
			switch child.Name.Local {
			case "fgClr":
				c, err := loadSingleColor(cur, child)
				if err != nil {
					return err
				}
				p.Foreground = c
				return nil
			case "bgClr":
				c, err := loadSingleColor(cur, child)
				if err != nil {
					return err
				}
				p.Background = c
				return nil
			}
			return cur.Skip()
		})
		if err != nil {
			return nil, err
		}
		f.Pattern = p
		return f, nil
	case "blipFill":
		f.Kind = FillBlip
		b, err := loadBlipFill(cur, start)
		if err != nil {
			return nil, err
		}
		f.Blip = b
		return f, nil
	}
	return f, cur.Skip()
}

func loadGradientFill(cur *xmlcur.Cursor, start xml.StartElement) (*GradientFill, error) {
	g := &GradientFill{Flip: xmlcur.AttrValue(start, "flip")}
	if v, ok := xmlcur.Attr(start, "rotWithShape"); ok {
		if b, parsed := conv.Bool(v); parsed {
			g.RotWithShape = &b
		}
	}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "gsLst":
			return cur.Children(child, func(gs xml.StartElement) error {
				if gs.Name.Local != "gs" {
					return cur.Skip()
				}
				stop := GradientStop{}
				stop.Position, _ = conv.Int(xmlcur.AttrValue(gs, "pos"))
				c, err := loadSingleColor(cur, gs)
				if err != nil {
					return err
				}
				stop.Color = c
				g.Stops = append(g.Stops, stop)
				return nil
			})
		case "lin":
			g.LinearAngle, _ = conv.Int(xmlcur.AttrValue(child, "ang"))
			g.LinearScaled, _ = conv.Bool(xmlcur.AttrValue(child, "scaled"))
			return cur.Skip()
		case "path":
			g.Path = xmlcur.AttrValue(child, "path")
			return cur.Skip()
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// loadBlipFill loads a <blipFill> or <a:blipFill>, which also appears
// directly inside pictures.
func loadBlipFill(cur *xmlcur.Cursor, start xml.StartElement) (*BlipFill, error) {
	b := &BlipFill{}
	if v, ok := xmlcur.Attr(start, "rotWithShape"); ok {
		if bv, parsed := conv.Bool(v); parsed {
			b.RotWithShape = &bv
		}
	}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "blip":
			b.EmbedRelID = xmlcur.AttrValue(child, "embed")
			b.LinkRelID = xmlcur.AttrValue(child, "link")
			return cur.Children(child, func(be xml.StartElement) error {
				if be.Name.Local == "alphaModFix" {
					if v, ok := conv.Int(xmlcur.AttrValue(be, "amt")); ok {
						b.Alpha = &v
					}
				}
				return cur.Skip()
			})
		case "stretch":
			b.Stretch = true
			return cur.Skip()
		case "tile":
			t := &Tile{
				Flip:  xmlcur.AttrValue(child, "flip"),
				Align: xmlcur.AttrValue(child, "algn"),
			}
			t.TX, _ = conv.Int(xmlcur.AttrValue(child, "tx"))
			t.TY, _ = conv.Int(xmlcur.AttrValue(child, "ty"))
			t.SX, _ = conv.Int(xmlcur.AttrValue(child, "sx"))
			t.SY, _ = conv.Int(xmlcur.AttrValue(child, "sy"))
			b.Tile = t
			return cur.Skip()
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}
