package sml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Color is the SpreadsheetML color element (<color>, <fgColor>, <bgColor>,
// <tabColor>). Exactly one of Auto, Indexed, RGB or Theme is normally set;
// Tint modifies whichever it accompanies.
type Color struct {
	Auto    bool
	Indexed *uint64 // palette index
	RGB     string  // ARGB hex as written
	Theme   *uint64 // theme color index
	Tint    float64
}

// IsZero reports whether no color information was present.
func (c *Color) IsZero() bool {
	return c == nil || (!c.Auto && c.Indexed == nil && c.RGB == "" && c.Theme == nil)
}

func loadColor(cur *xmlcur.Cursor, start xml.StartElement) (*Color, error) {
	c := &Color{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "auto":
			if v, ok := conv.Bool(a.Value); ok {
				c.Auto = v
			}
		case "indexed":
			if v, ok := conv.Uint(a.Value); ok {
				c.Indexed = &v
			}
		case "rgb":
			c.RGB = a.Value
		case "theme":
			if v, ok := conv.Uint(a.Value); ok {
				c.Theme = &v
			}
		case "tint":
			if v, ok := conv.Float(a.Value); ok {
				c.Tint = v
			}
		}
	}
	if err := cur.Skip(); err != nil {
		return nil, err
	}
	return c, nil
}
