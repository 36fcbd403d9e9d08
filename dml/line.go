package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Line is an <ln> outline definition.
type Line struct {
	Width    *int64 // EMU
	Cap      string
	Compound string
	Align    string

	Fill *Fill

	DashPreset string
	CustomDash []DashStop

	// Join is "round", "bevel" or "miter"; empty when unspecified.
	Join       string
	MiterLimit *int64

	HeadEnd *LineEnd
	TailEnd *LineEnd
}

// DashStop is one custDash entry; both values are 1000ths of a percent of
// the line width.
type DashStop struct {
	Dash  int64
	Space int64
}

// LineEnd is a headEnd/tailEnd decoration.
type LineEnd struct {
	Type   string
	Width  string
	Length string
}

// loadLine loads an <ln> element.
func loadLine(cur *xmlcur.Cursor, start xml.StartElement) (*Line, error) {
	ln := &Line{
		Cap:      xmlcur.AttrValue(start, "cap"),
		Compound: xmlcur.AttrValue(start, "cmpd"),
		Align:    xmlcur.AttrValue(start, "algn"),
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "w")); ok {
		ln.Width = &v
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		switch local := child.Name.Local; {
		case IsFillElement(local):
			f, err := loadFill(cur, child)
			if err != nil {
				return err
			}
			ln.Fill = f
			return nil
		case local == "prstDash":
			ln.DashPreset = xmlcur.AttrValue(child, "val")
		case local == "custDash":
			return cur.Children(child, func(ds xml.StartElement) error {
				if ds.Name.Local == "ds" {
					var stop DashStop
					stop.Dash, _ = conv.Int(xmlcur.AttrValue(ds, "d"))
					stop.Space, _ = conv.Int(xmlcur.AttrValue(ds, "sp"))
					ln.CustomDash = append(ln.CustomDash, stop)
				}
				return cur.Skip()
			})
		case local == "round", local == "bevel":
			ln.Join = local
		case local == "miter":
			ln.Join = local
			if v, ok := conv.Int(xmlcur.AttrValue(child, "lim")); ok {
				ln.MiterLimit = &v
			}
		case local == "headEnd":
			ln.HeadEnd = loadLineEnd(child)
		case local == "tailEnd":
			ln.TailEnd = loadLineEnd(child)
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return ln, nil
}

func loadLineEnd(start xml.StartElement) *LineEnd {
	return &LineEnd{
		Type:   xmlcur.AttrValue(start, "type"),
		Width:  xmlcur.AttrValue(start, "w"),
		Length: xmlcur.AttrValue(start, "len"),
	}
}
