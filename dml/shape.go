package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// ShapeProperties is an <spPr> element.
type ShapeProperties struct {
	Transform *Transform2D
	Geometry  *Geometry
	Fill      *Fill
	Line      *Line
	Effects   *EffectList
	Scene3D   *Scene3D
	Shape3D   *Shape3D
}

// Transform2D is an <a:xfrm>: offset and extent in EMUs, rotation in
// 60000ths of a degree. Group transforms additionally carry the child
// coordinate space.
type Transform2D struct {
	OffsetX  int64
	OffsetY  int64
	ExtentCX int64
	ExtentCY int64
	Rotation int64
	FlipH    bool
	FlipV    bool

	ChildOffsetX  *int64
	ChildOffsetY  *int64
	ChildExtentCX *int64
	ChildExtentCY *int64
}

// Geometry is a prstGeom (Preset set) or custGeom (Custom true). Adjust
// values are kept as name/formula pairs.
type Geometry struct {
	Preset  string
	Custom  bool
	Adjusts []AdjustValue
}

// AdjustValue is one <gd> guide of an avLst.
type AdjustValue struct {
	Name    string
	Formula string
}

// ShapeStyle is a <style> element: the four theme references.
type ShapeStyle struct {
	LineRef   *StyleRef
	FillRef   *StyleRef
	EffectRef *StyleRef
	FontRef   *StyleRef
}

// StyleRef points into one of the theme's style lists. Index is 1-based as
// written; FontRef carries the major/minor token in Index 0 and Font set.
type StyleRef struct {
	Index uint64
	Font  string // fontRef idx token: "major", "minor" or "none"
	Color *Color
}

// NonVisual is the cNvPr element every drawing object carries: the
// id/name/description triple plus the optional click and hover hyperlinks.
type NonVisual struct {
	ID          uint64
	Name        string
	Description string
	Hidden      bool

	HlinkClick *Hlink
	HlinkHover *Hlink
}

// Hlink is an hlinkClick or hlinkHover child of cNvPr. RelID names the
// target through the drawing's relationships.
type Hlink struct {
	RelID   string
	Tooltip string
}

// loadShapeProperties loads an <spPr> element.
func loadShapeProperties(cur *xmlcur.Cursor, start xml.StartElement) (*ShapeProperties, error) {
	sp := &ShapeProperties{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch local := child.Name.Local; {
		case local == "xfrm":
			t, err := loadTransform2D(cur, child)
			if err != nil {
				return err
			}
			sp.Transform = t
			return nil
		case local == "prstGeom":
			g := &Geometry{Preset: xmlcur.AttrValue(child, "prst")}
			err := loadAdjustValues(cur, child, g)
			if err != nil {
				return err
			}
			sp.Geometry = g
			return nil
		case local == "custGeom":
			sp.Geometry = &Geometry{Custom: true}
			return cur.Skip()
		case IsFillElement(local):
			f, err := loadFill(cur, child)
			if err != nil {
				return err
			}
			sp.Fill = f
			return nil
		case local == "ln":
			ln, err := loadLine(cur, child)
			if err != nil {
				return err
			}
			sp.Line = ln
			return nil
		case local == "effectLst":
			el, err := loadEffectList(cur, child)
			if err != nil {
				return err
			}
			sp.Effects = el
			return nil
		case local == "scene3d":
			s, err := loadScene3D(cur, child)
			if err != nil {
				return err
			}
			sp.Scene3D = s
			return nil
		case local == "sp3d":
			s, err := loadShape3D(cur, child)
			if err != nil {
				return err
			}
			sp.Shape3D = s
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

func loadAdjustValues(cur *xmlcur.Cursor, start xml.StartElement, g *Geometry) error {
	return cur.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "avLst" {
			return cur.Skip()
		}
		return cur.Children(child, func(gd xml.StartElement) error {
			if gd.Name.Local == "gd" {
				g.Adjusts = append(g.Adjusts, AdjustValue{
					Name:    xmlcur.AttrValue(gd, "name"),
					Formula: xmlcur.AttrValue(gd, "fmla"),
				})
			}
			return cur.Skip()
		})
	})
}

func loadTransform2D(cur *xmlcur.Cursor, start xml.StartElement) (*Transform2D, error) {
	t := &Transform2D{}
	t.Rotation, _ = conv.Int(xmlcur.AttrValue(start, "rot"))
	t.FlipH, _ = conv.Bool(xmlcur.AttrValue(start, "flipH"))
	t.FlipV, _ = conv.Bool(xmlcur.AttrValue(start, "flipV"))

	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "off":
			t.OffsetX, _ = conv.Int(xmlcur.AttrValue(child, "x"))
			t.OffsetY, _ = conv.Int(xmlcur.AttrValue(child, "y"))
		case "ext":
			t.ExtentCX, _ = conv.Int(xmlcur.AttrValue(child, "cx"))
			t.ExtentCY, _ = conv.Int(xmlcur.AttrValue(child, "cy"))
		case "chOff":
			if v, ok := conv.Int(xmlcur.AttrValue(child, "x")); ok {
				t.ChildOffsetX = &v
			}
			if v, ok := conv.Int(xmlcur.AttrValue(child, "y")); ok {
				t.ChildOffsetY = &v
			}
		case "chExt":
			if v, ok := conv.Int(xmlcur.AttrValue(child, "cx")); ok {
				t.ChildExtentCX = &v
			}
			if v, ok := conv.Int(xmlcur.AttrValue(child, "cy")); ok {
				t.ChildExtentCY = &v
			}
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// loadShapeStyle loads a <style> element.
func loadShapeStyle(cur *xmlcur.Cursor, start xml.StartElement) (*ShapeStyle, error) {
	st := &ShapeStyle{}
	err := cur.Children(start, func(child xml.StartElement) error {
		var slot **StyleRef
		switch child.Name.Local {
		case "lnRef":
			slot = &st.LineRef
		case "fillRef":
			slot = &st.FillRef
		case "effectRef":
			slot = &st.EffectRef
		case "fontRef":
			slot = &st.FontRef
		default:
			return cur.Skip()
		}

		ref := &StyleRef{}
		idx := xmlcur.AttrValue(child, "idx")
		if n, ok := conv.Uint(idx); ok {
			ref.Index = n
		} else {
			ref.Font = idx
		}
		c, err := loadSingleColor(cur, child)
		if err != nil {
			return err
		}
		ref.Color = c
		*slot = ref
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

// loadNonVisual loads a cNvPr element: its attributes plus the optional
// hlinkClick/hlinkHover children.
func loadNonVisual(cur *xmlcur.Cursor, start xml.StartElement) (NonVisual, error) {
	nv := NonVisual{
		Name:        xmlcur.AttrValue(start, "name"),
		Description: xmlcur.AttrValue(start, "descr"),
	}
	nv.ID, _ = conv.Uint(xmlcur.AttrValue(start, "id"))
	nv.Hidden, _ = conv.Bool(xmlcur.AttrValue(start, "hidden"))

	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "hlinkClick":
			nv.HlinkClick = loadHlink(child)
		case "hlinkHover":
			nv.HlinkHover = loadHlink(child)
		}
		return cur.Skip()
	})
	if err != nil {
		return NonVisual{}, err
	}
	return nv, nil
}

func loadHlink(start xml.StartElement) *Hlink {
	return &Hlink{
		RelID:   xmlcur.AttrValue(start, "id"),
		Tooltip: xmlcur.AttrValue(start, "tooltip"),
	}
}
