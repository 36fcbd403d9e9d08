package dml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Drawing is a raw xl/drawings/drawingN.xml part: the anchored objects of
// one worksheet.
type Drawing struct {
	Anchors []*Anchor
}

// AnchorKind distinguishes the three spreadsheet anchor forms.
type AnchorKind int

const (
	AnchorTwoCell AnchorKind = iota
	AnchorOneCell
	AnchorAbsolute
)

// Anchor is a twoCellAnchor, oneCellAnchor or absoluteAnchor. From/To are
// set for cell anchors; Position and Extent for absolute ones (one-cell
// anchors carry From plus Extent).
type Anchor struct {
	Kind   AnchorKind
	EditAs string

	From *Marker
	To   *Marker

	PositionX *int64 // EMU, absolute anchors
	PositionY *int64
	ExtentCX  *int64
	ExtentCY  *int64

	// clientData flags, true unless the attribute disables them
	LocksWithSheet  bool
	PrintsWithSheet bool

	Content *AnchorContent
}

// Marker is a from/to cell marker: 0-based cell indices plus EMU offsets
// into that cell.
type Marker struct {
	Col       uint32
	ColOffset int64
	Row       uint32
	RowOffset int64
}

// ContentKind identifies the object held by an anchor (or group).
type ContentKind int

const (
	ContentShape ContentKind = iota
	ContentPicture
	ContentGroup
	ContentConnector
	ContentGraphicFrame
)

// AnchorContent is the object an anchor holds. Exactly one member is set,
// indicated by Kind.
type AnchorContent struct {
	Kind         ContentKind
	Shape        *Shape
	Picture      *Picture
	Group        *GroupShape
	Connector    *ConnectionShape
	GraphicFrame *GraphicFrame
}

// Shape is an <xdr:sp>.
type Shape struct {
	NonVisual NonVisual
	TextBox   bool
	Macro     string

	Properties *ShapeProperties
	Style      *ShapeStyle
	TextBody   *TextBody
}

// Picture is an <xdr:pic>.
type Picture struct {
	NonVisual NonVisual

	BlipFill   *BlipFill
	Properties *ShapeProperties
	Style      *ShapeStyle
}

// GroupShape is an <xdr:grpSp>: its own transform and fill plus children.
type GroupShape struct {
	NonVisual NonVisual

	Transform *Transform2D
	Fill      *Fill
	Effects   *EffectList
	Scene3D   *Scene3D

	Children []*AnchorContent
}

// ConnectionShape is an <xdr:cxnSp>.
type ConnectionShape struct {
	NonVisual NonVisual

	StartID    *uint64 // cNvCxnSpPr stCxn id
	StartIndex uint64
	EndID      *uint64
	EndIndex   uint64

	Properties *ShapeProperties
	Style      *ShapeStyle
}

// GraphicFrame is an <xdr:graphicFrame>. Only chart references are
// extracted from the graphic data.
type GraphicFrame struct {
	NonVisual NonVisual

	Transform  *Transform2D
	ChartRelID string
}

// ParseDrawing parses an xl/drawings/drawingN.xml part.
func ParseDrawing(r io.Reader) (*Drawing, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("wsDr")
	if err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}

	d := &Drawing{}
	err = cur.Children(start, func(child xml.StartElement) error {
		var kind AnchorKind
		switch child.Name.Local {
		case "twoCellAnchor":
			kind = AnchorTwoCell
		case "oneCellAnchor":
			kind = AnchorOneCell
		case "absoluteAnchor":
			kind = AnchorAbsolute
		default:
			return cur.Skip()
		}
		a, err := loadAnchor(cur, child, kind)
		if err != nil {
			return err
		}
		d.Anchors = append(d.Anchors, a)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("drawing: %w", err)
	}
	return d, nil
}

func loadAnchor(cur *xmlcur.Cursor, start xml.StartElement, kind AnchorKind) (*Anchor, error) {
	a := &Anchor{
		Kind:            kind,
		EditAs:          xmlcur.AttrValue(start, "editAs"),
		LocksWithSheet:  true,
		PrintsWithSheet: true,
	}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "from":
			m, err := loadMarker(cur, child)
			if err != nil {
				return err
			}
			a.From = m
			return nil
		case "to":
			m, err := loadMarker(cur, child)
			if err != nil {
				return err
			}
			a.To = m
			return nil
		case "pos":
			if v, ok := conv.Int(xmlcur.AttrValue(child, "x")); ok {
				a.PositionX = &v
			}
			if v, ok := conv.Int(xmlcur.AttrValue(child, "y")); ok {
				a.PositionY = &v
			}
			return cur.Skip()
		case "ext":
			if v, ok := conv.Int(xmlcur.AttrValue(child, "cx")); ok {
				a.ExtentCX = &v
			}
			if v, ok := conv.Int(xmlcur.AttrValue(child, "cy")); ok {
				a.ExtentCY = &v
			}
			return cur.Skip()
		case "clientData":
			if v, ok := conv.Bool(xmlcur.AttrValue(child, "fLocksWithSheet")); ok {
				a.LocksWithSheet = v
			}
			if v, ok := conv.Bool(xmlcur.AttrValue(child, "fPrintsWithSheet")); ok {
				a.PrintsWithSheet = v
			}
			return cur.Skip()
		default:
			content, handled, err := loadAnchorContent(cur, child)
			if err != nil {
				return err
			}
			if handled {
				a.Content = content
				return nil
			}
			return cur.Skip()
		}
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

func loadMarker(cur *xmlcur.Cursor, start xml.StartElement) (*Marker, error) {
	m := &Marker{}
	err := cur.Children(start, func(child xml.StartElement) error {
		text, err := cur.Text(child)
		if err != nil {
			return err
		}
		switch child.Name.Local {
		case "col":
			if v, ok := conv.Uint(text); ok {
				m.Col = uint32(v)
			}
		case "colOff":
			m.ColOffset, _ = conv.Int(text)
		case "row":
			if v, ok := conv.Uint(text); ok {
				m.Row = uint32(v)
			}
		case "rowOff":
			m.RowOffset, _ = conv.Int(text)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// loadAnchorContent recognizes the object elements an anchor or group can
// hold. handled is false when the element is not one of them.
func loadAnchorContent(cur *xmlcur.Cursor, start xml.StartElement) (*AnchorContent, bool, error) {
	switch start.Name.Local {
	case "sp":
		sp, err := loadShape(cur, start)
		if err != nil {
			return nil, true, err
		}
		return &AnchorContent{Kind: ContentShape, Shape: sp}, true, nil
	case "pic":
		p, err := loadPicture(cur, start)
		if err != nil {
			return nil, true, err
		}
		return &AnchorContent{Kind: ContentPicture, Picture: p}, true, nil
	case "grpSp":
		g, err := loadGroupShape(cur, start)
		if err != nil {
			return nil, true, err
		}
		return &AnchorContent{Kind: ContentGroup, Group: g}, true, nil
	case "cxnSp":
		c, err := loadConnectionShape(cur, start)
		if err != nil {
			return nil, true, err
		}
		return &AnchorContent{Kind: ContentConnector, Connector: c}, true, nil
	case "graphicFrame":
		f, err := loadGraphicFrame(cur, start)
		if err != nil {
			return nil, true, err
		}
		return &AnchorContent{Kind: ContentGraphicFrame, GraphicFrame: f}, true, nil
	}
	return nil, false, nil
}

func loadShape(cur *xmlcur.Cursor, start xml.StartElement) (*Shape, error) {
	sp := &Shape{Macro: xmlcur.AttrValue(start, "macro")}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "nvSpPr":
			return cur.Children(child, func(ne xml.StartElement) error {
				switch ne.Name.Local {
				case "cNvPr":
					nv, err := loadNonVisual(cur, ne)
					if err != nil {
						return err
					}
					sp.NonVisual = nv
					return nil
				case "cNvSpPr":
					if v, ok := conv.Bool(xmlcur.AttrValue(ne, "txBox")); ok {
						sp.TextBox = v
					}
				}
				return cur.Skip()
			})
		case "spPr":
			p, err := loadShapeProperties(cur, child)
			if err != nil {
				return err
			}
			sp.Properties = p
			return nil
		case "style":
			st, err := loadShapeStyle(cur, child)
			if err != nil {
				return err
			}
			sp.Style = st
			return nil
		case "txBody":
			tb, err := loadTextBody(cur, child)
			if err != nil {
				return err
			}
			sp.TextBody = tb
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return sp, nil
}

func loadPicture(cur *xmlcur.Cursor, start xml.StartElement) (*Picture, error) {
	p := &Picture{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "nvPicPr":
			return cur.Children(child, func(ne xml.StartElement) error {
				if ne.Name.Local != "cNvPr" {
					return cur.Skip()
				}
				nv, err := loadNonVisual(cur, ne)
				if err != nil {
					return err
				}
				p.NonVisual = nv
				return nil
			})
		case "blipFill":
			b, err := loadBlipFill(cur, child)
			if err != nil {
				return err
			}
			p.BlipFill = b
			return nil
		case "spPr":
			props, err := loadShapeProperties(cur, child)
			if err != nil {
				return err
			}
			p.Properties = props
			return nil
		case "style":
			st, err := loadShapeStyle(cur, child)
			if err != nil {
				return err
			}
			p.Style = st
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func loadGroupShape(cur *xmlcur.Cursor, start xml.StartElement) (*GroupShape, error) {
	g := &GroupShape{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "nvGrpSpPr":
			return cur.Children(child, func(ne xml.StartElement) error {
				if ne.Name.Local != "cNvPr" {
					return cur.Skip()
				}
				nv, err := loadNonVisual(cur, ne)
				if err != nil {
					return err
				}
				g.NonVisual = nv
				return nil
			})
		case "grpSpPr":
			return cur.Children(child, func(pe xml.StartElement) error {
				switch local := pe.Name.Local; {
				case local == "xfrm":
					t, err := loadTransform2D(cur, pe)
					if err != nil {
						return err
					}
					g.Transform = t
					return nil
				case IsFillElement(local):
					f, err := loadFill(cur, pe)
					if err != nil {
						return err
					}
					g.Fill = f
					return nil
				case local == "effectLst":
					el, err := loadEffectList(cur, pe)
					if err != nil {
						return err
					}
					g.Effects = el
					return nil
				case local == "scene3d":
					s, err := loadScene3D(cur, pe)
					if err != nil {
						return err
					}
					g.Scene3D = s
					return nil
				}
				return cur.Skip()
			})
		default:
			content, handled, err := loadAnchorContent(cur, child)
			if err != nil {
				return err
			}
			if handled {
				g.Children = append(g.Children, content)
				return nil
			}
			return cur.Skip()
		}
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func loadConnectionShape(cur *xmlcur.Cursor, start xml.StartElement) (*ConnectionShape, error) {
	c := &ConnectionShape{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "nvCxnSpPr":
			return cur.Children(child, func(ne xml.StartElement) error {
				switch ne.Name.Local {
				case "cNvPr":
					nv, err := loadNonVisual(cur, ne)
					if err != nil {
						return err
					}
					c.NonVisual = nv
					return nil
				case "cNvCxnSpPr":
					return cur.Children(ne, func(ce xml.StartElement) error {
						switch ce.Name.Local {
						case "stCxn":
							if v, ok := conv.Uint(xmlcur.AttrValue(ce, "id")); ok {
								c.StartID = &v
							}
							c.StartIndex, _ = conv.Uint(xmlcur.AttrValue(ce, "idx"))
						case "endCxn":
							if v, ok := conv.Uint(xmlcur.AttrValue(ce, "id")); ok {
								c.EndID = &v
							}
							c.EndIndex, _ = conv.Uint(xmlcur.AttrValue(ce, "idx"))
						}
						return cur.Skip()
					})
				}
				return cur.Skip()
			})
		case "spPr":
			p, err := loadShapeProperties(cur, child)
			if err != nil {
				return err
			}
			c.Properties = p
			return nil
		case "style":
			st, err := loadShapeStyle(cur, child)
			if err != nil {
				return err
			}
			c.Style = st
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func loadGraphicFrame(cur *xmlcur.Cursor, start xml.StartElement) (*GraphicFrame, error) {
	f := &GraphicFrame{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "nvGraphicFramePr":
			return cur.Children(child, func(ne xml.StartElement) error {
				if ne.Name.Local != "cNvPr" {
					return cur.Skip()
				}
				nv, err := loadNonVisual(cur, ne)
				if err != nil {
					return err
				}
				f.NonVisual = nv
				return nil
			})
		case "xfrm":
			t, err := loadTransform2D(cur, child)
			if err != nil {
				return err
			}
			f.Transform = t
			return nil
		case "graphic":
			return cur.Children(child, func(ge xml.StartElement) error {
				if ge.Name.Local != "graphicData" {
					return cur.Skip()
				}
				return cur.Children(ge, func(ce xml.StartElement) error {
					if ce.Name.Local == "chart" {
						f.ChartRelID = xmlcur.AttrValue(ce, "id")
					}
					return cur.Skip()
				})
			})
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}
