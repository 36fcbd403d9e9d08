package sml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Stylesheet is the raw xl/styles.xml part.
type Stylesheet struct {
	NumFmts      []NumFmt
	Fonts        []*Font
	Fills        []*Fill
	Borders      []*Border
	CellStyleXfs []*Xf
	CellXfs      []*Xf
	CellStyles   []CellStyle
	Dxfs         []*Dxf
	TableStyles  *TableStyles

	// IndexedColors, when present, replaces the default 64-entry palette.
	IndexedColors []string
	MRUColors     []*Color
}

// NumFmt is a custom number format definition.
type NumFmt struct {
	ID   uint64
	Code string
}

// Font is a font record from the fonts table, a dxf, or a rich-text run's
// properties; all three share the same child elements.
type Font struct {
	Name      string
	Size      *float64
	Bold      bool
	Italic    bool
	Strike    bool
	Outline   bool
	Shadow    bool
	Condense  bool
	Extend    bool
	Underline UnderlineStyle
	VertAlign VerticalRunAlignment
	Color     *Color
	Family    *int64
	Charset   *int64
	Scheme    string
}

// Fill is a fill record. Exactly one of Pattern or Gradient is set.
type Fill struct {
	Pattern  *PatternFill
	Gradient *GradientFill
}

// PatternFill is a pattern fill with optional foreground and background.
type PatternFill struct {
	Type    PatternType
	FgColor *Color
	BgColor *Color
}

// GradientFill is a gradient fill with its stops.
type GradientFill struct {
	Type   string // "linear" or "path"; empty means linear
	Degree float64
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Stops  []GradientStop
}

// GradientStop is one color stop of a gradient fill.
type GradientStop struct {
	Position float64
	Color    *Color
}

// Border is a border record.
type Border struct {
	Left     *BorderEdge
	Right    *BorderEdge
	Top      *BorderEdge
	Bottom   *BorderEdge
	Diagonal *BorderEdge
	Vertical *BorderEdge

	// Horizontal is the inner horizontal edge used by dxf borders.
	Horizontal *BorderEdge

	DiagonalUp   bool
	DiagonalDown bool
	Outline      bool
}

// BorderEdge is one edge of a border.
type BorderEdge struct {
	Style BorderStyle
	Color *Color
}

// Xf is a cell format record from cellXfs or cellStyleXfs. The Apply flags
// are tri-state: nil means unspecified.
type Xf struct {
	NumFmtID *uint64
	FontID   *uint64
	FillID   *uint64
	BorderID *uint64
	XfID     *uint64

	ApplyNumberFormat *bool
	ApplyFont         *bool
	ApplyFill         *bool
	ApplyBorder       *bool
	ApplyAlignment    *bool
	ApplyProtection   *bool

	QuotePrefix bool
	PivotButton bool

	Alignment  *Alignment
	Protection *Protection
}

// Alignment is a cell alignment record.
type Alignment struct {
	Horizontal      HorizontalAlignment
	Vertical        VerticalAlignment
	WrapText        bool
	ShrinkToFit     bool
	JustifyLastLine bool
	TextRotation    *uint64
	Indent          *uint64
	RelativeIndent  *int64
	ReadingOrder    *uint64
}

// Protection is a cell protection record.
type Protection struct {
	Locked *bool
	Hidden *bool
}

// CellStyle is a named cell style from the cellStyles table.
type CellStyle struct {
	Name          string
	XfID          uint64
	BuiltinID     *uint64
	Hidden        bool
	CustomBuiltin bool
}

// Dxf is a differential format: only the pieces that differ are present.
type Dxf struct {
	Font       *Font
	Fill       *Fill
	Border     *Border
	NumFmt     *NumFmt
	Alignment  *Alignment
	Protection *Protection
}

// TableStyles is the tableStyles block.
type TableStyles struct {
	DefaultTableStyle string
	DefaultPivotStyle string
	Styles            []TableStyle
}

// TableStyle is a custom table style definition.
type TableStyle struct {
	Name     string
	Pivot    *bool
	Table    *bool
	Elements []TableStyleElement
}

// TableStyleElement binds a table region to a dxf.
type TableStyleElement struct {
	Type  string
	DxfID *uint64
}

// ParseStylesheet parses an xl/styles.xml part.
func ParseStylesheet(r io.Reader) (*Stylesheet, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("styleSheet")
	if err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	return loadStylesheet(cur, start)
}

func loadStylesheet(cur *xmlcur.Cursor, start xml.StartElement) (*Stylesheet, error) {
	ss := &Stylesheet{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "numFmts":
			return cur.Children(child, func(nf xml.StartElement) error {
				if nf.Name.Local != "numFmt" {
					return cur.Skip()
				}
				var f NumFmt
				f.ID, _ = conv.Uint(xmlcur.AttrValue(nf, "numFmtId"))
				f.Code = xmlcur.AttrValue(nf, "formatCode")
				ss.NumFmts = append(ss.NumFmts, f)
				return cur.Skip()
			})
		case "fonts":
			return cur.Children(child, func(fe xml.StartElement) error {
				if fe.Name.Local != "font" {
					return cur.Skip()
				}
				f, err := loadFont(cur, fe)
				if err != nil {
					return err
				}
				ss.Fonts = append(ss.Fonts, f)
				return nil
			})
		case "fills":
			return cur.Children(child, func(fe xml.StartElement) error {
				if fe.Name.Local != "fill" {
					return cur.Skip()
				}
				f, err := loadFill(cur, fe)
				if err != nil {
					return err
				}
				ss.Fills = append(ss.Fills, f)
				return nil
			})
		case "borders":
			return cur.Children(child, func(be xml.StartElement) error {
				if be.Name.Local != "border" {
					return cur.Skip()
				}
				b, err := loadBorder(cur, be)
				if err != nil {
					return err
				}
				ss.Borders = append(ss.Borders, b)
				return nil
			})
		case "cellStyleXfs":
			return cur.Children(child, func(xe xml.StartElement) error {
				if xe.Name.Local != "xf" {
					return cur.Skip()
				}
				x, err := loadXf(cur, xe)
				if err != nil {
					return err
				}
				ss.CellStyleXfs = append(ss.CellStyleXfs, x)
				return nil
			})
		case "cellXfs":
			return cur.Children(child, func(xe xml.StartElement) error {
				if xe.Name.Local != "xf" {
					return cur.Skip()
				}
				x, err := loadXf(cur, xe)
				if err != nil {
					return err
				}
				ss.CellXfs = append(ss.CellXfs, x)
				return nil
			})
		case "cellStyles":
			return cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local != "cellStyle" {
					return cur.Skip()
				}
				var cs CellStyle
				cs.Name = xmlcur.AttrValue(ce, "name")
				cs.XfID, _ = conv.Uint(xmlcur.AttrValue(ce, "xfId"))
				if v, ok := conv.Uint(xmlcur.AttrValue(ce, "builtinId")); ok {
					cs.BuiltinID = &v
				}
				cs.Hidden, _ = conv.Bool(xmlcur.AttrValue(ce, "hidden"))
				cs.CustomBuiltin, _ = conv.Bool(xmlcur.AttrValue(ce, "customBuiltin"))
				ss.CellStyles = append(ss.CellStyles, cs)
				return cur.Skip()
			})
		case "dxfs":
			return cur.Children(child, func(de xml.StartElement) error {
				if de.Name.Local != "dxf" {
					return cur.Skip()
				}
				d, err := loadDxf(cur, de)
				if err != nil {
					return err
				}
				ss.Dxfs = append(ss.Dxfs, d)
				return nil
			})
		case "tableStyles":
			return loadTableStyles(cur, child, ss)
		case "colors":
			return loadStylesheetColors(cur, child, ss)
		default:
			return cur.Skip()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("styles: %w", err)
	}
	return ss, nil
}

// loadFont also serves run properties (<rPr>) and dxf fonts, which reuse the
// same children. Run properties name the typeface <rFont> instead of <name>.
func loadFont(cur *xmlcur.Cursor, start xml.StartElement) (*Font, error) {
	f := &Font{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "name", "rFont":
			f.Name = xmlcur.AttrValue(child, "val")
		case "sz":
			if v, ok := conv.Float(xmlcur.AttrValue(child, "val")); ok {
				f.Size = &v
			}
		case "b":
			f.Bold = boolElement(child)
		case "i":
			f.Italic = boolElement(child)
		case "strike":
			f.Strike = boolElement(child)
		case "outline":
			f.Outline = boolElement(child)
		case "shadow":
			f.Shadow = boolElement(child)
		case "condense":
			f.Condense = boolElement(child)
		case "extend":
			f.Extend = boolElement(child)
		case "u":
			if v, ok := xmlcur.Attr(child, "val"); ok {
				f.Underline = ParseUnderlineStyle(v)
			} else {
				f.Underline = UnderlineSingle
			}
		case "vertAlign":
			f.VertAlign = ParseVerticalRunAlignment(xmlcur.AttrValue(child, "val"))
		case "color":
			c, err := loadColor(cur, child)
			if err != nil {
				return err
			}
			f.Color = c
			return nil
		case "family":
			if v, ok := conv.Int(xmlcur.AttrValue(child, "val")); ok {
				f.Family = &v
			}
		case "charset":
			if v, ok := conv.Int(xmlcur.AttrValue(child, "val")); ok {
				f.Charset = &v
			}
		case "scheme":
			f.Scheme = xmlcur.AttrValue(child, "val")
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

// boolElement evaluates a presence-style boolean child: <b/> is true,
// <b val="0"/> is false.
func boolElement(start xml.StartElement) bool {
	if v, ok := xmlcur.Attr(start, "val"); ok {
		b, parsed := conv.Bool(v)
		return parsed && b
	}
	return true
}

func loadFill(cur *xmlcur.Cursor, start xml.StartElement) (*Fill, error) {
	f := &Fill{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "patternFill":
			p := &PatternFill{Type: ParsePatternType(xmlcur.AttrValue(child, "patternType"))}
			f.Pattern = p
			return cur.Children(child, func(ce xml.StartElement) error {
				switch ce.Name.Local {
				case "fgColor":
					c, err := loadColor(cur, ce)
					if err != nil {
						return err
					}
					p.FgColor = c
					return nil
				case "bgColor":
					c, err := loadColor(cur, ce)
					if err != nil {
						return err
					}
					p.BgColor = c
					return nil
				}
				return cur.Skip()
			})
		case "gradientFill":
			g := &GradientFill{Type: xmlcur.AttrValue(child, "type")}
			g.Degree, _ = conv.Float(xmlcur.AttrValue(child, "degree"))
			g.Left, _ = conv.Float(xmlcur.AttrValue(child, "left"))
			g.Right, _ = conv.Float(xmlcur.AttrValue(child, "right"))
			g.Top, _ = conv.Float(xmlcur.AttrValue(child, "top"))
			g.Bottom, _ = conv.Float(xmlcur.AttrValue(child, "bottom"))
			f.Gradient = g
			return cur.Children(child, func(se xml.StartElement) error {
				if se.Name.Local != "stop" {
					return cur.Skip()
				}
				stop := GradientStop{}
				stop.Position, _ = conv.Float(xmlcur.AttrValue(se, "position"))
				err := cur.Children(se, func(ce xml.StartElement) error {
					if ce.Name.Local != "color" {
						return cur.Skip()
					}
					c, err := loadColor(cur, ce)
					if err != nil {
						return err
					}
					stop.Color = c
					return nil
				})
				if err != nil {
					return err
				}
				g.Stops = append(g.Stops, stop)
				return nil
			})
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func loadBorder(cur *xmlcur.Cursor, start xml.StartElement) (*Border, error) {
	b := &Border{}
	b.DiagonalUp, _ = conv.Bool(xmlcur.AttrValue(start, "diagonalUp"))
	b.DiagonalDown, _ = conv.Bool(xmlcur.AttrValue(start, "diagonalDown"))
	b.Outline, _ = conv.Bool(xmlcur.AttrValue(start, "outline"))

	err := cur.Children(start, func(child xml.StartElement) error {
		var slot **BorderEdge
		switch child.Name.Local {
		case "left", "start":
			slot = &b.Left
		case "right", "end":
			slot = &b.Right
		case "top":
			slot = &b.Top
		case "bottom":
			slot = &b.Bottom
		case "diagonal":
			slot = &b.Diagonal
		case "vertical":
			slot = &b.Vertical
		case "horizontal":
			slot = &b.Horizontal
		default:
			return cur.Skip()
		}

		edge := &BorderEdge{Style: ParseBorderStyle(xmlcur.AttrValue(child, "style"))}
		err := cur.Children(child, func(ce xml.StartElement) error {
			if ce.Name.Local != "color" {
				return cur.Skip()
			}
			c, err := loadColor(cur, ce)
			if err != nil {
				return err
			}
			edge.Color = c
			return nil
		})
		if err != nil {
			return err
		}
		*slot = edge
		return nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func loadXf(cur *xmlcur.Cursor, start xml.StartElement) (*Xf, error) {
	x := &Xf{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "numFmtId":
			if v, ok := conv.Uint(a.Value); ok {
				x.NumFmtID = &v
			}
		case "fontId":
			if v, ok := conv.Uint(a.Value); ok {
				x.FontID = &v
			}
		case "fillId":
			if v, ok := conv.Uint(a.Value); ok {
				x.FillID = &v
			}
		case "borderId":
			if v, ok := conv.Uint(a.Value); ok {
				x.BorderID = &v
			}
		case "xfId":
			if v, ok := conv.Uint(a.Value); ok {
				x.XfID = &v
			}
		case "applyNumberFormat":
			x.ApplyNumberFormat = boolAttr(a.Value)
		case "applyFont":
			x.ApplyFont = boolAttr(a.Value)
		case "applyFill":
			x.ApplyFill = boolAttr(a.Value)
		case "applyBorder":
			x.ApplyBorder = boolAttr(a.Value)
		case "applyAlignment":
			x.ApplyAlignment = boolAttr(a.Value)
		case "applyProtection":
			x.ApplyProtection = boolAttr(a.Value)
		case "quotePrefix":
			x.QuotePrefix, _ = conv.Bool(a.Value)
		case "pivotButton":
			x.PivotButton, _ = conv.Bool(a.Value)
		}
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "alignment":
			x.Alignment = loadAlignment(child)
		case "protection":
			x.Protection = loadProtection(child)
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return x, nil
}

func boolAttr(s string) *bool {
	v, ok := conv.Bool(s)
	if !ok {
		return nil
	}
	return &v
}

func loadAlignment(start xml.StartElement) *Alignment {
	al := &Alignment{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "horizontal":
			al.Horizontal = ParseHorizontalAlignment(a.Value)
		case "vertical":
			al.Vertical = ParseVerticalAlignment(a.Value)
		case "wrapText":
			al.WrapText, _ = conv.Bool(a.Value)
		case "shrinkToFit":
			al.ShrinkToFit, _ = conv.Bool(a.Value)
		case "justifyLastLine":
			al.JustifyLastLine, _ = conv.Bool(a.Value)
		case "textRotation":
			if v, ok := conv.Uint(a.Value); ok {
				al.TextRotation = &v
			}
		case "indent":
			if v, ok := conv.Uint(a.Value); ok {
				al.Indent = &v
			}
		case "relativeIndent":
			if v, ok := conv.Int(a.Value); ok {
				al.RelativeIndent = &v
			}
		case "readingOrder":
			if v, ok := conv.Uint(a.Value); ok {
				al.ReadingOrder = &v
			}
		}
	}
	return al
}

func loadProtection(start xml.StartElement) *Protection {
	p := &Protection{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "locked":
			p.Locked = boolAttr(a.Value)
		case "hidden":
			p.Hidden = boolAttr(a.Value)
		}
	}
	return p
}

func loadDxf(cur *xmlcur.Cursor, start xml.StartElement) (*Dxf, error) {
	d := &Dxf{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "font":
			f, err := loadFont(cur, child)
			if err != nil {
				return err
			}
			d.Font = f
			return nil
		case "fill":
			f, err := loadFill(cur, child)
			if err != nil {
				return err
			}
			d.Fill = f
			return nil
		case "border":
			b, err := loadBorder(cur, child)
			if err != nil {
				return err
			}
			d.Border = b
			return nil
		case "numFmt":
			var nf NumFmt
			nf.ID, _ = conv.Uint(xmlcur.AttrValue(child, "numFmtId"))
			nf.Code = xmlcur.AttrValue(child, "formatCode")
			d.NumFmt = &nf
			return cur.Skip()
		case "alignment":
			d.Alignment = loadAlignment(child)
			return cur.Skip()
		case "protection":
			d.Protection = loadProtection(child)
			return cur.Skip()
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return d, nil
}

func loadTableStyles(cur *xmlcur.Cursor, start xml.StartElement, ss *Stylesheet) error {
	ts := &TableStyles{
		DefaultTableStyle: xmlcur.AttrValue(start, "defaultTableStyle"),
		DefaultPivotStyle: xmlcur.AttrValue(start, "defaultPivotStyle"),
	}
	ss.TableStyles = ts
	return cur.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "tableStyle" {
			return cur.Skip()
		}
		style := TableStyle{Name: xmlcur.AttrValue(child, "name")}
		if v, ok := xmlcur.Attr(child, "pivot"); ok {
			style.Pivot = boolAttr(v)
		}
		if v, ok := xmlcur.Attr(child, "table"); ok {
			style.Table = boolAttr(v)
		}
		err := cur.Children(child, func(el xml.StartElement) error {
			if el.Name.Local != "tableStyleElement" {
				return cur.Skip()
			}
			elem := TableStyleElement{Type: xmlcur.AttrValue(el, "type")}
			if v, ok := conv.Uint(xmlcur.AttrValue(el, "dxfId")); ok {
				elem.DxfID = &v
			}
			style.Elements = append(style.Elements, elem)
			return cur.Skip()
		})
		if err != nil {
			return err
		}
		ts.Styles = append(ts.Styles, style)
		return nil
	})
}

func loadStylesheetColors(cur *xmlcur.Cursor, start xml.StartElement, ss *Stylesheet) error {
	return cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "indexedColors":
			return cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local != "rgbColor" {
					return cur.Skip()
				}
				ss.IndexedColors = append(ss.IndexedColors, xmlcur.AttrValue(ce, "rgb"))
				return cur.Skip()
			})
		case "mruColors":
			return cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local != "color" {
					return cur.Skip()
				}
				c, err := loadColor(cur, ce)
				if err != nil {
					return err
				}
				ss.MRUColors = append(ss.MRUColors, c)
				return nil
			})
		}
		return cur.Skip()
	})
}
