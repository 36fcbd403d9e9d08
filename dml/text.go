package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// TextBody is a <txBody> element: body properties plus paragraphs.
type TextBody struct {
	BodyProperties *BodyProperties
	Paragraphs     []*Paragraph
}

// BodyProperties is a <bodyPr> element. Insets are in EMUs, Rotation in
// 60000ths of a degree.
type BodyProperties struct {
	Rotation     *int64
	VertOverflow string
	HorzOverflow string
	Vertical     string
	Wrap         string
	Anchor       string
	AnchorCenter *bool
	LeftInset    *int64
	TopInset     *int64
	RightInset   *int64
	BottomInset  *int64
}

// Paragraph is an <a:p> element.
type Paragraph struct {
	Properties       *ParagraphProperties
	Runs             []*TextRun
	EndRunProperties *RunProperties
}

// ParagraphProperties is an <a:pPr> element with the bullet settings the
// drawing text model uses.
type ParagraphProperties struct {
	Align       string
	Level       *int64
	Indent      *int64
	MarginLeft  *int64
	MarginRight *int64
	DefaultTab  *int64
	RightToLeft *bool

	BulletNone    bool
	BulletChar    string
	BulletAutoNum string
	BulletColor   *Color
	BulletFont    string

	DefaultRunProperties *RunProperties
}

// RunKind distinguishes text runs, line breaks and text fields.
type RunKind int

const (
	RunText RunKind = iota
	RunBreak
	RunField
)

// TextRun is an <a:r>, <a:br> or <a:fld> child of a paragraph.
type TextRun struct {
	Kind       RunKind
	Properties *RunProperties
	Text       string

	// fld only
	FieldID   string
	FieldType string
}

// RunProperties is an <a:rPr> (or defRPr/endParaRPr) element. Size is in
// hundredths of a point.
type RunProperties struct {
	Size      *int64
	Bold      *bool
	Italic    *bool
	Underline string
	Strike    string
	Spacing   *int64
	Baseline  *int64
	Language  string

	Fill      *Fill
	Line      *Line
	Highlight *Color

	LatinFont         string
	EastAsianFont     string
	ComplexScriptFont string
}

// loadTextBody loads a <txBody> element.
func loadTextBody(cur *xmlcur.Cursor, start xml.StartElement) (*TextBody, error) {
	tb := &TextBody{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "bodyPr":
			tb.BodyProperties = loadBodyProperties(child)
			return cur.Skip()
		case "p":
			p, err := loadParagraph(cur, child)
			if err != nil {
				return err
			}
			tb.Paragraphs = append(tb.Paragraphs, p)
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return tb, nil
}

func loadBodyProperties(start xml.StartElement) *BodyProperties {
	bp := &BodyProperties{
		VertOverflow: xmlcur.AttrValue(start, "vertOverflow"),
		HorzOverflow: xmlcur.AttrValue(start, "horzOverflow"),
		Vertical:     xmlcur.AttrValue(start, "vert"),
		Wrap:         xmlcur.AttrValue(start, "wrap"),
		Anchor:       xmlcur.AttrValue(start, "anchor"),
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "rot")); ok {
		bp.Rotation = &v
	}
	if v, ok := xmlcur.Attr(start, "anchorCtr"); ok {
		if b, parsed := conv.Bool(v); parsed {
			bp.AnchorCenter = &b
		}
	}
	for attr, slot := range map[string]**int64{
		"lIns": &bp.LeftInset,
		"tIns": &bp.TopInset,
		"rIns": &bp.RightInset,
		"bIns": &bp.BottomInset,
	} {
		if v, ok := conv.Int(xmlcur.AttrValue(start, attr)); ok {
			*slot = &v
		}
	}
	return bp
}

func loadParagraph(cur *xmlcur.Cursor, start xml.StartElement) (*Paragraph, error) {
	p := &Paragraph{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "pPr":
			pp, err := loadParagraphProperties(cur, child)
			if err != nil {
				return err
			}
			p.Properties = pp
			return nil
		case "r":
			run := &TextRun{Kind: RunText}
			err := cur.Children(child, func(re xml.StartElement) error {
				switch re.Name.Local {
				case "rPr":
					rp, err := loadRunProperties(cur, re)
					if err != nil {
						return err
					}
					run.Properties = rp
					return nil
				case "t":
					text, err := cur.Text(re)
					if err != nil {
						return err
					}
					run.Text = text
					return nil
				}
				return cur.Skip()
			})
			if err != nil {
				return err
			}
			p.Runs = append(p.Runs, run)
			return nil
		case "br":
			run := &TextRun{Kind: RunBreak}
			err := cur.Children(child, func(re xml.StartElement) error {
				if re.Name.Local != "rPr" {
					return cur.Skip()
				}
				rp, err := loadRunProperties(cur, re)
				if err != nil {
					return err
				}
				run.Properties = rp
				return nil
			})
			if err != nil {
				return err
			}
			p.Runs = append(p.Runs, run)
			return nil
		case "fld":
			run := &TextRun{
				Kind:      RunField,
				FieldID:   xmlcur.AttrValue(child, "id"),
				FieldType: xmlcur.AttrValue(child, "type"),
			}
			err := cur.Children(child, func(re xml.StartElement) error {
				switch re.Name.Local {
				case "rPr":
					rp, err := loadRunProperties(cur, re)
					if err != nil {
						return err
					}
					run.Properties = rp
					return nil
				case "t":
					text, err := cur.Text(re)
					if err != nil {
						return err
					}
					run.Text = text
					return nil
				}
				return cur.Skip()
			})
			if err != nil {
				return err
			}
			p.Runs = append(p.Runs, run)
			return nil
		case "endParaRPr":
			rp, err := loadRunProperties(cur, child)
			if err != nil {
				return err
			}
			p.EndRunProperties = rp
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func loadParagraphProperties(cur *xmlcur.Cursor, start xml.StartElement) (*ParagraphProperties, error) {
	pp := &ParagraphProperties{Align: xmlcur.AttrValue(start, "algn")}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "lvl")); ok {
		pp.Level = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "indent")); ok {
		pp.Indent = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "marL")); ok {
		pp.MarginLeft = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "marR")); ok {
		pp.MarginRight = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "defTabSz")); ok {
		pp.DefaultTab = &v
	}
	if v, ok := xmlcur.Attr(start, "rtl"); ok {
		if b, parsed := conv.Bool(v); parsed {
			pp.RightToLeft = &b
		}
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "buNone":
			pp.BulletNone = true
		case "buChar":
			pp.BulletChar = xmlcur.AttrValue(child, "char")
		case "buAutoNum":
			pp.BulletAutoNum = xmlcur.AttrValue(child, "type")
		case "buFont":
			pp.BulletFont = xmlcur.AttrValue(child, "typeface")
		case "buClr":
			c, err := loadSingleColor(cur, child)
			if err != nil {
				return err
			}
			pp.BulletColor = c
			return nil
		case "defRPr":
			rp, err := loadRunProperties(cur, child)
			if err != nil {
				return err
			}
			pp.DefaultRunProperties = rp
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return pp, nil
}

func loadRunProperties(cur *xmlcur.Cursor, start xml.StartElement) (*RunProperties, error) {
	rp := &RunProperties{
		Underline: xmlcur.AttrValue(start, "u"),
		Strike:    xmlcur.AttrValue(start, "strike"),
		Language:  xmlcur.AttrValue(start, "lang"),
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "sz")); ok {
		rp.Size = &v
	}
	if v, ok := xmlcur.Attr(start, "b"); ok {
		rp.Bold = boolPtr(v)
	}
	if v, ok := xmlcur.Attr(start, "i"); ok {
		rp.Italic = boolPtr(v)
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "spc")); ok {
		rp.Spacing = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "baseline")); ok {
		rp.Baseline = &v
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		switch local := child.Name.Local; {
		case IsFillElement(local):
			f, err := loadFill(cur, child)
			if err != nil {
				return err
			}
			rp.Fill = f
			return nil
		case local == "ln":
			ln, err := loadLine(cur, child)
			if err != nil {
				return err
			}
			rp.Line = ln
			return nil
		case local == "highlight":
			c, err := loadSingleColor(cur, child)
			if err != nil {
				return err
			}
			rp.Highlight = c
			return nil
		case local == "latin":
			rp.LatinFont = xmlcur.AttrValue(child, "typeface")
		case local == "ea":
			rp.EastAsianFont = xmlcur.AttrValue(child, "typeface")
		case local == "cs":
			rp.ComplexScriptFont = xmlcur.AttrValue(child, "typeface")
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return rp, nil
}

func boolPtr(s string) *bool {
	v, ok := conv.Bool(s)
	if !ok {
		return nil
	}
	return &v
}
