package dml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/xmlcur"
)

// Theme is the raw xl/theme/themeN.xml part, reduced to the three schemes
// style resolution consumes.
type Theme struct {
	Name         string
	ColorScheme  *ColorScheme
	FontScheme   *FontScheme
	FormatScheme *FormatScheme
}

// ColorScheme is the <clrScheme> element: the twelve scheme slots.
type ColorScheme struct {
	Name string

	Dark1             *Color
	Light1            *Color
	Dark2             *Color
	Light2            *Color
	Accent1           *Color
	Accent2           *Color
	Accent3           *Color
	Accent4           *Color
	Accent5           *Color
	Accent6           *Color
	Hyperlink         *Color
	FollowedHyperlink *Color
}

// BySlot resolves a schemeClr slot name to its color. The text/background
// aliases map onto the dark/light slots (tx1 to dk1, bg1 to lt1, tx2 to dk2,
// bg2 to lt2). phClr is not a slot; callers handle it before asking.
func (cs *ColorScheme) BySlot(name string) *Color {
	if cs == nil {
		return nil
	}
	switch name {
	case "dk1", "tx1":
		return cs.Dark1
	case "lt1", "bg1":
		return cs.Light1
	case "dk2", "tx2":
		return cs.Dark2
	case "lt2", "bg2":
		return cs.Light2
	case "accent1":
		return cs.Accent1
	case "accent2":
		return cs.Accent2
	case "accent3":
		return cs.Accent3
	case "accent4":
		return cs.Accent4
	case "accent5":
		return cs.Accent5
	case "accent6":
		return cs.Accent6
	case "hlink":
		return cs.Hyperlink
	case "folHlink":
		return cs.FollowedHyperlink
	}
	return nil
}

// ByIndex resolves a SpreadsheetML theme color index. The first four entries
// are swapped relative to declaration order: 0 is light1 and 1 is dark1,
// then 2 is light2 and 3 is dark2.
func (cs *ColorScheme) ByIndex(i uint64) *Color {
	if cs == nil {
		return nil
	}
	switch i {
	case 0:
		return cs.Light1
	case 1:
		return cs.Dark1
	case 2:
		return cs.Light2
	case 3:
		return cs.Dark2
	case 4:
		return cs.Accent1
	case 5:
		return cs.Accent2
	case 6:
		return cs.Accent3
	case 7:
		return cs.Accent4
	case 8:
		return cs.Accent5
	case 9:
		return cs.Accent6
	case 10:
		return cs.Hyperlink
	case 11:
		return cs.FollowedHyperlink
	}
	return nil
}

// FontScheme is the <fontScheme> element.
type FontScheme struct {
	Name  string
	Major FontCollection
	Minor FontCollection
}

// FontCollection is a majorFont/minorFont triple of typefaces.
type FontCollection struct {
	Latin         string
	EastAsian     string
	ComplexScript string
}

// FormatScheme is the <fmtScheme> element: the style lists shape style
// references index into.
type FormatScheme struct {
	Name         string
	FillStyles   []*Fill
	LineStyles   []*Line
	EffectStyles []*EffectStyle
	BgFillStyles []*Fill
}

// ParseTheme parses an xl/theme/themeN.xml part.
func ParseTheme(r io.Reader) (*Theme, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("theme")
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}

	th := &Theme{Name: xmlcur.AttrValue(start, "name")}
	err = cur.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "themeElements" {
			return cur.Skip()
		}
		return cur.Children(child, func(el xml.StartElement) error {
			switch el.Name.Local {
			case "clrScheme":
				cs, err := loadColorScheme(cur, el)
				if err != nil {
					return err
				}
				th.ColorScheme = cs
				return nil
			case "fontScheme":
				fs, err := loadFontScheme(cur, el)
				if err != nil {
					return err
				}
				th.FontScheme = fs
				return nil
			case "fmtScheme":
				fm, err := loadFormatScheme(cur, el)
				if err != nil {
					return err
				}
				th.FormatScheme = fm
				return nil
			}
			return cur.Skip()
		})
	})
	if err != nil {
		return nil, fmt.Errorf("theme: %w", err)
	}
	return th, nil
}

func loadColorScheme(cur *xmlcur.Cursor, start xml.StartElement) (*ColorScheme, error) {
	cs := &ColorScheme{Name: xmlcur.AttrValue(start, "name")}
	err := cur.Children(start, func(child xml.StartElement) error {
		var slot **Color
		switch child.Name.Local {
		case "dk1":
			slot = &cs.Dark1
		case "lt1":
			slot = &cs.Light1
		case "dk2":
			slot = &cs.Dark2
		case "lt2":
			slot = &cs.Light2
		case "accent1":
			slot = &cs.Accent1
		case "accent2":
			slot = &cs.Accent2
		case "accent3":
			slot = &cs.Accent3
		case "accent4":
			slot = &cs.Accent4
		case "accent5":
			slot = &cs.Accent5
		case "accent6":
			slot = &cs.Accent6
		case "hlink":
			slot = &cs.Hyperlink
		case "folHlink":
			slot = &cs.FollowedHyperlink
		default:
			return cur.Skip()
		}
		c, err := loadSingleColor(cur, child)
		if err != nil {
			return err
		}
		*slot = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cs, nil
}

func loadFontScheme(cur *xmlcur.Cursor, start xml.StartElement) (*FontScheme, error) {
	fs := &FontScheme{Name: xmlcur.AttrValue(start, "name")}
	err := cur.Children(start, func(child xml.StartElement) error {
		var coll *FontCollection
		switch child.Name.Local {
		case "majorFont":
			coll = &fs.Major
		case "minorFont":
			coll = &fs.Minor
		default:
			return cur.Skip()
		}
		return cur.Children(child, func(fe xml.StartElement) error {
			switch fe.Name.Local {
			case "latin":
				coll.Latin = xmlcur.AttrValue(fe, "typeface")
			case "ea":
				coll.EastAsian = xmlcur.AttrValue(fe, "typeface")
			case "cs":
				coll.ComplexScript = xmlcur.AttrValue(fe, "typeface")
			}
			return cur.Skip()
		})
	})
	if err != nil {
		return nil, err
	}
	return fs, nil
}

func loadFormatScheme(cur *xmlcur.Cursor, start xml.StartElement) (*FormatScheme, error) {
	fm := &FormatScheme{Name: xmlcur.AttrValue(start, "name")}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "fillStyleLst":
			return cur.Children(child, func(fe xml.StartElement) error {
				if !IsFillElement(fe.Name.Local) {
					return cur.Skip()
				}
				f, err := loadFill(cur, fe)
				if err != nil {
					return err
				}
				fm.FillStyles = append(fm.FillStyles, f)
				return nil
			})
		case "lnStyleLst":
			return cur.Children(child, func(le xml.StartElement) error {
				if le.Name.Local != "ln" {
					return cur.Skip()
				}
				ln, err := loadLine(cur, le)
				if err != nil {
					return err
				}
				fm.LineStyles = append(fm.LineStyles, ln)
				return nil
			})
		case "effectStyleLst":
			return cur.Children(child, func(ee xml.StartElement) error {
				if ee.Name.Local != "effectStyle" {
					return cur.Skip()
				}
				es, err := loadEffectStyle(cur, ee)
				if err != nil {
					return err
				}
				fm.EffectStyles = append(fm.EffectStyles, es)
				return nil
			})
		case "bgFillStyleLst":
			return cur.Children(child, func(fe xml.StartElement) error {
				if !IsFillElement(fe.Name.Local) {
					return cur.Skip()
				}
				f, err := loadFill(cur, fe)
				if err != nil {
					return err
				}
				fm.BgFillStyles = append(fm.BgFillStyles, f)
				return nil
			})
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return fm, nil
}
