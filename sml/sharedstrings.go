package sml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// SharedStrings is the raw xl/sharedStrings.xml part.
type SharedStrings struct {
	Count       uint64
	UniqueCount uint64
	Items       []*StringItem
}

// StringItem is one <si> entry, also the shape of an inline string (<is>).
// A plain item has Text set; a rich-text item carries Runs instead. Both can
// carry phonetic (furigana) data.
type StringItem struct {
	Text         *string
	Runs         []Run
	PhoneticRuns []PhoneticRun
	PhoneticPr   *PhoneticProperties
}

// Run is a rich-text run: optional run properties plus the run's text.
// Run properties reuse the font record; a run names its typeface with
// <rFont> where a font uses <name>.
type Run struct {
	Properties *Font
	Text       string
}

// PhoneticRun is one <rPh> phonetic run covering base-text characters
// [Start, End).
type PhoneticRun struct {
	Start uint64
	End   uint64
	Text  string
}

// PhoneticProperties is the <phoneticPr> element.
type PhoneticProperties struct {
	FontID    uint64
	Type      string
	Alignment string
}

// ParseSharedStrings parses an xl/sharedStrings.xml part.
func ParseSharedStrings(r io.Reader) (*SharedStrings, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("sst")
	if err != nil {
		return nil, fmt.Errorf("shared strings: %w", err)
	}

	sst := &SharedStrings{}
	sst.Count, _ = conv.Uint(xmlcur.AttrValue(start, "count"))
	sst.UniqueCount, _ = conv.Uint(xmlcur.AttrValue(start, "uniqueCount"))

	err = cur.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "si" {
			return cur.Skip()
		}
		item, err := loadStringItem(cur, child)
		if err != nil {
			return err
		}
		sst.Items = append(sst.Items, item)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shared strings: %w", err)
	}
	return sst, nil
}

// loadStringItem loads an <si> or <is> element.
func loadStringItem(cur *xmlcur.Cursor, start xml.StartElement) (*StringItem, error) {
	item := &StringItem{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "t":
			text, err := cur.Text(child)
			if err != nil {
				return err
			}
			item.Text = &text
			return nil
		case "r":
			run := Run{}
			err := cur.Children(child, func(re xml.StartElement) error {
				switch re.Name.Local {
				case "rPr":
					props, err := loadFont(cur, re)
					if err != nil {
						return err
					}
					run.Properties = props
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
			item.Runs = append(item.Runs, run)
			return nil
		case "rPh":
			pr := PhoneticRun{}
			pr.Start, _ = conv.Uint(xmlcur.AttrValue(child, "sb"))
			pr.End, _ = conv.Uint(xmlcur.AttrValue(child, "eb"))
			err := cur.Children(child, func(te xml.StartElement) error {
				if te.Name.Local != "t" {
					return cur.Skip()
				}
				text, err := cur.Text(te)
				if err != nil {
					return err
				}
				pr.Text = text
				return nil
			})
			if err != nil {
				return err
			}
			item.PhoneticRuns = append(item.PhoneticRuns, pr)
			return nil
		case "phoneticPr":
			pp := &PhoneticProperties{
				Type:      xmlcur.AttrValue(child, "type"),
				Alignment: xmlcur.AttrValue(child, "alignment"),
			}
			pp.FontID, _ = conv.Uint(xmlcur.AttrValue(child, "fontId"))
			item.PhoneticPr = pp
			return cur.Skip()
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
