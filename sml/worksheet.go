package sml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Worksheet is a raw xl/worksheets/sheetN.xml part.
type Worksheet struct {
	// sheetPr
	CodeName string
	TabColor *Color

	Dimension string // ref attribute of <dimension>

	SheetFormat *SheetFormat
	Columns     []*ColumnRange
	Rows        []*Row

	MergeCells []string // range refs as written
	AutoFilter *AutoFilter
	Hyperlinks []Hyperlink

	TableParts []string // relationship ids

	DrawingRelID       string
	LegacyDrawingRelID string
}

// SheetFormat is the <sheetFormatPr> element.
type SheetFormat struct {
	BaseColWidth     *uint64
	DefaultColWidth  *float64
	DefaultRowHeight *float64
	CustomHeight     bool
	ZeroHeight       bool
	ThickTop         bool
	ThickBottom      bool
	DyDescent        *float64
	OutlineLevelRow  *uint64
	OutlineLevelCol  *uint64
}

// ColumnRange is a <col> definition covering columns Min through Max
// (1-based, inclusive).
type ColumnRange struct {
	Min          uint32
	Max          uint32
	Width        *float64
	Style        *uint64
	Hidden       bool
	BestFit      bool
	CustomWidth  bool
	Collapsed    bool
	Phonetic     *bool
	OutlineLevel *uint64
}

// Row is a <row> element. Index is 1-based; when the markup omits the r
// attribute the loader assigns the position after the previous row.
type Row struct {
	Index        uint32
	Spans        string
	Style        *uint64
	CustomFormat bool
	Height       *float64
	CustomHeight bool
	Hidden       bool
	Collapsed    bool
	ShowPhonetic *bool
	OutlineLevel *uint64
	DyDescent    *float64
	Cells        []*Cell
}

// Cell is a <c> element. Type is the raw t token, empty when absent; its
// interpretation, including rejection of unknown tokens, happens during
// value resolution.
type Cell struct {
	Ref          string
	Style        *uint64
	Type         string
	ShowPhonetic *bool
	Value        *string
	Formula      *Formula
	InlineString *StringItem
}

// Formula is an <f> element.
type Formula struct {
	Type        FormulaType
	Ref         string
	SharedIndex *uint64
	AlwaysCalc  bool
	Text        string
}

// AutoFilter is an <autoFilter> element, on a worksheet or a table.
type AutoFilter struct {
	Ref     string
	Columns []FilterColumn
}

// FilterColumn is one <filterColumn> with its criteria.
type FilterColumn struct {
	ColID         uint64
	HiddenButton  bool
	ShowButton    *bool
	Filters       *Filters
	CustomFilters *CustomFilters
}

// Filters is a value-list criterion.
type Filters struct {
	Blank  bool
	Values []string
}

// CustomFilters is an operator criterion. And joins the filters with AND
// instead of OR.
type CustomFilters struct {
	And     bool
	Filters []CustomFilter
}

// CustomFilter is one comparison of a custom filter.
type CustomFilter struct {
	Operator string // equal when absent
	Value    string
}

// Hyperlink is one <hyperlink> entry. External links carry a relationship
// id; internal links target a location within the workbook.
type Hyperlink struct {
	Ref      string
	RelID    string
	Location string
	Display  string
	Tooltip  string
}

// ParseWorksheet parses an xl/worksheets/sheetN.xml part.
func ParseWorksheet(r io.Reader) (*Worksheet, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("worksheet")
	if err != nil {
		return nil, fmt.Errorf("worksheet: %w", err)
	}

	ws := &Worksheet{}
	err = cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "sheetPr":
			ws.CodeName = xmlcur.AttrValue(child, "codeName")
			return cur.Children(child, func(pe xml.StartElement) error {
				if pe.Name.Local != "tabColor" {
					return cur.Skip()
				}
				c, err := loadColor(cur, pe)
				if err != nil {
					return err
				}
				ws.TabColor = c
				return nil
			})
		case "dimension":
			ws.Dimension = xmlcur.AttrValue(child, "ref")
			return cur.Skip()
		case "sheetFormatPr":
			ws.SheetFormat = loadSheetFormat(child)
			return cur.Skip()
		case "cols":
			return cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local != "col" {
					return cur.Skip()
				}
				ws.Columns = append(ws.Columns, loadColumnRange(ce))
				return cur.Skip()
			})
		case "sheetData":
			return cur.Children(child, func(re xml.StartElement) error {
				if re.Name.Local != "row" {
					return cur.Skip()
				}
				row, err := loadRow(cur, re, lastRowIndex(ws.Rows))
				if err != nil {
					return err
				}
				ws.Rows = append(ws.Rows, row)
				return nil
			})
		case "mergeCells":
			return cur.Children(child, func(me xml.StartElement) error {
				if me.Name.Local == "mergeCell" {
					if ref, ok := xmlcur.Attr(me, "ref"); ok {
						ws.MergeCells = append(ws.MergeCells, ref)
					}
				}
				return cur.Skip()
			})
		case "autoFilter":
			af, err := LoadAutoFilter(cur, child)
			if err != nil {
				return err
			}
			ws.AutoFilter = af
			return nil
		case "hyperlinks":
			return cur.Children(child, func(he xml.StartElement) error {
				if he.Name.Local == "hyperlink" {
					ws.Hyperlinks = append(ws.Hyperlinks, Hyperlink{
						Ref:      xmlcur.AttrValue(he, "ref"),
						RelID:    xmlcur.AttrValue(he, "id"),
						Location: xmlcur.AttrValue(he, "location"),
						Display:  xmlcur.AttrValue(he, "display"),
						Tooltip:  xmlcur.AttrValue(he, "tooltip"),
					})
				}
				return cur.Skip()
			})
		case "tableParts":
			return cur.Children(child, func(te xml.StartElement) error {
				if te.Name.Local == "tablePart" {
					if id, ok := xmlcur.Attr(te, "id"); ok {
						ws.TableParts = append(ws.TableParts, id)
					}
				}
				return cur.Skip()
			})
		case "drawing":
			ws.DrawingRelID = xmlcur.AttrValue(child, "id")
			return cur.Skip()
		case "legacyDrawing":
			ws.LegacyDrawingRelID = xmlcur.AttrValue(child, "id")
			return cur.Skip()
		default:
			return cur.Skip()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("worksheet: %w", err)
	}
	return ws, nil
}

func lastRowIndex(rows []*Row) uint32 {
	if len(rows) == 0 {
		return 0
	}
	return rows[len(rows)-1].Index
}

func loadSheetFormat(start xml.StartElement) *SheetFormat {
	sf := &SheetFormat{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "baseColWidth":
			if v, ok := conv.Uint(a.Value); ok {
				sf.BaseColWidth = &v
			}
		case "defaultColWidth":
			if v, ok := conv.Float(a.Value); ok {
				sf.DefaultColWidth = &v
			}
		case "defaultRowHeight":
			if v, ok := conv.Float(a.Value); ok {
				sf.DefaultRowHeight = &v
			}
		case "customHeight":
			sf.CustomHeight, _ = conv.Bool(a.Value)
		case "zeroHeight":
			sf.ZeroHeight, _ = conv.Bool(a.Value)
		case "thickTop":
			sf.ThickTop, _ = conv.Bool(a.Value)
		case "thickBottom":
			sf.ThickBottom, _ = conv.Bool(a.Value)
		case "dyDescent":
			if v, ok := conv.Float(a.Value); ok {
				sf.DyDescent = &v
			}
		case "outlineLevelRow":
			if v, ok := conv.Uint(a.Value); ok {
				sf.OutlineLevelRow = &v
			}
		case "outlineLevelCol":
			if v, ok := conv.Uint(a.Value); ok {
				sf.OutlineLevelCol = &v
			}
		}
	}
	return sf
}

func loadColumnRange(start xml.StartElement) *ColumnRange {
	cr := &ColumnRange{}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "min":
			if v, ok := conv.Uint(a.Value); ok {
				cr.Min = uint32(v)
			}
		case "max":
			if v, ok := conv.Uint(a.Value); ok {
				cr.Max = uint32(v)
			}
		case "width":
			if v, ok := conv.Float(a.Value); ok {
				cr.Width = &v
			}
		case "style":
			if v, ok := conv.Uint(a.Value); ok {
				cr.Style = &v
			}
		case "hidden":
			cr.Hidden, _ = conv.Bool(a.Value)
		case "bestFit":
			cr.BestFit, _ = conv.Bool(a.Value)
		case "customWidth":
			cr.CustomWidth, _ = conv.Bool(a.Value)
		case "collapsed":
			cr.Collapsed, _ = conv.Bool(a.Value)
		case "phonetic":
			cr.Phonetic = boolAttr(a.Value)
		case "outlineLevel":
			if v, ok := conv.Uint(a.Value); ok {
				cr.OutlineLevel = &v
			}
		}
	}
	return cr
}

func loadRow(cur *xmlcur.Cursor, start xml.StartElement, prev uint32) (*Row, error) {
	row := &Row{Index: prev + 1}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "r":
			if v, ok := conv.Uint(a.Value); ok {
				row.Index = uint32(v)
			}
		case "spans":
			row.Spans = a.Value
		case "s":
			if v, ok := conv.Uint(a.Value); ok {
				row.Style = &v
			}
		case "customFormat":
			row.CustomFormat, _ = conv.Bool(a.Value)
		case "ht":
			if v, ok := conv.Float(a.Value); ok {
				row.Height = &v
			}
		case "customHeight":
			row.CustomHeight, _ = conv.Bool(a.Value)
		case "hidden":
			row.Hidden, _ = conv.Bool(a.Value)
		case "collapsed":
			row.Collapsed, _ = conv.Bool(a.Value)
		case "ph":
			row.ShowPhonetic = boolAttr(a.Value)
		case "outlineLevel":
			if v, ok := conv.Uint(a.Value); ok {
				row.OutlineLevel = &v
			}
		case "dyDescent":
			if v, ok := conv.Float(a.Value); ok {
				row.DyDescent = &v
			}
		}
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "c" {
			return cur.Skip()
		}
		cell, err := loadCell(cur, child)
		if err != nil {
			return err
		}
		row.Cells = append(row.Cells, cell)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func loadCell(cur *xmlcur.Cursor, start xml.StartElement) (*Cell, error) {
	cell := &Cell{Type: "n"}
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "r":
			cell.Ref = a.Value
		case "s":
			if v, ok := conv.Uint(a.Value); ok {
				cell.Style = &v
			}
		case "t":
			cell.Type = a.Value
		case "ph":
			cell.ShowPhonetic = boolAttr(a.Value)
		}
	}
	if cell.Ref == "" {
		return nil, fmt.Errorf("cell without coordinate")
	}

	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "v":
			text, err := cur.Text(child)
			if err != nil {
				return err
			}
			cell.Value = &text
			return nil
		case "f":
			f := &Formula{
				Type: ParseFormulaType(xmlcur.AttrValue(child, "t")),
				Ref:  xmlcur.AttrValue(child, "ref"),
			}
			if v, ok := conv.Uint(xmlcur.AttrValue(child, "si")); ok {
				f.SharedIndex = &v
			}
			f.AlwaysCalc, _ = conv.Bool(xmlcur.AttrValue(child, "ca"))
			text, err := cur.Text(child)
			if err != nil {
				return err
			}
			f.Text = text
			cell.Formula = f
			return nil
		case "is":
			item, err := loadStringItem(cur, child)
			if err != nil {
				return err
			}
			cell.InlineString = item
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return cell, nil
}

// LoadAutoFilter loads an <autoFilter> element, shared by worksheets and
// tables.
func LoadAutoFilter(cur *xmlcur.Cursor, start xml.StartElement) (*AutoFilter, error) {
	af := &AutoFilter{Ref: xmlcur.AttrValue(start, "ref")}
	err := cur.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "filterColumn" {
			return cur.Skip()
		}
		fc := FilterColumn{}
		fc.ColID, _ = conv.Uint(xmlcur.AttrValue(child, "colId"))
		fc.HiddenButton, _ = conv.Bool(xmlcur.AttrValue(child, "hiddenButton"))
		if v, ok := xmlcur.Attr(child, "showButton"); ok {
			fc.ShowButton = boolAttr(v)
		}

		err := cur.Children(child, func(ce xml.StartElement) error {
			switch ce.Name.Local {
			case "filters":
				fl := &Filters{}
				fl.Blank, _ = conv.Bool(xmlcur.AttrValue(ce, "blank"))
				fc.Filters = fl
				return cur.Children(ce, func(fe xml.StartElement) error {
					if fe.Name.Local == "filter" {
						if v, ok := xmlcur.Attr(fe, "val"); ok {
							fl.Values = append(fl.Values, v)
						}
					}
					return cur.Skip()
				})
			case "customFilters":
				cf := &CustomFilters{}
				cf.And, _ = conv.Bool(xmlcur.AttrValue(ce, "and"))
				fc.CustomFilters = cf
				return cur.Children(ce, func(fe xml.StartElement) error {
					if fe.Name.Local == "customFilter" {
						cf.Filters = append(cf.Filters, CustomFilter{
							Operator: xmlcur.AttrValue(fe, "operator"),
							Value:    xmlcur.AttrValue(fe, "val"),
						})
					}
					return cur.Skip()
				})
			}
			return cur.Skip()
		})
		if err != nil {
			return err
		}
		af.Columns = append(af.Columns, fc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return af, nil
}
