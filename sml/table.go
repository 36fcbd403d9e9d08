package sml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Table is a raw xl/tables/tableN.xml part.
type Table struct {
	ID             uint64
	Name           string
	DisplayName    string
	Ref            string
	HeaderRowCount *uint64
	TotalsRowCount *uint64
	TotalsRowShown *bool

	AutoFilter *AutoFilter
	Columns    []TableColumn
	StyleInfo  *TableStyleInfo
}

// TableColumn is one <tableColumn> entry.
type TableColumn struct {
	ID               uint64
	Name             string
	TotalsRowLabel   string
	TotalsRowFunc    string
	CalculatedColumn string // formula text, when the column is calculated
}

// TableStyleInfo is the <tableStyleInfo> element. An empty Name means the
// consumer's default table style applies.
type TableStyleInfo struct {
	Name              string
	ShowFirstColumn   bool
	ShowLastColumn    bool
	ShowRowStripes    bool
	ShowColumnStripes bool
}

// ParseTable parses an xl/tables/tableN.xml part.
func ParseTable(r io.Reader) (*Table, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("table")
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}

	t := &Table{
		Name:        xmlcur.AttrValue(start, "name"),
		DisplayName: xmlcur.AttrValue(start, "displayName"),
		Ref:         xmlcur.AttrValue(start, "ref"),
	}
	t.ID, _ = conv.Uint(xmlcur.AttrValue(start, "id"))
	if v, ok := conv.Uint(xmlcur.AttrValue(start, "headerRowCount")); ok {
		t.HeaderRowCount = &v
	}
	if v, ok := conv.Uint(xmlcur.AttrValue(start, "totalsRowCount")); ok {
		t.TotalsRowCount = &v
	}
	if v, ok := xmlcur.Attr(start, "totalsRowShown"); ok {
		t.TotalsRowShown = boolAttr(v)
	}

	err = cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "autoFilter":
			af, err := LoadAutoFilter(cur, child)
			if err != nil {
				return err
			}
			t.AutoFilter = af
			return nil
		case "tableColumns":
			return cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local != "tableColumn" {
					return cur.Skip()
				}
				col := TableColumn{
					Name:           xmlcur.AttrValue(ce, "name"),
					TotalsRowLabel: xmlcur.AttrValue(ce, "totalsRowLabel"),
					TotalsRowFunc:  xmlcur.AttrValue(ce, "totalsRowFunction"),
				}
				col.ID, _ = conv.Uint(xmlcur.AttrValue(ce, "id"))
				err := cur.Children(ce, func(fe xml.StartElement) error {
					if fe.Name.Local != "calculatedColumnFormula" {
						return cur.Skip()
					}
					text, err := cur.Text(fe)
					if err != nil {
						return err
					}
					col.CalculatedColumn = text
					return nil
				})
				if err != nil {
					return err
				}
				t.Columns = append(t.Columns, col)
				return nil
			})
		case "tableStyleInfo":
			info := &TableStyleInfo{Name: xmlcur.AttrValue(child, "name")}
			info.ShowFirstColumn, _ = conv.Bool(xmlcur.AttrValue(child, "showFirstColumn"))
			info.ShowLastColumn, _ = conv.Bool(xmlcur.AttrValue(child, "showLastColumn"))
			info.ShowRowStripes, _ = conv.Bool(xmlcur.AttrValue(child, "showRowStripes"))
			info.ShowColumnStripes, _ = conv.Bool(xmlcur.AttrValue(child, "showColumnStripes"))
			t.StyleInfo = info
			return cur.Skip()
		default:
			return cur.Skip()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	return t, nil
}
