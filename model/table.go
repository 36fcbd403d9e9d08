package model

import (
	"fmt"

	"github.com/tsawler/cellula/ref"
	"github.com/tsawler/cellula/sml"
)

// Table is a resolved worksheet table.
type Table struct {
	ID          uint64
	Name        string
	DisplayName string
	Range       ref.Dimension

	HeaderRowCount uint64
	TotalsRowCount uint64

	Columns    []TableColumn
	AutoFilter *AutoFilter
	Style      TableStyle
}

// TableColumn is one resolved table column.
type TableColumn struct {
	ID                uint64
	Name              string
	TotalsRowLabel    string
	TotalsRowFunction string
	Formula           string
}

// TableStyle is the resolved table style binding.
type TableStyle struct {
	Name              string
	ShowFirstColumn   bool
	ShowLastColumn    bool
	ShowRowStripes    bool
	ShowColumnStripes bool
}

// ResolveTable resolves a raw table part. The header and totals row counts
// default to one row each; a style without a name inherits the stylesheet's
// default table style.
func ResolveTable(raw *sml.Table, ctx *Context) (*Table, error) {
	d, err := ref.ParseDimension(raw.Ref)
	if err != nil {
		return nil, fmt.Errorf("table %q: %w", raw.Name, err)
	}

	t := &Table{
		ID:             raw.ID,
		Name:           raw.Name,
		DisplayName:    raw.DisplayName,
		Range:          d,
		HeaderRowCount: 1,
		TotalsRowCount: 1,
	}
	if t.ID == 0 {
		t.ID = 1
	}
	if raw.HeaderRowCount != nil {
		t.HeaderRowCount = *raw.HeaderRowCount
	}
	if raw.TotalsRowCount != nil {
		t.TotalsRowCount = *raw.TotalsRowCount
	}

	for _, col := range raw.Columns {
		t.Columns = append(t.Columns, TableColumn{
			ID:                col.ID,
			Name:              col.Name,
			TotalsRowLabel:    col.TotalsRowLabel,
			TotalsRowFunction: col.TotalsRowFunc,
			Formula:           col.CalculatedColumn,
		})
	}

	t.AutoFilter = resolveAutoFilter(raw.AutoFilter)

	if raw.StyleInfo != nil {
		t.Style = TableStyle{
			Name:              raw.StyleInfo.Name,
			ShowFirstColumn:   raw.StyleInfo.ShowFirstColumn,
			ShowLastColumn:    raw.StyleInfo.ShowLastColumn,
			ShowRowStripes:    raw.StyleInfo.ShowRowStripes,
			ShowColumnStripes: raw.StyleInfo.ShowColumnStripes,
		}
	}
	if t.Style.Name == "" {
		if ss := ctx.stylesheet(); ss != nil && ss.TableStyles != nil {
			t.Style.Name = ss.TableStyles.DefaultTableStyle
		}
	}
	return t, nil
}
