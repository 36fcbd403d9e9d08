package model

import (
	"fmt"
	"strings"

	"github.com/tsawler/cellula/opc"
	"github.com/tsawler/cellula/ref"
	"github.com/tsawler/cellula/sml"
)

// Default cell metrics, in character widths and points respectively, used
// when neither the sheet format nor the column/row carries a value.
const (
	DefaultCellWidth  = 8.43
	DefaultCellHeight = 15.0
	DefaultRowDescent = 0.25
)

// Worksheet is a resolved sheet: cells keyed by coordinate, with every style
// reference already followed. Tables and the drawing are attached by the
// workbook reader when the sheet carries them.
type Worksheet struct {
	Name         string
	Dimension    *ref.Dimension
	Cells        map[ref.Coordinate]*Cell
	MergedRanges []ref.Dimension
	Hyperlinks   []Hyperlink
	AutoFilter   *AutoFilter
	Tables       []*Table
	Drawing      *Drawing

	Epoch1904   bool
	CalcRefMode sml.CalcRefMode
}

// Cell is one resolved cell.
type Cell struct {
	Coordinate ref.Coordinate
	Value      CellValue
	Format     CellFormat
}

// CellFormat is the fully resolved formatting of a cell, combining its xf
// with the row and column it sits in.
type CellFormat struct {
	Width        float64
	Height       float64
	Descent      float64
	Hidden       bool
	ShowPhonetic bool
	BestFit      bool

	Font         Font
	Fill         Fill
	Border       Border
	NumberFormat NumberingFormat
	Alignment    *sml.Alignment

	Locked        bool
	FormulaHidden bool
	QuotePrefix   bool
}

// AutoFilter is a resolved filter range. The column criteria are terminal
// values already, so they carry over from the raw part unchanged.
type AutoFilter struct {
	Range   ref.Dimension
	Columns []sml.FilterColumn
}

// Hyperlink is a resolved hyperlink. External links carry Target; internal
// links carry the sheet name and range they jump to.
type Hyperlink struct {
	Ref     ref.Dimension
	Display string
	Tooltip string

	External bool
	Target   string

	Sheet string
	Range ref.Dimension
}

// ResolveWorksheet resolves a raw worksheet part. rels is the sheet's own
// relationship set, consulted for hyperlink targets; it may be nil.
func ResolveWorksheet(name string, raw *sml.Worksheet, rels *opc.Relationships, ctx *Context) (*Worksheet, error) {
	ws := &Worksheet{
		Name:  name,
		Cells: make(map[ref.Coordinate]*Cell),
	}

	if raw.Dimension != "" {
		if d, err := ref.ParseDimension(raw.Dimension); err == nil {
			ws.Dimension = &d
		}
	}
	for _, mc := range raw.MergeCells {
		if d, err := ref.ParseDimension(mc); err == nil {
			ws.MergedRanges = append(ws.MergedRanges, d)
		}
	}

	for _, row := range raw.Rows {
		for _, cell := range row.Cells {
			coord, err := ref.ParseCoordinate(cell.Ref)
			if err != nil {
				return nil, fmt.Errorf("worksheet %s: %w", name, err)
			}
			value, err := resolveCellValue(cell, ctx)
			if err != nil {
				return nil, fmt.Errorf("worksheet %s: %w", name, err)
			}
			col := columnRangeFor(raw.Columns, coord.Column)
			ws.Cells[coord] = &Cell{
				Coordinate: coord,
				Value:      value,
				Format:     resolveCellFormat(cell, row, col, raw.SheetFormat, ctx),
			}
		}
	}

	for _, link := range raw.Hyperlinks {
		if resolved, ok := resolveHyperlink(link, rels, ctx); ok {
			ws.Hyperlinks = append(ws.Hyperlinks, resolved)
		}
	}
	ws.AutoFilter = resolveAutoFilter(raw.AutoFilter)
	return ws, nil
}

// resolveAutoFilter drops a filter whose range does not parse.
func resolveAutoFilter(raw *sml.AutoFilter) *AutoFilter {
	if raw == nil {
		return nil
	}
	d, err := ref.ParseDimension(raw.Ref)
	if err != nil {
		return nil
	}
	return &AutoFilter{Range: d, Columns: raw.Columns}
}

// columnRangeFor finds the first column definition covering a 1-based column.
func columnRangeFor(cols []*sml.ColumnRange, col uint32) *sml.ColumnRange {
	for _, cr := range cols {
		if col >= cr.Min && col <= cr.Max {
			return cr
		}
	}
	return nil
}

func resolveCellFormat(cell *sml.Cell, row *sml.Row, col *sml.ColumnRange, sf *sml.SheetFormat, ctx *Context) CellFormat {
	f := CellFormat{
		Width:   DefaultCellWidth,
		Height:  DefaultCellHeight,
		Descent: DefaultRowDescent,
		Locked:  true,
	}

	switch {
	case col != nil && col.Width != nil:
		f.Width = *col.Width
	case sf != nil && sf.DefaultColWidth != nil:
		f.Width = *sf.DefaultColWidth
	case sf != nil && sf.BaseColWidth != nil:
		f.Width = float64(*sf.BaseColWidth) + 5.0
	}
	switch {
	case row.Height != nil:
		f.Height = *row.Height
	case sf != nil && sf.DefaultRowHeight != nil:
		f.Height = *sf.DefaultRowHeight
	}
	switch {
	case row.DyDescent != nil:
		f.Descent = *row.DyDescent
	case sf != nil && sf.DyDescent != nil:
		f.Descent = *sf.DyDescent
	}
	if col != nil {
		f.BestFit = col.BestFit
	}

	ss := ctx.stylesheet()
	xf := styleXf(cell, row, col, ss)
	f.QuotePrefix = xf != nil && xf.QuotePrefix

	if id, ok := concernID(ss, xf, func(x *sml.Xf) *uint64 { return x.FontID }, func(x *sml.Xf) *bool { return x.ApplyFont }); ok {
		f.Font = fontByID(ctx, id)
	} else {
		f.Font = defaultFont()
	}
	if id, ok := concernID(ss, xf, func(x *sml.Xf) *uint64 { return x.FillID }, func(x *sml.Xf) *bool { return x.ApplyFill }); ok {
		f.Fill = fillByID(ctx, id)
	} else {
		f.Fill = defaultFill()
	}
	if id, ok := concernID(ss, xf, func(x *sml.Xf) *uint64 { return x.BorderID }, func(x *sml.Xf) *bool { return x.ApplyBorder }); ok {
		f.Border = borderByID(ctx, id)
	}
	if id, ok := concernID(ss, xf, func(x *sml.Xf) *uint64 { return x.NumFmtID }, func(x *sml.Xf) *bool { return x.ApplyNumberFormat }); ok {
		f.NumberFormat = numberFormatByID(ctx, id)
	} else {
		f.NumberFormat = defaultNumberFormat()
	}
	f.Alignment = concernAlignment(ss, xf)

	protection := concernProtection(ss, xf)
	if protection != nil && protection.Locked != nil {
		f.Locked = *protection.Locked
	}

	// Formula hiding comes from the protection record; cell visibility
	// layers the row over the sheet default over the column.
	switch {
	case protection != nil && protection.Hidden != nil:
		f.Hidden = *protection.Hidden
	case row.Hidden:
		f.Hidden = true
	case sf != nil && sf.ZeroHeight:
		f.Hidden = true
	case col != nil && col.Hidden:
		f.Hidden = true
	}
	f.FormulaHidden = protection != nil && protection.Hidden != nil && *protection.Hidden

	switch {
	case cell.ShowPhonetic != nil:
		f.ShowPhonetic = *cell.ShowPhonetic
	case row.ShowPhonetic != nil:
		f.ShowPhonetic = *row.ShowPhonetic
	case col != nil && col.Phonetic != nil:
		f.ShowPhonetic = *col.Phonetic
	default:
		f.ShowPhonetic = true
	}
	return f
}

// styleXf picks the cell's xf: the cell's own style wins over the row's,
// which wins over the column's.
func styleXf(cell *sml.Cell, row *sml.Row, col *sml.ColumnRange, ss *sml.Stylesheet) *sml.Xf {
	switch {
	case cell.Style != nil:
		return cellXf(ss, *cell.Style)
	case row.Style != nil:
		return cellXf(ss, *row.Style)
	case col != nil && col.Style != nil:
		return cellXf(ss, *col.Style)
	}
	return nil
}

func resolveHyperlink(link sml.Hyperlink, rels *opc.Relationships, ctx *Context) (Hyperlink, bool) {
	d, err := ref.ParseDimension(link.Ref)
	if err != nil {
		return Hyperlink{}, false
	}
	h := Hyperlink{Ref: d, Display: link.Display, Tooltip: link.Tooltip}

	if link.RelID != "" && rels != nil {
		if rel, ok := rels.ByID(link.RelID); ok && rel.External {
			h.External = true
			h.Target = rel.Target
			return h, true
		}
	}
	if link.Location == "" {
		return Hyperlink{}, false
	}
	h.Sheet, h.Range = parseLinkLocation(link.Location, ctx)
	return h, true
}

// parseLinkLocation interprets an internal link target: a defined name is
// followed to its refers-to text, then "Sheet!Range" is split. Anything that
// does not parse is treated as a bare sheet name.
func parseLinkLocation(location string, ctx *Context) (string, ref.Dimension) {
	if dn, ok := ctx.definedName(location); ok {
		location = dn.Value
	}

	fallback := ref.Dimension{
		Start: ref.Coordinate{Column: 1, Row: 1},
		End:   ref.Coordinate{Column: 1, Row: 1},
	}
	sheet, rangeRef, found := strings.Cut(location, "!")
	if !found {
		return location, fallback
	}
	sheet = strings.Trim(sheet, "'")
	d, err := ref.ParseDimension(strings.ReplaceAll(rangeRef, "$", ""))
	if err != nil {
		return location, fallback
	}
	return sheet, d
}

// SheetInfo identifies one sheet of the workbook without loading its part.
type SheetInfo struct {
	Name    string
	SheetID uint64
	RelID   string
	State   sml.SheetState
	Type    sml.SheetType
	Path    string
}

// NewSheetInfo builds the identity of a workbook sheet entry from the entry
// and the resolved part path. The sheet kind is read off the path segment.
func NewSheetInfo(entry sml.SheetEntry, partPath string) (SheetInfo, error) {
	if entry.Name == "" {
		return SheetInfo{}, fmt.Errorf("sheet %d has no name", entry.SheetID)
	}
	if entry.RelID == "" {
		return SheetInfo{}, fmt.Errorf("sheet %q has no relationship id", entry.Name)
	}

	var typ sml.SheetType
	switch {
	case strings.Contains(partPath, "worksheets/"):
		typ = sml.SheetTypeWorksheet
	case strings.Contains(partPath, "chartsheets/"):
		typ = sml.SheetTypeChartsheet
	case strings.Contains(partPath, "dialogsheets/"):
		typ = sml.SheetTypeDialogsheet
	default:
		return SheetInfo{}, fmt.Errorf("sheet %q: unrecognized part path %q", entry.Name, partPath)
	}
	return SheetInfo{
		Name:    entry.Name,
		SheetID: entry.SheetID,
		RelID:   entry.RelID,
		State:   entry.State,
		Type:    typ,
		Path:    partPath,
	}, nil
}
