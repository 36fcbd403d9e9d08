// Package cellula reads .xlsx workbooks into a self-contained object model.
//
// Basic usage:
//
//	wb, err := cellula.Open("report.xlsx")
//	if err != nil {
//	    // handle error
//	}
//	defer wb.Close()
//
//	ws, err := wb.Worksheet("Sheet1")
//	if err != nil {
//	    // handle error
//	}
//	for coord, cell := range ws.Cells {
//	    fmt.Println(coord, cell.Value.Kind)
//	}
//
// Worksheet returns resolved entities: colors as "rrggbbaa" hex, lengths in
// points, every style reference followed to a terminal value. The raw parsed
// parts remain reachable through the Raw* accessors for callers that need
// the markup-level view. The lower-level sml, dml, opc and model packages
// are also available directly.
package cellula

import (
	"bytes"
	"fmt"

	"github.com/tsawler/cellula/dml"
	"github.com/tsawler/cellula/model"
	"github.com/tsawler/cellula/opc"
	"github.com/tsawler/cellula/sml"
)

// Workbook is an open spreadsheet package. It must be closed when done.
type Workbook struct {
	container *opc.Container
	cfg       config

	workbookPath string
	workbook     *sml.Workbook
	rels         *opc.Relationships

	ctx    *model.Context
	sheets []model.SheetInfo
}

type config struct {
	skipTables   bool
	skipDrawings bool
}

// Option adjusts how a workbook is opened.
type Option func(*config)

// WithoutTables skips loading table parts when resolving worksheets.
func WithoutTables() Option {
	return func(c *config) { c.skipTables = true }
}

// WithoutDrawings skips loading drawing parts and their image payloads when
// resolving worksheets.
func WithoutDrawings() Option {
	return func(c *config) { c.skipDrawings = true }
}

// Open opens the workbook file at the given path.
func Open(filename string, opts ...Option) (*Workbook, error) {
	c, err := opc.Open(filename)
	if err != nil {
		return nil, err
	}
	wb, err := newWorkbook(c, opts)
	if err != nil {
		c.Close()
		return nil, err
	}
	return wb, nil
}

// OpenReader opens a workbook held in memory.
func OpenReader(data []byte, opts ...Option) (*Workbook, error) {
	c, err := opc.OpenReader(data)
	if err != nil {
		return nil, err
	}
	return newWorkbook(c, opts)
}

func newWorkbook(c *opc.Container, opts []Option) (*Workbook, error) {
	rootRels, err := c.Relationships("")
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}
	docRels := rootRels.ByType(opc.RelTypeOfficeDocument)
	if len(docRels) == 0 {
		return nil, fmt.Errorf("cellula: package has no office document")
	}
	wbPath, _ := rootRels.TargetPath(docRels[0].ID)

	data, err := c.Part(wbPath)
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}
	rawWB, err := sml.ParseWorkbook(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}

	wbRels, err := c.Relationships(wbPath)
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	wb := &Workbook{
		container:    c,
		cfg:          cfg,
		workbookPath: wbPath,
		workbook:     rawWB,
		rels:         wbRels,
		ctx:          &model.Context{DefinedNames: rawWB.DefinedNames},
	}
	if err := wb.loadSharedParts(); err != nil {
		return nil, err
	}

	for _, entry := range rawWB.Sheets {
		partPath, ok := wbRels.TargetPath(entry.RelID)
		if !ok {
			return nil, fmt.Errorf("cellula: sheet %q: unknown relationship %q", entry.Name, entry.RelID)
		}
		info, err := model.NewSheetInfo(entry, partPath)
		if err != nil {
			return nil, fmt.Errorf("cellula: %w", err)
		}
		wb.sheets = append(wb.sheets, info)
	}
	return wb, nil
}

// loadSharedParts parses the workbook-level shared tables: styles, shared
// strings and the theme. Each is optional.
func (w *Workbook) loadSharedParts() error {
	if path, ok := w.relTarget(opc.RelTypeStyles); ok {
		data, err := w.container.Part(path)
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		ss, err := sml.ParseStylesheet(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		w.ctx.Stylesheet = ss
	}
	if path, ok := w.relTarget(opc.RelTypeSharedStrings); ok {
		data, err := w.container.Part(path)
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		sst, err := sml.ParseSharedStrings(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		w.ctx.SharedStrings = sst
	}
	if path, ok := w.relTarget(opc.RelTypeTheme); ok {
		data, err := w.container.Part(path)
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		theme, err := dml.ParseTheme(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		w.ctx.Theme = theme
	}
	return nil
}

func (w *Workbook) relTarget(relType string) (string, bool) {
	rels := w.rels.ByType(relType)
	if len(rels) == 0 {
		return "", false
	}
	return w.rels.TargetPath(rels[0].ID)
}

// Close releases the underlying file, if the workbook owns one.
func (w *Workbook) Close() error {
	return w.container.Close()
}

// Sheets lists the workbook's sheets in tab order, hidden ones included.
func (w *Workbook) Sheets() []model.SheetInfo {
	out := make([]model.SheetInfo, len(w.sheets))
	copy(out, w.sheets)
	return out
}

// SheetByName finds a sheet by its tab name.
func (w *Workbook) SheetByName(name string) (model.SheetInfo, bool) {
	for _, info := range w.sheets {
		if info.Name == name {
			return info, true
		}
	}
	return model.SheetInfo{}, false
}

// Epoch1904 reports whether serial dates count from the 1904 epoch.
func (w *Workbook) Epoch1904() bool {
	return w.workbook.Epoch1904()
}

// CalcRefMode returns the workbook's calculation reference mode.
func (w *Workbook) CalcRefMode() sml.CalcRefMode {
	return w.workbook.CalcRefMode
}

// DefinedNames returns the workbook's defined names.
func (w *Workbook) DefinedNames() []sml.DefinedName {
	out := make([]sml.DefinedName, len(w.workbook.DefinedNames))
	copy(out, w.workbook.DefinedNames)
	return out
}

// Worksheet loads and resolves the named worksheet, including its tables and
// drawing.
func (w *Workbook) Worksheet(name string) (*model.Worksheet, error) {
	info, ok := w.SheetByName(name)
	if !ok {
		return nil, fmt.Errorf("cellula: no sheet named %q", name)
	}
	if info.Type != sml.SheetTypeWorksheet {
		return nil, fmt.Errorf("cellula: sheet %q is a %s", name, info.Type)
	}

	raw, err := w.rawWorksheet(info)
	if err != nil {
		return nil, err
	}
	sheetRels, err := w.container.Relationships(info.Path)
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}

	ws, err := model.ResolveWorksheet(name, raw, sheetRels, w.ctx)
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}
	ws.Epoch1904 = w.workbook.Epoch1904()
	ws.CalcRefMode = w.workbook.CalcRefMode

	if err := w.attachTables(ws, raw, sheetRels); err != nil {
		return nil, err
	}
	if err := w.attachDrawing(ws, raw, sheetRels); err != nil {
		return nil, err
	}
	return ws, nil
}

func (w *Workbook) attachTables(ws *model.Worksheet, raw *sml.Worksheet, sheetRels *opc.Relationships) error {
	if w.cfg.skipTables {
		return nil
	}
	for _, relID := range raw.TableParts {
		target, ok := sheetRels.TargetPath(relID)
		if !ok {
			continue
		}
		data, err := w.container.Part(target)
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		rawTable, err := sml.ParseTable(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		table, err := model.ResolveTable(rawTable, w.ctx)
		if err != nil {
			return fmt.Errorf("cellula: %w", err)
		}
		ws.Tables = append(ws.Tables, table)
	}
	return nil
}

func (w *Workbook) attachDrawing(ws *model.Worksheet, raw *sml.Worksheet, sheetRels *opc.Relationships) error {
	if w.cfg.skipDrawings || raw.DrawingRelID == "" {
		return nil
	}
	target, ok := sheetRels.TargetPath(raw.DrawingRelID)
	if !ok {
		return nil
	}
	data, err := w.container.Part(target)
	if err != nil {
		return fmt.Errorf("cellula: %w", err)
	}
	rawDrawing, err := dml.ParseDrawing(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("cellula: %w", err)
	}

	drawRels, err := w.container.Relationships(target)
	if err != nil {
		return fmt.Errorf("cellula: %w", err)
	}
	images := make(map[string][]byte)
	for _, rel := range drawRels.ByType(opc.RelTypeImage) {
		if rel.External {
			continue
		}
		imgPath, ok := drawRels.TargetPath(rel.ID)
		if !ok {
			continue
		}
		imgData, err := w.container.Part(imgPath)
		if err != nil {
			continue
		}
		images[rel.ID] = imgData
	}

	drawing, err := model.ResolveDrawing(rawDrawing, w.ctx, drawRels, images)
	if err != nil {
		return fmt.Errorf("cellula: %w", err)
	}
	ws.Drawing = drawing
	return nil
}

func (w *Workbook) rawWorksheet(info model.SheetInfo) (*sml.Worksheet, error) {
	data, err := w.container.Part(info.Path)
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}
	raw, err := sml.ParseWorksheet(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cellula: %w", err)
	}
	return raw, nil
}

// RawWorkbook returns the parsed workbook part.
func (w *Workbook) RawWorkbook() *sml.Workbook {
	return w.workbook
}

// RawWorksheet loads the named sheet's part without resolution.
func (w *Workbook) RawWorksheet(name string) (*sml.Worksheet, error) {
	info, ok := w.SheetByName(name)
	if !ok {
		return nil, fmt.Errorf("cellula: no sheet named %q", name)
	}
	return w.rawWorksheet(info)
}

// RawStylesheet returns the parsed styles part, nil when the workbook has
// none.
func (w *Workbook) RawStylesheet() *sml.Stylesheet {
	return w.ctx.Stylesheet
}

// RawSharedStrings returns the parsed shared string table, nil when the
// workbook has none.
func (w *Workbook) RawSharedStrings() *sml.SharedStrings {
	return w.ctx.SharedStrings
}

// RawTheme returns the parsed theme part, nil when the workbook has none.
func (w *Workbook) RawTheme() *dml.Theme {
	return w.ctx.Theme
}
