package model

import (
	"github.com/tsawler/cellula/sml"
)

// Substituted for a border edge whose style is drawn but whose color does not
// resolve.
const defaultBorderColor = "000000ff"

// Font is a resolved font: every field carries a concrete value.
type Font struct {
	Name      string
	Size      float64
	Bold      bool
	Italic    bool
	Strike    bool
	Underline sml.UnderlineStyle
	VertAlign sml.VerticalRunAlignment
	Color     string
}

func defaultFont() Font {
	return Font{Name: "Calibri", Size: 11.0, Color: "000000ff"}
}

// resolveFontRecord fills a raw font record, which also serves rich-text run
// properties, with defaults for every absent field.
func resolveFontRecord(raw *sml.Font, ctx *Context) Font {
	f := defaultFont()
	if raw == nil {
		return f
	}
	if raw.Name != "" {
		f.Name = raw.Name
	}
	if raw.Size != nil {
		f.Size = *raw.Size
	}
	f.Bold = raw.Bold
	f.Italic = raw.Italic
	f.Strike = raw.Strike
	f.Underline = raw.Underline
	f.VertAlign = raw.VertAlign
	if hex, ok := resolveSheetColor(raw.Color, ctx.stylesheet(), ctx.colorScheme()); ok {
		f.Color = hex
	}
	return f
}

func fontByID(ctx *Context, id uint64) Font {
	ss := ctx.stylesheet()
	if ss == nil || id >= uint64(len(ss.Fonts)) {
		return defaultFont()
	}
	return resolveFontRecord(ss.Fonts[id], ctx)
}

// BorderEdge is one resolved border edge. Color is empty only when the style
// is none.
type BorderEdge struct {
	Style sml.BorderStyle
	Color string
}

// Border is a resolved border. The diagonal edge appears under DiagonalUp
// and DiagonalDown according to the record's direction flags.
type Border struct {
	Left         BorderEdge
	Right        BorderEdge
	Top          BorderEdge
	Bottom       BorderEdge
	DiagonalUp   BorderEdge
	DiagonalDown BorderEdge
}

func resolveBorderEdge(raw *sml.BorderEdge, ctx *Context) BorderEdge {
	if raw == nil {
		return BorderEdge{}
	}
	edge := BorderEdge{Style: raw.Style}
	if edge.Style == sml.BorderStyleNone {
		return edge
	}
	if hex, ok := resolveSheetColor(raw.Color, ctx.stylesheet(), ctx.colorScheme()); ok {
		edge.Color = hex
	} else {
		edge.Color = defaultBorderColor
	}
	return edge
}

func resolveBorderRecord(raw *sml.Border, ctx *Context) Border {
	if raw == nil {
		return Border{}
	}
	b := Border{
		Left:   resolveBorderEdge(raw.Left, ctx),
		Right:  resolveBorderEdge(raw.Right, ctx),
		Top:    resolveBorderEdge(raw.Top, ctx),
		Bottom: resolveBorderEdge(raw.Bottom, ctx),
	}
	diag := resolveBorderEdge(raw.Diagonal, ctx)
	if raw.DiagonalUp {
		b.DiagonalUp = diag
	}
	if raw.DiagonalDown {
		b.DiagonalDown = diag
	}
	return b
}

func borderByID(ctx *Context, id uint64) Border {
	ss := ctx.stylesheet()
	if ss == nil || id >= uint64(len(ss.Borders)) {
		return Border{}
	}
	return resolveBorderRecord(ss.Borders[id], ctx)
}

// Fill is a resolved fill. Exactly one of Pattern or Gradient is set; the
// default is a pattern fill of type none.
type Fill struct {
	Pattern  *PatternFill
	Gradient *GradientFill
}

// PatternFill is a resolved pattern fill.
type PatternFill struct {
	Type       sml.PatternType
	Foreground string
	Background string
}

// GradientFill is a resolved gradient fill.
type GradientFill struct {
	Type   string
	Degree float64
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Stops  []GradientStop
}

// GradientStop is one resolved gradient stop.
type GradientStop struct {
	Position float64
	Color    string
}

func defaultFill() Fill {
	return Fill{Pattern: &PatternFill{Type: sml.PatternNone}}
}

func resolveFillRecord(raw *sml.Fill, ctx *Context) Fill {
	if raw == nil {
		return defaultFill()
	}
	ss := ctx.stylesheet()
	scheme := ctx.colorScheme()

	switch {
	case raw.Gradient != nil:
		g := &GradientFill{
			Type:   raw.Gradient.Type,
			Degree: raw.Gradient.Degree,
			Left:   raw.Gradient.Left,
			Right:  raw.Gradient.Right,
			Top:    raw.Gradient.Top,
			Bottom: raw.Gradient.Bottom,
		}
		for _, stop := range raw.Gradient.Stops {
			resolved := GradientStop{Position: stop.Position}
			if hex, ok := resolveSheetColor(stop.Color, ss, scheme); ok {
				resolved.Color = hex
			}
			g.Stops = append(g.Stops, resolved)
		}
		return Fill{Gradient: g}
	case raw.Pattern != nil:
		p := &PatternFill{Type: raw.Pattern.Type}
		if hex, ok := resolveSheetColor(raw.Pattern.FgColor, ss, scheme); ok {
			p.Foreground = hex
		}
		if hex, ok := resolveSheetColor(raw.Pattern.BgColor, ss, scheme); ok {
			p.Background = hex
		} else if p.Type != sml.PatternNone {
			p.Background = "ffffffff"
		}
		return Fill{Pattern: p}
	}
	return defaultFill()
}

func fillByID(ctx *Context, id uint64) Fill {
	ss := ctx.stylesheet()
	if ss == nil || id >= uint64(len(ss.Fills)) {
		return defaultFill()
	}
	return resolveFillRecord(ss.Fills[id], ctx)
}

// NumberingFormat is a resolved number format.
type NumberingFormat struct {
	ID   uint64
	Code string
}

func defaultNumberFormat() NumberingFormat {
	return NumberingFormat{ID: 0, Code: "general"}
}

// builtinFormatCodes covers the implied formats a stylesheet never writes
// out. Ids 5-8 and 23-36 are locale-dependent and intentionally absent.
var builtinFormatCodes = map[uint64]string{
	0:  "general",
	1:  "0",
	2:  "0.00",
	3:  "#,##0",
	4:  "#,##0.00",
	9:  "0%",
	10: "0.00%",
	11: "0.00E+00",
	12: "# ?/?",
	13: "# ??/??",
	14: "mm-dd-yy",
	15: "d-mmm-yy",
	16: "d-mmm",
	17: "mmm-yy",
	18: "h:mm AM/PM",
	19: "h:mm:ss AM/PM",
	20: "h:mm",
	21: "h:mm:ss",
	22: "m/d/yy h:mm",
	37: "#,##0 ;(#,##0)",
	38: "#,##0 ;[Red](#,##0)",
	39: "#,##0.00;(#,##0.00)",
	40: "#,##0.00;[Red](#,##0.00)",
	41: `_(* #,##0_);_(* \(#,##0\);_(* "-"_);_(@_)`,
	42: `_("$"* #,##0_);_("$"* \(#,##0\);_("$"* "-"_);_(@_)`,
	43: `_(* #,##0.00_);_(* \(#,##0.00\);_(* "-"??_);_(@_)`,
	44: `_("$"* #,##0.00_);_("$"* \(#,##0.00\);_("$"* "-"??_);_(@_)`,
	45: "mm:ss",
	46: "[h]:mm:ss",
	47: "mmss.0",
	48: "##0.0E+0",
	49: "@",
}

// numberFormatByID resolves a numFmtId. Custom definitions shadow the
// builtin table; an unknown id yields the general format.
func numberFormatByID(ctx *Context, id uint64) NumberingFormat {
	if ss := ctx.stylesheet(); ss != nil {
		for _, nf := range ss.NumFmts {
			if nf.ID == id {
				return NumberingFormat{ID: id, Code: nf.Code}
			}
		}
	}
	if code, ok := builtinFormatCodes[id]; ok {
		return NumberingFormat{ID: id, Code: code}
	}
	return defaultNumberFormat()
}

// cellXf returns the cellXfs record for a style id, bounds-checked.
func cellXf(ss *sml.Stylesheet, id uint64) *sml.Xf {
	if ss == nil || id >= uint64(len(ss.CellXfs)) {
		return nil
	}
	return ss.CellXfs[id]
}

func styleParent(ss *sml.Stylesheet, xf *sml.Xf) *sml.Xf {
	if xf.XfID == nil || *xf.XfID >= uint64(len(ss.CellStyleXfs)) {
		return nil
	}
	return ss.CellStyleXfs[*xf.XfID]
}

// concernID resolves one formatting concern's record id through the xf
// layering. A true apply flag binds the direct xf's id; an unset flag defers
// to the named cell style when the xf names one, and otherwise falls back to
// the direct id.
func concernID(ss *sml.Stylesheet, xf *sml.Xf, id func(*sml.Xf) *uint64, apply func(*sml.Xf) *bool) (uint64, bool) {
	if xf == nil {
		return 0, false
	}
	if v, a := id(xf), apply(xf); v != nil && a != nil && *a {
		return *v, true
	}
	if xf.XfID == nil {
		if v, a := id(xf), apply(xf); v != nil && a == nil {
			return *v, true
		}
		return 0, false
	}
	parent := styleParent(ss, xf)
	if parent == nil {
		return 0, false
	}
	if v, a := id(parent), apply(parent); v != nil && (a == nil || *a) {
		return *v, true
	}
	return 0, false
}

// concernAlignment mirrors concernID for the inline alignment record.
func concernAlignment(ss *sml.Stylesheet, xf *sml.Xf) *sml.Alignment {
	if xf == nil {
		return nil
	}
	if xf.Alignment != nil && xf.ApplyAlignment != nil && *xf.ApplyAlignment {
		return xf.Alignment
	}
	if xf.XfID == nil {
		if xf.Alignment != nil && xf.ApplyAlignment == nil {
			return xf.Alignment
		}
		return nil
	}
	parent := styleParent(ss, xf)
	if parent == nil {
		return nil
	}
	if parent.Alignment != nil && (parent.ApplyAlignment == nil || *parent.ApplyAlignment) {
		return parent.Alignment
	}
	return nil
}

// concernProtection mirrors concernID for the inline protection record.
func concernProtection(ss *sml.Stylesheet, xf *sml.Xf) *sml.Protection {
	if xf == nil {
		return nil
	}
	if xf.Protection != nil && xf.ApplyProtection != nil && *xf.ApplyProtection {
		return xf.Protection
	}
	if xf.XfID == nil {
		if xf.Protection != nil && xf.ApplyProtection == nil {
			return xf.Protection
		}
		return nil
	}
	parent := styleParent(ss, xf)
	if parent == nil {
		return nil
	}
	if parent.Protection != nil && (parent.ApplyProtection == nil || *parent.ApplyProtection) {
		return parent.Protection
	}
	return nil
}
