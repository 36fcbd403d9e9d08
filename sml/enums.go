package sml

// Enum token types. Each Parse*-style constructor maps an unknown token to
// the type's zero (default) variant rather than failing, matching how
// permissive spreadsheet consumers treat attribute enums.

// SheetState is the visibility of a sheet.
type SheetState int

const (
	SheetStateVisible SheetState = iota
	SheetStateHidden
	SheetStateVeryHidden
)

// ParseSheetState maps a "state" token. Unknown tokens are visible.
func ParseSheetState(s string) SheetState {
	switch s {
	case "hidden":
		return SheetStateHidden
	case "veryHidden":
		return SheetStateVeryHidden
	}
	return SheetStateVisible
}

// String returns the markup token.
func (s SheetState) String() string {
	switch s {
	case SheetStateHidden:
		return "hidden"
	case SheetStateVeryHidden:
		return "veryHidden"
	}
	return "visible"
}

// PatternType is a fill pattern token.
type PatternType int

const (
	PatternNone PatternType = iota
	PatternSolid
	PatternMediumGray
	PatternDarkGray
	PatternLightGray
	PatternDarkHorizontal
	PatternDarkVertical
	PatternDarkDown
	PatternDarkUp
	PatternDarkGrid
	PatternDarkTrellis
	PatternLightHorizontal
	PatternLightVertical
	PatternLightDown
	PatternLightUp
	PatternLightGrid
	PatternLightTrellis
	PatternGray125
	PatternGray0625
)

var patternTokens = map[string]PatternType{
	"none":            PatternNone,
	"solid":           PatternSolid,
	"mediumGray":      PatternMediumGray,
	"darkGray":        PatternDarkGray,
	"lightGray":       PatternLightGray,
	"darkHorizontal":  PatternDarkHorizontal,
	"darkVertical":    PatternDarkVertical,
	"darkDown":        PatternDarkDown,
	"darkUp":          PatternDarkUp,
	"darkGrid":        PatternDarkGrid,
	"darkTrellis":     PatternDarkTrellis,
	"lightHorizontal": PatternLightHorizontal,
	"lightVertical":   PatternLightVertical,
	"lightDown":       PatternLightDown,
	"lightUp":         PatternLightUp,
	"lightGrid":       PatternLightGrid,
	"lightTrellis":    PatternLightTrellis,
	"gray125":         PatternGray125,
	"gray0625":        PatternGray0625,
}

// ParsePatternType maps a patternType token. Unknown tokens are none.
func ParsePatternType(s string) PatternType {
	return patternTokens[s]
}

// String returns the markup token.
func (p PatternType) String() string {
	for tok, v := range patternTokens {
		if v == p {
			return tok
		}
	}
	return "none"
}

// BorderStyle is a border line style token.
type BorderStyle int

const (
	BorderStyleNone BorderStyle = iota
	BorderStyleThin
	BorderStyleMedium
	BorderStyleDashed
	BorderStyleDotted
	BorderStyleThick
	BorderStyleDouble
	BorderStyleHair
	BorderStyleMediumDashed
	BorderStyleDashDot
	BorderStyleMediumDashDot
	BorderStyleDashDotDot
	BorderStyleMediumDashDotDot
	BorderStyleSlantDashDot
)

var borderStyleTokens = map[string]BorderStyle{
	"none":             BorderStyleNone,
	"thin":             BorderStyleThin,
	"medium":           BorderStyleMedium,
	"dashed":           BorderStyleDashed,
	"dotted":           BorderStyleDotted,
	"thick":            BorderStyleThick,
	"double":           BorderStyleDouble,
	"hair":             BorderStyleHair,
	"mediumDashed":     BorderStyleMediumDashed,
	"dashDot":          BorderStyleDashDot,
	"mediumDashDot":    BorderStyleMediumDashDot,
	"dashDotDot":       BorderStyleDashDotDot,
	"mediumDashDotDot": BorderStyleMediumDashDotDot,
	"slantDashDot":     BorderStyleSlantDashDot,
}

// ParseBorderStyle maps a border style token. Unknown tokens are none.
func ParseBorderStyle(s string) BorderStyle {
	return borderStyleTokens[s]
}

// String returns the markup token.
func (b BorderStyle) String() string {
	for tok, v := range borderStyleTokens {
		if v == b {
			return tok
		}
	}
	return "none"
}

// HorizontalAlignment is a cell horizontal alignment token.
type HorizontalAlignment int

const (
	HorizontalGeneral HorizontalAlignment = iota
	HorizontalLeft
	HorizontalCenter
	HorizontalRight
	HorizontalFill
	HorizontalJustify
	HorizontalCenterContinuous
	HorizontalDistributed
)

// ParseHorizontalAlignment maps a "horizontal" token. Unknown tokens are
// general.
func ParseHorizontalAlignment(s string) HorizontalAlignment {
	switch s {
	case "left":
		return HorizontalLeft
	case "center":
		return HorizontalCenter
	case "right":
		return HorizontalRight
	case "fill":
		return HorizontalFill
	case "justify":
		return HorizontalJustify
	case "centerContinuous":
		return HorizontalCenterContinuous
	case "distributed":
		return HorizontalDistributed
	}
	return HorizontalGeneral
}

// String returns the markup token.
func (h HorizontalAlignment) String() string {
	switch h {
	case HorizontalLeft:
		return "left"
	case HorizontalCenter:
		return "center"
	case HorizontalRight:
		return "right"
	case HorizontalFill:
		return "fill"
	case HorizontalJustify:
		return "justify"
	case HorizontalCenterContinuous:
		return "centerContinuous"
	case HorizontalDistributed:
		return "distributed"
	}
	return "general"
}

// VerticalAlignment is a cell vertical alignment token. The markup default is
// bottom.
type VerticalAlignment int

const (
	VerticalBottom VerticalAlignment = iota
	VerticalTop
	VerticalCenter
	VerticalJustify
	VerticalDistributed
)

// ParseVerticalAlignment maps a "vertical" token. Unknown tokens are bottom.
func ParseVerticalAlignment(s string) VerticalAlignment {
	switch s {
	case "top":
		return VerticalTop
	case "center":
		return VerticalCenter
	case "justify":
		return VerticalJustify
	case "distributed":
		return VerticalDistributed
	}
	return VerticalBottom
}

// String returns the markup token.
func (v VerticalAlignment) String() string {
	switch v {
	case VerticalTop:
		return "top"
	case VerticalCenter:
		return "center"
	case VerticalJustify:
		return "justify"
	case VerticalDistributed:
		return "distributed"
	}
	return "bottom"
}

// UnderlineStyle is a font underline token. The element default when <u/> is
// present without a val attribute is single.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineSingleAccounting
	UnderlineDoubleAccounting
)

// ParseUnderlineStyle maps a "val" token. Unknown tokens are none.
func ParseUnderlineStyle(s string) UnderlineStyle {
	switch s {
	case "single":
		return UnderlineSingle
	case "double":
		return UnderlineDouble
	case "singleAccounting":
		return UnderlineSingleAccounting
	case "doubleAccounting":
		return UnderlineDoubleAccounting
	}
	return UnderlineNone
}

// String returns the markup token.
func (u UnderlineStyle) String() string {
	switch u {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineSingleAccounting:
		return "singleAccounting"
	case UnderlineDoubleAccounting:
		return "doubleAccounting"
	}
	return "none"
}

// VerticalRunAlignment is a run vertical alignment token (vertAlign).
type VerticalRunAlignment int

const (
	VerticalRunBaseline VerticalRunAlignment = iota
	VerticalRunSuperscript
	VerticalRunSubscript
)

// ParseVerticalRunAlignment maps a vertAlign token. Unknown tokens are
// baseline.
func ParseVerticalRunAlignment(s string) VerticalRunAlignment {
	switch s {
	case "superscript":
		return VerticalRunSuperscript
	case "subscript":
		return VerticalRunSubscript
	}
	return VerticalRunBaseline
}

// String returns the markup token.
func (v VerticalRunAlignment) String() string {
	switch v {
	case VerticalRunSuperscript:
		return "superscript"
	case VerticalRunSubscript:
		return "subscript"
	}
	return "baseline"
}

// SheetType distinguishes the part kind a workbook sheet entry points at.
// It is derived from the relationship type, not from markup.
type SheetType int

const (
	SheetTypeWorksheet SheetType = iota
	SheetTypeChartsheet
	SheetTypeDialogsheet
)

// String describes the sheet kind.
func (s SheetType) String() string {
	switch s {
	case SheetTypeChartsheet:
		return "chartsheet"
	case SheetTypeDialogsheet:
		return "dialogsheet"
	}
	return "worksheet"
}

// CalcRefMode is the workbook calculation reference mode.
type CalcRefMode int

const (
	CalcRefModeA1 CalcRefMode = iota
	CalcRefModeR1C1
)

// ParseCalcRefMode maps a refMode token. Unknown tokens are A1.
func ParseCalcRefMode(s string) CalcRefMode {
	if s == "R1C1" {
		return CalcRefModeR1C1
	}
	return CalcRefModeA1
}

// String returns the markup token.
func (m CalcRefMode) String() string {
	if m == CalcRefModeR1C1 {
		return "R1C1"
	}
	return "A1"
}

// FormulaType is a cell formula type token.
type FormulaType int

const (
	FormulaTypeNormal FormulaType = iota
	FormulaTypeArray
	FormulaTypeDataTable
	FormulaTypeShared
)

// ParseFormulaType maps a formula "t" token. Unknown tokens are normal.
func ParseFormulaType(s string) FormulaType {
	switch s {
	case "array":
		return FormulaTypeArray
	case "dataTable":
		return FormulaTypeDataTable
	case "shared":
		return FormulaTypeShared
	}
	return FormulaTypeNormal
}

// String returns the markup token.
func (t FormulaType) String() string {
	switch t {
	case FormulaTypeArray:
		return "array"
	case FormulaTypeDataTable:
		return "dataTable"
	case FormulaTypeShared:
		return "shared"
	}
	return "normal"
}
