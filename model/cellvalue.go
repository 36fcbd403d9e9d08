package model

import (
	"fmt"
	"strconv"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/sml"
)

// ValueKind discriminates the CellValue union.
type ValueKind int

const (
	ValueEmpty ValueKind = iota
	ValueText
	ValueRichText
	ValueNumber
	ValueBool
	ValueDateTime
	ValueError
	ValueFormula
)

// String describes the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueText:
		return "text"
	case ValueRichText:
		return "richText"
	case ValueNumber:
		return "number"
	case ValueBool:
		return "bool"
	case ValueDateTime:
		return "dateTime"
	case ValueError:
		return "error"
	case ValueFormula:
		return "formula"
	}
	return "empty"
}

// ErrorValue is a spreadsheet error literal. The set is closed; a cell
// carrying any other error token is structurally invalid.
type ErrorValue int

const (
	ErrorDivZero ErrorValue = iota
	ErrorNA
	ErrorName
	ErrorNull
	ErrorNum
	ErrorRef
	ErrorVal
	ErrorGettingData
	ErrorSpill
)

var errorTokens = map[string]ErrorValue{
	"#DIV/0!":       ErrorDivZero,
	"#N/A":          ErrorNA,
	"#NAME?":        ErrorName,
	"#NULL!":        ErrorNull,
	"#NUM!":         ErrorNum,
	"#REF!":         ErrorRef,
	"#VALUE!":       ErrorVal,
	"#GETTING_DATA": ErrorGettingData,
	"#SPILL!":       ErrorSpill,
}

// ParseErrorValue maps an error cell's literal.
func ParseErrorValue(s string) (ErrorValue, error) {
	if v, ok := errorTokens[s]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("unknown error value %q", s)
}

// String returns the spreadsheet literal.
func (e ErrorValue) String() string {
	for tok, v := range errorTokens {
		if v == e {
			return tok
		}
	}
	return "#VALUE!"
}

// TextFragment is one run of rich text with its resolved font.
type TextFragment struct {
	Text string
	Font Font
}

// PhoneticRun is a resolved furigana run covering base-text characters
// [Start, End).
type PhoneticRun struct {
	Start uint64
	End   uint64
	Text  string
}

// Phonetic is the furigana data attached to a text value.
type Phonetic struct {
	Runs      []PhoneticRun
	Font      Font
	Type      string
	Alignment string
}

// Formula is a resolved formula value: the formula text plus the producer's
// cached result, verbatim.
type Formula struct {
	Text   string
	Cached string
}

// CellValue is the resolved content of a cell. Kind selects which of the
// other fields is meaningful.
type CellValue struct {
	Kind     ValueKind
	Text     string
	Number   float64
	Bool     bool
	Error    ErrorValue
	Runs     []TextFragment
	Phonetic *Phonetic
	Formula  *Formula
}

// resolveCellValue interprets a raw cell's content. Inline strings win over
// everything, then formulas; a bare value dispatches on the cell type token.
func resolveCellValue(cell *sml.Cell, ctx *Context) (CellValue, error) {
	if cell.Formula == nil && cell.InlineString == nil && cell.Value == nil {
		return CellValue{}, nil
	}
	if cell.InlineString != nil {
		return decodeStringItem(cell.InlineString, ctx)
	}
	if cell.Formula != nil {
		f := &Formula{Text: cell.Formula.Text}
		if cell.Value != nil {
			f.Cached = *cell.Value
		}
		return CellValue{Kind: ValueFormula, Formula: f}, nil
	}

	v := *cell.Value
	if v == "" {
		return CellValue{}, nil
	}

	// An absent t attribute means numeric.
	switch cell.Type {
	case "n", "":
		n, ok := conv.Float(v)
		if !ok {
			// Producers write unparseable numerics often enough that the
			// text survives instead of failing the sheet.
			return CellValue{Kind: ValueText, Text: v}, nil
		}
		return CellValue{Kind: ValueNumber, Number: n}, nil
	case "b":
		b, ok := conv.Bool(v)
		if !ok {
			b = true
		}
		return CellValue{Kind: ValueBool, Bool: b}, nil
	case "d":
		return CellValue{Kind: ValueDateTime, Text: v}, nil
	case "e":
		ev, err := ParseErrorValue(v)
		if err != nil {
			return CellValue{}, fmt.Errorf("cell %s: %w", cell.Ref, err)
		}
		return CellValue{Kind: ValueError, Error: ev}, nil
	case "s":
		idx, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return CellValue{}, fmt.Errorf("cell %s: invalid shared string index %q", cell.Ref, v)
		}
		if ctx == nil || ctx.SharedStrings == nil || idx >= uint64(len(ctx.SharedStrings.Items)) {
			return CellValue{}, fmt.Errorf("cell %s: shared string index out of range", cell.Ref)
		}
		return decodeStringItem(ctx.SharedStrings.Items[idx], ctx)
	case "str", "is", "inlineStr":
		// Both require content the cell did not carry: "str" a formula,
		// the string kinds an <is> child.
		return CellValue{}, fmt.Errorf("cell %s: type %q without its content", cell.Ref, cell.Type)
	}
	return CellValue{}, fmt.Errorf("cell %s: unknown cell type %q", cell.Ref, cell.Type)
}

// decodeStringItem resolves a shared or inline string item. Plain text wins
// over rich runs; an item with neither is corrupt.
func decodeStringItem(item *sml.StringItem, ctx *Context) (CellValue, error) {
	if item.Text != nil {
		return CellValue{
			Kind:     ValueText,
			Text:     *item.Text,
			Phonetic: resolvePhonetic(item, ctx),
		}, nil
	}

	if item.Runs != nil {
		var frags []TextFragment
		var text string
		for _, run := range item.Runs {
			if run.Text == "" {
				continue
			}
			frags = append(frags, TextFragment{
				Text: run.Text,
				Font: resolveFontRecord(run.Properties, ctx),
			})
			text += run.Text
		}
		if len(frags) == 0 {
			return CellValue{}, nil
		}
		return CellValue{
			Kind:     ValueRichText,
			Text:     text,
			Runs:     frags,
			Phonetic: resolvePhonetic(item, ctx),
		}, nil
	}

	return CellValue{}, fmt.Errorf("string item with neither text nor runs")
}

// resolvePhonetic keeps the furigana only when both the runs and the
// properties survive: a run without text is dropped, and runs without
// properties (or properties without runs) resolve to nothing.
func resolvePhonetic(item *sml.StringItem, ctx *Context) *Phonetic {
	var runs []PhoneticRun
	for _, pr := range item.PhoneticRuns {
		if pr.Text == "" {
			continue
		}
		runs = append(runs, PhoneticRun{Start: pr.Start, End: pr.End, Text: pr.Text})
	}
	if len(runs) == 0 || item.PhoneticPr == nil {
		return nil
	}
	return &Phonetic{
		Runs:      runs,
		Font:      fontByID(ctx, item.PhoneticPr.FontID),
		Type:      item.PhoneticPr.Type,
		Alignment: item.PhoneticPr.Alignment,
	}
}
