package model

import (
	"testing"

	"github.com/tsawler/cellula/sml"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestResolveFontRecord(t *testing.T) {
	ctx := &Context{}

	t.Run("nil record yields the default", func(t *testing.T) {
		got := resolveFontRecord(nil, ctx)
		want := Font{Name: "Calibri", Size: 11.0, Color: "000000ff"}
		if got != want {
			t.Errorf("font = %+v, want %+v", got, want)
		}
	})

	t.Run("full record", func(t *testing.T) {
		raw := &sml.Font{
			Name:      "Arial",
			Size:      floatPtr(14.0),
			Bold:      true,
			Italic:    true,
			Strike:    true,
			Underline: sml.UnderlineDouble,
			VertAlign: sml.VerticalRunSuperscript,
			Color:     &sml.Color{RGB: "FF00B050"},
		}
		got := resolveFontRecord(raw, ctx)
		if got.Name != "Arial" || got.Size != 14.0 || !got.Bold || !got.Italic || !got.Strike {
			t.Errorf("font = %+v", got)
		}
		if got.Underline != sml.UnderlineDouble || got.VertAlign != sml.VerticalRunSuperscript {
			t.Errorf("underline = %v, vertAlign = %v", got.Underline, got.VertAlign)
		}
		if got.Color != "00b050ff" {
			t.Errorf("color = %q", got.Color)
		}
	})

	t.Run("unresolvable color keeps the default", func(t *testing.T) {
		got := resolveFontRecord(&sml.Font{Name: "Arial", Color: &sml.Color{RGB: "bogus"}}, ctx)
		if got.Color != "000000ff" {
			t.Errorf("color = %q", got.Color)
		}
	})
}

func TestFontByID(t *testing.T) {
	ctx := &Context{Stylesheet: &sml.Stylesheet{
		Fonts: []*sml.Font{{Name: "Calibri"}, {Name: "Consolas"}},
	}}

	if got := fontByID(ctx, 1); got.Name != "Consolas" {
		t.Errorf("font 1 = %q", got.Name)
	}
	if got := fontByID(ctx, 7); got.Name != "Calibri" {
		t.Errorf("out-of-range font = %q, want the default", got.Name)
	}
}

func TestResolveBorderRecord(t *testing.T) {
	ctx := &Context{}

	t.Run("edges and colors", func(t *testing.T) {
		raw := &sml.Border{
			Left:  &sml.BorderEdge{Style: sml.BorderStyleThin, Color: &sml.Color{RGB: "FFFF0000"}},
			Right: &sml.BorderEdge{Style: sml.BorderStyleNone, Color: &sml.Color{RGB: "FFFF0000"}},
			Top:   &sml.BorderEdge{Style: sml.BorderStyleThick},
		}
		got := resolveBorderRecord(raw, ctx)
		if got.Left.Style != sml.BorderStyleThin || got.Left.Color != "ff0000ff" {
			t.Errorf("left = %+v", got.Left)
		}
		// style none never carries a color
		if got.Right.Color != "" {
			t.Errorf("right color = %q", got.Right.Color)
		}
		// a drawn edge without a resolvable color gets the fallback
		if got.Top.Color != defaultBorderColor {
			t.Errorf("top color = %q", got.Top.Color)
		}
		if got.Bottom.Style != sml.BorderStyleNone {
			t.Errorf("bottom = %+v", got.Bottom)
		}
	})

	t.Run("diagonal direction flags", func(t *testing.T) {
		diag := &sml.BorderEdge{Style: sml.BorderStyleDashed, Color: &sml.Color{RGB: "FF0000FF"}}
		got := resolveBorderRecord(&sml.Border{Diagonal: diag, DiagonalUp: true}, ctx)
		if got.DiagonalUp.Style != sml.BorderStyleDashed {
			t.Errorf("diagonalUp = %+v", got.DiagonalUp)
		}
		if got.DiagonalDown.Style != sml.BorderStyleNone {
			t.Errorf("diagonalDown = %+v", got.DiagonalDown)
		}
	})
}

func TestResolveFillRecord(t *testing.T) {
	ctx := &Context{}

	t.Run("pattern", func(t *testing.T) {
		raw := &sml.Fill{Pattern: &sml.PatternFill{
			Type:    sml.PatternSolid,
			FgColor: &sml.Color{RGB: "FF4472C4"},
			BgColor: &sml.Color{Indexed: uintPtr(64)},
		}}
		got := resolveFillRecord(raw, ctx)
		if got.Pattern == nil || got.Gradient != nil {
			t.Fatalf("fill = %+v", got)
		}
		if got.Pattern.Type != sml.PatternSolid || got.Pattern.Foreground != "4472c4ff" || got.Pattern.Background != "000000ff" {
			t.Errorf("pattern = %+v", got.Pattern)
		}
	})

	t.Run("drawn pattern defaults the background to white", func(t *testing.T) {
		got := resolveFillRecord(&sml.Fill{Pattern: &sml.PatternFill{Type: sml.PatternGray125}}, ctx)
		if got.Pattern.Background != "ffffffff" {
			t.Errorf("background = %q", got.Pattern.Background)
		}
	})

	t.Run("pattern none keeps no colors", func(t *testing.T) {
		got := resolveFillRecord(&sml.Fill{Pattern: &sml.PatternFill{Type: sml.PatternNone}}, ctx)
		if got.Pattern.Foreground != "" || got.Pattern.Background != "" {
			t.Errorf("pattern = %+v", got.Pattern)
		}
	})

	t.Run("gradient", func(t *testing.T) {
		raw := &sml.Fill{Gradient: &sml.GradientFill{
			Degree: 90,
			Stops: []sml.GradientStop{
				{Position: 0, Color: &sml.Color{RGB: "FFFF0000"}},
				{Position: 1, Color: &sml.Color{RGB: "FF0000FF"}},
			},
		}}
		got := resolveFillRecord(raw, ctx)
		if got.Gradient == nil || got.Pattern != nil {
			t.Fatalf("fill = %+v", got)
		}
		if got.Gradient.Degree != 90 || len(got.Gradient.Stops) != 2 {
			t.Fatalf("gradient = %+v", got.Gradient)
		}
		if got.Gradient.Stops[1].Position != 1 || got.Gradient.Stops[1].Color != "0000ffff" {
			t.Errorf("stop 1 = %+v", got.Gradient.Stops[1])
		}
	})

	t.Run("nil record yields the default", func(t *testing.T) {
		got := resolveFillRecord(nil, ctx)
		if got.Pattern == nil || got.Pattern.Type != sml.PatternNone {
			t.Errorf("fill = %+v", got)
		}
	})
}

func TestNumberFormatByID(t *testing.T) {
	ctx := &Context{Stylesheet: &sml.Stylesheet{
		NumFmts: []sml.NumFmt{{ID: 14, Code: "dd/mm/yyyy"}, {ID: 164, Code: "0.000"}},
	}}

	tests := []struct {
		name string
		id   uint64
		want NumberingFormat
	}{
		{name: "custom", id: 164, want: NumberingFormat{ID: 164, Code: "0.000"}},
		{name: "custom shadows builtin", id: 14, want: NumberingFormat{ID: 14, Code: "dd/mm/yyyy"}},
		{name: "builtin", id: 10, want: NumberingFormat{ID: 10, Code: "0.00%"}},
		{name: "unknown id falls back to general", id: 200, want: NumberingFormat{ID: 0, Code: "general"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := numberFormatByID(ctx, tc.id); got != tc.want {
				t.Errorf("format = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestConcernID(t *testing.T) {
	fontID := func(x *sml.Xf) *uint64 { return x.FontID }
	applyFont := func(x *sml.Xf) *bool { return x.ApplyFont }

	ss := &sml.Stylesheet{
		CellStyleXfs: []*sml.Xf{
			{FontID: uintPtr(3)},
			{FontID: uintPtr(4), ApplyFont: boolPtr(false)},
		},
	}

	tests := []struct {
		name   string
		xf     *sml.Xf
		want   uint64
		wantOK bool
	}{
		{name: "nil xf"},
		{
			name:   "apply true binds the direct id",
			xf:     &sml.Xf{FontID: uintPtr(2), ApplyFont: boolPtr(true), XfID: uintPtr(0)},
			want:   2,
			wantOK: true,
		},
		{
			name:   "no named style and no flag binds the direct id",
			xf:     &sml.Xf{FontID: uintPtr(2)},
			want:   2,
			wantOK: true,
		},
		{
			name: "no named style with apply false binds nothing",
			xf:   &sml.Xf{FontID: uintPtr(2), ApplyFont: boolPtr(false)},
		},
		{
			name:   "unset flag defers to the named style",
			xf:     &sml.Xf{FontID: uintPtr(2), XfID: uintPtr(0)},
			want:   3,
			wantOK: true,
		},
		{
			name: "named style with apply false binds nothing",
			xf:   &sml.Xf{FontID: uintPtr(2), XfID: uintPtr(1)},
		},
		{
			name: "named style out of range binds nothing",
			xf:   &sml.Xf{FontID: uintPtr(2), XfID: uintPtr(9)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := concernID(ss, tc.xf, fontID, applyFont)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("concernID = %d, %v, want %d, %v", got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestConcernAlignment(t *testing.T) {
	direct := &sml.Alignment{Horizontal: sml.HorizontalCenter}
	styled := &sml.Alignment{Horizontal: sml.HorizontalRight}
	ss := &sml.Stylesheet{CellStyleXfs: []*sml.Xf{{Alignment: styled}}}

	t.Run("apply true wins", func(t *testing.T) {
		xf := &sml.Xf{Alignment: direct, ApplyAlignment: boolPtr(true), XfID: uintPtr(0)}
		if got := concernAlignment(ss, xf); got != direct {
			t.Errorf("alignment = %+v", got)
		}
	})
	t.Run("unset flag defers to the named style", func(t *testing.T) {
		xf := &sml.Xf{Alignment: direct, XfID: uintPtr(0)}
		if got := concernAlignment(ss, xf); got != styled {
			t.Errorf("alignment = %+v", got)
		}
	})
	t.Run("nothing bound", func(t *testing.T) {
		if got := concernAlignment(ss, &sml.Xf{}); got != nil {
			t.Errorf("alignment = %+v", got)
		}
	})
}

func TestConcernProtection(t *testing.T) {
	ss := &sml.Stylesheet{CellStyleXfs: []*sml.Xf{
		{Protection: &sml.Protection{Locked: boolPtr(false)}},
	}}

	t.Run("direct record with apply", func(t *testing.T) {
		xf := &sml.Xf{
			Protection:      &sml.Protection{Hidden: boolPtr(true)},
			ApplyProtection: boolPtr(true),
			XfID:            uintPtr(0),
		}
		got := concernProtection(ss, xf)
		if got == nil || got.Hidden == nil || !*got.Hidden {
			t.Errorf("protection = %+v", got)
		}
	})
	t.Run("falls through to the named style", func(t *testing.T) {
		got := concernProtection(ss, &sml.Xf{XfID: uintPtr(0)})
		if got == nil || got.Locked == nil || *got.Locked {
			t.Errorf("protection = %+v", got)
		}
	})
}
