package model

import (
	"testing"

	"github.com/tsawler/cellula/dml"
)

func int64Ptr(v int64) *int64 { return &v }

func testTheme() *dml.Theme {
	return &dml.Theme{
		ColorScheme: testScheme(),
		FontScheme: &dml.FontScheme{
			Major: dml.FontCollection{Latin: "Calibri Light"},
			Minor: dml.FontCollection{Latin: "Calibri"},
		},
		FormatScheme: &dml.FormatScheme{
			FillStyles: []*dml.Fill{
				{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSchemeRef, Value: "phClr"}},
				{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSrgb, Value: "112233"}},
			},
			BgFillStyles: []*dml.Fill{
				{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSrgb, Value: "445566"}},
			},
			LineStyles: []*dml.Line{
				{Width: int64Ptr(12700), Fill: &dml.Fill{
					Kind:  dml.FillSolid,
					Color: &dml.Color{Kind: dml.ColorSchemeRef, Value: "phClr"},
				}},
			},
			EffectStyles: []*dml.EffectStyle{
				{Effects: &dml.EffectList{OuterShadow: &dml.Shadow{
					BlurRadius: 63500,
					Color:      &dml.Color{Kind: dml.ColorSchemeRef, Value: "phClr"},
				}}},
			},
		},
	}
}

func shapeAnchor(sp *dml.Shape) *dml.Anchor {
	return &dml.Anchor{
		PositionX: int64Ptr(127000),
		PositionY: int64Ptr(254000),
		ExtentCX:  int64Ptr(1270000),
		ExtentCY:  int64Ptr(635000),
		Content:   &dml.AnchorContent{Kind: dml.ContentShape, Shape: sp},
	}
}

func TestResolveDrawingShape(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
		NonVisual: dml.NonVisual{ID: 2, Name: "Box"},
		Properties: &dml.ShapeProperties{
			Geometry: &dml.Geometry{Preset: "roundRect"},
			Fill:     &dml.Fill{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSrgb, Value: "FF0000"}},
		},
	})}}

	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	if len(d.Contents) != 1 || d.Contents[0].Kind != ShapeContent {
		t.Fatalf("contents = %+v", d.Contents)
	}

	sp := d.Contents[0].Shape
	if sp.ID != 2 || sp.Name != "Box" || sp.Geometry != "roundRect" {
		t.Errorf("shape = %+v", sp)
	}
	// no own transform: the anchor's EMU geometry converts to points
	if sp.Position == nil || sp.Position.X != 10 || sp.Position.Y != 20 {
		t.Errorf("position = %+v", sp.Position)
	}
	if sp.Size == nil || sp.Size.Width != 100 || sp.Size.Height != 50 {
		t.Errorf("size = %+v", sp.Size)
	}
	if sp.Fill.Kind != ShapeFillSolid || sp.Fill.Color != "ff0000ff" {
		t.Errorf("fill = %+v", sp.Fill)
	}
}

func TestResolveDrawingShapeOwnTransform(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
		Properties: &dml.ShapeProperties{Transform: &dml.Transform2D{
			OffsetX:  25400,
			OffsetY:  25400,
			ExtentCX: 635000,
			ExtentCY: 635000,
			Rotation: 5400000,
			FlipH:    true,
		}},
	})}}

	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	sp := d.Contents[0].Shape
	// the shape's own transform overrides the anchor geometry
	if sp.Position.X != 2 || sp.Size.Width != 50 {
		t.Errorf("position = %+v, size = %+v", sp.Position, sp.Size)
	}
	if sp.Transform.Rotation != 90 || !sp.Transform.FlipH || sp.Transform.FlipV {
		t.Errorf("transform = %+v", sp.Transform)
	}
}

func TestResolveStyleRefs(t *testing.T) {
	theme := testTheme()
	accent := &dml.Color{Kind: dml.ColorSchemeRef, Value: "accent1"}

	t.Run("fill reference substitutes phClr", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
			Style: &dml.ShapeStyle{FillRef: &dml.StyleRef{Index: 1, Color: accent}},
		})}}
		d, err := ResolveDrawing(raw, &Context{Theme: theme}, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		fill := d.Contents[0].Shape.Fill
		if fill.Kind != ShapeFillSolid || fill.Color != "4472c4ff" {
			t.Errorf("fill = %+v", fill)
		}
	})

	t.Run("fill reference zero means no fill", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
			Style: &dml.ShapeStyle{FillRef: &dml.StyleRef{Index: 0, Color: accent}},
		})}}
		d, err := ResolveDrawing(raw, &Context{Theme: theme}, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		if fill := d.Contents[0].Shape.Fill; fill.Kind != ShapeFillNone {
			t.Errorf("fill = %+v", fill)
		}
	})

	t.Run("fill reference past 1000 selects the background list", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
			Style: &dml.ShapeStyle{FillRef: &dml.StyleRef{Index: 1001, Color: accent}},
		})}}
		d, err := ResolveDrawing(raw, &Context{Theme: theme}, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		if fill := d.Contents[0].Shape.Fill; fill.Color != "445566ff" {
			t.Errorf("fill = %+v", fill)
		}
	})

	t.Run("line and effect references", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
			Style: &dml.ShapeStyle{
				LineRef:   &dml.StyleRef{Index: 0, Color: accent},
				EffectRef: &dml.StyleRef{Index: 0, Color: accent},
			},
		})}}
		d, err := ResolveDrawing(raw, &Context{Theme: theme}, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		sp := d.Contents[0].Shape
		if sp.Outline == nil || sp.Outline.Width != 1 {
			t.Fatalf("outline = %+v", sp.Outline)
		}
		if sp.Outline.Fill.Color != "4472c4ff" {
			t.Errorf("outline fill = %+v", sp.Outline.Fill)
		}
		if sp.Effects == nil || sp.Effects.OuterShadow == nil {
			t.Fatalf("effects = %+v", sp.Effects)
		}
		if sp.Effects.OuterShadow.Color != "4472c4ff" || sp.Effects.OuterShadow.BlurRadius != 5 {
			t.Errorf("shadow = %+v", sp.Effects.OuterShadow)
		}
	})

	t.Run("font reference names the minor latin face", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
			Style: &dml.ShapeStyle{FontRef: &dml.StyleRef{Font: "minor", Color: accent}},
			TextBody: &dml.TextBody{Paragraphs: []*dml.Paragraph{
				{Runs: []*dml.TextRun{{Text: "hi"}}},
			}},
		})}}
		d, err := ResolveDrawing(raw, &Context{Theme: theme}, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		text := d.Contents[0].Shape.Text
		if len(text) != 1 || len(text[0].Spans) != 1 {
			t.Fatalf("text = %+v", text)
		}
		if text[0].Spans[0].Font != "Calibri" {
			t.Errorf("font = %q", text[0].Spans[0].Font)
		}
	})
}

func TestGroupFillInheritance(t *testing.T) {
	grpFill := &dml.Fill{Kind: dml.FillGroup}
	child := &dml.AnchorContent{Kind: dml.ContentShape, Shape: &dml.Shape{
		Properties: &dml.ShapeProperties{Fill: grpFill},
	}}

	t.Run("child inherits the group fill", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{{
			Content: &dml.AnchorContent{Kind: dml.ContentGroup, Group: &dml.GroupShape{
				Fill:     &dml.Fill{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSrgb, Value: "00FF00"}},
				Children: []*dml.AnchorContent{child},
			}},
		}}}
		d, err := ResolveDrawing(raw, nil, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		g := d.Contents[0].Group
		if len(g.Children) != 1 {
			t.Fatalf("children = %+v", g.Children)
		}
		fill := g.Children[0].Shape.Fill
		if fill.Kind != ShapeFillSolid || fill.Color != "00ff00ff" {
			t.Errorf("fill = %+v", fill)
		}
	})

	t.Run("group fill outside a group collapses to none", func(t *testing.T) {
		raw := &dml.Drawing{Anchors: []*dml.Anchor{{Content: child}}}
		d, err := ResolveDrawing(raw, nil, nil, nil)
		if err != nil {
			t.Fatalf("ResolveDrawing: %v", err)
		}
		if fill := d.Contents[0].Shape.Fill; fill.Kind != ShapeFillNone {
			t.Errorf("fill = %+v", fill)
		}
	})
}

func TestGroupChildCoordinateSpace(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{{
		Content: &dml.AnchorContent{Kind: dml.ContentGroup, Group: &dml.GroupShape{
			Transform: &dml.Transform2D{
				OffsetX:       1270000,
				OffsetY:       1270000,
				ExtentCX:      2540000,
				ExtentCY:      2540000,
				ChildOffsetX:  int64Ptr(12700),
				ChildOffsetY:  int64Ptr(25400),
				ChildExtentCX: int64Ptr(127000),
				ChildExtentCY: int64Ptr(254000),
			},
		}},
	}}}
	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	g := d.Contents[0].Group
	// groups prefer their child coordinate space
	if g.Position.X != 1 || g.Position.Y != 2 {
		t.Errorf("position = %+v", g.Position)
	}
	if g.Size.Width != 10 || g.Size.Height != 20 {
		t.Errorf("size = %+v", g.Size)
	}
}

func TestPictureDroppedWithoutImage(t *testing.T) {
	tests := []struct {
		name string
		pic  *dml.Picture
	}{
		{name: "no blip fill", pic: &dml.Picture{}},
		{
			name: "unresolvable embed",
			pic:  &dml.Picture{BlipFill: &dml.BlipFill{EmbedRelID: "rId99"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw := &dml.Drawing{Anchors: []*dml.Anchor{{
				Content: &dml.AnchorContent{Kind: dml.ContentPicture, Picture: tc.pic},
			}}}
			d, err := ResolveDrawing(raw, nil, nil, nil)
			if err != nil {
				t.Fatalf("ResolveDrawing: %v", err)
			}
			if len(d.Contents) != 0 {
				t.Errorf("contents = %+v", d.Contents)
			}
		})
	}
}

func TestOuterShadowWithoutColor(t *testing.T) {
	// a sysClr without lastClr has no resolvable color; the shadow is dropped
	raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
		Properties: &dml.ShapeProperties{Effects: &dml.EffectList{
			OuterShadow: &dml.Shadow{Color: &dml.Color{Kind: dml.ColorSystem, Value: "windowText"}},
		}},
	})}}
	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	if eff := d.Contents[0].Shape.Effects; eff != nil {
		t.Errorf("effects = %+v", eff)
	}
}

func TestCameraRotation(t *testing.T) {
	t.Run("explicit rotation wins", func(t *testing.T) {
		cam := &dml.Camera{
			Preset:   "isometricLeftDown",
			Rotation: &dml.Rotation{Longitude: 1200000, Latitude: 600000, Revolution: 300000},
		}
		got := cameraRotation(cam)
		if got == nil || got.X != 20 || got.Y != 10 || got.Z != 5 {
			t.Errorf("rotation = %+v", got)
		}
	})
	t.Run("preset rotation", func(t *testing.T) {
		got := cameraRotation(&dml.Camera{Preset: "isometricLeftDown"})
		if got == nil || got.X != 45 || got.Y != 35 || got.Z != 0 {
			t.Errorf("rotation = %+v", got)
		}
	})
	t.Run("orthographic front implies none", func(t *testing.T) {
		if got := cameraRotation(&dml.Camera{Preset: "orthographicFront"}); got != nil {
			t.Errorf("rotation = %+v", got)
		}
	})
	t.Run("nil camera", func(t *testing.T) {
		if got := cameraRotation(nil); got != nil {
			t.Errorf("rotation = %+v", got)
		}
	})
}

func TestResolveTextBody(t *testing.T) {
	size := int64(1800)
	bold := true
	raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
		TextBody: &dml.TextBody{Paragraphs: []*dml.Paragraph{{
			Properties: &dml.ParagraphProperties{Align: "ctr"},
			Runs: []*dml.TextRun{
				{Text: "Title", Properties: &dml.RunProperties{
					Size:      &size,
					Bold:      &bold,
					LatinFont: "Georgia",
					Fill:      &dml.Fill{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSrgb, Value: "336699"}},
				}},
				{Kind: dml.RunBreak},
				{Text: "subtitle"},
			},
		}}},
	})}}

	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	text := d.Contents[0].Shape.Text
	if len(text) != 1 || text[0].Alignment != "ctr" {
		t.Fatalf("text = %+v", text)
	}
	spans := text[0].Spans
	if len(spans) != 3 {
		t.Fatalf("spans = %+v", spans)
	}
	if spans[0].Text != "Title" || spans[0].Size != 18 || !spans[0].Bold {
		t.Errorf("span 0 = %+v", spans[0])
	}
	if spans[0].Font != "Georgia" || spans[0].Color != "336699ff" {
		t.Errorf("span 0 = %+v", spans[0])
	}
	if !spans[1].Break {
		t.Errorf("span 1 = %+v", spans[1])
	}
	if spans[2].Text != "subtitle" || spans[2].Bold {
		t.Errorf("span 2 = %+v", spans[2])
	}
}

func TestClientDataFlags(t *testing.T) {
	anchor := shapeAnchor(&dml.Shape{})
	anchor.LocksWithSheet = true
	anchor.PrintsWithSheet = false
	raw := &dml.Drawing{Anchors: []*dml.Anchor{anchor}}

	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	c := d.Contents[0]
	if !c.LocksWithSheet || c.PrintsWithSheet {
		t.Errorf("flags = %v, %v", c.LocksWithSheet, c.PrintsWithSheet)
	}
}

func TestGroupChildrenFlags(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{{
		Content: &dml.AnchorContent{Kind: dml.ContentGroup, Group: &dml.GroupShape{
			Children: []*dml.AnchorContent{
				{Kind: dml.ContentShape, Shape: &dml.Shape{}},
			},
		}},
	}}}
	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	child := d.Contents[0].Group.Children[0]
	// group children always participate in sheet locking and printing
	if !child.LocksWithSheet || !child.PrintsWithSheet {
		t.Errorf("flags = %v, %v", child.LocksWithSheet, child.PrintsWithSheet)
	}
}

func TestObjectLinkWithoutRelationships(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{shapeAnchor(&dml.Shape{
		NonVisual: dml.NonVisual{
			ID:         2,
			Name:       "Button",
			HlinkClick: &dml.Hlink{RelID: "rId9"},
			HlinkHover: &dml.Hlink{RelID: "rId10"},
		},
	})}}

	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	sp := d.Contents[0].Shape
	// unresolvable relationship ids drop the link rather than keep a stub
	if sp.ClickLink != nil || sp.HoverLink != nil {
		t.Errorf("links = %+v, %+v", sp.ClickLink, sp.HoverLink)
	}
}

func TestResolveConnector(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{{
		Content: &dml.AnchorContent{Kind: dml.ContentConnector, Connector: &dml.ConnectionShape{
			NonVisual: dml.NonVisual{ID: 5, Name: "Arrow"},
			Properties: &dml.ShapeProperties{Line: &dml.Line{
				Width: int64Ptr(25400),
				Fill:  &dml.Fill{Kind: dml.FillSolid, Color: &dml.Color{Kind: dml.ColorSrgb, Value: "000000"}},
			}},
		}},
	}}}
	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	if len(d.Contents) != 1 || d.Contents[0].Kind != ConnectorContent {
		t.Fatalf("contents = %+v", d.Contents)
	}
	cx := d.Contents[0].Connector
	if cx.Name != "Arrow" || cx.Outline == nil || cx.Outline.Width != 2 {
		t.Errorf("connector = %+v", cx)
	}
}

func TestResolveGraphicFrame(t *testing.T) {
	raw := &dml.Drawing{Anchors: []*dml.Anchor{{
		Content: &dml.AnchorContent{Kind: dml.ContentGraphicFrame, GraphicFrame: &dml.GraphicFrame{
			NonVisual:  dml.NonVisual{ID: 7, Name: "Chart 1"},
			ChartRelID: "rId3",
			Transform:  &dml.Transform2D{ExtentCX: 127000, ExtentCY: 127000},
		}},
	}}}
	d, err := ResolveDrawing(raw, nil, nil, nil)
	if err != nil {
		t.Fatalf("ResolveDrawing: %v", err)
	}
	f := d.Contents[0].GraphicFrame
	if f.Name != "Chart 1" || f.Size.Width != 10 {
		t.Errorf("frame = %+v", f)
	}
	// no relationship set: the chart part stays unresolved
	if f.ChartPart != "" {
		t.Errorf("chartPart = %q", f.ChartPart)
	}
}
