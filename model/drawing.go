package model

import (
	"bytes"
	"image"
	"path"
	"strings"

	// Registered formats for probing embedded image dimensions.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/cellula/dml"
	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/opc"
)

// Drawing is a resolved worksheet drawing: the anchored objects with their
// theme references followed and their geometry in points.
type Drawing struct {
	Contents []*Content
}

// ContentKind discriminates the Content union.
type ContentKind int

const (
	ShapeContent ContentKind = iota
	PictureContent
	GroupContent
	ConnectorContent
	FrameContent
)

// Content is one resolved drawing object. Exactly one member is set,
// indicated by Kind. The two flags come from the anchor's clientData;
// children of a group always carry them as true.
type Content struct {
	Kind         ContentKind
	Shape        *Shape
	Picture      *Picture
	Group        *Group
	Connector    *Connector
	GraphicFrame *GraphicFrame

	LocksWithSheet  bool
	PrintsWithSheet bool
}

// Position is a drawing offset in points.
type Position struct {
	X float64
	Y float64
}

// Size is a drawing extent in points.
type Size struct {
	Width  float64
	Height float64
}

// Transform carries flip state and rotation in degrees.
type Transform struct {
	FlipH    bool
	FlipV    bool
	Rotation float64
}

// ShapeFillKind discriminates the resolved fill union.
type ShapeFillKind int

const (
	ShapeFillNone ShapeFillKind = iota
	ShapeFillSolid
	ShapeFillGradient
	ShapeFillPattern
	ShapeFillPicture
)

// ShapeFill is a resolved drawing fill.
type ShapeFill struct {
	Kind     ShapeFillKind
	Color    string
	Gradient *Gradient
	Pattern  *Pattern
	Image    *Image
}

// Gradient is a resolved gradient fill. Stop positions are fractions, the
// linear angle degrees.
type Gradient struct {
	Stops  []GradientPoint
	Angle  float64
	Scaled bool
	Path   string
}

// GradientPoint is one resolved gradient stop. Color is empty when the
// stop's color does not resolve.
type GradientPoint struct {
	Position float64
	Color    string
}

// Pattern is a resolved preset pattern fill.
type Pattern struct {
	Preset     string
	Foreground string
	Background string
}

// Image is a resolved picture reference: the embedded bytes, or the external
// target when the package does not carry the data. Width and Height are
// intrinsic pixel dimensions, zero when the data cannot be decoded.
type Image struct {
	Name     string
	Data     []byte
	External bool
	Target   string
	Width    int
	Height   int
}

// Outline is a resolved line format. Width is in points.
type Outline struct {
	Width      float64
	Cap        string
	Compound   string
	Fill       ShapeFill
	DashPreset string
	Join       string
}

// Effects is the resolved effect state of a drawing object.
type Effects struct {
	OuterShadow *OuterShadow
	Rotation    *SceneRotation
}

// OuterShadow is a resolved outer shadow. Lengths are points, the direction
// degrees.
type OuterShadow struct {
	Color      string
	BlurRadius float64
	Distance   float64
	Direction  float64
}

// SceneRotation is a camera rotation in degrees: X around the vertical axis
// (longitude), Y around the horizontal axis (latitude), Z in the view plane
// (revolution).
type SceneRotation struct {
	X float64
	Y float64
	Z float64
}

// Shape is a resolved <sp>. ClickLink and HoverLink are the object's
// hyperlinks, resolved through the drawing's relationships.
type Shape struct {
	ID      uint64
	Name    string
	Hidden  bool
	TextBox bool

	Position  *Position
	Size      *Size
	Transform Transform
	Geometry  string

	ClickLink *Hyperlink
	HoverLink *Hyperlink

	Fill    ShapeFill
	Outline *Outline
	Effects *Effects
	Text    []Paragraph
}

// Picture is a resolved <pic>.
type Picture struct {
	ID   uint64
	Name string

	Position  *Position
	Size      *Size
	Transform Transform

	ClickLink *Hyperlink
	HoverLink *Hyperlink

	Image   *Image
	Outline *Outline
	Effects *Effects
}

// Group is a resolved <grpSp>. The group's own fill is inherited by children
// that use grpFill; the group itself renders nothing.
type Group struct {
	ID   uint64
	Name string

	Position  *Position
	Size      *Size
	Transform Transform

	ClickLink *Hyperlink
	HoverLink *Hyperlink

	Children []*Content
}

// Connector is a resolved <cxnSp>. Connectors take only their outline and
// effects from the theme style references.
type Connector struct {
	ID   uint64
	Name string

	Position  *Position
	Size      *Size
	Transform Transform

	ClickLink *Hyperlink
	HoverLink *Hyperlink

	Outline *Outline
	Effects *Effects
}

// GraphicFrame is a resolved <graphicFrame>. ChartPart is the package path
// of the referenced chart part, empty when the frame holds something else.
type GraphicFrame struct {
	ID   uint64
	Name string

	Position  *Position
	Size      *Size
	Transform Transform

	ClickLink *Hyperlink
	HoverLink *Hyperlink

	ChartPart string
}

// Paragraph is one resolved paragraph of shape text.
type Paragraph struct {
	Alignment string
	Spans     []TextSpan
}

// TextSpan is one resolved text run. Size is in points, zero when the run
// carries no explicit size. Break marks a line break.
type TextSpan struct {
	Text      string
	Break     bool
	Font      string
	Size      float64
	Bold      bool
	Italic    bool
	Underline string
	Strike    string
	Color     string
}

// ResolveDrawing resolves a raw drawing part. ctx supplies the theme and the
// defined names object hyperlinks may target; rels is the drawing's own
// relationship set and images maps embed relationship ids to image part
// bytes. Any of them may be nil when the drawing references nothing.
func ResolveDrawing(raw *dml.Drawing, ctx *Context, rels *opc.Relationships, images map[string][]byte) (*Drawing, error) {
	r := &drawingResolver{ctx: ctx, rels: rels, images: images}
	if ctx != nil {
		r.theme = ctx.Theme
	}
	if r.theme != nil {
		r.scheme = r.theme.ColorScheme
	}

	d := &Drawing{}
	for _, anchor := range raw.Anchors {
		if anchor.Content == nil {
			continue
		}
		pos, size := anchorGeometry(anchor)
		if content := r.resolveContent(anchor.Content, pos, size, nil); content != nil {
			content.LocksWithSheet = anchor.LocksWithSheet
			content.PrintsWithSheet = anchor.PrintsWithSheet
			d.Contents = append(d.Contents, content)
		}
	}
	return d, nil
}

type drawingResolver struct {
	ctx    *Context
	theme  *dml.Theme
	scheme *dml.ColorScheme
	rels   *opc.Relationships
	images map[string][]byte
}

// anchorGeometry derives the fallback position and extent an anchor provides
// for content without its own transform.
func anchorGeometry(a *dml.Anchor) (*Position, *Size) {
	var pos *Position
	var size *Size
	if a.PositionX != nil && a.PositionY != nil {
		pos = &Position{X: conv.EMUToPoints(*a.PositionX), Y: conv.EMUToPoints(*a.PositionY)}
	}
	if a.ExtentCX != nil && a.ExtentCY != nil {
		size = &Size{Width: conv.EMUToPoints(*a.ExtentCX), Height: conv.EMUToPoints(*a.ExtentCY)}
	}
	return pos, size
}

// applyTransform2D overrides the anchor-derived geometry with the object's
// own transform. Groups prefer their child coordinate space.
func applyTransform2D(t *dml.Transform2D, child bool, pos **Position, size **Size, tr *Transform) {
	if t == nil {
		return
	}
	x, y := t.OffsetX, t.OffsetY
	cx, cy := t.ExtentCX, t.ExtentCY
	if child {
		if t.ChildOffsetX != nil && t.ChildOffsetY != nil {
			x, y = *t.ChildOffsetX, *t.ChildOffsetY
		}
		if t.ChildExtentCX != nil && t.ChildExtentCY != nil {
			cx, cy = *t.ChildExtentCX, *t.ChildExtentCY
		}
	}
	*pos = &Position{X: conv.EMUToPoints(x), Y: conv.EMUToPoints(y)}
	*size = &Size{Width: conv.EMUToPoints(cx), Height: conv.EMUToPoints(cy)}
	tr.FlipH = t.FlipH
	tr.FlipV = t.FlipV
	tr.Rotation = conv.AngleToDegrees(t.Rotation)
}

// resolveContent resolves one drawing object. groupFill is the enclosing
// group's raw fill, inherited one level by children that use grpFill.
func (r *drawingResolver) resolveContent(c *dml.AnchorContent, pos *Position, size *Size, groupFill *dml.Fill) *Content {
	switch c.Kind {
	case dml.ContentShape:
		if sp := r.resolveShape(c.Shape, pos, size, groupFill); sp != nil {
			return &Content{Kind: ShapeContent, Shape: sp}
		}
	case dml.ContentPicture:
		if pic := r.resolvePicture(c.Picture, pos, size); pic != nil {
			return &Content{Kind: PictureContent, Picture: pic}
		}
	case dml.ContentGroup:
		if g := r.resolveGroup(c.Group, pos, size); g != nil {
			return &Content{Kind: GroupContent, Group: g}
		}
	case dml.ContentConnector:
		if cx := r.resolveConnector(c.Connector, pos, size); cx != nil {
			return &Content{Kind: ConnectorContent, Connector: cx}
		}
	case dml.ContentGraphicFrame:
		if f := r.resolveGraphicFrame(c.GraphicFrame, pos, size); f != nil {
			return &Content{Kind: FrameContent, GraphicFrame: f}
		}
	}
	return nil
}

// resolveObjectLink resolves a cNvPr hyperlink through the drawing's
// relationships. A target with a leading "#" is an internal location,
// interpreted the way cell hyperlink locations are; anything else is kept
// as an external target. Links whose relationship is missing are dropped.
func (r *drawingResolver) resolveObjectLink(h *dml.Hlink) *Hyperlink {
	if h == nil || h.RelID == "" || r.rels == nil {
		return nil
	}
	rel, ok := r.rels.ByID(h.RelID)
	if !ok {
		return nil
	}
	link := &Hyperlink{Tooltip: h.Tooltip}
	if strings.HasPrefix(rel.Target, "#") {
		link.Sheet, link.Range = parseLinkLocation(strings.TrimPrefix(rel.Target, "#"), r.ctx)
		return link
	}
	link.External = true
	link.Target = rel.Target
	return link
}

func (r *drawingResolver) resolveObjectLinks(nv dml.NonVisual) (*Hyperlink, *Hyperlink) {
	return r.resolveObjectLink(nv.HlinkClick), r.resolveObjectLink(nv.HlinkHover)
}

func (r *drawingResolver) resolveShape(raw *dml.Shape, pos *Position, size *Size, groupFill *dml.Fill) *Shape {
	sp := &Shape{
		ID:       raw.NonVisual.ID,
		Name:     raw.NonVisual.Name,
		Hidden:   raw.NonVisual.Hidden,
		TextBox:  raw.TextBox,
		Position: pos,
		Size:     size,
	}
	sp.ClickLink, sp.HoverLink = r.resolveObjectLinks(raw.NonVisual)
	props := raw.Properties
	if props == nil {
		props = &dml.ShapeProperties{}
	}
	applyTransform2D(props.Transform, false, &sp.Position, &sp.Size, &sp.Transform)
	if props.Geometry != nil {
		if props.Geometry.Custom {
			sp.Geometry = "custom"
		} else {
			sp.Geometry = props.Geometry.Preset
		}
	}

	refs := r.resolveStyleRefs(raw.Style)
	sp.Fill = r.resolveContentFill(props.Fill, refs, groupFill)
	sp.Outline = r.resolveContentOutline(props.Line, refs)
	sp.Effects = r.resolveContentEffects(props.Effects, props.Scene3D, refs)
	if raw.TextBody != nil {
		sp.Text = r.resolveTextBody(raw.TextBody, refs.fontName)
	}
	return sp
}

// resolvePicture drops the picture entirely when its blip does not resolve:
// a picture without image data has nothing to show.
func (r *drawingResolver) resolvePicture(raw *dml.Picture, pos *Position, size *Size) *Picture {
	if raw.BlipFill == nil {
		return nil
	}
	img := r.resolveBlip(raw.BlipFill)
	if img == nil {
		return nil
	}

	pic := &Picture{
		ID:       raw.NonVisual.ID,
		Name:     raw.NonVisual.Name,
		Position: pos,
		Size:     size,
		Image:    img,
	}
	pic.ClickLink, pic.HoverLink = r.resolveObjectLinks(raw.NonVisual)
	props := raw.Properties
	if props == nil {
		props = &dml.ShapeProperties{}
	}
	applyTransform2D(props.Transform, false, &pic.Position, &pic.Size, &pic.Transform)

	refs := r.resolveStyleRefs(raw.Style)
	pic.Outline = r.resolveContentOutline(props.Line, refs)
	pic.Effects = r.resolveContentEffects(props.Effects, props.Scene3D, refs)
	return pic
}

func (r *drawingResolver) resolveGroup(raw *dml.GroupShape, pos *Position, size *Size) *Group {
	g := &Group{
		ID:       raw.NonVisual.ID,
		Name:     raw.NonVisual.Name,
		Position: pos,
		Size:     size,
	}
	g.ClickLink, g.HoverLink = r.resolveObjectLinks(raw.NonVisual)
	applyTransform2D(raw.Transform, true, &g.Position, &g.Size, &g.Transform)

	for _, child := range raw.Children {
		if content := r.resolveContent(child, nil, nil, raw.Fill); content != nil {
			content.LocksWithSheet = true
			content.PrintsWithSheet = true
			g.Children = append(g.Children, content)
		}
	}
	return g
}

func (r *drawingResolver) resolveConnector(raw *dml.ConnectionShape, pos *Position, size *Size) *Connector {
	cx := &Connector{
		ID:       raw.NonVisual.ID,
		Name:     raw.NonVisual.Name,
		Position: pos,
		Size:     size,
	}
	cx.ClickLink, cx.HoverLink = r.resolveObjectLinks(raw.NonVisual)
	props := raw.Properties
	if props == nil {
		props = &dml.ShapeProperties{}
	}
	applyTransform2D(props.Transform, false, &cx.Position, &cx.Size, &cx.Transform)

	refs := r.resolveStyleRefs(raw.Style)
	cx.Outline = r.resolveContentOutline(props.Line, refs)
	cx.Effects = r.resolveContentEffects(props.Effects, props.Scene3D, refs)
	return cx
}

func (r *drawingResolver) resolveGraphicFrame(raw *dml.GraphicFrame, pos *Position, size *Size) *GraphicFrame {
	f := &GraphicFrame{
		ID:       raw.NonVisual.ID,
		Name:     raw.NonVisual.Name,
		Position: pos,
		Size:     size,
	}
	f.ClickLink, f.HoverLink = r.resolveObjectLinks(raw.NonVisual)
	applyTransform2D(raw.Transform, false, &f.Position, &f.Size, &f.Transform)
	if raw.ChartRelID != "" && r.rels != nil {
		if target, ok := r.rels.TargetPath(raw.ChartRelID); ok {
			f.ChartPart = target
		}
	}
	return f
}

// styleRefs is the resolved state of a <style> element: the theme entries
// the references select plus the reference colors substituted for phClr.
type styleRefs struct {
	line      *dml.Line
	lineColor string

	fill      *dml.Fill
	fillColor string

	effects     *dml.EffectStyle
	effectColor string

	fontName  string
	fontColor string
}

func (r *drawingResolver) resolveStyleRefs(style *dml.ShapeStyle) styleRefs {
	var refs styleRefs
	if style == nil {
		return refs
	}
	var fm *dml.FormatScheme
	if r.theme != nil {
		fm = r.theme.FormatScheme
	}

	if ref := style.LineRef; ref != nil {
		refs.lineColor = r.refColor(ref)
		if fm != nil && ref.Index < uint64(len(fm.LineStyles)) {
			refs.line = fm.LineStyles[ref.Index]
		}
	}
	if ref := style.FillRef; ref != nil {
		refs.fillColor = r.refColor(ref)
		switch idx := ref.Index; {
		case idx == 0 || idx == 1000:
			// explicit no-fill reference
		case idx <= 999:
			if fm != nil && idx-1 < uint64(len(fm.FillStyles)) {
				refs.fill = fm.FillStyles[idx-1]
			}
		default:
			if fm != nil && idx-1001 < uint64(len(fm.BgFillStyles)) {
				refs.fill = fm.BgFillStyles[idx-1001]
			}
		}
	}
	if ref := style.EffectRef; ref != nil {
		refs.effectColor = r.refColor(ref)
		if fm != nil && ref.Index < uint64(len(fm.EffectStyles)) {
			refs.effects = fm.EffectStyles[ref.Index]
		}
	}
	if ref := style.FontRef; ref != nil {
		refs.fontColor = r.refColor(ref)
		if r.theme != nil && r.theme.FontScheme != nil {
			switch ref.Font {
			case "major":
				refs.fontName = r.theme.FontScheme.Major.Latin
			case "minor":
				refs.fontName = r.theme.FontScheme.Minor.Latin
			}
		}
	}
	return refs
}

// refColor resolves a style reference's own color, which then substitutes
// for phClr when the referenced theme entry is resolved.
func (r *drawingResolver) refColor(ref *dml.StyleRef) string {
	hex, ok := resolveDrawingColor(ref.Color, r.scheme, "")
	if !ok {
		return ""
	}
	return hex
}

// resolveContentFill picks the explicit fill over the fill reference. A
// grpFill inherits the enclosing group's fill one level; without a group it
// collapses to no fill.
func (r *drawingResolver) resolveContentFill(explicit *dml.Fill, refs styleRefs, groupFill *dml.Fill) ShapeFill {
	if explicit != nil && explicit.Kind == dml.FillGroup {
		if groupFill == nil {
			return ShapeFill{}
		}
		return r.resolveFill(groupFill, "")
	}
	if explicit != nil {
		return r.resolveFill(explicit, "")
	}
	if refs.fill != nil {
		return r.resolveFill(refs.fill, refs.fillColor)
	}
	return ShapeFill{}
}

func (r *drawingResolver) resolveFill(f *dml.Fill, refColor string) ShapeFill {
	switch f.Kind {
	case dml.FillSolid:
		hex, ok := resolveDrawingColor(f.Color, r.scheme, refColor)
		if !ok {
			return ShapeFill{}
		}
		return ShapeFill{Kind: ShapeFillSolid, Color: hex}
	case dml.FillGradient:
		if f.Gradient == nil {
			return ShapeFill{}
		}
		g := &Gradient{
			Angle:  conv.AngleToDegrees(f.Gradient.LinearAngle),
			Scaled: f.Gradient.LinearScaled,
			Path:   f.Gradient.Path,
		}
		for _, stop := range f.Gradient.Stops {
			point := GradientPoint{Position: conv.PercentToFloat(stop.Position)}
			if hex, ok := resolveDrawingColor(stop.Color, r.scheme, refColor); ok {
				point.Color = hex
			}
			g.Stops = append(g.Stops, point)
		}
		return ShapeFill{Kind: ShapeFillGradient, Gradient: g}
	case dml.FillPattern:
		if f.Pattern == nil {
			return ShapeFill{}
		}
		p := &Pattern{Preset: f.Pattern.Preset}
		if hex, ok := resolveDrawingColor(f.Pattern.Foreground, r.scheme, refColor); ok {
			p.Foreground = hex
		}
		if hex, ok := resolveDrawingColor(f.Pattern.Background, r.scheme, refColor); ok {
			p.Background = hex
		}
		return ShapeFill{Kind: ShapeFillPattern, Pattern: p}
	case dml.FillBlip:
		if img := r.resolveBlip(f.Blip); img != nil {
			return ShapeFill{Kind: ShapeFillPicture, Image: img}
		}
	}
	return ShapeFill{}
}

// resolveBlip follows a blip's embed relationship to the image part, falling
// back to the link relationship as an external reference.
func (r *drawingResolver) resolveBlip(b *dml.BlipFill) *Image {
	if b == nil || r.rels == nil {
		return nil
	}
	if b.EmbedRelID != "" {
		if rel, ok := r.rels.ByID(b.EmbedRelID); ok {
			if rel.External {
				return &Image{Name: path.Base(rel.Target), External: true, Target: rel.Target}
			}
			if data, ok := r.images[b.EmbedRelID]; ok {
				target, _ := r.rels.TargetPath(b.EmbedRelID)
				img := &Image{Name: path.Base(target), Data: data}
				if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
					img.Width = cfg.Width
					img.Height = cfg.Height
				}
				return img
			}
		}
	}
	if b.LinkRelID != "" {
		if rel, ok := r.rels.ByID(b.LinkRelID); ok {
			return &Image{Name: path.Base(rel.Target), External: true, Target: rel.Target}
		}
	}
	return nil
}

func (r *drawingResolver) resolveContentOutline(explicit *dml.Line, refs styleRefs) *Outline {
	ln, refColor := explicit, ""
	if ln == nil {
		ln, refColor = refs.line, refs.lineColor
	}
	if ln == nil {
		return nil
	}

	out := &Outline{
		Cap:        ln.Cap,
		Compound:   ln.Compound,
		DashPreset: ln.DashPreset,
		Join:       ln.Join,
	}
	if ln.Width != nil {
		out.Width = conv.EMUToPoints(*ln.Width)
	}
	if ln.Fill != nil {
		out.Fill = r.resolveFill(ln.Fill, refColor)
	}
	return out
}

func (r *drawingResolver) resolveContentEffects(effects *dml.EffectList, scene *dml.Scene3D, refs styleRefs) *Effects {
	refColor := ""
	if effects == nil && refs.effects != nil {
		effects = refs.effects.Effects
		refColor = refs.effectColor
	}
	if scene == nil && refs.effects != nil {
		scene = refs.effects.Scene3D
	}

	var out Effects
	if effects != nil && effects.OuterShadow != nil {
		out.OuterShadow = r.resolveOuterShadow(effects.OuterShadow, refColor)
	}
	if scene != nil {
		out.Rotation = cameraRotation(scene.Camera)
	}
	if out.OuterShadow == nil && out.Rotation == nil {
		return nil
	}
	return &out
}

// resolveOuterShadow yields nil when the shadow's color does not resolve; a
// shadow without a color cannot be drawn.
func (r *drawingResolver) resolveOuterShadow(s *dml.Shadow, refColor string) *OuterShadow {
	hex, ok := resolveDrawingColor(s.Color, r.scheme, refColor)
	if !ok {
		return nil
	}
	return &OuterShadow{
		Color:      hex,
		BlurRadius: conv.EMUToPoints(s.BlurRadius),
		Distance:   conv.EMUToPoints(s.Distance),
		Direction:  conv.AngleToDegrees(s.Direction),
	}
}

// cameraRotations maps the camera presets that imply a rotation. Presets
// absent here, orthographicFront included, imply none.
var cameraRotations = map[string]SceneRotation{
	"isometricBottomDown":    {X: 314.7, Y: 35.4, Z: 299.8},
	"isometricLeftDown":      {X: 45, Y: 35, Z: 0},
	"isometricOffAxis1Left":  {X: 64, Y: 18, Z: 0},
	"isometricOffAxis1Right": {X: 334, Y: 18, Z: 0},
	"isometricOffAxis1Top":   {X: 306.5, Y: 301.3, Z: 57.6},
	"isometricOffAxis2Left":  {X: 26, Y: 18, Z: 0},
	"isometricOffAxis2Right": {X: 296, Y: 18, Z: 0},
	"isometricOffAxis2Top":   {X: 53.5, Y: 301.3, Z: 302.4},
	"isometricRightUp":       {X: 315, Y: 35, Z: 0},
	"isometricTopUp":         {X: 314.7, Y: 324.6, Z: 60.2},

	"legacyObliqueBottom":      {},
	"legacyObliqueBottomLeft":  {},
	"legacyObliqueBottomRight": {},
	"legacyObliqueFront":       {},
	"legacyObliqueLeft":        {},
	"legacyObliqueRight":       {},
	"legacyObliqueTop":         {},
	"legacyObliqueTopLeft":     {},
	"legacyObliqueTopRight":    {},

	"legacyPerspectiveBottom": {X: 0, Y: 20, Z: 0},
	"legacyPerspectiveFront":  {},
	"legacyPerspectiveLeft":   {X: 20, Y: 0, Z: 0},
	"legacyPerspectiveRight":  {X: 340, Y: 0, Z: 0},
	"legacyPerspectiveTop":    {X: 0, Y: 340, Z: 0},

	"obliqueBottom":      {},
	"obliqueBottomLeft":  {},
	"obliqueBottomRight": {},
	"obliqueLeft":        {},
	"obliqueRight":       {},
	"obliqueTop":         {},
	"obliqueTopLeft":     {},
	"obliqueTopRight":    {},

	"perspectiveAbove":                    {X: 0, Y: 340, Z: 0},
	"perspectiveBelow":                    {X: 0, Y: 20, Z: 0},
	"perspectiveContrastingLeftFacing":    {X: 43.9, Y: 10.4, Z: 356.4},
	"perspectiveContrastingRightFacing":   {X: 316.1, Y: 10.4, Z: 3.6},
	"perspectiveFront":                    {},
	"perspectiveHeroicExtremeLeftFacing":  {X: 34.5, Y: 8.1, Z: 357.1},
	"perspectiveHeroicExtremeRightFacing": {X: 325.5, Y: 8.1, Z: 2.9},
	"perspectiveLeft":                     {X: 20, Y: 0, Z: 0},
	"perspectiveRelaxed":                  {X: 0, Y: 309.6, Z: 0},
	"perspectiveRelaxedModerately":        {X: 0, Y: 324.8, Z: 0},
	"perspectiveRight":                    {X: 340, Y: 0, Z: 0},
}

// cameraRotation resolves the camera's rotation: an explicit <rot> child
// wins, then the preset's implied rotation.
func cameraRotation(cam *dml.Camera) *SceneRotation {
	if cam == nil {
		return nil
	}
	if cam.Rotation != nil {
		return &SceneRotation{
			X: conv.AngleToDegrees(cam.Rotation.Longitude),
			Y: conv.AngleToDegrees(cam.Rotation.Latitude),
			Z: conv.AngleToDegrees(cam.Rotation.Revolution),
		}
	}
	if rot, ok := cameraRotations[cam.Preset]; ok {
		return &rot
	}
	return nil
}

func (r *drawingResolver) resolveTextBody(tb *dml.TextBody, refFont string) []Paragraph {
	var out []Paragraph
	for _, p := range tb.Paragraphs {
		para := Paragraph{}
		if p.Properties != nil {
			para.Alignment = p.Properties.Align
		}
		for _, run := range p.Runs {
			if run.Kind == dml.RunBreak {
				para.Spans = append(para.Spans, TextSpan{Break: true})
				continue
			}
			para.Spans = append(para.Spans, r.resolveTextSpan(run, refFont))
		}
		out = append(out, para)
	}
	return out
}

func (r *drawingResolver) resolveTextSpan(run *dml.TextRun, refFont string) TextSpan {
	span := TextSpan{Text: run.Text, Font: refFont}
	rp := run.Properties
	if rp == nil {
		return span
	}
	if rp.LatinFont != "" {
		span.Font = rp.LatinFont
	}
	if rp.Size != nil {
		span.Size = conv.TextPointToPoints(*rp.Size)
	}
	if rp.Bold != nil {
		span.Bold = *rp.Bold
	}
	if rp.Italic != nil {
		span.Italic = *rp.Italic
	}
	span.Underline = rp.Underline
	span.Strike = rp.Strike
	if rp.Fill != nil && rp.Fill.Kind == dml.FillSolid {
		if hex, ok := resolveDrawingColor(rp.Fill.Color, r.scheme, ""); ok {
			span.Color = hex
		}
	}
	return span
}
