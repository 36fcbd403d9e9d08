package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// EffectList is an <effectLst> element. Each member is nil when the markup
// does not carry it.
type EffectList struct {
	Blur         *Blur
	FillOverlay  *FillOverlay
	Glow         *Glow
	InnerShadow  *Shadow
	OuterShadow  *Shadow
	PresetShadow *PresetShadow
	Reflection   *Reflection
	SoftEdge     *SoftEdge
}

// Shadow covers outerShdw and innerShdw, which share their attributes.
// Lengths are in EMUs, Direction in 60000ths of a degree, scales and skews in
// 1000ths of a percent.
type Shadow struct {
	BlurRadius   int64
	Distance     int64
	Direction    int64
	ScaleX       *int64
	ScaleY       *int64
	SkewX        int64
	SkewY        int64
	Alignment    string
	RotWithShape *bool
	Color        *Color
}

// PresetShadow is a <prstShdw> element.
type PresetShadow struct {
	Preset    string
	Distance  int64
	Direction int64
	Color     *Color
}

// Glow is a <glow> element.
type Glow struct {
	Radius int64
	Color  *Color
}

// Blur is a <blur> element.
type Blur struct {
	Radius int64
	Grow   *bool
}

// SoftEdge is a <softEdge> element.
type SoftEdge struct {
	Radius int64
}

// FillOverlay is a <fillOverlay> element.
type FillOverlay struct {
	Blend string
	Fill  *Fill
}

// Reflection is a <reflection> element. Alphas and scales are 1000ths of a
// percent, angles 60000ths of a degree, lengths EMUs.
type Reflection struct {
	BlurRadius    int64
	StartAlpha    *int64
	StartPosition int64
	EndAlpha      int64
	EndPosition   *int64
	Distance      int64
	Direction     int64
	FadeDirection *int64
	ScaleX        *int64
	ScaleY        *int64
	SkewX         int64
	SkewY         int64
	Alignment     string
	RotWithShape  *bool
}

// EffectStyle is one <effectStyle> of the theme's effect style list.
type EffectStyle struct {
	Effects *EffectList
	Scene3D *Scene3D
	Shape3D *Shape3D
}

// loadEffectList loads an <effectLst> element.
func loadEffectList(cur *xmlcur.Cursor, start xml.StartElement) (*EffectList, error) {
	el := &EffectList{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "blur":
			b := &Blur{}
			b.Radius, _ = conv.Int(xmlcur.AttrValue(child, "rad"))
			if v, ok := xmlcur.Attr(child, "grow"); ok {
				if bv, parsed := conv.Bool(v); parsed {
					b.Grow = &bv
				}
			}
			el.Blur = b
			return cur.Skip()
		case "fillOverlay":
			fo := &FillOverlay{Blend: xmlcur.AttrValue(child, "blend")}
			err := cur.Children(child, func(fe xml.StartElement) error {
				if !IsFillElement(fe.Name.Local) {
					return cur.Skip()
				}
				f, err := loadFill(cur, fe)
				if err != nil {
					return err
				}
				fo.Fill = f
				return nil
			})
			if err != nil {
				return err
			}
			el.FillOverlay = fo
			return nil
		case "glow":
			g := &Glow{}
			g.Radius, _ = conv.Int(xmlcur.AttrValue(child, "rad"))
			c, err := loadSingleColor(cur, child)
			if err != nil {
				return err
			}
			g.Color = c
			el.Glow = g
			return nil
		case "innerShdw":
			s, err := loadShadow(cur, child)
			if err != nil {
				return err
			}
			el.InnerShadow = s
			return nil
		case "outerShdw":
			s, err := loadShadow(cur, child)
			if err != nil {
				return err
			}
			el.OuterShadow = s
			return nil
		case "prstShdw":
			ps := &PresetShadow{Preset: xmlcur.AttrValue(child, "prst")}
			ps.Distance, _ = conv.Int(xmlcur.AttrValue(child, "dist"))
			ps.Direction, _ = conv.Int(xmlcur.AttrValue(child, "dir"))
			c, err := loadSingleColor(cur, child)
			if err != nil {
				return err
			}
			ps.Color = c
			el.PresetShadow = ps
			return nil
		case "reflection":
			el.Reflection = loadReflection(child)
			return cur.Skip()
		case "softEdge":
			se := &SoftEdge{}
			se.Radius, _ = conv.Int(xmlcur.AttrValue(child, "rad"))
			el.SoftEdge = se
			return cur.Skip()
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return el, nil
}

func loadShadow(cur *xmlcur.Cursor, start xml.StartElement) (*Shadow, error) {
	s := &Shadow{Alignment: xmlcur.AttrValue(start, "algn")}
	s.BlurRadius, _ = conv.Int(xmlcur.AttrValue(start, "blurRad"))
	s.Distance, _ = conv.Int(xmlcur.AttrValue(start, "dist"))
	s.Direction, _ = conv.Int(xmlcur.AttrValue(start, "dir"))
	if v, ok := conv.Int(xmlcur.AttrValue(start, "sx")); ok {
		s.ScaleX = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "sy")); ok {
		s.ScaleY = &v
	}
	s.SkewX, _ = conv.Int(xmlcur.AttrValue(start, "kx"))
	s.SkewY, _ = conv.Int(xmlcur.AttrValue(start, "ky"))
	if v, ok := xmlcur.Attr(start, "rotWithShape"); ok {
		if b, parsed := conv.Bool(v); parsed {
			s.RotWithShape = &b
		}
	}

	c, err := loadSingleColor(cur, start)
	if err != nil {
		return nil, err
	}
	s.Color = c
	return s, nil
}

func loadReflection(start xml.StartElement) *Reflection {
	r := &Reflection{Alignment: xmlcur.AttrValue(start, "algn")}
	r.BlurRadius, _ = conv.Int(xmlcur.AttrValue(start, "blurRad"))
	if v, ok := conv.Int(xmlcur.AttrValue(start, "stA")); ok {
		r.StartAlpha = &v
	}
	r.StartPosition, _ = conv.Int(xmlcur.AttrValue(start, "stPos"))
	r.EndAlpha, _ = conv.Int(xmlcur.AttrValue(start, "endA"))
	if v, ok := conv.Int(xmlcur.AttrValue(start, "endPos")); ok {
		r.EndPosition = &v
	}
	r.Distance, _ = conv.Int(xmlcur.AttrValue(start, "dist"))
	r.Direction, _ = conv.Int(xmlcur.AttrValue(start, "dir"))
	if v, ok := conv.Int(xmlcur.AttrValue(start, "fadeDir")); ok {
		r.FadeDirection = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "sx")); ok {
		r.ScaleX = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "sy")); ok {
		r.ScaleY = &v
	}
	r.SkewX, _ = conv.Int(xmlcur.AttrValue(start, "kx"))
	r.SkewY, _ = conv.Int(xmlcur.AttrValue(start, "ky"))
	if v, ok := xmlcur.Attr(start, "rotWithShape"); ok {
		if b, parsed := conv.Bool(v); parsed {
			r.RotWithShape = &b
		}
	}
	return r
}

// loadEffectStyle loads one <effectStyle> element of the theme.
func loadEffectStyle(cur *xmlcur.Cursor, start xml.StartElement) (*EffectStyle, error) {
	es := &EffectStyle{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "effectLst":
			el, err := loadEffectList(cur, child)
			if err != nil {
				return err
			}
			es.Effects = el
			return nil
		case "scene3d":
			s, err := loadScene3D(cur, child)
			if err != nil {
				return err
			}
			es.Scene3D = s
			return nil
		case "sp3d":
			s, err := loadShape3D(cur, child)
			if err != nil {
				return err
			}
			es.Shape3D = s
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return es, nil
}
