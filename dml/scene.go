package dml

import (
	"encoding/xml"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Scene3D is a <scene3d> element.
type Scene3D struct {
	Camera   *Camera
	LightRig *LightRig
	Backdrop *Backdrop
}

// Camera is the scene camera. Preset is the prst token; an explicit <rot>
// child overrides the preset's implied rotation.
type Camera struct {
	Preset   string
	FOV      *int64 // 60000ths of a degree
	Zoom     *int64 // 1000ths of a percent
	Rotation *Rotation
}

// Rotation is a <rot> element; all three are 60000ths of a degree.
type Rotation struct {
	Latitude   int64
	Longitude  int64
	Revolution int64
}

// LightRig is a <lightRig> element.
type LightRig struct {
	Rig       string
	Direction string
	Rotation  *Rotation
}

// Backdrop is a <backdrop> plane: an anchor point plus normal and up
// vectors, all in EMUs.
type Backdrop struct {
	AnchorX, AnchorY, AnchorZ int64
	NormalX, NormalY, NormalZ int64
	UpX, UpY, UpZ             int64
}

// Shape3D is an <sp3d> element, kept to the pieces style resolution uses.
type Shape3D struct {
	ExtrusionHeight int64 // EMU
	ContourWidth    int64 // EMU
	Material        string
	BevelTop        *Bevel
	BevelBottom     *Bevel
	ExtrusionColor  *Color
	ContourColor    *Color
}

// Bevel is a bevelT/bevelB element.
type Bevel struct {
	Width  *int64
	Height *int64
	Preset string
}

func loadScene3D(cur *xmlcur.Cursor, start xml.StartElement) (*Scene3D, error) {
	s := &Scene3D{}
	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "camera":
			cam := &Camera{Preset: xmlcur.AttrValue(child, "prst")}
			if v, ok := conv.Int(xmlcur.AttrValue(child, "fov")); ok {
				cam.FOV = &v
			}
			if v, ok := conv.Int(xmlcur.AttrValue(child, "zoom")); ok {
				cam.Zoom = &v
			}
			err := cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local == "rot" {
					cam.Rotation = loadRotation(ce)
				}
				return cur.Skip()
			})
			if err != nil {
				return err
			}
			s.Camera = cam
			return nil
		case "lightRig":
			rig := &LightRig{
				Rig:       xmlcur.AttrValue(child, "rig"),
				Direction: xmlcur.AttrValue(child, "dir"),
			}
			err := cur.Children(child, func(ce xml.StartElement) error {
				if ce.Name.Local == "rot" {
					rig.Rotation = loadRotation(ce)
				}
				return cur.Skip()
			})
			if err != nil {
				return err
			}
			s.LightRig = rig
			return nil
		case "backdrop":
			bd := &Backdrop{}
			err := cur.Children(child, func(ce xml.StartElement) error {
				switch ce.Name.Local {
				case "anchor":
					bd.AnchorX, _ = conv.Int(xmlcur.AttrValue(ce, "x"))
					bd.AnchorY, _ = conv.Int(xmlcur.AttrValue(ce, "y"))
					bd.AnchorZ, _ = conv.Int(xmlcur.AttrValue(ce, "z"))
				case "norm":
					bd.NormalX, _ = conv.Int(xmlcur.AttrValue(ce, "dx"))
					bd.NormalY, _ = conv.Int(xmlcur.AttrValue(ce, "dy"))
					bd.NormalZ, _ = conv.Int(xmlcur.AttrValue(ce, "dz"))
				case "up":
					bd.UpX, _ = conv.Int(xmlcur.AttrValue(ce, "dx"))
					bd.UpY, _ = conv.Int(xmlcur.AttrValue(ce, "dy"))
					bd.UpZ, _ = conv.Int(xmlcur.AttrValue(ce, "dz"))
				}
				return cur.Skip()
			})
			if err != nil {
				return err
			}
			s.Backdrop = bd
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func loadRotation(start xml.StartElement) *Rotation {
	r := &Rotation{}
	r.Latitude, _ = conv.Int(xmlcur.AttrValue(start, "lat"))
	r.Longitude, _ = conv.Int(xmlcur.AttrValue(start, "lon"))
	r.Revolution, _ = conv.Int(xmlcur.AttrValue(start, "rev"))
	return r
}

func loadShape3D(cur *xmlcur.Cursor, start xml.StartElement) (*Shape3D, error) {
	s := &Shape3D{Material: xmlcur.AttrValue(start, "prstMaterial")}
	s.ExtrusionHeight, _ = conv.Int(xmlcur.AttrValue(start, "extrusionH"))
	s.ContourWidth, _ = conv.Int(xmlcur.AttrValue(start, "contourW"))

	err := cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "bevelT":
			s.BevelTop = loadBevel(child)
			return cur.Skip()
		case "bevelB":
			s.BevelBottom = loadBevel(child)
			return cur.Skip()
		case "extrusionClr":
			c, err := loadSingleColor(cur, child)
			if err != nil {
				return err
			}
			s.ExtrusionColor = c
			return nil
		case "contourClr":
			c, err := loadSingleColor(cur, child)
			if err != nil {
				return err
			}
			s.ContourColor = c
			return nil
		}
		return cur.Skip()
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func loadBevel(start xml.StartElement) *Bevel {
	b := &Bevel{Preset: xmlcur.AttrValue(start, "prst")}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "w")); ok {
		b.Width = &v
	}
	if v, ok := conv.Int(xmlcur.AttrValue(start, "h")); ok {
		b.Height = &v
	}
	return b
}
