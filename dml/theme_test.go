package dml

import (
	"strings"
	"testing"
)

const themeFixture = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">
  <a:themeElements>
    <a:clrScheme name="Office">
      <a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>
      <a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>
      <a:dk2><a:srgbClr val="44546A"/></a:dk2>
      <a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>
      <a:accent1><a:srgbClr val="4472C4"/></a:accent1>
      <a:accent2><a:srgbClr val="ED7D31"/></a:accent2>
      <a:accent3><a:srgbClr val="A5A5A5"/></a:accent3>
      <a:accent4><a:srgbClr val="FFC000"/></a:accent4>
      <a:accent5><a:srgbClr val="5B9BD5"/></a:accent5>
      <a:accent6><a:srgbClr val="70AD47"/></a:accent6>
      <a:hlink><a:srgbClr val="0563C1"/></a:hlink>
      <a:folHlink><a:srgbClr val="954F72"/></a:folHlink>
    </a:clrScheme>
    <a:fontScheme name="Office">
      <a:majorFont><a:latin typeface="Calibri Light"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
      <a:minorFont><a:latin typeface="Calibri"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
    </a:fontScheme>
    <a:fmtScheme name="Office">
      <a:fillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:gradFill rotWithShape="1">
          <a:gsLst>
            <a:gs pos="0"><a:schemeClr val="phClr"><a:lumMod val="110000"/><a:satMod val="105000"/><a:tint val="67000"/></a:schemeClr></a:gs>
            <a:gs pos="100000"><a:schemeClr val="phClr"><a:lumMod val="99000"/><a:shade val="78000"/></a:schemeClr></a:gs>
          </a:gsLst>
          <a:lin ang="5400000" scaled="0"/>
        </a:gradFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:fillStyleLst>
      <a:lnStyleLst>
        <a:ln w="6350" cap="flat" cmpd="sng" algn="ctr">
          <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
          <a:prstDash val="solid"/>
          <a:miter lim="800000"/>
        </a:ln>
        <a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
        <a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>
      </a:lnStyleLst>
      <a:effectStyleLst>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle><a:effectLst/></a:effectStyle>
        <a:effectStyle>
          <a:effectLst>
            <a:outerShdw blurRad="57150" dist="19050" dir="5400000" algn="ctr" rotWithShape="0">
              <a:srgbClr val="000000"><a:alpha val="63000"/></a:srgbClr>
            </a:outerShdw>
          </a:effectLst>
          <a:scene3d>
            <a:camera prst="orthographicFront"><a:rot lat="0" lon="0" rev="0"/></a:camera>
            <a:lightRig rig="threePt" dir="t"/>
          </a:scene3d>
        </a:effectStyle>
      </a:effectStyleLst>
      <a:bgFillStyleLst>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
        <a:solidFill><a:schemeClr val="phClr"/></a:solidFill>
      </a:bgFillStyleLst>
    </a:fmtScheme>
  </a:themeElements>
</a:theme>`

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(strings.NewReader(themeFixture))
	if err != nil {
		t.Fatal(err)
	}
	if th.Name != "Office Theme" {
		t.Errorf("name = %q", th.Name)
	}

	t.Run("colorScheme", func(t *testing.T) {
		cs := th.ColorScheme
		if cs == nil {
			t.Fatal("clrScheme missing")
		}
		if cs.Dark1 == nil || cs.Dark1.Kind != ColorSystem || cs.Dark1.LastColor != "000000" {
			t.Errorf("dk1 = %+v", cs.Dark1)
		}
		if cs.Accent1 == nil || cs.Accent1.Value != "4472C4" {
			t.Errorf("accent1 = %+v", cs.Accent1)
		}

		// tx/bg aliases map onto dark/light
		if cs.BySlot("tx1") != cs.Dark1 || cs.BySlot("bg1") != cs.Light1 {
			t.Error("tx1/bg1 should alias dk1/lt1")
		}
		if cs.BySlot("tx2") != cs.Dark2 || cs.BySlot("bg2") != cs.Light2 {
			t.Error("tx2/bg2 should alias dk2/lt2")
		}
		if cs.BySlot("accent6") != cs.Accent6 || cs.BySlot("folHlink") != cs.FollowedHyperlink {
			t.Error("direct slots should resolve")
		}
		if cs.BySlot("phClr") != nil {
			t.Error("phClr is not a slot")
		}

		// SpreadsheetML theme indexes swap the first two pairs
		if cs.ByIndex(0) != cs.Light1 || cs.ByIndex(1) != cs.Dark1 {
			t.Error("indexes 0/1 should be lt1/dk1")
		}
		if cs.ByIndex(2) != cs.Light2 || cs.ByIndex(3) != cs.Dark2 {
			t.Error("indexes 2/3 should be lt2/dk2")
		}
		if cs.ByIndex(4) != cs.Accent1 || cs.ByIndex(9) != cs.Accent6 {
			t.Error("indexes 4-9 should be the accents")
		}
		if cs.ByIndex(10) != cs.Hyperlink || cs.ByIndex(11) != cs.FollowedHyperlink {
			t.Error("indexes 10/11 should be the hyperlink slots")
		}
		if cs.ByIndex(12) != nil {
			t.Error("out of range index should be nil")
		}
	})

	t.Run("fontScheme", func(t *testing.T) {
		fs := th.FontScheme
		if fs == nil {
			t.Fatal("fontScheme missing")
		}
		if fs.Major.Latin != "Calibri Light" || fs.Minor.Latin != "Calibri" {
			t.Errorf("fonts = %+v / %+v", fs.Major, fs.Minor)
		}
	})

	t.Run("formatScheme", func(t *testing.T) {
		fm := th.FormatScheme
		if fm == nil {
			t.Fatal("fmtScheme missing")
		}
		if len(fm.FillStyles) != 3 || len(fm.LineStyles) != 3 || len(fm.EffectStyles) != 3 || len(fm.BgFillStyles) != 3 {
			t.Fatalf("style lists = %d/%d/%d/%d", len(fm.FillStyles), len(fm.LineStyles), len(fm.EffectStyles), len(fm.BgFillStyles))
		}

		grad := fm.FillStyles[1]
		if grad.Kind != FillGradient || len(grad.Gradient.Stops) != 2 {
			t.Fatalf("fill style 1 = %+v", grad)
		}
		stop := grad.Gradient.Stops[0]
		if stop.Color.Kind != ColorSchemeRef || stop.Color.Value != "phClr" {
			t.Errorf("stop color = %+v", stop.Color)
		}
		if len(stop.Color.Transforms) != 3 {
			t.Fatalf("stop transforms = %d", len(stop.Color.Transforms))
		}
		if stop.Color.Transforms[0].Kind != TransformLumMod || stop.Color.Transforms[0].Value != 110000 {
			t.Errorf("transform 0 = %+v", stop.Color.Transforms[0])
		}
		if stop.Color.Transforms[2].Kind != TransformTint || stop.Color.Transforms[2].Value != 67000 {
			t.Errorf("transform 2 = %+v", stop.Color.Transforms[2])
		}
		if grad.Gradient.LinearAngle != 5400000 {
			t.Errorf("lin angle = %d", grad.Gradient.LinearAngle)
		}

		ln := fm.LineStyles[0]
		if ln.Width == nil || *ln.Width != 6350 || ln.Cap != "flat" {
			t.Errorf("line style 0 = %+v", ln)
		}
		if ln.DashPreset != "solid" || ln.Join != "miter" || ln.MiterLimit == nil || *ln.MiterLimit != 800000 {
			t.Errorf("line style 0 = %+v", ln)
		}

		es := fm.EffectStyles[2]
		if es.Effects == nil || es.Effects.OuterShadow == nil {
			t.Fatal("effect style 2 should carry an outer shadow")
		}
		sh := es.Effects.OuterShadow
		if sh.BlurRadius != 57150 || sh.Distance != 19050 || sh.Direction != 5400000 {
			t.Errorf("shadow = %+v", sh)
		}
		if sh.Color == nil || sh.Color.Value != "000000" || len(sh.Color.Transforms) != 1 {
			t.Errorf("shadow color = %+v", sh.Color)
		}
		if sh.Color.Transforms[0].Kind != TransformAlpha || sh.Color.Transforms[0].Value != 63000 {
			t.Errorf("shadow alpha = %+v", sh.Color.Transforms[0])
		}
		if es.Scene3D == nil || es.Scene3D.Camera == nil || es.Scene3D.Camera.Preset != "orthographicFront" {
			t.Errorf("scene3d = %+v", es.Scene3D)
		}
		if es.Scene3D.LightRig == nil || es.Scene3D.LightRig.Rig != "threePt" {
			t.Errorf("lightRig = %+v", es.Scene3D.LightRig)
		}
	})
}

func TestParseThemeTruncated(t *testing.T) {
	src := `<a:theme xmlns:a="a"><a:themeElements><a:clrScheme><a:dk1>`
	if _, err := ParseTheme(strings.NewReader(src)); err == nil {
		t.Fatal("expected error for truncated theme")
	}
}
