package xmlcur

import (
	"encoding/xml"
	"strings"
	"testing"
)

func TestRoot(t *testing.T) {
	c := New(strings.NewReader(`<?xml version="1.0"?><worksheet xmlns="x"><sheetData/></worksheet>`))
	start, err := c.Root("worksheet")
	if err != nil {
		t.Fatal(err)
	}
	if start.Name.Local != "worksheet" {
		t.Errorf("root = %q", start.Name.Local)
	}

	c = New(strings.NewReader(`<workbook/>`))
	if _, err := c.Root("worksheet"); err == nil {
		t.Error("expected error for wrong document element")
	}

	c = New(strings.NewReader(``))
	if _, err := c.Root("worksheet"); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestChildrenDispatch(t *testing.T) {
	src := `<row r="2">
		<c r="A2"><v>1</v></c>
		<junk><deep><deeper/></deep></junk>
		<c r="B2"><v>2</v></c>
	</row>`

	c := New(strings.NewReader(src))
	start, err := c.Root("row")
	if err != nil {
		t.Fatal(err)
	}

	var refs []string
	err = c.Children(start, func(child xml.StartElement) error {
		if child.Name.Local != "c" {
			return c.Skip()
		}
		refs = append(refs, AttrValue(child, "r"))
		return c.Skip()
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(refs) != 2 || refs[0] != "A2" || refs[1] != "B2" {
		t.Errorf("refs = %v", refs)
	}
}

func TestChildrenTruncatedInput(t *testing.T) {
	c := New(strings.NewReader(`<row r="1"><c r="A1">`))
	start, err := c.Root("row")
	if err != nil {
		t.Fatal(err)
	}

	err = c.Children(start, func(child xml.StartElement) error {
		return c.Skip()
	})
	if err == nil {
		t.Fatal("expected error for truncated element")
	}
	if !strings.Contains(err.Error(), "<c>") && !strings.Contains(err.Error(), "<row>") {
		t.Errorf("error should name the element: %v", err)
	}
}

func TestText(t *testing.T) {
	c := New(strings.NewReader(`<t xml:space="preserve">  hello <b>bold</b> world  </t>`))
	start, err := c.Root("t")
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Text(start)
	if err != nil {
		t.Fatal(err)
	}
	if got != "  hello bold world  " {
		t.Errorf("Text = %q", got)
	}
}

func TestTextSelfClosed(t *testing.T) {
	c := New(strings.NewReader(`<root><v/></root>`))
	start, err := c.Root("root")
	if err != nil {
		t.Fatal(err)
	}
	err = c.Children(start, func(child xml.StartElement) error {
		got, err := c.Text(child)
		if err != nil {
			return err
		}
		if got != "" {
			t.Errorf("self-closed Text = %q, want empty", got)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestAttr(t *testing.T) {
	c := New(strings.NewReader(`<c r="B3" s="5" t="s" xmlns:rel="r" rel:id="rId1"/>`))
	start, err := c.Root("c")
	if err != nil {
		t.Fatal(err)
	}

	if v, ok := Attr(start, "r"); !ok || v != "B3" {
		t.Errorf("Attr(r) = %q, %v", v, ok)
	}
	// namespace prefixes are ignored
	if v, ok := Attr(start, "id"); !ok || v != "rId1" {
		t.Errorf("Attr(id) = %q, %v", v, ok)
	}
	if _, ok := Attr(start, "missing"); ok {
		t.Error("absent attribute should not be found")
	}
	if v := AttrValue(start, "missing"); v != "" {
		t.Errorf("AttrValue(missing) = %q", v)
	}
}

func TestNonUTF8Declaration(t *testing.T) {
	// the decoder accepts parts that declare a legacy charset
	src := `<?xml version="1.0" encoding="ISO-8859-1"?><t>caf` + "\xe9" + `</t>`
	c := New(strings.NewReader(src))
	start, err := c.Root("t")
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Text(start)
	if err != nil {
		t.Fatal(err)
	}
	if got != "café" {
		t.Errorf("Text = %q, want café", got)
	}
}
