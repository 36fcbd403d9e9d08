package sml

import (
	"strings"
	"testing"
)

func TestParseSharedStrings(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="5" uniqueCount="3">
  <si><t>plain</t></si>
  <si><t xml:space="preserve">  padded  </t></si>
  <si>
    <r><t>normal </t></r>
    <r>
      <rPr><b/><sz val="12"/><color rgb="FFFF0000"/><rFont val="Arial"/></rPr>
      <t>bold red</t>
    </r>
    <rPh sb="0" eb="2"><t>ふりがな</t></rPh>
    <phoneticPr fontId="1" type="fullwidthKatakana" alignment="center"/>
  </si>
</sst>`

	sst, err := ParseSharedStrings(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	if sst.Count != 5 || sst.UniqueCount != 3 {
		t.Errorf("counts = %d/%d", sst.Count, sst.UniqueCount)
	}
	if len(sst.Items) != 3 {
		t.Fatalf("items = %d", len(sst.Items))
	}

	if sst.Items[0].Text == nil || *sst.Items[0].Text != "plain" {
		t.Errorf("item 0 = %+v", sst.Items[0])
	}
	if *sst.Items[1].Text != "  padded  " {
		t.Errorf("whitespace not preserved: %q", *sst.Items[1].Text)
	}

	rich := sst.Items[2]
	if rich.Text != nil {
		t.Error("rich item should have no plain text")
	}
	if len(rich.Runs) != 2 {
		t.Fatalf("runs = %d", len(rich.Runs))
	}
	if rich.Runs[0].Text != "normal " || rich.Runs[0].Properties != nil {
		t.Errorf("run 0 = %+v", rich.Runs[0])
	}
	p := rich.Runs[1].Properties
	if p == nil || !p.Bold || p.Name != "Arial" {
		t.Errorf("run 1 properties = %+v", p)
	}
	if p.Size == nil || *p.Size != 12 {
		t.Errorf("run 1 size = %v", p.Size)
	}
	if p.Color == nil || p.Color.RGB != "FFFF0000" {
		t.Errorf("run 1 color = %+v", p.Color)
	}

	if len(rich.PhoneticRuns) != 1 {
		t.Fatalf("phonetic runs = %d", len(rich.PhoneticRuns))
	}
	ph := rich.PhoneticRuns[0]
	if ph.Start != 0 || ph.End != 2 || ph.Text != "ふりがな" {
		t.Errorf("phonetic run = %+v", ph)
	}
	if rich.PhoneticPr == nil || rich.PhoneticPr.FontID != 1 || rich.PhoneticPr.Type != "fullwidthKatakana" {
		t.Errorf("phoneticPr = %+v", rich.PhoneticPr)
	}
}

func TestParseSharedStringsEmpty(t *testing.T) {
	sst, err := ParseSharedStrings(strings.NewReader(`<sst count="0" uniqueCount="0"/>`))
	if err != nil {
		t.Fatal(err)
	}
	if len(sst.Items) != 0 {
		t.Errorf("items = %d", len(sst.Items))
	}
}

func TestParseSharedStringsTruncated(t *testing.T) {
	if _, err := ParseSharedStrings(strings.NewReader(`<sst><si><t>oops`)); err == nil {
		t.Fatal("expected error for truncated part")
	}
}
