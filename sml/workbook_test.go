package sml

import (
	"strings"
	"testing"
)

func TestParseWorkbook(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"
          xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <workbookPr date1904="1"/>
  <bookViews><workbookView activeTab="1"/></bookViews>
  <sheets>
    <sheet name="Data" sheetId="1" r:id="rId1"/>
    <sheet name="Hidden" sheetId="2" state="hidden" r:id="rId2"/>
    <sheet name="Secret" sheetId="5" state="veryHidden" r:id="rId3"/>
  </sheets>
  <definedNames>
    <definedName name="MyRange">Data!$A$1:$B$2</definedName>
    <definedName name="_xlnm.Print_Area" localSheetId="0" hidden="1">Data!$A$1:$C$10</definedName>
  </definedNames>
  <calcPr calcId="191029" refMode="R1C1"/>
</workbook>`

	wb, err := ParseWorkbook(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	if len(wb.Sheets) != 3 {
		t.Fatalf("sheets = %d", len(wb.Sheets))
	}
	if wb.Sheets[0].Name != "Data" || wb.Sheets[0].SheetID != 1 || wb.Sheets[0].RelID != "rId1" {
		t.Errorf("sheet 0 = %+v", wb.Sheets[0])
	}
	if wb.Sheets[0].State != SheetStateVisible {
		t.Errorf("sheet 0 state = %v", wb.Sheets[0].State)
	}
	if wb.Sheets[1].State != SheetStateHidden || wb.Sheets[2].State != SheetStateVeryHidden {
		t.Errorf("states = %v / %v", wb.Sheets[1].State, wb.Sheets[2].State)
	}

	if !wb.Date1904 || !wb.Epoch1904() {
		t.Error("date1904 should be set and honored")
	}
	if wb.ActiveTab != 1 {
		t.Errorf("activeTab = %d", wb.ActiveTab)
	}
	if wb.CalcRefMode != CalcRefModeR1C1 || wb.CalcID != 191029 {
		t.Errorf("calcPr = %v / %d", wb.CalcRefMode, wb.CalcID)
	}

	if len(wb.DefinedNames) != 2 {
		t.Fatalf("definedNames = %d", len(wb.DefinedNames))
	}
	dn := wb.DefinedNames[0]
	if dn.Name != "MyRange" || dn.Value != "Data!$A$1:$B$2" || dn.LocalSheetID != nil {
		t.Errorf("definedName 0 = %+v", dn)
	}
	pa := wb.DefinedNames[1]
	if pa.LocalSheetID == nil || *pa.LocalSheetID != 0 || !pa.Hidden {
		t.Errorf("definedName 1 = %+v", pa)
	}
}

func TestParseWorkbookDefaults(t *testing.T) {
	wb, err := ParseWorkbook(strings.NewReader(`<workbook><sheets><sheet name="S" sheetId="1" r:id="rId1" xmlns:r="r"/></sheets></workbook>`))
	if err != nil {
		t.Fatal(err)
	}
	if wb.Epoch1904() {
		t.Error("default epoch should be 1900")
	}
	if !wb.DateCompatibility {
		t.Error("dateCompatibility should default to true")
	}
	if wb.CalcRefMode != CalcRefModeA1 {
		t.Errorf("refMode = %v, want A1", wb.CalcRefMode)
	}
}

func TestEpoch1904Gate(t *testing.T) {
	src := `<workbook><workbookPr date1904="true" dateCompatibility="false"/><sheets/></workbook>`
	wb, err := ParseWorkbook(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if wb.Epoch1904() {
		t.Error("date1904 must not apply once date compatibility is off")
	}
}
