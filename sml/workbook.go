package sml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/tsawler/cellula/internal/conv"
	"github.com/tsawler/cellula/xmlcur"
)

// Workbook is the raw xl/workbook.xml part.
type Workbook struct {
	Sheets       []SheetEntry
	DefinedNames []DefinedName

	// workbookPr
	Date1904          bool
	DateCompatibility bool

	// calcPr
	CalcRefMode CalcRefMode
	CalcID      uint64

	// bookViews/workbookView
	ActiveTab uint64
}

// SheetEntry is one <sheet> element of the workbook's sheet list. The part it
// points at is found through RelID; Type is filled in later from the
// relationship's type.
type SheetEntry struct {
	Name    string
	SheetID uint64
	RelID   string
	State   SheetState
	Type    SheetType
}

// DefinedName is one <definedName> entry. Value is the refers-to formula
// text. LocalSheetID scopes the name to a sheet; nil means workbook scope.
type DefinedName struct {
	Name         string
	Value        string
	LocalSheetID *uint64
	Hidden       bool
	Comment      string
}

// ParseWorkbook parses an xl/workbook.xml part.
func ParseWorkbook(r io.Reader) (*Workbook, error) {
	cur := xmlcur.New(r)
	start, err := cur.Root("workbook")
	if err != nil {
		return nil, fmt.Errorf("workbook: %w", err)
	}

	// dateCompatibility defaults to true; date1904 is only honored when it
	// stays true.
	wb := &Workbook{DateCompatibility: true}

	err = cur.Children(start, func(child xml.StartElement) error {
		switch child.Name.Local {
		case "workbookPr":
			if v, ok := conv.Bool(xmlcur.AttrValue(child, "date1904")); ok {
				wb.Date1904 = v
			}
			if v, ok := conv.Bool(xmlcur.AttrValue(child, "dateCompatibility")); ok {
				wb.DateCompatibility = v
			}
			return cur.Skip()
		case "bookViews":
			return cur.Children(child, func(ve xml.StartElement) error {
				if ve.Name.Local == "workbookView" {
					if v, ok := conv.Uint(xmlcur.AttrValue(ve, "activeTab")); ok {
						wb.ActiveTab = v
					}
				}
				return cur.Skip()
			})
		case "sheets":
			return cur.Children(child, func(se xml.StartElement) error {
				if se.Name.Local != "sheet" {
					return cur.Skip()
				}
				entry := SheetEntry{
					Name:  xmlcur.AttrValue(se, "name"),
					RelID: xmlcur.AttrValue(se, "id"),
					State: ParseSheetState(xmlcur.AttrValue(se, "state")),
				}
				entry.SheetID, _ = conv.Uint(xmlcur.AttrValue(se, "sheetId"))
				wb.Sheets = append(wb.Sheets, entry)
				return cur.Skip()
			})
		case "definedNames":
			return cur.Children(child, func(de xml.StartElement) error {
				if de.Name.Local != "definedName" {
					return cur.Skip()
				}
				dn := DefinedName{
					Name:    xmlcur.AttrValue(de, "name"),
					Comment: xmlcur.AttrValue(de, "comment"),
				}
				if v, ok := conv.Uint(xmlcur.AttrValue(de, "localSheetId")); ok {
					dn.LocalSheetID = &v
				}
				dn.Hidden, _ = conv.Bool(xmlcur.AttrValue(de, "hidden"))
				text, err := cur.Text(de)
				if err != nil {
					return err
				}
				dn.Value = text
				wb.DefinedNames = append(wb.DefinedNames, dn)
				return nil
			})
		case "calcPr":
			wb.CalcRefMode = ParseCalcRefMode(xmlcur.AttrValue(child, "refMode"))
			wb.CalcID, _ = conv.Uint(xmlcur.AttrValue(child, "calcId"))
			return cur.Skip()
		default:
			return cur.Skip()
		}
	})
	if err != nil {
		return nil, fmt.Errorf("workbook: %w", err)
	}
	return wb, nil
}

// Epoch1904 reports whether serial dates count from the 1904 epoch. The
// date1904 flag only applies while the workbook stays in date-compatibility
// mode.
func (wb *Workbook) Epoch1904() bool {
	return wb.Date1904 && wb.DateCompatibility
}
