package opc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path"
	"strings"
)

// Well-known relationship types, abbreviated to the segment that
// distinguishes them.
const (
	RelTypeOfficeDocument = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeWorksheet      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	RelTypeChartsheet     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chartsheet"
	RelTypeDialogsheet    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/dialogsheet"
	RelTypeSharedStrings  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings"
	RelTypeStyles         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypeTheme          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelTypeDrawing        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/drawing"
	RelTypeImage          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeHyperlink      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelTypeTable          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/table"
	RelTypeChart          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
)

// Relationship is one entry of a relationships part. Target is kept as
// written; use Relationships.TargetPath for the resolved package path.
// External relationships (TargetMode="External") point outside the package,
// typically at a URL.
type Relationship struct {
	ID       string
	Type     string
	Target   string
	External bool
}

// Relationships is the parsed relationship part of one source part.
type Relationships struct {
	source string // part the relationships belong to
	byID   map[string]Relationship
	list   []Relationship
}

type relationshipsXML struct {
	Relationships []struct {
		ID         string `xml:"Id,attr"`
		Type       string `xml:"Type,attr"`
		Target     string `xml:"Target,attr"`
		TargetMode string `xml:"TargetMode,attr"`
	} `xml:"Relationship"`
}

// RelsPartName returns the name of the relationships part for a source part:
// "xl/workbook.xml" maps to "xl/_rels/workbook.xml.rels". The package root
// maps to "_rels/.rels".
func RelsPartName(source string) string {
	source = strings.TrimPrefix(source, "/")
	dir, base := path.Split(source)
	return dir + "_rels/" + base + ".rels"
}

// Relationships parses the relationships part belonging to the named source
// part. A part with no relationships yields an empty, usable set.
func (c *Container) Relationships(source string) (*Relationships, error) {
	rels := &Relationships{
		source: strings.TrimPrefix(source, "/"),
		byID:   make(map[string]Relationship),
	}

	data, err := c.Part(RelsPartName(source))
	if err != nil {
		if errors.Is(err, ErrPartNotFound) {
			return rels, nil
		}
		return nil, err
	}

	var raw relationshipsXML
	if err := xml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing relationships of %s: %w", source, err)
	}

	for _, r := range raw.Relationships {
		rel := Relationship{
			ID:       r.ID,
			Type:     r.Type,
			Target:   r.Target,
			External: strings.EqualFold(r.TargetMode, "External"),
		}
		rels.byID[rel.ID] = rel
		rels.list = append(rels.list, rel)
	}
	return rels, nil
}

// ByID looks up a relationship by its r:id value.
func (r *Relationships) ByID(id string) (Relationship, bool) {
	rel, ok := r.byID[id]
	return rel, ok
}

// ByType returns every relationship of the given type, in document order.
func (r *Relationships) ByType(typ string) []Relationship {
	var out []Relationship
	for _, rel := range r.list {
		if rel.Type == typ {
			out = append(out, rel)
		}
	}
	return out
}

// All returns every relationship in document order.
func (r *Relationships) All() []Relationship {
	out := make([]Relationship, len(r.list))
	copy(out, r.list)
	return out
}

// TargetPath resolves the target of the relationship with the given id to a
// package part name. External targets resolve to their target string
// unchanged.
func (r *Relationships) TargetPath(id string) (string, bool) {
	rel, ok := r.byID[id]
	if !ok {
		return "", false
	}
	if rel.External {
		return rel.Target, true
	}
	return ResolveTarget(r.source, rel.Target), true
}

// ResolveTarget resolves a relationship target against its source part.
// Targets are relative to the source's directory unless they begin with "/";
// "." and ".." segments are collapsed.
func ResolveTarget(source, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target)[1:]
	}
	dir := path.Dir(strings.TrimPrefix(source, "/"))
	if dir == "." {
		return path.Clean(target)
	}
	return path.Clean(dir + "/" + target)
}
