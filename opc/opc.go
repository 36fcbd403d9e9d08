// Package opc provides access to the Open Packaging Conventions container an
// OOXML spreadsheet lives in: a ZIP archive of parts addressed by
// case-insensitive names, with relationship parts binding them together.
package opc

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// ErrPartNotFound is returned when a named part is absent from the package.
var ErrPartNotFound = errors.New("opc: part not found")

// ErrInvalidArchive is returned when the input is not a readable ZIP archive.
var ErrInvalidArchive = errors.New("opc: invalid archive")

// Container is a read-only view of an OPC package. Part lookup is
// case-insensitive, as OPC part names are.
type Container struct {
	byName map[string]*zip.File // folded name -> entry
	names  []string             // original names, archive order
	closer io.Closer

	folder cases.Caser
}

// Open opens the package at the given path.
func Open(filename string) (*Container, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	c, err := NewContainer(f, fi.Size())
	if err != nil {
		f.Close()
		return nil, err
	}
	c.closer = f
	return c, nil
}

// OpenReader opens a package held in memory.
func OpenReader(data []byte) (*Container, error) {
	return NewContainer(bytes.NewReader(data), int64(len(data)))
}

// NewContainer opens a package from a random-access reader.
func NewContainer(r io.ReaderAt, size int64) (*Container, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArchive, err)
	}

	c := &Container{
		byName: make(map[string]*zip.File, len(zr.File)),
		folder: cases.Fold(),
	}
	for _, f := range zr.File {
		name := strings.TrimPrefix(f.Name, "/")
		c.byName[c.folder.String(name)] = f
		c.names = append(c.names, name)
	}
	return c, nil
}

// Close releases the underlying file, if the container owns one.
func (c *Container) Close() error {
	if c.closer != nil {
		err := c.closer.Close()
		c.closer = nil
		return err
	}
	return nil
}

// Has reports whether a part with the given name exists.
func (c *Container) Has(name string) bool {
	_, ok := c.byName[c.folder.String(strings.TrimPrefix(name, "/"))]
	return ok
}

// Part returns the full content of the named part. The name is matched
// case-insensitively; a missing part yields ErrPartNotFound.
func (c *Container) Part(name string) ([]byte, error) {
	f, ok := c.byName[c.folder.String(strings.TrimPrefix(name, "/"))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening part %s: %w", name, err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading part %s: %w", name, err)
	}
	return data, nil
}

// Names returns every part name in the package, sorted.
func (c *Container) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	sort.Strings(out)
	return out
}

// NamesUnder returns the part names beneath the given directory prefix,
// sorted. The prefix is matched case-insensitively and need not end in "/".
func (c *Container) NamesUnder(prefix string) []string {
	prefix = strings.TrimPrefix(prefix, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	folded := c.folder.String(prefix)

	var out []string
	for _, name := range c.names {
		if strings.HasPrefix(c.folder.String(name), folded) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
