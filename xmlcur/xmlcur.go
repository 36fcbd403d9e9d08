// Package xmlcur provides the pull-style XML cursor the raw part loaders are
// written against. A loader receives the cursor together with the start
// element it is responsible for, walks the element's children dispatching on
// local tag name, and must consume everything up to and including the
// matching end tag. Unknown children are skipped whole; an input that ends
// before the end tag is a hard error.
package xmlcur

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"
)

// Cursor wraps an xml.Decoder with the traversal helpers loaders use.
// Parts that declare a non-UTF-8 encoding are transcoded on the fly.
type Cursor struct {
	dec *xml.Decoder
}

// New creates a cursor over an XML part.
func New(r io.Reader) *Cursor {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	return &Cursor{dec: dec}
}

// Token returns the next XML token.
func (c *Cursor) Token() (xml.Token, error) {
	return c.dec.Token()
}

// Skip consumes the remainder of the current element's subtree, end tag
// included. Call it immediately after receiving a start element you do not
// want.
func (c *Cursor) Skip() error {
	return c.dec.Skip()
}

// Root advances to the document's root element and verifies its local name.
func (c *Cursor) Root(local string) (xml.StartElement, error) {
	for {
		tok, err := c.dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, fmt.Errorf("missing document element <%s>", local)
			}
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			if start.Name.Local != local {
				return xml.StartElement{}, fmt.Errorf("unexpected document element <%s>, want <%s>", start.Name.Local, local)
			}
			return start, nil
		}
	}
}

// Children walks the direct child elements of start, invoking fn for each.
// fn must consume the child's subtree before returning; Skip discards one it
// does not want. Children returns once the matching end tag is read, and
// fails if the input ends first.
func (c *Cursor) Children(start xml.StartElement, fn func(child xml.StartElement) error) error {
	for {
		tok, err := c.dec.Token()
		if err != nil {
			return endOfElement(start, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// Text consumes the subtree of start and returns its concatenated character
// data. Nested elements contribute their text too.
func (c *Cursor) Text(start xml.StartElement) (string, error) {
	var buf []byte
	depth := 0
	for {
		tok, err := c.dec.Token()
		if err != nil {
			return "", endOfElement(start, err)
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf = append(buf, t...)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 && t.Name.Local == start.Name.Local {
				return string(buf), nil
			}
			depth--
		}
	}
}

func endOfElement(start xml.StartElement, err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected end of file inside <%s>", start.Name.Local)
	}
	return fmt.Errorf("inside <%s>: %w", start.Name.Local, err)
}

// Attr returns the value of the attribute with the given local name, ignoring
// any namespace prefix. The second result reports presence.
func Attr(start xml.StartElement, local string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// AttrValue is Attr without the presence flag; an absent attribute yields "".
func AttrValue(start xml.StartElement, local string) string {
	v, _ := Attr(start, local)
	return v
}
