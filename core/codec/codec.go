// Package codec reads and writes UDDF documents.
//
// Decoding goes through encoding/xml using the struct tags of core/uddf as
// the attribute/element table. Entity expansion is disabled, so documents
// carrying a DTD with external entities are rejected rather than resolved.
package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"golang.org/x/net/html/charset"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/uddf"
)

const formatName = "UDDF"

// Decode parses a UDDF document. The root element must be <uddf> carrying a
// valid version attribute and a <generator> child. Every failure is a
// *errors.ParseError.
func Decode(data []byte) (*uddf.Document, error) {
	return DecodeReader(bytes.NewReader(data))
}

// DecodeReader is Decode over a reader.
func DecodeReader(r io.Reader) (*uddf.Document, error) {
	d := newDecoder(r)

	start, err := rootElement(d)
	if err != nil {
		return nil, err
	}
	if start.Name.Local != "uddf" {
		return nil, errors.NewParse(formatName, start.Name.Local,
			fmt.Sprintf("root element is <%s>, want <uddf>", start.Name.Local))
	}

	var doc uddf.Document
	if err := d.DecodeElement(&doc, &start); err != nil {
		return nil, syntaxError(d, err)
	}

	if doc.Version == "" {
		return nil, errors.NewParse(formatName, "uddf", "missing version attribute")
	}
	v, err := uddf.ParseVersion(doc.Version)
	if err != nil {
		return nil, &errors.ParseError{
			Format:  formatName,
			Path:    "uddf@version",
			Message: fmt.Sprintf("invalid version %q", doc.Version),
			Err:     err,
		}
	}
	if !v.Supported() {
		return nil, &errors.ParseError{
			Format:  formatName,
			Path:    "uddf@version",
			Message: fmt.Sprintf("version %s is not supported", v),
			Err:     errors.NewUnsupported("UDDF version", "only 3.x is supported"),
		}
	}
	if doc.Generator == nil {
		return nil, errors.NewParse(formatName, "uddf", "missing required element <generator>")
	}

	return &doc, nil
}

func newDecoder(r io.Reader) *xml.Decoder {
	d := xml.NewDecoder(r)
	d.Strict = true
	d.Entity = map[string]string{}
	d.CharsetReader = charset.NewReaderLabel
	return d
}

// rootElement advances d to the first start element.
func rootElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return xml.StartElement{}, errors.NewParse(formatName, "", "no root element")
		}
		if err != nil {
			return xml.StartElement{}, syntaxError(d, err)
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func syntaxError(d *xml.Decoder, err error) error {
	line, col := d.InputPos()
	return &errors.ParseError{
		Format:  formatName,
		Path:    fmt.Sprintf("line %d, column %d", line, col),
		Message: err.Error(),
		Err:     err,
	}
}

// Encode serializes doc with an XML declaration and two-space indentation.
// An empty namespace or version is filled in on a copy; doc itself is never
// modified.
func Encode(doc *uddf.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo is Encode writing to w.
func EncodeTo(w io.Writer, doc *uddf.Document) error {
	if doc == nil {
		return errors.Wrap(errors.ErrInvalidInput, "nil document")
	}
	if doc.Generator == nil {
		return errors.Wrap(errors.ErrInvalidInput, "document has no generator")
	}

	out := *doc
	// The namespace is written from the xmlns field; a decoded XMLName
	// would emit it a second time.
	out.XMLName = xml.Name{}
	if out.Namespace == "" {
		out.Namespace = uddf.Namespace
	}
	if out.Version == "" {
		out.Version = uddf.FormatVersion
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return errors.NewIO("write", "", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("encoding UDDF: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding UDDF: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return errors.NewIO("write", "", err)
	}
	return nil
}
