package codec

import (
	"strings"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/xml"
)

// ProbeResult summarizes a document without decoding it into the typed
// model. It works on files Decode would reject.
type ProbeResult struct {
	Root          string `json:"root"`
	Namespace     string `json:"namespace,omitempty"`
	Version       string `json:"version,omitempty"`
	GeneratorName string `json:"generator,omitempty"`
	Dives         int    `json:"dives"`
	Mixes         int    `json:"mixes"`
	Sites         int    `json:"sites"`
}

// IsUDDF reports whether the root element is <uddf>.
func (p *ProbeResult) IsUDDF() bool {
	return p.Root == "uddf"
}

// Probe parses data as generic XML and reports the root element, namespace,
// version, generator name and element counts. xz input is decompressed.
func Probe(data []byte) (*ProbeResult, error) {
	data, err := Decompress(data)
	if err != nil {
		return nil, err
	}

	doc, err := xml.Parse(data)
	if err != nil {
		return nil, &errors.ParseError{Format: "XML", Message: err.Error(), Err: err}
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.NewParse("XML", "", "no root element")
	}

	result := &ProbeResult{
		Root:      root.Name(),
		Namespace: root.Namespace(),
		Version:   root.Attr("version"),
	}
	if !result.IsUDDF() {
		return result, nil
	}

	if name, err := doc.XPathFirst("/uddf/generator/name"); err == nil && name != nil {
		result.GeneratorName = strings.TrimSpace(name.Text())
	}
	counts := []struct {
		expr string
		dst  *int
	}{
		{"/uddf/profiledata/repetitiongroup/dive", &result.Dives},
		{"/uddf/gasdefinitions/mix", &result.Mixes},
		{"/uddf/divesite/site", &result.Sites},
	}
	for _, c := range counts {
		n, err := doc.Count(c.expr)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}
	return result, nil
}
