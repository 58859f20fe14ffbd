// Package xml provides generic XML tree access for UDDF files: well-formedness
// checks, XPath queries and pretty-printing.
//
// It works on the raw element tree and knows nothing about the UDDF model,
// which makes it usable on documents the typed decoder rejects.
//
// Security Notes:
//   - Well-formedness checks run encoding/xml with an empty entity map, so no
//     entity is expanded.
//   - Parse configures xmlquery's decoder the same way; external entities
//     are never fetched.
package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Document is a parsed XML tree.
type Document struct {
	root *xmlquery.Node
}

// Node is an element of a parsed tree.
type Node struct {
	node *xmlquery.Node
}

// SyntaxError is a well-formedness violation.
type SyntaxError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// WellFormedResult reports whether data is well-formed XML.
type WellFormedResult struct {
	Valid  bool          `json:"valid"`
	Errors []SyntaxError `json:"errors,omitempty"`
	// Root is the local name of the first element, if any.
	Root string `json:"root,omitempty"`
	// Namespace is the namespace URI of the first element.
	Namespace string `json:"namespace,omitempty"`
}

// FormatOptions controls pretty-printing.
type FormatOptions struct {
	Indent string // defaults to two spaces
}

// Parse parses data into a Document. Entity expansion is disabled and line
// numbers are recorded for every element.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.ParseWithOptions(bytes.NewReader(data), xmlquery.ParserOptions{
		Decoder: &xmlquery.DecoderOptions{
			Strict: true,
			Entity: map[string]string{},
		},
		WithLineNumbers: true,
	})
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}
	return &Document{root: root}, nil
}

// CheckWellFormed tokenizes data without building a tree and reports the
// first syntax error together with the root element name.
func CheckWellFormed(data []byte) WellFormedResult {
	result := WellFormedResult{Valid: true}

	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Entity = map[string]string{}

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			line, _ := decoder.InputPos()
			var syntax *xml.SyntaxError
			if errors.As(err, &syntax) {
				line = syntax.Line
			}
			result.Valid = false
			result.Errors = append(result.Errors, SyntaxError{Line: line, Message: err.Error()})
			break
		}
		if start, ok := tok.(xml.StartElement); ok && result.Root == "" {
			result.Root = start.Name.Local
			result.Namespace = start.Name.Space
		}
	}

	if result.Valid && result.Root == "" {
		result.Valid = false
		result.Errors = append(result.Errors, SyntaxError{Message: "no root element"})
	}
	return result
}

// Format pretty-prints data. Whitespace-only text is dropped and element
// content is re-indented; text content is kept verbatim.
func Format(data []byte, opts FormatOptions) ([]byte, error) {
	if opts.Indent == "" {
		opts.Indent = "  "
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	formatNode(&buf, doc.root, 0, opts.Indent)
	return buf.Bytes(), nil
}

func formatNode(w *bytes.Buffer, n *xmlquery.Node, depth int, indent string) {
	switch n.Type {
	case xmlquery.DocumentNode:
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			formatNode(w, child, depth, indent)
		}

	case xmlquery.DeclarationNode:
		w.WriteString("<?xml")
		for _, attr := range n.Attr {
			writeAttr(w, attr)
		}
		w.WriteString("?>\n")

	case xmlquery.ElementNode:
		writeIndent(w, depth, indent)
		w.WriteString("<")
		w.WriteString(qualifiedName(n.Prefix, n.Data))
		for _, attr := range n.Attr {
			writeAttr(w, attr)
		}

		if n.FirstChild == nil {
			w.WriteString("/>\n")
			return
		}

		nested := false
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == xmlquery.ElementNode || child.Type == xmlquery.CommentNode {
				nested = true
				break
			}
		}

		w.WriteString(">")
		if nested {
			w.WriteString("\n")
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			switch child.Type {
			case xmlquery.ElementNode, xmlquery.CommentNode:
				formatNode(w, child, depth+1, indent)
			case xmlquery.TextNode:
				if strings.TrimSpace(child.Data) == "" {
					continue
				}
				if nested {
					writeIndent(w, depth+1, indent)
					escapeText(w, strings.TrimSpace(child.Data))
					w.WriteString("\n")
				} else {
					escapeText(w, child.Data)
				}
			case xmlquery.CharDataNode:
				w.WriteString("<![CDATA[")
				w.WriteString(child.Data)
				w.WriteString("]]>")
			}
		}
		if nested {
			writeIndent(w, depth, indent)
		}
		w.WriteString("</")
		w.WriteString(qualifiedName(n.Prefix, n.Data))
		w.WriteString(">\n")

	case xmlquery.CommentNode:
		writeIndent(w, depth, indent)
		w.WriteString("<!--")
		w.WriteString(n.Data)
		w.WriteString("-->\n")
	}
}

func qualifiedName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

func writeAttr(w *bytes.Buffer, attr xmlquery.Attr) {
	w.WriteString(" ")
	w.WriteString(qualifiedName(attr.Name.Space, attr.Name.Local))
	w.WriteString(`="`)
	escapeText(w, attr.Value)
	w.WriteString(`"`)
}

func escapeText(w *bytes.Buffer, s string) {
	// EscapeText only fails on writer errors; bytes.Buffer never returns one.
	_ = xml.EscapeText(w, []byte(s))
}

func writeIndent(w *bytes.Buffer, depth int, indent string) {
	for i := 0; i < depth; i++ {
		w.WriteString(indent)
	}
}

// Root returns the document element.
func (d *Document) Root() *Node {
	if d.root == nil {
		return nil
	}
	for child := d.root.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			return &Node{node: child}
		}
	}
	return nil
}

// XPath returns every node matching expr. Unprefixed names match elements
// in any namespace, so "//dive" finds UDDF dives under the default
// namespace.
func (d *Document) XPath(expr string) ([]*Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	nodes := xmlquery.QuerySelectorAll(d.root, compiled)
	result := make([]*Node, len(nodes))
	for i, n := range nodes {
		result[i] = &Node{node: n}
	}
	return result, nil
}

// XPathFirst returns the first node matching expr, or nil.
func (d *Document) XPathFirst(expr string) (*Node, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}
	node := xmlquery.QuerySelector(d.root, compiled)
	if node == nil {
		return nil, nil
	}
	return &Node{node: node}, nil
}

// Evaluate evaluates an arbitrary XPath expression. The result is a
// float64, string or bool for scalar expressions and []*Node for node sets.
func (d *Document) Evaluate(expr string) (any, error) {
	compiled, err := xpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid xpath: %w", err)
	}

	switch v := compiled.Evaluate(xmlquery.CreateXPathNavigator(d.root)).(type) {
	case *xpath.NodeIterator:
		var nodes []*Node
		for v.MoveNext() {
			if nav, ok := v.Current().(*xmlquery.NodeNavigator); ok {
				nodes = append(nodes, &Node{node: nav.Current()})
			}
		}
		return nodes, nil
	default:
		return v, nil
	}
}

// Count returns the number of nodes matching expr.
func (d *Document) Count(expr string) (int, error) {
	v, err := d.Evaluate(fmt.Sprintf("count(%s)", expr))
	if err != nil {
		return 0, err
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("count(%s) returned %T", expr, v)
	}
	return int(f), nil
}

// Serialize writes the tree back as XML.
func (d *Document) Serialize() []byte {
	if d.root == nil {
		return nil
	}
	return []byte(d.root.OutputXML(true))
}

// Name returns the local element name.
func (n *Node) Name() string {
	if n.node == nil {
		return ""
	}
	return n.node.Data
}

// Namespace returns the namespace URI of the element.
func (n *Node) Namespace() string {
	if n.node == nil {
		return ""
	}
	return n.node.NamespaceURI
}

// Line returns the 1-based source line of the element, or 0.
func (n *Node) Line() int {
	if n.node == nil {
		return 0
	}
	return n.node.LineNumber
}

// Text returns the concatenated text content of the node and its
// descendants.
func (n *Node) Text() string {
	if n.node == nil {
		return ""
	}
	return n.node.InnerText()
}

// XML returns the node serialized with its own tag.
func (n *Node) XML() string {
	if n.node == nil {
		return ""
	}
	return n.node.OutputXML(true)
}

// Children returns the child elements.
func (n *Node) Children() []*Node {
	if n.node == nil {
		return nil
	}
	var children []*Node
	for child := n.node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == xmlquery.ElementNode {
			children = append(children, &Node{node: child})
		}
	}
	return children
}

// Attributes returns the attributes keyed by local name.
func (n *Node) Attributes() map[string]string {
	if n.node == nil {
		return nil
	}
	attrs := make(map[string]string, len(n.node.Attr))
	for _, attr := range n.node.Attr {
		attrs[attr.Name.Local] = attr.Value
	}
	return attrs
}

// Attr returns the value of an attribute, or "".
func (n *Node) Attr(name string) string {
	if n.node == nil {
		return ""
	}
	return n.node.SelectAttr(name)
}
