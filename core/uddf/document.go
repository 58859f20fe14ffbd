package uddf

import "encoding/xml"

// Namespace is the XML namespace of UDDF 3.2 documents.
const Namespace = "http://www.streit.cc/uddf/3.2/"

// Document is the <uddf> root element.
//
// Struct tags are the field-kind table consumed by encoding/xml: ",attr"
// marks an attribute, anything else is a child element. Field order is the
// order the format fixes for the root's children and is the order the
// encoder writes them in; decoding accepts any order.
type Document struct {
	XMLName   xml.Name `xml:"uddf"`
	Version   string   `xml:"version,attr"`
	Namespace string   `xml:"xmlns,attr,omitempty"`

	Generator           *Generator           `xml:"generator"`
	MediaData           *MediaData           `xml:"mediadata,omitempty"`
	Maker               *Maker               `xml:"maker,omitempty"`
	Business            *Business            `xml:"business,omitempty"`
	Diver               *Diver               `xml:"diver,omitempty"`
	DiveSite            *DiveSite            `xml:"divesite,omitempty"`
	GasDefinitions      *GasDefinitions      `xml:"gasdefinitions,omitempty"`
	DecoModel           *DecoModel           `xml:"decomodel,omitempty"`
	ProfileData         *ProfileData         `xml:"profiledata,omitempty"`
	TableGeneration     *TableGeneration     `xml:"tablegeneration,omitempty"`
	DiveTrip            *DiveTrip            `xml:"divetrip,omitempty"`
	DiveComputerControl *DiveComputerControl `xml:"divecomputercontrol,omitempty"`
}

// New returns an empty document for the current format version.
func New(generator Generator) *Document {
	return &Document{
		Version:   FormatVersion,
		Namespace: Namespace,
		Generator: &generator,
	}
}

// DiveCount returns the number of dives across all repetition groups.
func (d *Document) DiveCount() int {
	if d.ProfileData == nil {
		return 0
	}
	n := 0
	for _, group := range d.ProfileData.RepetitionGroups {
		n += len(group.Dives)
	}
	return n
}

// Generator describes the program that wrote the document.
type Generator struct {
	Name         string        `xml:"name,omitempty"`
	Type         GeneratorType `xml:"type,omitempty"`
	Manufacturer *Manufacturer `xml:"manufacturer,omitempty"`
	Version      *string       `xml:"version,omitempty"`
	DateTime     *DateTime     `xml:"datetime,omitempty"`
}

// Link is an IDREF-style reference to another element of the same document.
type Link struct {
	Ref *string `xml:"ref,attr,omitempty"`
}

// RefString returns the reference or "" when absent.
func (l Link) RefString() string {
	if l.Ref == nil {
		return ""
	}
	return *l.Ref
}

// NewLink returns a link to id.
func NewLink(id string) Link {
	return Link{Ref: Ptr(id)}
}

// Notes is free text with optional links to other elements.
type Notes struct {
	Paras []string `xml:"para,omitempty"`
	Links []Link   `xml:"link,omitempty"`
}

// Address is a postal address.
type Address struct {
	Street     string `xml:"street,omitempty"`
	City       string `xml:"city,omitempty"`
	PostalCode string `xml:"postcode,omitempty"`
	Country    string `xml:"country,omitempty"`
	Province   string `xml:"province,omitempty"`
}

// Contact holds communication details.
type Contact struct {
	Language string   `xml:"language,omitempty"`
	Phone    []string `xml:"phone,omitempty"`
	Mobile   []string `xml:"mobilephone,omitempty"`
	Fax      []string `xml:"fax,omitempty"`
	Email    []string `xml:"email,omitempty"`
	Homepage []string `xml:"homepage,omitempty"`
}

// Ptr returns a pointer to v. It is a convenience for optional fields such
// as identifiers and gas fractions.
func Ptr[T any](v T) *T {
	return &v
}

// StringValue dereferences s, returning "" for nil.
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
