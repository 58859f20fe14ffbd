package uddf

// Maker is the <maker> section listing equipment manufacturers.
type Maker struct {
	Manufacturers []Manufacturer `xml:"manufacturer,omitempty"`
}

// Manufacturer is a maker of equipment or software. Under <maker> its id is
// referenceable; inside <generator> it is descriptive only.
type Manufacturer struct {
	ID        *string  `xml:"id,attr,omitempty"`
	Name      string   `xml:"name,omitempty"`
	Aliasname []string `xml:"aliasname,omitempty"`
	Address   *Address `xml:"address,omitempty"`
	Contact   *Contact `xml:"contact,omitempty"`
}

// Business is the <business> section listing shops.
type Business struct {
	Shops []Shop `xml:"shop,omitempty"`
}

// Shop is a dive shop or other business.
type Shop struct {
	ID        *string  `xml:"id,attr,omitempty"`
	Name      string   `xml:"name,omitempty"`
	Aliasname []string `xml:"aliasname,omitempty"`
	Address   *Address `xml:"address,omitempty"`
	Contact   *Contact `xml:"contact,omitempty"`
	Notes     *Notes   `xml:"notes,omitempty"`
}
