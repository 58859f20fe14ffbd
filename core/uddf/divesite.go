package uddf

// DiveSite is the <divesite> section.
type DiveSite struct {
	DiveBases []DiveBase `xml:"divebase,omitempty"`
	Sites     []Site     `xml:"site,omitempty"`
}

// DiveBase is a diving center. Its id is not registered for resolution.
type DiveBase struct {
	ID      *string  `xml:"id,attr,omitempty"`
	Name    string   `xml:"name,omitempty"`
	Address *Address `xml:"address,omitempty"`
	Contact *Contact `xml:"contact,omitempty"`
	Links   []Link   `xml:"link,omitempty"`
}

// Site is a single dive site.
type Site struct {
	ID          *string    `xml:"id,attr,omitempty"`
	Name        string     `xml:"name,omitempty"`
	Aliasname   []string   `xml:"aliasname,omitempty"`
	Environment string     `xml:"environment,omitempty"`
	Geography   *Geography `xml:"geography,omitempty"`
	SiteData    *SiteData  `xml:"sitedata,omitempty"`
	Notes       *Notes     `xml:"notes,omitempty"`
}

// Geography locates a site.
type Geography struct {
	Location  string   `xml:"location,omitempty"`
	Address   *Address `xml:"address,omitempty"`
	Latitude  *float64 `xml:"latitude,omitempty"`
	Longitude *float64 `xml:"longitude,omitempty"`
	Altitude  *Meters  `xml:"altitude,omitempty"`
	TimeZone  *float64 `xml:"timezone,omitempty"`
}

// SiteData describes the underwater conditions of a site.
type SiteData struct {
	MaximumDepth *Meters  `xml:"maximumdepth,omitempty"`
	MinimumDepth *Meters  `xml:"minimumdepth,omitempty"`
	Density      *float64 `xml:"density,omitempty"`
	Salinity     Salinity `xml:"salinity,omitempty"`
	Bottom       string   `xml:"bottom,omitempty"`
}
