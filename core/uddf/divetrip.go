package uddf

// DiveTrip is the <divetrip> section.
type DiveTrip struct {
	Trips []Trip `xml:"trip,omitempty"`
}

// Trip is a referenceable dive trip made of one or more parts.
type Trip struct {
	ID        *string    `xml:"id,attr,omitempty"`
	Name      string     `xml:"name,omitempty"`
	TripParts []TripPart `xml:"trippart,omitempty"`
}

// TripPart is one leg of a trip, e.g. a stay at a resort or a liveaboard.
type TripPart struct {
	Type       string      `xml:"type,attr,omitempty"`
	Name       string      `xml:"name,omitempty"`
	DateOfTrip *DateOfTrip `xml:"dateoftrip,omitempty"`
	Links      []Link      `xml:"link,omitempty"`
	Vessel     *Vessel     `xml:"vessel,omitempty"`
	Notes      *Notes      `xml:"notes,omitempty"`
}

// DateOfTrip bounds a trip part.
type DateOfTrip struct {
	StartDate *DateTime `xml:"startdate,attr,omitempty"`
	EndDate   *DateTime `xml:"enddate,attr,omitempty"`
}

// Vessel is the boat used on a trip part.
type Vessel struct {
	Name           string `xml:"name,omitempty"`
	MarineVHF      string `xml:"marinevhfchannel,omitempty"`
	ShipType       string `xml:"shiptype,omitempty"`
	ShipDimensions string `xml:"shipdimension,omitempty"`
}
