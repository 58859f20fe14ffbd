package uddf

// TableGeneration is the <tablegeneration> section. Its direct link is one
// of the resolved reference sites.
type TableGeneration struct {
	Link            *Link            `xml:"link,omitempty"`
	CalculateTables []CalculateTable `xml:"calculatetable,omitempty"`
}

// CalculateTable asks for a dive table to be generated.
type CalculateTable struct {
	ID         *string     `xml:"id,attr,omitempty"`
	Title      string      `xml:"title,omitempty"`
	DiveTable  DiveTable   `xml:"divetable,omitempty"`
	Links      []Link      `xml:"link,omitempty"`
	TableScope *TableScope `xml:"tablescope,omitempty"`
}

// TableScope bounds the depths and times a generated table covers.
type TableScope struct {
	Altitude          *Meters  `xml:"altitude,omitempty"`
	DiveDepthBegin    *Meters  `xml:"divedepthbegin,omitempty"`
	DiveDepthEnd      *Meters  `xml:"divedepthend,omitempty"`
	DiveDepthStep     *Meters  `xml:"divedepthstep,omitempty"`
	BottomTimeMinimum *Seconds `xml:"bottomtimeminimum,omitempty"`
	BottomTimeMaximum *Seconds `xml:"bottomtimemaximum,omitempty"`
	BottomTimeStep    *Seconds `xml:"bottomtimestepsize,omitempty"`
}
