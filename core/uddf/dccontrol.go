package uddf

// DiveComputerControl is the <divecomputercontrol> section: raw dumps and
// data exchanged with dive computers.
type DiveComputerControl struct {
	Dumps     []DiveComputerDump `xml:"divecomputerdump,omitempty"`
	GetDCData *GetDCData         `xml:"getdcdata,omitempty"`
}

// DiveComputerDump is a base64 memory image read from a dive computer.
type DiveComputerDump struct {
	Link     *Link     `xml:"link,omitempty"`
	DateTime *DateTime `xml:"datetime,omitempty"`
	DCDump   Binary    `xml:"dcdump,omitempty"`
}

// GetDCData selects what to download from a dive computer.
type GetDCData struct {
	GetDCAllData   *struct{} `xml:"getdcalldata,omitempty"`
	GetDCGenerator *struct{} `xml:"getdcgeneratordata,omitempty"`
	GetDCOwner     *struct{} `xml:"getdcownerdata,omitempty"`
	GetDCProfile   *struct{} `xml:"getdcprofiledata,omitempty"`
}
