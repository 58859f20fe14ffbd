package uddf

// Diver is the <diver> section: the logbook owner and their buddies.
type Diver struct {
	Owner   *Person  `xml:"owner,omitempty"`
	Buddies []Person `xml:"buddy,omitempty"`
}

// Person is an <owner> or <buddy> element.
type Person struct {
	ID        *string    `xml:"id,attr,omitempty"`
	Personal  *Personal  `xml:"personal,omitempty"`
	Address   *Address   `xml:"address,omitempty"`
	Contact   *Contact   `xml:"contact,omitempty"`
	Equipment *Equipment `xml:"equipment,omitempty"`
	Medical   *Medical   `xml:"medical,omitempty"`
	Notes     *Notes     `xml:"notes,omitempty"`
}

// Personal holds a person's identifying data.
type Personal struct {
	FirstName     *string   `xml:"firstname,omitempty"`
	MiddleName    *string   `xml:"middlename,omitempty"`
	LastName      *string   `xml:"lastname,omitempty"`
	Honorific     string    `xml:"honorific,omitempty"`
	Sex           Sex       `xml:"sex,omitempty"`
	BirthDate     *DateTime `xml:"birthdate>datetime,omitempty"`
	Passport      string    `xml:"passport,omitempty"`
	BloodGroup    string    `xml:"bloodgroup,omitempty"`
	Height        *Meters   `xml:"height,omitempty"`
	Weight        *float64  `xml:"weight,omitempty"`
	Smoking       Smoking   `xml:"smoking,omitempty"`
	Membership    []string  `xml:"membership>organisation,omitempty"`
	NumberOfDives *int      `xml:"numberofdives>count,omitempty"`
}

// Medical holds medical examination results.
type Medical struct {
	Examinations []Examination `xml:"examination,omitempty"`
}

// Examination is a single medical examination.
type Examination struct {
	DateTime *DateTime `xml:"datetime,omitempty"`
	Doctor   string    `xml:"doctor>personal>lastname,omitempty"`
	Result   string    `xml:"examinationresult,omitempty"`
	Notes    *Notes    `xml:"notes,omitempty"`
}

// Equipment lists a person's gear. Pieces carry ids in the format but are
// not part of the cross-reference registry.
type Equipment struct {
	Suits         []Suit          `xml:"suit,omitempty"`
	Tanks         []Tank          `xml:"tank,omitempty"`
	DiveComputers []EquipmentItem `xml:"divecomputer,omitempty"`
	Regulators    []EquipmentItem `xml:"regulator,omitempty"`
	Configuration []EquipmentSet  `xml:"equipmentconfiguration,omitempty"`
}

// EquipmentItem carries the attributes every piece of equipment shares.
type EquipmentItem struct {
	ID           *string `xml:"id,attr,omitempty"`
	Name         string  `xml:"name,omitempty"`
	Manufacturer *Link   `xml:"manufacturer>link,omitempty"`
	Model        string  `xml:"model,omitempty"`
	SerialNumber string  `xml:"serialnumber,omitempty"`
}

// Suit is an exposure suit.
type Suit struct {
	EquipmentItem
	SuitType SuitType `xml:"suittype,omitempty"`
}

// Tank is a gas cylinder.
type Tank struct {
	EquipmentItem
	TankMaterial TankMaterial `xml:"tankmaterial,omitempty"`
	TankVolume   *CubicMeters `xml:"tankvolume,omitempty"`
}

// EquipmentSet groups equipment by reference.
type EquipmentSet struct {
	ID    *string `xml:"id,attr,omitempty"`
	Name  string  `xml:"name,omitempty"`
	Links []Link  `xml:"link,omitempty"`
}
