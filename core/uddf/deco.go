package uddf

// DecoModel is the <decomodel> section. Each model entry carries an id that
// profile data may refer to.
type DecoModel struct {
	Buehlmann []Buehlmann `xml:"buehlmann,omitempty"`
	VPM       []VPM       `xml:"vpm,omitempty"`
	RGBM      []RGBM      `xml:"rgbm,omitempty"`
}

// Buehlmann is a Bühlmann ZH-L model with optional gradient factors.
type Buehlmann struct {
	ID                 *string             `xml:"id,attr,omitempty"`
	Tissues            []TissueCompartment `xml:"tissue,omitempty"`
	GradientFactorHigh *float64            `xml:"gradientfactorhigh,omitempty"`
	GradientFactorLow  *float64            `xml:"gradientfactorlow,omitempty"`
}

// VPM is a varying permeability model.
type VPM struct {
	ID           *string             `xml:"id,attr,omitempty"`
	Conservatism *float64            `xml:"conservatism,omitempty"`
	Gamma        *float64            `xml:"gamma,omitempty"`
	Gc           *float64            `xml:"gc,omitempty"`
	Lambda       *float64            `xml:"lambda,omitempty"`
	R0           *float64            `xml:"r0,omitempty"`
	Tissues      []TissueCompartment `xml:"tissue,omitempty"`
}

// RGBM is a reduced gradient bubble model.
type RGBM struct {
	ID      *string             `xml:"id,attr,omitempty"`
	Tissues []TissueCompartment `xml:"tissue,omitempty"`
}

// TissueCompartment is one modeled tissue. All five attributes are
// compulsory; the pointers only exist so that a decoded compartment with a
// missing attribute can be reported instead of silently becoming zero.
type TissueCompartment struct {
	Gas      TissueGas `xml:"gas,attr,omitempty"`
	Number   *int      `xml:"number,attr,omitempty"`
	HalfLife *Seconds  `xml:"halflife,attr,omitempty"`
	A        *float64  `xml:"a,attr,omitempty"`
	B        *float64  `xml:"b,attr,omitempty"`
}

// NewTissueCompartment returns a fully specified compartment.
func NewTissueCompartment(gas TissueGas, number int, halfLife Seconds, a, b float64) TissueCompartment {
	return TissueCompartment{
		Gas:      gas,
		Number:   &number,
		HalfLife: &halfLife,
		A:        &a,
		B:        &b,
	}
}

// Missing returns the names of absent attributes in wire order.
func (t *TissueCompartment) Missing() []string {
	var missing []string
	if t.Gas == "" {
		missing = append(missing, "gas")
	}
	if t.Number == nil {
		missing = append(missing, "number")
	}
	if t.HalfLife == nil {
		missing = append(missing, "halflife")
	}
	if t.A == nil {
		missing = append(missing, "a")
	}
	if t.B == nil {
		missing = append(missing, "b")
	}
	return missing
}

// Complete reports whether all five attributes are present.
func (t *TissueCompartment) Complete() bool {
	return len(t.Missing()) == 0
}
