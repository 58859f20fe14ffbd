package uddf

// GasDefinitions is the <gasdefinitions> section.
type GasDefinitions struct {
	Mixes []Mix `xml:"mix,omitempty"`
}

// Mix is a breathing gas. Fractions are in [0,1]; absent fractions count as
// zero.
type Mix struct {
	ID                    *string  `xml:"id,attr,omitempty"`
	Name                  string   `xml:"name,omitempty"`
	O2                    *float64 `xml:"o2,omitempty"`
	N2                    *float64 `xml:"n2,omitempty"`
	He                    *float64 `xml:"he,omitempty"`
	Ar                    *float64 `xml:"ar,omitempty"`
	H2                    *float64 `xml:"h2,omitempty"`
	PricePerLitre         *float64 `xml:"priceperlitre,omitempty"`
	MaximumPO2            *Pascal  `xml:"maximumpo2,omitempty"`
	MaximumOperationDepth *Meters  `xml:"maximumoperationdepth,omitempty"`
}

// FractionSum returns o2+n2+he+ar+h2 with absent fractions as zero.
func (m *Mix) FractionSum() float64 {
	var sum float64
	for _, f := range []*float64{m.O2, m.N2, m.He, m.Ar, m.H2} {
		if f != nil {
			sum += *f
		}
	}
	return sum
}
