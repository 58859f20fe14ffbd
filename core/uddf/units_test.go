package uddf

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestUnitConversions(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"meters to feet", Meters(30).Feet(), 98.4251968},
		{"feet to meters", float64(MetersFromFeet(100)), 30.48},
		{"pascal to bar", Pascal(20000000).Bar(), 200},
		{"bar to pascal", float64(PascalFromBar(1.5)), 150000},
		{"pascal to psi", Pascal(101325).PSI(), 14.6959488},
		{"kelvin to celsius", Kelvin(293.15).Celsius(), 20},
		{"kelvin to fahrenheit", Kelvin(273.15).Fahrenheit(), 32},
		{"celsius to kelvin", float64(KelvinFromCelsius(-1.5)), 271.65},
		{"seconds to minutes", Seconds(2700).Minutes(), 45},
		{"cubic meters to liters", CubicMeters(0.012).Liters(), 12},
		{"liters to cubic meters", float64(CubicMetersFromLiters(11.1)), 0.0111},
	}
	for _, tt := range tests {
		if !approx(tt.got, tt.want) {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	if d := Seconds(90.5).Duration(); d != 90*time.Second+500*time.Millisecond {
		t.Errorf("Duration = %v", d)
	}
}
