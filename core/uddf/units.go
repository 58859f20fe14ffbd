package uddf

import "time"

// Unit wrappers hold the SI value used on the wire. The conversion helpers
// are for display and input; the stored value never changes unit.

// Meters is a depth, altitude or distance in meters.
type Meters float64

// Feet returns the value in feet.
func (m Meters) Feet() float64 { return float64(m) / 0.3048 }

// MetersFromFeet converts feet to Meters.
func MetersFromFeet(ft float64) Meters { return Meters(ft * 0.3048) }

// Pascal is a pressure in pascals.
type Pascal float64

// Bar returns the value in bar.
func (p Pascal) Bar() float64 { return float64(p) / 1e5 }

// PSI returns the value in pounds per square inch.
func (p Pascal) PSI() float64 { return float64(p) / 6894.757293168 }

// PascalFromBar converts bar to Pascal.
func PascalFromBar(bar float64) Pascal { return Pascal(bar * 1e5) }

// Kelvin is a temperature in kelvin.
type Kelvin float64

// Celsius returns the value in degrees Celsius.
func (k Kelvin) Celsius() float64 { return float64(k) - 273.15 }

// Fahrenheit returns the value in degrees Fahrenheit.
func (k Kelvin) Fahrenheit() float64 { return k.Celsius()*9/5 + 32 }

// KelvinFromCelsius converts degrees Celsius to Kelvin.
func KelvinFromCelsius(c float64) Kelvin { return Kelvin(c + 273.15) }

// Seconds is a duration in seconds.
type Seconds float64

// Minutes returns the value in minutes.
func (s Seconds) Minutes() float64 { return float64(s) / 60 }

// Duration converts to a time.Duration, truncating below one nanosecond.
func (s Seconds) Duration() time.Duration { return time.Duration(float64(s) * float64(time.Second)) }

// CubicMeters is a volume in cubic meters.
type CubicMeters float64

// Liters returns the value in liters.
func (v CubicMeters) Liters() float64 { return float64(v) * 1000 }

// CubicMetersFromLiters converts liters to CubicMeters.
func CubicMetersFromLiters(l float64) CubicMeters { return CubicMeters(l / 1000) }
