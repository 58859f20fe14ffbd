package uddf

// ProfileData is the <profiledata> section: recorded dives grouped into
// repetition groups.
type ProfileData struct {
	RepetitionGroups []RepetitionGroup `xml:"repetitiongroup,omitempty"`
}

// RepetitionGroup is a series of dives sharing residual nitrogen.
type RepetitionGroup struct {
	ID    *string `xml:"id,attr,omitempty"`
	Dives []Dive  `xml:"dive,omitempty"`
}

// Dive is a single recorded dive.
type Dive struct {
	ID                    *string                `xml:"id,attr,omitempty"`
	InformationBeforeDive *InformationBeforeDive `xml:"informationbeforedive,omitempty"`
	TankData              []TankData             `xml:"tankdata,omitempty"`
	Samples               *Samples               `xml:"samples,omitempty"`
	InformationAfterDive  *InformationAfterDive  `xml:"informationafterdive,omitempty"`
}

// InformationBeforeDive holds data known when the dive starts.
type InformationBeforeDive struct {
	Links                     []Link             `xml:"link,omitempty"`
	DateTime                  *DateTime          `xml:"datetime,omitempty"`
	DiveNumber                *int               `xml:"divenumber,omitempty"`
	InternalDiveNumber        *int               `xml:"internaldivenumber,omitempty"`
	AirTemperature            *Kelvin            `xml:"airtemperature,omitempty"`
	SurfaceIntervalBeforeDive *SurfaceInterval   `xml:"surfaceintervalbeforedive,omitempty"`
	Altitude                  *Meters            `xml:"altitude,omitempty"`
	Apparatus                 Apparatus          `xml:"apparatus,omitempty"`
	Platform                  Platform           `xml:"platform,omitempty"`
	Purpose                   Purpose            `xml:"purpose,omitempty"`
	StateOfRestBeforeDive     string             `xml:"stateofrestbeforedive,omitempty"`
	ExerciseBeforeDive        ExerciseBeforeDive `xml:"exercisebeforedive,omitempty"`
	SurfacePressure           *Pascal            `xml:"surfacepressure,omitempty"`
	TripMembership            string             `xml:"tripmembership,omitempty"`
	Notes                     *Notes             `xml:"notes,omitempty"`
}

// SurfaceInterval is either a passed time or infinity (first dive).
type SurfaceInterval struct {
	PassedTime *Seconds  `xml:"passedtime,omitempty"`
	Infinity   *struct{} `xml:"infinity,omitempty"`
}

// TankData records the use of one tank on a dive.
type TankData struct {
	ID                         *string      `xml:"id,attr,omitempty"`
	Links                      []Link       `xml:"link,omitempty"`
	Usage                      GasUsage     `xml:"usage,omitempty"`
	TankVolume                 *CubicMeters `xml:"tankvolume,omitempty"`
	TankPressureBegin          *Pascal      `xml:"tankpressurebegin,omitempty"`
	TankPressureEnd            *Pascal      `xml:"tankpressureend,omitempty"`
	BreathingConsumptionVolume *float64     `xml:"breathingconsumptionvolume,omitempty"`
}

// Samples is the recorded profile.
type Samples struct {
	Waypoints []Waypoint `xml:"waypoint,omitempty"`
}

// Waypoint is one sample of the recorded profile.
type Waypoint struct {
	Depth         *Meters        `xml:"depth,omitempty"`
	DiveTime      *Seconds       `xml:"divetime,omitempty"`
	Temperature   *Kelvin        `xml:"temperature,omitempty"`
	SwitchMix     *Link          `xml:"switchmix,omitempty"`
	DiveMode      *DiveModeMark  `xml:"divemode,omitempty"`
	DecoStops     []DecoStop     `xml:"decostop,omitempty"`
	TankPressures []TankPressure `xml:"tankpressure,omitempty"`
	CalculatedPO2 *Pascal        `xml:"calculatedpo2,omitempty"`
	Heading       *float64       `xml:"heading,omitempty"`
	Alarms        []string       `xml:"alarm,omitempty"`
}

// DiveModeMark switches the breathing mode from this waypoint on.
type DiveModeMark struct {
	Type DiveMode `xml:"type,attr,omitempty"`
}

// DecoStop is a required or recommended stop announced at a waypoint.
type DecoStop struct {
	Kind      DecoStopKind `xml:"kind,attr,omitempty"`
	DecoDepth *Meters      `xml:"decodepth,attr,omitempty"`
	Duration  *Seconds     `xml:"duration,attr,omitempty"`
}

// TankPressure is a pressure reading for the tank data named by Ref.
type TankPressure struct {
	Ref   *string `xml:"ref,attr,omitempty"`
	Value Pascal  `xml:",chardata"`
}

// InformationAfterDive holds data known once the dive is over.
type InformationAfterDive struct {
	LowestTemperature    *Kelvin              `xml:"lowesttemperature,omitempty"`
	GreatestDepth        *Meters              `xml:"greatestdepth,omitempty"`
	AverageDepth         *Meters              `xml:"averagedepth,omitempty"`
	DiveDuration         *Seconds             `xml:"diveduration,omitempty"`
	Visibility           *Meters              `xml:"visibility,omitempty"`
	Current              Current              `xml:"current,omitempty"`
	ThermalComfort       ThermalComfort       `xml:"thermalcomfort,omitempty"`
	Workload             Workload             `xml:"workload,omitempty"`
	EquipmentMalfunction EquipmentMalfunction `xml:"equipmentmalfunction,omitempty"`
	Program              Program              `xml:"program,omitempty"`
	DesaturationTime     *Seconds             `xml:"desaturationtime,omitempty"`
	NoFlightTime         *Seconds             `xml:"noflighttime,omitempty"`
	Problems             string               `xml:"problems,omitempty"`
	Ratings              []Rating             `xml:"rating,omitempty"`
	Notes                *Notes               `xml:"notes,omitempty"`
}

// Rating is a subjective score (1-10) given to a dive.
type Rating struct {
	DateTime    *DateTime `xml:"datetime,omitempty"`
	RatingValue int       `xml:"ratingvalue"`
}
