package validate

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/FocuswithJustin/uddf/core/resolve"
	"github.com/FocuswithJustin/uddf/core/uddf"
)

func ptr[T any](v T) *T { return &v }

func validDocument() *uddf.Document {
	doc := uddf.New(uddf.Generator{Name: "divelog", Version: ptr("1.4")})
	doc.Diver = &uddf.Diver{
		Owner: &uddf.Person{
			ID:       ptr("owner1"),
			Personal: &uddf.Personal{FirstName: ptr("Jacques"), LastName: ptr("Mayol")},
		},
	}
	doc.DiveSite = &uddf.DiveSite{Sites: []uddf.Site{{
		ID:        ptr("site1"),
		Name:      "Blue Hole",
		Geography: &uddf.Geography{Latitude: ptr(17.3159), Longitude: ptr(-87.5347)},
	}}}
	doc.GasDefinitions = &uddf.GasDefinitions{Mixes: []uddf.Mix{
		{ID: ptr("air"), O2: ptr(0.21), N2: ptr(0.79)},
	}}
	doc.ProfileData = &uddf.ProfileData{RepetitionGroups: []uddf.RepetitionGroup{{
		ID: ptr("rg1"),
		Dives: []uddf.Dive{{
			ID: ptr("dive1"),
			InformationBeforeDive: &uddf.InformationBeforeDive{
				Notes: &uddf.Notes{Links: []uddf.Link{uddf.NewLink("site1")}},
			},
			Samples: &uddf.Samples{Waypoints: []uddf.Waypoint{
				{Depth: ptr(uddf.Meters(0)), DiveTime: ptr(uddf.Seconds(0))},
				{Depth: ptr(uddf.Meters(18.5)), DiveTime: ptr(uddf.Seconds(600))},
			}},
			InformationAfterDive: &uddf.InformationAfterDive{
				GreatestDepth: ptr(uddf.Meters(18.5)),
				DiveDuration:  ptr(uddf.Seconds(2400)),
			},
		}},
	}}}
	return doc
}

func fields(issues []ValidationError) []string {
	out := make([]string, len(issues))
	for i, e := range issues {
		out[i] = e.Field
	}
	return out
}

func TestValidateValidDocument(t *testing.T) {
	res := Validate(validDocument(), DefaultOptions())
	if !res.IsValid() || res.HasWarnings() || res.IssueCount() != 0 {
		t.Errorf("expected clean result, got errors %v warnings %v", res.Errors, res.Warnings)
	}
}

func TestDefaultOptions(t *testing.T) {
	want := Options{ValidateRanges: true, ValidateReferences: true}
	if got := DefaultOptions(); got != want {
		t.Errorf("DefaultOptions() = %+v, want %+v", got, want)
	}
	if New(want).Options() != want {
		t.Error("Options() should return the configuration")
	}
}

func TestGasFractionSum(t *testing.T) {
	doc := validDocument()
	doc.GasDefinitions.Mixes[0] = uddf.Mix{ID: ptr("short"), O2: ptr(0.21), N2: ptr(0.70)}

	res := Validate(doc, DefaultOptions())
	if !res.IsValid() {
		t.Fatalf("sum mismatch is only a warning, got errors %v", res.Errors)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(res.Warnings), res.Warnings)
	}
	w := res.Warnings[0]
	if !strings.Contains(w.Message, "sum to 1.0") {
		t.Errorf("warning %q should mention sum to 1.0", w.Message)
	}
	if w.Severity != SeverityWarning || w.Field != "gasdefinitions.mix[0]" {
		t.Errorf("warning = %+v", w)
	}

	strict := DefaultOptions()
	strict.StrictMode = true
	res = Validate(doc, strict)
	if res.IsValid() {
		t.Error("strict mode should turn the sum warning into an error")
	}
	if res.HasWarnings() {
		t.Error("strict mode should leave no warnings")
	}
	if res.Errors[0].Severity != SeverityError {
		t.Errorf("escalated severity = %s", res.Errors[0].Severity)
	}
}

func TestGasFractionSumTolerance(t *testing.T) {
	tests := []struct {
		name     string
		mix      uddf.Mix
		warnings int
	}{
		{"exact", uddf.Mix{O2: ptr(0.32), N2: ptr(0.68)}, 0},
		{"within tolerance", uddf.Mix{O2: ptr(0.21), N2: ptr(0.785)}, 0},
		{"over", uddf.Mix{O2: ptr(0.5), N2: ptr(0.52)}, 1},
		{"argon and hydrogen count", uddf.Mix{O2: ptr(0.2), Ar: ptr(0.4), H2: ptr(0.4)}, 0},
		{"no fractions", uddf.Mix{Name: "air"}, 1},
		{"NaN fraction", uddf.Mix{O2: ptr(math.NaN()), N2: ptr(0.79)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := uddf.New(uddf.Generator{Name: "x"})
			doc.GasDefinitions = &uddf.GasDefinitions{Mixes: []uddf.Mix{tt.mix}}
			res := Validate(doc, DefaultOptions())
			if len(res.Warnings) != tt.warnings {
				t.Errorf("got warnings %v, want %d", res.Warnings, tt.warnings)
			}
		})
	}
}

func TestRangeChecks(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*uddf.Document)
		wantField string
		wantText  string
	}{
		{
			name:      "latitude",
			mutate:    func(d *uddf.Document) { d.DiveSite.Sites[0].Geography.Latitude = ptr(95.0) },
			wantField: "divesite.site[0].geography.latitude",
			wantText:  "Latitude",
		},
		{
			name:      "longitude",
			mutate:    func(d *uddf.Document) { d.DiveSite.Sites[0].Geography.Longitude = ptr(-180.5) },
			wantField: "divesite.site[0].geography.longitude",
			wantText:  "Longitude",
		},
		{
			name: "greatest depth",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].InformationAfterDive.GreatestDepth = ptr(uddf.Meters(-5))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].informationafterdive.greatestdepth",
			wantText:  "negative",
		},
		{
			name: "average depth",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].InformationAfterDive.AverageDepth = ptr(uddf.Meters(-1))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].informationafterdive.averagedepth",
			wantText:  "negative",
		},
		{
			name: "dive duration",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].InformationAfterDive.DiveDuration = ptr(uddf.Seconds(-60))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].informationafterdive.diveduration",
			wantText:  "negative",
		},
		{
			name: "waypoint dive time",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].Samples.Waypoints[1].DiveTime = ptr(uddf.Seconds(-10))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].samples.waypoint[1].divetime",
			wantText:  "negative",
		},
		{
			name: "waypoint depth",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].Samples.Waypoints[0].Depth = ptr(uddf.Meters(-0.5))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].samples.waypoint[0].depth",
			wantText:  "negative",
		},
		{
			name: "oxygen fraction",
			mutate: func(d *uddf.Document) {
				d.GasDefinitions.Mixes[0] = uddf.Mix{O2: ptr(1.2), N2: ptr(-0.2)}
			},
			wantField: "gasdefinitions.mix[0].o2",
			wantText:  "between 0 and 1",
		},
		{
			name:      "NaN latitude",
			mutate:    func(d *uddf.Document) { d.DiveSite.Sites[0].Geography.Latitude = ptr(math.NaN()) },
			wantField: "divesite.site[0].geography.latitude",
			wantText:  "Latitude",
		},
		{
			name:      "NaN longitude",
			mutate:    func(d *uddf.Document) { d.DiveSite.Sites[0].Geography.Longitude = ptr(math.NaN()) },
			wantField: "divesite.site[0].geography.longitude",
			wantText:  "Longitude",
		},
		{
			name: "NaN greatest depth",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].InformationAfterDive.GreatestDepth = ptr(uddf.Meters(math.NaN()))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].informationafterdive.greatestdepth",
			wantText:  "negative",
		},
		{
			name: "NaN waypoint depth",
			mutate: func(d *uddf.Document) {
				d.ProfileData.RepetitionGroups[0].Dives[0].Samples.Waypoints[1].Depth = ptr(uddf.Meters(math.NaN()))
			},
			wantField: "profiledata.repetitiongroup[0].dive[0].samples.waypoint[1].depth",
			wantText:  "negative",
		},
		{
			name: "NaN oxygen fraction",
			mutate: func(d *uddf.Document) {
				d.GasDefinitions.Mixes[0].O2 = ptr(math.NaN())
			},
			wantField: "gasdefinitions.mix[0].o2",
			wantText:  "Oxygen",
		},
		{
			name: "helium fraction",
			mutate: func(d *uddf.Document) {
				d.GasDefinitions.Mixes[0] = uddf.Mix{O2: ptr(0.5), He: ptr(1.5), N2: ptr(-1.0)}
			},
			wantField: "gasdefinitions.mix[0].he",
			wantText:  "Helium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			res := Validate(doc, DefaultOptions())
			if res.IsValid() {
				t.Fatal("expected validation errors")
			}
			var found bool
			for _, e := range res.Errors {
				if e.Field == tt.wantField && strings.Contains(e.Message, tt.wantText) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error at %s mentioning %q in %v", tt.wantField, tt.wantText, res.Errors)
			}

			opts := DefaultOptions()
			opts.ValidateRanges = false
			if res := Validate(doc, opts); !res.IsValid() {
				t.Errorf("disabling range checks should make the document valid, got %v", res.Errors)
			}
		})
	}
}

func TestStrictModeGeneratorName(t *testing.T) {
	doc := uddf.New(uddf.Generator{})

	res := Validate(doc, DefaultOptions())
	if !res.IsValid() {
		t.Errorf("missing generator name is a warning, got %v", res.Errors)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Field != "generator.name" {
		t.Errorf("warnings = %v", res.Warnings)
	}

	res = Validate(doc, Options{StrictMode: true})
	if res.IsValid() {
		t.Error("strict mode should make the document invalid")
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "generator.name" || res.HasWarnings() {
		t.Errorf("errors = %v warnings = %v", res.Errors, res.Warnings)
	}
}

func TestGeneratorChecks(t *testing.T) {
	doc := validDocument()
	doc.Generator.Version = ptr("")
	res := Validate(doc, DefaultOptions())
	if got := fields(res.Warnings); !reflect.DeepEqual(got, []string{"generator.version"}) {
		t.Errorf("warnings at %v", got)
	}

	doc.Generator.Version = ptr(" ")
	if res := Validate(doc, DefaultOptions()); res.HasWarnings() {
		t.Errorf("a whitespace version is not empty, got %v", res.Warnings)
	}

	doc.Generator = nil
	res = Validate(doc, DefaultOptions())
	if res.IsValid() || res.Errors[0].Field != "generator" {
		t.Errorf("missing generator should be an error, got %v", res.Errors)
	}
}

func TestEmptyIdentifiers(t *testing.T) {
	doc := validDocument()
	doc.Diver.Owner.ID = ptr("")
	doc.Diver.Buddies = []uddf.Person{{ID: ptr("")}, {}}
	doc.ProfileData.RepetitionGroups[0].ID = ptr("")
	doc.ProfileData.RepetitionGroups[0].Dives[0].ID = ptr("")
	doc.GasDefinitions.Mixes[0].ID = ptr("")
	doc.DiveSite.Sites[0].ID = nil
	doc.ProfileData.RepetitionGroups[0].Dives[0].InformationBeforeDive = nil

	opts := DefaultOptions()
	opts.ValidateReferences = false
	res := Validate(doc, opts)

	want := []string{
		"diver.owner.id",
		"diver.buddy[0].id",
		"profiledata.repetitiongroup[0].id",
		"profiledata.repetitiongroup[0].dive[0].id",
		"gasdefinitions.mix[0].id",
	}
	if got := fields(res.Errors); !reflect.DeepEqual(got, want) {
		t.Errorf("errors at %v\nwant %v", got, want)
	}

	opts.StrictMode = true
	if got := len(Validate(doc, opts).Errors); got != len(want) {
		t.Errorf("strict mode changed error count to %d", got)
	}
}

func TestEmptyPersonalNames(t *testing.T) {
	doc := validDocument()
	doc.Diver.Owner.Personal = &uddf.Personal{FirstName: ptr(""), LastName: ptr("")}
	doc.Diver.Buddies = []uddf.Person{
		{Personal: &uddf.Personal{LastName: ptr("")}},
		{Personal: &uddf.Personal{FirstName: ptr(" "), LastName: ptr("\t")}},
	}

	res := Validate(doc, DefaultOptions())
	want := []string{
		"diver.owner.personal.firstname",
		"diver.owner.personal.lastname",
		"diver.buddy[0].personal.lastname",
	}
	if got := fields(res.Warnings); !reflect.DeepEqual(got, want) {
		t.Errorf("warnings at %v", got)
	}
	if !res.IsValid() {
		t.Errorf("empty names are warnings, got %v", res.Errors)
	}
}

func TestTissueCompartments(t *testing.T) {
	doc := validDocument()
	doc.DecoModel = &uddf.DecoModel{Buehlmann: []uddf.Buehlmann{{
		ID: ptr("zhl16"),
		Tissues: []uddf.TissueCompartment{
			uddf.NewTissueCompartment(uddf.TissueGasN2, 1, 300, 1.1696, 0.5578),
			{Gas: uddf.TissueGasHe, Number: ptr(1)},
		},
	}}}

	res := Validate(doc, DefaultOptions())
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Field != "decomodel.buehlmann[0].tissue[1]" || !strings.Contains(e.Message, "halflife, a, b") {
		t.Errorf("error = %+v", e)
	}
}

func TestReferenceValidation(t *testing.T) {
	doc := validDocument()
	doc.ProfileData.RepetitionGroups[0].Dives[0].InformationBeforeDive.Notes.Links = []uddf.Link{
		uddf.NewLink("nonexistent"),
	}

	res := Validate(doc, DefaultOptions())
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v", res.Errors)
	}
	e := res.Errors[0]
	if e.Field != "profiledata.repetitiongroup[0].dive[0].informationbeforedive.notes.link[0]" {
		t.Errorf("field = %s", e.Field)
	}
	if e.Context["ref"] != "nonexistent" {
		t.Errorf("context = %v", e.Context)
	}

	opts := DefaultOptions()
	opts.ValidateReferences = false
	if res := Validate(doc, opts); !res.IsValid() {
		t.Errorf("reference checks disabled, got %v", res.Errors)
	}
}

func TestReferenceValidationDuplicateID(t *testing.T) {
	doc := validDocument()
	doc.Diver.Buddies = []uddf.Person{{ID: ptr("owner1")}}

	res := Validate(doc, DefaultOptions())
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v", res.Errors)
	}
	if res.Errors[0].Field != "references" || res.Errors[0].Message != "Failed to resolve references" {
		t.Errorf("error = %+v", res.Errors[0])
	}
	if strings.Contains(res.Errors[0].Error(), "owner1") {
		t.Error("resolver failure detail should not leak into the validation error")
	}
}

func TestReferenceValidationResolverFailure(t *testing.T) {
	orig := resolveFn
	defer func() { resolveFn = orig }()
	resolveFn = func(*uddf.Document) (*resolve.Result, error) {
		return nil, fmt.Errorf("boom")
	}

	res := Validate(validDocument(), DefaultOptions())
	if res.IsValid() || res.Errors[0].Field != "references" {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestValidateNilDocument(t *testing.T) {
	res := Validate(nil, DefaultOptions())
	if res.IsValid() || res.Errors[0].Field != "document" {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestValidateDoesNotMutate(t *testing.T) {
	doc := validDocument()
	doc.GasDefinitions.Mixes[0].N2 = ptr(0.5)
	snapshot := validDocument()
	snapshot.GasDefinitions.Mixes[0].N2 = ptr(0.5)

	strict := Options{ValidateRanges: true, ValidateReferences: true, StrictMode: true}
	_ = Validate(doc, strict)
	if !reflect.DeepEqual(doc, snapshot) {
		t.Error("Validate modified the document")
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Field: "generator.name", Message: "Generator name is missing"}
	if got := e.Error(); got != "generator.name: Generator name is missing" {
		t.Errorf("Error() = %q", got)
	}
	if got := (ValidationError{Message: "x"}).Error(); got != "x" {
		t.Errorf("Error() = %q", got)
	}
}
