// Package validate applies structural, range and consistency checks to a
// decoded UDDF document.
//
// Findings are returned as data in a Result. Validate never returns a Go
// error and never modifies the document.
package validate

import (
	"fmt"
	"math"
	"strings"

	"github.com/FocuswithJustin/uddf/core/resolve"
	"github.com/FocuswithJustin/uddf/core/uddf"
)

// resolveFn is injectable for testing resolver failures.
var resolveFn = resolve.Resolve

// gasSumTolerance is the absolute tolerance of the gas fraction sum check.
const gasSumTolerance = 0.01

// Severity classifies a finding.
type Severity string

// Severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ValidationError is a single finding.
type ValidationError struct {
	Field    string            `json:"field"`
	Severity Severity          `json:"severity"`
	Message  string            `json:"message"`
	Context  map[string]string `json:"context,omitempty"`
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Options toggles groups of checks.
type Options struct {
	// ValidateRanges enables numeric and physical bound checks.
	ValidateRanges bool `json:"validate_ranges"`
	// ValidateReferences runs the resolver and reports dangling references.
	ValidateReferences bool `json:"validate_references"`
	// StrictMode records every warning as an error.
	StrictMode bool `json:"strict_mode"`
}

// DefaultOptions enables range and reference checks without strict mode.
func DefaultOptions() Options {
	return Options{
		ValidateRanges:     true,
		ValidateReferences: true,
	}
}

// Result collects the findings of one validation run.
type Result struct {
	Errors   []ValidationError `json:"errors"`
	Warnings []ValidationError `json:"warnings"`
}

// IsValid reports whether no errors were found. Warnings do not count.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether any warning was recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// IssueCount returns the number of errors plus warnings.
func (r *Result) IssueCount() int {
	return len(r.Errors) + len(r.Warnings)
}

// Validator runs the checks selected by its options. It holds no state
// between calls and may be shared by goroutines validating different
// documents.
type Validator struct {
	opts Options
}

// New creates a Validator.
func New(opts Options) *Validator {
	return &Validator{opts: opts}
}

// Options returns the validator configuration.
func (v *Validator) Options() Options {
	return v.opts
}

// Validate is shorthand for New(opts).Validate(doc).
func Validate(doc *uddf.Document, opts Options) *Result {
	return New(opts).Validate(doc)
}

// Validate checks doc and returns every finding.
func (v *Validator) Validate(doc *uddf.Document) *Result {
	r := &run{opts: v.opts, result: &Result{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}}

	if doc == nil {
		r.fail("document", "Document is required", nil)
		return r.result
	}

	r.generator(doc.Generator)
	if doc.Diver != nil {
		r.diver(doc.Diver)
	}
	if doc.ProfileData != nil {
		r.profileData(doc.ProfileData)
	}
	if doc.GasDefinitions != nil {
		r.gasDefinitions(doc.GasDefinitions)
	}
	if doc.DiveSite != nil {
		r.diveSites(doc.DiveSite)
	}
	if doc.DecoModel != nil {
		r.decoModel(doc.DecoModel)
	}
	if v.opts.ValidateReferences {
		r.references(doc)
	}

	return r.result
}

// run accumulates findings for one Validate call.
type run struct {
	opts   Options
	result *Result
}

func (r *run) fail(field, message string, ctx map[string]string) {
	r.result.Errors = append(r.result.Errors, ValidationError{
		Field:    field,
		Severity: SeverityError,
		Message:  message,
		Context:  ctx,
	})
}

// warn records a warning, or an error under strict mode.
func (r *run) warn(field, message string, ctx map[string]string) {
	if r.opts.StrictMode {
		r.fail(field, message, ctx)
		return
	}
	r.result.Warnings = append(r.result.Warnings, ValidationError{
		Field:    field,
		Severity: SeverityWarning,
		Message:  message,
		Context:  ctx,
	})
}

// identifier reports a present but empty identifier.
func (r *run) identifier(id *string, path string) {
	if id != nil && *id == "" {
		r.fail(path+".id", "Identifier cannot be empty", nil)
	}
}

func (r *run) generator(g *uddf.Generator) {
	if g == nil {
		r.fail("generator", "Generator is required", nil)
		return
	}
	if g.Name == "" {
		r.warn("generator.name", "Generator name is missing", nil)
	}
	if g.Version != nil && *g.Version == "" {
		r.warn("generator.version", "Generator version is empty", nil)
	}
}

func (r *run) diver(d *uddf.Diver) {
	if d.Owner != nil {
		r.person(d.Owner, "diver.owner")
	}
	for i := range d.Buddies {
		r.person(&d.Buddies[i], fmt.Sprintf("diver.buddy[%d]", i))
	}
}

func (r *run) person(p *uddf.Person, path string) {
	r.identifier(p.ID, path)
	if p.Personal == nil {
		return
	}
	if p.Personal.FirstName != nil && *p.Personal.FirstName == "" {
		r.warn(path+".personal.firstname", "First name is empty", nil)
	}
	if p.Personal.LastName != nil && *p.Personal.LastName == "" {
		r.warn(path+".personal.lastname", "Last name is empty", nil)
	}
}

func (r *run) profileData(pd *uddf.ProfileData) {
	for i := range pd.RepetitionGroups {
		g := &pd.RepetitionGroups[i]
		groupPath := fmt.Sprintf("profiledata.repetitiongroup[%d]", i)
		r.identifier(g.ID, groupPath)
		for j := range g.Dives {
			r.dive(&g.Dives[j], fmt.Sprintf("%s.dive[%d]", groupPath, j))
		}
	}
}

func (r *run) dive(d *uddf.Dive, path string) {
	r.identifier(d.ID, path)
	if !r.opts.ValidateRanges {
		return
	}

	if after := d.InformationAfterDive; after != nil {
		afterPath := path + ".informationafterdive"
		if after.GreatestDepth != nil && negative(float64(*after.GreatestDepth)) {
			r.fail(afterPath+".greatestdepth", "Greatest depth cannot be negative", nil)
		}
		if after.AverageDepth != nil && negative(float64(*after.AverageDepth)) {
			r.fail(afterPath+".averagedepth", "Average depth cannot be negative", nil)
		}
		if after.DiveDuration != nil && negative(float64(*after.DiveDuration)) {
			r.fail(afterPath+".diveduration", "Dive duration cannot be negative", nil)
		}
	}

	if d.Samples == nil {
		return
	}
	for k, wp := range d.Samples.Waypoints {
		wpPath := fmt.Sprintf("%s.samples.waypoint[%d]", path, k)
		if wp.DiveTime != nil && negative(float64(*wp.DiveTime)) {
			r.fail(wpPath+".divetime", "Dive time cannot be negative", nil)
		}
		if wp.Depth != nil && negative(float64(*wp.Depth)) {
			r.fail(wpPath+".depth", "Depth cannot be negative", nil)
		}
	}
}

func (r *run) gasDefinitions(gd *uddf.GasDefinitions) {
	for i := range gd.Mixes {
		m := &gd.Mixes[i]
		path := fmt.Sprintf("gasdefinitions.mix[%d]", i)
		r.identifier(m.ID, path)

		if r.opts.ValidateRanges {
			r.fraction(m.O2, path+".o2", "Oxygen")
			r.fraction(m.N2, path+".n2", "Nitrogen")
			r.fraction(m.He, path+".he", "Helium")
		}

		sum := m.FractionSum()
		if !(math.Abs(sum-1) <= gasSumTolerance) {
			r.warn(path, fmt.Sprintf("Gas fractions should sum to 1.0 (got %.3f)", sum),
				map[string]string{"sum": fmt.Sprintf("%.3f", sum)})
		}
	}
}

func (r *run) fraction(f *float64, field, gas string) {
	if f != nil && !within(*f, 0, 1) {
		r.fail(field, fmt.Sprintf("%s fraction must be between 0 and 1", gas), nil)
	}
}

// within reports whether x lies in [lo, hi]. NaN lies nowhere.
func within(x, lo, hi float64) bool {
	return x >= lo && x <= hi
}

func negative(x float64) bool {
	return !(x >= 0)
}

func (r *run) diveSites(ds *uddf.DiveSite) {
	for i := range ds.Sites {
		s := &ds.Sites[i]
		path := fmt.Sprintf("divesite.site[%d]", i)
		r.identifier(s.ID, path)

		if !r.opts.ValidateRanges || s.Geography == nil {
			continue
		}
		geo := s.Geography
		if geo.Latitude != nil && !within(*geo.Latitude, -90, 90) {
			r.fail(path+".geography.latitude", "Latitude must be between -90 and 90", nil)
		}
		if geo.Longitude != nil && !within(*geo.Longitude, -180, 180) {
			r.fail(path+".geography.longitude", "Longitude must be between -180 and 180", nil)
		}
	}
}

func (r *run) decoModel(dm *uddf.DecoModel) {
	for i, m := range dm.Buehlmann {
		r.tissues(m.Tissues, fmt.Sprintf("decomodel.buehlmann[%d]", i))
	}
	for i, m := range dm.VPM {
		r.tissues(m.Tissues, fmt.Sprintf("decomodel.vpm[%d]", i))
	}
	for i, m := range dm.RGBM {
		r.tissues(m.Tissues, fmt.Sprintf("decomodel.rgbm[%d]", i))
	}
}

func (r *run) tissues(tissues []uddf.TissueCompartment, path string) {
	for j := range tissues {
		missing := tissues[j].Missing()
		if len(missing) == 0 {
			continue
		}
		r.fail(fmt.Sprintf("%s.tissue[%d]", path, j),
			"Tissue compartment is missing required attributes: "+strings.Join(missing, ", "), nil)
	}
}

// references folds resolver output into the result. A resolver failure
// (duplicate identifier) is reported without its detail.
func (r *run) references(doc *uddf.Document) {
	res, err := resolveFn(doc)
	if err != nil {
		r.fail("references", "Failed to resolve references", nil)
		return
	}
	for _, e := range res.Errors {
		r.fail(e.Location, e.Message, map[string]string{"ref": e.Ref})
	}
}
