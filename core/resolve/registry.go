// Package resolve builds the identifier registry of a UDDF document and
// checks that its cross-references point at registered identifiers.
//
// Registration is fail-fast: a second element with an already registered
// identifier aborts Resolve with a *errors.DuplicateIDError. Dangling
// references are collected in Result.Errors instead.
package resolve

import "sort"

// Kind is the closed set of referenceable element kinds.
type Kind string

// Referenceable element kinds.
const (
	KindOwner           Kind = "owner"
	KindBuddy           Kind = "buddy"
	KindDiveSite        Kind = "divesite"
	KindGasMix          Kind = "gasmix"
	KindRepetitionGroup Kind = "repetitiongroup"
	KindDive            Kind = "dive"
	KindImage           Kind = "image"
	KindAudio           Kind = "audio"
	KindVideo           Kind = "video"
	KindMaker           Kind = "maker"
	KindBusiness        Kind = "business"
	KindDecoModel       Kind = "decomodel"
	KindDiveTrip        Kind = "divetrip"
)

// Element is a registered identifier-bearing element.
type Element struct {
	Kind Kind
	ID   string
	// Path is the location of the element, e.g. "diver.buddy[1]".
	Path string
	// Target points at the model value (*uddf.Person, *uddf.Mix, ...).
	Target any
}

// Registry maps identifiers to elements. It is built by Resolve and is
// read-only afterwards.
type Registry struct {
	byID  map[string]Element
	order []string
}

func newRegistry() *Registry {
	return &Registry{byID: make(map[string]Element)}
}

// Lookup returns the element registered under id.
func (r *Registry) Lookup(id string) (Element, bool) {
	el, ok := r.byID[id]
	return el, ok
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// IDs returns the registered identifiers in registration (document) order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered identifiers.
func (r *Registry) Len() int {
	return len(r.order)
}

// ByKind groups registered identifiers by element kind, each group sorted.
func (r *Registry) ByKind() map[Kind][]string {
	out := make(map[Kind][]string)
	for _, id := range r.order {
		k := r.byID[id].Kind
		out[k] = append(out[k], id)
	}
	for _, ids := range out {
		sort.Strings(ids)
	}
	return out
}
