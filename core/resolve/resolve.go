package resolve

import (
	"fmt"

	"github.com/FocuswithJustin/uddf/core/errors"
	"github.com/FocuswithJustin/uddf/core/uddf"
)

// ReferenceError is a reference that names no registered identifier.
type ReferenceError struct {
	Ref      string // the dangling identifier
	Location string // path of the reference, e.g. "tablegeneration.link"
	Message  string
}

func (e ReferenceError) Error() string {
	return e.Message
}

func (e ReferenceError) Unwrap() error {
	return errors.ErrUnresolvedReference
}

// Result is the outcome of resolving one document.
type Result struct {
	Registry *Registry
	Errors   []ReferenceError
}

// IsValid reports whether every checked reference resolved.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Messages returns the message of every reference error in order.
func (r *Result) Messages() []string {
	out := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		out[i] = e.Message
	}
	return out
}

// Err returns nil for a valid result and an *errors.UnresolvedReferenceError
// aggregating every dangling reference otherwise.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	refs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		refs[i] = e.Ref
	}
	return &errors.UnresolvedReferenceError{Refs: refs, Messages: r.Messages()}
}

// Resolve registers every identifier-bearing element of doc and checks the
// notes links of each dive and the table-generation link against the
// registry. The document is not modified.
//
// Other reference-shaped fields (tank data links, switch-mix refs,
// equipment configuration links) are not checked.
func Resolve(doc *uddf.Document) (*Result, error) {
	if doc == nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, "resolve nil document")
	}

	r := &resolver{registry: newRegistry()}
	if err := r.register(doc); err != nil {
		return nil, err
	}
	r.check(doc)

	return &Result{Registry: r.registry, Errors: r.errs}, nil
}

type resolver struct {
	registry *Registry
	errs     []ReferenceError
}

func (r *resolver) add(kind Kind, id *string, path string, target any) error {
	if id == nil {
		return nil
	}
	if first, ok := r.registry.byID[*id]; ok {
		return errors.NewDuplicateID(*id, path, first.Path)
	}
	r.registry.byID[*id] = Element{Kind: kind, ID: *id, Path: path, Target: target}
	r.registry.order = append(r.registry.order, *id)
	return nil
}

// register walks the identifier-bearing positions in document order.
func (r *resolver) register(doc *uddf.Document) error {
	if d := doc.Diver; d != nil {
		if d.Owner != nil {
			if err := r.add(KindOwner, d.Owner.ID, "diver.owner", d.Owner); err != nil {
				return err
			}
		}
		for i := range d.Buddies {
			b := &d.Buddies[i]
			if err := r.add(KindBuddy, b.ID, fmt.Sprintf("diver.buddy[%d]", i), b); err != nil {
				return err
			}
		}
	}

	if ds := doc.DiveSite; ds != nil {
		for i := range ds.Sites {
			s := &ds.Sites[i]
			if err := r.add(KindDiveSite, s.ID, fmt.Sprintf("divesite.site[%d]", i), s); err != nil {
				return err
			}
		}
	}

	if gd := doc.GasDefinitions; gd != nil {
		for i := range gd.Mixes {
			m := &gd.Mixes[i]
			if err := r.add(KindGasMix, m.ID, fmt.Sprintf("gasdefinitions.mix[%d]", i), m); err != nil {
				return err
			}
		}
	}

	if pd := doc.ProfileData; pd != nil {
		for i := range pd.RepetitionGroups {
			g := &pd.RepetitionGroups[i]
			groupPath := fmt.Sprintf("profiledata.repetitiongroup[%d]", i)
			if err := r.add(KindRepetitionGroup, g.ID, groupPath, g); err != nil {
				return err
			}
			for j := range g.Dives {
				dv := &g.Dives[j]
				if err := r.add(KindDive, dv.ID, fmt.Sprintf("%s.dive[%d]", groupPath, j), dv); err != nil {
					return err
				}
			}
		}
	}

	if md := doc.MediaData; md != nil {
		for i := range md.Images {
			m := &md.Images[i]
			if err := r.add(KindImage, m.ID, fmt.Sprintf("mediadata.image[%d]", i), m); err != nil {
				return err
			}
		}
		for i := range md.Audio {
			m := &md.Audio[i]
			if err := r.add(KindAudio, m.ID, fmt.Sprintf("mediadata.audio[%d]", i), m); err != nil {
				return err
			}
		}
		for i := range md.Videos {
			m := &md.Videos[i]
			if err := r.add(KindVideo, m.ID, fmt.Sprintf("mediadata.video[%d]", i), m); err != nil {
				return err
			}
		}
	}

	if mk := doc.Maker; mk != nil {
		for i := range mk.Manufacturers {
			m := &mk.Manufacturers[i]
			if err := r.add(KindMaker, m.ID, fmt.Sprintf("maker.manufacturer[%d]", i), m); err != nil {
				return err
			}
		}
	}

	if b := doc.Business; b != nil {
		for i := range b.Shops {
			s := &b.Shops[i]
			if err := r.add(KindBusiness, s.ID, fmt.Sprintf("business.shop[%d]", i), s); err != nil {
				return err
			}
		}
	}

	if dm := doc.DecoModel; dm != nil {
		for i := range dm.Buehlmann {
			m := &dm.Buehlmann[i]
			if err := r.add(KindDecoModel, m.ID, fmt.Sprintf("decomodel.buehlmann[%d]", i), m); err != nil {
				return err
			}
		}
		for i := range dm.VPM {
			m := &dm.VPM[i]
			if err := r.add(KindDecoModel, m.ID, fmt.Sprintf("decomodel.vpm[%d]", i), m); err != nil {
				return err
			}
		}
		for i := range dm.RGBM {
			m := &dm.RGBM[i]
			if err := r.add(KindDecoModel, m.ID, fmt.Sprintf("decomodel.rgbm[%d]", i), m); err != nil {
				return err
			}
		}
	}

	if dt := doc.DiveTrip; dt != nil {
		for i := range dt.Trips {
			tr := &dt.Trips[i]
			if err := r.add(KindDiveTrip, tr.ID, fmt.Sprintf("divetrip.trip[%d]", i), tr); err != nil {
				return err
			}
		}
	}

	return nil
}

// check collects every dangling reference at the resolved sites.
func (r *resolver) check(doc *uddf.Document) {
	if pd := doc.ProfileData; pd != nil {
		for i, g := range pd.RepetitionGroups {
			for j, dv := range g.Dives {
				divePath := fmt.Sprintf("profiledata.repetitiongroup[%d].dive[%d]", i, j)
				if before := dv.InformationBeforeDive; before != nil && before.Notes != nil {
					r.checkLinks(before.Notes.Links, divePath+".informationbeforedive.notes.link")
				}
				if after := dv.InformationAfterDive; after != nil && after.Notes != nil {
					r.checkLinks(after.Notes.Links, divePath+".informationafterdive.notes.link")
				}
			}
		}
	}

	if tg := doc.TableGeneration; tg != nil && tg.Link != nil {
		r.checkRef(tg.Link.Ref, "tablegeneration.link")
	}
}

func (r *resolver) checkLinks(links []uddf.Link, base string) {
	for k, l := range links {
		r.checkRef(l.Ref, fmt.Sprintf("%s[%d]", base, k))
	}
}

func (r *resolver) checkRef(ref *string, location string) {
	if ref == nil || r.registry.Contains(*ref) {
		return
	}
	r.errs = append(r.errs, ReferenceError{
		Ref:      *ref,
		Location: location,
		Message:  fmt.Sprintf("reference %q at %s does not match any identifier", *ref, location),
	})
}
