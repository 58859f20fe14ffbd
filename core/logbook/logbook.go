// Package logbook combines decoding, reference resolution and validation
// into the entry points used by the command line tool and the API server.
//
// ParseAndResolve treats dangling references as fatal. ParseAndValidate
// only fails when the input cannot be decoded; reference and range problems
// come back as validation findings next to the best-effort document.
package logbook

import (
	"github.com/FocuswithJustin/uddf/core/codec"
	"github.com/FocuswithJustin/uddf/core/resolve"
	"github.com/FocuswithJustin/uddf/core/uddf"
	"github.com/FocuswithJustin/uddf/core/validate"
)

// ParseAndResolve decodes data and resolves its references.
//
// A duplicate identifier is returned as the *errors.DuplicateIDError from
// the registry. Dangling references are aggregated into one
// *errors.UnresolvedReferenceError; the decoded document and the resolution
// result are returned alongside it.
func ParseAndResolve(data []byte) (*uddf.Document, *resolve.Result, error) {
	doc, err := codec.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return resolveDocument(doc)
}

func resolveDocument(doc *uddf.Document) (*uddf.Document, *resolve.Result, error) {
	res, err := resolve.Resolve(doc)
	if err != nil {
		return doc, nil, err
	}
	if err := res.Err(); err != nil {
		return doc, res, err
	}
	return doc, res, nil
}

// ParseAndValidate decodes data and validates it with opts. The error is
// non-nil only when decoding fails.
func ParseAndValidate(data []byte, opts validate.Options) (*uddf.Document, *validate.Result, error) {
	doc, err := codec.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return doc, validate.Validate(doc, opts), nil
}

// Load is ParseAndResolve for the logbook at path.
func Load(path string) (*uddf.Document, *resolve.Result, error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return resolveDocument(doc)
}

// LoadAndValidate is ParseAndValidate for the logbook at path.
func LoadAndValidate(path string, opts validate.Options) (*uddf.Document, *validate.Result, error) {
	doc, err := codec.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return doc, validate.Validate(doc, opts), nil
}
