package uddf

import "strings"

// vocabulary is the closed token set behind a hybrid enumeration.
//
// Decoding maps a token onto its canonical standard variant when it is in the
// set and otherwise keeps the token verbatim as the unknown variant. Encoding
// is the identity on the underlying string, so unknown tokens round-trip
// byte for byte.
type vocabulary[T ~string] struct {
	tokens []T
	index  map[string]T
	fold   bool // match case-insensitively
	trim   bool // strip surrounding whitespace before matching
}

type vocabularyOption int

const (
	caseInsensitive vocabularyOption = iota + 1
	trimSpace
)

func newVocabulary[T ~string](opts []vocabularyOption, tokens ...T) *vocabulary[T] {
	v := &vocabulary[T]{
		tokens: tokens,
		index:  make(map[string]T, len(tokens)),
	}
	for _, o := range opts {
		switch o {
		case caseInsensitive:
			v.fold = true
		case trimSpace:
			v.trim = true
		}
	}
	for _, t := range tokens {
		v.index[v.key(string(t))] = t
	}
	return v
}

func (v *vocabulary[T]) key(s string) string {
	if v.fold {
		return strings.ToLower(s)
	}
	return s
}

// parse is total: every input yields either a standard or an unknown variant.
func (v *vocabulary[T]) parse(s string) T {
	if v.trim {
		s = strings.TrimSpace(s)
	}
	if t, ok := v.index[v.key(s)]; ok {
		return t
	}
	return T(s)
}

// standard reports whether t is exactly one of the canonical tokens.
func (v *vocabulary[T]) standard(t T) bool {
	c, ok := v.index[v.key(string(t))]
	return ok && c == t
}

func (v *vocabulary[T]) values() []T {
	out := make([]T, len(v.tokens))
	copy(out, v.tokens)
	return out
}
