package uddf

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/FocuswithJustin/uddf/core/errors"
)

// FormatVersion is the UDDF version written by this package.
const FormatVersion = "3.2.1"

// Version is a parsed UDDF format version such as "3.2.1".
type Version struct {
	Major int
	Minor int
	Patch int
	// HasPatch is false for two-component versions ("3.2").
	HasPatch bool
}

// versionGrammar is the participle grammar for format versions.
// Examples: "3.2", "3.2.1", "3.0.0"
//
//nolint:govet // participle grammar tags are not standard struct tags
type versionGrammar struct {
	Major int  `@Int`
	Minor int  `"." @Int`
	Patch *int `( "." @Int )?`
}

var versionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dot", Pattern: `\.`},
})

var versionParser = participle.MustBuild[versionGrammar](
	participle.Lexer(versionLexer),
)

// ParseVersion parses a UDDF version attribute. Surrounding whitespace is
// not accepted.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return Version{}, errors.NewParse("version", "", "empty version string")
	}
	if strings.TrimSpace(s) != s {
		return Version{}, errors.NewParse("version", "", fmt.Sprintf("invalid version string %q", s))
	}

	parsed, err := versionParser.ParseString("", s)
	if err != nil {
		return Version{}, &errors.ParseError{
			Format:  "version",
			Message: fmt.Sprintf("invalid version string %q", s),
			Err:     err,
		}
	}

	v := Version{Major: parsed.Major, Minor: parsed.Minor}
	if parsed.Patch != nil {
		v.Patch = *parsed.Patch
		v.HasPatch = true
	}
	return v, nil
}

func (v Version) String() string {
	if v.HasPatch {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Supported reports whether the version belongs to the UDDF 3.x family.
func (v Version) Supported() bool {
	return v.Major == 3
}
