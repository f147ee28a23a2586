package svg

import (
	"strings"

	errs "github.com/matzehuels/svgdoc/pkg/errors"
)

// ParseAttributes parses a string of space-separated key=value tokens.
//
// Each token is split on its first '=', so "style=a=b" sets style to "a=b".
// Runs of whitespace are treated as one separator and an empty string yields an
// empty set. A token with no '=' or with nothing before it is rejected with
// an [errs.ErrCodeInvalidAttribute] error; an empty value ("k=") is allowed.
// Repeated keys keep the last value.
func ParseAttributes(s string) (Attributes, error) {
	var a Attributes
	for _, tok := range strings.Fields(s) {
		key, value, ok := strings.Cut(tok, "=")
		if !ok {
			return Attributes{}, errs.New(errs.ErrCodeInvalidAttribute, "attribute token %q has no '='", tok)
		}
		if key == "" {
			return Attributes{}, errs.New(errs.ErrCodeInvalidAttribute, "attribute token %q has an empty name", tok)
		}
		a.Set(key, value)
	}
	return a, nil
}

// MustParseAttributes is like [ParseAttributes] but panics on error.
func MustParseAttributes(s string) Attributes {
	a, err := ParseAttributes(s)
	if err != nil {
		panic(err)
	}
	return a
}
