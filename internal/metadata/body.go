package metadata

import (
	"errors"
	"regexp"
)

// ErrFunctionNotFound is returned when a requested firmware function
// signature does not appear in the source text.
var ErrFunctionNotFound = errors.New("function not found")

// FunctionBody returns the verbatim text between the braces of the named
// void function. It finds the signature, then walks forward counting brace
// depth until the opening brace closes.
//
// This is a lexical scan, not a parser: string or comment literals containing
// unbalanced braces will throw the depth count off. The firmware handlers are
// known not to contain such literals.
func FunctionBody(src, name string) (string, error) {
	sigRe := regexp.MustCompile(`void\s+` + regexp.QuoteMeta(name) + `\s*\([^)]*\)\s*\{`)
	loc := sigRe.FindStringIndex(src)
	if loc == nil {
		return "", ErrFunctionNotFound
	}

	depth := 1
	for i := loc[1]; i < len(src); i++ {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return src[loc[1]:i], nil
			}
		}
	}
	return "", ErrFunctionNotFound
}
