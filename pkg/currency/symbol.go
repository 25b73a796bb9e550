package currency

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

var symbolPattern = regexp.MustCompile(`^[a-zA-Z]{3}$`)

// IsValidSymbol reports whether s consists of exactly three ASCII letters.
func IsValidSymbol(s string) bool {
	return symbolPattern.MatchString(s)
}

// NormalizeSymbol uppercases a three-letter currency symbol. Anything that
// is not exactly three ASCII letters is an error.
func NormalizeSymbol(s string) (string, error) {
	if !IsValidSymbol(s) {
		return "", errors.Errorf("invalid currency symbol: %q", s)
	}
	return strings.ToUpper(s), nil
}
