// Package category implements the normalization rule for category labels.
//
// Two category labels denote the same category if and only if their
// normalized forms are byte-equal. Every write path for transactions and
// budgets stores the normalized form.
package category

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MinLength is the minimum number of characters of a normalized category.
const MinLength = 3

var ErrTooShort = errors.New("category must be at least 3 characters long")

// Normalize trims surrounding whitespace and lower-cases the label.
//
// The label is brought into Unicode NFC first so that composed and
// decomposed spellings of the same text are equal after normalization.
func Normalize(s string) string {
	s = norm.NFC.String(strings.TrimSpace(s))

	// A Caser is stateful and must not be shared
	return cases.Lower(language.Und).String(s)
}

// Validate checks that a normalized category is long enough.
func Validate(normalized string) error {
	if utf8.RuneCountInString(normalized) < MinLength {
		return ErrTooShort
	}

	return nil
}
