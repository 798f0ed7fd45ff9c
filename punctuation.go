package datautil

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Punctuation is the set of characters removed by [RemovePunctuation].
const Punctuation = "!#?"

var punctuationRegexp = regexp.MustCompile(`[!#?]`)

// RemovePunctuation removes every !, # and ? from value. All other characters
// are kept in order.
func RemovePunctuation(value string) string {
	return punctuationRegexp.ReplaceAllString(value, "")
}

// HasPunctuation reports whether value contains any character of [Punctuation].
func HasPunctuation(value string) bool {
	return punctuationRegexp.MatchString(value)
}

// NoPunctuation is a validation rule that rejects strings still containing
// any character of [Punctuation]. Empty values pass.
var NoPunctuation = validation.NewStringRule(
	func(s string) bool { return !HasPunctuation(s) },
	"must not contain !, # or ?",
)
