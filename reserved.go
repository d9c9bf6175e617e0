package sexptree

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// reservedWords is the set of GDL keywords which are case-normalized at
// leaf construction time. It is process-wide immutable configuration
// data; no code path mutates it after initialization.
var reservedWords = map[string]bool{
	"role":     true,
	"init":     true,
	"true":     true,
	"does":     true,
	"legal":    true,
	"next":     true,
	"goal":     true,
	"terminal": true,
	"input":    true,
	"base":     true,
	"or":       true,
	"not":      true,
	"distinct": true,
}

// IsReservedWord returns true iff word is a GDL reserved keyword
// (in its normalized lowercase spelling).
func IsReservedWord(word string) bool {
	return reservedWords[word]
}

// foldReservedWord lowercases word if its lowercase spelling is a
// reserved keyword and returns word unchanged otherwise. Folding is
// idempotent, which keeps re-parsing Sexpr output lossless.
func foldReservedWord(word string) string {
	lowered := cases.Lower(language.Und).String(word)
	if reservedWords[lowered] {
		return lowered
	}
	return word
}
