// Package idclass classifies code points for the JSON5 extensions: the
// extra whitespace set and the ECMAScript 5.1 IdentifierName grammar
// (ID_Start / ID_Continue, plus '$' and '_').
//
// A dedicated ID_Start/ID_Continue property table is normally sourced
// from golang.org/x/text or a code-generated table keyed to a specific
// Unicode version; this composes the classification from the standard
// library's unicode category tables instead, since pulling in a
// generated table for a handful of category checks isn't worth the
// dependency.
package idclass

import "unicode"

// IsJSON5Space reports whether r is insignificant whitespace under JSON5,
// a superset of the strict JSON whitespace set: space, tab, newline,
// carriage return, U+00A0, U+000B, U+000C, U+2028, U+2029, and any code
// point in Unicode category Zs.
func IsJSON5Space(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', ' ', '\v', '\f', ' ', ' ':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// IsIdentifierStart reports whether r may begin an unquoted JSON5 object
// name: '$', '_', or a Unicode ID_Start code point. The standard library
// has no dedicated ID_Start table, so this approximates it the way most
// hand-rolled ECMAScript lexers do: a Unicode letter, or a letter number
// (category Nl), per the Unicode Standard Annex #31 definition of
// ID_Start restricted to the common case JSON5 documents use.
func IsIdentifierStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r)
}

// IsIdentifierContinue reports whether r may continue an unquoted JSON5
// object name after its first character: everything IsIdentifierStart
// accepts, plus decimal digits, combining marks, and the zero-width
// joiner/non-joiner, per UAX #31's ID_Continue.
func IsIdentifierContinue(r rune) bool {
	if IsIdentifierStart(r) {
		return true
	}
	switch r {
	case '‌', '‍': // ZWNJ, ZWJ
		return true
	}
	return unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Pc, r)
}
