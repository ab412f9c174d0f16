package scan

import (
	"github.com/emberjson/emberjson/scan/internal/idclass"
	"github.com/emberjson/emberjson/scan/internal/rune8"
)

func appendRune(dst []byte, r rune) []byte {
	var tmp [4]byte
	return append(dst, rune8.Encode(tmp[:0], r)...)
}

// reservedWords are the ECMAScript 5.1 keywords and future reserved
// words JSON5 forbids as unquoted object names. null/true/false are
// deliberately absent: they parse as an unquoted identifier like any
// other, and a member named "null" is a valid, if surprising, document.
var reservedWords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "export": true, "extends": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true, "instanceof": true,
	"new": true, "return": true, "super": true, "switch": true, "this": true,
	"throw": true, "try": true, "typeof": true, "var": true, "void": true,
	"while": true, "with": true, "yield": true, "let": true, "static": true,
	"enum": true, "implements": true, "package": true,
	"protected": true, "interface": true, "private": true, "public": true,
}

// scanNameLexeme scans an object member name: a quoted string under any
// dialect, or, under JSON5, an unquoted identifier. The returned span
// excludes surrounding whitespace but, for quoted names, includes the
// delimiters (matching scanString's convention).
func (sc *Scanner) scanNameLexeme() (Span, *SyntacticError) {
	r, _, ok, serr := sc.peek()
	if serr != nil {
		return Span{}, serr
	}
	if !ok {
		return Span{}, newSyntacticError(BadSyntax, sc.state.cursor, "expected object name")
	}
	if r == '"' {
		return sc.scanString('"')
	}
	json5 := sc.opts.Dialect == JSON5
	if json5 && r == '\'' {
		return sc.scanString('\'')
	}
	if !json5 || !(idclass.IsIdentifierStart(r) || r == '\\') {
		return Span{}, newSyntacticError(BadSyntax, sc.state.cursor, "expected string")
	}
	return sc.scanUnquotedIdentifier()
}

func (sc *Scanner) scanUnquotedIdentifier() (Span, *SyntacticError) {
	start := sc.state.cursor
	i := start
	first := true
	var nameBuf []byte
	for {
		r, size, serr := sc.decodeAt(i)
		if serr != nil {
			return Span{}, serr
		}
		if size == 0 {
			break
		}
		if r == '\\' {
			if sc.byteAt(i+1) != 'u' {
				break
			}
			cp, ok := sc.readHex4(i + 2)
			if !ok {
				return Span{}, newSyntacticError(BadSyntax, i, "invalid unicode escape")
			}
			valid := idclass.IsIdentifierContinue(cp)
			if first {
				valid = idclass.IsIdentifierStart(cp)
			}
			if !valid {
				break
			}
			nameBuf = appendRune(nameBuf, cp)
			i += 6
			first = false
			continue
		}
		valid := idclass.IsIdentifierContinue(r)
		if first {
			valid = idclass.IsIdentifierStart(r)
		}
		if !valid {
			break
		}
		nameBuf = append(nameBuf, sc.src[i:i+size]...)
		i += size
		first = false
	}
	if i == start {
		return Span{}, newSyntacticError(BadSyntax, start, "expected object name")
	}
	if reservedWords[string(nameBuf)] {
		return Span{}, newSyntacticError(BadSyntax, start, "reserved word used as identifier")
	}
	return Span{Offset: start, Length: i - start}, nil
}
