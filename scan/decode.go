package scan

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/emberjson/emberjson/scan/internal/rune8"
)

// Stringify decodes the text of a String or ObjectName token's lexeme
// (escapes resolved, delimiters stripped) into out. If out is nil it
// returns only the number of bytes decoding would require, writing
// nothing; if out is non-nil but too small it returns NoBufferSpace and
// writes nothing. Decoding is deferred to this call rather than done at
// scan time so a caller that only wants to skip over a value never pays
// for escapes it never reads.
func Stringify(src []byte, lexeme Span, out []byte) (int, error) {
	n, serr := decodeStringInto(nil, src, lexeme)
	if serr != nil {
		return 0, serr
	}
	if out == nil {
		return n, nil
	}
	if len(out) < n {
		return n, newSyntacticError(NoBufferSpace, lexeme.Offset, "output buffer too small")
	}
	if _, serr = decodeStringInto(out, src, lexeme); serr != nil {
		return n, serr
	}
	return n, nil
}

// decodeStringInto decodes the lexeme's text, writing into dst (if
// non-nil; writes are dropped once dst's capacity is reached, but the
// full required count is still returned) and returns the number of
// bytes the fully decoded text occupies.
func decodeStringInto(dst []byte, src []byte, lexeme Span) (int, *SyntacticError) {
	bytes := lexeme.Slice(src)
	if len(bytes) == 0 {
		return 0, nil
	}
	quote := bytes[0]
	quoted := quote == '"' || quote == '\''
	i, end := 0, len(bytes)
	if quoted {
		i, end = 1, len(bytes)-1
	}
	n := 0
	put := func(b byte) {
		if dst != nil && n < len(dst) {
			dst[n] = b
		}
		n++
	}
	putRune := func(r rune) {
		var tmp [4]byte
		for _, b := range rune8.Encode(tmp[:0], r) {
			put(b)
		}
	}
	for i < end {
		r, size, err := rune8.Decode(bytes, len(bytes), i)
		if err != nil || size == 0 {
			return 0, malfunction(lexeme.Offset+i, "lexeme failed to re-decode")
		}
		if r != '\\' {
			for _, b := range bytes[i : i+size] {
				put(b)
			}
			i += size
			continue
		}
		i += size
		er, esize, eerr := rune8.Decode(bytes, len(bytes), i)
		if eerr != nil || esize == 0 {
			return 0, malfunction(lexeme.Offset+i, "lexeme failed to re-decode")
		}
		switch er {
		case '"':
			put('"')
			i += esize
		case '\\':
			put('\\')
			i += esize
		case '/':
			put('/')
			i += esize
		case 'b':
			put('\b')
			i += esize
		case 'f':
			put('\f')
			i += esize
		case 'n':
			put('\n')
			i += esize
		case 'r':
			put('\r')
			i += esize
		case 't':
			put('\t')
			i += esize
		case '\'':
			put('\'')
			i += esize
		case 'v':
			put('\v')
			i += esize
		case '0':
			put(0)
			i += esize
		case 'x':
			i += esize
			v := hexVal(bytes[i])<<4 | hexVal(bytes[i+1])
			put(byte(v))
			i += 2
		case 'u':
			i += esize
			cp := parseHex4(bytes[i : i+4])
			i += 4
			if isHighSurrogate(rune(cp)) {
				i += 2 // "\u"
				lo := parseHex4(bytes[i : i+4])
				i += 4
				combined := 0x10000 + (rune(cp)-highSurrogateLo)<<10 + (rune(lo) - lowSurrogateLo)
				putRune(combined)
			} else {
				putRune(rune(cp))
			}
		default:
			// line continuation: the escaped newline sequence contributes
			// nothing to the decoded text.
			i += esize
			if er == '\r' {
				if r2, size2, _ := rune8.Decode(bytes, len(bytes), i); r2 == '\n' {
					i += size2
				}
			}
		}
	}
	return n, nil
}

func parseHex4(b []byte) int {
	return hexVal(b[0])<<12 | hexVal(b[1])<<8 | hexVal(b[2])<<4 | hexVal(b[3])
}

// Numberify decodes a Number token's lexeme into a float64, following
// IEEE 754 round-to-nearest. It reports OutOfRange if the literal's
// magnitude overflows to an infinity, rather than silently returning a
// value whose sign and magnitude class no longer match the source text.
func Numberify(src []byte, lexeme Span) (float64, error) {
	text := string(lexeme.Slice(src))
	if text == "" {
		return 0, invalidOperation("empty number lexeme")
	}
	neg := false
	body := text
	switch body[0] {
	case '-':
		neg = true
		body = body[1:]
	case '+':
		body = body[1:]
	}
	switch body {
	case "NaN":
		return math.NaN(), nil
	case "Infinite":
		if neg {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	}
	if strings.HasPrefix(body, "0x") || strings.HasPrefix(body, "0X") {
		v, err := parseHexInteger(body[2:], lexeme.Offset)
		if err != nil {
			return 0, err
		}
		if neg {
			v = -v
		}
		return v, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return v, newSyntacticError(OutOfRange, lexeme.Offset, "number out of range")
		}
		return 0, malfunction(lexeme.Offset, "lexeme failed to re-parse")
	}
	return v, nil
}

// NumberifyBig decodes a Number token's lexeme into an arbitrary-precision
// big.Float, for callers that need more precision than float64's ~15-17
// significant digits can hold.
func NumberifyBig(src []byte, lexeme Span) (*big.Float, error) {
	text := string(lexeme.Slice(src))
	if text == "" {
		return nil, invalidOperation("empty number lexeme")
	}
	if text == "NaN" || text == "+NaN" || text == "-NaN" {
		return nil, newSyntacticError(OutOfRange, lexeme.Offset, "NaN has no big.Float representation")
	}
	// Base 0 lets the "0x" prefix of a JSON5 hex literal select base 16;
	// every other lexeme the scanner accepts parses as base 10.
	f, _, err := big.ParseFloat(strings.Replace(text, "Infinite", "Inf", 1), 0, 256, big.ToNearestEven)
	if err != nil {
		return nil, malfunction(lexeme.Offset, "lexeme failed to re-parse")
	}
	return f, nil
}

func parseHexInteger(digits string, offset int) (float64, *SyntacticError) {
	var v float64
	for i := 0; i < len(digits); i++ {
		v = v*16 + float64(hexVal(digits[i]))
	}
	if math.IsInf(v, 0) {
		return 0, newSyntacticError(OutOfRange, offset, "number out of range")
	}
	return v, nil
}
