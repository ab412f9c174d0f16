// Package rune8 implements the UTF-8 codec underlying the scanner: decoding
// one scalar value at a time from a byte range, encoding a scalar back to
// its shortest UTF-8 form, and the locale-independent character classifiers
// the scanner needs for digits, hex digits, ASCII letters, strict-JSON
// whitespace, and newlines. Identifier classes live in package idclass.
//
// Decode is a hand-rolled DFA rather than a call into unicode/utf8: the
// scanner needs to tell an illegal (malformed or truncated) sequence, a
// cursor past the size limit, and end of input (including a NUL
// terminator) apart at a single byte offset, which unicode/utf8's
// rune-returning API does not expose directly.
package rune8

import (
	"errors"

	"github.com/klauspost/cpuid/v2"
)

// MaxBufferLength is the largest source length the codec will operate on,
// chosen so that any valid byte offset fits in a signed 32-bit integer with
// headroom to spare.
const MaxBufferLength = 1 << 30 // 1 GiB

// ErrBadEncoding is returned by Decode when the byte sequence at cursor is
// not valid UTF-8 per RFC 3629.
var ErrBadEncoding = errors.New("rune8: illegal UTF-8 byte sequence")

// ErrInputTooLarge is returned by Decode when consuming the scalar at
// cursor would require reading past MaxBufferLength.
var ErrInputTooLarge = errors.New("rune8: input exceeds maximum size")

// replacementScalar is never itself returned by Decode; it exists only so
// callers that want a visible placeholder on error have one to reach for.
const replacementScalar rune = 0xFFFD

// Decode returns the scalar value at buf[cursor] and the number of bytes it
// occupies. length is the logical length of buf; a negative length means
// buf is NUL-terminated and Decode must treat a NUL byte at cursor as
// end-of-input rather than as a scalar, returning (0, 0, nil).
//
// Decode rejects overlong encodings, lone surrogate halves, and truncated
// sequences, matching exactly the set of sequences RFC 3629 rejects.
func Decode(buf []byte, length int, cursor int) (scalar rune, consumed int, err error) {
	if cursor >= MaxBufferLength {
		return 0, 0, ErrInputTooLarge
	}
	end := len(buf)
	if length >= 0 && length < end {
		end = length
	}
	if cursor >= end {
		return 0, 0, nil
	}
	b0 := buf[cursor]
	if length < 0 && b0 == 0 {
		return 0, 0, nil
	}

	switch {
	case b0 < 0x80:
		return rune(b0), 1, nil
	case b0 < 0xC2: // continuation byte or overlong 2-byte lead (0xC0, 0xC1)
		return 0, 0, ErrBadEncoding
	case b0 < 0xE0:
		return decodeSeq(buf, cursor, end, rune(b0&0x1F), 2, 0x80, 0x7FF)
	case b0 < 0xF0:
		return decodeSeq(buf, cursor, end, rune(b0&0x0F), 3, 0x800, 0xFFFF)
	case b0 < 0xF5:
		return decodeSeq(buf, cursor, end, rune(b0&0x07), 4, 0x10000, 0x10FFFF)
	default:
		return 0, 0, ErrBadEncoding
	}
}

// decodeSeq decodes the continuation bytes of a multi-byte sequence whose
// lead byte has already been stripped to init (the bits it contributes),
// verifying length-many total bytes are available, that every continuation
// byte has the 10xxxxxx shape, that the scalar is not overlong, and that it
// does not land in the UTF-16 surrogate range.
func decodeSeq(buf []byte, cursor, end int, init rune, length int, lo, hi rune) (rune, int, error) {
	if cursor+length > end {
		return 0, 0, ErrBadEncoding // truncated
	}
	v := init
	for i := 1; i < length; i++ {
		c := buf[cursor+i]
		if c&0xC0 != 0x80 {
			return 0, 0, ErrBadEncoding
		}
		v = v<<6 | rune(c&0x3F)
	}
	if v < lo || v > hi {
		return 0, 0, ErrBadEncoding // overlong, or above 0x10FFFF
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return 0, 0, ErrBadEncoding // lone surrogate half
	}
	return v, length, nil
}

// Encode appends the shortest UTF-8 encoding of scalar to dst and returns
// the result. It panics if scalar is outside [0, 0x10FFFF] or is a
// surrogate half, since those are never valid scalars to emit.
func Encode(dst []byte, scalar rune) []byte {
	switch {
	case scalar < 0 || scalar > 0x10FFFF || (scalar >= 0xD800 && scalar <= 0xDFFF):
		panic("rune8: scalar out of range")
	case scalar < 0x80:
		return append(dst, byte(scalar))
	case scalar < 0x800:
		return append(dst, byte(0xC0|scalar>>6), byte(0x80|scalar&0x3F))
	case scalar < 0x10000:
		return append(dst,
			byte(0xE0|scalar>>12),
			byte(0x80|(scalar>>6)&0x3F),
			byte(0x80|scalar&0x3F))
	default:
		return append(dst,
			byte(0xF0|scalar>>18),
			byte(0x80|(scalar>>12)&0x3F),
			byte(0x80|(scalar>>6)&0x3F),
			byte(0x80|scalar&0x3F))
	}
}

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	return IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsASCIIAlpha reports whether r is an ASCII letter.
func IsASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsStrictWhitespace reports whether r is insignificant whitespace in the
// RFC 4627 / RFC 8259 grammars: space, tab, line feed, carriage return.
func IsStrictWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// IsNewlineSequence reports whether r, on its own, terminates a line for
// the purposes of line-comment scanning and line/column accounting.
// \r\n is recognized by the caller as two calls to this predicate in
// sequence, not specially here.
func IsNewlineSequence(r rune) bool {
	switch r {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

// wideWordScan reports whether the host CPU has the kind of wide,
// cheaply-usable general-purpose registers that make an 8-byte-at-a-time
// scan worth the overhead of assembling a word, as opposed to a CPU where
// the scalar byte loop is already about as fast. cpuid.CPU is populated
// once at process start, so this check costs nothing per call.
var wideWordScan = cpuid.CPU.Supports(cpuid.SSE2) || cpuid.CPU.Supports(cpuid.ASIMD)

// ScanASCIIRun returns the length of the longest prefix of buf consisting
// of plain string content bytes for the given delimiter quote: printable
// ASCII excluding quote and '\\', which end a run early. Callers use it
// to skip quickly over ordinary string content between the positions
// that actually need the scalar decoder's attention. It never reports a
// byte it hasn't fully validated as plain, so a caller can always safely
// skip the returned count without calling Decode on those bytes
// individually.
func ScanASCIIRun(buf []byte, quote byte) int {
	i := 0
	if wideWordScan {
		var qWord uint64
		for k := 0; k < 8; k++ {
			qWord |= uint64(quote) << (8 * k)
		}
		for i+8 <= len(buf) {
			var word uint64
			for k := 0; k < 8; k++ {
				word |= uint64(buf[i+k]) << (8 * k)
			}
			if hasNonPlainByte(word, qWord) {
				break
			}
			i += 8
		}
	}
	for i < len(buf) && isPlainStringByte(buf[i], quote) {
		i++
	}
	return i
}

func isPlainStringByte(b, quote byte) bool {
	return b >= 0x20 && b < 0x80 && b != quote && b != '\\'
}

func hasNonPlainByte(word, qWord uint64) bool {
	for k := 0; k < 8; k++ {
		shift := uint(8 * k)
		b := byte(word >> shift)
		q := byte(qWord >> shift)
		if !isPlainStringByte(b, q) {
			return true
		}
	}
	return false
}
