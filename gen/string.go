package gen

import (
	"github.com/kestrel-labs/qcheck/rng"
	"github.com/kestrel-labs/qcheck/shrink"
)

const (
	maxUnicodeCodepoint = 0x10FFFF
	surrogateLo         = 0xD800
	surrogateHi         = 0xDFFF
)

// Ascii draws a single rune in the full 7-bit ASCII range, shrinking
// toward 'a'.
func Ascii() Generator[rune] {
	return func(r *rng.Random) shrink.Shrinkable[rune] {
		c := rune(r.Interval(0, 127))
		return shrink.RuneTowards(c, 'a')
	}
}

// PrintableAscii draws a single printable ASCII rune (space through
// tilde), shrinking toward 'a'.
func PrintableAscii() Generator[rune] {
	return func(r *rng.Random) shrink.Shrinkable[rune] {
		c := rune(r.Interval(32, 126))
		return shrink.RuneTowards(c, 'a')
	}
}

// Unicode draws a single rune from the full Unicode codepoint range,
// excluding the UTF-16 surrogate range which is not a valid rune, shrinking
// toward the NUL rune.
func Unicode() Generator[rune] {
	return func(r *rng.Random) shrink.Shrinkable[rune] {
		var c rune
		for {
			c = rune(r.Interval(0, maxUnicodeCodepoint))
			if c < surrogateLo || c > surrogateHi {
				break
			}
		}
		return shrink.RuneTowards(c, 0)
	}
}

func stringOf(r *rng.Random, charGen Generator[rune], target rune, size Size) shrink.Shrinkable[string] {
	n := drawLength(r, size)
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = charGen(r).Value
	}
	return shrink.String(string(runes), target, size.Min)
}

// AsciiString draws a string of length in [size.Min, size.Max] made of
// full-range ASCII characters, shrinking length first and each character
// toward 'a'.
func AsciiString(size Size) Generator[string] {
	return func(r *rng.Random) shrink.Shrinkable[string] { return stringOf(r, Ascii(), 'a', size) }
}

// PrintableAsciiString is AsciiString restricted to printable characters.
func PrintableAsciiString(size Size) Generator[string] {
	return func(r *rng.Random) shrink.Shrinkable[string] { return stringOf(r, PrintableAscii(), 'a', size) }
}

// UnicodeString draws a string of length in [size.Min, size.Max] made of
// arbitrary Unicode characters, shrinking length first and each character
// toward NUL.
func UnicodeString(size Size) Generator[string] {
	return func(r *rng.Random) shrink.Shrinkable[string] { return stringOf(r, Unicode(), 0, size) }
}
