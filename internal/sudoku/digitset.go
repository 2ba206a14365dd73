package sudoku

import (
	"math/bits"
	"strconv"
	"strings"
)

// Digit is a sudoku value 1-9. Zero means unassigned.
type Digit int8

func (d Digit) String() string {
	return strconv.Itoa(int(d))
}

// DigitSet is a candidate set packed into a bitmask, bit d for digit d.
type DigitSet uint16

// AllDigits has every digit 1-9 set.
const AllDigits DigitSet = 0b11_1111_1110

func (s DigitSet) Has(d Digit) bool {
	return s&(1<<d) != 0
}

func (s DigitSet) With(d Digit) DigitSet {
	return s | 1<<d
}

func (s DigitSet) Without(d Digit) DigitSet {
	return s &^ (1 << d)
}

func (s DigitSet) Size() int {
	return bits.OnesCount16(uint16(s))
}

// Sole returns the only member of a single-digit set.
func (s DigitSet) Sole() (Digit, bool) {
	if s.Size() != 1 {
		return 0, false
	}
	return Digit(bits.TrailingZeros16(uint16(s))), true
}

// Digits lists the members in ascending order. Every scan in this
// package relies on that order for reproducible results.
func (s DigitSet) Digits() []Digit {
	ds := make([]Digit, 0, s.Size())
	for d := Digit(1); d <= 9; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

func (s DigitSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range s.Digits() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(d.String())
	}
	b.WriteByte('}')
	return b.String()
}
