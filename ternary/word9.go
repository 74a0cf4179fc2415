package ternary

import "strings"

// W9 is a 9-trit balanced-ternary word: one memory cell, one instruction, or
// the zero/sign-extended image of the F register. Range: [-9841, +9841].
type W9 struct {
	trits [9]Trit
}

// ZeroW9 is the additive identity.
var ZeroW9 = W9{}

// W9FromInt builds a W9 from a signed integer in range.
func W9FromInt(v int) W9 {
	var w W9
	copy(w.trits[:], fromInt64(int64(v), 9))
	return w
}

// W9FromTrits builds a W9 from exactly 9 trits, most callers use
// W9FromInt; this is for the instruction codec, which assembles a word
// digit by digit.
func W9FromTrits(trits [9]Trit) W9 {
	return W9{trits: trits}
}

// Get returns the trit at digit index i (0 = least significant).
func (w W9) Get(i int) Trit { return w.trits[i] }

// Set returns a copy of w with digit i replaced.
func (w W9) Set(i int, t Trit) W9 {
	w.trits[i] = t
	return w
}

// Trits returns the word's digits, least-significant first.
func (w W9) Trits() [9]Trit { return w.trits }

// Int returns the canonical integer value.
func (w W9) Int() int64 { return toInt64(w.trits[:]) }

// Sign returns the leading non-zero trit, or Zero if w is zero.
func (w W9) Sign() Trit { return signTrits(w.trits[:]) }

// IsZero reports whether every digit is Zero.
func (w W9) IsZero() bool { return isZeroTrits(w.trits[:]) }

// Neg returns the trit-wise negation.
func (w W9) Neg() W9 {
	var out W9
	copy(out.trits[:], negTrits(w.trits[:]))
	return out
}

// Add returns w+o and the final carry (non-zero carry signals overflow).
func (w W9) Add(o W9) (W9, Trit) {
	sum, carry := addTrits(w.trits[:], o.trits[:])
	var out W9
	copy(out.trits[:], sum)
	return out, carry
}

// Sub returns w-o and the final carry.
func (w W9) Sub(o W9) (W9, Trit) {
	return w.Add(o.Neg())
}

// ToW18 zero/sign-extends the 9-trit word to 18 trits. In balanced
// ternary, zero-extension and sign-extension coincide: trailing
// (high) zero trits never change the canonical value.
func (w W9) ToW18() W18 {
	var out W18
	copy(out.trits[:9], w.trits[:])
	return out
}

// String renders the word most-significant-digit-first in the N/O/P
// alphabet fixed by the instruction stream file format.
func (w W9) String() string {
	var b strings.Builder
	for i := len(w.trits) - 1; i >= 0; i-- {
		b.WriteByte(w.trits[i].Letter())
	}
	return b.String()
}

// ParseW9 parses a 9-trit word from its textual form: the first 9
// in-alphabet characters (N/O/P, case-insensitive) found in s, most
// significant first. Extra trailing characters are ignored, matching the
// instruction stream format's line convention.
func ParseW9(s string) (W9, bool) {
	var parsed []Trit
	for _, r := range s {
		t, ok := FromLetter(r)
		if !ok {
			continue
		}
		parsed = append(parsed, t)
		if len(parsed) == 9 {
			break
		}
	}
	if len(parsed) != 9 {
		return W9{}, false
	}
	var w W9
	for i, t := range parsed {
		// parsed is most-significant-first; trits[] is least-significant-first.
		w.trits[8-i] = t
	}
	return w, true
}
