package ternary

// W5 is a 5-trit balanced-ternary word: the F index register. Range:
// [-121, +121].
type W5 struct {
	trits [5]Trit
}

// ZeroW5 is the additive identity.
var ZeroW5 = W5{}

// W5FromInt builds a W5 from a signed integer in range.
func W5FromInt(v int) W5 {
	var w W5
	copy(w.trits[:], fromInt64(int64(v), 5))
	return w
}

// Get returns the trit at digit index i (0 = least significant).
func (w W5) Get(i int) Trit { return w.trits[i] }

// Trits returns the word's digits, least-significant first.
func (w W5) Trits() [5]Trit { return w.trits }

// Int returns the canonical integer value.
func (w W5) Int() int64 { return toInt64(w.trits[:]) }

// Neg returns the trit-wise negation.
func (w W5) Neg() W5 {
	var out W5
	copy(out.trits[:], negTrits(w.trits[:]))
	return out
}

// ToW9 zero-extends the 5-trit index register to a 9-trit word, used by
// STF.
func (w W5) ToW9() W9 {
	var out W9
	copy(out.trits[:5], w.trits[:])
	return out
}

// W5FromW9Low5 takes the low 5 trits of a 9-trit word, used by LDF.
func W5FromW9Low5(v W9) W5 {
	var w W5
	for i := 0; i < 5; i++ {
		w.trits[i] = v.Get(i)
	}
	return w
}
