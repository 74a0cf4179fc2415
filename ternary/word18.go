package ternary

// W18 is an 18-trit balanced-ternary word: the S accumulator and the R
// register. Range: [-193710244, +193710244].
type W18 struct {
	trits [18]Trit
}

// ZeroW18 is the additive identity.
var ZeroW18 = W18{}

// W18FromInt builds a W18 from a signed integer in range.
func W18FromInt(v int64) W18 {
	var w W18
	copy(w.trits[:], fromInt64(v, 18))
	return w
}

// Get returns the trit at digit index i (0 = least significant).
func (w W18) Get(i int) Trit { return w.trits[i] }

// Set returns a copy of w with digit i replaced.
func (w W18) Set(i int, t Trit) W18 {
	w.trits[i] = t
	return w
}

// Trits returns the word's digits, least-significant first.
func (w W18) Trits() [18]Trit { return w.trits }

// Int returns the canonical integer value.
func (w W18) Int() int64 { return toInt64(w.trits[:]) }

// Sign returns the leading non-zero trit, or Zero if w is zero.
func (w W18) Sign() Trit { return signTrits(w.trits[:]) }

// IsZero reports whether every digit is Zero.
func (w W18) IsZero() bool { return isZeroTrits(w.trits[:]) }

// Neg returns the trit-wise negation.
func (w W18) Neg() W18 {
	var out W18
	copy(out.trits[:], negTrits(w.trits[:]))
	return out
}

// Abs returns |w|: w unchanged if non-negative, else its negation.
func (w W18) Abs() W18 {
	if w.Sign() == Neg {
		return w.Neg()
	}
	return w
}

// Add returns w+o and the final carry (non-zero carry signals overflow;
// the engine never traps on it).
func (w W18) Add(o W18) (W18, Trit) {
	sum, carry := addTrits(w.trits[:], o.trits[:])
	var out W18
	copy(out.trits[:], sum)
	return out, carry
}

// Sub returns w-o and the final carry.
func (w W18) Sub(o W18) (W18, Trit) {
	return w.Add(o.Neg())
}

// Mul computes the full 36-trit product of w and o, split into
// (low, high) 18-trit halves; high*3^18 + low == w.Int() * o.Int(). The
// product always fits in 2*18 trits, so multiplication never overflows.
func (w W18) Mul(o W18) (low, high W18) {
	lo, hi := multiplyTrits(w.trits[:], o.trits[:])
	copy(low.trits[:], lo)
	copy(high.trits[:], hi)
	return low, high
}

// QuoRem performs truncating-toward-zero integer division; the remainder
// takes the sign of the dividend. The caller must exclude a zero divisor
// (the engine surfaces that as DivisionByZero).
func (w W18) QuoRem(o W18) (quotient, remainder W18) {
	q := w.Int() / o.Int()
	r := w.Int() % o.Int()
	return W18FromInt(q), W18FromInt(r)
}

// ShiftLeft multiplies by 3^n, discarding high trits that no longer fit.
// Shifting by width or more yields zero.
func (w W18) ShiftLeft(n int) W18 {
	var out W18
	copy(out.trits[:], shiftLeftTrits(w.trits[:], n))
	return out
}

// ShiftRight drops the low n trits, dividing by 3^n rounded to the nearest
// integer (not truncated toward zero). Shifting by width or more yields
// zero.
func (w W18) ShiftRight(n int) W18 {
	var out W18
	copy(out.trits[:], shiftRightTrits(w.trits[:], n))
	return out
}

// Compare orders w and o by canonical integer value.
func (w W18) Compare(o W18) Comparison {
	return compareInt64(w.Int(), o.Int())
}

// Low9 truncates w to its low 9 trits, for STA/STR/XCHG.
func (w W18) Low9() W9 {
	var out W9
	copy(out.trits[:], w.trits[:9])
	return out
}

// FromW9 zero/sign-extends a 9-trit word to 18 trits; equivalent to
// W9.ToW18 but convenient when starting from a W18 context.
func FromW9(v W9) W18 { return v.ToW18() }
