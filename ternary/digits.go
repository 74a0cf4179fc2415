package ternary

// digits.go holds the width-independent ripple-carry algorithms shared by
// W9, W18, and W5. Each Word type stores its own fixed-size trit array (so a
// Word value always carries exactly its width worth of trits, per the
// "no partially initialised state" invariant) but delegates the actual
// digit arithmetic here to avoid three copies of the same adder/multiplier.

// addTrits ripples a full adder across a and b (equal length) from least to
// most significant digit, returning the per-digit sum and the final carry.
// A non-zero carryOut means the true sum fell outside the width.
func addTrits(a, b []Trit) (sum []Trit, carryOut Trit) {
	n := len(a)
	sum = make([]Trit, n)
	var carry Trit
	for i := 0; i < n; i++ {
		s, c := a[i].FullAdd(b[i], carry)
		sum[i] = s
		carry = c
	}
	return sum, carry
}

// negTrits negates every digit.
func negTrits(a []Trit) []Trit {
	out := make([]Trit, len(a))
	for i, t := range a {
		out[i] = t.Neg()
	}
	return out
}

// isZeroTrits reports whether every digit is Zero.
func isZeroTrits(a []Trit) bool {
	for _, t := range a {
		if t != Zero {
			return false
		}
	}
	return true
}

// signTrits returns the sign of the value: the leading (most significant)
// non-zero trit, or Zero if the whole word is zero.
func signTrits(a []Trit) Trit {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != Zero {
			return a[i]
		}
	}
	return Zero
}

// toInt64 computes the canonical integer value Sum(t_i * 3^i).
func toInt64(a []Trit) int64 {
	var v int64
	pow := int64(1)
	for _, t := range a {
		v += int64(t.Int()) * pow
		pow *= 3
	}
	return v
}

// fromInt64 converts v into width digits of balanced ternary, least
// significant first. It panics if v does not fit in width trits.
func fromInt64(v int64, width int) []Trit {
	if v < -maxValue(width) || v > maxValue(width) {
		panic("ternary: value out of range for width")
	}
	out := make([]Trit, width)
	negative := v < 0
	if negative {
		v = -v
	}
	for i := 0; i < width; i++ {
		rem := v % 3
		v /= 3
		switch rem {
		case 0:
			out[i] = Zero
		case 1:
			out[i] = Pos
		case 2:
			// balanced representation of remainder 2 is -1 with a carry
			out[i] = Neg
			v++
		}
	}
	if negative {
		out = negTrits(out)
	}
	return out
}

// maxValue returns (3^width - 1) / 2, the largest magnitude representable in
// width trits.
func maxValue(width int) int64 {
	p := int64(1)
	for i := 0; i < width; i++ {
		p *= 3
	}
	return (p - 1) / 2
}

// shiftLeftTrits inserts n zero trits at the low end, discarding the n
// highest trits; equivalent to multiplying by 3^n with truncation.
func shiftLeftTrits(a []Trit, n int) []Trit {
	width := len(a)
	out := make([]Trit, width)
	if n <= 0 {
		copy(out, a)
		return out
	}
	if n >= width {
		return out
	}
	for i := width - 1; i >= n; i-- {
		out[i] = a[i-n]
	}
	return out
}

// shiftRightTrits drops the low n trits and shifts the rest down. In
// balanced ternary this divides by 3^n rounding to the nearest integer,
// not toward zero: 2 (PN) shifted right by one gives 1.
func shiftRightTrits(a []Trit, n int) []Trit {
	width := len(a)
	out := make([]Trit, width)
	if n <= 0 {
		copy(out, a)
		return out
	}
	if n >= width {
		return out
	}
	for i := 0; i < width-n; i++ {
		out[i] = a[i+n]
	}
	return out
}

// multiplyTrits performs schoolbook balanced-ternary multiplication of two
// equal-length (n) operands, producing a 2n-trit product split into
// (low, high) halves of n trits each. Single-trit multiplication never
// carries, so each partial product is accumulated into the product buffer
// with ordinary ripple-carry addition.
func multiplyTrits(a, b []Trit) (low, high []Trit) {
	n := len(a)
	product := make([]Trit, 2*n)

	for i := 0; i < n; i++ {
		if a[i].IsZero() {
			continue
		}
		var carry Trit
		for j := 0; j < n; j++ {
			partial := a[i].Mul(b[j])
			sum1, c1 := product[i+j].FullAdd(partial, Zero)
			sum2, c2 := sum1.FullAdd(carry, Zero)
			product[i+j] = sum2
			carry = c1.Sum(c2)
		}
		for k := i + n; !carry.IsZero() && k < 2*n; k++ {
			sum, newCarry := product[k].FullAdd(carry, Zero)
			product[k] = sum
			carry = newCarry
		}
	}

	low = append([]Trit(nil), product[:n]...)
	high = append([]Trit(nil), product[n:]...)
	return low, high
}

// Comparison is the result of comparing two ternary words by canonical
// integer value.
type Comparison int

const (
	Less    Comparison = -1
	Equal   Comparison = 0
	Greater Comparison = 1
)

func compareInt64(a, b int64) Comparison {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}
