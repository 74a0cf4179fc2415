// Package ternary implements balanced-ternary digit and word algebra: the
// leaf-layer numeric kernel of the Setun emulator core. A Trit carries one
// of three values; fixed-width Words (W9, W18, W5) are built from ordered
// Trit slices the way a byte is built from bits.
package ternary

import "fmt"

// Trit is a single balanced-ternary digit: Neg (-1), Zero (0), or Pos (+1).
// Unlike a bit, a Trit carries its own sign; there is no separate sign flag
// anywhere in this kernel.
type Trit int8

const (
	Neg  Trit = -1
	Zero Trit = 0
	Pos  Trit = 1
)

// All lists every Trit value in canonical N, O, P order, for property tests
// and table construction.
var All = [3]Trit{Neg, Zero, Pos}

// FromInt builds a Trit from an integer value in {-1, 0, 1}. It panics
// outside that range; callers that parse untrusted input should validate
// first (see FromLetter).
func FromInt(v int) Trit {
	switch v {
	case -1:
		return Neg
	case 0:
		return Zero
	case 1:
		return Pos
	default:
		panic(fmt.Sprintf("ternary: invalid trit value %d (must be -1, 0, or 1)", v))
	}
}

// FromLetter parses the textual digit alphabet fixed by the instruction
// stream file format: N/O/P, case-insensitive.
func FromLetter(r rune) (Trit, bool) {
	switch r {
	case 'N', 'n':
		return Neg, true
	case 'O', 'o':
		return Zero, true
	case 'P', 'p':
		return Pos, true
	default:
		return 0, false
	}
}

// Letter renders the trit in the canonical N/O/P alphabet.
func (t Trit) Letter() byte {
	switch t {
	case Neg:
		return 'N'
	case Pos:
		return 'P'
	default:
		return 'O'
	}
}

// String renders the trit as -/0/+, matching the display form used by the
// original machine's printouts.
func (t Trit) String() string {
	switch t {
	case Neg:
		return "-"
	case Pos:
		return "+"
	default:
		return "0"
	}
}

// Int returns the integer value of the trit.
func (t Trit) Int() int { return int(t) }

// Neg returns the negation of t (N<->P, O fixed).
func (t Trit) Neg() Trit { return -t }

// Min returns the ternary-AND of two trits: the lesser value.
func (t Trit) Min(o Trit) Trit {
	if t <= o {
		return t
	}
	return o
}

// Max returns the ternary-OR of two trits: the greater value.
func (t Trit) Max(o Trit) Trit {
	if t >= o {
		return t
	}
	return o
}

// Consensus returns t if both trits agree, else Zero.
func (t Trit) Consensus(o Trit) Trit {
	if t == o {
		return t
	}
	return Zero
}

// Any returns the first non-zero trit of the pair, preferring t.
func (t Trit) Any(o Trit) Trit {
	if t != Zero {
		return t
	}
	return o
}

// Sum is the half-adder sum of t and o: (t+o) mod 3, normalized to {-1,0,1}.
func (t Trit) Sum(o Trit) Trit {
	switch t.Int() + o.Int() {
	case -2:
		return Pos
	case -1:
		return Neg
	case 0:
		return Zero
	case 1:
		return Pos
	case 2:
		return Neg
	default:
		panic("ternary: unreachable trit sum")
	}
}

// Carry is the half-adder carry out of adding t and o.
func (t Trit) Carry(o Trit) Trit {
	switch t.Int() + o.Int() {
	case -2:
		return Neg
	case 2:
		return Pos
	default:
		return Zero
	}
}

// FullAdd adds three trits (t, o, carryIn) and returns (sum, carryOut).
func (t Trit) FullAdd(o, carryIn Trit) (sum, carryOut Trit) {
	s1 := t.Sum(o)
	c1 := t.Carry(o)
	sum = s1.Sum(carryIn)
	c2 := s1.Carry(carryIn)
	// c1 and c2 are never both Pos or both Neg in the same full add, so
	// this sum never wraps and equals the true combined carry.
	carryOut = c1.Sum(c2)
	return sum, carryOut
}

// Mul is single-trit multiplication, which never carries.
func (t Trit) Mul(o Trit) Trit {
	if t == Zero || o == Zero {
		return Zero
	}
	if t == o {
		return Pos
	}
	return Neg
}

// IsZero reports whether t is Zero.
func (t Trit) IsZero() bool { return t == Zero }

// IsPositive reports whether t is Pos.
func (t Trit) IsPositive() bool { return t == Pos }

// IsNegative reports whether t is Neg.
func (t Trit) IsNegative() bool { return t == Neg }
