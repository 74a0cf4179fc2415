package ternary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegationInvolution(t *testing.T) {
	for _, tr := range All {
		assert.Equal(t, tr, tr.Neg().Neg())
	}
}

func TestSumCommutativity(t *testing.T) {
	for _, a := range All {
		for _, b := range All {
			assert.Equal(t, a.Sum(b), b.Sum(a))
		}
	}
}

func TestMultiplicationTable(t *testing.T) {
	assert.Equal(t, Pos, Neg.Mul(Neg))
	assert.Equal(t, Zero, Neg.Mul(Zero))
	assert.Equal(t, Neg, Neg.Mul(Pos))

	assert.Equal(t, Zero, Zero.Mul(Neg))
	assert.Equal(t, Zero, Zero.Mul(Zero))
	assert.Equal(t, Zero, Zero.Mul(Pos))

	assert.Equal(t, Neg, Pos.Mul(Neg))
	assert.Equal(t, Zero, Pos.Mul(Zero))
	assert.Equal(t, Pos, Pos.Mul(Pos))
}

func TestFullAdder(t *testing.T) {
	sum, carry := Zero.FullAdd(Zero, Zero)
	assert.Equal(t, Zero, sum)
	assert.Equal(t, Zero, carry)

	sum, carry = Pos.FullAdd(Pos, Zero)
	assert.Equal(t, Neg, sum)
	assert.Equal(t, Pos, carry)

	sum, carry = Pos.FullAdd(Pos, Pos)
	assert.Equal(t, Zero, sum)
	assert.Equal(t, Pos, carry)

	sum, carry = Neg.FullAdd(Neg, Neg)
	assert.Equal(t, Zero, sum)
	assert.Equal(t, Neg, carry)
}

func TestConsensus(t *testing.T) {
	assert.Equal(t, Pos, Pos.Consensus(Pos))
	assert.Equal(t, Neg, Neg.Consensus(Neg))
	assert.Equal(t, Zero, Zero.Consensus(Zero))
	assert.Equal(t, Zero, Pos.Consensus(Neg))
	assert.Equal(t, Zero, Pos.Consensus(Zero))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, Neg, Pos.Min(Neg))
	assert.Equal(t, Pos, Pos.Max(Neg))
	assert.Equal(t, Zero, Zero.Min(Pos))
	assert.Equal(t, Zero, Zero.Max(Neg))
}

func TestLetterRoundtrip(t *testing.T) {
	for _, tr := range All {
		parsed, ok := FromLetter(rune(tr.Letter()))
		assert.True(t, ok)
		assert.Equal(t, tr, parsed)
	}
}

func TestFromLetterCaseInsensitive(t *testing.T) {
	for _, r := range []rune{'n', 'N', 'o', 'O', 'p', 'P'} {
		_, ok := FromLetter(r)
		assert.True(t, ok)
	}
	_, ok := FromLetter('x')
	assert.False(t, ok)
}
