package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setun/ternary"
)

func TestDecodeHlt(t *testing.T) {
	instr, err := Decode(ternary.W9FromInt(0))
	require.NoError(t, err)
	assert.Equal(t, Bare(HLT), instr)
}

func TestAddrModeRoundTrip(t *testing.T) {
	for _, mode := range []AddrMode{Direct, IndexAdd, IndexSub} {
		assert.Equal(t, mode, ModeFromTrit(mode.Trit()))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []Instruction{
		Bare(HLT),
		Bare(NOP),
		Bare(TST),
		Addressed(ADD, ternary.W9FromInt(10), Direct),
		Addressed(SUB, ternary.W9FromInt(121), IndexAdd),
		Addressed(JMP, ternary.W9FromInt(-5), IndexAdd),
		Addressed(JMP, ternary.W9FromInt(-121), IndexSub),
		Addressed(DIV, ternary.W9FromInt(0), Direct),
		Addressed(XCHG, ternary.W9FromInt(7), IndexSub),
		Shift(SHL, 2),
		Shift(SHR, -2),
	}

	for _, instr := range cases {
		encoded := Encode(instr)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, instr, decoded, "instruction %v", instr)
	}
}

func TestEncodeDecodeRoundTripAllAddresses(t *testing.T) {
	for addr := -121; addr <= 121; addr++ {
		for _, mode := range []AddrMode{Direct, IndexAdd, IndexSub} {
			instr := Addressed(LDA, ternary.W9FromInt(addr), mode)
			decoded, err := Decode(Encode(instr))
			require.NoError(t, err)
			assert.Equal(t, instr, decoded)
		}
	}
}

func TestDecodeInvalidOpcode(t *testing.T) {
	// Opcode value -12 is not assigned to any instruction.
	opWord := ternary.W9FromInt(-12)
	opTrits := opWord.Trits()
	var full [9]ternary.Trit
	full[6], full[7], full[8] = opTrits[0], opTrits[1], opTrits[2]
	instrWord := ternary.W9FromTrits(full)

	_, err := Decode(instrWord)
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, -12, decodeErr.Opcode)
}

func TestShiftEncodeUsesDirectMode(t *testing.T) {
	encoded := Encode(Shift(SHL, 3))
	assert.Equal(t, ternary.Zero, encoded.Trits()[5], "mode trit must be O")
	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, Shift(SHL, 3), decoded)
}

func TestHltNopTstEncodeWithZeroOperand(t *testing.T) {
	for _, op := range []Op{HLT, NOP, TST} {
		encoded := Encode(Bare(op))
		trits := encoded.Trits()
		assert.Equal(t, ternary.Zero, trits[5], "mode trit must be O")
		for i := 0; i < 5; i++ {
			assert.Equal(t, ternary.Zero, trits[i], "operand trit %d must be O", i)
		}
	}
}
