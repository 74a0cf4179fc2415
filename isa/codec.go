package isa

import "setun/ternary"

// Decode extracts the typed Instruction from a 9-trit instruction word.
// The opcode field occupies the high 3 trits (8..6), the address mode the
// next trit (5), and the operand address the low 5 trits (4..0). Shifts
// reuse the operand field as a signed shift count.
func Decode(word ternary.W9) (Instruction, error) {
	trits := word.Trits()

	opVal := int(trits[8].Int())*9 + int(trits[7].Int())*3 + int(trits[6].Int())
	mode := ModeFromTrit(trits[5])

	var addrTrits [9]ternary.Trit
	copy(addrTrits[:5], trits[:5])
	addr := ternary.W9FromTrits(addrTrits)

	info, ok := infoByCode[opVal]
	if !ok {
		return Instruction{}, &DecodeError{Opcode: opVal}
	}

	switch {
	case info.op.shifted():
		return Shift(info.op, int(addr.Int())), nil
	case info.op.addressed():
		return Addressed(info.op, addr, mode), nil
	default:
		return Bare(info.op), nil
	}
}

// Encode is the inverse of Decode: it packs an Instruction back into a
// 9-trit word. HLT/NOP/TST always encode with mode=Direct and operand=0;
// SHL/SHR encode their count in the operand field with mode=Direct.
func Encode(instr Instruction) ternary.W9 {
	info := infoByOp[instr.Op]

	var trits [9]ternary.Trit

	switch {
	case instr.Op.shifted():
		countWord := ternary.W9FromInt(instr.Count)
		copy(trits[:5], countWord.Trits()[:5])
		trits[5] = Direct.Trit()
	case instr.Op.addressed():
		addrTrits := instr.Addr.Trits()
		copy(trits[:5], addrTrits[:5])
		trits[5] = instr.Mode.Trit()
	default:
		trits[5] = Direct.Trit()
	}

	opTrits := ternary.W9FromInt(info.code).Trits()
	trits[6] = opTrits[0]
	trits[7] = opTrits[1]
	trits[8] = opTrits[2]

	return ternary.W9FromTrits(trits)
}
