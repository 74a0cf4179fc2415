// Package isa implements the Setun's 9-trit instruction format: the typed
// Instruction sum type, the opcode table, and bidirectional encode/decode
// between Instruction values and ternary.W9 instruction words.
package isa

import "setun/ternary"

// AddrMode selects how the F index register modifies an instruction's
// operand address before use.
type AddrMode int

const (
	// Direct uses the operand address unchanged (mode trit O).
	Direct AddrMode = iota
	// IndexAdd adds F to the operand address (mode trit P).
	IndexAdd
	// IndexSub subtracts F from the operand address (mode trit N).
	IndexSub
)

// ModeFromTrit maps the mode trit of an instruction word to an AddrMode.
func ModeFromTrit(t ternary.Trit) AddrMode {
	switch t {
	case ternary.Pos:
		return IndexAdd
	case ternary.Neg:
		return IndexSub
	default:
		return Direct
	}
}

// Trit is the inverse of ModeFromTrit, used by encode.
func (m AddrMode) Trit() ternary.Trit {
	switch m {
	case IndexAdd:
		return ternary.Pos
	case IndexSub:
		return ternary.Neg
	default:
		return ternary.Zero
	}
}

func (m AddrMode) String() string {
	switch m {
	case IndexAdd:
		return "IndexAdd"
	case IndexSub:
		return "IndexSub"
	default:
		return "Direct"
	}
}
