// Package cpu implements the Setun execution engine: the register file,
// the fetch-decode-execute cycle, and the run/halt/error state machine
// that drives the balanced-ternary instruction set.
package cpu

import "setun/ternary"

// Registers is the Setun's 5-register file:
//
//	S: W18 accumulator, mutated by arithmetic and transfer
//	R: W18 register receiving MUL's low product half and DIV's remainder
//	F: W5 index register, participates in effective-address computation
//	C: W9 program counter
//	Omega: a single trit recording the sign of S after signalling ops
type Registers struct {
	S     ternary.W18
	R     ternary.W18
	F     ternary.W5
	C     ternary.W9
	Omega ternary.Trit
}

// Reset zeroes every register.
func (r *Registers) Reset() {
	*r = Registers{}
}

// SetOmegaFromS sets Omega to the current sign of S. Called after every
// instruction that signals through Omega.
func (r *Registers) SetOmegaFromS() {
	r.Omega = r.S.Sign()
}

// AdvancePC increments C by one cell and returns the pre-increment value,
// matching the fetch step's "advance before decode" ordering.
func (r *Registers) AdvancePC() ternary.W9 {
	old := r.C
	r.C = ternary.W9FromInt(int(r.C.Int()) + 1)
	return old
}

// Jump sets C to an absolute address, used by JMP and the taken branches.
func (r *Registers) Jump(addr ternary.W9) {
	r.C = addr
}

// EffectiveAddress applies the addressing-mode trit to base, modifying by
// F as directed: unchanged for Direct, +F for IndexAdd, -F for
// IndexSub.
func (r *Registers) EffectiveAddress(base ternary.W9, mode ternary.Trit) ternary.W9 {
	b := base.Int()
	f := r.F.Int()
	var eff int64
	switch mode {
	case ternary.Pos:
		eff = b + f
	case ternary.Neg:
		eff = b - f
	default:
		eff = b
	}
	return ternary.W9FromInt(int(eff))
}
