package cpu

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/golang/glog"

	"setun/isa"
	"setun/mem"
	"setun/ternary"
)

// State is the engine's run/halt/error state machine.
type State int

const (
	Running State = iota
	Halted
	Error
)

func (s State) String() string {
	switch s {
	case Halted:
		return "Halted"
	case Error:
		return "Error"
	default:
		return "Running"
	}
}

// Engine owns one Setun machine's registers and memory and drives its
// fetch-decode-execute cycle. It is single-threaded and fully synchronous:
// Step runs to completion with no suspension points. Engine
// values are never shared between goroutines; independent engines may run
// concurrently, one per goroutine, with no synchronization between them.
type Engine struct {
	Regs   Registers
	Mem    mem.Bus
	State  State
	Cycles uint64

	lastInstr    isa.Instruction
	hasLastInstr bool
}

// New returns a fresh engine with all cells and registers at zero and
// State = Running.
func New() *Engine {
	return &Engine{State: Running}
}

// Reset re-zeroes every register and memory cell and returns the engine to
// Running, an explicit external reset.
func (e *Engine) Reset() {
	e.Regs.Reset()
	e.Mem.Clear()
	e.State = Running
	e.Cycles = 0
	e.hasLastInstr = false
	glog.V(1).Infof("cpu: engine reset")
}

// LoadProgram writes program into memory starting at cell index start,
// refusing if it would not fit. Loading at index 81 (the "address 0" cell)
// leaves C=0 pointing at the first instruction.
func (e *Engine) LoadProgram(start int, program []ternary.W9) error {
	return e.Mem.LoadProgram(start, program)
}

// LastInstruction returns the most recently executed instruction and
// whether one has executed yet, for disassembler/debugger accessors.
func (e *Engine) LastInstruction() (isa.Instruction, bool) {
	return e.lastInstr, e.hasLastInstr
}

// Dump renders engine state (registers, cycle count, run state) as a
// deterministic debug string for a disassembler/debugger collaborator;
// it never formats memory contents beyond what Mem.Dump separately
// exposes, keeping this cheap to call every step.
func (e *Engine) Dump() string {
	return spew.Sdump(e.Regs, e.State, e.Cycles)
}

// Step runs one fetch-decode-execute cycle:
//  1. refuse if not Running
//  2. fetch the cell at C
//  3. advance C by one, before decode/execute
//  4. decode the fetched word
//  5. execute it
//  6. bump the cycle counter and remember the instruction
//
// Any fatal error transitions State to Error before returning. On a decode
// or execute fault the PC has already advanced past the faulting word by
// design, so a debugger can see where execution would have continued; a
// fetch fault leaves C at the unreadable address.
func (e *Engine) Step() (isa.Instruction, error) {
	if e.State != Running {
		return isa.Instruction{}, &NotRunning{State: e.State}
	}

	raw, err := e.Mem.ReadAddr(e.Regs.C)
	if err != nil {
		e.State = Error
		return isa.Instruction{}, err
	}

	e.Regs.AdvancePC()

	instr, err := isa.Decode(raw)
	if err != nil {
		e.State = Error
		return isa.Instruction{}, err
	}

	if err := e.execute(instr); err != nil {
		e.State = Error
		return instr, err
	}

	e.Cycles++
	e.lastInstr = instr
	e.hasLastInstr = true

	return instr, nil
}

// Run steps while Running, returning on HLT or the first error.
func (e *Engine) Run() error {
	for e.State == Running {
		if _, err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// RunBounded steps at most max cycles, returning normally (nil error) if
// the budget expires with the engine still Running.
func (e *Engine) RunBounded(max uint64) error {
	limit := e.Cycles + max
	for e.State == Running && e.Cycles < limit {
		if _, err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// effectiveAddr resolves an address-carrying instruction's effective cell
// address.
func (e *Engine) effectiveAddr(instr isa.Instruction) ternary.W9 {
	return e.Regs.EffectiveAddress(instr.Addr, instr.Mode.Trit())
}

// execute dispatches a decoded instruction by exhaustive switch over its
// Op tag, one case per instruction's effect.
func (e *Engine) execute(instr isa.Instruction) error {
	switch instr.Op {

	case isa.ADD:
		operand, err := e.loadOperand(instr)
		if err != nil {
			return err
		}
		sum, _ := e.Regs.S.Add(operand)
		e.Regs.S = sum
		e.Regs.SetOmegaFromS()

	case isa.SUB:
		operand, err := e.loadOperand(instr)
		if err != nil {
			return err
		}
		diff, _ := e.Regs.S.Sub(operand)
		e.Regs.S = diff
		e.Regs.SetOmegaFromS()

	case isa.MUL:
		operand, err := e.loadOperand(instr)
		if err != nil {
			return err
		}
		low, high := e.Regs.S.Mul(operand)
		e.Regs.S = high
		e.Regs.R = low
		e.Regs.SetOmegaFromS()

	case isa.DIV:
		operand, err := e.loadOperand(instr)
		if err != nil {
			return err
		}
		if operand.IsZero() {
			return &DivisionByZero{}
		}
		quotient, remainder := e.Regs.S.QuoRem(operand)
		e.Regs.S = quotient
		e.Regs.R = remainder
		e.Regs.SetOmegaFromS()

	case isa.ADDABS:
		operand, err := e.loadOperand(instr)
		if err != nil {
			return err
		}
		sum, _ := e.Regs.S.Add(operand.Abs())
		e.Regs.S = sum
		e.Regs.SetOmegaFromS()

	case isa.SUBABS:
		operand, err := e.loadOperand(instr)
		if err != nil {
			return err
		}
		diff, _ := e.Regs.S.Sub(operand.Abs())
		e.Regs.S = diff
		e.Regs.SetOmegaFromS()

	case isa.LDA, isa.LDAU:
		// LDA and LDAU are aliases: balanced ternary's zero-extension and
		// sign-extension coincide, so there is no distinct unsigned load.
		cell, err := e.readCell(instr)
		if err != nil {
			return err
		}
		e.Regs.S = cell.ToW18()
		e.Regs.SetOmegaFromS()

	case isa.STA:
		addr := e.effectiveAddr(instr)
		if err := e.Mem.WriteAddr(addr, e.Regs.S.Low9()); err != nil {
			return err
		}

	case isa.LDF:
		cell, err := e.readCell(instr)
		if err != nil {
			return err
		}
		e.Regs.F = ternary.W5FromW9Low5(cell)

	case isa.STF:
		addr := e.effectiveAddr(instr)
		if err := e.Mem.WriteAddr(addr, e.Regs.F.ToW9()); err != nil {
			return err
		}

	case isa.LDR:
		cell, err := e.readCell(instr)
		if err != nil {
			return err
		}
		e.Regs.R = cell.ToW18()

	case isa.STR:
		addr := e.effectiveAddr(instr)
		if err := e.Mem.WriteAddr(addr, e.Regs.R.Low9()); err != nil {
			return err
		}

	case isa.XCHG:
		addr := e.effectiveAddr(instr)
		cell, err := e.Mem.ReadAddr(addr)
		if err != nil {
			return err
		}
		if err := e.Mem.WriteAddr(addr, e.Regs.S.Low9()); err != nil {
			return err
		}
		e.Regs.S = cell.ToW18()
		e.Regs.SetOmegaFromS()

	case isa.JMP:
		e.Regs.Jump(e.effectiveAddr(instr))

	case isa.JZ:
		if e.Regs.S.IsZero() {
			e.Regs.Jump(e.effectiveAddr(instr))
		}

	case isa.JP:
		if e.Regs.S.Sign() == ternary.Pos {
			e.Regs.Jump(e.effectiveAddr(instr))
		}

	case isa.JN:
		if e.Regs.S.Sign() == ternary.Neg {
			e.Regs.Jump(e.effectiveAddr(instr))
		}

	case isa.JOP:
		if e.Regs.Omega == ternary.Pos {
			e.Regs.Jump(e.effectiveAddr(instr))
		}

	case isa.JON:
		if e.Regs.Omega == ternary.Neg {
			e.Regs.Jump(e.effectiveAddr(instr))
		}

	case isa.HLT:
		e.State = Halted

	case isa.SHL:
		e.Regs.S = e.Regs.S.ShiftLeft(instr.Count)
		e.Regs.SetOmegaFromS()

	case isa.SHR:
		e.Regs.S = e.Regs.S.ShiftRight(instr.Count)
		e.Regs.SetOmegaFromS()

	case isa.NOP:
		// nothing

	case isa.TST:
		e.Regs.SetOmegaFromS()
	}

	return nil
}

// readCell reads the raw 9-trit cell at an instruction's effective
// address, for loads that need the cell itself (LDF takes its low 5
// trits; LDA/LDAU/LDR zero-extend it).
func (e *Engine) readCell(instr isa.Instruction) (ternary.W9, error) {
	return e.Mem.ReadAddr(e.effectiveAddr(instr))
}

// loadOperand reads an instruction's effective-address cell zero-extended
// to 18 trits, the form every arithmetic instruction operates on.
func (e *Engine) loadOperand(instr isa.Instruction) (ternary.W18, error) {
	cell, err := e.readCell(instr)
	if err != nil {
		return ternary.ZeroW18, err
	}
	return cell.ToW18(), nil
}
