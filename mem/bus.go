// Package mem implements the Setun's 162-cell memory bus: a flat array of
// 9-trit words addressed by a signed ternary address in [-81, +80].
package mem

import (
	"github.com/golang/glog"

	"setun/ternary"
)

// Size is the number of 9-trit cells in Setun memory.
const Size = 162

// addrLow and addrHigh are the machine's signed cell address bounds.
const (
	addrLow  = -81
	addrHigh = 80
)

// origin is the offset added to a signed address to get an array index;
// address 0 maps to the middle of the array.
const origin = 81

// Bus is the central memory object the engine owns. Every cell is a full
// ternary.W9 word — there is no sub-word addressing in the Setun.
type Bus struct {
	cells [Size]ternary.W9
}

// Read returns the raw cell at array index i (0..161), with no address
// translation. Engine.Step does not use it: it fetches through ReadAddr,
// which translates C to an index.
func (b *Bus) Read(i int) ternary.W9 { return b.cells[i] }

// Write stores a raw cell at array index i.
func (b *Bus) Write(i int, v ternary.W9) { b.cells[i] = v }

// ReadAddr reads the cell at signed ternary address addr, translating
// through the canonical index mapping. AddressOutOfRange is returned if
// addr falls outside [-81, +80].
func (b *Bus) ReadAddr(addr ternary.W9) (ternary.W9, error) {
	i, err := indexOf(addr)
	if err != nil {
		return ternary.ZeroW9, err
	}
	return b.cells[i], nil
}

// WriteAddr writes the cell at signed ternary address addr.
func (b *Bus) WriteAddr(addr ternary.W9, v ternary.W9) error {
	i, err := indexOf(addr)
	if err != nil {
		return err
	}
	b.cells[i] = v
	return nil
}

// indexOf maps a signed ternary cell address to an array index, returning
// AddressOutOfRange if the address leaves the machine's legal range.
func indexOf(addr ternary.W9) (int, error) {
	signed := addr.Int()
	if signed < addrLow || signed > addrHigh {
		return 0, &AddressOutOfRange{Addr: signed}
	}
	return int(signed) + origin, nil
}

// IndexToAddr converts an array index back to its signed cell address, the
// inverse of indexOf; used by disassembler/debugger accessors.
func IndexToAddr(i int) ternary.W9 {
	return ternary.W9FromInt(i - origin)
}

// LoadProgram overwrites a contiguous run of cells starting at array index
// start with program, refusing if the run would not fit. The usual
// convention is start=81, so C=0 points at the first loaded cell.
func (b *Bus) LoadProgram(start int, program []ternary.W9) error {
	if start+len(program) > Size {
		return &ProgramTooLarge{Size: len(program), Available: Size - start}
	}
	for i, word := range program {
		b.cells[start+i] = word
	}
	glog.V(1).Infof("mem: loaded %d cells at index %d (address %d)", len(program), start, IndexToAddr(start).Int())
	return nil
}

// Dump returns (index, cell) pairs for the inclusive-exclusive range
// [start, start+count), clamped to the memory size. A read-only debugging
// accessor, ported from the Rust original's Memory::dump.
func (b *Bus) Dump(start, count int) []CellAt {
	end := start + count
	if end > Size {
		end = Size
	}
	out := make([]CellAt, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, CellAt{Index: i, Cell: b.cells[i]})
	}
	return out
}

// CellAt pairs a memory index with its current contents.
type CellAt struct {
	Index int
	Cell  ternary.W9
}

// Clear zeroes every cell, used by Engine.Reset.
func (b *Bus) Clear() {
	for i := range b.cells {
		b.cells[i] = ternary.ZeroW9
	}
	glog.V(1).Infof("mem: cleared %d cells", Size)
}
