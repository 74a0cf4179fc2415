package mem

import "fmt"

// AddressOutOfRange reports a signed ternary address that falls outside
// the machine's legal cell range of [-81, +80].
type AddressOutOfRange struct {
	Addr int64
}

func (e *AddressOutOfRange) Error() string {
	return fmt.Sprintf("mem: address %d out of range (-81 to +80)", e.Addr)
}

// ProgramTooLarge reports a program load that would not fit in the
// remaining space starting at the requested index.
type ProgramTooLarge struct {
	Size      int
	Available int
}

func (e *ProgramTooLarge) Error() string {
	return fmt.Sprintf("mem: program size %d exceeds available space %d", e.Size, e.Available)
}
