package isa

import "fmt"

// DecodeError reports a 9-trit word whose high 3 trits do not match any
// assigned opcode.
type DecodeError struct {
	Opcode int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("isa: invalid opcode %d", e.Opcode)
}
