package isa

// opcodeInfo pairs an Op with its signed 3-trit code and mnemonic, the same
// literal-table style used for byte-keyed opcode tables elsewhere, adapted
// here to the Setun's 27-entry signed small-integer code space.
type opcodeInfo struct {
	op   Op
	code int
	name string
}

// opcodeTable is the canonical Setun opcode assignment.
var opcodeTable = []opcodeInfo{
	{HLT, 0, "HLT"},
	{ADD, 1, "ADD"},
	{SUB, -1, "SUB"},
	{MUL, 2, "MUL"},
	{DIV, -2, "DIV"},
	{LDA, 3, "LDA"},
	{STA, -3, "STA"},
	{LDF, 4, "LDF"},
	{STF, -4, "STF"},
	{JMP, 5, "JMP"},
	{LDAU, -5, "LDAU"},
	{JZ, 6, "JZ"},
	{JP, 7, "JP"},
	{JN, -7, "JN"},
	{NOP, 8, "NOP"},
	{SHL, 9, "SHL"},
	{SHR, -9, "SHR"},
	{LDR, 10, "LDR"},
	{STR, -10, "STR"},
	{ADDABS, 11, "ADDABS"},
	{SUBABS, -11, "SUBABS"},
	{XCHG, 12, "XCHG"},
	{JOP, 13, "JOP"},
	{JON, -13, "JON"},
	{TST, 14, "TST"},
}

var (
	infoByOp   = map[Op]opcodeInfo{}
	infoByCode = map[int]opcodeInfo{}
)

func init() {
	for _, info := range opcodeTable {
		infoByOp[info.op] = info
		infoByCode[info.code] = info
	}
}
