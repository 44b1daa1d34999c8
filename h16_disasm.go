package main

import (
	"fmt"
	"io"
)

var aluOpNames = [...]string{
	"T", "N", "T+N", "T&N", "T|N", "T^N", "~T", "T==N",
	"N<T", "N>>T", "T-1", "R", "[T]", "N<<T", "depth", "Nu<T",
	"rdepth", "T==0", "tx", "rx", "save", "bye",
}

// disassemble renders one instruction word.
func disassemble(w uint16) string {
	switch {
	case isLiteral(w):
		return fmt.Sprintf("lit     %d", literalValue(w))
	case isALU(w):
		op := aluOp(w)
		name := "?"
		if int(op) < len(aluOpNames) {
			name = aluOpNames[op]
		}
		s := fmt.Sprintf("alu     %s", name)
		if w&T_TO_N != 0 {
			s += " T->N"
		}
		if w&T_TO_R != 0 {
			s += " T->R"
		}
		if w&N_TO_ADDR_T != 0 {
			s += " N->[T]"
		}
		if w&R_TO_PC != 0 {
			s += " R->PC"
		}
		if d := stackDelta[aluDstack(w)]; d != 0 {
			s += fmt.Sprintf(" d%+d", d)
		}
		if r := stackDelta[aluRstack(w)]; r != 0 {
			s += fmt.Sprintf(" r%+d", r)
		}
		return s
	case isCall(w):
		return fmt.Sprintf("call    %04x", instrAddr(w))
	case is0Branch(w):
		return fmt.Sprintf("0branch %04x", instrAddr(w))
	default:
		return fmt.Sprintf("branch  %04x", instrAddr(w))
	}
}

// disassembleImage writes a full listing, one cell per line.
func disassembleImage(w io.Writer, cells []uint16) {
	for i, c := range cells {
		fmt.Fprintf(w, "%04x: %04x  %s\n", i, c, disassemble(c))
	}
}
