// cpu_h16.go - H16 CPU simulation core

package main

import (
	"errors"
	"io"
	"log"
)

// errNoData is returned by an input callback when no byte is currently
// available. The CPU reports it to the host as STATUS_AGAIN without
// committing any state, so re-entering Run resumes on the same RX
// instruction.
var errNoData = errors.New("console: no data available")

// H16CPU simulates the H16 stack machine. The program, the data stack and
// the return stack all live in the same core array; sp and rp are plain
// cell indices into it. There is deliberately no overflow or underflow
// trapping: a runaway stack wraps into adjacent core, which is a property
// of the hardware, not a simulation shortcut.
type H16CPU struct {
	core [CORE_CELLS]uint16
	pc   uint16
	tos  uint16
	sp   uint16
	rp   uint16

	// Host callbacks. getch may return errNoData or io.EOF; putch and
	// save report failures that abort the run with STATUS_ERROR.
	getch func() (byte, error)
	putch func(byte) error
	save  func([]uint16) error

	trace *log.Logger
}

// NewH16CPU returns a CPU with reset state and the reset-vector prefix in
// place: every cell below START_ADDR branches to START_ADDR, so an
// accidental reset lands in user code.
func NewH16CPU() *H16CPU {
	cpu := &H16CPU{
		pc: START_ADDR,
		sp: VARIABLE_STACK_START,
		rp: RETURN_STACK_START,
	}
	for i := 0; i < START_ADDR; i++ {
		cpu.core[i] = composeBranch(START_ADDR)
	}
	return cpu
}

// SetConsole installs the byte input and output callbacks.
func (cpu *H16CPU) SetConsole(getch func() (byte, error), putch func(byte) error) {
	cpu.getch = getch
	cpu.putch = putch
}

// SetSaveHandler installs the callback invoked by the SAVE instruction.
func (cpu *H16CPU) SetSaveHandler(save func([]uint16) error) {
	cpu.save = save
}

// SetTrace enables a per-instruction execution trace.
func (cpu *H16CPU) SetTrace(l *log.Logger) {
	cpu.trace = l
}

// LoadImage copies an image into the start of core.
func (cpu *H16CPU) LoadImage(cells []uint16) {
	copy(cpu.core[:], cells)
}

func forthBool(b bool) uint16 {
	if b {
		return 0xFFFF
	}
	return 0
}

// Run executes instructions until a BYE, an input EOF, a no-data
// indication or an I/O failure. See the STATUS_* constants for the return
// value convention. State is preserved across returns, so the host can
// sleep and re-enter after STATUS_AGAIN.
func (cpu *H16CPU) Run() int {
	for {
		w := cpu.core[cpu.pc]
		if cpu.trace != nil {
			cpu.trace.Printf("pc=%04x instr=%04x tos=%04x sp=%04x rp=%04x",
				cpu.pc, w, cpu.tos, cpu.sp, cpu.rp)
		}
		npc := (cpu.pc + 1) % MAX_PROGRAM

		switch {
		case isLiteral(w):
			cpu.sp = (cpu.sp + 1) % CORE_CELLS
			cpu.core[cpu.sp] = cpu.tos
			cpu.tos = literalValue(w)
			cpu.pc = npc

		case isALU(w):
			tos, nos := cpu.tos, cpu.core[cpu.sp]
			rtop := cpu.core[cpu.rp]
			if w&R_TO_PC != 0 {
				// Return addresses are byte addresses; shift back
				// down to a cell index on use.
				npc = (rtop >> 1) % MAX_PROGRAM
			}

			var t uint16
			switch aluOp(w) {
			case ALU_OP_T:
				t = tos
			case ALU_OP_N:
				t = nos
			case ALU_OP_T_PLUS_N:
				t = tos + nos
			case ALU_OP_T_AND_N:
				t = tos & nos
			case ALU_OP_T_OR_N:
				t = tos | nos
			case ALU_OP_T_XOR_N:
				t = tos ^ nos
			case ALU_OP_T_INVERT:
				t = ^tos
			case ALU_OP_T_EQUAL_N:
				t = forthBool(tos == nos)
			case ALU_OP_N_LESS_T_SIGNED:
				t = forthBool(int16(nos) < int16(tos))
			case ALU_OP_N_RSHIFT_T:
				t = nos >> tos
			case ALU_OP_T_DECREMENT:
				t = tos - 1
			case ALU_OP_R:
				t = rtop
			case ALU_OP_T_LOAD:
				t = cpu.core[(tos>>1)%CORE_CELLS]
			case ALU_OP_N_LSHIFT_T:
				t = nos << tos
			case ALU_OP_DEPTH:
				t = cpu.sp - VARIABLE_STACK_START
			case ALU_OP_N_ULESS_T:
				t = forthBool(nos < tos)
			case ALU_OP_RDEPTH:
				t = cpu.rp - RETURN_STACK_START
			case ALU_OP_T_EQUAL_0:
				t = forthBool(tos == 0)
			case ALU_OP_TX:
				if err := cpu.putch(byte(tos)); err != nil {
					return STATUS_ERROR
				}
				t = nos
			case ALU_OP_RX:
				b, err := cpu.getch()
				switch {
				case err == io.EOF:
					return 0
				case err == errNoData:
					// Nothing committed: pc still addresses this
					// RX, so the host can re-enter after a sleep.
					return STATUS_AGAIN
				case err != nil:
					return STATUS_ERROR
				}
				t = uint16(b)
			case ALU_OP_SAVE:
				if cpu.save != nil {
					if err := cpu.save(cpu.core[:]); err != nil {
						return STATUS_ERROR
					}
				}
				t = tos
			case ALU_OP_BYE:
				cpu.pc = npc
				return int(tos)
			default:
				t = tos
			}

			// Stack pointers wrap circularly into adjacent core on
			// overflow or underflow; nothing traps.
			cpu.sp = uint16(int(cpu.sp)+stackDelta[aluDstack(w)]) % CORE_CELLS
			cpu.rp = uint16(int(cpu.rp)+stackDelta[aluRstack(w)]) % CORE_CELLS
			if w&T_TO_R != 0 {
				cpu.core[cpu.rp] = tos
			}
			if w&T_TO_N != 0 {
				cpu.core[cpu.sp] = tos
			}
			if w&N_TO_ADDR_T != 0 {
				cpu.core[(tos>>1)%CORE_CELLS] = nos
			}
			cpu.tos = t
			cpu.pc = npc

		case isCall(w):
			cpu.rp = (cpu.rp + 1) % CORE_CELLS
			cpu.core[cpu.rp] = npc << 1
			cpu.pc = instrAddr(w)

		case is0Branch(w):
			v := cpu.tos
			cpu.tos = cpu.core[cpu.sp]
			cpu.sp = (cpu.sp - 1) % CORE_CELLS
			if v == 0 {
				cpu.pc = instrAddr(w) % MAX_PROGRAM
			} else {
				cpu.pc = npc
			}

		default: // unconditional branch
			cpu.pc = instrAddr(w)
		}
	}
}
