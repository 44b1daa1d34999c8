// h16_constants.go - H16 CPU memory map, instruction encoding and assembler constants

package main

const (
	// Memory geometry. The core is byte-addressed externally and
	// word-addressed internally: byte address B lives in cell B>>1.
	MAX_MEMORY  = 32768          // bytes of core
	CORE_CELLS  = MAX_MEMORY / 2 // 16-bit cells
	MAX_PROGRAM = 8192           // cells reachable through the 13-bit address field
	START_ADDR  = 8              // reset vector target, cell index

	// The data and return stacks live inside the same core array as the
	// program, at fixed offsets near the top. Both grow upward.
	STK_SIZE             = 64
	VARIABLE_STACK_START = CORE_CELLS - 2*STK_SIZE
	RETURN_STACK_START   = CORE_CELLS - STK_SIZE
)

const (
	// Instruction class bases, decoded by the top three bits.
	OP_BRANCH  = 0x0000
	OP_0BRANCH = 0x2000
	OP_CALL    = 0x4000
	OP_ALU_OP  = 0x6000
	OP_LITERAL = 0x8000

	// ALU word flag bits. The ALU op code occupies bits 12:8, the
	// return-stack delta code bits 3:2 and the data-stack delta code
	// bits 1:0.
	R_TO_PC     = 1 << 4
	N_TO_ADDR_T = 1 << 5
	T_TO_R      = 1 << 6
	T_TO_N      = 1 << 7
)

// ALU op codes, bits 12:8 of an ALU word.
const (
	ALU_OP_T = iota
	ALU_OP_N
	ALU_OP_T_PLUS_N
	ALU_OP_T_AND_N
	ALU_OP_T_OR_N
	ALU_OP_T_XOR_N
	ALU_OP_T_INVERT
	ALU_OP_T_EQUAL_N
	ALU_OP_N_LESS_T_SIGNED
	ALU_OP_N_RSHIFT_T
	ALU_OP_T_DECREMENT
	ALU_OP_R
	ALU_OP_T_LOAD
	ALU_OP_N_LSHIFT_T
	ALU_OP_DEPTH
	ALU_OP_N_ULESS_T
	ALU_OP_RDEPTH
	ALU_OP_T_EQUAL_0
	ALU_OP_TX
	ALU_OP_RX
	ALU_OP_SAVE
	ALU_OP_BYE
)

// Stack delta codes. {0,1,2,3} decode to {0,+1,-2,-1}: the two negative
// deltas are two's-complement encodings in a 2-bit field. This table is a
// hardware convention shared by the assembler and the simulator.
var stackDelta = [4]int{0, 1, -2, -1}

// Single-word instructions for the assembler mnemonics. Delta codes are
// written directly: dstack in bits 1:0, rstack in bits 3:2.
const (
	CODE_NOP        = OP_ALU_OP | ALU_OP_T<<8
	CODE_DUP        = OP_ALU_OP | ALU_OP_T<<8 | T_TO_N | 0x1
	CODE_OVER       = OP_ALU_OP | ALU_OP_N<<8 | T_TO_N | 0x1
	CODE_INVERT     = OP_ALU_OP | ALU_OP_T_INVERT<<8
	CODE_ADD        = OP_ALU_OP | ALU_OP_T_PLUS_N<<8 | 0x3
	CODE_SWAP       = OP_ALU_OP | ALU_OP_N<<8 | T_TO_N
	CODE_NIP        = OP_ALU_OP | ALU_OP_T<<8 | 0x3
	CODE_DROP       = OP_ALU_OP | ALU_OP_N<<8 | 0x3
	CODE_EXIT       = OP_ALU_OP | ALU_OP_T<<8 | R_TO_PC | 0xC
	CODE_TO_R       = OP_ALU_OP | ALU_OP_N<<8 | T_TO_R | 0x4 | 0x3
	CODE_FROM_R     = OP_ALU_OP | ALU_OP_R<<8 | T_TO_N | 0xC | 0x1
	CODE_R_AT       = OP_ALU_OP | ALU_OP_R<<8 | T_TO_N | 0x1
	CODE_LOAD       = OP_ALU_OP | ALU_OP_T_LOAD<<8
	CODE_STORE      = OP_ALU_OP | ALU_OP_N<<8 | N_TO_ADDR_T | 0x3
	CODE_RSHIFT     = OP_ALU_OP | ALU_OP_N_RSHIFT_T<<8 | 0x3
	CODE_LSHIFT     = OP_ALU_OP | ALU_OP_N_LSHIFT_T<<8 | 0x3
	CODE_EQUAL      = OP_ALU_OP | ALU_OP_T_EQUAL_N<<8 | 0x3
	CODE_ULESS      = OP_ALU_OP | ALU_OP_N_ULESS_T<<8 | 0x3
	CODE_LESS       = OP_ALU_OP | ALU_OP_N_LESS_T_SIGNED<<8 | 0x3
	CODE_AND        = OP_ALU_OP | ALU_OP_T_AND_N<<8 | 0x3
	CODE_XOR        = OP_ALU_OP | ALU_OP_T_XOR_N<<8 | 0x3
	CODE_OR         = OP_ALU_OP | ALU_OP_T_OR_N<<8 | 0x3
	CODE_DEPTH      = OP_ALU_OP | ALU_OP_DEPTH<<8 | T_TO_N | 0x1
	CODE_DECREMENT  = OP_ALU_OP | ALU_OP_T_DECREMENT<<8
	CODE_RDEPTH     = OP_ALU_OP | ALU_OP_RDEPTH<<8 | T_TO_N | 0x1
	CODE_ZERO_EQUAL = OP_ALU_OP | ALU_OP_T_EQUAL_0<<8
	CODE_TX         = OP_ALU_OP | ALU_OP_TX<<8 | 0x3
	CODE_RX         = OP_ALU_OP | ALU_OP_RX<<8 | T_TO_N | 0x1
	CODE_SAVE       = OP_ALU_OP | ALU_OP_SAVE<<8
	CODE_BYE        = OP_ALU_OP | ALU_OP_BYE<<8
	CODE_RDROP      = OP_ALU_OP | ALU_OP_T<<8 | 0xC
)

const (
	// Definition flag bits, shared between AST nodes and word headers.
	// IMMEDIATE and INLINE are stored in the top bits of a header's link
	// cell, shifted left by 13.
	FLAG_HIDDEN    = 1
	FLAG_IMMEDIATE = 2
	FLAG_INLINE    = 4
)

const (
	// Assembler mode word, set by the .mode directive.
	MODE_COMPILE_WORD_HEADER = 1 << 0
	MODE_OPTIMIZATION_ON     = 1 << 1

	DEFAULT_MODE = MODE_COMPILE_WORD_HEADER | MODE_OPTIMIZATION_ON
)

const (
	// Run returns the low 16 bits of T on BYE, 0 on input EOF or ESCAPE,
	// STATUS_AGAIN when the input callback has no data (the host should
	// sleep briefly and re-enter), and STATUS_ERROR on an I/O failure.
	STATUS_AGAIN = 1
	STATUS_ERROR = -1
)

const (
	MAX_IDENTIFIER  = 256 // lexer identifier buffer
	MAX_NAME_LENGTH = 255 // packed word-header name limit
	ESCAPE          = 27  // console byte that forces a clean exit
)

// FORTH_BLOCK is the conventional path of the memory image file.
const FORTH_BLOCK = "forth.blk"
