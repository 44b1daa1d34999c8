package main

// builtInWord is one entry of the bundled primitive list expanded by the
// .built-in directive. Entries with compile set (and not hidden) receive a
// dictionary header; every entry is inserted as a call symbol pointing at
// its expansion.
type builtInWord struct {
	name    string
	compile bool
	hidden  bool
	code    []uint16
}

// builtInWords is the primitive vocabulary an eForth image builds on. The
// return-stack words carry compile=false: called through a header they
// would clobber their own return address, so they exist as symbols only
// and source code reaches the behavior through the inline mnemonics.
var builtInWords = []builtInWord{
	{"nop", true, false, []uint16{CODE_NOP}},
	{"dup", true, false, []uint16{CODE_DUP}},
	{"over", true, false, []uint16{CODE_OVER}},
	{"invert", true, false, []uint16{CODE_INVERT}},
	{"+", true, false, []uint16{CODE_ADD}},
	{"swap", true, false, []uint16{CODE_SWAP}},
	{"nip", true, false, []uint16{CODE_NIP}},
	{"drop", true, false, []uint16{CODE_DROP}},
	{"exit", false, false, []uint16{CODE_EXIT}},
	{">r", false, false, []uint16{CODE_TO_R}},
	{"r>", false, false, []uint16{CODE_FROM_R}},
	{"r@", false, false, []uint16{CODE_R_AT}},
	{"@", true, false, []uint16{CODE_LOAD}},
	{"!", true, false, []uint16{CODE_STORE, CODE_DROP}},
	{"rshift", true, false, []uint16{CODE_RSHIFT}},
	{"lshift", true, false, []uint16{CODE_LSHIFT}},
	{"=", true, false, []uint16{CODE_EQUAL}},
	{"u<", true, false, []uint16{CODE_ULESS}},
	{"<", true, false, []uint16{CODE_LESS}},
	{"and", true, false, []uint16{CODE_AND}},
	{"xor", true, false, []uint16{CODE_XOR}},
	{"or", true, false, []uint16{CODE_OR}},
	{"depth", true, false, []uint16{CODE_DEPTH}},
	{"1-", true, false, []uint16{CODE_DECREMENT}},
	{"rdepth", true, false, []uint16{CODE_RDEPTH}},
	{"0=", true, false, []uint16{CODE_ZERO_EQUAL}},
	{"tx!", true, false, []uint16{CODE_TX}},
	{"rx?", true, false, []uint16{CODE_RX}},
	{"save", true, false, []uint16{CODE_SAVE}},
	{"bye", true, false, []uint16{CODE_BYE}},
}
