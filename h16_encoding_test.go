package main

import "testing"

func TestEncodingPredicates(t *testing.T) {
	tests := []struct {
		w       uint16
		literal bool
		alu     bool
		call    bool
		zbranch bool
		branch  bool
	}{
		{0x8001, true, false, false, false, false},
		{0xFFFF, true, false, false, false, false},
		{CODE_EXIT, false, true, false, false, false},
		{CODE_BYE, false, true, false, false, false},
		{0x4008, false, false, true, false, false},
		{0x2008, false, false, false, true, false},
		{0x0008, false, false, false, false, true},
		{0x0000, false, false, false, false, true},
	}
	for _, tc := range tests {
		if got := isLiteral(tc.w); got != tc.literal {
			t.Errorf("isLiteral(%04x)=%v, want %v", tc.w, got, tc.literal)
		}
		if got := isALU(tc.w); got != tc.alu {
			t.Errorf("isALU(%04x)=%v, want %v", tc.w, got, tc.alu)
		}
		if got := isCall(tc.w); got != tc.call {
			t.Errorf("isCall(%04x)=%v, want %v", tc.w, got, tc.call)
		}
		if got := is0Branch(tc.w); got != tc.zbranch {
			t.Errorf("is0Branch(%04x)=%v, want %v", tc.w, got, tc.zbranch)
		}
		if got := isBranch(tc.w); got != tc.branch {
			t.Errorf("isBranch(%04x)=%v, want %v", tc.w, got, tc.branch)
		}
	}
}

func TestALUEncodingRoundTrip(t *testing.T) {
	// Every ALU word must survive decompose/recompose bit-for-bit.
	for w := uint16(OP_ALU_OP); w < OP_LITERAL; w++ {
		got := composeALU(aluOp(w), aluFlags(w), aluRstack(w), aluDstack(w))
		if got != w {
			t.Fatalf("round trip of %04x gave %04x", w, got)
		}
	}
}

func TestStackDeltaTable(t *testing.T) {
	// Hardware convention; the two negative deltas are two's-complement
	// encodings in the 2-bit field.
	want := [4]int{0, 1, -2, -1}
	if stackDelta != want {
		t.Fatalf("stackDelta=%v, want %v", stackDelta, want)
	}
}

func TestFieldExtraction(t *testing.T) {
	w := composeALU(ALU_OP_N, T_TO_N|T_TO_R, 1, 3)
	if aluOp(w) != ALU_OP_N {
		t.Fatalf("aluOp=%d, want %d", aluOp(w), ALU_OP_N)
	}
	if aluRstack(w) != 1 || aluDstack(w) != 3 {
		t.Fatalf("deltas=(%d,%d), want (1,3)", aluRstack(w), aluDstack(w))
	}
	if aluFlags(w) != T_TO_N|T_TO_R {
		t.Fatalf("flags=%04x, want %04x", aluFlags(w), T_TO_N|T_TO_R)
	}
	if instrAddr(composeCall(0x1ABC)) != 0x1ABC {
		t.Fatalf("instrAddr lost bits")
	}
	if literalValue(composeLiteral(0x7FFF)) != 0x7FFF {
		t.Fatalf("literalValue lost bits")
	}
}
