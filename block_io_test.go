package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBlockRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forth.blk")
	cells := []uint16{composeBranch(START_ADDR), 0x1234, 0xFFFF, 0}
	if err := saveBlock(path, cells); err != nil {
		t.Fatalf("saveBlock: %v", err)
	}
	core := make([]uint16, CORE_CELLS)
	core[100] = 0xBEEF // must be zeroed by the load
	if err := loadBlock(path, core); err != nil {
		t.Fatalf("loadBlock: %v", err)
	}
	for i, want := range cells {
		if core[i] != want {
			t.Fatalf("core[%d]=%04x, want %04x", i, core[i], want)
		}
	}
	if core[100] != 0 {
		t.Fatalf("core[100]=%04x, want zero fill", core[100])
	}
}

func TestBlockLittleEndianLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forth.blk")
	if err := saveBlock(path, []uint16{0x1234}); err != nil {
		t.Fatalf("saveBlock: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(raw) != 2 || raw[0] != 0x34 || raw[1] != 0x12 {
		t.Fatalf("bytes=% x, want 34 12", raw)
	}
}

func TestBlockOddLengthRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forth.blk")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := loadBlock(path, make([]uint16, CORE_CELLS)); err == nil {
		t.Fatalf("odd-length block loaded")
	}
}

func TestBlockTooLargeRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forth.blk")
	if err := os.WriteFile(path, make([]byte, 2*CORE_CELLS+2), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := loadBlock(path, make([]uint16, CORE_CELLS)); err == nil {
		t.Fatalf("oversize block loaded")
	}
}

func TestBlockMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.blk")
	if err := loadBlock(path, make([]uint16, CORE_CELLS)); err == nil {
		t.Fatalf("missing block loaded")
	}
}
