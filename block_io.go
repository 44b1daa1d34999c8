package main

import (
	"encoding/binary"
	"os"

	"github.com/pkg/errors"
)

// The memory block file is raw cells, two bytes each, low byte first.

// saveBlock writes an image to path.
func saveBlock(path string, cells []uint16) error {
	buf := make([]byte, 2*len(cells))
	for i, c := range cells {
		binary.LittleEndian.PutUint16(buf[2*i:], c)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return errors.Wrapf(err, "saving block %q", path)
	}
	return nil
}

// loadBlock reads an image into core, zero-filling whatever the file does
// not cover. Images shorter than the full core are accepted because save
// writes only the compiled length.
func loadBlock(path string, core []uint16) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "loading block %q", path)
	}
	if len(raw)%2 != 0 {
		return errors.Errorf("block %q: odd length %d", path, len(raw))
	}
	if len(raw)/2 > len(core) {
		return errors.Errorf("block %q: %d cells exceed core size %d", path, len(raw)/2, len(core))
	}
	for i := 0; i < len(raw)/2; i++ {
		core[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	for i := len(raw) / 2; i < len(core); i++ {
		core[i] = 0
	}
	return nil
}
