package main

import (
	"io"
	"sync"
)

// ConsoleIO is the pure state-machine side of the H16 console: an input
// ring buffer drained by the CPU's RX instruction and an output sink fed
// by TX. Tests inject bytes via EnqueueByte; the interactive host adapter
// (TerminalHost) feeds stdin bytes through the same method.
type ConsoleIO struct {
	mu sync.Mutex

	inputBuf  [1024]byte
	inputHead int
	inputTail int
	inputLen  int

	closed bool // input source is gone; EOF once the buffer drains

	out io.Writer
}

// NewConsoleIO creates a console whose TX bytes go to out.
func NewConsoleIO(out io.Writer) *ConsoleIO {
	return &ConsoleIO{out: out}
}

// EnqueueByte adds a byte to the input ring buffer. Bytes arriving while
// the buffer is full are dropped, matching a serial line with no flow
// control.
func (c *ConsoleIO) EnqueueByte(b byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inputLen >= len(c.inputBuf) {
		return
	}
	c.inputBuf[c.inputTail] = b
	c.inputTail = (c.inputTail + 1) % len(c.inputBuf)
	c.inputLen++
}

// Close marks the input source exhausted. Buffered bytes are still
// delivered; after that GetByte reports io.EOF.
func (c *ConsoleIO) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// GetByte implements the CPU input callback: a byte if one is buffered,
// errNoData when the line is idle, io.EOF when the source has closed and
// the buffer is empty.
func (c *ConsoleIO) GetByte() (byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inputLen == 0 {
		if c.closed {
			return 0, io.EOF
		}
		return 0, errNoData
	}
	b := c.inputBuf[c.inputHead]
	c.inputHead = (c.inputHead + 1) % len(c.inputBuf)
	c.inputLen--
	return b, nil
}

// PutByte implements the CPU output callback.
func (c *ConsoleIO) PutByte(b byte) error {
	_, err := c.out.Write([]byte{b})
	return err
}
