//go:build !windows

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalHost reads raw stdin and feeds bytes into a ConsoleIO device.
// Only instantiated in main.go for interactive use — never in tests.
type TerminalHost struct {
	console      *ConsoleIO
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminalHost creates a host adapter that reads stdin into the given
// console device.
func NewTerminalHost(console *ConsoleIO) *TerminalHost {
	return &TerminalHost{
		console: console,
		stopCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start sets stdin to raw non-blocking mode and begins reading in a
// goroutine. Call Stop to restore the terminal. A non-terminal stdin
// (piped input) is fed through unchanged.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	if term.IsTerminal(h.fd) {
		// Raw mode disables OS-level echo and line buffering; the
		// running eForth image decides what to echo.
		oldState, err := term.MakeRaw(h.fd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
			close(h.done)
			return
		}
		h.oldTermState = oldState
	}

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		h.restore()
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				b := buf[0]
				// Raw mode sends CR for Enter; translate to LF.
				if b == '\r' {
					b = '\n'
				}
				// Modern terminals send DEL for Backspace; translate to BS.
				if b == 0x7F {
					b = 0x08
				}
				h.console.EnqueueByte(b)
				continue
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil || n == 0 {
				h.console.Close()
				return
			}
		}
	}()
}

// Stop terminates the stdin reader and restores the terminal state.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	h.restore()
}

func (h *TerminalHost) restore() {
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
