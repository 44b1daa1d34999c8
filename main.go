// main.go - entry point for the H16 Forth toolchain and simulator

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
)

var (
	flagBlock   = flag.String("block", FORTH_BLOCK, "memory block image path")
	flagTrace   = flag.Bool("trace", false, "log every executed instruction to stderr")
	flagSymbols = flag.Bool("symbols", false, "print the symbol table after assembly")
	flagDis     = flag.Bool("dis", false, "disassemble the block instead of running it")
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [source.fth]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "With a source file the block image is assembled and written;\n")
		fmt.Fprintf(os.Stderr, "without one the block image is loaded and executed.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	switch flag.NArg() {
	case 1:
		return assembleMode(flag.Arg(0))
	case 0:
		if *flagDis {
			return disassembleMode()
		}
		return runMode()
	default:
		flag.Usage()
		return 1
	}
}

func assembleMode(sourcePath string) int {
	src, err := os.ReadFile(sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", errors.Wrapf(err, "reading source %q", sourcePath))
		return 1
	}

	cpu := NewH16CPU()
	st := NewSymbolTable()
	length, err := compile(cpu, st, src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", sourcePath, err)
		return 1
	}
	if *flagSymbols {
		st.Print(os.Stdout)
	}
	if err := saveBlock(*flagBlock, cpu.core[:length]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func disassembleMode() int {
	cpu := NewH16CPU()
	if err := loadBlock(*flagBlock, cpu.core[:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	disassembleImage(os.Stdout, cpu.core[:])
	return 0
}

func runMode() int {
	cpu := NewH16CPU()
	if err := loadBlock(*flagBlock, cpu.core[:]); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	if *flagTrace {
		cpu.SetTrace(log.New(os.Stderr, "h16: ", 0))
	}

	console := NewConsoleIO(os.Stdout)
	host := NewTerminalHost(console)
	host.Start()
	defer host.Stop()

	// The ESCAPE byte is intercepted here, not in the CPU: to the
	// machine it is indistinguishable from end of input.
	cpu.SetConsole(func() (byte, error) {
		b, err := console.GetByte()
		if err == nil && b == ESCAPE {
			return 0, io.EOF
		}
		return b, err
	}, console.PutByte)
	cpu.SetSaveHandler(func(cells []uint16) error {
		return saveBlock(*flagBlock, cells)
	})

	for {
		ret := cpu.Run()
		if ret > 0 {
			// More work pending: typically an idle input line.
			time.Sleep(10 * time.Millisecond)
			continue
		}
		if ret < 0 {
			fmt.Fprintf(os.Stderr, "h16: i/o failure\n")
			return 1
		}
		return 0
	}
}
