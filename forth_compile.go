package main

import "fmt"

// CompileError is the single error currency of the lexer, parser and
// assembler. Errors are threaded up through plain returns; partial state
// (AST, emitted cells) is abandoned by the caller on failure.
type CompileError struct {
	Kind errorKind
	Line int
	Msg  string
}

type errorKind int

const (
	ErrLexical errorKind = iota
	ErrSyntax
	ErrUndefinedSymbol
	ErrSemantic
	ErrOverflow
)

var errorKindNames = [...]string{
	ErrLexical:         "lexical error",
	ErrSyntax:          "syntax error",
	ErrUndefinedSymbol: "undefined symbol",
	ErrSemantic:        "semantic error",
	ErrOverflow:        "overflow",
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, errorKindNames[e.Kind], e.Msg)
}

func compileErrorf(kind errorKind, line int, format string, args ...interface{}) *CompileError {
	return &CompileError{Kind: kind, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// compile runs the full pipeline over a source buffer, emitting into the
// CPU's core. The symbol table is supplied by the caller so it can outlive
// a single compilation. It returns the number of cells the image occupies.
func compile(cpu *H16CPU, st *SymbolTable, src []byte) (uint16, error) {
	p := newParser(newLexer(src))
	prog, err := p.parseProgram()
	if err != nil {
		return 0, err
	}
	a := newAssembler(cpu, st)
	if err := a.assembleProgram(prog); err != nil {
		return 0, err
	}
	return a.maxPC, nil
}
