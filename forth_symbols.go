package main

import (
	"fmt"
	"io"
)

type symbolType int

const (
	symLabel symbolType = iota
	symCall
	symConstant
	symVariable
)

var symbolTypeNames = [...]string{
	symLabel:    "label",
	symCall:     "call",
	symConstant: "constant",
	symVariable: "variable",
}

// symbol is one named entry: labels and calls hold cell addresses,
// constants hold their value, variables hold the byte address of their
// data cell.
type symbol struct {
	id     string
	value  uint16
	kind   symbolType
	hidden bool
}

// SymbolTable is an ordered collection with first-match linear lookup.
// Insertion order is preserved; nothing is ever removed.
type SymbolTable struct {
	syms []*symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Add appends an entry, rejecting redefinition of an existing id.
func (st *SymbolTable) Add(kind symbolType, id string, value uint16, hidden bool) error {
	if st.Lookup(id) != nil {
		return fmt.Errorf("duplicate symbol %q", id)
	}
	st.syms = append(st.syms, &symbol{id: id, value: value, kind: kind, hidden: hidden})
	return nil
}

// Lookup returns the first entry with the given id, or nil.
func (st *SymbolTable) Lookup(id string) *symbol {
	for _, s := range st.syms {
		if s.id == id {
			return s
		}
	}
	return nil
}

// Print writes the table in insertion order.
func (st *SymbolTable) Print(w io.Writer) {
	for _, s := range st.syms {
		hidden := ""
		if s.hidden {
			hidden = " hidden"
		}
		fmt.Fprintf(w, "%-8s %04x %s%s\n", symbolTypeNames[s.kind], s.value, s.id, hidden)
	}
}
