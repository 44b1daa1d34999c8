package main

import (
	"strings"
	"testing"
)

func TestSymbolTableAddAndLookup(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Add(symLabel, "loop", 8, false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := st.Add(symCall, "word", 12, true); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s := st.Lookup("word")
	if s == nil || s.kind != symCall || s.value != 12 || !s.hidden {
		t.Fatalf("Lookup(word)=%+v", s)
	}
	if st.Lookup("missing") != nil {
		t.Fatalf("Lookup(missing) found something")
	}
}

func TestSymbolTableRejectsDuplicates(t *testing.T) {
	st := NewSymbolTable()
	if err := st.Add(symConstant, "k", 1, false); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := st.Add(symVariable, "k", 2, false); err == nil {
		t.Fatalf("duplicate Add succeeded")
	}
	// First match wins and is unchanged.
	if s := st.Lookup("k"); s.kind != symConstant || s.value != 1 {
		t.Fatalf("Lookup(k)=%+v", s)
	}
}

func TestSymbolTablePrintOrder(t *testing.T) {
	st := NewSymbolTable()
	st.Add(symLabel, "first", 1, false)
	st.Add(symCall, "second", 2, false)
	st.Add(symVariable, "third", 3, true)
	var sb strings.Builder
	st.Print(&sb)
	out := sb.String()
	iFirst := strings.Index(out, "first")
	iSecond := strings.Index(out, "second")
	iThird := strings.Index(out, "third")
	if iFirst < 0 || iSecond < iFirst || iThird < iSecond {
		t.Fatalf("print order wrong:\n%s", out)
	}
	if !strings.Contains(out, "hidden") {
		t.Fatalf("hidden flag missing:\n%s", out)
	}
}
