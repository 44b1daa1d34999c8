package main

import "testing"

func parseSrc(t *testing.T, src string) *astNode {
	t.Helper()
	prog, err := newParser(newLexer([]byte(src))).parseProgram()
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return prog
}

func parseFails(t *testing.T, src string) *CompileError {
	t.Helper()
	_, err := newParser(newLexer([]byte(src))).parseProgram()
	if err == nil {
		t.Fatalf("parse %q: expected an error", src)
	}
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("parse %q: error %v is not a CompileError", src, err)
	}
	return ce
}

func TestParseDefinitionWithFlags(t *testing.T) {
	prog := parseSrc(t, ": odd 1 and ; immediate hidden")
	if len(prog.children) != 1 {
		t.Fatalf("got %d statements, want 1", len(prog.children))
	}
	def := prog.children[0]
	if def.kind != nodeDefinition || def.tok.text != "odd" {
		t.Fatalf("node=%+v, want definition odd", def)
	}
	if def.bits != FLAG_IMMEDIATE|FLAG_HIDDEN {
		t.Fatalf("bits=%d, want %d", def.bits, FLAG_IMMEDIATE|FLAG_HIDDEN)
	}
	if len(def.children) != 2 {
		t.Fatalf("body has %d statements, want 2", len(def.children))
	}
}

func TestParseDuplicateFlag(t *testing.T) {
	ce := parseFails(t, ": w ; immediate immediate")
	if ce.Kind != ErrSyntax {
		t.Fatalf("kind=%d, want ErrSyntax", ce.Kind)
	}
}

func TestParseIfElseThen(t *testing.T) {
	prog := parseSrc(t, "if 1 else 2 2 then")
	n := prog.children[0]
	if n.kind != nodeIf || len(n.children) != 2 {
		t.Fatalf("node=%+v, want if with two groups", n)
	}
	if len(n.children[0].children) != 1 || len(n.children[1].children) != 2 {
		t.Fatalf("group sizes %d/%d, want 1/2",
			len(n.children[0].children), len(n.children[1].children))
	}
}

func TestParseIfWithoutThen(t *testing.T) {
	if ce := parseFails(t, ": w if 1 ;"); ce.Kind != ErrSyntax {
		t.Fatalf("kind=%d, want ErrSyntax", ce.Kind)
	}
}

func TestParseLoops(t *testing.T) {
	prog := parseSrc(t, "begin 0 until begin nop again begin dup while 1- repeat")
	kinds := []nodeKind{nodeBeginUntil, nodeBeginAgain, nodeBeginWhileRepeat}
	if len(prog.children) != len(kinds) {
		t.Fatalf("got %d statements, want %d", len(prog.children), len(kinds))
	}
	for i, k := range kinds {
		if prog.children[i].kind != k {
			t.Fatalf("statement %d kind=%d, want %d", i, prog.children[i].kind, k)
		}
	}
}

func TestParseForVariants(t *testing.T) {
	prog := parseSrc(t, "for dup next for 1 aft 2 then 3 next")
	if prog.children[0].kind != nodeForNext {
		t.Fatalf("first=%d, want nodeForNext", prog.children[0].kind)
	}
	aft := prog.children[1]
	if aft.kind != nodeForAftThenNext || len(aft.children) != 3 {
		t.Fatalf("second=%+v, want for/aft/then/next with 3 groups", aft)
	}
}

func TestParseDataDirectives(t *testing.T) {
	prog := parseSrc(t, `constant c 5 variable v 9 hidden location l "text"`)
	c, v, l := prog.children[0], prog.children[1], prog.children[2]
	if c.kind != nodeConstant || c.tok.text != "c" || c.value.number != 5 {
		t.Fatalf("constant=%+v", c)
	}
	if v.kind != nodeVariable || v.bits != FLAG_HIDDEN {
		t.Fatalf("variable=%+v", v)
	}
	if l.kind != nodeLocation || l.value.kind != lexString || l.value.text != "text" {
		t.Fatalf("location=%+v", l)
	}
}

func TestParseAssemblerDirectives(t *testing.T) {
	prog := parseSrc(t, ".mode 3 .pc 64 .pwd 0 .allocate 32 .set 4 $pc .built-in")
	kinds := []nodeKind{nodeMode, nodePc, nodePwd, nodeAllocate, nodeSet, nodeBuiltIn}
	for i, k := range kinds {
		if prog.children[i].kind != k {
			t.Fatalf("statement %d kind=%d, want %d", i, prog.children[i].kind, k)
		}
	}
	set := prog.children[4]
	if set.tok.number != 4 || set.value.text != "$pc" {
		t.Fatalf("set=%+v", set)
	}
}

func TestParseQuoteAndChar(t *testing.T) {
	prog := parseSrc(t, "' word [char] x")
	q, c := prog.children[0], prog.children[1]
	if q.kind != nodeQuote || q.value.text != "word" {
		t.Fatalf("quote=%+v", q)
	}
	if c.kind != nodeChar || c.value.text != "x" {
		t.Fatalf("char=%+v", c)
	}
}

func TestParseBranchStatements(t *testing.T) {
	prog := parseSrc(t, "branch loop 0branch 12 call word")
	b, z, c := prog.children[0], prog.children[1], prog.children[2]
	if b.kind != nodeBranch || b.value.text != "loop" {
		t.Fatalf("branch=%+v", b)
	}
	if z.kind != node0Branch || z.value.number != 12 {
		t.Fatalf("0branch=%+v", z)
	}
	if c.kind != nodeCallDirective || c.value.text != "word" {
		t.Fatalf("call=%+v", c)
	}
}

func TestParseStrayThen(t *testing.T) {
	if ce := parseFails(t, "dup then"); ce.Kind != ErrSyntax {
		t.Fatalf("kind=%d, want ErrSyntax", ce.Kind)
	}
}
