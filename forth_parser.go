// forth_parser.go - recursive descent parser producing the assembly AST

package main

type nodeKind int

const (
	nodeProgram nodeKind = iota
	nodeStatements
	nodeLiteral
	nodeLabel
	nodeBranch
	node0Branch
	nodeCallDirective
	nodeConstant
	nodeVariable
	nodeLocation
	nodeIf
	nodeDefinition
	nodeChar
	nodeBeginUntil
	nodeBeginAgain
	nodeBeginWhileRepeat
	nodeForNext
	nodeForAftThenNext
	nodeQuote
	nodeCallByName
	nodeInstruction
	nodeSet
	nodePc
	nodePwd
	nodeMode
	nodeAllocate
	nodeBuiltIn
)

// astNode is a tagged variant with an owning token, an optional secondary
// operand token, the flag bits accumulated from trailing keywords, and a
// dynamic child sequence.
type astNode struct {
	kind     nodeKind
	tok      token
	value    token
	bits     uint16
	children []*astNode
}

func newNode(kind nodeKind, tok token) *astNode {
	return &astNode{kind: kind, tok: tok}
}

func (n *astNode) addChild(c *astNode) {
	n.children = append(n.children, c)
}

type parser struct {
	lex *lexer
	tok token // single-token lookahead
}

func newParser(lex *lexer) *parser {
	return &parser{lex: lex}
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// expect consumes the lookahead if it has one of the wanted kinds and
// returns it; otherwise it reports a syntax error.
func (p *parser) expect(what string, kinds ...tokenKind) (token, error) {
	for _, k := range kinds {
		if p.tok.kind == k {
			t := p.tok
			return t, p.advance()
		}
	}
	return token{}, compileErrorf(ErrSyntax, p.tok.line, "expected %s", what)
}

func (p *parser) parseProgram() (*astNode, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	prog := newNode(nodeProgram, p.tok)
	if err := p.parseStatements(prog); err != nil {
		return nil, err
	}
	if p.tok.kind != lexEOI {
		return nil, compileErrorf(ErrSyntax, p.tok.line, "unexpected token outside any construct")
	}
	return prog, nil
}

// isTerminator reports tokens that end a statement sequence without being
// consumed by it: the enclosing construct eats them.
func isTerminator(k tokenKind) bool {
	switch k {
	case lexEOI, lexElse, lexThen, lexSemicolon, lexUntil, lexAgain,
		lexWhile, lexRepeat, lexAft, lexNext:
		return true
	}
	return false
}

func (p *parser) parseStatements(parent *astNode) error {
	for !isTerminator(p.tok.kind) {
		stmt, err := p.parseStatement()
		if err != nil {
			return err
		}
		parent.addChild(stmt)
	}
	return nil
}

func (p *parser) group() (*astNode, error) {
	g := newNode(nodeStatements, p.tok)
	return g, p.parseStatements(g)
}

// setFlag records a trailing flag keyword on its owning node, rejecting a
// flag that was already given.
func (p *parser) setFlag(n *astNode, bit uint16, name string) error {
	if n.bits&bit != 0 {
		return compileErrorf(ErrSyntax, p.tok.line, "duplicate %s flag", name)
	}
	n.bits |= bit
	return p.advance()
}

func (p *parser) parseStatement() (*astNode, error) {
	tok := p.tok
	switch tok.kind {
	case lexLiteral:
		return newNode(nodeLiteral, tok), p.advance()

	case lexLabel:
		return newNode(nodeLabel, tok), p.advance()

	case lexBranch, lex0Branch, lexCall:
		kind := map[tokenKind]nodeKind{
			lexBranch:  nodeBranch,
			lex0Branch: node0Branch,
			lexCall:    nodeCallDirective,
		}[tok.kind]
		n := newNode(kind, tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.expect("a branch target", lexIdentifier, lexLiteral)
		if err != nil {
			return nil, err
		}
		n.value = v
		return n, nil

	case lexConstant, lexVariable, lexLocation:
		kind := map[tokenKind]nodeKind{
			lexConstant: nodeConstant,
			lexVariable: nodeVariable,
			lexLocation: nodeLocation,
		}[tok.kind]
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expect("a name", lexIdentifier)
		if err != nil {
			return nil, err
		}
		n := newNode(kind, name)
		v, err := p.expect("a value", lexLiteral, lexString)
		if err != nil {
			return nil, err
		}
		n.value = v
		if p.tok.kind == lexHidden {
			if err := p.setFlag(n, FLAG_HIDDEN, "hidden"); err != nil {
				return nil, err
			}
		}
		return n, nil

	case lexIf:
		n := newNode(nodeIf, tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		thenPart, err := p.group()
		if err != nil {
			return nil, err
		}
		n.addChild(thenPart)
		if p.tok.kind == lexElse {
			if err := p.advance(); err != nil {
				return nil, err
			}
			elsePart, err := p.group()
			if err != nil {
				return nil, err
			}
			n.addChild(elsePart)
		}
		if _, err := p.expect("then", lexThen); err != nil {
			return nil, err
		}
		return n, nil

	case lexColon:
		if err := p.advance(); err != nil {
			return nil, err
		}
		name, err := p.expect("a word name", lexIdentifier, lexString)
		if err != nil {
			return nil, err
		}
		n := newNode(nodeDefinition, name)
		if err := p.parseStatements(n); err != nil {
			return nil, err
		}
		if _, err := p.expect(";", lexSemicolon); err != nil {
			return nil, err
		}
		for {
			switch p.tok.kind {
			case lexImmediate:
				err = p.setFlag(n, FLAG_IMMEDIATE, "immediate")
			case lexHidden:
				err = p.setFlag(n, FLAG_HIDDEN, "hidden")
			case lexInline:
				err = p.setFlag(n, FLAG_INLINE, "inline")
			default:
				return n, nil
			}
			if err != nil {
				return nil, err
			}
		}

	case lexChar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		id, err := p.expect("a character", lexIdentifier)
		if err != nil {
			return nil, err
		}
		n := newNode(nodeChar, tok)
		n.value = id
		return n, nil

	case lexBegin:
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.group()
		if err != nil {
			return nil, err
		}
		switch p.tok.kind {
		case lexUntil:
			n := newNode(nodeBeginUntil, tok)
			n.addChild(body)
			return n, p.advance()
		case lexAgain:
			n := newNode(nodeBeginAgain, tok)
			n.addChild(body)
			return n, p.advance()
		case lexWhile:
			if err := p.advance(); err != nil {
				return nil, err
			}
			loopBody, err := p.group()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("repeat", lexRepeat); err != nil {
				return nil, err
			}
			n := newNode(nodeBeginWhileRepeat, tok)
			n.addChild(body)
			n.addChild(loopBody)
			return n, nil
		default:
			return nil, compileErrorf(ErrSyntax, p.tok.line, "expected until, again or while")
		}

	case lexFor:
		if err := p.advance(); err != nil {
			return nil, err
		}
		first, err := p.group()
		if err != nil {
			return nil, err
		}
		if p.tok.kind == lexAft {
			if err := p.advance(); err != nil {
				return nil, err
			}
			aftPart, err := p.group()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("then", lexThen); err != nil {
				return nil, err
			}
			thenPart, err := p.group()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("next", lexNext); err != nil {
				return nil, err
			}
			n := newNode(nodeForAftThenNext, tok)
			n.addChild(first)
			n.addChild(aftPart)
			n.addChild(thenPart)
			return n, nil
		}
		if _, err := p.expect("next", lexNext); err != nil {
			return nil, err
		}
		n := newNode(nodeForNext, tok)
		n.addChild(first)
		return n, nil

	case lexQuote:
		if err := p.advance(); err != nil {
			return nil, err
		}
		id, err := p.expect("a word name", lexIdentifier, lexString)
		if err != nil {
			return nil, err
		}
		n := newNode(nodeQuote, tok)
		n.value = id
		return n, nil

	case lexIdentifier:
		return newNode(nodeCallByName, tok), p.advance()

	case lexPwd, lexPc, lexAllocate:
		kind := map[tokenKind]nodeKind{
			lexPwd:      nodePwd,
			lexPc:       nodePc,
			lexAllocate: nodeAllocate,
		}[tok.kind]
		n := newNode(kind, tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.expect("an address", lexLiteral, lexIdentifier)
		if err != nil {
			return nil, err
		}
		n.value = v
		return n, nil

	case lexSet:
		n := newNode(nodeSet, tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		addr, err := p.expect("an address", lexIdentifier, lexLiteral)
		if err != nil {
			return nil, err
		}
		n.tok = addr
		v, err := p.expect("a value", lexIdentifier, lexLiteral, lexString)
		if err != nil {
			return nil, err
		}
		n.value = v
		return n, nil

	case lexMode:
		n := newNode(nodeMode, tok)
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.expect("a mode literal", lexLiteral)
		if err != nil {
			return nil, err
		}
		n.value = v
		return n, nil

	case lexBuiltIn:
		return newNode(nodeBuiltIn, tok), p.advance()

	default:
		if tok.kind >= lexDup && tok.kind <= lexNop {
			return newNode(nodeInstruction, tok), p.advance()
		}
		return nil, compileErrorf(ErrSyntax, tok.line, "unexpected token")
	}
}
