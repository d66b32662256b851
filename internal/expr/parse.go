package expr

import (
	"fmt"
	"strconv"

	"github.com/informitas/stack"

	"go-chi-calculator/internal/arith"
)

// Grammar, loosest binding first:
//
//	Expr   = Term { ('+' | '-') Term }
//	Term   = Unary { ('*' | '/' | '%') Unary }
//	Unary  = ('+' | '-') Unary | Power
//	Power  = Atom [ '**' Unary ]
//	Atom   = num | '(' Expr ')'
//
// The parser is a shunting-yard over an operator stack and a node stack.

const (
	precAdd   = 1
	precMul   = 2
	precUnary = 3
	precPow   = 4
)

// pending is an entry on the operator stack.
type pending struct {
	tok   token
	unary bool
}

func (p pending) isOpen() bool { return p.tok.kind == tokenOpen }

func (p pending) prec() int {
	if p.unary {
		return precUnary
	}
	switch p.tok.text {
	case "+", "-":
		return precAdd
	case "**":
		return precPow
	}
	return precMul
}

func (p pending) rightAssoc() bool { return !p.unary && p.tok.text == "**" }

type parser struct {
	src string
	lex *lexer
	ops *stack.Stack[pending]
	out *stack.Stack[*node]
}

// parse builds the expression tree for src.
func parse(src string) (*node, error) {
	p := &parser{
		src: src,
		lex: newLexer(src),
		ops: stack.NewStack[pending](),
		out: stack.NewStack[*node](),
	}
	return p.run()
}

func (p *parser) run() (*node, error) {
	// operand is true when the next token must start an operand.
	operand := true
	var prev token
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}

		if operand {
			switch tok.kind {
			case tokenNum:
				v, err := strconv.ParseFloat(tok.text, 64)
				if err != nil {
					return nil, invalid(p.src, tok.col, "number "+strconv.Quote(tok.text)+" out of range")
				}
				p.out.Push(&node{kind: nodeNum, num: v, col: tok.col})
				operand = false
			case tokenOpen:
				p.ops.Push(pending{tok: tok})
			case tokenOp:
				if tok.text != "+" && tok.text != "-" {
					return nil, invalid(p.src, tok.col, "unexpected operator "+strconv.Quote(tok.text))
				}
				p.ops.Push(pending{tok: tok, unary: true})
			case tokenClose:
				if prev.kind == tokenOpen {
					return nil, invalid(p.src, tok.col, "empty parentheses")
				}
				return nil, invalid(p.src, tok.col, "missing operand before )")
			case tokenEOF:
				if prev.kind == tokenNone {
					return nil, invalid(p.src, 0, "empty expression")
				}
				return nil, invalid(p.src, prev.col, "missing operand after "+strconv.Quote(prev.text))
			}
			prev = tok
			continue
		}

		switch tok.kind {
		case tokenOp:
			in := pending{tok: tok}
			for !p.ops.IsEmpty() {
				top, _ := p.ops.Top()
				if top.isOpen() {
					break
				}
				if top.prec() < in.prec() || (top.prec() == in.prec() && in.rightAssoc()) {
					break
				}
				if err := p.reduce(); err != nil {
					return nil, err
				}
			}
			p.ops.Push(in)
			operand = true
		case tokenClose:
			if err := p.closeParen(tok); err != nil {
				return nil, err
			}
		case tokenNum:
			return nil, invalid(p.src, tok.col, "unexpected number "+strconv.Quote(tok.text))
		case tokenOpen:
			return nil, invalid(p.src, tok.col, "unexpected (")
		case tokenEOF:
			return p.finish()
		}
		prev = tok
	}
}

// closeParen reduces everything back to the matching open parenthesis.
func (p *parser) closeParen(tok token) error {
	for !p.ops.IsEmpty() {
		top, _ := p.ops.Top()
		if top.isOpen() {
			p.ops.Pop()
			return nil
		}
		if err := p.reduce(); err != nil {
			return err
		}
	}
	return invalid(p.src, tok.col, ") with no matching (")
}

// finish reduces the remaining operators and returns the root.
func (p *parser) finish() (*node, error) {
	for !p.ops.IsEmpty() {
		top, _ := p.ops.Top()
		if top.isOpen() {
			return nil, invalid(p.src, top.tok.col, "( with no matching )")
		}
		if err := p.reduce(); err != nil {
			return nil, err
		}
	}
	if p.out.Size() != 1 {
		return nil, fmt.Errorf("expr: parser left %d nodes", p.out.Size())
	}
	root, _ := p.out.Pop()
	return root, nil
}

// reduce pops one operator and combines its operands into a node.
func (p *parser) reduce() error {
	top, _ := p.ops.Pop()
	if top.unary {
		if p.out.IsEmpty() {
			return fmt.Errorf("expr: no operand for unary %s", top.tok.text)
		}
		arg, _ := p.out.Pop()
		kind := nodeNeg
		if top.tok.text == "+" {
			kind = nodePlus
		}
		p.out.Push(&node{kind: kind, col: top.tok.col, left: arg})
		return nil
	}

	if p.out.Size() < 2 {
		return fmt.Errorf("expr: missing operands for %s", top.tok.text)
	}
	op, ok := arith.BySymbol(top.tok.text)
	if !ok {
		return invalid(p.src, top.tok.col, "unknown operator "+strconv.Quote(top.tok.text))
	}
	right, _ := p.out.Pop()
	left, _ := p.out.Pop()
	p.out.Push(&node{kind: nodeBinary, op: op, col: top.tok.col, left: left, right: right})
	return nil
}
