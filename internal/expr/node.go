package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-chi-calculator/internal/arith"
)

// node is a node in the expression tree.
type node struct {
	kind nodeKind
	// num is the value of a nodeNum.
	num float64
	// op is the primitive applied by a nodeBinary.
	op arith.Operator
	// col is the column of the number or operator the node came from.
	col int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // push num
	nodeNeg    // evaluate left, then negate
	nodePlus   // evaluate left
	nodeBinary // evaluate left and right, then apply op
)

// String renders the tree fully parenthesized, e.g. (2+(3*4)).
func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))
	case nodeNeg, nodePlus:
		b.WriteByte('(')
		if n.kind == nodeNeg {
			b.WriteByte('-')
		} else {
			b.WriteByte('+')
		}
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeBinary:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(n.op.Symbol)
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		b.WriteString("$")
	}
}

// eval computes the value of the tree rooted at n. src is the original
// expression, used for error reports.
func (n *node) eval(src string) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeNeg:
		v, err := n.left.eval(src)
		return -v, err
	case nodePlus:
		return n.left.eval(src)
	case nodeBinary:
		a, err := n.left.eval(src)
		if err != nil {
			return 0, err
		}
		b, err := n.right.eval(src)
		if err != nil {
			return 0, err
		}
		r, err := n.op.Apply(a, b)
		if err == nil {
			err = arith.Check(r)
		}
		if err != nil {
			if errors.Is(err, arith.ErrDivisionByZero) {
				return 0, fmt.Errorf("column %d: %w", n.col, err)
			}
			return 0, &InvalidExpressionError{Expr: src, Col: n.col, Msg: err.Error(), Err: err}
		}
		return r, nil
	}
	return 0, fmt.Errorf("expr: invalid node kind %d", n.kind)
}
