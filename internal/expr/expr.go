// Package expr evaluates calculator expressions.
//
// An expression is made of decimal numbers, parentheses, spaces and the
// operators + - * / % **. Evaluation follows the usual precedence: ** binds
// tightest and groups to the right, then unary + and -, then * / %, then
// binary + and -. "-2**2" is -4 and "2**3**2" is 512.
//
// Results are normalized: an integral value such as 4/2 comes back in integer
// form. Malformed input fails with an *InvalidExpressionError; division or
// modulo by zero fails with an error wrapping arith.ErrDivisionByZero.
package expr

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Allowed contains every character an expression may use.
const Allowed = "0123456789.+-*/%() "

// operatorRun matches adjacent multiplicative operator characters. The only
// legal run is the power operator itself.
var operatorRun = regexp.MustCompile(`[*/%]{2,}`)

// Evaluate validates and computes expression.
func Evaluate(expression string) (Number, error) {
	root, err := build(expression)
	if err != nil {
		return Number{}, err
	}
	v, err := root.eval(expression)
	if err != nil {
		return Number{}, err
	}
	return Normalize(v), nil
}

func build(expression string) (*node, error) {
	if err := checkCharacters(expression); err != nil {
		return nil, err
	}
	if err := checkOperators(expression); err != nil {
		return nil, err
	}
	return parse(expression)
}

// checkCharacters rejects any character outside Allowed. Letters get their
// own message since names and function calls are never valid.
func checkCharacters(src string) error {
	for i, r := range src {
		if strings.ContainsRune(Allowed, r) {
			continue
		}
		col := len([]rune(src[:i])) + 1
		if r == '_' || unicode.IsLetter(r) {
			return invalid(src, col, "names are not allowed: "+strconv.QuoteRune(r))
		}
		return invalid(src, col, "unsupported character "+strconv.QuoteRune(r))
	}
	return nil
}

// checkOperators rejects operator sequences such as //, *** and */ that the
// character whitelist lets through.
func checkOperators(src string) error {
	for _, loc := range operatorRun.FindAllStringIndex(src, -1) {
		run := src[loc[0]:loc[1]]
		if run == "**" {
			continue
		}
		return invalid(src, loc[0]+1, "unsupported operator sequence "+strconv.Quote(run))
	}
	return nil
}
