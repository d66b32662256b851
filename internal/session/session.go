// Package session holds the state a calculator front-end keeps between
// evaluations: the last answer, the memory register and the history list.
//
// A Session belongs to a single interaction loop and is not safe for
// concurrent use.
package session

import (
	"errors"
	"fmt"
	"regexp"

	"go-chi-calculator/internal/arith"
	"go-chi-calculator/internal/expr"
)

// DefaultHistoryLimit is the number of history entries kept when no
// WithHistoryLimit option is given.
const DefaultHistoryLimit = 50

var (
	// ErrNoAnswer is returned when "ans" is used before any successful
	// evaluation.
	ErrNoAnswer = errors.New("no previous answer yet")

	// ErrNoEntry is returned by Recall for an index outside the history.
	ErrNoEntry = errors.New("no such history entry")
)

// Entry is one successful evaluation.
type Entry struct {
	Expression string
	Result     expr.Number
}

func (e Entry) String() string {
	return e.Expression + " = " + e.Result.String()
}

// Session is the per-front-end calculator state.
type Session struct {
	answer    expr.Number
	hasAnswer bool
	memory    float64
	history   []Entry
	limit     int
}

// Option configures a Session.
type Option func(*Session)

// WithHistoryLimit bounds the history list. A limit below 1 disables history.
func WithHistoryLimit(n int) Option {
	return func(s *Session) { s.limit = n }
}

// New returns an empty session.
func New(opts ...Option) *Session {
	s := &Session{limit: DefaultHistoryLimit}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// words matches the names a front-end may splice into an expression.
var words = regexp.MustCompile(`\b(ans|mem)\b`)

// Splice replaces the words "ans" and "mem" in input with the last answer and
// the memory register. Negative values are parenthesized so that "ans**2"
// squares the whole answer.
func (s *Session) Splice(input string) (string, error) {
	var err error
	out := words.ReplaceAllStringFunc(input, func(w string) string {
		var n expr.Number
		switch w {
		case "ans":
			if !s.hasAnswer {
				err = ErrNoAnswer
				return w
			}
			n = s.answer
		case "mem":
			n = s.MemoryRecall()
		}
		if n.Float64() < 0 {
			return "(" + n.String() + ")"
		}
		return n.String()
	})
	if err != nil {
		return "", err
	}
	return out, nil
}

// Evaluate splices input, evaluates it, and on success records the result as
// the last answer and in the history. A failure leaves the session unchanged.
func (s *Session) Evaluate(input string) (expr.Number, error) {
	spliced, err := s.Splice(input)
	if err != nil {
		return expr.Number{}, err
	}
	n, err := expr.Evaluate(spliced)
	if err != nil {
		return expr.Number{}, err
	}
	s.record(input, n)
	return n, nil
}

// Apply runs one primitive on a and b and records the result like Evaluate.
func (s *Session) Apply(op arith.Operator, a, b float64) (expr.Number, error) {
	v, err := op.Apply(a, b)
	if err == nil {
		err = arith.Check(v)
	}
	if err != nil {
		return expr.Number{}, fmt.Errorf("%s: %w", op.Name, err)
	}
	n := expr.Normalize(v)
	text := expr.Normalize(a).String() + " " + op.Symbol + " " + expr.Normalize(b).String()
	s.record(text, n)
	return n, nil
}

func (s *Session) record(expression string, n expr.Number) {
	s.answer, s.hasAnswer = n, true
	if s.limit < 1 {
		return
	}
	s.history = append([]Entry{{Expression: expression, Result: n}}, s.history...)
	if len(s.history) > s.limit {
		s.history = s.history[:s.limit]
	}
}

// Answer returns the last successful result.
func (s *Session) Answer() (expr.Number, bool) {
	return s.answer, s.hasAnswer
}

// History returns the recorded evaluations, newest first.
func (s *Session) History() []Entry {
	out := make([]Entry, len(s.history))
	copy(out, s.history)
	return out
}

// Recall makes the result of history entry i the last answer and returns it.
// Entry 0 is the newest. The history itself is left as it is.
func (s *Session) Recall(i int) (expr.Number, error) {
	if i < 0 || i >= len(s.history) {
		return expr.Number{}, fmt.Errorf("%w: %d", ErrNoEntry, i)
	}
	s.answer, s.hasAnswer = s.history[i].Result, true
	return s.answer, nil
}

// ClearHistory empties the history list.
func (s *Session) ClearHistory() {
	s.history = nil
}

// MemoryClear resets the memory register to zero.
func (s *Session) MemoryClear() {
	s.memory = 0
}

// MemoryRecall returns the memory register.
func (s *Session) MemoryRecall() expr.Number {
	return expr.Normalize(s.memory)
}

// MemoryAdd adds v to the memory register.
func (s *Session) MemoryAdd(v float64) expr.Number {
	s.memory += v
	return s.MemoryRecall()
}

// MemorySubtract subtracts v from the memory register.
func (s *Session) MemorySubtract(v float64) expr.Number {
	s.memory -= v
	return s.MemoryRecall()
}
