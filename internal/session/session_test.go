package session

import (
	"errors"
	"fmt"
	"testing"

	"go-chi-calculator/internal/arith"
	"go-chi-calculator/internal/expr"
)

func TestEvaluateRecordsAnswerAndHistory(t *testing.T) {
	s := New()

	if _, ok := s.Answer(); ok {
		t.Fatal("expected no answer on a new session")
	}

	n, err := s.Evaluate("2+3*4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "14" {
		t.Fatalf("expected 14, got %s", n)
	}

	ans, ok := s.Answer()
	if !ok || ans != n {
		t.Fatalf("expected answer %s, got %s (%t)", n, ans, ok)
	}

	h := s.History()
	if len(h) != 1 || h[0].String() != "2+3*4 = 14" {
		t.Fatalf("unexpected history %v", h)
	}
}

func TestFailedEvaluationLeavesStateUntouched(t *testing.T) {
	s := New()
	if _, err := s.Evaluate("6/4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.MemoryAdd(3)

	if _, err := s.Evaluate("1/0"); !errors.Is(err, arith.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := s.Evaluate("5*/3"); !errors.Is(err, expr.ErrInvalidExpression) {
		t.Fatalf("expected ErrInvalidExpression, got %v", err)
	}

	ans, _ := s.Answer()
	if ans.String() != "1.5" {
		t.Fatalf("expected answer 1.5, got %s", ans)
	}
	if got := s.MemoryRecall().String(); got != "3" {
		t.Fatalf("expected memory 3, got %s", got)
	}
	if len(s.History()) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(s.History()))
	}
}

func TestSplice(t *testing.T) {
	s := New()

	if _, err := s.Splice("ans + 1"); !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}

	if _, err := s.Evaluate("0-3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.MemoryAdd(2.5)

	tests := []struct {
		in   string
		want string
	}{
		{in: "ans**2", want: "(-3)**2"},
		{in: "mem * ans", want: "2.5 * (-3)"},
		{in: "(ans)", want: "((-3))"},
		{in: "answer", want: "answer"},
		{in: "1 + 2", want: "1 + 2"},
	}
	for _, tc := range tests {
		got, err := s.Splice(tc.in)
		if err != nil {
			t.Fatalf("splicing %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("splicing %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}

	n, err := s.Evaluate("ans**2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "9" {
		t.Fatalf("expected 9, got %s", n)
	}
	if h := s.History(); h[0].Expression != "ans**2" {
		t.Fatalf("expected history to keep the typed expression, got %q", h[0].Expression)
	}
}

func TestApply(t *testing.T) {
	s := New()

	n, err := s.Apply(arith.OpPower, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.String() != "8" {
		t.Fatalf("expected 8, got %s", n)
	}
	if got := s.History()[0].String(); got != "2 ** 3 = 8" {
		t.Fatalf("unexpected history entry %q", got)
	}

	if _, err := s.Apply(arith.OpModulo, 5, 0); !errors.Is(err, arith.ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	if _, err := s.Apply(arith.OpMultiply, 1e308, 10); !errors.Is(err, arith.ErrOverflow) {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}

	if ans, _ := s.Answer(); ans.String() != "8" {
		t.Fatalf("expected answer to stay 8, got %s", ans)
	}
}

func TestHistoryLimit(t *testing.T) {
	s := New(WithHistoryLimit(3))
	for i := 1; i <= 5; i++ {
		if _, err := s.Evaluate(fmt.Sprintf("%d*2", i)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	h := s.History()
	if len(h) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(h))
	}
	if h[0].Expression != "5*2" || h[2].Expression != "3*2" {
		t.Fatalf("unexpected history order %v", h)
	}

	n, err := s.Recall(1)
	if err != nil || n.String() != "8" {
		t.Fatalf("expected 8, got %s (%v)", n, err)
	}
	if ans, _ := s.Answer(); ans.String() != "8" {
		t.Fatalf("expected recalled entry to become the answer, got %s", ans)
	}
	if got, err := s.Evaluate("ans+1"); err != nil || got.String() != "9" {
		t.Fatalf("expected 9, got %s (%v)", got, err)
	}
	if _, err := s.Recall(4); !errors.Is(err, ErrNoEntry) {
		t.Fatalf("expected ErrNoEntry, got %v", err)
	}
	if ans, _ := s.Answer(); ans.String() != "9" {
		t.Fatalf("expected failed recall to keep the answer, got %s", ans)
	}

	s.ClearHistory()
	if len(s.History()) != 0 {
		t.Fatal("expected empty history")
	}
}

func TestHistoryDisabled(t *testing.T) {
	s := New(WithHistoryLimit(0))
	if _, err := s.Evaluate("1+1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.History()) != 0 {
		t.Fatal("expected no history")
	}
	if _, ok := s.Answer(); !ok {
		t.Fatal("expected answer to be recorded")
	}
}

func TestMemory(t *testing.T) {
	s := New()
	if got := s.MemoryRecall().String(); got != "0" {
		t.Fatalf("expected 0, got %s", got)
	}
	s.MemoryAdd(5)
	if got := s.MemorySubtract(1.5).String(); got != "3.5" {
		t.Fatalf("expected 3.5, got %s", got)
	}
	s.MemoryClear()
	if got := s.MemoryRecall().String(); got != "0" {
		t.Fatalf("expected 0, got %s", got)
	}
}
