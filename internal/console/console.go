// Package console implements the text front-end of the calculator. It reads
// lines from an io.Reader, writes prompts and results to an io.Writer, and
// keeps its state in a session.Session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go-chi-calculator/internal/arith"
	"go-chi-calculator/internal/session"

	"go.uber.org/zap"
)

// Mode selects how the console collects input.
type Mode string

const (
	// ModeExpression reads one free-form expression per line.
	ModeExpression Mode = "expr"
	// ModeOperands prompts for a number, an operator and a second number.
	ModeOperands Mode = "operands"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeExpression, ModeOperands:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeExpression, ModeOperands)
}

// Console is one interactive calculator session bound to an input and output.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	session *session.Session
	logger  *zap.Logger
}

// New returns a console reading from in and writing to out.
func New(in io.Reader, out io.Writer, s *session.Session, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		session: s,
		logger:  logger,
	}
}

// Run drives the console in mode until the user quits, the input ends or ctx
// is cancelled. Evaluation errors are printed and never end the loop.
func (c *Console) Run(ctx context.Context, mode Mode) error {
	c.logger.Debug("console started", zap.String("mode", string(mode)))
	defer c.logger.Debug("console stopped")

	switch mode {
	case ModeOperands:
		return c.runOperands(ctx)
	case ModeExpression, "":
		return c.runExpressions(ctx)
	}
	return fmt.Errorf("unknown mode %q", mode)
}

// maxLineBytes caps one input line, newline included.
const maxLineBytes = 64 << 10

// errLineTooLong is reported for a line over maxLineBytes. The rest of that
// line is discarded and reading goes on with the next one.
var errLineTooLong = errors.New("input line too long")

// readLine prints prompt and returns the next trimmed input line. ok is false
// at the end of input; err is set only for read failures.
func (c *Console) readLine(ctx context.Context, prompt string) (line string, ok bool, err error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", false, nil
		}
		fmt.Fprint(c.out, prompt)
		line, err := c.scan()
		switch {
		case errors.Is(err, errLineTooLong):
			c.printf("Error: %v\n", err)
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(c.out)
			return "", false, nil
		case err != nil:
			fmt.Fprintln(c.out)
			return "", false, err
		}
		return strings.TrimSpace(line), true, nil
	}
}

// scan reads one line. A final line without a newline still counts; io.EOF
// is returned only when nothing is left.
func (c *Console) scan() (string, error) {
	var buf []byte
	long := false
	for {
		chunk, err := c.in.ReadSlice('\n')
		if !long {
			if len(buf)+len(chunk) > maxLineBytes {
				long, buf = true, nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		if err != nil && !(errors.Is(err, io.EOF) && (len(buf) > 0 || long)) {
			return "", err
		}
		if long {
			return "", errLineTooLong
		}
		return string(buf), nil
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// printError writes err the way the user should see it. Division by zero gets
// its own wording so it stands apart from malformed input.
func (c *Console) printError(err error) {
	switch {
	case errors.Is(err, arith.ErrDivisionByZero):
		c.printf("Error: division by zero\n")
	default:
		c.printf("Error: %v\n", err)
	}
}
