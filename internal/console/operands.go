package console

import (
	"context"
	"math"
	"strconv"
	"strings"

	"go-chi-calculator/internal/arith"
	"go-chi-calculator/internal/expr"

	"go.uber.org/zap"
)

const operandsBanner = `
=============================
       Go CLI Calculator
=============================
Ops: + - * / ** %
Type 'ans' to reuse last result, 'q' to quit.

`

func (c *Console) runOperands(ctx context.Context) error {
	c.printf("%s", operandsBanner)
	for {
		cmd, ok, err := c.readLine(ctx, "Press Enter to start, or 'q' to quit: ")
		if !ok {
			return err
		}
		if strings.EqualFold(cmd, "q") {
			c.printf("Goodbye!\n")
			return nil
		}

		a, ok, err := c.readNumber(ctx, "Enter first number: ")
		if !ok {
			return err
		}
		op, ok, err := c.readOperator(ctx)
		if !ok {
			return err
		}
		b, ok, err := c.readNumber(ctx, "Enter second number: ")
		if !ok {
			return err
		}

		n, err := c.session.Apply(op, a, b)
		if err != nil {
			c.logger.Debug("operation failed", zap.String("operation", op.Name), zap.Error(err))
			c.printError(err)
			continue
		}
		c.logger.Debug("operation completed", zap.String("operation", op.Name), zap.Stringer("result", n))
		c.printf("Result: %s %s %s = %s\n", expr.Normalize(a), op.Symbol, expr.Normalize(b), n)
	}
}

// readNumber prompts until the user enters a finite number or "ans".
func (c *Console) readNumber(ctx context.Context, prompt string) (float64, bool, error) {
	for {
		raw, ok, err := c.readLine(ctx, prompt)
		if !ok {
			return 0, false, err
		}
		if strings.EqualFold(raw, "ans") {
			ans, ok := c.session.Answer()
			if !ok {
				c.printf("No previous answer yet.\n")
				continue
			}
			return ans.Float64(), true, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			c.printf("Please enter a number (or 'ans').\n")
			continue
		}
		return v, true, nil
	}
}

// readOperator prompts until the user enters one of the operator symbols.
func (c *Console) readOperator(ctx context.Context) (arith.Operator, bool, error) {
	prompt := "Choose operation (" + arith.Symbols() + "): "
	for {
		raw, ok, err := c.readLine(ctx, prompt)
		if !ok {
			return arith.Operator{}, false, err
		}
		if op, found := arith.BySymbol(raw); found {
			return op, true, nil
		}
		c.printf("Invalid op. Use one of: %s\n", arith.Symbols())
	}
}
