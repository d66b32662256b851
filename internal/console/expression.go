package console

import (
	"context"
	"strconv"
	"strings"

	"go-chi-calculator/internal/session"

	"go.uber.org/zap"
)

const expressionHelp = `Type an expression using numbers, ( ) and + - * / % **.
Use "ans" for the last result and "mem" for the memory register.
Commands:
  history   list previous results, newest first
  recall N  make result N of the history list the last answer
  clear     forget the history
  mc        clear memory
  mr        show memory
  m+ / m-   add / subtract the last result to / from memory
  help      show this text
  q         quit
`

func (c *Console) runExpressions(ctx context.Context) error {
	c.printf("Calculator. Type 'help' for commands, 'q' to quit.\n")
	for {
		line, ok, err := c.readLine(ctx, "> ")
		if !ok {
			return err
		}
		if line == "" {
			continue
		}

		switch strings.ToLower(line) {
		case "q", "quit", "exit":
			c.printf("Goodbye!\n")
			return nil
		case "help", "?":
			c.printf("%s", expressionHelp)
		case "history":
			c.printHistory()
		case "clear":
			c.session.ClearHistory()
			c.printf("History cleared\n")
		case "mc":
			c.session.MemoryClear()
			c.printf("Memory cleared\n")
		case "mr":
			c.printf("M = %s\n", c.session.MemoryRecall())
		case "m+", "m-":
			c.memoryFromAnswer(strings.ToLower(line) == "m+")
		default:
			if f := strings.Fields(line); strings.EqualFold(f[0], "recall") {
				c.recall(f[1:])
				continue
			}
			c.evaluate(line)
		}
	}
}

func (c *Console) evaluate(line string) {
	n, err := c.session.Evaluate(line)
	if err != nil {
		c.logger.Debug("evaluation failed", zap.String("expression", line), zap.Error(err))
		c.printError(err)
		return
	}
	c.logger.Debug("evaluated", zap.String("expression", line), zap.Stringer("result", n))
	c.printf("%s\n", n)
}

func (c *Console) printHistory() {
	h := c.session.History()
	if len(h) == 0 {
		c.printf("No history yet.\n")
		return
	}
	for i, e := range h {
		c.printf("%d: %s\n", i+1, e)
	}
}

// recall handles "recall N", where N numbers entries as the history command
// prints them.
func (c *Console) recall(args []string) {
	if len(args) != 1 {
		c.printf("Usage: recall N\n")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		c.printf("Usage: recall N\n")
		return
	}
	v, err := c.session.Recall(n - 1)
	if err != nil {
		c.logger.Debug("recall failed", zap.Int("entry", n), zap.Error(err))
		c.printf("Error: %v\n", session.ErrNoEntry)
		return
	}
	c.logger.Debug("recalled", zap.Int("entry", n), zap.Stringer("result", v))
	c.printf("%s\n", v)
}

func (c *Console) memoryFromAnswer(add bool) {
	ans, ok := c.session.Answer()
	if !ok {
		c.printf("No previous answer\n")
		return
	}
	if add {
		c.printf("M+ (%s)\n", c.session.MemoryAdd(ans.Float64()))
		return
	}
	c.printf("M- (%s)\n", c.session.MemorySubtract(ans.Float64()))
}
