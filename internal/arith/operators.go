package arith

// Operator binds an operator symbol and its name to a primitive.
type Operator struct {
	Symbol string
	Name   string
	Apply  Func
}

var (
	OpAdd      = Operator{Symbol: "+", Name: "add", Apply: Add}
	OpSubtract = Operator{Symbol: "-", Name: "subtract", Apply: Sub}
	OpMultiply = Operator{Symbol: "*", Name: "multiply", Apply: Mul}
	OpDivide   = Operator{Symbol: "/", Name: "divide", Apply: Div}
	OpModulo   = Operator{Symbol: "%", Name: "modulo", Apply: Mod}
	OpPower    = Operator{Symbol: "**", Name: "power", Apply: Power}
)

// Operators lists every binary operator in display order.
var Operators = []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpModulo}

// BySymbol looks up an operator by its symbol, e.g. "**".
func BySymbol(symbol string) (Operator, bool) {
	for _, op := range Operators {
		if op.Symbol == symbol {
			return op, true
		}
	}
	return Operator{}, false
}

// ByName looks up an operator by its name, e.g. "power".
func ByName(name string) (Operator, bool) {
	for _, op := range Operators {
		if op.Name == name {
			return op, true
		}
	}
	return Operator{}, false
}

// Symbols returns the operator symbols separated by spaces.
func Symbols() string {
	var s string
	for i, op := range Operators {
		if i > 0 {
			s += " "
		}
		s += op.Symbol
	}
	return s
}
