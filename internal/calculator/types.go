package calculator

import "go-chi-calculator/internal/expr"

// CalcRequest is the JSON body for the binary operations.
type CalcRequest struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// CalcResponse is the JSON response for the binary operation endpoints.
type CalcResponse struct {
	Operation string      `json:"operation"`
	A         float64     `json:"a"`
	B         float64     `json:"b"`
	Result    expr.Number `json:"result"`
}

// ChainStep describes a single step in a chained calculation.
type ChainStep struct {
	Op    string  `json:"op"`    // an operator name such as "add" or "power"
	Value float64 `json:"value"` // the operand applied with the running total
}

// ChainRequest is the JSON body for POST /calculator/chain.
type ChainRequest struct {
	Initial float64     `json:"initial"` // starting value
	Steps   []ChainStep `json:"steps"`
}

// ChainResponse is the JSON response for POST /calculator/chain.
type ChainResponse struct {
	Initial float64       `json:"initial"`
	Steps   []ChainResult `json:"steps"`
	Result  expr.Number   `json:"result"`
}

// ChainResult records one executed step.
type ChainResult struct {
	Op     string      `json:"op"`
	Value  float64     `json:"value"`
	Result expr.Number `json:"result"`
}

// EvaluateRequest is the JSON body for POST /calculator/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is the JSON response for POST /calculator/evaluate.
type EvaluateResponse struct {
	Expression string      `json:"expression"`
	Result     expr.Number `json:"result"`
}
