package calculator

import (
	"github.com/go-chi/chi/v5"

	"go-chi-calculator/internal/arith"
)

// RegisterRoutes mounts all calculator endpoints onto the given router
// under the /calculator prefix: one per primitive, plus /chain and /evaluate.
func RegisterRoutes(r chi.Router) {
	r.Route("/calculator", func(r chi.Router) {
		for _, op := range arith.Operators {
			r.Post("/"+op.Name, Binary(op))
		}
		r.Post("/chain", Chain)
		r.Post("/evaluate", Evaluate)
	})
}
