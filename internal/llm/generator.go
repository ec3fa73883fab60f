// Package llm provides the text-generation capability behind the financial
// analysis endpoint.
package llm

import (
	"context"

	"centavo/internal/models"
)

// Generator produces advisory text from a financial snapshot. Any
// text-generation function satisfies the contract; implementations may fail
// and callers are expected to degrade gracefully.
type Generator interface {
	Generate(ctx context.Context, data models.FinancialData) (string, error)
}
