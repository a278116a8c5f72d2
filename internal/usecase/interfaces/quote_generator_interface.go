package interfaces

import (
	"context"

	"metalmetrics/internal/domain/entities"
)

// IQuoteGenerator abstracts the external AI quote producer.
//
// The generator returns a candidate set of estimate inputs plus a suggested
// quote price, and a serialized snapshot of the prompt for audit provenance.
// The engine treats the suggestion as ordinary estimate input.
type IQuoteGenerator interface {
	GenerateQuote(ctx context.Context, req entities.AIQuoteRequest) (suggestion entities.AIQuoteSuggestion, promptSnapshot string, err error)
}
