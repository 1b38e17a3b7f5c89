//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_suggestion_post_test
package rate_suggestion_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Gateway interface {
	SuggestRate(ctx context.Context, query entities.RateQuery) (*entities.RateSuggestion, error)
}
