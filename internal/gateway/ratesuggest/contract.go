//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ratesuggest_test
package ratesuggest

import (
	"context"

	"google.golang.org/genai"
)

type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}
