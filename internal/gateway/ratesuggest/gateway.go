package ratesuggest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
	"marketplace/internal/entities"
)

var ErrExternalService = errors.New("rate suggestion service unavailable")

const temperature = 0.2

const promptTemplate = `You are a pricing assistant for a local delivery marketplace.
Suggest a delivery rate for the following order. Return ONLY valid JSON.

Order parameters:
- pickup address: %s
- delivery address: %s
- weight (kg): %.2f
- urgent: %t

Required JSON format:
{
"amount": integer,      // total order amount in minor currency units
"currency": string,     // ISO 4217 code
"deliveryFee": integer, // delivery fee in minor currency units
"rationale": string     // one short sentence
}`

type RateGateway struct {
	generator generator
	model     string
}

func New(generator generator, model string) *RateGateway {
	return &RateGateway{
		generator: generator,
		model:     model,
	}
}

// NewGenerativeClient подключение к Gemini API, клиент отдает Models
// как генератор для шлюза.
func NewGenerativeClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

type suggestionResponse struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	DeliveryFee int64  `json:"deliveryFee"`
	Rationale   string `json:"rationale"`
}

func (g *RateGateway) SuggestRate(ctx context.Context, query entities.RateQuery) (*entities.RateSuggestion, error) {
	prompt := fmt.Sprintf(promptTemplate,
		query.PickupAddress,
		query.DeliveryAddress,
		query.WeightKg,
		query.Urgent,
	)

	content := &genai.Content{
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}

	result, err := g.generator.GenerateContent(
		ctx,
		g.model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(temperature)),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %w", ErrExternalService, err)
	}

	if len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no content generated", ErrExternalService)
	}

	responseText := result.Candidates[0].Content.Parts[0].Text
	if responseText == "" {
		return nil, fmt.Errorf("%w: empty response", ErrExternalService)
	}

	var parsed suggestionResponse
	if err := json.Unmarshal([]byte(extractJSONFromMarkdown(responseText)), &parsed); err != nil {
		return nil, fmt.Errorf("%w: parse response: %w", ErrExternalService, err)
	}

	if parsed.Amount <= 0 || parsed.Currency == "" || parsed.DeliveryFee < 0 {
		return nil, fmt.Errorf("%w: implausible suggestion: amount=%d currency=%q fee=%d",
			ErrExternalService, parsed.Amount, parsed.Currency, parsed.DeliveryFee)
	}

	return &entities.RateSuggestion{
		Amount:      parsed.Amount,
		Currency:    parsed.Currency,
		DeliveryFee: parsed.DeliveryFee,
		Rationale:   parsed.Rationale,
	}, nil
}

// extractJSONFromMarkdown модель иногда заворачивает JSON в блок кода
func extractJSONFromMarkdown(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") && strings.HasSuffix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") && strings.HasSuffix(text, "```") {
		lines := strings.Split(text, "\n")
		if len(lines) > 1 {
			return strings.Join(lines[1:len(lines)-1], "\n")
		}
	}

	return text
}
