package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "payment-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type PaymentGateway struct {
	client  httpDoer
	retrier retrier
	baseURL string
	apiKey  string
}

func New(client httpDoer, baseURL, apiKey string) *PaymentGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &PaymentGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

type verificationResponse struct {
	TransactionID string `json:"transactionId"`
	Verified      bool   `json:"verified"`
}

func (g *PaymentGateway) VerifyTransaction(ctx context.Context, transactionID string) (bool, error) {
	endpoint := fmt.Sprintf("%s/api/v1/transactions/%s/verification", g.baseURL, url.PathEscape(transactionID))

	var resp verificationResponse

	err := g.executeWithMetrics(ctx, "VerifyTransaction", func(ctx context.Context) error {
		return g.getJSON(ctx, endpoint, &resp)
	})
	if err != nil {
		return false, fmt.Errorf("gateway payment, verify transaction %s: %w", transactionID, err)
	}

	return resp.Verified, nil
}

func (g *PaymentGateway) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-API-Key", g.apiKey)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = httpResp.Body.Close() }()

	if httpResp.StatusCode != http.StatusOK {
		return &statusError{code: httpResp.StatusCode}
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.code)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		// транспортная ошибка, соединение могло восстановиться
		return true
	}

	switch {
	case statusErr.code == http.StatusTooManyRequests:
		return true
	case statusErr.code >= http.StatusInternalServerError:
		return true
	default:
		return false
	}
}

func (g *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getStatusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getStatusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *statusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "transport_error"
}
