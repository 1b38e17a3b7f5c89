package rate_suggestion_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/gateway/ratesuggest"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	gateway Gateway
}

func New(log handlerLogger, gateway Gateway) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		gateway: gateway,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var queryDTO dto.RateQuery
	err := json.NewDecoder(r.Body).Decode(&queryDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if queryDTO.PickupAddress == "" || queryDTO.DeliveryAddress == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	suggestion, err := h.gateway.SuggestRate(r.Context(), entities.RateQuery{
		PickupAddress:   queryDTO.PickupAddress,
		DeliveryAddress: queryDTO.DeliveryAddress,
		WeightKg:        queryDTO.WeightKg,
		Urgent:          queryDTO.Urgent,
	})
	if err != nil {
		if errors.Is(err, ratesuggest.ErrExternalService) {
			h.log.With(
				logger.NewField("error", err),
			).Warn("rate suggestion unavailable")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.RateSuggestion{
		Amount:      suggestion.Amount,
		Currency:    suggestion.Currency,
		DeliveryFee: suggestion.DeliveryFee,
		Rationale:   suggestion.Rationale,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
