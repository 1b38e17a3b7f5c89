package delivery_stats_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	statistics, err := h.service.GetDeliveryStatistics(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	byStatus := make(map[string]int64, len(statistics.ByStatus))
	for status, count := range statistics.ByStatus {
		byStatus[status.String()] = count
	}

	response := dto.DeliveryStatistics{
		TotalDeliveries:     statistics.TotalDeliveries,
		CompletedDeliveries: statistics.CompletedDeliveries,
		InTransitDeliveries: statistics.InTransitDeliveries,
		FailedDeliveries:    statistics.FailedDeliveries,
		ByStatus:            byStatus,
		AvgDeliveryTimeMs:   statistics.AvgDeliveryTime.Milliseconds(),
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
