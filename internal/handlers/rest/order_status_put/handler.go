package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/orderview"
	"marketplace/internal/service/order"
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
	orderID := mux.Vars(r)["id"]

	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	actor := entities.Actor{
		UID:  statusUpdateDTO.Actor.UID,
		Role: entities.ActorRole(statusUpdateDTO.Actor.Role),
	}

	updatedOrder, err := h.service.UpdateStatus(
		r.Context(),
		orderID,
		entities.OrderStatusType(statusUpdateDTO.Status),
		statusUpdateDTO.Note,
		actor,
	)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderview.FromEntity(*updatedOrder))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidActor),
		errors.Is(err, order.ErrUndefinedStatus),
		errors.Is(err, order.ErrRefundNotAllowed):
		status = http.StatusBadRequest
	case errors.Is(err, order.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrTerminalStatus),
		errors.Is(err, order.ErrInvalidTransition):
		status = http.StatusConflict
	default:
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// в теле причина отказа, фронту нужна деталь перехода
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encodeErr := json.NewEncoder(w).Encode(dto.Error{Error: err.Error()})
	if encodeErr != nil {
		h.log.With(
			logger.NewField("error", encodeErr),
		).Error("encode JSON response")
	}
}
