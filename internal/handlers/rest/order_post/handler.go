package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.OrderDraft{
		Pricing: entities.Pricing{
			Amount:      orderCreateDTO.Amount,
			Currency:    orderCreateDTO.Currency,
			DeliveryFee: orderCreateDTO.DeliveryFee,
		},
		Payment: entities.Payment{
			Method: orderCreateDTO.PaymentMethod,
		},
		Shipping: entities.Shipping{
			Address: orderCreateDTO.Address,
		},
	}
	actor := entities.Actor{
		UID:  orderCreateDTO.Actor.UID,
		Role: entities.ActorRole(orderCreateDTO.Actor.Role),
	}

	createdOrder, err := h.service.CreateOrder(r.Context(), draft, actor)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(orderview.FromEntity(*createdOrder))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
