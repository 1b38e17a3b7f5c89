package order_driver_post

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

	var driverAssignDTO dto.DriverAssign
	err := json.NewDecoder(r.Body).Decode(&driverAssignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driver := entities.Driver{
		ID:    driverAssignDTO.Driver.ID,
		Name:  driverAssignDTO.Driver.Name,
		Phone: driverAssignDTO.Driver.Phone,
	}
	actor := entities.Actor{
		UID:  driverAssignDTO.Actor.UID,
		Role: entities.ActorRole(driverAssignDTO.Actor.Role),
	}

	updatedOrder, err := h.service.AssignDriver(r.Context(), orderID, driver, actor)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidDriver),
			errors.Is(err, order.ErrInvalidActor):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrTerminalStatus):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
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
