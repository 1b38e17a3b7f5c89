package admin_secure_action_post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/orderview"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

const (
	actionOrder = "order"
	actionStats = "stats"
)

var validate = validator.New()

type secureActionRequest struct {
	Action    string          `json:"action" validate:"required,oneof=order stats"`
	Operation string          `json:"operation" validate:"required"`
	Data      json.RawMessage `json:"data,omitempty"`
}

type updateStatusData struct {
	OrderID string `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
	Note    string `json:"note"`
}

type refundData struct {
	OrderID string `json:"orderId" validate:"required"`
	Note    string `json:"note"`
}

type assignDriverData struct {
	OrderID string `json:"orderId" validate:"required"`
	Driver  struct {
		ID    string `json:"id" validate:"required"`
		Name  string `json:"name" validate:"required"`
		Phone string `json:"phone"`
	} `json:"driver" validate:"required"`
}

type confirmPaymentData struct {
	OrderID       string `json:"orderId" validate:"required"`
	TransactionID string `json:"transactionId" validate:"required"`
}

type secureActionResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type Handler struct {
	log      handlerLogger
	verifier tokenVerifier
	orders   OrderService
	stats    StatsService
}

func New(log handlerLogger, verifier tokenVerifier, orders OrderService, stats StatsService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:      handlerLog,
		verifier: verifier,
		orders:   orders,
		stats:    stats,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, err := h.verifier.ParseBearer(r.Header.Get("Authorization"))
	if err != nil {
		h.respond(w, http.StatusUnauthorized, secureActionResponse{
			Success: false,
			Message: "authentication required",
		})
		return
	}
	if !claims.IsAdmin() {
		h.respond(w, http.StatusForbidden, secureActionResponse{
			Success: false,
			Message: "admin role required",
		})
		return
	}

	var request secureActionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.respond(w, http.StatusBadRequest, secureActionResponse{
			Success: false,
			Message: "malformed request body",
		})
		return
	}
	if err := validate.Struct(&request); err != nil {
		h.respond(w, http.StatusBadRequest, secureActionResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	actor := entities.Actor{UID: claims.UID, Role: entities.RoleAdmin}

	var (
		data interface{}
		msg  string
	)
	switch request.Action {
	case actionOrder:
		data, msg, err = h.dispatchOrder(r.Context(), request, actor)
	case actionStats:
		data, msg, err = h.dispatchStats(r.Context(), request)
	}
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respond(w, http.StatusOK, secureActionResponse{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

func (h *Handler) dispatchOrder(ctx context.Context, request secureActionRequest, actor entities.Actor) (interface{}, string, error) {
	switch request.Operation {
	case "update_status":
		var payload updateStatusData
		if err := decodeData(request.Data, &payload); err != nil {
			return nil, "", err
		}

		updated, err := h.orders.UpdateStatus(ctx, payload.OrderID, entities.OrderStatusType(payload.Status), payload.Note, actor)
		if err != nil {
			return nil, "", err
		}
		return orderview.FromEntity(*updated), "status updated", nil

	case "refund":
		var payload refundData
		if err := decodeData(request.Data, &payload); err != nil {
			return nil, "", err
		}

		refunded, err := h.orders.RefundOrder(ctx, payload.OrderID, payload.Note, actor)
		if err != nil {
			return nil, "", err
		}
		return orderview.FromEntity(*refunded), "order refunded", nil

	case "assign_driver":
		var payload assignDriverData
		if err := decodeData(request.Data, &payload); err != nil {
			return nil, "", err
		}

		driver := entities.Driver{
			ID:    payload.Driver.ID,
			Name:  payload.Driver.Name,
			Phone: payload.Driver.Phone,
		}
		updated, err := h.orders.AssignDriver(ctx, payload.OrderID, driver, actor)
		if err != nil {
			return nil, "", err
		}
		return orderview.FromEntity(*updated), "driver assigned", nil

	case "confirm_payment":
		var payload confirmPaymentData
		if err := decodeData(request.Data, &payload); err != nil {
			return nil, "", err
		}

		confirmed, err := h.orders.ConfirmPayment(ctx, payload.OrderID, payload.TransactionID, actor)
		if err != nil {
			return nil, "", err
		}
		return orderview.FromEntity(*confirmed), "payment confirmed", nil

	default:
		return nil, "", errUnknownOperation(request.Operation)
	}
}

func (h *Handler) dispatchStats(ctx context.Context, request secureActionRequest) (interface{}, string, error) {
	switch request.Operation {
	case "snapshot":
		statistics, err := h.stats.GetDeliveryStatistics(ctx)
		if err != nil {
			return nil, "", err
		}
		return statistics, "statistics snapshot", nil

	case "recount":
		if err := h.stats.Reconcile(ctx); err != nil {
			return nil, "", err
		}
		return nil, "statistics recounted", nil

	default:
		return nil, "", errUnknownOperation(request.Operation)
	}
}

type operationError struct {
	operation string
}

func (e *operationError) Error() string {
	return fmt.Sprintf("unknown operation: %s", e.operation)
}

func errUnknownOperation(operation string) error {
	return &operationError{operation: operation}
}

var errInvalidData = errors.New("invalid data payload")

func decodeData(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: data is required", errInvalidData)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidData, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %v", errInvalidData, err)
	}
	return nil
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	var status int
	var opErr *operationError

	switch {
	case errors.As(err, &opErr),
		errors.Is(err, errInvalidData),
		errors.Is(err, order.ErrInvalidOrderID),
		errors.Is(err, order.ErrInvalidActor),
		errors.Is(err, order.ErrInvalidDriver),
		errors.Is(err, order.ErrUndefinedStatus):
		status = http.StatusBadRequest
	case errors.Is(err, order.ErrOrderNotFound):
		status = http.StatusNotFound
	case errors.Is(err, order.ErrTerminalStatus),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrRefundNotAllowed),
		errors.Is(err, order.ErrPaymentNotVerified):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	h.respond(w, status, secureActionResponse{
		Success: false,
		Message: err.Error(),
	})
}

func (h *Handler) respond(w http.ResponseWriter, status int, response secureActionResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
