package payment_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/factory/payment_handle"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type paymentEventMessage struct {
	Type          string `json:"type"`
	OrderID       string `json:"orderId"`
	TransactionID string `json:"transactionId,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("payment.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("payment.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста),
// сообщение при этом остается неподтвержденным и будет перечитано.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var msg paymentEventMessage
	err := json.Unmarshal(message.Value, &msg)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_type", msg.Type),
		logger.NewField("order", msg.OrderID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.events processing")

	execute, err := h.factory.GetHandler(msg.Type)
	if err != nil {
		msgLog.With(
			logger.NewField("error", err),
		).Warn("payment.events handler skipped unknown event type")
		sess.MarkMessage(message, "")
		return false
	}

	event := entities.PaymentEvent{
		Type:          msg.Type,
		OrderID:       msg.OrderID,
		TransactionID: msg.TransactionID,
		Reason:        msg.Reason,
	}

	err = execute(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, payment_handle.ErrUnknownEventType):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler unknown event type")

		case errors.Is(err, order.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler order not found")

		case errors.Is(err, order.ErrTerminalStatus) || errors.Is(err, order.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler transition rejected")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.events: processed")

	sess.MarkMessage(message, "")
	return false
}
