package payment_event

import (
	"marketplace/internal/pkg/factory/payment_handle"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type HandlerFactory interface {
	GetHandler(eventType string) (payment_handle.ExecuteFn, error)
}
