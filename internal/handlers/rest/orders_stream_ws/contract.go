//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_stream_ws_test
package orders_stream_ws

import (
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
	"marketplace/pkg/stream"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Subscribe() *stream.Subscription[entities.OrderStatusEvent]
}
