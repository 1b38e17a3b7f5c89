//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_secure_action_post_test
package admin_secure_action_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/pkg/auth"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type tokenVerifier interface {
	ParseBearer(header string) (*auth.Claims, error)
}

type OrderService interface {
	UpdateStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, note string, actor entities.Actor) (*entities.Order, error)
	RefundOrder(ctx context.Context, orderID string, note string, actor entities.Actor) (*entities.Order, error)
	AssignDriver(ctx context.Context, orderID string, driver entities.Driver, actor entities.Actor) (*entities.Order, error)
	ConfirmPayment(ctx context.Context, orderID string, transactionID string, actor entities.Actor) (*entities.Order, error)
}

type StatsService interface {
	GetDeliveryStatistics(ctx context.Context) (*entities.DeliveryStatistics, error)
	Reconcile(ctx context.Context) error
}
