//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error)
	GetByStatus(ctx context.Context, status entities.OrderStatusType, limit, offset uint64) ([]entities.Order, error)

	AppendStatus(ctx context.Context, orderID string, entry entities.StatusHistoryEntry) (*entities.Order, error)
	SetDriver(ctx context.Context, orderID string, driver entities.Driver) (*entities.Order, error)
	MarkPaymentCaptured(ctx context.Context, orderID string, transactionID string, capturedAt time.Time) error
}

type TaskRepository interface {
	Create(ctx context.Context, taskModify entities.DriverTaskModify) (*entities.DriverTask, error)
}

type StatsRecorder interface {
	RecordCreated(ctx context.Context) error
	RecordTransition(ctx context.Context, from, to entities.OrderStatusType, deliveryTime time.Duration) error
}

type PaymentGateway interface {
	VerifyTransaction(ctx context.Context, transactionID string) (bool, error)
}

// Publisher и Notifier вызываются после фиксации транзакции, ретраи и
// логирование ошибок внутри адаптеров.
type Publisher interface {
	PublishStatusChanged(event entities.OrderStatusEvent)
}

type Notifier interface {
	NotifyDriverAssigned(task entities.DriverTask, order entities.Order)
}

type TransitionGuard interface {
	CanTransition(from, to entities.OrderStatusType) bool
	AllowedFrom(from entities.OrderStatusType) []entities.OrderStatusType
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
