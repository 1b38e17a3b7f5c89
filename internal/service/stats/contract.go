//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stats_test
package stats

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	IncrementCreated(ctx context.Context) error
	ApplyTransition(ctx context.Context, from, to entities.OrderStatusType, deliveryTime time.Duration) error

	Snapshot(ctx context.Context) (*entities.DeliveryStatistics, error)
	Recount(ctx context.Context) error
}

// Cache best-effort: промахи и ошибки обрабатываются внутри адаптера,
// чтение статистики не должно падать из-за недоступного кеша.
type Cache interface {
	Get(ctx context.Context) (*entities.DeliveryStatistics, bool)
	Set(ctx context.Context, statistics entities.DeliveryStatistics)
	Invalidate(ctx context.Context)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
