package stats

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

// Service ведет счетчики доставок инкрементально: запись выполняется в той же
// транзакции, что и смена статуса заказа, чтение идет через кеш.
type Service struct {
	repository Repository
	cache      Cache
	txManager  TxManager
}

func New(repository Repository, cache Cache, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
		txManager:  txManager,
	}
}

func (s *Service) RecordCreated(ctx context.Context) error {
	if err := s.repository.IncrementCreated(ctx); err != nil {
		return fmt.Errorf("increment created counter: %w", err)
	}
	return nil
}

func (s *Service) RecordTransition(ctx context.Context, from, to entities.OrderStatusType, deliveryTime time.Duration) error {
	if err := s.repository.ApplyTransition(ctx, from, to, deliveryTime); err != nil {
		return fmt.Errorf("apply transition counters: %w", err)
	}
	return nil
}

func (s *Service) GetDeliveryStatistics(ctx context.Context) (*entities.DeliveryStatistics, error) {
	if cached, ok := s.cache.Get(ctx); ok {
		return cached, nil
	}

	snapshot, err := s.repository.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats snapshot: %w", err)
	}

	s.cache.Set(ctx, *snapshot)

	return snapshot, nil
}

// Reconcile пересчитывает счетчики полным сканом заказов; фоновая страховка
// от дрейфа, инкрементальный путь остается основным. Пересчет идет одной
// транзакцией, читатели не видят обнуленные счетчики.
func (s *Service) Reconcile(ctx context.Context) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Recount(ctx)
	})
	if err != nil {
		return fmt.Errorf("recount stats: %w", err)
	}

	s.cache.Invalidate(ctx)

	return nil
}
