package stats_reconcile

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	Reconcile(ctx context.Context) error
}

// StatsReconcile периодически пересчитывает счетчики статистики из таблицы
// заказов, устраняя дрейф инкрементальных счетчиков.
type StatsReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatsReconcile(log logger.Logger, service Service, interval time.Duration) *StatsReconcile {
	return &StatsReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatsReconcile) TTL() time.Duration {
	return s.interval
}

func (s *StatsReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	err := s.service.Reconcile(ctxWithTimeout)
	if err == nil {
		s.log.Info("stats reconcile")
	}

	return err
}

func (s *StatsReconcile) Info() string {
	return "stats reconcile"
}
