package stats

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

const cacheKey = "delivery:statistics"

// Cache горячий снимок статистики в redis. Недоступный redis деградирует
// до чтения из базы, ошибки здесь только логируются.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

type cachedStatistics struct {
	TotalDeliveries     int64            `json:"totalDeliveries"`
	CompletedDeliveries int64            `json:"completedDeliveries"`
	InTransitDeliveries int64            `json:"inTransitDeliveries"`
	FailedDeliveries    int64            `json:"failedDeliveries"`
	ByStatus            map[string]int64 `json:"byStatus"`
	AvgDeliveryTimeMs   int64            `json:"avgDeliveryTimeMs"`
}

func (c *Cache) Get(ctx context.Context) (*entities.DeliveryStatistics, bool) {
	payload, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("stats cache get failed", logger.NewField("error", err))
		}
		return nil, false
	}

	var cached cachedStatistics
	if err := json.Unmarshal(payload, &cached); err != nil {
		c.log.Warn("stats cache payload is corrupted", logger.NewField("error", err))
		return nil, false
	}

	byStatus := make(map[entities.OrderStatusType]int64, len(cached.ByStatus))
	for status, count := range cached.ByStatus {
		byStatus[entities.OrderStatusType(status)] = count
	}

	return &entities.DeliveryStatistics{
		TotalDeliveries:     cached.TotalDeliveries,
		CompletedDeliveries: cached.CompletedDeliveries,
		InTransitDeliveries: cached.InTransitDeliveries,
		FailedDeliveries:    cached.FailedDeliveries,
		ByStatus:            byStatus,
		AvgDeliveryTime:     time.Duration(cached.AvgDeliveryTimeMs) * time.Millisecond,
	}, true
}

func (c *Cache) Set(ctx context.Context, statistics entities.DeliveryStatistics) {
	byStatus := make(map[string]int64, len(statistics.ByStatus))
	for status, count := range statistics.ByStatus {
		byStatus[status.String()] = count
	}

	payload, err := json.Marshal(cachedStatistics{
		TotalDeliveries:     statistics.TotalDeliveries,
		CompletedDeliveries: statistics.CompletedDeliveries,
		InTransitDeliveries: statistics.InTransitDeliveries,
		FailedDeliveries:    statistics.FailedDeliveries,
		ByStatus:            byStatus,
		AvgDeliveryTimeMs:   statistics.AvgDeliveryTime.Milliseconds(),
	})
	if err != nil {
		c.log.Warn("stats cache marshal failed", logger.NewField("error", err))
		return
	}

	if err := c.client.Set(ctx, cacheKey, payload, c.ttl).Err(); err != nil {
		c.log.Warn("stats cache set failed", logger.NewField("error", err))
	}
}

func (c *Cache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		c.log.Warn("stats cache invalidate failed", logger.NewField("error", err))
	}
}
