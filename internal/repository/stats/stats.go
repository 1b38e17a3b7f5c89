package stats

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

// Счетчики живут в двух таблицах: delivery_stats хранит количество заказов по
// статусам, delivery_totals единственной строкой хранит сквозные суммы.
// Инкременты выполняются в транзакции смены статуса через ctx.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) IncrementCreated(ctx context.Context) error {
	query := `
		INSERT INTO delivery_stats (status, orders_count)
		VALUES ('pending', 1)
		ON CONFLICT (status) DO UPDATE SET orders_count = delivery_stats.orders_count + 1
	`
	if _, err := r.querier.Exec(ctx, query); err != nil {
		return fmt.Errorf("unexpected stats repository increment pending error: %w", err)
	}

	query = `UPDATE delivery_totals SET total_created = total_created + 1 WHERE id = 1`
	if _, err := r.querier.Exec(ctx, query); err != nil {
		return fmt.Errorf("unexpected stats repository increment total error: %w", err)
	}

	return nil
}

func (r *Repository) ApplyTransition(ctx context.Context, from, to entities.OrderStatusType, deliveryTime time.Duration) error {
	query := `
		UPDATE delivery_stats
		SET orders_count = GREATEST(orders_count - 1, 0)
		WHERE status = $1
	`
	if _, err := r.querier.Exec(ctx, query, from.String()); err != nil {
		return fmt.Errorf("unexpected stats repository decrement error: %w", err)
	}

	query = `
		INSERT INTO delivery_stats (status, orders_count)
		VALUES ($1, 1)
		ON CONFLICT (status) DO UPDATE SET orders_count = delivery_stats.orders_count + 1
	`
	if _, err := r.querier.Exec(ctx, query, to.String()); err != nil {
		return fmt.Errorf("unexpected stats repository increment error: %w", err)
	}

	if to == entities.OrderDelivered {
		query = `
			UPDATE delivery_totals
			SET delivered_count = delivered_count + 1,
			    delivery_time_total_ms = delivery_time_total_ms + $1
			WHERE id = 1
		`
		if _, err := r.querier.Exec(ctx, query, deliveryTime.Milliseconds()); err != nil {
			return fmt.Errorf("unexpected stats repository delivered totals error: %w", err)
		}
	}

	return nil
}

func (r *Repository) Snapshot(ctx context.Context) (*entities.DeliveryStatistics, error) {
	byStatus := make(map[entities.OrderStatusType]int64)

	rows, err := r.querier.Query(ctx, `SELECT status, orders_count FROM delivery_stats`)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository snapshot error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected stats repository scan error: %w", err)
		}
		byStatus[entities.OrderStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository rows error: %w", err)
	}

	var (
		totalCreated        int64
		deliveredCount      int64
		deliveryTimeTotalMs int64
	)
	err = r.querier.QueryRow(ctx, `
		SELECT total_created, delivered_count, delivery_time_total_ms
		FROM delivery_totals
		WHERE id = 1
	`).Scan(&totalCreated, &deliveredCount, &deliveryTimeTotalMs)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository totals error: %w", err)
	}

	statistics := &entities.DeliveryStatistics{
		TotalDeliveries:     totalCreated,
		CompletedDeliveries: byStatus[entities.OrderDelivered],
		InTransitDeliveries: byStatus[entities.OrderInTransit],
		FailedDeliveries:    byStatus[entities.OrderFailed],
		ByStatus:            byStatus,
	}
	if deliveredCount > 0 {
		statistics.AvgDeliveryTime = time.Duration(deliveryTimeTotalMs/deliveredCount) * time.Millisecond
	}

	return statistics, nil
}

// Recount полный пересчет из таблицы заказов; вызывается фоновой задачей
// внутри транзакции, чтобы читатели не видели пустые счетчики.
func (r *Repository) Recount(ctx context.Context) error {
	if _, err := r.querier.Exec(ctx, `DELETE FROM delivery_stats`); err != nil {
		return fmt.Errorf("unexpected stats repository reset error: %w", err)
	}

	query := `
		INSERT INTO delivery_stats (status, orders_count)
		SELECT status, COUNT(*) FROM orders GROUP BY status
	`
	if _, err := r.querier.Exec(ctx, query); err != nil {
		return fmt.Errorf("unexpected stats repository rebuild error: %w", err)
	}

	query = `
		UPDATE delivery_totals
		SET total_created = (SELECT COUNT(*) FROM orders),
		    delivered_count = (SELECT COUNT(*) FROM orders WHERE status = 'delivered'),
		    delivery_time_total_ms = (
		        SELECT COALESCE(SUM(
		            EXTRACT(EPOCH FROM (
		                (shipping->>'deliveredAt')::timestamptz - (shipping->>'shippedAt')::timestamptz
		            )) * 1000
		        ), 0)::bigint
		        FROM orders
		        WHERE shipping->>'shippedAt' IS NOT NULL
		          AND shipping->>'deliveredAt' IS NOT NULL
		    )
		WHERE id = 1
	`
	if _, err := r.querier.Exec(ctx, query); err != nil {
		return fmt.Errorf("unexpected stats repository totals rebuild error: %w", err)
	}

	return nil
}
