package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = "id, status, status_history, pricing, payment, shipping, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	historyJSON, err := json.Marshal(orderModel.StatusHistory)
	if err != nil {
		return nil, fmt.Errorf("marshal status history: %w", err)
	}

	query := `
		INSERT INTO orders (id, status, status_history, pricing, payment, shipping, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.Status,
		historyJSON,
		orderModel.Pricing,
		orderModel.Payment,
		orderModel.Shipping,
		orderModel.CreatedAt,
		orderModel.UpdatedAt,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("order %s already exists: %w", orderEntity.ID, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.getOne(ctx, query, orderID)
}

// GetByIDForUpdate блокирует строку заказа до конца транзакции, проверка
// перехода и дополнение журнала выполняются без гонок.
func (r *Repository) GetByIDForUpdate(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`
	return r.getOne(ctx, query, orderID)
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.OrderStatusType, limit, offset uint64) ([]entities.Order, error) {
	builder := qb.
		Select("id", "status", "status_history", "pricing", "payment", "shipping", "created_at", "updated_at").
		From("orders").
		Where(sq.Eq{"status": status.String()}).
		OrderBy("created_at DESC", "id DESC")

	if limit > 0 {
		builder = builder.Limit(limit)
	}
	if offset > 0 {
		builder = builder.Offset(offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get by status query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get by status error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orders = append(orders, *ToDomain(orderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

// AppendStatus одним UPDATE меняет скалярный статус, дописывает запись в
// jsonb-журнал и проставляет отметки отгрузки/вручения. Частичного состояния
// между журналом и статусом не бывает.
func (r *Repository) AppendStatus(ctx context.Context, orderID string, entry entities.StatusHistoryEntry) (*entities.Order, error) {
	entryJSON, err := json.Marshal(FromDomainHistoryEntry(entry))
	if err != nil {
		return nil, fmt.Errorf("marshal history entry: %w", err)
	}

	query := `
		UPDATE orders
		SET status = $2,
		    status_history = status_history || $3::jsonb,
		    shipping = CASE
		        WHEN $2 = 'shipped' THEN jsonb_set(shipping, '{shippedAt}', to_jsonb($4::timestamptz))
		        WHEN $2 = 'delivered' THEN jsonb_set(shipping, '{deliveredAt}', to_jsonb($4::timestamptz))
		        ELSE shipping
		    END,
		    updated_at = $4
		WHERE id = $1
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(ctx, query, orderID, entry.Status.String(), entryJSON, entry.Timestamp)

	updated, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository append status error: %w", err)
	}

	return ToDomain(updated), nil
}

func (r *Repository) SetDriver(ctx context.Context, orderID string, driver entities.Driver) (*entities.Order, error) {
	driverJSON, err := json.Marshal(DriverDB{
		ID:    driver.ID,
		Name:  driver.Name,
		Phone: driver.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal driver: %w", err)
	}

	query := `
		UPDATE orders
		SET shipping = jsonb_set(shipping, '{driver}', $2::jsonb),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(ctx, query, orderID, driverJSON)

	updated, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository set driver error: %w", err)
	}

	return ToDomain(updated), nil
}

func (r *Repository) MarkPaymentCaptured(ctx context.Context, orderID string, transactionID string, capturedAt time.Time) error {
	query := `
		UPDATE orders
		SET payment = payment || jsonb_build_object('transactionId', $2::text, 'capturedAt', to_jsonb($3::timestamptz)),
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, transactionID, capturedAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark payment captured error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, query string, orderID string) (*entities.Order, error) {
	row := r.querier.QueryRow(ctx, query, orderID)

	orderModel, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Status,
		&orderModel.StatusHistory,
		&orderModel.Pricing,
		&orderModel.Payment,
		&orderModel.Shipping,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
