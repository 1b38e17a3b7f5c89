package transaction

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
)

const transactionColumns = "id, type, status, amount, description, entity, action, metadata, created_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetLegacyBatch(ctx context.Context, lastID int64, limit uint64) ([]entities.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE entity IS NULL AND action IS NULL AND id > $1
		ORDER BY id
		LIMIT $2
		FOR UPDATE
	`
	return r.getBatch(ctx, query, lastID, limit)
}

func (r *Repository) GetMigratedBatch(ctx context.Context, lastID int64, limit uint64) ([]entities.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE entity IS NOT NULL AND action IS NOT NULL AND id > $1
		ORDER BY id
		LIMIT $2
	`
	return r.getBatch(ctx, query, lastID, limit)
}

func (r *Repository) ApplyMigration(
	ctx context.Context,
	id int64,
	entity entities.TransactionEntity,
	action entities.TransactionAction,
	status entities.TransactionStatus,
	metadata map[string]interface{},
) error {
	metadataJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		UPDATE transactions
		SET entity = $2, action = $3, status = $4, metadata = $5
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, string(entity), string(action), string(status), metadataJSON)
	if err != nil {
		return fmt.Errorf("unexpected transaction repository apply migration error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d not found", id)
	}

	return nil
}

func (r *Repository) RestoreLegacy(ctx context.Context, id int64, legacyType, legacyStatus string) error {
	query := `
		UPDATE transactions
		SET type = $2, status = $3, entity = NULL, action = NULL, metadata = NULL
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, legacyType, legacyStatus)
	if err != nil {
		return fmt.Errorf("unexpected transaction repository restore legacy error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("transaction %d not found", id)
	}

	return nil
}

func (r *Repository) CountLegacy(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM transactions WHERE entity IS NULL AND action IS NULL`)
}

func (r *Repository) CountMigrated(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM transactions WHERE entity IS NOT NULL AND action IS NOT NULL`)
}

func (r *Repository) getBatch(ctx context.Context, query string, lastID int64, limit uint64) ([]entities.Transaction, error) {
	rows, err := r.querier.Query(ctx, query, lastID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected transaction repository batch error: %w", err)
	}
	defer rows.Close()

	transactions := make([]entities.Transaction, 0, limit)
	for rows.Next() {
		transactionModel, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected transaction repository scan error: %w", err)
		}
		transactions = append(transactions, *ToDomain(transactionModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected transaction repository rows error: %w", err)
	}

	return transactions, nil
}

func (r *Repository) count(ctx context.Context, query string) (int64, error) {
	var total int64
	if err := r.querier.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("unexpected transaction repository count error: %w", err)
	}
	return total, nil
}

func scanTransaction(row pgx.Row) (*TransactionDB, error) {
	var transactionModel TransactionDB
	err := row.Scan(
		&transactionModel.ID,
		&transactionModel.Type,
		&transactionModel.Status,
		&transactionModel.Amount,
		&transactionModel.Description,
		&transactionModel.Entity,
		&transactionModel.Action,
		&transactionModel.Metadata,
		&transactionModel.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &transactionModel, nil
}
