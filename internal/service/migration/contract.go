//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=migration_test
package migration

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	// Выборки идут keyset-пагинацией по id, чтобы необработанные документы
	// не возвращались бесконечно.
	GetLegacyBatch(ctx context.Context, lastID int64, limit uint64) ([]entities.Transaction, error)
	GetMigratedBatch(ctx context.Context, lastID int64, limit uint64) ([]entities.Transaction, error)

	ApplyMigration(ctx context.Context, id int64, entity entities.TransactionEntity, action entities.TransactionAction, status entities.TransactionStatus, metadata map[string]interface{}) error
	RestoreLegacy(ctx context.Context, id int64, legacyType, legacyStatus string) error

	CountLegacy(ctx context.Context) (int64, error)
	CountMigrated(ctx context.Context) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
