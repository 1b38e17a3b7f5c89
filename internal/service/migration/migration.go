package migration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

const defaultBatchSize = 500

// Метаданные происхождения пишутся при миграции и используются
// для отката и сверки.
const (
	metaMigrated       = "migrated"
	metaOriginalType   = "originalType"
	metaOriginalStatus = "originalStatus"
)

type Report struct {
	Total      int64
	Migrated   int64
	Skipped    int64
	Failed     int64
	Restored   int64
	Mismatches []string
}

type Service struct {
	repository Repository
	txManager  TxManager
	batchSize  uint64
}

func New(repository Repository, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		batchSize:  defaultBatchSize,
	}
}

// Migrate переводит легаси-документы на схему entity/action. Повторный запуск
// безопасен: документы с уже заполненными entity и action в выборку не попадают.
func (s *Service) Migrate(ctx context.Context) (*Report, error) {
	report := &Report{}
	lastID := int64(0)

	for {
		var batch []entities.Transaction

		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			batch, err = s.repository.GetLegacyBatch(ctx, lastID, s.batchSize)
			if err != nil {
				return fmt.Errorf("get legacy batch after id %d: %w", lastID, err)
			}

			for _, txn := range batch {
				report.Total++

				if txn.Migrated() {
					report.Skipped++
					continue
				}

				entity, action, err := mapLegacyType(txn.Type)
				if err != nil {
					report.Failed++
					report.Mismatches = append(report.Mismatches, fmt.Sprintf("id=%d: %v", txn.ID, err))
					continue
				}

				status, err := mapLegacyStatus(txn.Status)
				if err != nil {
					report.Failed++
					report.Mismatches = append(report.Mismatches, fmt.Sprintf("id=%d: %v", txn.ID, err))
					continue
				}

				metadata := map[string]interface{}{
					metaMigrated:       true,
					metaOriginalType:   txn.Type,
					metaOriginalStatus: txn.Status,
				}

				if err := s.repository.ApplyMigration(ctx, txn.ID, entity, action, status, metadata); err != nil {
					return fmt.Errorf("apply migration for id %d: %w", txn.ID, err)
				}
				report.Migrated++
			}
			return nil
		})
		if err != nil {
			return report, err
		}

		if len(batch) == 0 {
			return report, nil
		}
		lastID = batch[len(batch)-1].ID
	}
}

// Validate сверяет итог миграции: легаси-документов не осталось, у каждого
// мигрированного entity/action согласованы с сохраненным исходным типом.
func (s *Service) Validate(ctx context.Context) (*Report, error) {
	report := &Report{}

	legacyLeft, err := s.repository.CountLegacy(ctx)
	if err != nil {
		return report, fmt.Errorf("count legacy transactions: %w", err)
	}
	if legacyLeft > 0 {
		report.Mismatches = append(report.Mismatches, fmt.Sprintf("%d legacy transactions left unmigrated", legacyLeft))
	}

	migratedTotal, err := s.repository.CountMigrated(ctx)
	if err != nil {
		return report, fmt.Errorf("count migrated transactions: %w", err)
	}
	report.Total = migratedTotal

	lastID := int64(0)
	for {
		batch, err := s.repository.GetMigratedBatch(ctx, lastID, s.batchSize)
		if err != nil {
			return report, fmt.Errorf("get migrated batch after id %d: %w", lastID, err)
		}
		if len(batch) == 0 {
			break
		}

		for _, txn := range batch {
			if mismatch := checkConsistency(txn); mismatch != "" {
				report.Mismatches = append(report.Mismatches, mismatch)
				continue
			}
			report.Migrated++
		}
		lastID = batch[len(batch)-1].ID
	}

	if len(report.Mismatches) > 0 {
		return report, fmt.Errorf("%w: %d mismatches", ErrValidationFailed, len(report.Mismatches))
	}
	return report, nil
}

// Rollback восстанавливает легаси-вид по метаданным происхождения. Документы,
// созданные уже в новой схеме, отката не имеют и пропускаются.
func (s *Service) Rollback(ctx context.Context) (*Report, error) {
	report := &Report{}
	lastID := int64(0)

	for {
		var batch []entities.Transaction

		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			var err error
			batch, err = s.repository.GetMigratedBatch(ctx, lastID, s.batchSize)
			if err != nil {
				return fmt.Errorf("get migrated batch after id %d: %w", lastID, err)
			}

			for _, txn := range batch {
				report.Total++

				originalType, originalStatus, err := originFromMetadata(txn.Metadata)
				if err != nil {
					report.Skipped++
					continue
				}

				if err := s.repository.RestoreLegacy(ctx, txn.ID, originalType, originalStatus); err != nil {
					return fmt.Errorf("restore legacy for id %d: %w", txn.ID, err)
				}
				report.Restored++
			}
			return nil
		})
		if err != nil {
			return report, err
		}

		if len(batch) == 0 {
			return report, nil
		}
		lastID = batch[len(batch)-1].ID
	}
}

func mapLegacyType(legacyType string) (entities.TransactionEntity, entities.TransactionAction, error) {
	switch legacyType {
	case "booking_payment":
		return entities.EntityBooking, entities.ActionPaymentVerification, nil
	case "order_payment":
		return entities.EntityOrder, entities.ActionPaymentVerification, nil
	case "wallet_topup":
		return entities.EntityWallet, entities.ActionTopUp, nil
	case "subscription_payment":
		return entities.EntitySubscription, entities.ActionPaymentVerification, nil
	case "loyalty_reward":
		return entities.EntityLoyalty, entities.ActionRewardCredit, nil
	case "refund":
		return entities.EntityOrder, entities.ActionRefund, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnknownLegacyType, legacyType)
	}
}

func mapLegacyStatus(legacyStatus string) (entities.TransactionStatus, error) {
	switch entities.TransactionStatus(strings.ToUpper(legacyStatus)) {
	case entities.TransactionCompleted:
		return entities.TransactionCompleted, nil
	case entities.TransactionPending:
		return entities.TransactionPending, nil
	case entities.TransactionFailed:
		return entities.TransactionFailed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLegacyStatus, legacyStatus)
	}
}

func checkConsistency(txn entities.Transaction) string {
	if !txn.Migrated() {
		return fmt.Sprintf("id=%d: entity or action is empty", txn.ID)
	}

	originalType, _, err := originFromMetadata(txn.Metadata)
	if err != nil {
		// документ родился уже в новой схеме, сверять не с чем
		if errors.Is(err, ErrMissingOrigin) {
			return ""
		}
		return fmt.Sprintf("id=%d: %v", txn.ID, err)
	}

	expectedEntity, expectedAction, err := mapLegacyType(originalType)
	if err != nil {
		return fmt.Sprintf("id=%d: %v", txn.ID, err)
	}
	if *txn.Entity != expectedEntity || *txn.Action != expectedAction {
		return fmt.Sprintf("id=%d: %s/%s does not match original type %q", txn.ID, *txn.Entity, *txn.Action, originalType)
	}
	return ""
}

func originFromMetadata(metadata map[string]interface{}) (string, string, error) {
	if metadata == nil {
		return "", "", ErrMissingOrigin
	}
	if migrated, _ := metadata[metaMigrated].(bool); !migrated {
		return "", "", ErrMissingOrigin
	}

	originalType, ok := metadata[metaOriginalType].(string)
	if !ok || originalType == "" {
		return "", "", ErrMissingOrigin
	}
	originalStatus, _ := metadata[metaOriginalStatus].(string)

	return originalType, originalStatus, nil
}
