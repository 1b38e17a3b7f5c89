package transaction

import "marketplace/internal/entities"

func ToDomain(t *TransactionDB) *entities.Transaction {
	if t == nil {
		return nil
	}

	var entity *entities.TransactionEntity
	if t.Entity != nil {
		e := entities.TransactionEntity(*t.Entity)
		entity = &e
	}

	var action *entities.TransactionAction
	if t.Action != nil {
		a := entities.TransactionAction(*t.Action)
		action = &a
	}

	return &entities.Transaction{
		ID:          t.ID,
		Type:        t.Type,
		Status:      t.Status,
		Amount:      t.Amount,
		Description: t.Description,
		Entity:      entity,
		Action:      action,
		Metadata:    t.Metadata,
		CreatedAt:   t.CreatedAt,
	}
}
