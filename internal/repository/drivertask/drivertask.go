package drivertask

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, taskModify entities.DriverTaskModify) (*entities.DriverTask, error) {
	taskModifyModel := FromDomainModify(&taskModify)

	query := `
		INSERT INTO driver_tasks (order_id, driver_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, driver_id, status, created_at
	`

	var taskModel DriverTaskDB
	err := r.querier.QueryRow(
		ctx,
		query,
		taskModifyModel.OrderID,
		taskModifyModel.DriverID,
		taskModifyModel.Status,
	).Scan(
		&taskModel.ID,
		&taskModel.OrderID,
		&taskModel.DriverID,
		&taskModel.Status,
		&taskModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fmt.Errorf("active task for order %s already exists: %w", *taskModify.OrderID, err)
		}
		return nil, fmt.Errorf("unexpected driver task repository create error: %w", err)
	}

	return ToDomain(&taskModel), nil
}
