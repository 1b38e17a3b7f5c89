package drivertask

import "marketplace/internal/entities"

func ToDomain(t *DriverTaskDB) *entities.DriverTask {
	if t == nil {
		return nil
	}
	return &entities.DriverTask{
		ID:        t.ID,
		OrderID:   t.OrderID,
		DriverID:  t.DriverID,
		Status:    entities.DriverTaskStatusType(t.Status),
		CreatedAt: t.CreatedAt,
	}
}

func FromDomainModify(t *entities.DriverTaskModify) *DriverTaskModifyDB {
	if t == nil {
		return nil
	}
	taskModifyDB := &DriverTaskModifyDB{}

	if t.ID != nil {
		taskModifyDB.ID = t.ID
	}
	if t.OrderID != nil {
		taskModifyDB.OrderID = t.OrderID
	}
	if t.DriverID != nil {
		taskModifyDB.DriverID = t.DriverID
	}
	if t.Status != nil {
		status := t.Status.String()
		taskModifyDB.Status = &status
	}

	return taskModifyDB
}
