package entities

import "time"

type DriverTaskStatusType string

const (
	DriverTaskAssigned  DriverTaskStatusType = "assigned"
	DriverTaskCompleted DriverTaskStatusType = "completed"
	DriverTaskCancelled DriverTaskStatusType = "cancelled"
)

func (s DriverTaskStatusType) String() string {
	return string(s)
}

// DriverTask рабочий элемент курьера, создается в одной транзакции
// с привязкой курьера к заказу.
type DriverTask struct {
	ID        int64
	OrderID   string
	DriverID  string
	Status    DriverTaskStatusType
	CreatedAt time.Time
}

type DriverTaskModify struct {
	ID       *int64
	OrderID  *string
	DriverID *string
	Status   *DriverTaskStatusType
}
