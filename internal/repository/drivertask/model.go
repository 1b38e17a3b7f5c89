package drivertask

import "time"

type DriverTaskDB struct {
	ID        int64
	OrderID   string
	DriverID  string
	Status    string
	CreatedAt time.Time
}

type DriverTaskModifyDB struct {
	ID       *int64
	OrderID  *string
	DriverID *string
	Status   *string
}
