package transaction

import "time"

type TransactionDB struct {
	ID          int64
	Type        string
	Status      string
	Amount      int64
	Description string
	Entity      *string
	Action      *string
	Metadata    map[string]interface{}
	CreatedAt   time.Time
}
