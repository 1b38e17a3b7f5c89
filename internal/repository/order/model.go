package order

import "time"

type OrderDB struct {
	ID            string
	Status        string
	StatusHistory []StatusHistoryEntryDB
	Pricing       PricingDB
	Payment       PaymentDB
	Shipping      ShippingDB
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Вложенные структуры живут в jsonb-колонках, имена полей фиксируют формат
// хранения и ломать их нельзя.
type StatusHistoryEntryDB struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	Actor     ActorDB   `json:"actor"`
}

type ActorDB struct {
	UID  string `json:"uid"`
	Role string `json:"role"`
}

type PricingDB struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	DeliveryFee int64  `json:"deliveryFee"`
}

type PaymentDB struct {
	Method        string     `json:"method,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
	CapturedAt    *time.Time `json:"capturedAt,omitempty"`
}

type DriverDB struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type ShippingDB struct {
	Address     string     `json:"address"`
	Driver      *DriverDB  `json:"driver,omitempty"`
	ShippedAt   *time.Time `json:"shippedAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}
