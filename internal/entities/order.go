package entities

import "time"

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderInTransit  OrderStatusType = "in_transit"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
	OrderFailed     OrderStatusType = "failed"
	OrderRefunded   OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped,
		OrderInTransit, OrderDelivered, OrderCancelled, OrderFailed, OrderRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal терминальные статусы не принимают дальнейших переходов.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderCancelled, OrderFailed, OrderRefunded:
		return true
	default:
		return false
	}
}

type ActorRole string

const (
	RoleSystem ActorRole = "system"
	RoleAdmin  ActorRole = "admin"
	RoleDriver ActorRole = "driver"
	RoleClient ActorRole = "client"
)

func (r ActorRole) String() string {
	return string(r)
}

// Actor кто инициировал изменение; передается явно в каждую операцию,
// глобального контекста авторизации нет.
type Actor struct {
	UID  string
	Role ActorRole
}

var SystemActor = Actor{UID: "system", Role: RoleSystem}

// StatusHistoryEntry одна запись журнала переходов. Журнал только дополняется,
// записи никогда не переупорядочиваются и не удаляются.
type StatusHistoryEntry struct {
	Status    OrderStatusType
	Timestamp time.Time
	Note      string
	Actor     Actor
}

type Pricing struct {
	Amount      int64
	Currency    string
	DeliveryFee int64
}

type Payment struct {
	Method        string
	TransactionID string
	CapturedAt    *time.Time
}

type Driver struct {
	ID    string
	Name  string
	Phone string
}

type Shipping struct {
	Address     string
	Driver      *Driver
	ShippedAt   *time.Time
	DeliveredAt *time.Time
}

type Order struct {
	ID            string
	Status        OrderStatusType
	StatusHistory []StatusHistoryEntry
	Pricing       Pricing
	Payment       Payment
	Shipping      Shipping
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderDraft входные данные оформления заказа; id и первый статус
// проставляет сервис.
type OrderDraft struct {
	Pricing  Pricing
	Payment  Payment
	Shipping Shipping
}

// OrderStatusEvent событие смены статуса для шины изменений и живых подписок.
type OrderStatusEvent struct {
	OrderID    string
	OldStatus  OrderStatusType
	NewStatus  OrderStatusType
	Note       string
	Actor      Actor
	OccurredAt time.Time
}
