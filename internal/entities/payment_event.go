package entities

const (
	PaymentEventCaptured           = "payment_captured"
	PaymentEventFailed             = "payment_failed"
	PaymentEventShipmentDispatched = "shipment_dispatched"
	PaymentEventShipmentDelivered  = "shipment_delivered"
)

// PaymentEvent сообщение платежной шины о жизненном цикле заказа.
type PaymentEvent struct {
	Type          string
	OrderID       string
	TransactionID string
	Reason        string
}
