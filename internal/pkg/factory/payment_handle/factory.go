package payment_handle

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/entities"
)

var ErrUnknownEventType = errors.New("unknown payment event type")

type ExecuteFn func(ctx context.Context, event entities.PaymentEvent) error

type OrderService interface {
	ConfirmPayment(ctx context.Context, orderID string, transactionID string, actor entities.Actor) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, note string, actor entities.Actor) (*entities.Order, error)
}

type EventHandlerFactory struct {
	orderService OrderService
}

func NewEventHandlerFactory(orderService OrderService) *EventHandlerFactory {
	return &EventHandlerFactory{
		orderService: orderService,
	}
}

func (f *EventHandlerFactory) GetHandler(eventType string) (ExecuteFn, error) {
	switch eventType {
	case entities.PaymentEventCaptured:
		return f.paymentCapturedHandler, nil
	case entities.PaymentEventFailed:
		return f.paymentFailedHandler, nil
	case entities.PaymentEventShipmentDispatched:
		return f.shipmentDispatchedHandler, nil
	case entities.PaymentEventShipmentDelivered:
		return f.shipmentDeliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownEventType, eventType)
	}
}

func (f *EventHandlerFactory) paymentCapturedHandler(ctx context.Context, event entities.PaymentEvent) error {
	_, err := f.orderService.ConfirmPayment(ctx, event.OrderID, event.TransactionID, entities.SystemActor)
	if err != nil {
		return fmt.Errorf("confirm payment for order %s: %w", event.OrderID, err)
	}
	return nil
}

func (f *EventHandlerFactory) paymentFailedHandler(ctx context.Context, event entities.PaymentEvent) error {
	note := "payment failed"
	if event.Reason != "" {
		note = fmt.Sprintf("payment failed: %s", event.Reason)
	}

	_, err := f.orderService.UpdateStatus(ctx, event.OrderID, entities.OrderFailed, note, entities.SystemActor)
	if err != nil {
		return fmt.Errorf("fail order %s: %w", event.OrderID, err)
	}
	return nil
}

func (f *EventHandlerFactory) shipmentDispatchedHandler(ctx context.Context, event entities.PaymentEvent) error {
	_, err := f.orderService.UpdateStatus(ctx, event.OrderID, entities.OrderShipped, "shipment dispatched", entities.SystemActor)
	if err != nil {
		return fmt.Errorf("mark order %s shipped: %w", event.OrderID, err)
	}
	return nil
}

func (f *EventHandlerFactory) shipmentDeliveredHandler(ctx context.Context, event entities.PaymentEvent) error {
	_, err := f.orderService.UpdateStatus(ctx, event.OrderID, entities.OrderDelivered, "shipment delivered", entities.SystemActor)
	if err != nil {
		return fmt.Errorf("mark order %s delivered: %w", event.OrderID, err)
	}
	return nil
}
