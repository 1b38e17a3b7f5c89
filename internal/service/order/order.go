package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"marketplace/internal/entities"
	"marketplace/pkg/stream"
)

type Service struct {
	repository Repository
	tasks      TaskRepository
	stats      StatsRecorder
	payments   PaymentGateway
	publisher  Publisher
	notifier   Notifier
	guard      TransitionGuard
	txManager  TxManager
	events     *stream.Hub[entities.OrderStatusEvent]
}

func New(
	repository Repository,
	tasks TaskRepository,
	stats StatsRecorder,
	payments PaymentGateway,
	publisher Publisher,
	notifier Notifier,
	guard TransitionGuard,
	txManager TxManager,
	events *stream.Hub[entities.OrderStatusEvent],
) *Service {
	return &Service{
		repository: repository,
		tasks:      tasks,
		stats:      stats,
		payments:   payments,
		publisher:  publisher,
		notifier:   notifier,
		guard:      guard,
		txManager:  txManager,
		events:     events,
	}
}

func (s *Service) CreateOrder(ctx context.Context, draft entities.OrderDraft, actor entities.Actor) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	now := time.Now().UTC()
	newOrder := entities.Order{
		ID:     uuid.NewString(),
		Status: entities.OrderPending,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.OrderPending,
			Timestamp: now,
			Note:      "order created",
			Actor:     actor,
		}},
		Pricing:   draft.Pricing,
		Payment:   draft.Payment,
		Shipping:  draft.Shipping,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, newOrder)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if err = s.stats.RecordCreated(ctx); err != nil {
			return fmt.Errorf("record created order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Service) UpdateStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, note string, actor entities.Actor) (*entities.Order, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, newStatus)
	}
	// refunded достижим только через RefundOrder
	if newStatus == entities.OrderRefunded {
		return nil, ErrRefundNotAllowed
	}

	return s.appendStatus(ctx, orderID, newStatus, note, actor, func(from entities.OrderStatusType) error {
		if from.IsTerminal() {
			return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
		}
		if !s.guard.CanTransition(from, newStatus) {
			return fmt.Errorf("%w: %s -> %s (allowed: %v)", ErrInvalidTransition, from, newStatus, s.guard.AllowedFrom(from))
		}
		return nil
	}, nil)
}

func (s *Service) RefundOrder(ctx context.Context, orderID string, note string, actor entities.Actor) (*entities.Order, error) {
	return s.appendStatus(ctx, orderID, entities.OrderRefunded, note, actor, func(from entities.OrderStatusType) error {
		if from != entities.OrderDelivered && from != entities.OrderCancelled {
			return fmt.Errorf("%w: current status %s", ErrRefundNotAllowed, from)
		}
		return nil
	}, nil)
}

// ConfirmPayment проверяет транзакцию во внешнем платежном сервисе и переводит
// заказ в confirmed, фиксируя capturedAt в той же транзакции БД.
func (s *Service) ConfirmPayment(ctx context.Context, orderID string, transactionID string, actor entities.Actor) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	verified, err := s.payments.VerifyTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("verify transaction %s: %w", transactionID, err)
	}
	if !verified {
		return nil, fmt.Errorf("%w: %s", ErrPaymentNotVerified, transactionID)
	}

	capturedAt := time.Now().UTC()
	return s.appendStatus(ctx, orderID, entities.OrderConfirmed, "payment captured", actor, func(from entities.OrderStatusType) error {
		if from.IsTerminal() {
			return fmt.Errorf("%w: %s", ErrTerminalStatus, from)
		}
		if !s.guard.CanTransition(from, entities.OrderConfirmed) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, entities.OrderConfirmed)
		}
		return nil
	}, func(ctx context.Context) error {
		if err := s.repository.MarkPaymentCaptured(ctx, orderID, transactionID, capturedAt); err != nil {
			return fmt.Errorf("mark payment captured: %w", err)
		}
		return nil
	})
}

func (s *Service) AssignDriver(ctx context.Context, orderID string, driver entities.Driver, actor entities.Actor) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidDriver(driver) {
		return nil, ErrInvalidDriver
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	var (
		updated *entities.Order
		task    *entities.DriverTask
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		// привязка курьера не меняет статус, но закрытый заказ не трогаем
		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: %s", ErrTerminalStatus, current.Status)
		}

		updated, err = s.repository.SetDriver(ctx, orderID, driver)
		if err != nil {
			return fmt.Errorf("set driver: %w", err)
		}

		taskStatus := entities.DriverTaskAssigned
		task, err = s.tasks.Create(ctx, entities.DriverTaskModify{
			OrderID:  &orderID,
			DriverID: &driver.ID,
			Status:   &taskStatus,
		})
		if err != nil {
			return fmt.Errorf("create driver task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// уведомление вне транзакции, его неуспех не откатывает привязку
	s.notifier.NotifyDriverAssigned(*task, *updated)

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	found, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return found, nil
}

func (s *Service) GetOrdersByStatus(ctx context.Context, status entities.OrderStatusType, limit, offset uint64) ([]entities.Order, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrUndefinedStatus, status)
	}

	orders, err := s.repository.GetByStatus(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get orders by status: %w", err)
	}

	return orders, nil
}

// Subscribe живая подписка на смены статусов; отписка обязательна на стороне
// вызывающего, иначе слот в хабе не освободится.
func (s *Service) Subscribe() *stream.Subscription[entities.OrderStatusEvent] {
	return s.events.Subscribe()
}

// appendStatus общий путь всех переходов: проверка под блокировкой строки,
// атомарное дополнение журнала и счетчики статистики в одной транзакции,
// события наружу строго после фиксации.
func (s *Service) appendStatus(
	ctx context.Context,
	orderID string,
	newStatus entities.OrderStatusType,
	note string,
	actor entities.Actor,
	check func(from entities.OrderStatusType) error,
	extra func(ctx context.Context) error,
) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidActor(actor) {
		return nil, ErrInvalidActor
	}

	var (
		updated *entities.Order
		event   entities.OrderStatusEvent
	)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := check(current.Status); err != nil {
			return err
		}

		now := time.Now().UTC()
		entry := entities.StatusHistoryEntry{
			Status:    newStatus,
			Timestamp: now,
			Note:      note,
			Actor:     actor,
		}

		updated, err = s.repository.AppendStatus(ctx, orderID, entry)
		if err != nil {
			return fmt.Errorf("append status: %w", err)
		}

		if extra != nil {
			if err := extra(ctx); err != nil {
				return err
			}
		}

		if err := s.stats.RecordTransition(ctx, current.Status, newStatus, deliveryDuration(updated)); err != nil {
			return fmt.Errorf("record transition: %w", err)
		}

		event = entities.OrderStatusEvent{
			OrderID:    orderID,
			OldStatus:  current.Status,
			NewStatus:  newStatus,
			Note:       note,
			Actor:      actor,
			OccurredAt: now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.PublishStatusChanged(event)
	s.events.Publish(event)

	return updated, nil
}

func deliveryDuration(o *entities.Order) time.Duration {
	if o == nil || o.Status != entities.OrderDelivered {
		return 0
	}
	if o.Shipping.ShippedAt == nil || o.Shipping.DeliveredAt == nil {
		return 0
	}
	return o.Shipping.DeliveredAt.Sub(*o.Shipping.ShippedAt)
}
