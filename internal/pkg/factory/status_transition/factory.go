package status_transition

import (
	"marketplace/internal/entities"
)

// TransitionGuard проверяет допустимость перехода между статусами заказа.
// Таблица фиксирует жизненный цикл: cancelled и failed достижимы из любого
// нетерминального статуса, из терминальных статусов переходов нет,
// возврат достижим только из delivered/cancelled отдельной операцией.
type TransitionGuard struct {
	allowed map[entities.OrderStatusType]map[entities.OrderStatusType]struct{}
}

func New() *TransitionGuard {
	build := func(statuses ...entities.OrderStatusType) map[entities.OrderStatusType]struct{} {
		set := make(map[entities.OrderStatusType]struct{}, len(statuses))
		for _, s := range statuses {
			set[s] = struct{}{}
		}
		return set
	}

	return &TransitionGuard{
		allowed: map[entities.OrderStatusType]map[entities.OrderStatusType]struct{}{
			entities.OrderPending:    build(entities.OrderConfirmed, entities.OrderCancelled, entities.OrderFailed),
			entities.OrderConfirmed:  build(entities.OrderProcessing, entities.OrderCancelled, entities.OrderFailed),
			entities.OrderProcessing: build(entities.OrderShipped, entities.OrderCancelled, entities.OrderFailed),
			entities.OrderShipped:    build(entities.OrderInTransit, entities.OrderDelivered, entities.OrderCancelled, entities.OrderFailed),
			entities.OrderInTransit:  build(entities.OrderDelivered, entities.OrderCancelled, entities.OrderFailed),
		},
	}
}

func (g *TransitionGuard) CanTransition(from, to entities.OrderStatusType) bool {
	next, ok := g.allowed[from]
	if !ok {
		return false
	}

	_, ok = next[to]
	return ok
}

// AllowedFrom список статусов, достижимых из from; для сообщений об ошибках.
func (g *TransitionGuard) AllowedFrom(from entities.OrderStatusType) []entities.OrderStatusType {
	next, ok := g.allowed[from]
	if !ok {
		return nil
	}

	result := make([]entities.OrderStatusType, 0, len(next))
	for _, s := range []entities.OrderStatusType{
		entities.OrderConfirmed,
		entities.OrderProcessing,
		entities.OrderShipped,
		entities.OrderInTransit,
		entities.OrderDelivered,
		entities.OrderCancelled,
		entities.OrderFailed,
	} {
		if _, ok := next[s]; ok {
			result = append(result, s)
		}
	}

	return result
}
