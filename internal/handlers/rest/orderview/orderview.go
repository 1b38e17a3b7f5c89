// Package orderview конвертирует доменные заказы в транспортные DTO,
// общий код для всех REST обработчиков заказов.
package orderview

import (
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func FromEntity(order entities.Order) dto.Order {
	history := make([]dto.StatusHistoryEntry, 0, len(order.StatusHistory))
	for _, entry := range order.StatusHistory {
		history = append(history, dto.StatusHistoryEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
			Actor: dto.Actor{
				UID:  entry.Actor.UID,
				Role: entry.Actor.Role.String(),
			},
		})
	}

	shipping := dto.Shipping{
		Address:     order.Shipping.Address,
		ShippedAt:   order.Shipping.ShippedAt,
		DeliveredAt: order.Shipping.DeliveredAt,
	}
	if order.Shipping.Driver != nil {
		shipping.Driver = &dto.Driver{
			ID:    order.Shipping.Driver.ID,
			Name:  order.Shipping.Driver.Name,
			Phone: order.Shipping.Driver.Phone,
		}
	}

	return dto.Order{
		ID:            order.ID,
		Status:        order.Status.String(),
		StatusHistory: history,
		Pricing: dto.Pricing{
			Amount:      order.Pricing.Amount,
			Currency:    order.Pricing.Currency,
			DeliveryFee: order.Pricing.DeliveryFee,
		},
		Payment: dto.Payment{
			Method:        order.Payment.Method,
			TransactionID: order.Payment.TransactionID,
			CapturedAt:    order.Payment.CapturedAt,
		},
		Shipping:  shipping,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

func FromEntityList(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromEntity(order))
	}
	return result
}

func EventFromEntity(event entities.OrderStatusEvent) dto.OrderStatusEvent {
	return dto.OrderStatusEvent{
		OrderID:   event.OrderID,
		OldStatus: event.OldStatus.String(),
		NewStatus: event.NewStatus.String(),
		Note:      event.Note,
		Actor: dto.Actor{
			UID:  event.Actor.UID,
			Role: event.Actor.Role.String(),
		},
		OccurredAt: event.OccurredAt,
	}
}
