package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	history := make([]entities.StatusHistoryEntry, 0, len(o.StatusHistory))
	for _, entry := range o.StatusHistory {
		history = append(history, entities.StatusHistoryEntry{
			Status:    entities.OrderStatusType(entry.Status),
			Timestamp: entry.Timestamp,
			Note:      entry.Note,
			Actor: entities.Actor{
				UID:  entry.Actor.UID,
				Role: entities.ActorRole(entry.Actor.Role),
			},
		})
	}

	var driver *entities.Driver
	if o.Shipping.Driver != nil {
		driver = &entities.Driver{
			ID:    o.Shipping.Driver.ID,
			Name:  o.Shipping.Driver.Name,
			Phone: o.Shipping.Driver.Phone,
		}
	}

	return &entities.Order{
		ID:            o.ID,
		Status:        entities.OrderStatusType(o.Status),
		StatusHistory: history,
		Pricing: entities.Pricing{
			Amount:      o.Pricing.Amount,
			Currency:    o.Pricing.Currency,
			DeliveryFee: o.Pricing.DeliveryFee,
		},
		Payment: entities.Payment{
			Method:        o.Payment.Method,
			TransactionID: o.Payment.TransactionID,
			CapturedAt:    o.Payment.CapturedAt,
		},
		Shipping: entities.Shipping{
			Address:     o.Shipping.Address,
			Driver:      driver,
			ShippedAt:   o.Shipping.ShippedAt,
			DeliveredAt: o.Shipping.DeliveredAt,
		},
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromDomain(o *entities.Order) *OrderDB {
	if o == nil {
		return nil
	}

	history := make([]StatusHistoryEntryDB, 0, len(o.StatusHistory))
	for _, entry := range o.StatusHistory {
		history = append(history, FromDomainHistoryEntry(entry))
	}

	return &OrderDB{
		ID:            o.ID,
		Status:        o.Status.String(),
		StatusHistory: history,
		Pricing: PricingDB{
			Amount:      o.Pricing.Amount,
			Currency:    o.Pricing.Currency,
			DeliveryFee: o.Pricing.DeliveryFee,
		},
		Payment: PaymentDB{
			Method:        o.Payment.Method,
			TransactionID: o.Payment.TransactionID,
			CapturedAt:    o.Payment.CapturedAt,
		},
		Shipping: FromDomainShipping(o.Shipping),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func FromDomainHistoryEntry(entry entities.StatusHistoryEntry) StatusHistoryEntryDB {
	return StatusHistoryEntryDB{
		Status:    entry.Status.String(),
		Timestamp: entry.Timestamp,
		Note:      entry.Note,
		Actor: ActorDB{
			UID:  entry.Actor.UID,
			Role: entry.Actor.Role.String(),
		},
	}
}

func FromDomainShipping(shipping entities.Shipping) ShippingDB {
	var driver *DriverDB
	if shipping.Driver != nil {
		driver = &DriverDB{
			ID:    shipping.Driver.ID,
			Name:  shipping.Driver.Name,
			Phone: shipping.Driver.Phone,
		}
	}

	return ShippingDB{
		Address:     shipping.Address,
		Driver:      driver,
		ShippedAt:   shipping.ShippedAt,
		DeliveredAt: shipping.DeliveredAt,
	}
}
