package order

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidActor(actor entities.Actor) bool {
	if strings.TrimSpace(actor.UID) == "" {
		return false
	}

	switch actor.Role {
	case entities.RoleSystem, entities.RoleAdmin, entities.RoleDriver, entities.RoleClient:
		return true
	default:
		return false
	}
}

func isValidDriver(driver entities.Driver) bool {
	return strings.TrimSpace(driver.ID) != "" && strings.TrimSpace(driver.Name) != ""
}

func validateDraft(draft entities.OrderDraft) error {
	if strings.TrimSpace(draft.Shipping.Address) == "" {
		return ErrMissingRequiredFields
	}
	if draft.Pricing.Amount <= 0 || strings.TrimSpace(draft.Pricing.Currency) == "" {
		return ErrMissingRequiredFields
	}
	if draft.Pricing.DeliveryFee < 0 {
		return ErrMissingRequiredFields
	}
	return nil
}
