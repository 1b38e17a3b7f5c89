package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidActor          = errors.New("invalid actor")
	ErrInvalidDriver         = errors.New("invalid driver")
	ErrUndefinedStatus       = errors.New("undefined order status")

	ErrOrderNotFound      = errors.New("order not found")
	ErrTerminalStatus     = errors.New("order is in terminal status")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrRefundNotAllowed   = errors.New("refund allowed only for delivered or cancelled orders")
	ErrPaymentNotVerified = errors.New("payment transaction not verified")
)
