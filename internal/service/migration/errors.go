package migration

import "errors"

var (
	ErrUnknownLegacyType   = errors.New("unknown legacy transaction type")
	ErrUnknownLegacyStatus = errors.New("unknown legacy transaction status")
	ErrMissingOrigin       = errors.New("migrated transaction has no origin metadata")
	ErrValidationFailed    = errors.New("transaction migration validation failed")
)
