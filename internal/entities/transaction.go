package entities

import "time"

// Легаси-транзакции хранят тип одним полем ("booking_payment"), мигрированные
// раскладываются на entity/action с метаданными о происхождении.

type TransactionEntity string

const (
	EntityBooking      TransactionEntity = "BOOKING"
	EntityOrder        TransactionEntity = "ORDER"
	EntityWallet       TransactionEntity = "WALLET"
	EntitySubscription TransactionEntity = "SUBSCRIPTION"
	EntityLoyalty      TransactionEntity = "LOYALTY"
)

type TransactionAction string

const (
	ActionPaymentVerification TransactionAction = "PAYMENT_VERIFICATION"
	ActionTopUp               TransactionAction = "TOP_UP"
	ActionRewardCredit        TransactionAction = "REWARD_CREDIT"
	ActionRefund              TransactionAction = "REFUND"
)

type TransactionStatus string

const (
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionPending   TransactionStatus = "PENDING"
	TransactionFailed    TransactionStatus = "FAILED"
)

type Transaction struct {
	ID          int64
	Type        string
	Status      string
	Amount      int64
	Description string

	// Поля новой схемы; nil у немигрированных документов.
	Entity   *TransactionEntity
	Action   *TransactionAction
	Metadata map[string]interface{}

	CreatedAt time.Time
}

// Migrated документ уже несет поля новой схемы, второй прогон его пропускает.
func (t Transaction) Migrated() bool {
	return t.Entity != nil && t.Action != nil
}
