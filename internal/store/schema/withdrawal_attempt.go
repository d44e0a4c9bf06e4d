package schema

import (
	"time"
)

// WithdrawalStatus is the lifecycle state of a settlement request
type WithdrawalStatus string

const (
	// WithdrawalStatusPending means the attempt is recorded but no transfer
	// has been submitted yet
	WithdrawalStatusPending WithdrawalStatus = "pending"
	// WithdrawalStatusSubmitted means the transfer was sent on-chain but
	// confirmation has not been observed; reconciliation input
	WithdrawalStatusSubmitted WithdrawalStatus = "submitted"
	// WithdrawalStatusConfirmed means the transfer confirmed and the ledger
	// debit has been applied
	WithdrawalStatusConfirmed WithdrawalStatus = "confirmed"
	// WithdrawalStatusFailed means the transfer was never submitted, or was
	// included and reverted; the ledger is untouched
	WithdrawalStatusFailed WithdrawalStatus = "failed"
)

// WithdrawalAttempt represents the withdrawal_attempts table - one settlement
// request from stars to a native-token transfer. Persisting the attempt before
// submission is what lets a crashed or timed-out process reconcile instead of
// losing track of in-flight transfers.
type WithdrawalAttempt struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AttemptID is the externally visible identifier
	AttemptID string `gorm:"column:attempt_id;not null;uniqueIndex;type:varchar(36)"`
	// Address is the canonical recipient address
	Address string `gorm:"column:address;not null;index;type:text"`
	// Stars is the requested star amount
	Stars int64 `gorm:"column:stars;not null"`
	// NativeWei is the computed native-token value in wei (decimal string)
	NativeWei string `gorm:"column:native_wei;not null;type:numeric(78,0)"`
	// TxHash is the submitted transaction hash, once known
	TxHash *string `gorm:"column:tx_hash;type:text"`
	// Status is the lifecycle state
	Status WithdrawalStatus `gorm:"column:status;not null;default:pending;index"`
	// GasUsed is the gas consumed by the confirmed transfer
	GasUsed *uint64 `gorm:"column:gas_used"`
	// BlockNumber is the inclusion block of the confirmed transfer
	BlockNumber *uint64 `gorm:"column:block_number"`
	// ErrorMessage records why an attempt failed or timed out
	ErrorMessage string `gorm:"column:error_message;type:text"`
	// CreatedAt is the attempt creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last state transition timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WithdrawalAttempt model
func (WithdrawalAttempt) TableName() string {
	return "withdrawal_attempts"
}
