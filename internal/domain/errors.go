package domain

import "errors"

var (
	// ErrValidation is returned when request input is malformed (bad address,
	// non-positive amount). No side effects have occurred.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateTransaction is returned when a mint record already exists for
	// a transaction hash. The original record is untouched.
	ErrDuplicateTransaction = errors.New("transaction already recorded")

	// ErrPostNotFound is returned when the referenced post does not exist
	ErrPostNotFound = errors.New("post not found")

	// ErrEditionCapReached is returned when a post's edition cap has been
	// exhausted
	ErrEditionCapReached = errors.New("edition cap reached")

	// ErrAccountNotFound is returned when an operation requires an existing
	// user account and none exists for the address
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientBalance is returned when a debit exceeds the current star
	// balance
	ErrInsufficientBalance = errors.New("insufficient star balance")

	// ErrInsufficientCustodialFunds is returned when the custodial wallet's
	// on-chain balance cannot cover a settlement
	ErrInsufficientCustodialFunds = errors.New("insufficient custodial funds")

	// ErrUnconfirmedTransfer is returned when a settlement transfer was
	// submitted on-chain but confirmation could not be observed in time.
	// The ledger is untouched; the attempt stays recorded for reconciliation.
	ErrUnconfirmedTransfer = errors.New("transfer submitted but unconfirmed")

	// ErrTransferReverted is returned when a settlement transfer was included
	// in a block but reverted. No debit is performed.
	ErrTransferReverted = errors.New("transfer reverted on-chain")

	// ErrNotificationNotFound is returned when a read-state transition targets
	// a notification that does not exist or belongs to another recipient
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrMissionNotFound is returned for an unknown mission id
	ErrMissionNotFound = errors.New("mission not found")

	// ErrMissionNotCompleted is returned when claiming a mission whose target
	// has not been reached
	ErrMissionNotCompleted = errors.New("mission not completed")

	// ErrMissionAlreadyClaimed is returned when claiming a mission twice
	ErrMissionAlreadyClaimed = errors.New("mission already claimed")
)
