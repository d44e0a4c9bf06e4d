package store

import (
	"context"
	"time"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// CreateMintRecordInput groups everything written in the mint-record
// transaction: the record itself plus the outbox tasks for downstream effects.
type CreateMintRecordInput struct {
	Record schema.MintRecord
	Tasks  []schema.OutboxTask
}

// NotificationFilter selects notifications for pull-based retrieval
type NotificationFilter struct {
	Recipient  string
	Type       domain.NotificationType // empty = all types
	UnreadOnly bool
	Limit      int
	Offset     uint64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetUserByAddress retrieves a user by case-insensitive address (nil if absent)
	GetUserByAddress(ctx context.Context, address string) (*schema.User, error)
	// EnsureUser creates the account for an address if absent and returns it
	EnsureUser(ctx context.Context, address string) (*schema.User, error)
	// CreditStars atomically credits stars (and lifetime earned) to an address,
	// creating the account in the same statement if it does not exist
	CreditStars(ctx context.Context, address string, amount int64) (*schema.User, error)
	// DebitStars atomically debits stars and increments lifetime withdrawn;
	// fails with domain.ErrInsufficientBalance when the balance cannot cover it
	DebitStars(ctx context.Context, address string, amount int64) error
	// CreditTokens atomically credits generation tokens to an existing account
	CreditTokens(ctx context.Context, address string, amount int64) error

	// CreatePost persists a post (owned by the external post service; used by
	// fixtures and tests)
	CreatePost(ctx context.Context, post *schema.Post) error
	// GetPostByID retrieves a post (nil if absent)
	GetPostByID(ctx context.Context, id uint64) (*schema.Post, error)

	// CreateMintRecord persists a mint record, increments the post's edition
	// counter and enqueues the outbox tasks, all in one transaction.
	// Fails with domain.ErrDuplicateTransaction, domain.ErrPostNotFound or
	// domain.ErrEditionCapReached; on any failure nothing is persisted.
	CreateMintRecord(ctx context.Context, input CreateMintRecordInput) (*schema.MintRecord, error)
	// CountMintsByMinter returns the number of mint records for a minter
	CountMintsByMinter(ctx context.Context, minter string) (int64, error)
	// ListMintsByPost retrieves mint records for a post, newest first
	ListMintsByPost(ctx context.Context, postID uint64, limit int, offset uint64) ([]schema.MintRecord, uint64, error)
	// ListMintsByMinter retrieves mint records by minter, newest first
	ListMintsByMinter(ctx context.Context, minter string, limit int, offset uint64) ([]schema.MintRecord, uint64, error)

	// CreateNotification persists a notification record
	CreateNotification(ctx context.Context, n *schema.Notification) error
	// ListNotifications retrieves notifications matching the filter, newest first
	ListNotifications(ctx context.Context, filter NotificationFilter) ([]schema.Notification, uint64, error)
	// CountUnreadNotifications returns the unread count for a recipient
	CountUnreadNotifications(ctx context.Context, recipient string) (int64, error)
	// MarkNotificationRead flips the read flag; scoped to the recipient
	MarkNotificationRead(ctx context.Context, id uint64, recipient string) error
	// MarkAllNotificationsRead flips all unread notifications for a recipient
	MarkAllNotificationsRead(ctx context.Context, recipient string) (int64, error)

	// GetMissionProgress retrieves mission progress for an address (nil if absent)
	GetMissionProgress(ctx context.Context, address string) (*schema.MissionProgress, error)
	// SaveMissionProgress upserts a mission progress row keyed by address
	SaveMissionProgress(ctx context.Context, progress *schema.MissionProgress) error
	// ClaimMission atomically flips the claim flag for a completed mission and
	// credits the token reward; fails with domain.ErrMissionNotCompleted or
	// domain.ErrMissionAlreadyClaimed
	ClaimMission(ctx context.Context, address, missionID string, reward int64) error

	// CreateWithdrawalAttempt persists a new settlement attempt
	CreateWithdrawalAttempt(ctx context.Context, attempt *schema.WithdrawalAttempt) error
	// UpdateWithdrawalAttempt persists a state transition of an attempt
	UpdateWithdrawalAttempt(ctx context.Context, attempt *schema.WithdrawalAttempt) error
	// ListWithdrawalAttempts retrieves attempts in a given status, oldest first
	ListWithdrawalAttempts(ctx context.Context, status schema.WithdrawalStatus) ([]schema.WithdrawalAttempt, error)
	// SettleWithdrawal applies the post-confirmation ledger debit and marks the
	// attempt confirmed in one transaction
	SettleWithdrawal(ctx context.Context, attempt *schema.WithdrawalAttempt) error

	// DueOutboxTasks retrieves pending outbox tasks due at or before now
	DueOutboxTasks(ctx context.Context, limit int, now time.Time) ([]schema.OutboxTask, error)
	// MarkOutboxTaskDone marks a task as processed
	MarkOutboxTaskDone(ctx context.Context, id uint64) error
	// RescheduleOutboxTask records a failed attempt and its next due time
	RescheduleOutboxTask(ctx context.Context, id uint64, attempts int, next time.Time, lastErr string) error
	// MarkOutboxTaskFailed marks a task as terminally failed
	MarkOutboxTaskFailed(ctx context.Context, id uint64, attempts int, lastErr string) error
}
