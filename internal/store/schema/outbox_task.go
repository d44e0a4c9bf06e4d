package schema

import (
	"time"

	"gorm.io/datatypes"
)

// OutboxKind identifies the downstream effect an outbox task performs
type OutboxKind string

const (
	// OutboxKindStarCredit credits mint-reward stars to a creator
	OutboxKindStarCredit OutboxKind = "star_credit"
	// OutboxKindNotification persists and pushes a notification
	OutboxKindNotification OutboxKind = "notification"
	// OutboxKindMissionProgress updates mint-count mission progress
	OutboxKindMissionProgress OutboxKind = "mission_progress"
)

// OutboxStatus is the processing state of an outbox task
type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusDone    OutboxStatus = "done"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// OutboxTask represents the outbox_tasks table. Tasks are enqueued in the same
// transaction as the primary fact (the mint record) and processed
// asynchronously with retry, so downstream effects can fail without ever
// rolling back or failing the recorded mint.
type OutboxTask struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is a ULID, unique and time-sortable
	EventID string `gorm:"column:event_id;not null;uniqueIndex;type:varchar(26)"`
	// Kind selects the effect handler
	Kind OutboxKind `gorm:"column:kind;not null;type:text"`
	// Payload is the handler-specific JSON payload
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// Status is the processing state
	Status OutboxStatus `gorm:"column:status;not null;default:pending;index:idx_outbox_tasks_status_next,priority:1"`
	// Attempts is the number of processing attempts made
	Attempts int `gorm:"column:attempts;not null;default:0"`
	// NextAttemptAt is the earliest time the task is due (backoff schedule)
	NextAttemptAt time.Time `gorm:"column:next_attempt_at;not null;default:now();type:timestamptz;index:idx_outbox_tasks_status_next,priority:2"`
	// LastError records the most recent handler failure
	LastError string `gorm:"column:last_error;type:text"`
	// CreatedAt is the enqueue timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last processing timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the OutboxTask model
func (OutboxTask) TableName() string {
	return "outbox_tasks"
}
