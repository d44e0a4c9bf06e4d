package schema

import (
	"time"

	"gorm.io/datatypes"
)

// MissionProgress represents the mission_progress table - per-user counters
// toward gamified milestones. Progress values are monotonic; completion and
// claim flags are one-way.
type MissionProgress struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the canonical user address
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// Progress maps activity kind to the current counter value (JSON object)
	Progress datatypes.JSONMap `gorm:"column:progress;type:jsonb"`
	// Completed lists mission ids whose target has been reached (JSON array)
	Completed datatypes.JSON `gorm:"column:completed;type:jsonb"`
	// Claimed lists mission ids whose reward has been collected (JSON array)
	Claimed datatypes.JSON `gorm:"column:claimed;type:jsonb"`
	// CreatedAt is the row creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the last progress update timestamp
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MissionProgress model
func (MissionProgress) TableName() string {
	return "mission_progress"
}
