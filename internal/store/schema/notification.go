package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/somix-network/somix-ledger/internal/domain"
)

// Notification represents the notifications table - the durable audit trail
// behind the real-time fan-out. Records are created once and mutated only to
// flip Read.
type Notification struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RecipientAddress is the canonical address this notification is for
	RecipientAddress string `gorm:"column:recipient_address;not null;index:idx_notifications_recipient_created,priority:1;index:idx_notifications_recipient_read,priority:1"`
	// SenderAddress is the address whose action triggered the notification
	// (or "system" for platform notifications)
	SenderAddress string `gorm:"column:sender_address;not null;type:text"`
	// SenderUsername is the sender's display handle at creation time
	SenderUsername string `gorm:"column:sender_username;not null;type:text"`
	// SenderAvatar is the sender's avatar URL at creation time
	SenderAvatar *string `gorm:"column:sender_avatar;type:text"`
	// Type is the notification category
	Type domain.NotificationType `gorm:"column:type;not null;type:text"`
	// Message is the human-readable notification text
	Message string `gorm:"column:message;not null;type:text"`
	// Metadata carries optional references (post id, token id)
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// Read indicates whether the recipient has seen the notification
	Read bool `gorm:"column:read;not null;default:false;index:idx_notifications_recipient_read,priority:2"`
	// CreatedAt is the notification creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_notifications_recipient_created,priority:2,sort:desc"`
}

// TableName specifies the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
