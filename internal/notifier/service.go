package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// PushEnvelope is the wire shape of a real-time notification push
type PushEnvelope struct {
	Type string           `json:"type"`
	Data NotificationView `json:"data"`
}

// NotificationView is the client-facing shape of a notification
type NotificationView struct {
	ID             uint64                      `json:"id"`
	Type           domain.NotificationType     `json:"type"`
	SenderAddress  string                      `json:"sender_address"`
	SenderUsername string                      `json:"sender_username,omitempty"`
	SenderAvatar   string                      `json:"sender_avatar,omitempty"`
	Message        string                      `json:"message"`
	Metadata       domain.NotificationMetadata `json:"metadata"`
	Read           bool                        `json:"read"`
	CreatedAt      time.Time                   `json:"created_at"`
}

// NotifyInput describes one notification to record and push
type NotifyInput struct {
	Recipient string
	Sender    string
	Type      domain.NotificationType
	Message   string
	Metadata  domain.NotificationMetadata
}

// Service records notifications durably and pushes them to live sessions
type Service struct {
	store store.Store
	hub   *Hub
}

// NewService creates a notification service
func NewService(s store.Store, hub *Hub) *Service {
	return &Service{store: s, hub: hub}
}

// Notify persists the notification and then attempts a real-time push. The
// push can fail or find no session; the record already exists either way.
func (s *Service) Notify(ctx context.Context, input NotifyInput) (*schema.Notification, error) {
	if !domain.ValidAddress(input.Recipient) {
		return nil, fmt.Errorf("%w: invalid recipient address", domain.ErrValidation)
	}
	if !input.Type.Valid() {
		return nil, fmt.Errorf("%w: unknown notification type %q", domain.ErrValidation, input.Type)
	}

	recipient := domain.NormalizeAddress(input.Recipient)

	sender := input.Sender
	var senderUsername string
	var senderAvatar *string
	if sender != domain.SystemSender {
		if !domain.ValidAddress(sender) {
			return nil, fmt.Errorf("%w: invalid sender address", domain.ErrValidation)
		}
		sender = domain.NormalizeAddress(sender)
		user, err := s.store.GetUserByAddress(ctx, sender)
		if err != nil {
			return nil, fmt.Errorf("failed to load sender: %w", err)
		}
		if user != nil {
			senderUsername = user.Username
			senderAvatar = user.AvatarURL
		}
	}

	metadata, err := json.Marshal(input.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notification metadata: %w", err)
	}

	n := &schema.Notification{
		RecipientAddress: recipient,
		SenderAddress:    sender,
		SenderUsername:   senderUsername,
		SenderAvatar:     senderAvatar,
		Type:             input.Type,
		Message:          input.Message,
		Metadata:         datatypes.JSON(metadata),
	}
	if err := s.store.CreateNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}

	s.hub.Deliver(recipient, PushEnvelope{
		Type: "notification",
		Data: toView(n),
	})

	return n, nil
}

// List retrieves notifications for a recipient, newest first
func (s *Service) List(ctx context.Context, filter store.NotificationFilter) ([]schema.Notification, uint64, error) {
	if !domain.ValidAddress(filter.Recipient) {
		return nil, 0, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, 0, fmt.Errorf("%w: unknown notification type %q", domain.ErrValidation, filter.Type)
	}
	filter.Recipient = domain.NormalizeAddress(filter.Recipient)
	return s.store.ListNotifications(ctx, filter)
}

// UnreadCount returns the unread notification count for a recipient
func (s *Service) UnreadCount(ctx context.Context, recipient string) (int64, error) {
	if !domain.ValidAddress(recipient) {
		return 0, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	return s.store.CountUnreadNotifications(ctx, domain.NormalizeAddress(recipient))
}

// MarkRead marks one notification read, scoped to the recipient so one user
// cannot flip another user's notifications
func (s *Service) MarkRead(ctx context.Context, id uint64, recipient string) error {
	if !domain.ValidAddress(recipient) {
		return fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	return s.store.MarkNotificationRead(ctx, id, domain.NormalizeAddress(recipient))
}

// MarkAllRead marks every unread notification for a recipient read and
// returns how many were flipped
func (s *Service) MarkAllRead(ctx context.Context, recipient string) (int64, error) {
	if !domain.ValidAddress(recipient) {
		return 0, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	return s.store.MarkAllNotificationsRead(ctx, domain.NormalizeAddress(recipient))
}

func toView(n *schema.Notification) NotificationView {
	var metadata domain.NotificationMetadata
	_ = json.Unmarshal(n.Metadata, &metadata)
	view := NotificationView{
		ID:             n.ID,
		Type:           n.Type,
		SenderAddress:  n.SenderAddress,
		SenderUsername: n.SenderUsername,
		Message:        n.Message,
		Metadata:       metadata,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
	if n.SenderAvatar != nil {
		view.SenderAvatar = *n.SenderAvatar
	}
	return view
}
