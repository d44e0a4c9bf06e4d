package messaging

import (
	"context"

	"github.com/somix-network/somix-ledger/internal/domain"
)

//go:generate mockgen -source=publisher.go -destination=../mocks/mock_publisher.go -package=mocks

// Subjects for domain events
const (
	SubjectMintRecorded       = "ledger.mints.recorded"
	SubjectWithdrawalSettled  = "ledger.withdrawals.settled"
	SubjectNotificationPushed = "ledger.notifications.pushed"
)

// Publisher publishes domain events to downstream consumers
type Publisher interface {
	PublishMintRecorded(ctx context.Context, event domain.MintRecordedEvent) error
	PublishWithdrawalConfirmed(ctx context.Context, event domain.WithdrawalConfirmedEvent) error
	Close() error
}

// NoopPublisher discards all events. Used when NATS is not configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishMintRecorded(ctx context.Context, event domain.MintRecordedEvent) error {
	return nil
}

func (NoopPublisher) PublishWithdrawalConfirmed(ctx context.Context, event domain.WithdrawalConfirmedEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
