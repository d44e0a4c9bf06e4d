package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/ledger"
	"github.com/somix-network/somix-ledger/internal/missions"
	"github.com/somix-network/somix-ledger/internal/notifier"
)

// StarCreditHandler applies a deferred star credit
func StarCreditHandler(accountant *ledger.Accountant) Handler {
	return func(ctx context.Context, payload []byte) error {
		var p domain.StarCreditPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("failed to decode star credit payload: %w", err)
		}
		if _, err := accountant.Credit(ctx, p.Address, p.Amount); err != nil {
			return err
		}
		return nil
	}
}

// NotificationHandler records and pushes a deferred notification
func NotificationHandler(svc *notifier.Service) Handler {
	return func(ctx context.Context, payload []byte) error {
		var p domain.NotificationPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("failed to decode notification payload: %w", err)
		}
		_, err := svc.Notify(ctx, notifier.NotifyInput{
			Recipient: p.Recipient,
			Sender:    p.Sender,
			Type:      p.Type,
			Message:   p.Message,
			Metadata:  p.Metadata,
		})
		return err
	}
}

// MissionProgressHandler applies a deferred mission progress update
func MissionProgressHandler(svc *missions.Service) Handler {
	return func(ctx context.Context, payload []byte) error {
		var p domain.MissionProgressPayload
		if err := json.Unmarshal(payload, &p); err != nil {
			return fmt.Errorf("failed to decode mission progress payload: %w", err)
		}
		return svc.RecordAction(ctx, p.Address, missions.Action(p.Action))
	}
}
