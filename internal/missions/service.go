package missions

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/notifier"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// Status is one mission joined with a user's progress against it
type Status struct {
	Mission
	Progress  int64 `json:"progress"`
	Completed bool  `json:"completed"`
	Claimed   bool  `json:"claimed"`
}

// Service tracks mission progress and pays out claimed rewards
type Service struct {
	store    store.Store
	notifier *notifier.Service
}

// NewService creates a missions service
func NewService(s store.Store, n *notifier.Service) *Service {
	return &Service{store: s, notifier: n}
}

// RecordAction updates an address's activity counter and marks any newly
// completed missions. For mint actions the counter is re-derived from the
// mint records rather than incremented, which keeps concurrent updates and
// retried outbox tasks idempotent.
func (s *Service) RecordAction(ctx context.Context, address string, action Action) error {
	if !domain.ValidAddress(address) {
		return fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	address = domain.NormalizeAddress(address)

	progress, err := s.store.GetMissionProgress(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to load mission progress: %w", err)
	}
	if progress == nil {
		progress = &schema.MissionProgress{
			Address:   address,
			Progress:  datatypes.JSONMap{},
			Completed: datatypes.JSON([]byte("[]")),
			Claimed:   datatypes.JSON([]byte("[]")),
		}
	}
	if progress.Progress == nil {
		progress.Progress = datatypes.JSONMap{}
	}

	var count int64
	if action == ActionMint {
		count, err = s.store.CountMintsByMinter(ctx, address)
		if err != nil {
			return fmt.Errorf("failed to count mints: %w", err)
		}
	} else {
		count = counterValue(progress.Progress, string(action)) + 1
	}
	progress.Progress[string(action)] = count

	completed, err := decodeIDList(progress.Completed)
	if err != nil {
		return fmt.Errorf("failed to decode completed missions: %w", err)
	}

	var newlyCompleted []Mission
	for _, mission := range Catalog {
		if mission.Action != action || count < mission.Target {
			continue
		}
		if containsID(completed, mission.ID) {
			continue
		}
		completed = append(completed, mission.ID)
		newlyCompleted = append(newlyCompleted, mission)
	}

	encoded, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("failed to encode completed missions: %w", err)
	}
	progress.Completed = datatypes.JSON(encoded)

	if err := s.store.SaveMissionProgress(ctx, progress); err != nil {
		return fmt.Errorf("failed to save mission progress: %w", err)
	}

	for _, mission := range newlyCompleted {
		_, err := s.notifier.Notify(ctx, notifier.NotifyInput{
			Recipient: address,
			Sender:    domain.SystemSender,
			Type:      domain.NotificationTypeAchievement,
			Message:   fmt.Sprintf("Mission complete: %s. Claim your %d tokens!", mission.Title, mission.Reward),
			Metadata:  domain.NotificationMetadata{AchievementID: mission.ID},
		})
		if err != nil {
			logger.Warn("failed to send achievement notification",
				zap.String("address", address),
				zap.String("missionID", mission.ID),
				zap.Error(err))
		}
	}

	return nil
}

// List returns the catalog joined with the address's progress
func (s *Service) List(ctx context.Context, address string) ([]Status, error) {
	if !domain.ValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	address = domain.NormalizeAddress(address)

	progress, err := s.store.GetMissionProgress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission progress: %w", err)
	}

	var counters datatypes.JSONMap
	var completed, claimed []string
	if progress != nil {
		counters = progress.Progress
		if completed, err = decodeIDList(progress.Completed); err != nil {
			return nil, fmt.Errorf("failed to decode completed missions: %w", err)
		}
		if claimed, err = decodeIDList(progress.Claimed); err != nil {
			return nil, fmt.Errorf("failed to decode claimed missions: %w", err)
		}
	}

	statuses := make([]Status, 0, len(Catalog))
	for _, mission := range Catalog {
		count := counterValue(counters, string(mission.Action))
		if count > mission.Target {
			count = mission.Target
		}
		statuses = append(statuses, Status{
			Mission:   mission,
			Progress:  count,
			Completed: containsID(completed, mission.ID),
			Claimed:   containsID(claimed, mission.ID),
		})
	}
	return statuses, nil
}

// Claim pays out a completed mission's token reward. Claiming is one-way and
// enforced atomically at the storage layer.
func (s *Service) Claim(ctx context.Context, address, missionID string) (*Mission, error) {
	if !domain.ValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	mission := Lookup(missionID)
	if mission == nil {
		return nil, domain.ErrMissionNotFound
	}

	address = domain.NormalizeAddress(address)
	if err := s.store.ClaimMission(ctx, address, missionID, mission.Reward); err != nil {
		return nil, err
	}
	return mission, nil
}

func counterValue(m datatypes.JSONMap, key string) int64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

func decodeIDList(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
