package ledger

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/messaging"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// RecordMintInput carries the externally confirmed on-chain mint facts
type RecordMintInput struct {
	PostID          uint64
	TokenURI        string
	TokenID         int64
	TxHash          string
	ContractAddress string
	MinterAddress   string
}

// Recorder validates and durably records confirmed mints
type Recorder struct {
	store     store.Store
	publisher messaging.Publisher
}

// NewRecorder creates a mint recorder
func NewRecorder(s store.Store, publisher messaging.Publisher) *Recorder {
	return &Recorder{
		store:     s,
		publisher: publisher,
	}
}

// RecordMint validates the input, persists the mint record together with its
// downstream-effect outbox tasks in one transaction, and publishes a
// best-effort domain event. A duplicate transaction hash fails with
// domain.ErrDuplicateTransaction and leaves exactly the first record in place.
func (r *Recorder) RecordMint(ctx context.Context, input RecordMintInput) (*schema.MintRecord, error) {
	if err := validateMintInput(input); err != nil {
		return nil, err
	}

	minter := domain.NormalizeAddress(input.MinterAddress)
	contract := domain.NormalizeAddress(input.ContractAddress)

	post, err := r.store.GetPostByID(ctx, input.PostID)
	if err != nil {
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	// The minter gets an account on first contact with the platform
	if _, err := r.store.EnsureUser(ctx, minter); err != nil {
		return nil, fmt.Errorf("failed to ensure minter account: %w", err)
	}

	creator := domain.NormalizeAddress(post.AuthorAddress)

	tasks, err := buildOutboxTasks(input, minter, creator)
	if err != nil {
		return nil, err
	}

	record, err := r.store.CreateMintRecord(ctx, store.CreateMintRecordInput{
		Record: schema.MintRecord{
			PostID:          input.PostID,
			TokenURI:        input.TokenURI,
			TokenID:         input.TokenID,
			TxHash:          input.TxHash,
			ContractAddress: contract,
			MinterAddress:   minter,
		},
		Tasks: tasks,
	})
	if err != nil {
		return nil, err
	}

	if err := r.publisher.PublishMintRecorded(ctx, domain.MintRecordedEvent{
		MintID:          record.ID,
		PostID:          record.PostID,
		TokenID:         record.TokenID,
		TxHash:          record.TxHash,
		ContractAddress: record.ContractAddress,
		Minter:          record.MinterAddress,
		Creator:         creator,
	}); err != nil {
		// The record is durable; the event stream catches up via the outbox
		logger.Warn("failed to publish mint event",
			zap.String("txHash", record.TxHash),
			zap.Error(err))
	}

	return record, nil
}

// ListByPost retrieves recorded mints for a post, newest first
func (r *Recorder) ListByPost(ctx context.Context, postID uint64, limit int, offset uint64) ([]schema.MintRecord, uint64, error) {
	post, err := r.store.GetPostByID(ctx, postID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load post: %w", err)
	}
	if post == nil {
		return nil, 0, domain.ErrPostNotFound
	}
	return r.store.ListMintsByPost(ctx, postID, limit, offset)
}

// ListByMinter retrieves recorded mints by minter address, newest first
func (r *Recorder) ListByMinter(ctx context.Context, minter string, limit int, offset uint64) ([]schema.MintRecord, uint64, error) {
	if !domain.ValidAddress(minter) {
		return nil, 0, fmt.Errorf("%w: invalid minter address", domain.ErrValidation)
	}
	return r.store.ListMintsByMinter(ctx, domain.NormalizeAddress(minter), limit, offset)
}

func validateMintInput(input RecordMintInput) error {
	if input.PostID == 0 {
		return fmt.Errorf("%w: post id is required", domain.ErrValidation)
	}
	if input.TokenURI == "" {
		return fmt.Errorf("%w: token uri is required", domain.ErrValidation)
	}
	if !domain.ValidTxHash(input.TxHash) {
		return fmt.Errorf("%w: invalid transaction hash", domain.ErrValidation)
	}
	if !domain.ValidAddress(input.ContractAddress) {
		return fmt.Errorf("%w: invalid contract address", domain.ErrValidation)
	}
	if !domain.ValidAddress(input.MinterAddress) {
		return fmt.Errorf("%w: invalid minter address", domain.ErrValidation)
	}
	return nil
}

// buildOutboxTasks assembles the deferred downstream effects of a recorded
// mint: the creator's star credit, the creator's notification and the
// minter's mission progress. Self-mints skip the notification.
func buildOutboxTasks(input RecordMintInput, minter, creator string) ([]schema.OutboxTask, error) {
	var tasks []schema.OutboxTask

	credit, err := json.Marshal(domain.StarCreditPayload{
		Address: creator,
		Amount:  domain.StarsPerMint,
		Reason:  "mint",
		PostID:  input.PostID,
		TxHash:  input.TxHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal star credit payload: %w", err)
	}
	tasks = append(tasks, schema.OutboxTask{
		EventID: ulid.Make().String(),
		Kind:    schema.OutboxKindStarCredit,
		Payload: datatypes.JSON(credit),
	})

	if minter != creator {
		notif, err := json.Marshal(domain.NotificationPayload{
			Recipient: creator,
			Sender:    minter,
			Type:      domain.NotificationTypeMint,
			Message:   "minted your post",
			Metadata: domain.NotificationMetadata{
				PostID: fmt.Sprintf("%d", input.PostID),
				NFTID:  fmt.Sprintf("%d", input.TokenID),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal notification payload: %w", err)
		}
		tasks = append(tasks, schema.OutboxTask{
			EventID: ulid.Make().String(),
			Kind:    schema.OutboxKindNotification,
			Payload: datatypes.JSON(notif),
		})
	}

	progress, err := json.Marshal(domain.MissionProgressPayload{
		Address: minter,
		Action:  "mint",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal mission progress payload: %w", err)
	}
	tasks = append(tasks, schema.OutboxTask{
		EventID: ulid.Make().String(),
		Kind:    schema.OutboxKindMissionProgress,
		Payload: datatypes.JSON(progress),
	})

	return tasks, nil
}
