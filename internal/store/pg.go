package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the ledger tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.User{},
		&schema.Post{},
		&schema.MintRecord{},
		&schema.Notification{},
		&schema.MissionProgress{},
		&schema.WithdrawalAttempt{},
		&schema.OutboxTask{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// defaultUsername derives the implicit display handle for a lazily created
// account from its address
func defaultUsername(address string) string {
	if len(address) >= 12 {
		return "user_" + address[2:12]
	}
	return "user_" + address
}

// GetUserByAddress retrieves a user by case-insensitive address
func (s *pgStore) GetUserByAddress(ctx context.Context, address string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).
		Where("address = ?", domain.NormalizeAddress(address)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// EnsureUser creates the account for an address if absent and returns it.
// Creation is a single insert-if-absent statement, so two concurrent calls for
// the same address can never produce duplicate accounts.
func (s *pgStore) EnsureUser(ctx context.Context, address string) (*schema.User, error) {
	addr := domain.NormalizeAddress(address)

	user := schema.User{
		Address:  addr,
		Username: defaultUsername(addr),
		Tokens:   domain.SignupTokens,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoNothing: true,
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	// ID == 0 means the row already existed
	if user.ID == 0 {
		return s.GetUserByAddress(ctx, addr)
	}
	return &user, nil
}

// CreditStars atomically credits stars to an address. The credit and the
// create-if-absent are one upsert statement; concurrent credits for the same
// address serialize on the row and are never lost.
func (s *pgStore) CreditStars(ctx context.Context, address string, amount int64) (*schema.User, error) {
	addr := domain.NormalizeAddress(address)

	user := schema.User{
		Address:          addr,
		Username:         defaultUsername(addr),
		Stars:            amount,
		TotalStarsEarned: amount,
		Tokens:           domain.SignupTokens,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "address"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"stars":              gorm.Expr("users.stars + ?", amount),
			"total_stars_earned": gorm.Expr("users.total_stars_earned + ?", amount),
			"updated_at":         gorm.Expr("now()"),
		}),
	}).Create(&user).Error
	if err != nil {
		return nil, fmt.Errorf("failed to credit stars: %w", err)
	}

	return s.GetUserByAddress(ctx, addr)
}

// DebitStars atomically debits stars from an address. The balance guard is
// part of the UPDATE predicate, never an application-level read-modify-write.
func (s *pgStore) DebitStars(ctx context.Context, address string, amount int64) error {
	return s.debitStars(s.db.WithContext(ctx), address, amount)
}

func (s *pgStore) debitStars(tx *gorm.DB, address string, amount int64) error {
	addr := domain.NormalizeAddress(address)

	res := tx.Model(&schema.User{}).
		Where("address = ? AND stars >= ?", addr, amount).
		Updates(map[string]interface{}{
			"stars":                 gorm.Expr("stars - ?", amount),
			"total_stars_withdrawn": gorm.Expr("total_stars_withdrawn + ?", amount),
			"updated_at":            gorm.Expr("now()"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to debit stars: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&schema.User{}).Where("address = ?", addr).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check account: %w", err)
		}
		if count == 0 {
			return domain.ErrAccountNotFound
		}
		return domain.ErrInsufficientBalance
	}
	return nil
}

// CreditTokens atomically credits generation tokens to an existing account
func (s *pgStore) CreditTokens(ctx context.Context, address string, amount int64) error {
	return s.creditTokens(s.db.WithContext(ctx), address, amount)
}

func (s *pgStore) creditTokens(tx *gorm.DB, address string, amount int64) error {
	res := tx.Model(&schema.User{}).
		Where("address = ?", domain.NormalizeAddress(address)).
		Updates(map[string]interface{}{
			"tokens":     gorm.Expr("tokens + ?", amount),
			"updated_at": gorm.Expr("now()"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to credit tokens: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// CreatePost persists a post
func (s *pgStore) CreatePost(ctx context.Context, post *schema.Post) error {
	post.AuthorAddress = domain.NormalizeAddress(post.AuthorAddress)
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetPostByID retrieves a post by its primary key
func (s *pgStore) GetPostByID(ctx context.Context, id uint64) (*schema.Post, error) {
	var post schema.Post
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return &post, nil
}

// CreateMintRecord persists a mint record, increments the post's edition
// counter and enqueues the outbox tasks, all in one transaction.
//
// Idempotency comes from the unique index on tx_hash: the insert uses
// ON CONFLICT DO NOTHING, and a zero ID afterwards means another call already
// recorded the hash. The edition cap is enforced by the UPDATE predicate, so
// two concurrent calls racing for the last edition serialize on the post row
// and at most one commits.
func (s *pgStore) CreateMintRecord(ctx context.Context, input CreateMintRecordInput) (*schema.MintRecord, error) {
	record := input.Record
	record.MinterAddress = domain.NormalizeAddress(record.MinterAddress)
	record.ContractAddress = domain.NormalizeAddress(record.ContractAddress)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&record).Error; err != nil {
			return fmt.Errorf("failed to create mint record: %w", err)
		}
		if record.ID == 0 {
			return domain.ErrDuplicateTransaction
		}

		res := tx.Model(&schema.Post{}).
			Where("id = ? AND (edition_cap IS NULL OR minted < edition_cap)", record.PostID).
			Update("minted", gorm.Expr("minted + 1"))
		if res.Error != nil {
			return fmt.Errorf("failed to increment edition counter: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&schema.Post{}).Where("id = ?", record.PostID).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check post: %w", err)
			}
			if count == 0 {
				return domain.ErrPostNotFound
			}
			return domain.ErrEditionCapReached
		}

		if len(input.Tasks) > 0 {
			tasks := input.Tasks
			if err := tx.Create(&tasks).Error; err != nil {
				return fmt.Errorf("failed to enqueue outbox tasks: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// CountMintsByMinter returns the number of mint records for a minter
func (s *pgStore) CountMintsByMinter(ctx context.Context, minter string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.MintRecord{}).
		Where("minter_address = ?", domain.NormalizeAddress(minter)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count mints: %w", err)
	}
	return count, nil
}

// ListMintsByPost retrieves mint records for a post, newest first
func (s *pgStore) ListMintsByPost(ctx context.Context, postID uint64, limit int, offset uint64) ([]schema.MintRecord, uint64, error) {
	return s.listMints(ctx, "post_id = ?", postID, limit, offset)
}

// ListMintsByMinter retrieves mint records by minter, newest first
func (s *pgStore) ListMintsByMinter(ctx context.Context, minter string, limit int, offset uint64) ([]schema.MintRecord, uint64, error) {
	return s.listMints(ctx, "minter_address = ?", domain.NormalizeAddress(minter), limit, offset)
}

func (s *pgStore) listMints(ctx context.Context, cond string, arg interface{}, limit int, offset uint64) ([]schema.MintRecord, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.MintRecord{}).Where(cond, arg)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count mints: %w", err)
	}

	var records []schema.MintRecord
	err := query.
		Order("created_at DESC").Order("id DESC").
		Limit(limit).Offset(int(offset)). //nolint:gosec,G115
		Find(&records).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list mints: %w", err)
	}

	return records, uint64(total), nil //nolint:gosec,G115
}

// CreateNotification persists a notification record
func (s *pgStore) CreateNotification(ctx context.Context, n *schema.Notification) error {
	n.RecipientAddress = domain.NormalizeAddress(n.RecipientAddress)
	if err := s.db.WithContext(ctx).Create(n).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// ListNotifications retrieves notifications matching the filter, newest first
func (s *pgStore) ListNotifications(ctx context.Context, filter NotificationFilter) ([]schema.Notification, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Notification{}).
		Where("recipient_address = ?", domain.NormalizeAddress(filter.Recipient))

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	var notifications []schema.Notification
	err := query.
		Order("created_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&notifications).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, uint64(total), nil //nolint:gosec,G115
}

// CountUnreadNotifications returns the unread count for a recipient
func (s *pgStore) CountUnreadNotifications(ctx context.Context, recipient string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Notification{}).
		Where("recipient_address = ? AND read = ?", domain.NormalizeAddress(recipient), false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkNotificationRead flips the read flag. The recipient predicate makes the
// transition recipient-scoped: no other identity can mutate it.
func (s *pgStore) MarkNotificationRead(ctx context.Context, id uint64, recipient string) error {
	res := s.db.WithContext(ctx).Model(&schema.Notification{}).
		Where("id = ? AND recipient_address = ?", id, domain.NormalizeAddress(recipient)).
		Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

// MarkAllNotificationsRead flips all unread notifications for a recipient
func (s *pgStore) MarkAllNotificationsRead(ctx context.Context, recipient string) (int64, error) {
	res := s.db.WithContext(ctx).Model(&schema.Notification{}).
		Where("recipient_address = ? AND read = ?", domain.NormalizeAddress(recipient), false).
		Update("read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// GetMissionProgress retrieves mission progress for an address
func (s *pgStore) GetMissionProgress(ctx context.Context, address string) (*schema.MissionProgress, error) {
	var progress schema.MissionProgress
	err := s.db.WithContext(ctx).
		Where("address = ?", domain.NormalizeAddress(address)).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get mission progress: %w", err)
	}
	return &progress, nil
}

// SaveMissionProgress upserts a mission progress row keyed by address
func (s *pgStore) SaveMissionProgress(ctx context.Context, progress *schema.MissionProgress) error {
	progress.Address = domain.NormalizeAddress(progress.Address)
	progress.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "address"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress", "completed", "claimed", "updated_at"}),
	}).Create(progress).Error
	if err != nil {
		return fmt.Errorf("failed to save mission progress: %w", err)
	}
	return nil
}

// missionIDList decodes a JSON array of mission ids
func missionIDList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode mission id list: %w", err)
	}
	return ids, nil
}

// ClaimMission atomically flips the claim flag for a completed mission and
// credits the token reward. The progress row is locked for the duration of
// the check-and-flip so a double claim can never pay twice.
func (s *pgStore) ClaimMission(ctx context.Context, address, missionID string, reward int64) error {
	addr := domain.NormalizeAddress(address)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var progress schema.MissionProgress
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("address = ?", addr).
			First(&progress).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrMissionNotCompleted
			}
			return fmt.Errorf("failed to lock mission progress: %w", err)
		}

		completed, err := missionIDList(progress.Completed)
		if err != nil {
			return err
		}
		claimed, err := missionIDList(progress.Claimed)
		if err != nil {
			return err
		}

		if containsString(claimed, missionID) {
			return domain.ErrMissionAlreadyClaimed
		}
		if !containsString(completed, missionID) {
			return domain.ErrMissionNotCompleted
		}

		claimed = append(claimed, missionID)
		claimedJSON, err := json.Marshal(claimed)
		if err != nil {
			return fmt.Errorf("failed to encode claimed list: %w", err)
		}

		res := tx.Model(&schema.MissionProgress{}).
			Where("id = ?", progress.ID).
			Updates(map[string]interface{}{
				"claimed":    claimedJSON,
				"updated_at": gorm.Expr("now()"),
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update claimed list: %w", res.Error)
		}

		return s.creditTokens(tx, addr, reward)
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CreateWithdrawalAttempt persists a new settlement attempt
func (s *pgStore) CreateWithdrawalAttempt(ctx context.Context, attempt *schema.WithdrawalAttempt) error {
	attempt.Address = domain.NormalizeAddress(attempt.Address)
	if err := s.db.WithContext(ctx).Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to create withdrawal attempt: %w", err)
	}
	return nil
}

// UpdateWithdrawalAttempt persists a state transition of an attempt
func (s *pgStore) UpdateWithdrawalAttempt(ctx context.Context, attempt *schema.WithdrawalAttempt) error {
	attempt.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Save(attempt).Error; err != nil {
		return fmt.Errorf("failed to update withdrawal attempt: %w", err)
	}
	return nil
}

// ListWithdrawalAttempts retrieves attempts in a given status, oldest first
func (s *pgStore) ListWithdrawalAttempts(ctx context.Context, status schema.WithdrawalStatus) ([]schema.WithdrawalAttempt, error) {
	var attempts []schema.WithdrawalAttempt
	err := s.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&attempts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawal attempts: %w", err)
	}
	return attempts, nil
}

// SettleWithdrawal applies the post-confirmation ledger debit and marks the
// attempt confirmed in one transaction. The debit keeps its balance guard so
// the invariant stars = earned - withdrawn holds even if the attempt row was
// tampered with.
func (s *pgStore) SettleWithdrawal(ctx context.Context, attempt *schema.WithdrawalAttempt) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.debitStars(tx, attempt.Address, attempt.Stars); err != nil {
			return err
		}

		attempt.Status = schema.WithdrawalStatusConfirmed
		attempt.UpdatedAt = time.Now()
		if err := tx.Save(attempt).Error; err != nil {
			return fmt.Errorf("failed to update withdrawal attempt: %w", err)
		}
		return nil
	})
}

// DueOutboxTasks retrieves pending outbox tasks due at or before now
func (s *pgStore) DueOutboxTasks(ctx context.Context, limit int, now time.Time) ([]schema.OutboxTask, error) {
	var tasks []schema.OutboxTask
	err := s.db.WithContext(ctx).
		Where("status = ? AND next_attempt_at <= ?", schema.OutboxStatusPending, now).
		Order("id ASC").
		Limit(limit).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outbox tasks: %w", err)
	}
	return tasks, nil
}

// MarkOutboxTaskDone marks a task as processed
func (s *pgStore) MarkOutboxTaskDone(ctx context.Context, id uint64) error {
	err := s.db.WithContext(ctx).Model(&schema.OutboxTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     schema.OutboxStatusDone,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox task done: %w", err)
	}
	return nil
}

// RescheduleOutboxTask records a failed attempt and its next due time
func (s *pgStore) RescheduleOutboxTask(ctx context.Context, id uint64, attempts int, next time.Time, lastErr string) error {
	err := s.db.WithContext(ctx).Model(&schema.OutboxTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"attempts":        attempts,
			"next_attempt_at": next,
			"last_error":      lastErr,
			"updated_at":      gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to reschedule outbox task: %w", err)
	}
	return nil
}

// MarkOutboxTaskFailed marks a task as terminally failed
func (s *pgStore) MarkOutboxTaskFailed(ctx context.Context, id uint64, attempts int, lastErr string) error {
	err := s.db.WithContext(ctx).Model(&schema.OutboxTask{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     schema.OutboxStatusFailed,
			"attempts":   attempts,
			"last_error": lastErr,
			"updated_at": gorm.Expr("now()"),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to mark outbox task failed: %w", err)
	}
	return nil
}
