package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/somix-network/somix-ledger/internal/adapter"
	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/logger"
	"github.com/somix-network/somix-ledger/internal/messaging"
	"github.com/somix-network/somix-ledger/internal/store/schema"
	"github.com/somix-network/somix-ledger/internal/wallet"
)

//go:generate mockgen -source=service.go -destination=../mocks/mock_settlement_ledger.go -package=mocks

// Ledger is the slice of the store the settlement service depends on
type Ledger interface {
	GetUserByAddress(ctx context.Context, address string) (*schema.User, error)
	CreateWithdrawalAttempt(ctx context.Context, attempt *schema.WithdrawalAttempt) error
	UpdateWithdrawalAttempt(ctx context.Context, attempt *schema.WithdrawalAttempt) error
	ListWithdrawalAttempts(ctx context.Context, status schema.WithdrawalStatus) ([]schema.WithdrawalAttempt, error)
	SettleWithdrawal(ctx context.Context, attempt *schema.WithdrawalAttempt) error
}

// weiPerNative is the wei value of one native token
var weiPerNative = new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))

// Service converts star balances into custodial native-token transfers.
// The ordering invariant is strict: stars are debited only after the on-chain
// transfer is confirmed, so a failed or unconfirmed transfer never touches
// the ledger.
type Service struct {
	ledger         Ledger
	wallet         wallet.Wallet
	publisher      messaging.Publisher
	clock          adapter.Clock
	rate           float64
	confirmTimeout time.Duration
}

// NewService creates a settlement service. rate is the native-token value of
// one star; confirmTimeout bounds the receipt wait per attempt.
func NewService(ledger Ledger, w wallet.Wallet, publisher messaging.Publisher, clock adapter.Clock, rate float64, confirmTimeout time.Duration) *Service {
	return &Service{
		ledger:         ledger,
		wallet:         w,
		publisher:      publisher,
		clock:          clock,
		rate:           rate,
		confirmTimeout: confirmTimeout,
	}
}

// Withdraw settles stars into a native-token transfer to the holder's own
// address. On domain.ErrUnconfirmedTransfer the transfer is in flight and the
// attempt stays in the submitted state for the reconciler; the returned
// attempt carries the transaction hash.
func (s *Service) Withdraw(ctx context.Context, address string, stars int64) (*schema.WithdrawalAttempt, error) {
	if !domain.ValidAddress(address) {
		return nil, fmt.Errorf("%w: invalid address", domain.ErrValidation)
	}
	if stars <= 0 {
		return nil, fmt.Errorf("%w: withdrawal amount must be positive", domain.ErrValidation)
	}
	address = domain.NormalizeAddress(address)

	user, err := s.ledger.GetUserByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}
	if user == nil {
		return nil, domain.ErrAccountNotFound
	}
	// Precheck only; the authoritative guard is the debit predicate at
	// settlement time
	if user.Stars < stars {
		return nil, domain.ErrInsufficientBalance
	}

	wei := s.starsToWei(stars)

	custodial, err := s.wallet.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check custodial balance: %w", err)
	}
	if custodial.Cmp(wei) < 0 {
		return nil, domain.ErrInsufficientCustodialFunds
	}

	attempt := &schema.WithdrawalAttempt{
		AttemptID: uuid.NewString(),
		Address:   address,
		Stars:     stars,
		NativeWei: wei.String(),
		Status:    schema.WithdrawalStatusPending,
	}
	if err := s.ledger.CreateWithdrawalAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to persist withdrawal attempt: %w", err)
	}

	started := s.clock.Now()

	txHash, err := s.wallet.Transfer(ctx, common.HexToAddress(address), wei)
	if err != nil {
		attempt.Status = schema.WithdrawalStatusFailed
		attempt.ErrorMessage = err.Error()
		if updateErr := s.ledger.UpdateWithdrawalAttempt(ctx, attempt); updateErr != nil {
			logger.Error("failed to mark withdrawal attempt failed",
				zap.String("attemptID", attempt.AttemptID),
				zap.Error(updateErr))
		}
		return attempt, fmt.Errorf("failed to submit transfer: %w", err)
	}

	attempt.TxHash = &txHash
	attempt.Status = schema.WithdrawalStatusSubmitted
	if err := s.ledger.UpdateWithdrawalAttempt(ctx, attempt); err != nil {
		// The transfer is on-chain; the attempt row must reflect that before
		// anything else can go wrong
		logger.Error("failed to mark withdrawal attempt submitted",
			zap.String("attemptID", attempt.AttemptID),
			zap.String("txHash", txHash),
			zap.Error(err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
	defer cancel()

	receipt, err := s.wallet.WaitConfirmed(waitCtx, txHash)
	if err != nil {
		attempt.ErrorMessage = err.Error()
		if updateErr := s.ledger.UpdateWithdrawalAttempt(ctx, attempt); updateErr != nil {
			logger.Error("failed to record confirmation timeout",
				zap.String("attemptID", attempt.AttemptID),
				zap.Error(updateErr))
		}
		return attempt, fmt.Errorf("%w: tx %s", domain.ErrUnconfirmedTransfer, txHash)
	}

	return s.finalize(ctx, attempt, receipt, started)
}

// Reconcile resolves attempts stuck in the submitted state. For each one with
// a known receipt the normal settlement outcome is applied; attempts whose
// transactions are still unmined are left untouched.
func (s *Service) Reconcile(ctx context.Context) error {
	attempts, err := s.ledger.ListWithdrawalAttempts(ctx, schema.WithdrawalStatusSubmitted)
	if err != nil {
		return fmt.Errorf("failed to list submitted attempts: %w", err)
	}

	for i := range attempts {
		attempt := &attempts[i]
		if attempt.TxHash == nil {
			continue
		}

		waitCtx, cancel := context.WithTimeout(ctx, s.confirmTimeout)
		receipt, err := s.wallet.WaitConfirmed(waitCtx, *attempt.TxHash)
		cancel()
		if err != nil {
			if errors.Is(err, wallet.ErrConfirmationTimeout) {
				logger.Info("withdrawal still unconfirmed",
					zap.String("attemptID", attempt.AttemptID),
					zap.String("txHash", *attempt.TxHash))
				continue
			}
			logger.Error("failed to reconcile withdrawal",
				zap.String("attemptID", attempt.AttemptID),
				zap.Error(err))
			continue
		}

		if _, err := s.finalize(ctx, attempt, receipt, s.clock.Now()); err != nil {
			logger.Error("failed to finalize reconciled withdrawal",
				zap.String("attemptID", attempt.AttemptID),
				zap.Error(err))
		}
	}

	return nil
}

// finalize applies the terminal outcome of a mined transfer: a reverted
// transfer fails the attempt with the ledger untouched, a successful one
// debits the stars and confirms the attempt in a single transaction.
func (s *Service) finalize(ctx context.Context, attempt *schema.WithdrawalAttempt, receipt *wallet.Receipt, started time.Time) (*schema.WithdrawalAttempt, error) {
	if receipt.Reverted {
		attempt.Status = schema.WithdrawalStatusFailed
		attempt.ErrorMessage = "transfer reverted on-chain"
		if err := s.ledger.UpdateWithdrawalAttempt(ctx, attempt); err != nil {
			logger.Error("failed to mark withdrawal attempt reverted",
				zap.String("attemptID", attempt.AttemptID),
				zap.Error(err))
		}
		return attempt, domain.ErrTransferReverted
	}

	attempt.GasUsed = &receipt.GasUsed
	attempt.BlockNumber = &receipt.BlockNumber
	if err := s.ledger.SettleWithdrawal(ctx, attempt); err != nil {
		// The transfer confirmed but the debit cannot be applied; leave the
		// attempt in the submitted state for operator review
		attempt.ErrorMessage = err.Error()
		if updateErr := s.ledger.UpdateWithdrawalAttempt(ctx, attempt); updateErr != nil {
			logger.Error("failed to record settlement error",
				zap.String("attemptID", attempt.AttemptID),
				zap.Error(updateErr))
		}
		return attempt, fmt.Errorf("failed to settle confirmed withdrawal: %w", err)
	}

	logger.Info("withdrawal settled",
		zap.String("attemptID", attempt.AttemptID),
		zap.String("address", attempt.Address),
		zap.Int64("stars", attempt.Stars),
		zap.String("txHash", *attempt.TxHash),
		zap.Duration("elapsed", s.clock.Now().Sub(started)))

	if err := s.publisher.PublishWithdrawalConfirmed(ctx, domain.WithdrawalConfirmedEvent{
		AttemptID:    attempt.AttemptID,
		Address:      attempt.Address,
		Stars:        attempt.Stars,
		NativeAmount: attempt.NativeWei,
		TxHash:       *attempt.TxHash,
		BlockNumber:  receipt.BlockNumber,
	}); err != nil {
		logger.Warn("failed to publish withdrawal event",
			zap.String("attemptID", attempt.AttemptID),
			zap.Error(err))
	}

	return attempt, nil
}

// starsToWei converts a star amount to its native-token value in wei at the
// fixed withdrawal rate
func (s *Service) starsToWei(stars int64) *big.Int {
	native := new(big.Float).Mul(new(big.Float).SetInt64(stars), big.NewFloat(s.rate))
	wei, _ := new(big.Float).Mul(native, weiPerNative).Int(nil)
	return wei
}
