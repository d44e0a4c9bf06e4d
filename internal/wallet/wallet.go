package wallet

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/somix-network/somix-ledger/internal/adapter"
)

//go:generate mockgen -source=wallet.go -destination=../mocks/mock_wallet.go -package=mocks

const transferGasLimit = 21000

// ErrConfirmationTimeout indicates the receipt did not appear within the
// configured wait window. The transaction may still confirm later.
var ErrConfirmationTimeout = fmt.Errorf("transaction confirmation timed out")

// Receipt summarizes a mined transaction
type Receipt struct {
	TxHash      string
	Reverted    bool
	GasUsed     uint64
	BlockNumber uint64
}

// Wallet is a custodial hot wallet for native token transfers
type Wallet interface {
	Address() common.Address
	Balance(ctx context.Context) (*big.Int, error)
	Transfer(ctx context.Context, to common.Address, wei *big.Int) (string, error)
	WaitConfirmed(ctx context.Context, txHash string) (*Receipt, error)
}

type hotWallet struct {
	client       adapter.EthClient
	privateKey   *ecdsa.PrivateKey
	address      common.Address
	chainID      *big.Int
	pollInterval time.Duration

	// nonceMu serializes nonce assignment across concurrent transfers
	nonceMu sync.Mutex
}

// New creates a custodial wallet from a hex private key. The chain ID is
// fetched once at construction time.
func New(ctx context.Context, client adapter.EthClient, privateKeyHex string, pollInterval time.Duration) (Wallet, error) {
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chain ID: %w", err)
	}

	if pollInterval <= 0 {
		pollInterval = 2 * time.Second
	}

	return &hotWallet{
		client:       client,
		privateKey:   key,
		address:      crypto.PubkeyToAddress(key.PublicKey),
		chainID:      chainID,
		pollInterval: pollInterval,
	}, nil
}

func (w *hotWallet) Address() common.Address {
	return w.address
}

func (w *hotWallet) Balance(ctx context.Context) (*big.Int, error) {
	balance, err := w.client.BalanceAt(ctx, w.address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallet balance: %w", err)
	}
	return balance, nil
}

// Transfer signs and broadcasts a native token transfer. It returns the
// transaction hash once the transaction is accepted by the node; it does not
// wait for the transaction to be mined.
func (w *hotWallet) Transfer(ctx context.Context, to common.Address, wei *big.Int) (string, error) {
	w.nonceMu.Lock()
	defer w.nonceMu.Unlock()

	nonce, err := w.client.PendingNonceAt(ctx, w.address)
	if err != nil {
		return "", fmt.Errorf("failed to fetch nonce: %w", err)
	}

	gasPrice, err := w.client.SuggestGasPrice(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch gas price: %w", err)
	}

	tx := types.NewTransaction(nonce, to, wei, transferGasLimit, gasPrice, nil)

	signedTx, err := types.SignTx(tx, types.NewEIP155Signer(w.chainID), w.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := w.client.SendTransaction(ctx, signedTx); err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	return signedTx.Hash().Hex(), nil
}

// WaitConfirmed polls for the transaction receipt until the context is
// cancelled. Callers bound the wait with a deadline; on expiry the error is
// ErrConfirmationTimeout wrapped over the context error.
func (w *hotWallet) WaitConfirmed(ctx context.Context, txHash string) (*Receipt, error) {
	hash := common.HexToHash(txHash)

	var receipt *types.Receipt
	operation := func() error {
		r, err := w.client.TransactionReceipt(ctx, hash)
		if err != nil {
			if err == ethereum.NotFound {
				return err // retry
			}
			return backoff.Permanent(err)
		}
		receipt = r
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(w.pollInterval), ctx)
	if err := backoff.Retry(operation, b); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %v", ErrConfirmationTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}

	return &Receipt{
		TxHash:      txHash,
		Reverted:    receipt.Status == types.ReceiptStatusFailed,
		GasUsed:     receipt.GasUsed,
		BlockNumber: receipt.BlockNumber.Uint64(),
	}, nil
}
