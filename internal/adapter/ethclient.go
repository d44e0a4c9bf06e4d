package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

//go:generate mockgen -source=ethclient.go -destination=../mocks/mock_ethclient.go -package=mocks

// EthClient abstracts the go-ethereum client for testing
type EthClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// EthClientDialer creates EthClient connections
type EthClientDialer interface {
	DialContext(ctx context.Context, rawURL string) (EthClient, error)
}

// DefaultEthClientDialer dials real ethclient connections
type DefaultEthClientDialer struct{}

func (d *DefaultEthClientDialer) DialContext(ctx context.Context, rawURL string) (EthClient, error) {
	return ethclient.DialContext(ctx, rawURL)
}
