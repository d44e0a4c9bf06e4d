package wallet

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somix-network/somix-ledger/internal/mocks"
)

// well-known throwaway test key
const testKeyHex = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

func newTestWallet(t *testing.T, client *mocks.MockEthClient) Wallet {
	client.EXPECT().ChainID(gomock.Any()).Return(big.NewInt(1337), nil)
	w, err := New(context.Background(), client, testKeyHex, time.Millisecond)
	require.NoError(t, err)
	return w
}

func TestNewRejectsInvalidKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := New(context.Background(), mocks.NewMockEthClient(ctrl), "not-hex", time.Second)
	assert.Error(t, err)
}

func TestAddressDerivedFromKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	w := newTestWallet(t, mocks.NewMockEthClient(ctrl))

	key, err := crypto.HexToECDSA(testKeyHex)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), w.Address())
}

func TestTransferSignsAndBroadcasts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	w := newTestWallet(t, client)

	to := common.HexToAddress("0x71c7656ec7ab88b098defb751b7401b5f6d8976f")
	amount := big.NewInt(500)

	client.EXPECT().PendingNonceAt(gomock.Any(), w.Address()).Return(uint64(7), nil)
	client.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(2_000_000_000), nil)

	var sent *types.Transaction
	client.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *types.Transaction) error {
			sent = tx
			return nil
		})

	hash, err := w.Transfer(context.Background(), to, amount)
	require.NoError(t, err)
	require.NotNil(t, sent)

	assert.Equal(t, sent.Hash().Hex(), hash)
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, to, *sent.To())
	assert.Equal(t, amount, sent.Value())
	assert.Equal(t, uint64(transferGasLimit), sent.Gas())
	assert.Equal(t, big.NewInt(1337), sent.ChainId())

	// The signature must recover to the wallet address
	sender, err := types.Sender(types.NewEIP155Signer(big.NewInt(1337)), sent)
	require.NoError(t, err)
	assert.Equal(t, w.Address(), sender)
}

func TestWaitConfirmedRetriesUntilMined(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	w := newTestWallet(t, client)

	txHash := "0xabcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcdcd"
	hash := common.HexToHash(txHash)

	gomock.InOrder(
		client.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(nil, ethereum.NotFound),
		client.EXPECT().TransactionReceipt(gomock.Any(), hash).Return(&types.Receipt{
			Status:      types.ReceiptStatusSuccessful,
			GasUsed:     21000,
			BlockNumber: big.NewInt(42),
		}, nil),
	)

	receipt, err := w.WaitConfirmed(context.Background(), txHash)
	require.NoError(t, err)
	assert.False(t, receipt.Reverted)
	assert.Equal(t, uint64(21000), receipt.GasUsed)
	assert.Equal(t, uint64(42), receipt.BlockNumber)
}

func TestWaitConfirmedReportsRevert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	w := newTestWallet(t, client)

	client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(&types.Receipt{
		Status:      types.ReceiptStatusFailed,
		GasUsed:     21000,
		BlockNumber: big.NewInt(42),
	}, nil)

	receipt, err := w.WaitConfirmed(context.Background(), "0xdead")
	require.NoError(t, err)
	assert.True(t, receipt.Reverted)
}

func TestWaitConfirmedTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockEthClient(ctrl)
	w := newTestWallet(t, client)

	client.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).
		Return(nil, ethereum.NotFound).AnyTimes()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := w.WaitConfirmed(ctx, "0xdead")
	assert.ErrorIs(t, err, ErrConfirmationTimeout)
}
