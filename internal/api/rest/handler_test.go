package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/ledger"
	"github.com/somix-network/somix-ledger/internal/messaging"
	"github.com/somix-network/somix-ledger/internal/missions"
	"github.com/somix-network/somix-ledger/internal/mocks"
	"github.com/somix-network/somix-ledger/internal/notifier"
	"github.com/somix-network/somix-ledger/internal/settlement"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/store/schema"
	"github.com/somix-network/somix-ledger/internal/wallet"
)

const (
	apiMinter  = "0x1111111111111111111111111111111111111111"
	apiCreator = "0x2222222222222222222222222222222222222222"
	apiTxHash  = "0xcccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc"
)

type apiFixture struct {
	store  *mocks.MockStore
	wallet *mocks.MockWallet
	router *gin.Engine
}

func newAPIFixture(t *testing.T) *apiFixture {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	w := mocks.NewMockWallet(ctrl)
	pub := messaging.NoopPublisher{}
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()

	notifierSvc := notifier.NewService(st, notifier.NewHub())
	h := NewHandler(
		ledger.NewRecorder(st, pub),
		ledger.NewAccountant(st),
		settlement.NewService(st, w, pub, clock, 0.1, 50*time.Millisecond),
		notifierSvc,
		missions.NewService(st, notifierSvc),
		w,
		0.1,
		st,
	)

	router := gin.New()
	SetupRoutes(router, h)

	return &apiFixture{store: st, wallet: w, router: router}
}

func (f *apiFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorDetail {
	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error
}

func validMintBody() gin.H {
	return gin.H{
		"post_id":          10,
		"token_uri":        "ipfs://QmTest",
		"token_id":         1,
		"tx_hash":          apiTxHash,
		"contract_address": "0x3333333333333333333333333333333333333333",
		"minter_address":   apiMinter,
	}
}

func TestRecordMintEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: apiCreator}, nil)
	f.store.EXPECT().EnsureUser(gomock.Any(), apiMinter).
		Return(&schema.User{Address: apiMinter}, nil)
	f.store.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.CreateMintRecordInput) (*schema.MintRecord, error) {
			record := in.Record
			record.ID = 1
			return &record, nil
		})

	rec := f.do(http.MethodPost, "/api/v1/mints", validMintBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp MintRecordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, apiTxHash, resp.TxHash)
	assert.Equal(t, apiMinter, resp.MinterAddress)
}

func TestRecordMintEndpointRejectsBadBody(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/mints", gin.H{"post_id": 10})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errCodeBadRequest, decodeError(t, rec).Code)
}

func TestRecordMintEndpointDuplicate(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: apiCreator}, nil)
	f.store.EXPECT().EnsureUser(gomock.Any(), apiMinter).
		Return(&schema.User{Address: apiMinter}, nil)
	f.store.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateTransaction)

	rec := f.do(http.MethodPost, "/api/v1/mints", validMintBody())
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, errCodeDuplicateTransaction, decodeError(t, rec).Code)
}

func TestRecordMintEndpointEditionCap(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetPostByID(gomock.Any(), uint64(10)).
		Return(&schema.Post{ID: 10, AuthorAddress: apiCreator}, nil)
	f.store.EXPECT().EnsureUser(gomock.Any(), apiMinter).
		Return(&schema.User{Address: apiMinter}, nil)
	f.store.EXPECT().CreateMintRecord(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrEditionCapReached)

	rec := f.do(http.MethodPost, "/api/v1/mints", validMintBody())
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, errCodeEditionCapReached, decodeError(t, rec).Code)
}

func TestGetBalanceEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().EnsureUser(gomock.Any(), apiCreator).
		Return(&schema.User{
			Address:             apiCreator,
			Stars:               8,
			TotalStarsEarned:    10,
			TotalStarsWithdrawn: 2,
		}, nil)

	rec := f.do(http.MethodGet, "/api/v1/stars/"+apiCreator, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp BalanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(8), resp.Stars)
	assert.Equal(t, int64(10), resp.TotalStarsEarned)
	assert.Equal(t, int64(2), resp.TotalStarsWithdrawn)
}

func TestGetBalanceEndpointRejectsBadAddress(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/stars/nonsense", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errCodeValidationFailed, decodeError(t, rec).Code)
}

func TestWithdrawEndpointInsufficientBalance(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetUserByAddress(gomock.Any(), apiCreator).
		Return(&schema.User{Address: apiCreator, Stars: 2}, nil)

	rec := f.do(http.MethodPost, "/api/v1/stars/withdraw", gin.H{
		"address": apiCreator,
		"stars":   5,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errCodeInsufficientBalance, decodeError(t, rec).Code)
}

func TestWithdrawEndpointUnconfirmedReturnsAccepted(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().GetUserByAddress(gomock.Any(), apiCreator).
		Return(&schema.User{Address: apiCreator, Stars: 100}, nil)
	f.wallet.EXPECT().Balance(gomock.Any()).Return(weiFor(1), nil)
	f.store.EXPECT().CreateWithdrawalAttempt(gomock.Any(), gomock.Any()).Return(nil)
	f.wallet.EXPECT().Transfer(gomock.Any(), common.HexToAddress(apiCreator), gomock.Any()).
		Return(apiTxHash, nil)
	f.wallet.EXPECT().WaitConfirmed(gomock.Any(), apiTxHash).
		Return(nil, wallet.ErrConfirmationTimeout)
	f.store.EXPECT().UpdateWithdrawalAttempt(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	rec := f.do(http.MethodPost, "/api/v1/stars/withdraw", gin.H{
		"address": apiCreator,
		"stars":   5,
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp WithdrawalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, string(schema.WithdrawalStatusSubmitted), resp.Status)
	require.NotNil(t, resp.TxHash)
	assert.Equal(t, apiTxHash, *resp.TxHash)
}

func TestGetWalletEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	custodial := common.HexToAddress("0x4444444444444444444444444444444444444444")
	f.wallet.EXPECT().Address().Return(custodial)
	f.wallet.EXPECT().Balance(gomock.Any()).Return(big.NewInt(12345), nil)

	rec := f.do(http.MethodGet, "/api/v1/wallet", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp WalletResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, custodial.Hex(), resp.Address)
	assert.Equal(t, "12345", resp.BalanceWei)
	assert.Equal(t, 0.1, resp.WithdrawRate)
}

func TestMarkNotificationReadEndpointScoped(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().MarkNotificationRead(gomock.Any(), uint64(7), apiCreator).
		Return(domain.ErrNotificationNotFound)

	rec := f.do(http.MethodPut, fmt.Sprintf("/api/v1/notifications/%s/7/read", apiCreator), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, errCodeNotFound, decodeError(t, rec).Code)
}

func TestClaimMissionEndpointNotCompleted(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().ClaimMission(gomock.Any(), apiCreator, "mint_3_posts", int64(50)).
		Return(domain.ErrMissionNotCompleted)

	rec := f.do(http.MethodPost, fmt.Sprintf("/api/v1/missions/%s/claim/mint_3_posts", apiCreator), nil)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, errCodeMissionNotCompleted, decodeError(t, rec).Code)
}

func TestClaimMissionEndpointPaysReward(t *testing.T) {
	f := newAPIFixture(t)

	f.store.EXPECT().ClaimMission(gomock.Any(), apiCreator, "mint_3_posts", int64(50)).
		Return(nil)

	rec := f.do(http.MethodPost, fmt.Sprintf("/api/v1/missions/%s/claim/mint_3_posts", apiCreator), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Claimed string `json:"claimed"`
		Reward  int64  `json:"reward"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "mint_3_posts", resp.Claimed)
	assert.Equal(t, int64(50), resp.Reward)
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// weiFor returns n native tokens in wei
func weiFor(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}
