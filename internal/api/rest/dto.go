package rest

import (
	"time"

	"github.com/somix-network/somix-ledger/internal/store/schema"
)

// RecordMintRequest is the body of POST /api/v1/mints
type RecordMintRequest struct {
	PostID          uint64 `json:"post_id" binding:"required"`
	TokenURI        string `json:"token_uri" binding:"required"`
	TokenID         int64  `json:"token_id"`
	TxHash          string `json:"tx_hash" binding:"required"`
	ContractAddress string `json:"contract_address" binding:"required"`
	MinterAddress   string `json:"minter_address" binding:"required"`
}

// MintRecordResponse is the wire shape of a recorded mint
type MintRecordResponse struct {
	ID              uint64    `json:"id"`
	PostID          uint64    `json:"post_id"`
	TokenURI        string    `json:"token_uri"`
	TokenID         int64     `json:"token_id"`
	TxHash          string    `json:"tx_hash"`
	ContractAddress string    `json:"contract_address"`
	MinterAddress   string    `json:"minter_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// MintListResponse is a paginated list of mint records
type MintListResponse struct {
	Mints []MintRecordResponse `json:"mints"`
	Total uint64               `json:"total"`
}

// BalanceResponse is the wire shape of a star account
type BalanceResponse struct {
	Address             string `json:"address"`
	Username            string `json:"username"`
	Stars               int64  `json:"stars"`
	TotalStarsEarned    int64  `json:"total_stars_earned"`
	TotalStarsWithdrawn int64  `json:"total_stars_withdrawn"`
	Tokens              int64  `json:"tokens"`
}

// WithdrawRequest is the body of POST /api/v1/stars/withdraw
type WithdrawRequest struct {
	Address string `json:"address" binding:"required"`
	Stars   int64  `json:"stars" binding:"required"`
}

// WithdrawalResponse is the wire shape of a settlement attempt
type WithdrawalResponse struct {
	AttemptID    string    `json:"attempt_id"`
	Address      string    `json:"address"`
	Stars        int64     `json:"stars"`
	NativeWei    string    `json:"native_wei"`
	TxHash       *string   `json:"tx_hash,omitempty"`
	Status       string    `json:"status"`
	GasUsed      *uint64   `json:"gas_used,omitempty"`
	BlockNumber  *uint64   `json:"block_number,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// WalletResponse is the wire shape of the custodial wallet status
type WalletResponse struct {
	Address      string  `json:"address"`
	BalanceWei   string  `json:"balance_wei"`
	WithdrawRate float64 `json:"withdraw_rate"`
}

// toMintRecordResponse converts a schema row to its wire shape
func toMintRecordResponse(r schema.MintRecord) MintRecordResponse {
	return MintRecordResponse{
		ID:              r.ID,
		PostID:          r.PostID,
		TokenURI:        r.TokenURI,
		TokenID:         r.TokenID,
		TxHash:          r.TxHash,
		ContractAddress: r.ContractAddress,
		MinterAddress:   r.MinterAddress,
		CreatedAt:       r.CreatedAt,
	}
}

func toMintListResponse(records []schema.MintRecord, total uint64) MintListResponse {
	mints := make([]MintRecordResponse, 0, len(records))
	for _, r := range records {
		mints = append(mints, toMintRecordResponse(r))
	}
	return MintListResponse{Mints: mints, Total: total}
}

func toBalanceResponse(u *schema.User) BalanceResponse {
	return BalanceResponse{
		Address:             u.Address,
		Username:            u.Username,
		Stars:               u.Stars,
		TotalStarsEarned:    u.TotalStarsEarned,
		TotalStarsWithdrawn: u.TotalStarsWithdrawn,
		Tokens:              u.Tokens,
	}
}

func toWithdrawalResponse(a *schema.WithdrawalAttempt) WithdrawalResponse {
	return WithdrawalResponse{
		AttemptID:    a.AttemptID,
		Address:      a.Address,
		Stars:        a.Stars,
		NativeWei:    a.NativeWei,
		TxHash:       a.TxHash,
		Status:       string(a.Status),
		GasUsed:      a.GasUsed,
		BlockNumber:  a.BlockNumber,
		ErrorMessage: a.ErrorMessage,
		CreatedAt:    a.CreatedAt,
	}
}
