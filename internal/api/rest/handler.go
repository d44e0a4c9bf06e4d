package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somix-network/somix-ledger/internal/domain"
	"github.com/somix-network/somix-ledger/internal/ledger"
	"github.com/somix-network/somix-ledger/internal/missions"
	"github.com/somix-network/somix-ledger/internal/notifier"
	"github.com/somix-network/somix-ledger/internal/settlement"
	"github.com/somix-network/somix-ledger/internal/store"
	"github.com/somix-network/somix-ledger/internal/wallet"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// RecordMint records an externally confirmed on-chain mint
	// POST /api/v1/mints
	RecordMint(c *gin.Context)

	// ListPostMints retrieves mint records for a post
	// GET /api/v1/mints/posts/:id?limit=<limit>&offset=<offset>
	ListPostMints(c *gin.Context)

	// ListMinterMints retrieves mint records by minter address
	// GET /api/v1/mints/minters/:address?limit=<limit>&offset=<offset>
	ListMinterMints(c *gin.Context)

	// GetBalance retrieves the star account for an address
	// GET /api/v1/stars/:address
	GetBalance(c *gin.Context)

	// Withdraw settles stars into a native-token transfer
	// POST /api/v1/stars/withdraw
	Withdraw(c *gin.Context)

	// GetWallet reports the custodial wallet address, balance and rate
	// GET /api/v1/wallet
	GetWallet(c *gin.Context)

	// ListNotifications retrieves notifications for an address
	// GET /api/v1/notifications/:address?type=<type>&unread=<bool>&limit=<limit>&offset=<offset>
	ListNotifications(c *gin.Context)

	// GetUnreadCount returns the unread notification count for an address
	// GET /api/v1/notifications/:address/unread-count
	GetUnreadCount(c *gin.Context)

	// MarkNotificationRead marks one notification read
	// PUT /api/v1/notifications/:address/:id/read
	MarkNotificationRead(c *gin.Context)

	// MarkAllNotificationsRead marks all notifications for an address read
	// PUT /api/v1/notifications/:address/read-all
	MarkAllNotificationsRead(c *gin.Context)

	// ListMissions retrieves the mission catalog with the address's progress
	// GET /api/v1/missions/:address
	ListMissions(c *gin.Context)

	// ClaimMission pays out a completed mission's token reward
	// POST /api/v1/missions/:address/claim/:mission_id
	ClaimMission(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	recorder   *ledger.Recorder
	accountant *ledger.Accountant
	settlement *settlement.Service
	notifier   *notifier.Service
	missions   *missions.Service
	wallet     wallet.Wallet
	rate       float64
	store      store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(
	recorder *ledger.Recorder,
	accountant *ledger.Accountant,
	settlementSvc *settlement.Service,
	notifierSvc *notifier.Service,
	missionsSvc *missions.Service,
	w wallet.Wallet,
	rate float64,
	s store.Store,
) Handler {
	return &handler{
		recorder:   recorder,
		accountant: accountant,
		settlement: settlementSvc,
		notifier:   notifierSvc,
		missions:   missionsSvc,
		wallet:     w,
		rate:       rate,
		store:      s,
	}
}

// RecordMint records an externally confirmed on-chain mint
func (h *handler) RecordMint(c *gin.Context) {
	var req RecordMintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	record, err := h.recorder.RecordMint(c.Request.Context(), ledger.RecordMintInput{
		PostID:          req.PostID,
		TokenURI:        req.TokenURI,
		TokenID:         req.TokenID,
		TxHash:          req.TxHash,
		ContractAddress: req.ContractAddress,
		MinterAddress:   req.MinterAddress,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toMintRecordResponse(*record))
}

// ListPostMints retrieves mint records for a post
func (h *handler) ListPostMints(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid post ID")
		return
	}

	limit, offset := parsePagination(c)
	records, total, err := h.recorder.ListByPost(c.Request.Context(), postID, limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMintListResponse(records, total))
}

// ListMinterMints retrieves mint records by minter address
func (h *handler) ListMinterMints(c *gin.Context) {
	limit, offset := parsePagination(c)
	records, total, err := h.recorder.ListByMinter(c.Request.Context(), c.Param("address"), limit, offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMintListResponse(records, total))
}

// GetBalance retrieves the star account for an address
func (h *handler) GetBalance(c *gin.Context) {
	user, err := h.accountant.Balance(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBalanceResponse(user))
}

// Withdraw settles stars into a native-token transfer
func (h *handler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	attempt, err := h.settlement.Withdraw(c.Request.Context(), req.Address, req.Stars)
	if err != nil {
		// An unconfirmed transfer is in flight, not failed; report the
		// attempt with its hash so the client can track it
		if errors.Is(err, domain.ErrUnconfirmedTransfer) {
			c.JSON(http.StatusAccepted, toWithdrawalResponse(attempt))
			return
		}
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWithdrawalResponse(attempt))
}

// GetWallet reports the custodial wallet address, balance and rate
func (h *handler) GetWallet(c *gin.Context) {
	balance, err := h.wallet.Balance(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to fetch wallet balance")
		return
	}

	c.JSON(http.StatusOK, WalletResponse{
		Address:      h.wallet.Address().Hex(),
		BalanceWei:   balance.String(),
		WithdrawRate: h.rate,
	})
}

// ListNotifications retrieves notifications for an address
func (h *handler) ListNotifications(c *gin.Context) {
	limit, offset := parsePagination(c)
	filter := store.NotificationFilter{
		Recipient:  c.Param("address"),
		Type:       domain.NotificationType(c.Query("type")),
		UnreadOnly: c.Query("unread") == "true",
		Limit:      limit,
		Offset:     offset,
	}

	notifications, total, err := h.notifier.List(c.Request.Context(), filter)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": notifications,
		"total":         total,
	})
}

// GetUnreadCount returns the unread notification count for an address
func (h *handler) GetUnreadCount(c *gin.Context) {
	count, err := h.notifier.UnreadCount(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// MarkNotificationRead marks one notification read
func (h *handler) MarkNotificationRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.notifier.MarkRead(c.Request.Context(), id, c.Param("address")); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"read": true})
}

// MarkAllNotificationsRead marks all notifications for an address read
func (h *handler) MarkAllNotificationsRead(c *gin.Context) {
	updated, err := h.notifier.MarkAllRead(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// ListMissions retrieves the mission catalog with the address's progress
func (h *handler) ListMissions(c *gin.Context) {
	statuses, err := h.missions.List(c.Request.Context(), c.Param("address"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"missions": statuses})
}

// ClaimMission pays out a completed mission's token reward
func (h *handler) ClaimMission(c *gin.Context) {
	mission, err := h.missions.Claim(c.Request.Context(), c.Param("address"), c.Param("mission_id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"claimed": mission.ID,
		"reward":  mission.Reward,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parsePagination reads limit/offset query parameters with bounds
func parsePagination(c *gin.Context) (int, uint64) {
	limit := defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	var offset uint64
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.ParseUint(raw, 10, 64); err == nil {
			offset = v
		}
	}

	return limit, offset
}
