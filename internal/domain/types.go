package domain

import (
	"regexp"
	"strings"
)

const (
	// StarsPerMint is the creator reward credited for each recorded mint
	StarsPerMint int64 = 2

	// SignupTokens is the generation-token grant for lazily created accounts
	SignupTokens int64 = 100

	// SystemSender is the sender address used for platform-originated
	// notifications (achievements, announcements)
	SystemSender = "system"
)

// addressPattern matches a 0x-prefixed 20-byte hex address
var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// ValidAddress reports whether s is a well-formed hex address
func ValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// NormalizeAddress returns the canonical form of an address used for storage
// and lookups. Addresses are case-insensitive identities; lowercase is the
// canonical representation.
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// txHashPattern matches a 0x-prefixed 32-byte hex transaction hash
var txHashPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

// ValidTxHash reports whether s is a well-formed transaction hash
func ValidTxHash(s string) bool {
	return txHashPattern.MatchString(s)
}

// NotificationType enumerates the supported notification categories
type NotificationType string

const (
	NotificationTypeLike        NotificationType = "like"
	NotificationTypeMint        NotificationType = "mint"
	NotificationTypeFollow      NotificationType = "follow"
	NotificationTypeComment     NotificationType = "comment"
	NotificationTypeAchievement NotificationType = "achievement"
	NotificationTypeSystem      NotificationType = "system"
)

// Valid reports whether t is a known notification type
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeLike, NotificationTypeMint, NotificationTypeFollow,
		NotificationTypeComment, NotificationTypeAchievement, NotificationTypeSystem:
		return true
	}
	return false
}

// NotificationMetadata carries optional references attached to a notification
type NotificationMetadata struct {
	PostID        string `json:"post_id,omitempty"`
	NFTID         string `json:"nft_id,omitempty"`
	CommentID     string `json:"comment_id,omitempty"`
	AchievementID string `json:"achievement_id,omitempty"`
}

// StarCreditPayload is the outbox payload for a deferred star credit
type StarCreditPayload struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
	Reason  string `json:"reason"`
	PostID  uint64 `json:"post_id,omitempty"`
	TxHash  string `json:"tx_hash,omitempty"`
}

// NotificationPayload is the outbox payload for a deferred notification
type NotificationPayload struct {
	Recipient string               `json:"recipient"`
	Sender    string               `json:"sender"`
	Type      NotificationType     `json:"type"`
	Message   string               `json:"message"`
	Metadata  NotificationMetadata `json:"metadata"`
}

// MissionProgressPayload is the outbox payload for a deferred mission update
type MissionProgressPayload struct {
	Address string `json:"address"`
	Action  string `json:"action"`
}

// MintRecordedEvent is published after a mint record becomes durable
type MintRecordedEvent struct {
	MintID          uint64 `json:"mint_id"`
	PostID          uint64 `json:"post_id"`
	TokenID         int64  `json:"token_id"`
	TxHash          string `json:"tx_hash"`
	ContractAddress string `json:"contract_address"`
	Minter          string `json:"minter"`
	Creator         string `json:"creator"`
}

// WithdrawalConfirmedEvent is published after a settlement is confirmed
// on-chain and the ledger debit has been applied
type WithdrawalConfirmedEvent struct {
	AttemptID    string `json:"attempt_id"`
	Address      string `json:"address"`
	Stars        int64  `json:"stars"`
	NativeAmount string `json:"native_amount"`
	TxHash       string `json:"tx_hash"`
	BlockNumber  uint64 `json:"block_number"`
}
