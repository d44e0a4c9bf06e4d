package schema

import (
	"time"
)

// MintRecord represents the mint_records table - the durable, append-only
// record of one externally-confirmed on-chain mint. The unique index on
// TxHash is the idempotency guard; duplicate submissions fail at the storage
// layer regardless of interleaving.
type MintRecord struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PostID references the minted post
	PostID uint64 `gorm:"column:post_id;not null;index:idx_mint_records_post_created,priority:1"`
	// TokenURI is the token metadata URI
	TokenURI string `gorm:"column:token_uri;not null;type:text"`
	// TokenID is the numeric token id within the contract
	TokenID int64 `gorm:"column:token_id;not null"`
	// TxHash is the globally unique transaction hash of the mint
	TxHash string `gorm:"column:tx_hash;not null;uniqueIndex;type:text"`
	// ContractAddress is the NFT contract the token was minted on
	ContractAddress string `gorm:"column:contract_address;not null;index;type:text"`
	// MinterAddress is the canonical address that performed the mint
	MinterAddress string `gorm:"column:minter_address;not null;index:idx_mint_records_minter_created,priority:1"`
	// CreatedAt is the timestamp of first successful validation
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_mint_records_post_created,priority:2,sort:desc;index:idx_mint_records_minter_created,priority:2,sort:desc"`
}

// TableName specifies the table name for the MintRecord model
func (MintRecord) TableName() string {
	return "mint_records"
}
