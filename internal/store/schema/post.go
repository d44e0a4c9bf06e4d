package schema

import (
	"time"
)

// Post represents the posts table. Post CRUD is owned by an external service;
// the ledger references posts for edition accounting only and owns nothing but
// the Minted increment.
type Post struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// AuthorAddress is the canonical address of the post creator
	AuthorAddress string `gorm:"column:author_address;not null;index;type:text"`
	// Caption is the post text, used for notification messages
	Caption string `gorm:"column:caption;type:text"`
	// ImageURL is the content location
	ImageURL string `gorm:"column:image_url;type:text"`
	// OpenMint indicates whether others may mint NFTs from this post
	OpenMint bool `gorm:"column:open_mint;not null;default:false"`
	// EditionCap is the maximum number of mints permitted (nil = unlimited)
	EditionCap *int64 `gorm:"column:edition_cap"`
	// Minted is the number of recorded mints; never exceeds EditionCap
	Minted int64 `gorm:"column:minted;not null;default:0"`
	// CreatedAt is the post creation timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}
