package schema

import (
	"time"
)

// User represents the users table - the economic identity of an address.
// Accounts are created lazily on first reference (mint reward, notification,
// registration) and never deleted.
type User struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Address is the canonical (lowercase) hex address; the uniqueness
	// constraint here is what makes concurrent create-if-absent safe
	Address string `gorm:"column:address;not null;uniqueIndex;type:text"`
	// Username is a display handle, generated from the address when the
	// account is created implicitly
	Username string `gorm:"column:username;not null;uniqueIndex;type:text"`
	// AvatarURL is the profile image URL, if set
	AvatarURL *string `gorm:"column:avatar_url;type:text"`
	// Bio is the profile description
	Bio string `gorm:"column:bio;type:text;default:''"`
	// Stars is the current withdrawable star balance; stars = earned - withdrawn
	Stars int64 `gorm:"column:stars;not null;default:0"`
	// TotalStarsEarned is the lifetime stars credited (monotonic)
	TotalStarsEarned int64 `gorm:"column:total_stars_earned;not null;default:0"`
	// TotalStarsWithdrawn is the lifetime stars settled (monotonic)
	TotalStarsWithdrawn int64 `gorm:"column:total_stars_withdrawn;not null;default:0"`
	// Tokens is the generation-credit balance (out of ledger scope except for
	// mission rewards)
	Tokens int64 `gorm:"column:tokens;not null;default:0"`
	// CreatedAt is the timestamp when this account was first referenced
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last balance mutation
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
