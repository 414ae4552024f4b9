package model

import (
	"time"

	"gorm.io/gorm"
)

type TokenBlacklist struct {
	TokenBlacklistID        uint           `gorm:"primaryKey;column:token_blacklist_id"               json:"token_blacklist_id"`
	TokenBlacklistToken     string         `gorm:"type:text;not null;unique;column:token_blacklist_token" json:"token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `gorm:"column:token_blacklist_expired_at"                  json:"token_blacklist_expired_at"`
	TokenBlacklistCreatedAt time.Time      `gorm:"autoCreateTime;column:token_blacklist_created_at"   json:"token_blacklist_created_at"`
	TokenBlacklistDeletedAt gorm.DeletedAt `gorm:"index;column:token_blacklist_deleted_at"            json:"token_blacklist_deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
