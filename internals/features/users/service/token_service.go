// file: internals/features/users/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"campusiq_backend/internals/configs"
	"campusiq_backend/internals/features/users/model"
)

const AccessTokenTTL = 2 * time.Hour

// CreateAccessToken menerbitkan JWT dengan klaim yang dibaca AuthMiddleware:
// id, user_name, role, school_id (kosong untuk super admin).
func CreateAccessToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"id":        u.UserID.String(),
		"user_name": u.UserUserName,
		"role":      u.UserRole,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(AccessTokenTTL).Unix(),
	}
	if u.UserSchoolID != nil {
		claims["school_id"] = u.UserSchoolID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// BlacklistToken menaruh token ke blacklist sampai kedaluwarsa aslinya lewat.
func BlacklistToken(db *gorm.DB, raw string, expiredAt time.Time) error {
	entry := model.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: expiredAt,
	}
	return db.Create(&entry).Error
}
