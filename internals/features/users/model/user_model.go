// file: internals/features/users/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel: principal terotentikasi.
// user_school_id nullable — HANYA super_admin yang boleh tanpa school;
// user lain yang belum terikat school dianggap setengah onboard dan
// tidak pernah mendapat akses unrestricted.
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserSchoolID *uuid.UUID `gorm:"type:uuid;column:user_school_id;index" json:"user_school_id,omitempty"`

	UserUserName string  `gorm:"type:varchar(60);not null;unique;column:user_user_name" json:"user_user_name"`
	UserEmail    *string `gorm:"type:varchar(120);unique;column:user_email"             json:"user_email,omitempty"`
	UserPassword string  `gorm:"type:text;not null;column:user_password"                json:"-"`
	UserFullName string  `gorm:"type:varchar(150);not null;column:user_full_name"       json:"user_full_name"`
	UserPhone    *string `gorm:"type:varchar(30);column:user_phone"                     json:"user_phone,omitempty"`

	UserRole     string `gorm:"type:varchar(20);not null;index;column:user_role"           json:"user_role"`
	UserIsActive bool   `gorm:"type:boolean;not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index"          json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) SchoolIDOrNil() uuid.UUID {
	if m.UserSchoolID == nil {
		return uuid.Nil
	}
	return *m.UserSchoolID
}
