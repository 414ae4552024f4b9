// file: internals/features/users/controller/auth_controller_test.go
package controller

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campusiq_backend/internals/configs"
	"campusiq_backend/internals/constants"
	"campusiq_backend/internals/features/users/service"
)

/* =========================
   Fixture
========================= */

// Skema minimal setara kolom model; default uuid Postgres tidak tersedia
// di sqlite sehingga PK diisi manual saat seed.
func openAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE users (
			user_id TEXT PRIMARY KEY,
			user_school_id TEXT,
			user_user_name TEXT NOT NULL UNIQUE,
			user_email TEXT,
			user_password TEXT NOT NULL,
			user_full_name TEXT NOT NULL,
			user_phone TEXT,
			user_role TEXT NOT NULL,
			user_is_active INTEGER NOT NULL DEFAULT 1,
			user_created_at DATETIME,
			user_updated_at DATETIME,
			user_deleted_at DATETIME
		)`,
		`CREATE TABLE teacher_profiles (
			teacher_profile_id TEXT PRIMARY KEY,
			teacher_profile_user_id TEXT NOT NULL UNIQUE,
			teacher_profile_school_id TEXT NOT NULL,
			teacher_profile_phone TEXT NOT NULL DEFAULT '',
			teacher_profile_status TEXT NOT NULL,
			teacher_profile_self_registered INTEGER NOT NULL DEFAULT 0,
			teacher_profile_created_at DATETIME,
			teacher_profile_updated_at DATETIME,
			teacher_profile_deleted_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

// seedTeacher membuat user guru aktif + profil dengan status tertentu.
// profileStatus kosong = tanpa profil sama sekali.
func seedTeacher(t *testing.T, db *gorm.DB, username, password, profileStatus string) {
	t.Helper()

	hashed, err := service.HashPassword(password)
	require.NoError(t, err)

	uid := uuid.New()
	sid := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO users (user_id, user_school_id, user_user_name, user_password, user_full_name, user_role, user_is_active)
		 VALUES (?, ?, ?, ?, ?, ?, 1)`,
		uid.String(), sid.String(), username, hashed, "Guru Uji", constants.RoleTeacher,
	).Error)

	if profileStatus != "" {
		require.NoError(t, db.Exec(
			`INSERT INTO teacher_profiles (teacher_profile_id, teacher_profile_user_id, teacher_profile_school_id, teacher_profile_status)
			 VALUES (?, ?, ?, ?)`,
			uuid.New().String(), uid.String(), sid.String(), profileStatus,
		).Error)
	}
}

func newAuthApp(db *gorm.DB) *fiber.App {
	configs.JWTSecret = "test-secret"

	app := fiber.New()
	ctl := NewAuthController(db, validator.New())
	app.Post("/login", ctl.Login)
	return app
}

func doLogin(t *testing.T, app *fiber.App, username, password string) (*http.Response, string) {
	t.Helper()

	body := fmt.Sprintf(`{"user_user_name":%q,"user_password":%q}`, username, password)
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

/* =========================
   Gate approval guru
========================= */

func TestLoginPendingTeacherRejected(t *testing.T) {
	db := openAuthTestDB(t)
	seedTeacher(t, db, "guru.pending", "rahasia-123", "pending")
	app := newAuthApp(db)

	resp, body := doLogin(t, app, "guru.pending", "rahasia-123")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "menunggu persetujuan")
	assert.NotContains(t, body, "access_token")
}

func TestLoginRejectedTeacherRejected(t *testing.T) {
	db := openAuthTestDB(t)
	seedTeacher(t, db, "guru.ditolak", "rahasia-123", "rejected")
	app := newAuthApp(db)

	resp, body := doLogin(t, app, "guru.ditolak", "rahasia-123")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NotContains(t, body, "access_token")
}

func TestLoginTeacherWithoutProfileRejected(t *testing.T) {
	db := openAuthTestDB(t)
	seedTeacher(t, db, "guru.tanpaprofil", "rahasia-123", "")
	app := newAuthApp(db)

	resp, body := doLogin(t, app, "guru.tanpaprofil", "rahasia-123")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.NotContains(t, body, "access_token")
}

func TestLoginActiveTeacherSucceeds(t *testing.T) {
	db := openAuthTestDB(t)
	seedTeacher(t, db, "guru.aktif", "rahasia-123", "active")
	app := newAuthApp(db)

	resp, body := doLogin(t, app, "guru.aktif", "rahasia-123")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &envelope))
	assert.NotEmpty(t, envelope.Data.AccessToken)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	db := openAuthTestDB(t)
	seedTeacher(t, db, "guru.aktif", "rahasia-123", "active")
	app := newAuthApp(db)

	resp, _ := doLogin(t, app, "guru.aktif", "salah-password")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
