// file: internals/features/exams/controller/exam_controller_test.go
package controller

import (
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

	"campusiq_backend/internals/constants"
	authHelper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

/* =========================
   Fixture
========================= */

// Skema minimal setara kolom model; exam_id dapat default dari sqlite
// (pengganti gen_random_uuid Postgres).
func openExamTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE classes (
			class_id TEXT PRIMARY KEY,
			class_school_id TEXT NOT NULL,
			class_name TEXT NOT NULL,
			class_numeric_level INTEGER,
			class_created_at DATETIME,
			class_updated_at DATETIME,
			class_deleted_at DATETIME
		)`,
		`CREATE TABLE exams (
			exam_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			exam_school_id TEXT NOT NULL,
			exam_name TEXT NOT NULL,
			exam_class_id TEXT NOT NULL,
			exam_start_date DATETIME NOT NULL,
			exam_end_date DATETIME NOT NULL,
			exam_status TEXT NOT NULL DEFAULT 'draft',
			exam_created_at DATETIME,
			exam_updated_at DATETIME,
			exam_deleted_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func seedClass(t *testing.T, db *gorm.DB, schoolID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO classes (class_id, class_school_id, class_name) VALUES (?, ?, 'Grade 5')`,
		id.String(), schoolID.String(),
	).Error)
	return id
}

func newExamApp(db *gorm.DB, schoolID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authHelper.LocUserID, uuid.New().String())
		c.Locals(authHelper.LocUserRole, constants.RoleAdmin)
		c.Locals(authHelper.LocSchoolID, schoolID.String())
		c.SetUserContext(tenancy.WithScope(c.UserContext(), tenancy.ScopeForSchool(schoolID)))
		return c.Next()
	})
	ctl := NewExamController(db, validator.New())
	app.Post("/exams", ctl.Create)
	return app
}

func postCreateExam(t *testing.T, app *fiber.App, classID uuid.UUID) (*http.Response, string) {
	t.Helper()

	body := fmt.Sprintf(
		`{"exam_name":"UTS Ganjil","exam_class_id":%q,"exam_start_date":"2026-09-07","exam_end_date":"2026-09-12"}`,
		classID)
	req := httptest.NewRequest(fiber.MethodPost, "/exams", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

/* =========================
   Create exam
========================= */

func TestCreateExamOwnClass(t *testing.T) {
	db := openExamTestDB(t)
	schoolA := uuid.New()
	cls := seedClass(t, db, schoolA)
	app := newExamApp(db, schoolA)

	resp, _ := postCreateExam(t, app, cls)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var gotSchool string
	require.NoError(t, db.Raw(`SELECT exam_school_id FROM exams LIMIT 1`).Scan(&gotSchool).Error)
	assert.Equal(t, schoolA.String(), gotSchool)
}

// Kelas milik school lain tidak boleh dipakai sebagai FK exam — harus 404,
// tanpa baris exam yang tertulis.
func TestCreateExamClassOtherSchoolNotFound(t *testing.T) {
	db := openExamTestDB(t)
	schoolA := uuid.New()
	schoolB := uuid.New()
	clsB := seedClass(t, db, schoolB)
	app := newExamApp(db, schoolA)

	resp, body := postCreateExam(t, app, clsB)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "Kelas tidak ditemukan")

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM exams`).Scan(&count).Error)
	assert.Zero(t, count)
}
