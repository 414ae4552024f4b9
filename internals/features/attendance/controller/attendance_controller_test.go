// file: internals/features/attendance/controller/attendance_controller_test.go
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

// Skema minimal setara kolom model. attendance_id dapat default dari sqlite
// (pengganti gen_random_uuid Postgres) supaya Create tetap jalan.
func openAttendanceTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE sections (
			section_id TEXT PRIMARY KEY,
			section_school_id TEXT NOT NULL,
			section_class_id TEXT NOT NULL,
			section_name TEXT NOT NULL,
			section_capacity INTEGER NOT NULL DEFAULT 40,
			section_class_teacher_id TEXT,
			section_created_at DATETIME,
			section_updated_at DATETIME,
			section_deleted_at DATETIME
		)`,
		`CREATE TABLE student_profiles (
			student_profile_id TEXT PRIMARY KEY,
			student_profile_user_id TEXT NOT NULL,
			student_profile_school_id TEXT NOT NULL,
			student_profile_admission_number TEXT NOT NULL,
			student_profile_class_id TEXT,
			student_profile_section_id TEXT,
			student_profile_status TEXT NOT NULL DEFAULT 'active',
			student_profile_created_at DATETIME,
			student_profile_updated_at DATETIME,
			student_profile_deleted_at DATETIME
		)`,
		`CREATE TABLE attendances (
			attendance_id TEXT PRIMARY KEY DEFAULT (lower(hex(randomblob(16)))),
			attendance_school_id TEXT NOT NULL,
			attendance_student_id TEXT NOT NULL,
			attendance_date DATETIME NOT NULL,
			attendance_status TEXT NOT NULL,
			attendance_remarks TEXT,
			attendance_marked_by TEXT,
			attendance_created_at DATETIME,
			attendance_updated_at DATETIME,
			attendance_deleted_at DATETIME,
			UNIQUE (attendance_school_id, attendance_student_id, attendance_date)
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

func seedSection(t *testing.T, db *gorm.DB, schoolID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO sections (section_id, section_school_id, section_class_id, section_name)
		 VALUES (?, ?, ?, '5A')`,
		id.String(), schoolID.String(), uuid.New().String(),
	).Error)
	return id
}

func seedStudent(t *testing.T, db *gorm.DB, schoolID, sectionID uuid.UUID) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Exec(
		`INSERT INTO student_profiles (student_profile_id, student_profile_user_id, student_profile_school_id,
		                               student_profile_admission_number, student_profile_section_id, student_profile_status)
		 VALUES (?, ?, ?, ?, ?, 'active')`,
		id.String(), uuid.New().String(), schoolID.String(), "ADM-"+id.String()[:8], sectionID.String(),
	).Error)
	return id
}

// newAttendanceApp memasang middleware pengganti AuthMiddleware+BindScope:
// locals admin school A + scope school A di user context.
func newAttendanceApp(db *gorm.DB, schoolID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(authHelper.LocUserID, uuid.New().String())
		c.Locals(authHelper.LocUserRole, constants.RoleAdmin)
		c.Locals(authHelper.LocSchoolID, schoolID.String())
		c.SetUserContext(tenancy.WithScope(c.UserContext(), tenancy.ScopeForSchool(schoolID)))
		return c.Next()
	})
	ctl := NewAttendanceController(db, validator.New())
	app.Post("/attendance/bulk", ctl.BulkMark)
	return app
}

func postBulkMark(t *testing.T, app *fiber.App, sectionID uuid.UUID, studentIDs ...uuid.UUID) (*http.Response, string) {
	t.Helper()

	items := make([]string, 0, len(studentIDs))
	for _, id := range studentIDs {
		items = append(items, fmt.Sprintf(`{"attendance_student_id":%q,"attendance_status":"present"}`, id))
	}
	body := fmt.Sprintf(`{"section_id":%q,"attendance_date":"2026-08-28","items":[%s]}`,
		sectionID, strings.Join(items, ","))

	req := httptest.NewRequest(fiber.MethodPost, "/attendance/bulk", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

/* =========================
   Bulk mark
========================= */

func TestBulkMarkOwnSectionStudents(t *testing.T) {
	db := openAttendanceTestDB(t)
	schoolA := uuid.New()
	sec := seedSection(t, db, schoolA)
	s1 := seedStudent(t, db, schoolA, sec)
	s2 := seedStudent(t, db, schoolA, sec)
	app := newAttendanceApp(db, schoolA)

	resp, _ := postBulkMark(t, app, sec, s1, s2)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM attendances`).Scan(&count).Error)
	assert.Equal(t, int64(2), count)
}

// Baris siswa school lain yang menunjuk section kita tidak boleh lolos
// validasi keanggotaan — hitungannya harus lewat filter tenant juga.
func TestBulkMarkRejectsCrossSchoolStudent(t *testing.T) {
	db := openAttendanceTestDB(t)
	schoolA := uuid.New()
	schoolB := uuid.New()
	sec := seedSection(t, db, schoolA)
	good := seedStudent(t, db, schoolA, sec)
	ghost := seedStudent(t, db, schoolB, sec) // school B, section_id-nya sengaja nyasar
	app := newAttendanceApp(db, schoolA)

	resp, body := postBulkMark(t, app, sec, good, ghost)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "bukan siswa aktif")

	var count int64
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM attendances`).Scan(&count).Error)
	assert.Zero(t, count)
}

func TestBulkMarkSectionOtherSchoolNotFound(t *testing.T) {
	db := openAttendanceTestDB(t)
	schoolA := uuid.New()
	schoolB := uuid.New()
	secB := seedSection(t, db, schoolB)
	student := seedStudent(t, db, schoolB, secB)
	app := newAttendanceApp(db, schoolA)

	resp, _ := postBulkMark(t, app, secB, student)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
