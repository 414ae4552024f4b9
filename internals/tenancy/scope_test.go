// file: internals/tenancy/scope_test.go
package tenancy

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// noteRecord: fixture tenant-scoped minimal untuk uji Scoped/FillSchoolID.
type noteRecord struct {
	NoteID       uuid.UUID `gorm:"type:uuid;primaryKey;column:note_id"`
	NoteSchoolID uuid.UUID `gorm:"type:uuid;index;column:note_school_id"`
	NoteTitle    string    `gorm:"column:note_title"`
}

func (noteRecord) TableName() string { return "notes" }

func (noteRecord) SchoolIDColumn() string { return "note_school_id" }

func (m *noteRecord) TenantSchoolID() uuid.UUID { return m.NoteSchoolID }

func (m *noteRecord) BeforeCreate(tx *gorm.DB) error {
	if m.NoteID == uuid.Nil {
		m.NoteID = uuid.New()
	}
	return FillSchoolID(tx, &m.NoteSchoolID)
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&noteRecord{}))
	return db
}

func seedNotes(t *testing.T, db *gorm.DB, schoolA, schoolB uuid.UUID) {
	t.Helper()
	rows := []noteRecord{
		{NoteID: uuid.New(), NoteSchoolID: schoolA, NoteTitle: "a1"},
		{NoteID: uuid.New(), NoteSchoolID: schoolA, NoteTitle: "a2"},
		{NoteID: uuid.New(), NoteSchoolID: schoolB, NoteTitle: "b1"},
	}
	require.NoError(t, db.Create(&rows).Error)
}

func TestScopedFiltersBySchool(t *testing.T) {
	db := openTestDB(t)
	schoolA, schoolB := uuid.New(), uuid.New()
	seedNotes(t, db, schoolA, schoolB)

	ctx := WithScope(context.Background(), ScopeForSchool(schoolA))

	var rows []noteRecord
	err := db.WithContext(ctx).
		Scopes(Scoped(ctx, &noteRecord{})).
		Find(&rows).Error
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, r := range rows {
		assert.Equal(t, schoolA, r.NoteSchoolID)
	}
}

func TestScopedUnresolvedReturnsNothing(t *testing.T) {
	db := openTestDB(t)
	schoolA, schoolB := uuid.New(), uuid.New()
	seedNotes(t, db, schoolA, schoolB)

	// context tanpa scope sama sekali
	ctx := context.Background()

	var rows []noteRecord
	err := db.WithContext(ctx).
		Scopes(Scoped(ctx, &noteRecord{})).
		Find(&rows).Error
	require.NoError(t, err)
	assert.Empty(t, rows, "scope unresolved harus deny-all, bukan bypass")

	var count int64
	err = db.WithContext(ctx).
		Model(&noteRecord{}).
		Scopes(Scoped(ctx, &noteRecord{})).
		Count(&count).Error
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestScopedUnrestrictedSeesAll(t *testing.T) {
	db := openTestDB(t)
	schoolA, schoolB := uuid.New(), uuid.New()
	seedNotes(t, db, schoolA, schoolB)

	ctx := WithScope(context.Background(), UnrestrictedScope())

	var rows []noteRecord
	err := db.WithContext(ctx).
		Scopes(Scoped(ctx, &noteRecord{})).
		Find(&rows).Error
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestScopedPreservesOtherPredicates(t *testing.T) {
	db := openTestDB(t)
	schoolA, schoolB := uuid.New(), uuid.New()
	seedNotes(t, db, schoolA, schoolB)

	ctx := WithScope(context.Background(), ScopeForSchool(schoolA))

	var rows []noteRecord
	err := db.WithContext(ctx).
		Scopes(Scoped(ctx, &noteRecord{})).
		Where("note_title = ?", "a2").
		Order("note_title ASC").
		Find(&rows).Error
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a2", rows[0].NoteTitle)
}

func TestAcrossSchoolsBypassesFilter(t *testing.T) {
	db := openTestDB(t)
	schoolA, schoolB := uuid.New(), uuid.New()
	seedNotes(t, db, schoolA, schoolB)

	ctx := WithScope(context.Background(), ScopeForSchool(schoolA))

	var rows []noteRecord
	err := AcrossSchools(db.WithContext(ctx)).Find(&rows).Error
	require.NoError(t, err)
	assert.Len(t, rows, 3, "AcrossSchools harus melihat semua tenant")
}

func TestFillSchoolIDOnCreate(t *testing.T) {
	schoolA := uuid.New()

	t.Run("auto-assign dari scope", func(t *testing.T) {
		db := openTestDB(t)
		ctx := WithScope(context.Background(), ScopeForSchool(schoolA))

		n := noteRecord{NoteTitle: "auto"}
		require.NoError(t, db.WithContext(ctx).Create(&n).Error)
		assert.Equal(t, schoolA, n.NoteSchoolID)
	})

	t.Run("school eksplisit dibiarkan", func(t *testing.T) {
		db := openTestDB(t)
		other := uuid.New()
		ctx := WithScope(context.Background(), ScopeForSchool(schoolA))

		n := noteRecord{NoteSchoolID: other, NoteTitle: "explicit"}
		require.NoError(t, db.WithContext(ctx).Create(&n).Error)
		assert.Equal(t, other, n.NoteSchoolID)
	})

	t.Run("tanpa scope gagal", func(t *testing.T) {
		db := openTestDB(t)

		n := noteRecord{NoteTitle: "orphan"}
		err := db.WithContext(context.Background()).Create(&n).Error
		assert.ErrorIs(t, err, ErrMissingTenant)
	})

	t.Run("unrestricted tanpa school eksplisit gagal", func(t *testing.T) {
		db := openTestDB(t)
		ctx := WithScope(context.Background(), UnrestrictedScope())

		n := noteRecord{NoteTitle: "superadmin"}
		err := db.WithContext(ctx).Create(&n).Error
		assert.ErrorIs(t, err, ErrMissingTenant)
	})
}
