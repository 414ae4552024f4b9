// file: internals/tenancy/authz_test.go
package tenancy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"campusiq_backend/internals/constants"
)

type ownedFixture struct {
	schoolID uuid.UUID
	ownerID  uuid.UUID
}

func (f *ownedFixture) SchoolIDColumn() string    { return "fixture_school_id" }
func (f *ownedFixture) TenantSchoolID() uuid.UUID { return f.schoolID }
func (f *ownedFixture) OwnerUserID() uuid.UUID    { return f.ownerID }

type unownedFixture struct {
	schoolID uuid.UUID
}

func (f *unownedFixture) SchoolIDColumn() string    { return "fixture_school_id" }
func (f *unownedFixture) TenantSchoolID() uuid.UUID { return f.schoolID }

func TestPrincipalScope(t *testing.T) {
	schoolID := uuid.New()

	t.Run("unauthenticated is unresolved", func(t *testing.T) {
		var p Principal
		assert.True(t, p.Scope().IsUnresolved())
	})

	t.Run("super admin is unrestricted", func(t *testing.T) {
		p := Principal{UserID: uuid.New(), Role: constants.RoleSuperAdmin, Authenticated: true}
		assert.True(t, p.Scope().IsUnrestricted())
	})

	t.Run("member gets school scope", func(t *testing.T) {
		p := Principal{UserID: uuid.New(), Role: constants.RoleTeacher, SchoolID: schoolID, Authenticated: true}
		id, ok := p.Scope().SchoolID()
		assert.True(t, ok)
		assert.Equal(t, schoolID, id)
	})

	t.Run("admin without school stays unresolved", func(t *testing.T) {
		// akun setengah onboard tidak boleh naik jadi unrestricted
		p := Principal{UserID: uuid.New(), Role: constants.RoleAdmin, Authenticated: true}
		sc := p.Scope()
		assert.True(t, sc.IsUnresolved())
		assert.False(t, sc.IsUnrestricted())
	})
}

func TestCanBypassTenantScoping(t *testing.T) {
	assert.True(t, CanBypassTenantScoping(Principal{Role: constants.RoleSuperAdmin, Authenticated: true}))
	assert.False(t, CanBypassTenantScoping(Principal{Role: constants.RoleAdmin, Authenticated: true}))
	assert.False(t, CanBypassTenantScoping(Principal{Role: constants.RoleSuperAdmin}))
}

func TestCanAdministerSchool(t *testing.T) {
	schoolA, schoolB := uuid.New(), uuid.New()

	superAdmin := Principal{UserID: uuid.New(), Role: constants.RoleSuperAdmin, Authenticated: true}
	adminA := Principal{UserID: uuid.New(), Role: constants.RoleAdmin, SchoolID: schoolA, Authenticated: true}
	teacherA := Principal{UserID: uuid.New(), Role: constants.RoleTeacher, SchoolID: schoolA, Authenticated: true}

	assert.True(t, CanAdministerSchool(superAdmin, schoolA))
	assert.True(t, CanAdministerSchool(superAdmin, schoolB))
	assert.True(t, CanAdministerSchool(adminA, schoolA))
	assert.False(t, CanAdministerSchool(adminA, schoolB), "admin tidak pernah lintas school")
	assert.False(t, CanAdministerSchool(teacherA, schoolA))
	assert.False(t, CanAdministerSchool(superAdmin, uuid.Nil))
}

func TestCanAccessRecord(t *testing.T) {
	schoolA, schoolB := uuid.New(), uuid.New()
	ownerID := uuid.New()

	rec := &ownedFixture{schoolID: schoolA, ownerID: ownerID}

	t.Run("super admin sees everything", func(t *testing.T) {
		p := Principal{UserID: uuid.New(), Role: constants.RoleSuperAdmin, Authenticated: true}
		assert.True(t, CanAccessRecord(p, rec))
	})

	t.Run("staff within school", func(t *testing.T) {
		admin := Principal{UserID: uuid.New(), Role: constants.RoleAdmin, SchoolID: schoolA, Authenticated: true}
		teacher := Principal{UserID: uuid.New(), Role: constants.RoleTeacher, SchoolID: schoolA, Authenticated: true}
		assert.True(t, CanAccessRecord(admin, rec))
		assert.True(t, CanAccessRecord(teacher, rec))
	})

	t.Run("cross-tenant always denied", func(t *testing.T) {
		adminB := Principal{UserID: uuid.New(), Role: constants.RoleAdmin, SchoolID: schoolB, Authenticated: true}
		ownerFromB := Principal{UserID: ownerID, Role: constants.RoleStudent, SchoolID: schoolB, Authenticated: true}
		assert.False(t, CanAccessRecord(adminB, rec))
		assert.False(t, CanAccessRecord(ownerFromB, rec))
	})

	t.Run("owner match for non-elevated roles", func(t *testing.T) {
		owner := Principal{UserID: ownerID, Role: constants.RoleStudent, SchoolID: schoolA, Authenticated: true}
		stranger := Principal{UserID: uuid.New(), Role: constants.RoleStudent, SchoolID: schoolA, Authenticated: true}
		assert.True(t, CanAccessRecord(owner, rec))
		assert.False(t, CanAccessRecord(stranger, rec))
	})

	t.Run("non-owned record fails closed for students", func(t *testing.T) {
		p := Principal{UserID: uuid.New(), Role: constants.RoleStudent, SchoolID: schoolA, Authenticated: true}
		assert.False(t, CanAccessRecord(p, &unownedFixture{schoolID: schoolA}))
	})

	t.Run("unauthenticated or nil record denied", func(t *testing.T) {
		assert.False(t, CanAccessRecord(Principal{}, rec))
		p := Principal{UserID: uuid.New(), Role: constants.RoleAdmin, SchoolID: schoolA, Authenticated: true}
		assert.False(t, CanAccessRecord(p, nil))
	})
}
