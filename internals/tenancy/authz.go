// file: internals/tenancy/authz.go
package tenancy

import (
	"github.com/google/uuid"

	"campusiq_backend/internals/constants"
)

// Principal: representasi minimal user terotentikasi untuk aturan akses.
// Diisi AuthMiddleware dari klaim JWT.
type Principal struct {
	UserID        uuid.UUID
	UserName      string
	Role          string
	SchoolID      uuid.UUID // uuid.Nil kalau tidak terikat school
	Authenticated bool
}

func (p Principal) HasSchool() bool { return p.SchoolID != uuid.Nil }

// Scope menurunkan tenant scope request dari principal (dipakai binder).
// Role elevated TANPA school (akun setengah onboard) sengaja jatuh ke
// unresolved, bukan unrestricted — menutup celah privilege escalation.
func (p Principal) Scope() Scope {
	switch {
	case !p.Authenticated:
		return Scope{}
	case p.Role == constants.RoleSuperAdmin:
		return UnrestrictedScope()
	case p.HasSchool():
		return ScopeForSchool(p.SchoolID)
	default:
		return Scope{}
	}
}

// CanBypassTenantScoping true HANYA untuk super admin.
func CanBypassTenantScoping(p Principal) bool {
	return p.Authenticated && p.Role == constants.RoleSuperAdmin
}

// CanAdministerSchool: super admin (school mana saja) atau admin school itu sendiri.
// Admin school lain tetap ditolak — elevated role tidak pernah lintas tenant.
func CanAdministerSchool(p Principal, schoolID uuid.UUID) bool {
	if !p.Authenticated || schoolID == uuid.Nil {
		return false
	}
	if p.Role == constants.RoleSuperAdmin {
		return true
	}
	return p.Role == constants.RoleAdmin && p.SchoolID == schoolID
}

// CanAccessRecord: default fail-closed untuk kombinasi yang tidak dikenal.
func CanAccessRecord(p Principal, rec TenantScoped) bool {
	if !p.Authenticated || rec == nil {
		return false
	}
	if p.Role == constants.RoleSuperAdmin {
		return true
	}
	if !p.HasSchool() || rec.TenantSchoolID() != p.SchoolID {
		return false
	}
	switch p.Role {
	case constants.RoleAdmin, constants.RoleTeacher:
		return true
	}
	if owned, ok := rec.(OwnedRecord); ok {
		return owned.OwnerUserID() == p.UserID
	}
	return false
}
