// file: internals/tenancy/model.go
package tenancy

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantScoped adalah kontrak eksplisit entity yang ikut tenant scoping:
// punya kolom school + accessor-nya. Scoped() dan aturan akses dispatch
// lewat interface ini, bukan lewat probing field reflektif.
type TenantScoped interface {
	SchoolIDColumn() string
	TenantSchoolID() uuid.UUID
}

// OwnedRecord opsional: record yang dimiliki satu user tertentu
// (mis. student profile). Dipakai CanAccessRecord untuk role non-elevated.
type OwnedRecord interface {
	OwnerUserID() uuid.UUID
}

// FillSchoolID dipanggil dari BeforeCreate SETIAP model tenant-scoped,
// sehingga jalan di semua jalur create GORM, bukan cuma satu entry point.
//   - kalau caller sudah set school eksplisit → biarkan
//   - kalau scope terikat school → auto-assign
//   - selain itu (unrestricted / unresolved) → ErrMissingTenant
func FillSchoolID(tx *gorm.DB, schoolID *uuid.UUID) error {
	if schoolID == nil {
		return ErrMissingTenant
	}
	if *schoolID != uuid.Nil {
		return nil
	}
	sc := ScopeFromContext(tx.Statement.Context)
	if id, ok := sc.SchoolID(); ok {
		*schoolID = id
		return nil
	}
	return ErrMissingTenant
}
