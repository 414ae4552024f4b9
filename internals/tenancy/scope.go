// file: internals/tenancy/scope.go
package tenancy

import (
	"context"

	"gorm.io/gorm"
)

// Scoped adalah entry point default untuk SEMUA pembacaan entity tenant-scoped.
//   - unrestricted → tanpa filter (visibilitas super admin, by design)
//   - school aktif → equality predicate pada kolom school si model
//   - unresolved   → deny-all; tanpa tenant bukan berarti tanpa batasan
//
// Ordering/pagination/predicate lain dari caller tidak tersentuh.
func Scoped(ctx context.Context, m TenantScoped) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sc := ScopeFromContext(ctx)
		switch {
		case sc.IsUnrestricted():
			return db
		case sc.HasSchool():
			id, _ := sc.SchoolID()
			return db.Where(m.SchoolIDColumn()+" = ?", id)
		default:
			return db.Where("1 = 0")
		}
	}
}

// AcrossSchools: opt-out eksplisit dari tenant filter, apapun scope-nya.
// Hanya untuk jalur yang memang cross-tenant dan sudah direview:
// lookup verification code saat self-register, directory publik, tooling admin.
func AcrossSchools(db *gorm.DB) *gorm.DB {
	return db
}
