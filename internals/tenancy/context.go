// file: internals/tenancy/context.go
package tenancy

import (
	"context"

	"github.com/google/uuid"
)

/* =========================
   Scope (tenant per-request)
========================= */

// Scope menyimpan "school aktif" untuk satu request.
// Tiga state yang dibedakan secara eksplisit:
//   - unresolved  : belum ada school & bukan super admin (zero value, default)
//   - school      : terikat ke tepat satu school
//   - unrestricted: super admin, tanpa filter tenant
//
// Tanpa school TIDAK sama dengan tanpa batasan — unresolved selalu
// diperlakukan sebagai "zero access" oleh Scoped(), bukan bypass.
type Scope struct {
	schoolID     uuid.UUID
	unrestricted bool
}

func ScopeForSchool(id uuid.UUID) Scope { return Scope{schoolID: id} }

// UnrestrictedScope hanya untuk super admin (di-set eksplisit oleh binder).
func UnrestrictedScope() Scope { return Scope{unrestricted: true} }

func UnresolvedScope() Scope { return Scope{} }

func (s Scope) HasSchool() bool { return !s.unrestricted && s.schoolID != uuid.Nil }

func (s Scope) IsUnrestricted() bool { return s.unrestricted }

func (s Scope) IsUnresolved() bool { return !s.unrestricted && s.schoolID == uuid.Nil }

func (s Scope) SchoolID() (uuid.UUID, bool) {
	if !s.HasSchool() {
		return uuid.Nil, false
	}
	return s.schoolID, true
}

/* =========================
   Context carrier
========================= */

type scopeKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFromContext mengembalikan scope aktif; default unresolved.
func ScopeFromContext(ctx context.Context) Scope {
	if ctx == nil {
		return Scope{}
	}
	if s, ok := ctx.Value(scopeKey{}).(Scope); ok {
		return s
	}
	return Scope{}
}

// ClearScope menimpa scope apapun dengan unresolved. Idempotent,
// aman dipanggil berkali-kali termasuk saat belum pernah di-set.
func ClearScope(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeKey{}, Scope{})
}
