// file: internals/middlewares/tenant/tenant_context.go
package tenant

import (
	"log"

	"github.com/gofiber/fiber/v2"

	helper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

const logPrefix = "[TENANT_CTX]"

// Kunci Locals untuk scope aktif (dipakai controller yang butuh baca langsung).
const LocTenantScope = "tenant_scope"

// BindScope = Request Tenant Binder. Jalan SETELAH AuthMiddleware, SEBELUM
// business logic. Alurnya:
//  1. clear scope apapun yang nyangkut — fasthttp me-reuse ctx antar request
//  2. tanpa principal → biarkan unresolved
//  3. super admin → unrestricted eksplisit
//  4. user biasa → scope school miliknya; tanpa school → tetap unresolved
//  5. clear tanpa syarat di semua exit path (termasuk panic) via defer
func BindScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.SetUserContext(tenancy.ClearScope(c.UserContext()))

		p := helper.PrincipalFromLocals(c)
		sc := p.Scope()

		c.SetUserContext(tenancy.WithScope(c.UserContext(), sc))
		c.Locals(LocTenantScope, sc)

		switch {
		case sc.IsUnrestricted():
			log.Printf("%s bind unrestricted (super admin) user=%s", logPrefix, p.UserID)
		case sc.HasSchool():
			id, _ := sc.SchoolID()
			log.Printf("%s bind school=%s role=%s", logPrefix, id, p.Role)
		}

		defer func() {
			// wajib jalan juga saat business logic panic; slot eksekusi yang
			// di-reuse tidak boleh mewarisi tenant request sebelumnya
			c.SetUserContext(tenancy.ClearScope(c.UserContext()))
		}()

		return c.Next()
	}
}

// ScopeFrom membaca scope aktif request (shortcut untuk controller).
func ScopeFrom(c *fiber.Ctx) tenancy.Scope {
	if sc, ok := c.Locals(LocTenantScope).(tenancy.Scope); ok {
		return sc
	}
	return tenancy.ScopeFromContext(c.UserContext())
}
