// file: internals/middlewares/tenant/tenant_context_test.go
package tenant

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusiq_backend/internals/constants"
	helper "campusiq_backend/internals/helpers/auth"
	"campusiq_backend/internals/tenancy"
)

// newBinderApp merakit app mini: middleware pengisi locals (pengganti
// AuthMiddleware) → BindScope → handler yang melaporkan scope yang dilihatnya.
func newBinderApp(fillLocals func(c *fiber.Ctx), capture *tenancy.Scope) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if fillLocals != nil {
			fillLocals(c)
		}
		return c.Next()
	})
	app.Use(BindScope())
	app.Get("/probe", func(c *fiber.Ctx) error {
		*capture = tenancy.ScopeFromContext(c.UserContext())
		return c.SendString("ok")
	})
	return app
}

func TestBindScopeForSchoolMember(t *testing.T) {
	schoolID := uuid.New()
	userID := uuid.New()

	var seen tenancy.Scope
	app := newBinderApp(func(c *fiber.Ctx) {
		c.Locals(helper.LocUserID, userID.String())
		c.Locals(helper.LocUserRole, constants.RoleTeacher)
		c.Locals(helper.LocSchoolID, schoolID.String())
	}, &seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	id, ok := seen.SchoolID()
	require.True(t, ok)
	assert.Equal(t, schoolID, id)
}

func TestBindScopeSuperAdmin(t *testing.T) {
	var seen tenancy.Scope
	app := newBinderApp(func(c *fiber.Ctx) {
		c.Locals(helper.LocUserID, uuid.New().String())
		c.Locals(helper.LocUserRole, constants.RoleSuperAdmin)
	}, &seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, seen.IsUnrestricted())
}

func TestBindScopeWithoutPrincipal(t *testing.T) {
	var seen tenancy.Scope
	app := newBinderApp(nil, &seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, seen.IsUnresolved(), "tanpa principal scope harus unresolved, bukan unrestricted")
}

func TestBindScopeElevatedWithoutSchool(t *testing.T) {
	var seen tenancy.Scope
	app := newBinderApp(func(c *fiber.Ctx) {
		c.Locals(helper.LocUserID, uuid.New().String())
		c.Locals(helper.LocUserRole, constants.RoleAdmin)
		// sengaja tanpa school_id
	}, &seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, seen.IsUnresolved())
	assert.False(t, seen.IsUnrestricted())
}

// Request kedua TANPA principal tidak boleh mewarisi scope request pertama —
// fasthttp me-reuse execution slot antar request.
func TestBindScopeDoesNotLeakBetweenRequests(t *testing.T) {
	schoolID := uuid.New()

	var seen tenancy.Scope
	app := newBinderApp(func(c *fiber.Ctx) {
		// principal hanya di request pertama (via header penanda)
		if c.Get("X-With-Principal") == "1" {
			c.Locals(helper.LocUserID, uuid.New().String())
			c.Locals(helper.LocUserRole, constants.RoleTeacher)
			c.Locals(helper.LocSchoolID, schoolID.String())
		}
	}, &seen)

	req1 := httptest.NewRequest("GET", "/probe", nil)
	req1.Header.Set("X-With-Principal", "1")
	resp, err := app.Test(req1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, seen.HasSchool())

	resp, err = app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, seen.IsUnresolved(), "scope request sebelumnya tidak boleh bocor")
}

func TestScopeFromLocals(t *testing.T) {
	schoolID := uuid.New()

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, uuid.New().String())
		c.Locals(helper.LocUserRole, constants.RoleStudent)
		c.Locals(helper.LocSchoolID, schoolID.String())
		return c.Next()
	})
	app.Use(BindScope())

	var fromHelper tenancy.Scope
	app.Get("/probe", func(c *fiber.Ctx) error {
		fromHelper = ScopeFrom(c)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/probe", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	id, ok := fromHelper.SchoolID()
	require.True(t, ok)
	assert.Equal(t, schoolID, id)
}
