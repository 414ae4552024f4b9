// file: internals/middlewares/db_middleware_test.go
package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDBMiddlewarePutsHandleInLocals(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	app := fiber.New()
	app.Use(DBMiddleware(db))
	app.Get("/health", func(c *fiber.Ctx) error {
		got, ok := c.Locals("DB").(*gorm.DB)
		if !ok || got != db {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		sqlDB, err := got.DB()
		if err != nil || sqlDB.Ping() != nil {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
