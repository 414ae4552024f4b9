package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"campusiq_backend/internals/tenancy"
)

// ✅ Success Response tanpa custom code (default 200)
func JsonOK(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusOK, message, data)
}

// ✅ Success Response 201 untuk created
func JsonCreated(c *fiber.Ctx, message string, data interface{}) error {
	return JsonWithCode(c, fiber.StatusCreated, message, data)
}

func JsonWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

// ✅ Error Response sederhana
func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// ✅ Error Response advance, bisa kirim multiple field error
func JsonErrorWithDetails(c *fiber.Ctx, code int, message string, errs interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
		"errors":  errs,
	})
}

// ✅ Khusus error validasi (validator.v10)
func JsonValidationError(c *fiber.Ctx, err error) error {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, "Input tidak valid")
	}

	errorsMap := make(map[string]string, len(ve))
	for _, fieldErr := range ve {
		errorsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	return JsonErrorWithDetails(c, fiber.StatusBadRequest, "Validasi gagal", errorsMap)
}

// JsonFromDomainError memetakan error domain tenancy ke status yang benar.
// Akses cross-tenant sengaja disajikan sebagai not-found, bukan forbidden,
// supaya tidak membocorkan keberadaan data tenant lain.
func JsonFromDomainError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, tenancy.ErrMissingTenant):
		return JsonError(c, fiber.StatusBadRequest, "School wajib diisi atau ter-resolve dari sesi Anda")
	case errors.Is(err, tenancy.ErrAccessDenied):
		return JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki akses untuk operasi ini")
	default:
		return JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
