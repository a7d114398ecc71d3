// error_utils.go
package utils

import (
	"Backend-Elevate-012/src/apperrors"
	"Backend-Elevate-012/src/models"

	"github.com/gofiber/fiber/v2"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// HandleAppError แปลง error ที่จัดหมวดแล้วเป็น HTTP response
func HandleAppError(c *fiber.Ctx, err error) error {
	status := StatusFromKind(apperrors.KindOf(err))
	return HandleError(c, status, apperrors.MessageOf(err))
}

// StatusFromKind จับคู่หมวด error กับ HTTP status
func StatusFromKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindInvalidArgument:
		return fiber.StatusBadRequest
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindDuplicateKey:
		return fiber.StatusConflict
	case apperrors.KindPermissionDenied:
		return fiber.StatusForbidden
	case apperrors.KindPolicyViolation:
		return fiber.StatusUnprocessableEntity
	case apperrors.KindStoreUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
