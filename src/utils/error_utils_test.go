package utils

import (
	"testing"

	"Backend-Elevate-012/src/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromKind(t *testing.T) {
	cases := map[apperrors.Kind]int{
		apperrors.KindInvalidArgument:  fiber.StatusBadRequest,
		apperrors.KindNotFound:         fiber.StatusNotFound,
		apperrors.KindDuplicateKey:     fiber.StatusConflict,
		apperrors.KindPermissionDenied: fiber.StatusForbidden,
		apperrors.KindPolicyViolation:  fiber.StatusUnprocessableEntity,
		apperrors.KindStoreUnavailable: fiber.StatusServiceUnavailable,
		apperrors.KindUnknown:          fiber.StatusInternalServerError,
	}

	for kind, want := range cases {
		assert.Equal(t, want, StatusFromKind(kind), "kind %s", kind)
	}
}
