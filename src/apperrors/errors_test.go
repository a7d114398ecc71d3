package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestKindOf(t *testing.T) {
	t.Run("TypedError", func(t *testing.T) {
		err := New(KindPolicyViolation, "gender mismatch")
		assert.Equal(t, KindPolicyViolation, KindOf(err))
		assert.True(t, Is(err, KindPolicyViolation))
	})

	t.Run("WrappedTypedError", func(t *testing.T) {
		inner := New(KindNotFound, "missing")
		wrapped := fmt.Errorf("outer: %w", inner)
		assert.Equal(t, KindNotFound, KindOf(wrapped))
	})

	t.Run("PlainErrorIsUnknown", func(t *testing.T) {
		assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	})
}

func TestMessageOf(t *testing.T) {
	err := New(KindDuplicateKey, "You are already checked in for today's service.")
	assert.Equal(t, "You are already checked in for today's service.", MessageOf(err))

	assert.Equal(t, "raw failure", MessageOf(errors.New("raw failure")))
	assert.Equal(t, "", MessageOf(nil))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := Wrap(KindStoreUnavailable, "store down", cause)
	assert.True(t, errors.Is(err, cause))
}

func TestFromMongo(t *testing.T) {
	t.Run("NilStaysNil", func(t *testing.T) {
		assert.Nil(t, FromMongo(nil, "x"))
	})

	t.Run("NoDocumentsIsNotFound", func(t *testing.T) {
		err := FromMongo(mongo.ErrNoDocuments, "Attendee not found.")
		assert.Equal(t, KindNotFound, err.Kind)
		assert.Equal(t, "Attendee not found.", err.Message)
	})

	t.Run("DuplicateKeyWriteError", func(t *testing.T) {
		// 11000 คือ duplicate key ของ MongoDB
		raw := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
		}
		err := FromMongo(raw, "already checked in")
		assert.Equal(t, KindDuplicateKey, err.Kind)
	})

	t.Run("UnauthorizedCommandError", func(t *testing.T) {
		raw := mongo.CommandError{Code: 13, Message: "command insert requires authentication"}
		err := FromMongo(raw, "denied")
		assert.Equal(t, KindPermissionDenied, err.Kind)
	})

	t.Run("UnauthorizedWriteError", func(t *testing.T) {
		raw := mongo.WriteException{
			WriteErrors: mongo.WriteErrors{{Code: 13, Message: "not authorized"}},
		}
		err := FromMongo(raw, "denied")
		assert.Equal(t, KindPermissionDenied, err.Kind)
	})

	t.Run("UnclassifiedIsUnknown", func(t *testing.T) {
		err := FromMongo(errors.New("something odd"), "failed")
		assert.Equal(t, KindUnknown, err.Kind)
	})
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "invalid_argument", KindInvalidArgument.String())
	assert.Equal(t, "duplicate_key", KindDuplicateKey.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}
