package requestid_test

import (
	"context"
	"testing"

	"gumboard/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	t.Run("returns request ID when present in context", func(t *testing.T) {
		expectedID := "test-request-id-123"
		ctx := logger.NewRequestIDContext(context.Background(), expectedID)

		retrievedID, ok := logger.GetRequestID(ctx)

		assert.True(t, ok, "Should indicate request ID was found")
		assert.Equal(t, expectedID, retrievedID, "Should return the correct request ID")
	})

	t.Run("returns false when no request ID in context", func(t *testing.T) {
		ctx := context.Background()

		retrievedID, ok := logger.GetRequestID(ctx)

		assert.False(t, ok, "Should indicate no request ID was found")
		assert.Empty(t, retrievedID, "Should return empty string when not found")
	})

	t.Run("generates an ID when an empty one is supplied", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		retrievedID, ok := logger.GetRequestID(ctx)

		assert.True(t, ok, "Should indicate request ID was found")
		assert.NotEmpty(t, retrievedID, "Should return non-empty auto-generated ID")
	})

	t.Run("returns same ID for derived contexts", func(t *testing.T) {
		expectedID := "parent-request-id"
		parentCtx := logger.NewRequestIDContext(context.Background(), expectedID)

		type derivedKey struct{}
		childCtx := context.WithValue(parentCtx, derivedKey{}, "some-value")

		retrievedID, ok := logger.GetRequestID(childCtx)

		assert.True(t, ok, "Should find ID in derived context")
		assert.Equal(t, expectedID, retrievedID, "Should return the ID from parent context")
	})
}

func TestGenerateRequestID(t *testing.T) {
	t.Run("produces valid unique UUIDs", func(t *testing.T) {
		first := logger.GenerateRequestID()
		second := logger.GenerateRequestID()

		_, err := uuid.Parse(first)
		assert.NoError(t, err, "Generated ID should be a valid UUID")
		assert.NotEqual(t, first, second, "Consecutive IDs should differ")
	})
}
