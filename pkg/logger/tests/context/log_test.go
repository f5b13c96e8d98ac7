package context_test

import (
	"context"
	"testing"

	"gumboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	logger.SetGlobalLogger(nil)
	defer logger.SetGlobalLogger(nil)

	t.Run("returns logger from context when available", func(t *testing.T) {
		contextLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		globalLogger, err := logger.NewLogger(logger.Production, "error")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		ctx := logger.NewContext(context.Background(), contextLogger)

		result := logger.Log(ctx)
		assert.Same(t, contextLogger, result)
		assert.NotSame(t, globalLogger, result)
	})

	t.Run("returns global logger when no logger in context", func(t *testing.T) {
		globalLogger, err := logger.NewLogger(logger.Development, "info")
		require.NoError(t, err)
		logger.SetGlobalLogger(globalLogger)

		ctx := context.Background()

		result := logger.Log(ctx)
		assert.Same(t, globalLogger, result)
	})

	t.Run("returns fallback logger when no context or global logger", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		ctx := context.Background()

		result := logger.Log(ctx)
		assert.NotNil(t, result, "fallback logger should not be nil")
	})

	t.Run("returns the same fallback logger instance each time", func(t *testing.T) {
		logger.SetGlobalLogger(nil)

		ctx := context.Background()
		result1 := logger.Log(ctx)
		result2 := logger.Log(ctx)

		assert.Same(t, result1, result2, "fallback logger should be a singleton")
	})
}

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in context", func(t *testing.T) {
		stored, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), stored)

		result, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, stored, result)
	})

	t.Run("returns error when context has no logger", func(t *testing.T) {
		_, err := logger.FromContext(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}
