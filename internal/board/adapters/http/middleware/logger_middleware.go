// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gumboard/pkg/logger"
)

// Ключи Locals для request-scoped значений.
const (
	LocalsRequestContext = "requestContext"
	LocalsUserID         = "userID"
)

// HeaderRequestID - заголовок входящего идентификатора запроса.
const HeaderRequestID = "X-Request-ID"

// NewLoggerMiddleware создает промежуточное ПО для логирования HTTP запросов.
// Оно же снабжает запрос контекстом с идентификатором запроса.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.Locals(LocalsRequestContext, requestCtx)

		start := time.Now()
		path := ctx.Path()
		method := ctx.Method()

		log := logger.Log(requestCtx).With(
			zap.String("path", path),
			zap.String("method", method),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)
		status := ctx.Response().StatusCode()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		if err != nil {
			log.Error(requestCtx, "Request failed", append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}

// RequestContext возвращает request-scoped контекст, созданный middleware.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(LocalsRequestContext).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}

// CallerID возвращает идентификатор аутентифицированного пользователя
// или пустую строку для анонимного запроса.
func CallerID(ctx fiber.Ctx) string {
	if userID, ok := ctx.Locals(LocalsUserID).(string); ok {
		return userID
	}
	return ""
}
