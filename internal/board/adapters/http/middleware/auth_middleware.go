// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gumboard/internal/board/ports/services"
	"gumboard/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	MsgNoAuthHeader       = "no authorization header provided"
	MsgInvalidTokenFormat = "invalid token format"
	MsgInvalidToken       = "token validation failed"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает промежуточное ПО, извлекающее личность вызывающего
// из заголовка Authorization. Личность необязательна: запрос без валидного
// токена продолжается анонимно, обязательность решают обработчики.
func NewAuthMiddleware(tokens services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, MsgNoAuthHeader)
			return ctx.Next()
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, MsgInvalidTokenFormat)
			return ctx.Next()
		}

		userID, err := tokens.ValidateAccessToken(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, MsgInvalidToken, zap.Error(err))
			return ctx.Next()
		}

		ctx.Locals(LocalsUserID, userID)
		return ctx.Next()
	}
}
