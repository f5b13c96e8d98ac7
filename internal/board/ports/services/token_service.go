// Package services defines service interfaces consumed by the board service.
package services

import (
	"context"
	"errors"
)

// Ошибки проверки токенов.
var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrExpiredJWTToken = errors.New("jwt token has expired")
)

// TokenService проверяет токены доступа и возвращает идентификатор пользователя.
// Выпуск токенов находится вне зоны ответственности сервиса досок.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
