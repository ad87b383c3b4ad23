package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// peekExpiry разбирает токен как JWT без проверки подписи и достаёт exp.
// Валидация токена остаётся за сервером; здесь claims нужны только для
// отображения в команде status.
func peekExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}

	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		// JWT без exp: токен разобран, но срока действия нет
		return time.Time{}, true
	}

	return expiresAt.Time, true
}
