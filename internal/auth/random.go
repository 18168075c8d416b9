package auth

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomToken возвращает криптослучайный hex-токен.
// Используется для верификации email и сброса пароля.
func GenerateRandomToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
