package service

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenBytes — количество случайных байт в токене сессии.
const tokenBytes = 32

// GenerateToken выпускает непрозрачный токен сессии: 32 случайных байта
// в base64url без набивки. Токен нигде не сохраняется и не проверяется —
// поведение исходной системы (см. DESIGN.md).
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("token: не удалось получить случайные байты: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
