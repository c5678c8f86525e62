package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"vespa-academy/infrastructure/logger"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// GenerateToken signs the claim set with HMAC-SHA256 and the given key.
func GenerateToken(payload map[string]interface{}, secretKey string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims(payload))
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error signing token")
		return "", err
	}
	return signed, nil
}
