package token

import (
	"errors"
	"fmt"
	"time"

	"lucky888_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken токен сессии, jti = ID сессии
func GenerateAccessToken(sessionID string, secretKey []byte, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func VerifyToken(tokenStr string, secretKey []byte) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
