package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionData - то, что отдаем клиенту при создании сессии
type SessionData struct {
	SessionID   string
	AccessToken string
	ExpiresAt   time.Time
	View        TableView
}

type SessionClaims struct {
	jwt.RegisteredClaims
}
