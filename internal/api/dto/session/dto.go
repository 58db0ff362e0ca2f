package session

import (
	"time"

	"lucky888_backend/internal/api/dto/game"
)

type CreateResponse struct {
	SessionID   string             `json:"session_id"`
	AccessToken string             `json:"access_token"`
	ExpiresAt   time.Time          `json:"expires_at"`
	State       game.StateResponse `json:"state"`
}
