package dto

import "time"

// LoginRequest exchanges the configured API key for a JWT.
type LoginRequest struct {
	APIKey string `json:"apiKey" binding:"required"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
