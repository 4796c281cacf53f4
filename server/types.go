package server

import (
	"github.com/Daskott/coastal-alert/server/auth"
	"github.com/Daskott/coastal-alert/server/models"
)

type ResponsePayload struct {
	Errors  []string    `json:"errors"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type RequestContextKey string

type DecodedJWT struct {
	Claims   *auth.CoastalTokenClaims
	ErrorMsg string
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        *models.User `json:"user"`
}

type StatsResponse struct {
	*models.Stats
	Thresholds map[string]float64 `json:"thresholds"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	SmsMode   string `json:"sms_mode"`
	EmailMode string `json:"email_mode"`
}
