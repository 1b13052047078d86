package model

import "github.com/golang-jwt/jwt/v5"

// UserClaims are the JWT claims for an app user
type UserClaims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// StartSessionRequest begins an anonymous user session. DeviceID lets a
// reinstalled client reclaim its user id.
type StartSessionRequest struct {
	DeviceID string `json:"deviceId,omitempty"`
}

// StartSessionResponse carries the issued token
type StartSessionResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}
