package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"civicswipe/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AuthService issues and validates anonymous user tokens. The mobile
// client starts a session on first launch and keeps the token; a device
// id lets a reinstall map back to a stable user id.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService creates a new auth service
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{jwtSecret: []byte(jwtSecret)}
}

// StartSession mints a user id and a token for it
func (s *AuthService) StartSession(req *model.StartSessionRequest) (*model.StartSessionResponse, error) {
	userID := "user_" + uuid.New().String()[:8]
	if req != nil && req.DeviceID != "" {
		// Deterministic id per device so reinstalls keep their blueprint
		userID = "user_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(req.DeviceID)).String()[:8]
	}

	claims := &model.UserClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &model.StartSessionResponse{
		UserID: userID,
		Token:  tokenString,
	}, nil
}

// ValidateToken validates a user JWT and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*model.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.UserClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
