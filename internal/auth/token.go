package auth

import (
	"fmt"

	"github.com/chefacademy/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenValidator validates JWT access tokens.
// Tokens are issued by the account service; this backend only checks them.
type TokenValidator struct {
	secret string
}

// NewTokenValidator creates a new token validator for the shared signing secret
func NewTokenValidator(secret string) *TokenValidator {
	return &TokenValidator{
		secret: secret,
	}
}

// ValidateAccessToken validates an access token and returns the learner ID and role
func (tv *TokenValidator) ValidateAccessToken(tokenString string) (string, models.Role, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tv.secret), nil
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return "", 0, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, fmt.Errorf("invalid token claims")
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return "", 0, fmt.Errorf("token is not an access token")
	}

	learnerID, ok := claims["sub"].(string)
	if !ok || learnerID == "" {
		return "", 0, fmt.Errorf("sub not found in token")
	}

	// JWT claims decode numbers as float64
	role, ok := claims["role"].(float64)
	if !ok {
		return "", 0, fmt.Errorf("role not found in token")
	}

	return learnerID, models.Role(role), nil
}
