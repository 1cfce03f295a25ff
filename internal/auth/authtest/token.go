// Package authtest mints access tokens in the account service's format for tests
package authtest

import (
	"fmt"
	"time"

	"github.com/chefacademy/backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// AccessToken signs an access token for learnerID with the given role, valid for one hour
func AccessToken(secret, learnerID string, role models.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  learnerID,
		"role": int(role),
		"exp":  now.Add(time.Hour).Unix(),
		"iat":  now.Unix(),
		"type": "access",
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, nil
}
