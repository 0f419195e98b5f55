package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 24 * time.Hour

// IssueUserToken signs a JWT carrying the identity fields the storefront
// client decodes: id, email, name and expiry.
func IssueUserToken(id, email, name string) (string, error) {
	claims := jwt.MapClaims{
		"id":    id,
		"email": email,
		"name":  name,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// IssueAdminToken signs a back-office JWT with an explicit admin role claim.
func IssueAdminToken(id, username string) (string, error) {
	claims := jwt.MapClaims{
		"id":       id,
		"username": username,
		"role":     "admin",
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
