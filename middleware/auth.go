package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken guards user routes. A valid token puts user_id into the
// gin context for the handlers downstream.
func ValidateToken(c *gin.Context) {
	claims, ok := parseBearer(c)
	if !ok {
		return
	}

	id, _ := claims["id"].(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("user_id", id)
	c.Next()
}

// ValidateAdminToken guards back-office routes; the token must carry the
// admin role claim.
func ValidateAdminToken(c *gin.Context) {
	claims, ok := parseBearer(c)
	if !ok {
		return
	}

	if role, _ := claims["role"].(string); role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}

	id, _ := claims["id"].(string)
	c.Set("admin_id", id)
	c.Next()
}

func parseBearer(c *gin.Context) (jwt.MapClaims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return nil, false
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return nil, false
	}
	return claims, true
}
