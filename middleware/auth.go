package middleware

import (
	"net/http"
	"strings"

	"go-blog-api/config"
	"go-blog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const identityKey = "identity"

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthRequired rejects requests without a valid bearer token. Rejections
// happen before any validation or store access.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolveIdentity(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the resolved caller, anonymous when the request
// carried no session.
func CurrentIdentity(c *gin.Context) models.Identity {
	if v, exists := c.Get(identityKey); exists {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}

func resolveIdentity(c *gin.Context) (models.Identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return models.Identity{}, models.ErrUnauthorized
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return models.Identity{}, models.ErrUnauthorized
	}

	claims, err := ParseToken(tokenString)
	if err != nil {
		return models.Identity{}, models.ErrUnauthorized
	}

	return models.Authenticated(claims.UserID, models.UserRole(claims.Role)), nil
}

func ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return config.JWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
