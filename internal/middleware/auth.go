package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/openquorum/ballot-service/internal/entity"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

// AuthMiddleware validates bearer tokens from the external identity
// provider. Role claims are free-form strings on the wire; they are mapped
// to the closed internal role enum here at the trust boundary, and anything
// unrecognized degrades to the ordinary user role.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret)}
}

func (m *AuthMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		accessToken := extractTokenFromHeader(c.GetHeader("Authorization"))
		if accessToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing access token"})
			return
		}

		token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		userID, _ := claims["sub"].(string)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token subject"})
			return
		}

		email, _ := claims["email"].(string)
		roleClaim, _ := claims["role"].(string)

		c.Set(ContextUserID, userID)
		c.Set(ContextUserEmail, email)
		c.Set(ContextUserRole, MapRole(roleClaim))
		c.Next()
	}
}

// MapRole converts an external role claim into the internal enum.
func MapRole(claim string) entity.ActorRole {
	switch strings.ToLower(claim) {
	case "admin":
		return entity.ActorRoleAdmin
	case "owner":
		return entity.ActorRoleOwner
	default:
		return entity.ActorRoleUser
	}
}

func extractTokenFromHeader(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
