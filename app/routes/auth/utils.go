package auth

import (
	"os"

	"ecole-portail/app/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the signed session token.
const SessionCookie = "session_token"

// SessionClaims bind the token to the persisted session record. The token
// carries no expiry: a session is valid until it is explicitly cleared.
type SessionClaims struct {
	Username string      `json:"username"`
	Name     string      `json:"name"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

func getJWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "ecole-portail-secret-key" // Default for development
	}
	return []byte(secret)
}

// GenerateToken signs a token for the session just opened.
func GenerateToken(session *models.Session) (string, error) {
	claims := SessionClaims{
		Username: session.User.Username,
		Name:     session.User.Name,
		Role:     session.Type,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:     uuid.NewString(),
			Issuer: "ecole-portail",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTSecret())
}

// ValidateToken parses and verifies a session token.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return getJWTSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrTokenInvalidClaims
}
