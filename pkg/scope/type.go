package scope

import "github.com/golang-jwt/jwt/v5"

// Payload represents the JWT token claims.
type Payload struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// implManager implements Manager.
type implManager struct {
	secretKey string
	issuer    string
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
