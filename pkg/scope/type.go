package scope

import "github.com/golang-jwt/jwt/v5"

// Payload represents the JWT token claims.
type Payload struct {
	jwt.RegisteredClaims
	UserID    string `json:"uid"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
	Type      string `json:"type"`
	Refresh   bool   `json:"refresh"`
}

// implManager implements Manager.
type implManager struct {
	secretKey string
}

// Context key types for payload and scope.
type (
	PayloadCtxKey struct{}
	ScopeCtxKey   struct{}
)
