package model

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// Scope is the authenticated caller's identity, extracted from the JWT.
type Scope struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	CompanyID string `json:"company_id"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
