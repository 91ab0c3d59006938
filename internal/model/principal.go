package model

type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleEditor Role = "EDITOR"
	RoleViewer Role = "VIEWER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID string
	Role   Role
}

func (p Principal) CanWrite() bool {
	return p.Role == RoleAdmin || p.Role == RoleEditor
}
