package domain

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Actor is the authenticated principal acting on a request.
type Actor struct {
	UserID uint64
	Role   Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
