package domain

import "errors"

// Role is the closed set of operator roles.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "следящий"
)

// Valid reports whether r is one of the recognised roles. Anything else
// must be denied by authorization checks.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")
var ErrMissingField = errors.New("required field is empty")

// User models an authenticated operator account.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
}
