package user

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r can be carried in an access token. Guests never hold a token.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOwner, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the caller of an operation as identified by the access token.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func Guest() Actor {
	return Actor{ID: uuid.Nil, Role: RoleGuest}
}

func (a Actor) IsGuest() bool {
	return a.Role == RoleGuest || a.ID == uuid.Nil
}
