package models

import "time"

// Role discriminates the two kinds of registered identities.
type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleCompany
}

// Identity is a registered account, the root entity other records reference.
// Role is fixed at creation and never changes.
type Identity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (i Identity) EntityID() string { return i.ID }
