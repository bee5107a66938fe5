package models

import "time"

// Role tags a platform account with the area it belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleStartup Role = "startup"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleStartup, RoleAdmin:
		return true
	}
	return false
}

// User is the non-secret identity of a signed-in account. Credentials
// never travel on this struct; password verification stays inside the
// auth repository.
type User struct {
	ID         string
	Username   string
	Email      string
	Role       Role
	IsVerified bool
}

// UserAccount is the persistence-side account record used by the auth
// repository. PasswordHash never leaves the auth package.
type UserAccount struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	IsVerified   bool
	IsActive     bool
	CreatedAt    time.Time
}

// User strips the account down to its non-secret identity.
func (a *UserAccount) User() *User {
	return &User{
		ID:         a.ID,
		Username:   a.Username,
		Email:      a.Email,
		Role:       a.Role,
		IsVerified: a.IsVerified,
	}
}
