// Package role models the platform roles as an explicit sum type,
// resolved once at startup and passed to whatever needs it — never read
// from ambient global state.
package role

import "fmt"

// Role is the capability level of the current user.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Parse converts a string to a Role.
func Parse(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

// CanAuthor reports whether this role may create, import, or publish
// quizzes.
func (r Role) CanAuthor() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// CanTake reports whether this role may take quizzes. Everyone can.
func (r Role) CanTake() bool {
	return true
}
