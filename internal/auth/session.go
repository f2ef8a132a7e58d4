// Package auth issues and verifies bearer tokens and carries the verified
// identity of the caller as a Session.
package auth

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Session is the acting user of a request, derived from a verified token.
// Services take it explicitly instead of trusting identifiers in the body.
type Session struct {
	UserID   string
	Username string
	Role     string
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// CanActFor reports whether the session may read or mutate data owned by
// userID.
func (s Session) CanActFor(userID string) bool {
	if s.UserID == "" {
		return false
	}
	return s.IsAdmin() || s.UserID == userID
}

// ValidRole reports whether role is one a user can sign up with.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
