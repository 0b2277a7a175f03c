package user

import "strings"

type Role string

const (
	// RoleGuest is the pre-login role.
	RoleGuest      Role = ""
	RoleStudent    Role = "student"
	RoleStallOwner Role = "stall_owner"
	RoleAdmin      Role = "admin"
)

// DefaultAdminEmail is the registrar account used when no admin address
// is configured.
const DefaultAdminEmail = "admin@adnu.edu.ph"

// RoleFromEmail is the prototype's mock credential check: the email
// alone decides the role. Admin requires the exact configured address;
// any other email containing "owner" is a stall owner. Not an
// authentication system.
func RoleFromEmail(email, adminEmail string) Role {
	email = strings.ToLower(strings.TrimSpace(email))
	if adminEmail == "" {
		adminEmail = DefaultAdminEmail
	}
	switch {
	case email == strings.ToLower(strings.TrimSpace(adminEmail)):
		return RoleAdmin
	case strings.Contains(email, "owner"):
		return RoleStallOwner
	default:
		return RoleStudent
	}
}

func (r Role) String() string {
	if r == RoleGuest {
		return "guest"
	}
	return string(r)
}
