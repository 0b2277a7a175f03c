package user

import (
	"errors"
	"fmt"
)

var ErrViewForbidden = errors.New("view not accessible for role")

// AppState is the explicit application state handed to the presentation
// layer: which screen is showing and who is logged in. It replaces the
// prototype's ambient view/role globals.
type AppState struct {
	CurrentView View
	Role        Role

	adminEmail string
}

func NewAppState(adminEmail string) *AppState {
	return &AppState{CurrentView: ViewHome, Role: RoleGuest, adminEmail: adminEmail}
}

// Login maps the email to a role and routes to that role's landing view.
func (s *AppState) Login(email string) Role {
	s.Role = RoleFromEmail(email, s.adminEmail)
	s.CurrentView = LandingView(s.Role)
	return s.Role
}

// Navigate switches the current view, refusing views the role cannot
// access.
func (s *AppState) Navigate(v View) error {
	if !s.Role.CanAccess(v) {
		return fmt.Errorf("%w: %s -> %s", ErrViewForbidden, s.Role, v)
	}
	s.CurrentView = v
	return nil
}

func (s *AppState) Logout() {
	s.Role = RoleGuest
	s.CurrentView = ViewHome
}
