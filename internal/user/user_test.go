package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromEmail(t *testing.T) {
	cases := []struct {
		email string
		want  Role
	}{
		{"admin@adnu.edu.ph", RoleAdmin},
		{"owner@adnu.edu.ph", RoleStallOwner},
		{"canteen.owner3@adnu.edu.ph", RoleStallOwner},
		{"student@adnu.edu.ph", RoleStudent},
		{"maria.santos@adnu.edu.ph", RoleStudent},
		{"  Admin@ADNU.edu.ph ", RoleAdmin},
		{"", RoleStudent},
		// only the exact admin address gets admin
		{"badminton.club@adnu.edu.ph", RoleStudent},
		{"admin2@adnu.edu.ph", RoleStudent},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, RoleFromEmail(tc.email, ""))
		})
	}

	t.Run("ConfiguredAdminAddress", func(t *testing.T) {
		assert.Equal(t, RoleAdmin, RoleFromEmail("registrar@adnu.edu.ph", "registrar@adnu.edu.ph"))
		assert.Equal(t, RoleStudent, RoleFromEmail("admin@adnu.edu.ph", "registrar@adnu.edu.ph"))
	})
}

func TestCanAccess(t *testing.T) {
	t.Run("PublicViews", func(t *testing.T) {
		for _, r := range []Role{RoleGuest, RoleStudent, RoleStallOwner, RoleAdmin} {
			for _, v := range []View{ViewHome, ViewLogin, ViewAbout, ViewShops} {
				assert.True(t, r.CanAccess(v), "%s should reach %s", r, v)
			}
		}
	})

	t.Run("RoleScreens", func(t *testing.T) {
		assert.True(t, RoleStudent.CanAccess(ViewMenu))
		assert.True(t, RoleStudent.CanAccess(ViewOrders))
		assert.False(t, RoleStudent.CanAccess(ViewTracking))
		assert.False(t, RoleStudent.CanAccess(ViewReports))

		assert.True(t, RoleStallOwner.CanAccess(ViewTracking))
		assert.True(t, RoleStallOwner.CanAccess(ViewManage))
		assert.False(t, RoleStallOwner.CanAccess(ViewMenu))
		assert.False(t, RoleStallOwner.CanAccess(ViewStalls))

		assert.True(t, RoleAdmin.CanAccess(ViewReports))
		assert.True(t, RoleAdmin.CanAccess(ViewStalls))
		assert.False(t, RoleAdmin.CanAccess(ViewManage))

		assert.False(t, RoleGuest.CanAccess(ViewMenu))
	})

	t.Run("UnknownView", func(t *testing.T) {
		assert.False(t, RoleAdmin.CanAccess(View("settings")))
	})
}

func TestLandingView(t *testing.T) {
	assert.Equal(t, ViewMenu, LandingView(RoleStudent))
	assert.Equal(t, ViewTracking, LandingView(RoleStallOwner))
	assert.Equal(t, ViewReports, LandingView(RoleAdmin))
}

func TestAppState(t *testing.T) {
	s := NewAppState(DefaultAdminEmail)
	assert.Equal(t, ViewHome, s.CurrentView)
	assert.Equal(t, RoleGuest, s.Role)

	t.Run("LoginRoutesByRole", func(t *testing.T) {
		role := s.Login("owner@adnu.edu.ph")
		assert.Equal(t, RoleStallOwner, role)
		assert.Equal(t, ViewTracking, s.CurrentView)
	})

	t.Run("NavigateAllowed", func(t *testing.T) {
		require.NoError(t, s.Navigate(ViewManage))
		assert.Equal(t, ViewManage, s.CurrentView)
	})

	t.Run("NavigateForbidden", func(t *testing.T) {
		err := s.Navigate(ViewReports)
		assert.ErrorIs(t, err, ErrViewForbidden)
		assert.Equal(t, ViewManage, s.CurrentView, "failed navigation keeps the current view")
	})

	t.Run("Logout", func(t *testing.T) {
		s.Logout()
		assert.Equal(t, RoleGuest, s.Role)
		assert.Equal(t, ViewHome, s.CurrentView)
	})
}
