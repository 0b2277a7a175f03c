package user

type View string

const (
	ViewHome  View = "home"
	ViewLogin View = "login"
	ViewAbout View = "about"
	ViewShops View = "shops"

	// customer screens
	ViewMenu         View = "menu"
	ViewOrders       View = "orders"
	ViewConfirmation View = "confirmation"

	// stall operator screens
	ViewTracking View = "tracking"
	ViewManage   View = "manage"

	// admin screens
	ViewReports View = "reports"
	ViewStalls  View = "stalls"
)

// CanAccess is the capability check the navigation layer consults
// instead of comparing role strings inline.
func (r Role) CanAccess(v View) bool {
	switch v {
	case ViewHome, ViewLogin, ViewAbout, ViewShops:
		return true
	case ViewMenu, ViewOrders, ViewConfirmation:
		return r == RoleStudent
	case ViewTracking, ViewManage:
		return r == RoleStallOwner
	case ViewReports, ViewStalls:
		return r == RoleAdmin
	default:
		return false
	}
}

// LandingView is the screen each role lands on right after login.
func LandingView(r Role) View {
	switch r {
	case RoleStallOwner:
		return ViewTracking
	case RoleAdmin:
		return ViewReports
	default:
		return ViewMenu
	}
}
