package navigation

import "errors"

// ErrUnknownRoute indicates a route value outside the fixed set.
var ErrUnknownRoute = errors.New("navigation: unknown route")

// Route identifies which top-level page a session is on. The set is closed;
// every transition targets one of these literal values.
type Route string

const (
	RouteLanding        Route = "landing"
	RouteLogin          Route = "login"
	RouteRegister       Route = "register"
	RouteForgotPassword Route = "forgot-password"
	RouteDashboard      Route = "dashboard"
	RouteAdmin          Route = "admin"
	RouteServiceList    Route = "service-list"
	RouteBooking        Route = "booking"
	RouteBookingSuccess Route = "booking-success"
	RouteAppointments   Route = "appointments"
	RouteReports        Route = "reports"
	RouteEvents         Route = "events"
	RouteProfile        Route = "profile"
	RouteAbout          Route = "about"
	RouteServices       Route = "services"
	RouteContact        Route = "contact"
	RoutePrivacy        Route = "privacy"
	RouteTerms          Route = "terms"
	RouteRefund         Route = "refund"
)

var allRoutes = []Route{
	RouteLanding, RouteLogin, RouteRegister, RouteForgotPassword,
	RouteDashboard, RouteAdmin, RouteServiceList, RouteBooking,
	RouteBookingSuccess, RouteAppointments, RouteReports, RouteEvents,
	RouteProfile, RouteAbout, RouteServices, RouteContact,
	RoutePrivacy, RouteTerms, RouteRefund,
}

// AllRoutes returns the full route set.
func AllRoutes() []Route {
	out := make([]Route, len(allRoutes))
	copy(out, allRoutes)
	return out
}

// Valid reports whether r is one of the enumerated routes.
func (r Route) Valid() bool {
	for _, known := range allRoutes {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRoute validates a raw route value.
func ParseRoute(s string) (Route, error) {
	r := Route(s)
	if !r.Valid() {
		return "", ErrUnknownRoute
	}
	return r, nil
}
