package navigation

import (
	"github.com/parentsluxuria/wellness-platform/internal/appointments"
	"github.com/parentsluxuria/wellness-platform/internal/catalog"
	"github.com/parentsluxuria/wellness-platform/internal/identity"
)

// PageKind identifies the single page view a route resolves to.
type PageKind string

const (
	// PageNone is rendered when a route's guard is unmet: a guarded
	// conditional, never an error.
	PageNone PageKind = "none"

	PageLanding          PageKind = "landing"
	PageLogin            PageKind = "login"
	PageRegister         PageKind = "register"
	PageForgotPassword   PageKind = "forgot-password"
	PageUserDashboard    PageKind = "user-dashboard"
	PagePartnerDashboard PageKind = "partner-dashboard"
	PageAdminDashboard   PageKind = "admin-dashboard"
	PageServiceList      PageKind = "service-list"
	PageBookingFlow      PageKind = "booking-flow"
	PageBookingSuccess   PageKind = "booking-success"
	PageAppointments     PageKind = "appointments"
	PageReports          PageKind = "reports"
	PageEvents           PageKind = "events"
	PageProfile          PageKind = "profile"
	PageAbout            PageKind = "about"
	PageServices         PageKind = "services"
	PageContact          PageKind = "contact"
	PagePrivacy          PageKind = "privacy"
	PageTerms            PageKind = "terms"
	PageRefund           PageKind = "refund"
)

// Page is the resolved view for a session: exactly one kind, plus the payload
// that kind carries. ResetScroll signals the client to scroll to the top, set
// once per transition.
type Page struct {
	Kind        PageKind `json:"kind"`
	ResetScroll bool     `json:"resetScroll"`

	// Payload fields; at most one group is set depending on Kind.
	ServiceType identity.ServiceType      `json:"serviceType,omitempty"`
	Module      string                    `json:"module,omitempty"`
	Service     *catalog.Service          `json:"service,omitempty"`
	Booking     *appointments.Appointment `json:"booking,omitempty"`
}

// Resolve maps navigation state plus the session's identity to exactly one
// page. Routes whose guards are unmet resolve to PageNone.
func Resolve(st State, id *identity.Identity) Page {
	page := Page{Kind: PageNone, ResetScroll: st.scrollPending}

	switch st.Route {
	case RouteLanding:
		page.Kind = PageLanding
	case RouteLogin:
		page.Kind = PageLogin
	case RouteRegister:
		page.Kind = PageRegister
	case RouteForgotPassword:
		page.Kind = PageForgotPassword

	case RouteDashboard:
		switch {
		case id == nil:
			// guard: dashboard needs a signed-in identity
		case id.Role == identity.RoleParent:
			page.Kind = PageUserDashboard
		case id.Role == identity.RolePartner:
			page.Kind = PagePartnerDashboard
			page.ServiceType = id.ServiceType
			if page.ServiceType == "" {
				page.ServiceType = identity.ServiceCareNest
			}
		}
		// admins reach their console only through the admin route

	case RouteAdmin:
		if id != nil && id.Role == identity.RoleAdmin {
			page.Kind = PageAdminDashboard
		}

	case RouteServiceList:
		page.Kind = PageServiceList
		page.Module = st.SelectedModule

	case RouteBooking:
		if st.SelectedService != nil {
			page.Kind = PageBookingFlow
			page.Service = st.SelectedService
		}

	case RouteBookingSuccess:
		if st.LastBooking != nil {
			page.Kind = PageBookingSuccess
			page.Booking = st.LastBooking
		}

	case RouteAppointments:
		if id != nil && id.Role == identity.RoleParent {
			page.Kind = PageAppointments
		}

	case RouteReports:
		page.Kind = PageReports
	case RouteEvents:
		page.Kind = PageEvents

	case RouteProfile:
		if id != nil {
			page.Kind = PageProfile
		}

	case RouteAbout:
		page.Kind = PageAbout
	case RouteServices:
		page.Kind = PageServices
	case RouteContact:
		page.Kind = PageContact
	case RoutePrivacy:
		page.Kind = PagePrivacy
	case RouteTerms:
		page.Kind = PageTerms
	case RouteRefund:
		page.Kind = PageRefund
	}

	return page
}
