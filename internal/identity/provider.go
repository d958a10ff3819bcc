package identity

import (
	"context"
	"strings"
)

// AuthProvider verifies credentials and resolves them to an identity.
// Implementations can be swapped without touching the session manager:
// the shipped DemoProvider derives everything from the email string, a
// production provider would check a real credential backend.
type AuthProvider interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
}

// Demo profile values returned for every sign-in until a real user store exists.
const (
	demoParentName  = "Rajesh Kumar"
	demoPartnerName = "Service Provider"
	demoAdminName   = "Administrator"
	demoPhone       = "+91 9876543210"
	demoAddress     = "A-123, Green Park, New Delhi - 110016"
)

// brandTokens maps email substrings to partner service brands, checked in order.
var brandTokens = []struct {
	token string
	svc   ServiceType
}{
	{"carenest", ServiceCareNest},
	{"nutriscan", ServiceNutriScan},
	{"mealaura", ServiceMealAura},
	{"rejuvafit", ServiceRejuvaFit},
	{"blisstouch", ServiceBlissTouch},
}

// DemoProvider authenticates by pattern-matching the email address.
// It never rejects a credential pair.
type DemoProvider struct{}

// NewDemoProvider creates the demonstration auth provider.
func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

// Authenticate derives role and service type from substrings of the email:
// "admin" wins, then a recognized brand token, then "partner" (which falls
// back to CareNest), otherwise the caller is a parent.
func (p *DemoProvider) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	lower := strings.ToLower(email)

	var serviceType ServiceType
	for _, bt := range brandTokens {
		if strings.Contains(lower, bt.token) {
			serviceType = bt.svc
			break
		}
	}
	if serviceType == "" && strings.Contains(lower, "partner") {
		serviceType = ServiceCareNest
	}

	role := RoleParent
	switch {
	case strings.Contains(lower, "admin"):
		role = RoleAdmin
	case strings.Contains(lower, "partner"):
		role = RolePartner
	}

	name := demoParentName
	switch role {
	case RoleAdmin:
		name = demoAdminName
	case RolePartner:
		name = demoPartnerName
	}

	return &Identity{
		Name:        name,
		Email:       email,
		Role:        role,
		Phone:       demoPhone,
		Address:     demoAddress,
		ServiceType: serviceType,
	}, nil
}

var _ AuthProvider = (*DemoProvider)(nil)
