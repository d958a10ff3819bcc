package identity

// Role classifies the signed-in actor.
type Role string

const (
	RoleParent  Role = "parent"
	RolePartner Role = "partner"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleParent, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// ServiceType identifies which service brand a partner operates under.
type ServiceType string

const (
	ServiceCareNest   ServiceType = "CareNest"
	ServiceNutriScan  ServiceType = "NutriScan"
	ServiceMealAura   ServiceType = "MealAura"
	ServiceRejuvaFit  ServiceType = "RejuvaFit"
	ServiceBlissTouch ServiceType = "BlissTouch"
)

// Identity is the in-memory representation of the signed-in actor.
// It lives only for the duration of the session.
type Identity struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        Role        `json:"role"`
	Phone       string      `json:"phone,omitempty"`
	Address     string      `json:"address,omitempty"`
	ServiceType ServiceType `json:"service_type,omitempty"`
}
