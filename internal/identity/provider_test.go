package identity

import (
	"context"
	"testing"
)

func TestDemoProviderDerivation(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		wantRole    Role
		wantService ServiceType
	}{
		{"admin email", "admin@demo.com", RoleAdmin, ""},
		{"generic partner falls back to CareNest", "partner@example.com", RolePartner, ServiceCareNest},
		{"carenest partner", "carenest@partner.com", RolePartner, ServiceCareNest},
		{"nutriscan partner", "nutriscan@partner.com", RolePartner, ServiceNutriScan},
		{"mealaura partner", "mealaura@partner.com", RolePartner, ServiceMealAura},
		{"rejuvafit partner", "rejuvafit@partner.com", RolePartner, ServiceRejuvaFit},
		{"blisstouch partner", "blisstouch@partner.com", RolePartner, ServiceBlissTouch},
		{"plain parent", "rajesh@example.com", RoleParent, ""},
		{"brand token without partner keeps parent role", "carenest.fan@example.com", RoleParent, ServiceCareNest},
		{"admin beats partner", "admin.partner@demo.com", RoleAdmin, ServiceCareNest},
		{"case insensitive", "CareNest@Partner.com", RolePartner, ServiceCareNest},
	}

	provider := NewDemoProvider()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := provider.Authenticate(ctx, tt.email, "any-password")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id.Role != tt.wantRole {
				t.Errorf("role = %s, want %s", id.Role, tt.wantRole)
			}
			if id.ServiceType != tt.wantService {
				t.Errorf("serviceType = %s, want %s", id.ServiceType, tt.wantService)
			}
			if id.Email != tt.email {
				t.Errorf("email = %s, want %s", id.Email, tt.email)
			}
		})
	}
}

func TestDemoProviderNeverRejects(t *testing.T) {
	provider := NewDemoProvider()

	id, err := provider.Authenticate(context.Background(), "anyone@example.com", "")
	if err != nil {
		t.Fatalf("demo provider must not reject: %v", err)
	}
	if id.Name != "Rajesh Kumar" {
		t.Errorf("expected demo parent name, got %s", id.Name)
	}
	if id.Phone == "" || id.Address == "" {
		t.Error("expected demo profile fields to be populated")
	}
}
