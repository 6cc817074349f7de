package entitlement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/registry"
)

func buildRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	b := registry.NewBuilder()
	defs := []models.AppDefinition{
		{Key: "crm", Name: "CRM", Version: "1.0.0", EntitlementKey: "crm", Status: models.AppStatusPublished},
		{Key: "tickets", Name: "Tickets", Version: "1.0.0", EntitlementKey: "apps.tickets", Status: models.AppStatusPublished},
		{Key: "billing-pro", Name: "Billing Pro", Version: "0.1.0", EntitlementKey: "apps.billing-pro", Status: models.AppStatusDraft},
		{Key: "legacy-forms", Name: "Forms", Version: "3.0.0", EntitlementKey: "forms", Status: models.AppStatusDeprecated},
	}
	for _, def := range defs {
		require.NoError(t, b.RegisterApp(def))
	}

	reg, err := b.Build()
	require.NoError(t, err)
	return reg
}

func keys(defs []models.AppDefinition) []string {
	var out []string
	for _, d := range defs {
		out = append(out, d.Key)
	}
	return out
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(buildRegistry(t))

	tests := []struct {
		name string
		set  models.EntitlementSet
		want []string
	}{
		{"empty set", models.EntitlementSet{}, nil},
		{"empty features", models.EntitlementSet{Features: []string{}}, nil},
		{"single grant", models.EntitlementSet{Features: []string{"crm"}}, []string{"crm"}},
		{"legacy key name", models.EntitlementSet{Features: []string{"apps.tickets"}}, []string{"tickets"}},
		{"grant for draft app resolves nothing", models.EntitlementSet{Features: []string{"apps.billing-pro"}}, nil},
		{"grant for deprecated app resolves nothing", models.EntitlementSet{Features: []string{"forms"}}, nil},
		{"multiple grants keep registration order", models.EntitlementSet{Features: []string{"apps.tickets", "crm"}}, []string{"crm", "tickets"}},
		{"elevated unlocks published only", models.EntitlementSet{Elevated: true}, []string{"crm", "tickets"}},
		{"elevated ignores features", models.EntitlementSet{Elevated: true, Features: []string{"forms"}}, []string{"crm", "tickets"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keys(r.Resolve(tt.set)))
		})
	}
}

func TestResolver_Deterministic(t *testing.T) {
	r := NewResolver(buildRegistry(t))
	set := models.EntitlementSet{Features: []string{"crm", "apps.tickets"}}

	first := r.Resolve(set)
	second := r.Resolve(set)

	assert.Equal(t, first, second)
}
