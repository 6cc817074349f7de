package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestead/sitestead/internal/steadd/entitlement"
	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/registry"
)

func testComposer(t *testing.T) *Composer {
	t.Helper()

	b := registry.NewBuilder()
	require.NoError(t, b.RegisterApp(models.AppDefinition{
		Key: "crm", Name: "CRM", Version: "1.0.0", EntitlementKey: "crm",
		Status: models.AppStatusPublished,
		Nav: []models.NavItem{
			{Label: "Contacts", Path: "/apps/crm/contacts", Icon: "users"},
			{Label: "Deals", Path: "/apps/crm/deals", Icon: "briefcase"},
		},
	}))
	require.NoError(t, b.RegisterApp(models.AppDefinition{
		Key: "tickets", Name: "Tickets", Version: "1.0.0", EntitlementKey: "apps.tickets",
		Status: models.AppStatusPublished,
		Nav: []models.NavItem{
			{Label: "Inbox", Path: "/apps/tickets/inbox", Icon: "mystery-glyph", Badge: "open"},
		},
	}))
	require.NoError(t, b.RegisterApp(models.AppDefinition{
		Key: "quiet", Name: "Quiet", Version: "1.0.0", EntitlementKey: "quiet",
		Status: models.AppStatusPublished,
	}))
	require.NoError(t, b.RegisterApp(models.AppDefinition{
		Key: "billing-pro", Name: "Billing Pro", Version: "0.1.0", EntitlementKey: "apps.billing-pro",
		Status: models.AppStatusDraft,
		Nav: []models.NavItem{
			{Label: "Invoices", Path: "/apps/billing-pro/invoices", Icon: "invoice"},
		},
	}))

	reg, err := b.Build()
	require.NoError(t, err)
	return NewComposer(entitlement.NewResolver(reg))
}

func titles(items []Item) []string {
	var out []string
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestComposer_SectionOrder(t *testing.T) {
	c := testComposer(t)

	items := c.Compose(models.EntitlementSet{Features: []string{"crm", "apps.tickets", "quiet"}}, "")

	assert.Equal(t, []string{
		"Home", "Pages", "Collections", "Media",
		"Marketplace", "Docs",
		"Contacts", "Deals", "Inbox",
		"Settings",
	}, titles(items))
}

func TestComposer_EndToEnd(t *testing.T) {
	// Workspace entitled to crm only: exactly the two crm items appear,
	// nothing from the draft billing-pro app.
	c := testComposer(t)

	items := c.Compose(models.EntitlementSet{Features: []string{"crm"}}, "")

	var appItems []Item
	for _, it := range items {
		if it.AppKey != "" {
			appItems = append(appItems, it)
		}
	}

	require.Len(t, appItems, 2)
	assert.Equal(t, "Contacts", appItems[0].Title)
	assert.Equal(t, "/apps/crm/contacts", appItems[0].Href)
	assert.Equal(t, "crm", appItems[0].AppKey)
	assert.Equal(t, "Deals", appItems[1].Title)
}

func TestComposer_NoEntitlements(t *testing.T) {
	c := testComposer(t)

	items := c.Compose(models.EntitlementSet{}, "")

	for _, it := range items {
		assert.Empty(t, it.AppKey, "only static items expected, got %q", it.Title)
	}
}

func TestComposer_UnknownIconFallsBack(t *testing.T) {
	c := testComposer(t)

	items := c.Compose(models.EntitlementSet{Features: []string{"apps.tickets"}}, "")

	var inbox *Item
	for i := range items {
		if items[i].Title == "Inbox" {
			inbox = &items[i]
		}
	}
	require.NotNil(t, inbox)
	assert.Equal(t, FallbackGlyph, inbox.Icon)
	assert.Equal(t, "open", inbox.Badge)
}

func TestComposer_ActiveMatching(t *testing.T) {
	c := testComposer(t)
	set := models.EntitlementSet{Features: []string{"crm"}}

	tests := []struct {
		name        string
		currentPath string
		wantActive  string
	}{
		{"root matches exactly", "/", "Home"},
		{"root does not prefix-match", "/pages", "Pages"},
		{"nested prefix match", "/pages/about/edit", "Pages"},
		{"app item match", "/apps/crm/deals/42", "Deals"},
		{"no match", "/somewhere-else", ""},
		{"empty path", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := c.Compose(set, tt.currentPath)

			var active []string
			for _, it := range items {
				if it.Active {
					active = append(active, it.Title)
				}
			}

			if tt.wantActive == "" {
				assert.Empty(t, active)
			} else {
				assert.Equal(t, []string{tt.wantActive}, active)
			}
		})
	}
}

func TestComposer_Deterministic(t *testing.T) {
	c := testComposer(t)
	set := models.EntitlementSet{Features: []string{"crm", "apps.tickets"}}

	first := c.Compose(set, "/apps/crm/contacts")
	second := c.Compose(set, "/apps/crm/contacts")

	assert.Equal(t, first, second)
}

func TestResolveIcon(t *testing.T) {
	assert.Equal(t, "users", ResolveIcon("users"))
	assert.Equal(t, FallbackGlyph, ResolveIcon("no-such-icon"))
	assert.Equal(t, FallbackGlyph, ResolveIcon(""))
}
