package registry

import "github.com/sitestead/sitestead/internal/steadd/models"

// builtinApps is the catalog bundled with the platform. Order matters: it
// is the order app navigation appears in the sidebar.
var builtinApps = []models.AppDefinition{
	{
		Key:            "crm",
		Name:           "CRM",
		Description:    "Contacts, companies and deal pipelines for your workspace.",
		Version:        "1.4.0",
		EntitlementKey: "crm",
		Status:         models.AppStatusPublished,
		Nav: []models.NavItem{
			{Label: "Contacts", Path: "/apps/crm/contacts", Icon: "users"},
			{Label: "Deals", Path: "/apps/crm/deals", Icon: "briefcase"},
		},
		Docs: models.DocRefs{
			DevSlug:      "crm-api",
			ResourceSlug: "crm-getting-started",
		},
		Marketplace: &models.MarketplaceMeta{
			Category:     "sales",
			BillingModel: "subscription",
			PriceCents:   1900,
			Features:     []string{"contacts", "pipelines", "import"},
		},
		APIBasePath: "/api/apps/crm",
		UIBasePath:  "/apps/crm",
	},
	{
		Key:            "tickets",
		Name:           "Tickets",
		Description:    "Customer support inbox with assignment and SLA tracking.",
		Version:        "2.1.3",
		EntitlementKey: "apps.tickets",
		Status:         models.AppStatusPublished,
		Nav: []models.NavItem{
			{Label: "Inbox", Path: "/apps/tickets/inbox", Icon: "inbox", Badge: "open"},
			{Label: "Reports", Path: "/apps/tickets/reports", Icon: "chart", Roles: []string{"admin"}},
		},
		Docs: models.DocRefs{
			DevSlug:      "tickets-api",
			ResourceSlug: "tickets-guide",
		},
		Marketplace: &models.MarketplaceMeta{
			Category:     "support",
			BillingModel: "subscription",
			PriceCents:   900,
			Features:     []string{"inbox", "sla", "reports"},
		},
		APIBasePath: "/api/apps/tickets",
		UIBasePath:  "/apps/tickets",
	},
	{
		// Not yet announced; kept draft so it never reaches a workspace.
		Key:            "billing-pro",
		Name:           "Billing Pro",
		Description:    "Invoicing and tax handling beyond the built-in billing.",
		Version:        "0.3.0",
		EntitlementKey: "apps.billing-pro",
		Status:         models.AppStatusDraft,
		Nav: []models.NavItem{
			{Label: "Invoices", Path: "/apps/billing-pro/invoices", Icon: "invoice"},
		},
		APIBasePath: "/api/apps/billing-pro",
		UIBasePath:  "/apps/billing-pro",
	},
}

// builtinItems lists the marketplace entries sold alongside the bundled
// apps plus standalone catalog items.
var builtinItems = []models.MarketplaceItem{
	{
		ID:                 "crm",
		Name:               "CRM",
		Description:        "Contacts, companies and deal pipelines.",
		AppKey:             "crm",
		MinPlatformVersion: "1.0.0",
		DocSlug:            "crm-getting-started",
		Category:           "sales",
		PriceCents:         1900,
	},
	{
		ID:                 "tickets",
		Name:               "Tickets",
		Description:        "Customer support inbox.",
		AppKey:             "tickets",
		MinPlatformVersion: "1.2.0",
		DocSlug:            "tickets-guide",
		Category:           "support",
		PriceCents:         900,
	},
	{
		ID:          "starter-themes",
		Name:        "Starter Theme Pack",
		Description: "Ten polished site themes for new workspaces.",
		DocSlug:     "themes-overview",
		Category:    "design",
	},
}

// Builtin returns a builder preloaded with the bundled catalog.
func Builtin() (*Builder, error) {
	b := NewBuilder()
	for _, def := range builtinApps {
		if err := b.RegisterApp(def); err != nil {
			return nil, err
		}
	}
	for _, item := range builtinItems {
		if err := b.RegisterItem(item); err != nil {
			return nil, err
		}
	}
	return b, nil
}
