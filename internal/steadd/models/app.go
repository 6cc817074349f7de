package models

// AppStatus is the publication status of an add-on app.
type AppStatus string

const (
	AppStatusDraft      AppStatus = "draft"
	AppStatusPublished  AppStatus = "published"
	AppStatusDeprecated AppStatus = "deprecated"
)

// IsValid checks if the app status is a known value
func (s AppStatus) IsValid() bool {
	switch s {
	case AppStatusDraft, AppStatusPublished, AppStatusDeprecated:
		return true
	}
	return false
}

// AppDefinition describes one installable add-on app. Definitions are
// validated and frozen into the registry at process start; after that they
// are read-only for the lifetime of the process.
type AppDefinition struct {
	// Key identifies the app everywhere: route namespace, table prefix,
	// marketplace cross-reference. Lowercase alphanumeric with hyphens,
	// unique across the registry, stable forever.
	Key         string `json:"key" yaml:"key" validate:"required,app_key"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Version is a strict three-part semantic version.
	Version string `json:"version" yaml:"version" validate:"required,semver"`

	// EntitlementKey names the billing feature flag that unlocks the app.
	// Legacy apps use bare names, newer ones "apps.<key>"; either is fine.
	EntitlementKey string `json:"entitlementKey" yaml:"entitlementKey" validate:"required"`

	// Status gates navigation exposure: only published apps are ever
	// surfaced to workspaces, entitled or not.
	Status AppStatus `json:"status" yaml:"status" validate:"required,oneof=draft published deprecated"`

	// Nav lists the navigation items this app contributes, in order.
	Nav []NavItem `json:"nav,omitempty" yaml:"nav,omitempty" validate:"dive"`

	// Docs points at documentation slugs resolved by the docs store.
	Docs DocRefs `json:"docs,omitempty" yaml:"docs,omitempty"`

	// Marketplace is set when the app is also listed as a purchasable
	// catalog item.
	Marketplace *MarketplaceMeta `json:"marketplace,omitempty" yaml:"marketplace,omitempty"`

	// Mount points, opaque to the engine.
	APIBasePath string `json:"apiBasePath,omitempty" yaml:"apiBasePath,omitempty"`
	UIBasePath  string `json:"uiBasePath,omitempty" yaml:"uiBasePath,omitempty"`
}

// NavItem is a single navigation entry contributed by an app.
type NavItem struct {
	Label string `json:"label" yaml:"label" validate:"required"`
	Path  string `json:"path" yaml:"path" validate:"required"`
	Icon  string `json:"icon,omitempty" yaml:"icon,omitempty"`
	Badge string `json:"badge,omitempty" yaml:"badge,omitempty"`
	// Roles restricts the item to workspace members holding one of the
	// listed roles. Empty means visible to everyone in the workspace.
	Roles []string `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// DocRefs holds documentation slugs for an app.
type DocRefs struct {
	DevSlug      string `json:"devSlug,omitempty" yaml:"devSlug,omitempty"`
	ResourceSlug string `json:"resourceSlug,omitempty" yaml:"resourceSlug,omitempty"`
}

// MarketplaceMeta is listing metadata for apps sold through the marketplace.
type MarketplaceMeta struct {
	Category     string   `json:"category,omitempty" yaml:"category,omitempty"`
	BillingModel string   `json:"billingModel,omitempty" yaml:"billingModel,omitempty"`
	PriceCents   int      `json:"priceCents,omitempty" yaml:"priceCents,omitempty"`
	Features     []string `json:"features,omitempty" yaml:"features,omitempty"`
}
