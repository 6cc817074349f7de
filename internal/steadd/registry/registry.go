// Package registry holds the fixed catalog of add-on app definitions and
// marketplace items for the process lifetime. A Builder collects and
// validates descriptors at startup; Build hands ownership to an immutable
// Registry that is safe for concurrent readers without locking. There is no
// mutation after Build: changing the catalog means redeploying with updated
// descriptors.
package registry

import (
	"fmt"

	"github.com/sitestead/sitestead/internal/steadd/models"
)

// ConfigurationError is a startup-fatal catalog error: duplicate key,
// malformed descriptor, dangling cross-reference. The process must not
// start with an invalid registry, so these are never recovered at runtime.
type ConfigurationError struct {
	msg string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return e.msg
}

func configErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// Builder collects app definitions and marketplace items before the
// registry is frozen.
type Builder struct {
	apps    []models.AppDefinition
	appKeys map[string]bool
	items   []models.MarketplaceItem
	itemIDs map[string]bool
}

// NewBuilder creates an empty registry builder.
func NewBuilder() *Builder {
	return &Builder{
		appKeys: make(map[string]bool),
		itemIDs: make(map[string]bool),
	}
}

// RegisterApp validates and adds an app definition. Registration order is
// preserved through to ListPublished, so callers control navigation order
// by registration order.
func (b *Builder) RegisterApp(def models.AppDefinition) error {
	if err := models.ValidateAppDefinition(&def); err != nil {
		return configErrorf("app %q: %v", def.Key, err)
	}
	if b.appKeys[def.Key] {
		return configErrorf("app %q: duplicate key", def.Key)
	}

	b.appKeys[def.Key] = true
	b.apps = append(b.apps, def)
	return nil
}

// RegisterItem validates and adds a marketplace catalog item.
func (b *Builder) RegisterItem(item models.MarketplaceItem) error {
	if err := models.ValidateMarketplaceItem(&item); err != nil {
		return configErrorf("marketplace item %q: %v", item.ID, err)
	}
	if b.itemIDs[item.ID] {
		return configErrorf("marketplace item %q: duplicate id", item.ID)
	}

	b.itemIDs[item.ID] = true
	b.items = append(b.items, item)
	return nil
}

// Build freezes the builder into an immutable Registry. Marketplace items
// referencing an app key must resolve against the registered apps; a
// dangling reference is a configuration error.
func (b *Builder) Build() (*Registry, error) {
	for _, item := range b.items {
		if item.AppKey != "" && !b.appKeys[item.AppKey] {
			return nil, configErrorf("marketplace item %q: references unknown app %q", item.ID, item.AppKey)
		}
	}

	r := &Registry{
		apps:     b.apps,
		byKey:    make(map[string]int, len(b.apps)),
		items:    b.items,
		itemByID: make(map[string]int, len(b.items)),
	}
	for i, def := range r.apps {
		r.byKey[def.Key] = i
	}
	for i, item := range r.items {
		r.itemByID[item.ID] = i
	}
	return r, nil
}

// Registry is the frozen catalog. All accessors return copies of the
// registered values; callers must treat nested slices as read-only.
type Registry struct {
	apps     []models.AppDefinition
	byKey    map[string]int
	items    []models.MarketplaceItem
	itemByID map[string]int
}

// GetByKey looks up an app definition by key.
func (r *Registry) GetByKey(key string) (models.AppDefinition, bool) {
	i, ok := r.byKey[key]
	if !ok {
		return models.AppDefinition{}, false
	}
	return r.apps[i], true
}

// ListPublished returns published apps in registration order. Navigation
// composition depends on this order being stable.
func (r *Registry) ListPublished() []models.AppDefinition {
	var published []models.AppDefinition
	for _, def := range r.apps {
		if def.Status == models.AppStatusPublished {
			published = append(published, def)
		}
	}
	return published
}

// ListAll returns every registered app regardless of status, in
// registration order. Used by operator tooling only, never by
// workspace-facing surfaces.
func (r *Registry) ListAll() []models.AppDefinition {
	out := make([]models.AppDefinition, len(r.apps))
	copy(out, r.apps)
	return out
}

// Items returns every marketplace catalog item in registration order.
func (r *Registry) Items() []models.MarketplaceItem {
	out := make([]models.MarketplaceItem, len(r.items))
	copy(out, r.items)
	return out
}

// ItemByID looks up a marketplace item by id.
func (r *Registry) ItemByID(id string) (models.MarketplaceItem, bool) {
	i, ok := r.itemByID[id]
	if !ok {
		return models.MarketplaceItem{}, false
	}
	return r.items[i], true
}
