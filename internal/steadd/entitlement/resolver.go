// Package entitlement decides which registered apps a workspace can reach.
package entitlement

import (
	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/registry"
)

// Resolver maps a workspace's entitlement set to the apps it unlocks. It is
// a pure function over the frozen registry and its input, so two calls with
// the same inputs always return identical, identically ordered output.
type Resolver struct {
	reg *registry.Registry
}

// NewResolver creates a resolver over a frozen registry.
func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve returns every published app whose entitlement key is granted by
// the set, in registration order. An elevated set unlocks every published
// app regardless of billing; it never exposes draft or deprecated apps.
// An empty set resolves to an empty sequence, not an error.
func (r *Resolver) Resolve(set models.EntitlementSet) []models.AppDefinition {
	var unlocked []models.AppDefinition
	for _, def := range r.reg.ListPublished() {
		if set.Elevated || set.Has(def.EntitlementKey) {
			unlocked = append(unlocked, def)
		}
	}
	return unlocked
}
