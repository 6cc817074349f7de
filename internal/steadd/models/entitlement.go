package models

// EntitlementSet is the per-workspace input to app resolution: the feature
// keys granted by the workspace's subscription, or an elevated marker for
// super-admin sessions. Elevation bypasses billing-derived entitlement, not
// publication status.
type EntitlementSet struct {
	Features []string `json:"features"`
	Elevated bool     `json:"elevated,omitempty"`
}

// Has reports whether the set grants the given feature key. Elevation does
// not short-circuit here; callers decide what elevation unlocks.
func (s EntitlementSet) Has(key string) bool {
	for _, f := range s.Features {
		if f == key {
			return true
		}
	}
	return false
}

// SetEntitlementsRequest is the request body used by the billing
// collaborator to sync a workspace's feature set. An empty list is a valid
// sync: it clears every entitlement, as happens on downgrade to a free plan.
type SetEntitlementsRequest struct {
	Features []string `json:"features"`
}

// EntitlementsResponse is the response for reading workspace entitlements.
type EntitlementsResponse struct {
	WorkspaceID string   `json:"workspaceId"`
	Features    []string `json:"features"`
}
