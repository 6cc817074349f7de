package models

import "time"

// MarketplaceItem is a purchasable catalog entry. Items optionally
// cross-reference an AppDefinition through AppKey; standalone items
// (themes, template packs) leave it empty.
type MarketplaceItem struct {
	ID          string `json:"id" yaml:"id" validate:"required,app_key"`
	Name        string `json:"name" yaml:"name" validate:"required"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// AppKey links the item to a registered app definition.
	AppKey string `json:"appKey,omitempty" yaml:"appKey,omitempty"`

	// MinPlatformVersion gates installation. Unset or unparseable values
	// never block an install.
	MinPlatformVersion string `json:"minPlatformVersion,omitempty" yaml:"minPlatformVersion,omitempty"`

	// DocSlug selects which help content is surfaced once the item is
	// installed and enabled.
	DocSlug string `json:"docSlug,omitempty" yaml:"docSlug,omitempty"`

	Category   string `json:"category,omitempty" yaml:"category,omitempty"`
	PriceCents int    `json:"priceCents,omitempty" yaml:"priceCents,omitempty"`
}

// Install is the per-workspace record of a marketplace item. Rows are
// created on install, toggled by enable/disable, and never deleted; a
// disabled row is retained for audit and cheap reinstall.
type Install struct {
	ID          string    `json:"id"`
	WorkspaceID string    `json:"workspaceId"`
	ItemID      string    `json:"itemId"`
	Enabled     bool      `json:"enabled"`
	InstalledAt time.Time `json:"installedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InstallRequest is the request body for installing a marketplace item.
type InstallRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// SetEnabledRequest is the request body for toggling an install.
type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// ListInstallsResponse is the response for listing workspace installs.
type ListInstallsResponse struct {
	Installs []Install `json:"installs"`
	Total    int       `json:"total"`
}
