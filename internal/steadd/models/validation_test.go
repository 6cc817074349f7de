package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDefinition() AppDefinition {
	return AppDefinition{
		Key:            "crm",
		Name:           "CRM",
		Version:        "1.0.0",
		EntitlementKey: "crm",
		Status:         AppStatusPublished,
		Nav: []NavItem{
			{Label: "Contacts", Path: "/apps/crm/contacts", Icon: "users"},
		},
	}
}

func TestValidateAppDefinition(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*AppDefinition)
		wantError bool
	}{
		{"valid definition", func(d *AppDefinition) {}, false},
		{"hyphenated key", func(d *AppDefinition) { d.Key = "billing-pro" }, false},
		{"uppercase key", func(d *AppDefinition) { d.Key = "Bad_Key!" }, true},
		{"leading hyphen", func(d *AppDefinition) { d.Key = "-crm" }, true},
		{"empty key", func(d *AppDefinition) { d.Key = "" }, true},
		{"two part version", func(d *AppDefinition) { d.Version = "1.0" }, true},
		{"prerelease version", func(d *AppDefinition) { d.Version = "1.0.0-beta" }, true},
		{"empty entitlement key", func(d *AppDefinition) { d.EntitlementKey = "" }, true},
		{"unknown status", func(d *AppDefinition) { d.Status = AppStatus("retired") }, true},
		{"nav item without path", func(d *AppDefinition) { d.Nav[0].Path = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validDefinition()
			tt.mutate(&def)

			err := ValidateAppDefinition(&def)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMarketplaceItem(t *testing.T) {
	tests := []struct {
		name      string
		item      MarketplaceItem
		wantError bool
	}{
		{
			name: "valid item",
			item: MarketplaceItem{ID: "crm", Name: "CRM", MinPlatformVersion: "1.0.0"},
		},
		{
			name: "malformed min version is allowed",
			item: MarketplaceItem{ID: "crm", Name: "CRM", MinPlatformVersion: "latest"},
		},
		{
			name:      "bad id",
			item:      MarketplaceItem{ID: "CRM!", Name: "CRM"},
			wantError: true,
		},
		{
			name:      "missing name",
			item:      MarketplaceItem{ID: "crm"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMarketplaceItem(&tt.item)
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppStatus_IsValid(t *testing.T) {
	assert.True(t, AppStatusDraft.IsValid())
	assert.True(t, AppStatusPublished.IsValid())
	assert.True(t, AppStatusDeprecated.IsValid())
	assert.False(t, AppStatus("retired").IsValid())
	assert.False(t, AppStatus("").IsValid())
}

func TestEntitlementSet_Has(t *testing.T) {
	set := EntitlementSet{Features: []string{"crm", "apps.tickets"}}

	assert.True(t, set.Has("crm"))
	assert.True(t, set.Has("apps.tickets"))
	assert.False(t, set.Has("billing-pro"))
	assert.False(t, EntitlementSet{}.Has("crm"))
}
