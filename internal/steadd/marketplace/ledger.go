// Package marketplace tracks per-workspace enablement of catalog items and
// gates installation on platform-version compatibility.
package marketplace

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/registry"
	"github.com/sitestead/sitestead/internal/steadd/semver"
	"github.com/sitestead/sitestead/internal/steadd/store"
)

// ErrItemNotFound is returned when an item id is not in the catalog.
var ErrItemNotFound = fmt.Errorf("marketplace item not found")

// IncompatibleVersionError is returned, not panicked, when an install is
// blocked by the item's minimum platform version. Callers present Reason
// to the operator and may retry after a platform upgrade.
type IncompatibleVersionError struct {
	ItemID          string
	RequiredMin     string
	PlatformVersion string
	Reason          string
}

// Error implements the error interface
func (e *IncompatibleVersionError) Error() string {
	return fmt.Sprintf("cannot install %s: %s", e.ItemID, e.Reason)
}

// Ledger is the install ledger service: catalog lookup, compatibility
// gating and persistence of install state.
type Ledger struct {
	reg             *registry.Registry
	installs        *store.InstallStore
	platformVersion string
	log             *logrus.Logger
}

// NewLedger creates an install ledger for the given platform version.
func NewLedger(reg *registry.Registry, installs *store.InstallStore, platformVersion string, log *logrus.Logger) *Ledger {
	return &Ledger{
		reg:             reg,
		installs:        installs,
		platformVersion: platformVersion,
		log:             log,
	}
}

// Installs exposes the backing install store.
func (l *Ledger) Installs() *store.InstallStore {
	return l.installs
}

// Items returns the catalog in registration order.
func (l *Ledger) Items() []models.MarketplaceItem {
	return l.reg.Items()
}

// Install creates or reactivates an install record for a workspace after
// checking the item's minimum platform version against the running
// platform. Compatibility is enforced only here; an already-installed item
// can be toggled freely afterwards.
func (l *Ledger) Install(workspaceID, itemID string) (*models.Install, error) {
	item, ok := l.reg.ItemByID(itemID)
	if !ok {
		return nil, ErrItemNotFound
	}

	compat := semver.CheckCompatibility(item.MinPlatformVersion, l.platformVersion)
	if !compat.Compatible {
		return nil, &IncompatibleVersionError{
			ItemID:          itemID,
			RequiredMin:     item.MinPlatformVersion,
			PlatformVersion: l.platformVersion,
			Reason:          compat.Reason,
		}
	}

	install, err := l.installs.Upsert(workspaceID, itemID)
	if err != nil {
		return nil, err
	}

	l.log.WithFields(logrus.Fields{
		"workspace": workspaceID,
		"item":      itemID,
	}).Info("marketplace item installed")

	return install, nil
}

// SetEnabled toggles an install without re-checking compatibility.
func (l *Ledger) SetEnabled(workspaceID, itemID string, enabled bool) error {
	if _, ok := l.reg.ItemByID(itemID); !ok {
		return ErrItemNotFound
	}

	if err := l.installs.SetEnabled(workspaceID, itemID, enabled); err != nil {
		return err
	}

	l.log.WithFields(logrus.Fields{
		"workspace": workspaceID,
		"item":      itemID,
		"enabled":   enabled,
	}).Info("marketplace install toggled")

	return nil
}

// ListInstalls returns a workspace's install records.
func (l *Ledger) ListInstalls(workspaceID string) ([]models.Install, error) {
	return l.installs.ListByWorkspace(workspaceID)
}

// ListEnabledItemIDs returns the set of item ids enabled for a workspace.
func (l *Ledger) ListEnabledItemIDs(workspaceID string) (map[string]bool, error) {
	return l.installs.ListEnabledItemIDs(workspaceID)
}

// VisibleDocSlugs returns the doc slugs of catalog items the workspace has
// installed and enabled, in catalog order. The docs surface shows help
// content only for add-ons the workspace actually runs.
func (l *Ledger) VisibleDocSlugs(workspaceID string) ([]string, error) {
	enabled, err := l.installs.ListEnabledItemIDs(workspaceID)
	if err != nil {
		return nil, err
	}

	slugs := []string{}
	for _, item := range l.reg.Items() {
		if item.DocSlug == "" {
			continue
		}
		if enabled[item.ID] {
			slugs = append(slugs, item.DocSlug)
		}
	}
	return slugs, nil
}
