package marketplace

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitestead/sitestead/internal/steadd/db"
	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/registry"
	"github.com/sitestead/sitestead/internal/steadd/store"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testLedger(t *testing.T, platformVersion string) *Ledger {
	t.Helper()

	b := registry.NewBuilder()
	require.NoError(t, b.RegisterApp(models.AppDefinition{
		Key: "crm", Name: "CRM", Version: "1.0.0", EntitlementKey: "crm",
		Status: models.AppStatusPublished,
	}))
	items := []models.MarketplaceItem{
		{ID: "crm", Name: "CRM", AppKey: "crm", MinPlatformVersion: "0.1.0", DocSlug: "crm-guide"},
		{ID: "future-kit", Name: "Future Kit", MinPlatformVersion: "9.9.9", DocSlug: "future-kit"},
		{ID: "odd-pack", Name: "Odd Pack", MinPlatformVersion: "not-a-version"},
		{ID: "plain-pack", Name: "Plain Pack"},
	}
	for _, item := range items {
		require.NoError(t, b.RegisterItem(item))
	}

	reg, err := b.Build()
	require.NoError(t, err)

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return NewLedger(reg, store.NewInstallStore(database.DB), platformVersion, quietLogger())
}

func TestLedger_Install(t *testing.T) {
	l := testLedger(t, "1.0.0")

	install, err := l.Install("ws-1", "crm")
	require.NoError(t, err)
	assert.True(t, install.Enabled)

	_, err = l.Install("ws-1", "ghost")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestLedger_Install_IncompatibleVersion(t *testing.T) {
	l := testLedger(t, "1.0.0")

	_, err := l.Install("ws-1", "future-kit")
	require.Error(t, err)

	var incompatErr *IncompatibleVersionError
	require.ErrorAs(t, err, &incompatErr)
	assert.Equal(t, "9.9.9", incompatErr.RequiredMin)
	assert.Equal(t, "1.0.0", incompatErr.PlatformVersion)
	assert.Contains(t, incompatErr.Reason, "9.9.9")
	assert.Contains(t, incompatErr.Reason, "1.0.0")
}

func TestLedger_Install_FailOpen(t *testing.T) {
	l := testLedger(t, "1.0.0")

	// Unparseable requirement never blocks
	_, err := l.Install("ws-1", "odd-pack")
	assert.NoError(t, err)

	// Missing requirement never blocks
	_, err = l.Install("ws-1", "plain-pack")
	assert.NoError(t, err)
}

func TestLedger_SetEnabled_NoRecheck(t *testing.T) {
	l := testLedger(t, "10.0.0")

	_, err := l.Install("ws-1", "future-kit")
	require.NoError(t, err)

	// Toggling skips the compatibility gate even if the item would no
	// longer pass it on a downgraded platform.
	l.platformVersion = "1.0.0"
	require.NoError(t, l.SetEnabled("ws-1", "future-kit", false))
	require.NoError(t, l.SetEnabled("ws-1", "future-kit", true))

	err = l.SetEnabled("ws-1", "ghost", true)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestLedger_VisibleDocSlugs(t *testing.T) {
	l := testLedger(t, "10.0.0")

	slugs, err := l.VisibleDocSlugs("ws-1")
	require.NoError(t, err)
	assert.Empty(t, slugs)

	_, err = l.Install("ws-1", "crm")
	require.NoError(t, err)
	_, err = l.Install("ws-1", "future-kit")
	require.NoError(t, err)
	_, err = l.Install("ws-1", "odd-pack") // no doc slug
	require.NoError(t, err)

	slugs, err = l.VisibleDocSlugs("ws-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crm-guide", "future-kit"}, slugs)

	require.NoError(t, l.SetEnabled("ws-1", "future-kit", false))

	slugs, err = l.VisibleDocSlugs("ws-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"crm-guide"}, slugs)
}
