// Package nav produces the final ordered navigation structure for a
// workspace request: static platform sections merged with the navigation
// contributed by the workspace's entitled apps.
package nav

import (
	"strings"

	"github.com/sitestead/sitestead/internal/steadd/entitlement"
	"github.com/sitestead/sitestead/internal/steadd/models"
)

// Item is one composed navigation entry. Field names match what the
// sidebar renderer consumes.
type Item struct {
	Title  string `json:"title"`
	Href   string `json:"href"`
	Icon   string `json:"icon"`
	Badge  string `json:"badge,omitempty"`
	AppKey string `json:"appKey,omitempty"`
	Active bool   `json:"active"`
}

// staticEntry is a row in one of the fixed platform sections.
type staticEntry struct {
	title string
	href  string
	icon  string
}

// The static sections flank app navigation in fixed priority order:
// primary, extend, apps, bottom.
var (
	primarySection = []staticEntry{
		{"Home", "/", "home"},
		{"Pages", "/pages", "pages"},
		{"Collections", "/collections", "blocks"},
		{"Media", "/media", "media"},
	}

	extendSection = []staticEntry{
		{"Marketplace", "/marketplace", "store"},
		{"Docs", "/docs", "book"},
	}

	bottomSection = []staticEntry{
		{"Settings", "/settings", "settings"},
	}
)

// Composer builds workspace navigation from the static tables and the
// entitlement resolver.
type Composer struct {
	resolver *entitlement.Resolver
}

// NewComposer creates a navigation composer.
func NewComposer(resolver *entitlement.Resolver) *Composer {
	return &Composer{resolver: resolver}
}

// Compose returns the full menu for a workspace: primary section, extend
// section, entitled app items flattened in registry order, then the bottom
// section. Apps contributing zero nav items contribute nothing. Output is
// deterministic for identical inputs.
func (c *Composer) Compose(set models.EntitlementSet, currentPath string) []Item {
	items := make([]Item, 0, len(primarySection)+len(extendSection)+len(bottomSection))

	for _, e := range primarySection {
		items = append(items, staticItem(e))
	}
	for _, e := range extendSection {
		items = append(items, staticItem(e))
	}
	for _, def := range c.resolver.Resolve(set) {
		for _, n := range def.Nav {
			items = append(items, Item{
				Title:  n.Label,
				Href:   n.Path,
				Icon:   ResolveIcon(n.Icon),
				Badge:  n.Badge,
				AppKey: def.Key,
			})
		}
	}
	for _, e := range bottomSection {
		items = append(items, staticItem(e))
	}

	markActive(items, currentPath)
	return items
}

func staticItem(e staticEntry) Item {
	return Item{Title: e.title, Href: e.href, Icon: ResolveIcon(e.icon)}
}

// markActive flags the first item matching the current path. A root-level
// href matches exactly; nested hrefs match by prefix. Ties go to the first
// item in composed order.
func markActive(items []Item, currentPath string) {
	if currentPath == "" {
		return
	}
	for i := range items {
		if isActive(items[i].Href, currentPath) {
			items[i].Active = true
			return
		}
	}
}

func isActive(href, currentPath string) bool {
	if href == "/" {
		return currentPath == "/"
	}
	return strings.HasPrefix(currentPath, href)
}
