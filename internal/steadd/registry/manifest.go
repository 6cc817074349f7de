package registry

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sitestead/sitestead/internal/steadd/models"
)

// Manifest is the on-disk catalog extension format. Operators mount a YAML
// manifest to add apps and marketplace items beyond the built-in catalog;
// entries go through the same validation as code-registered ones, so a bad
// manifest fails startup.
type Manifest struct {
	Apps  []models.AppDefinition   `yaml:"apps"`
	Items []models.MarketplaceItem `yaml:"items"`
}

// LoadManifest reads a catalog manifest file and registers its contents.
func (b *Builder) LoadManifest(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read catalog manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("failed to parse catalog manifest %s: %w", path, err)
	}

	for _, def := range m.Apps {
		if err := b.RegisterApp(def); err != nil {
			return fmt.Errorf("catalog manifest %s: %w", path, err)
		}
	}
	for _, item := range m.Items {
		if err := b.RegisterItem(item); err != nil {
			return fmt.Errorf("catalog manifest %s: %w", path, err)
		}
	}

	return nil
}
