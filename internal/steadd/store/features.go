package store

import (
	"database/sql"
	"fmt"
	"time"
)

// FeatureStore caches the billing-derived feature set per workspace. The
// billing subsystem pushes the full set on every subscription change, so
// writes replace rather than merge.
type FeatureStore struct {
	db *sql.DB
}

// NewFeatureStore creates a new feature store
func NewFeatureStore(db *sql.DB) *FeatureStore {
	return &FeatureStore{db: db}
}

// Replace swaps a workspace's feature set for the given one
func (s *FeatureStore) Replace(workspaceID string, features []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM workspace_features WHERE workspace_id = ?", workspaceID); err != nil {
		return fmt.Errorf("failed to clear features: %w", err)
	}

	now := time.Now().UTC()
	for _, feature := range features {
		if feature == "" {
			continue
		}
		_, err := tx.Exec(`
			INSERT OR IGNORE INTO workspace_features (workspace_id, feature_key, synced_at)
			VALUES (?, ?, ?)
		`, workspaceID, feature, now)
		if err != nil {
			return fmt.Errorf("failed to insert feature: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit features: %w", err)
	}

	return nil
}

// List returns a workspace's feature keys in stable order
func (s *FeatureStore) List(workspaceID string) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT feature_key
		FROM workspace_features
		WHERE workspace_id = ?
		ORDER BY feature_key
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	defer rows.Close()

	features := []string{}
	for rows.Next() {
		var feature string
		if err := rows.Scan(&feature); err != nil {
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, feature)
	}

	return features, nil
}
