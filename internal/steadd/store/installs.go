package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sitestead/sitestead/internal/steadd/models"
)

// InstallStore handles marketplace install database operations. The unique
// (workspace_id, item_id) constraint serializes install/toggle writes per
// pair, so concurrent daemon replicas sharing one database stay correct.
type InstallStore struct {
	db *sql.DB
}

// NewInstallStore creates a new install store
func NewInstallStore(db *sql.DB) *InstallStore {
	return &InstallStore{db: db}
}

// Upsert creates an install record or reactivates an existing one. Rows
// are never deleted, so reinstalling a previously disabled item flips it
// back to enabled in place.
func (s *InstallStore) Upsert(workspaceID, itemID string) (*models.Install, error) {
	now := time.Now().UTC()

	_, err := s.db.Exec(`
		INSERT INTO installs (id, workspace_id, item_id, enabled, installed_at, updated_at)
		VALUES (?, ?, ?, 1, ?, ?)
		ON CONFLICT (workspace_id, item_id)
		DO UPDATE SET enabled = 1, updated_at = excluded.updated_at
	`, uuid.New().String(), workspaceID, itemID, now, now)

	if err != nil {
		return nil, fmt.Errorf("failed to create install: %w", err)
	}

	return s.Get(workspaceID, itemID)
}

// Get gets an install record for a workspace and item
func (s *InstallStore) Get(workspaceID, itemID string) (*models.Install, error) {
	var install models.Install
	var enabled int

	err := s.db.QueryRow(`
		SELECT id, workspace_id, item_id, enabled, installed_at, updated_at
		FROM installs
		WHERE workspace_id = ? AND item_id = ?
	`, workspaceID, itemID).Scan(&install.ID, &install.WorkspaceID, &install.ItemID, &enabled, &install.InstalledAt, &install.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("install not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get install: %w", err)
	}

	install.Enabled = enabled != 0
	return &install, nil
}

// SetEnabled toggles an existing install record
func (s *InstallStore) SetEnabled(workspaceID, itemID string, enabled bool) error {
	result, err := s.db.Exec(`
		UPDATE installs
		SET enabled = ?, updated_at = ?
		WHERE workspace_id = ? AND item_id = ?
	`, enabled, time.Now().UTC(), workspaceID, itemID)

	if err != nil {
		return fmt.Errorf("failed to update install: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("install not found")
	}

	return nil
}

// ListByWorkspace lists all install records for a workspace, newest first
func (s *InstallStore) ListByWorkspace(workspaceID string) ([]models.Install, error) {
	rows, err := s.db.Query(`
		SELECT id, workspace_id, item_id, enabled, installed_at, updated_at
		FROM installs
		WHERE workspace_id = ?
		ORDER BY installed_at DESC
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list installs: %w", err)
	}
	defer rows.Close()

	installs := []models.Install{}
	for rows.Next() {
		var install models.Install
		var enabled int
		err := rows.Scan(&install.ID, &install.WorkspaceID, &install.ItemID, &enabled, &install.InstalledAt, &install.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan install: %w", err)
		}
		install.Enabled = enabled != 0
		installs = append(installs, install)
	}

	return installs, nil
}

// ListEnabledItemIDs returns the set of enabled item IDs for a workspace
func (s *InstallStore) ListEnabledItemIDs(workspaceID string) (map[string]bool, error) {
	rows, err := s.db.Query(`
		SELECT item_id
		FROM installs
		WHERE workspace_id = ? AND enabled = 1
	`, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled items: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan item id: %w", err)
		}
		ids[id] = true
	}

	return ids, nil
}
