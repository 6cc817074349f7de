package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/nav"
	"github.com/sitestead/sitestead/internal/steadd/semver"
)

// Client is a steadd API client
type Client struct {
	baseURL  string
	apiKey   string
	elevated bool
	client   *http.Client
}

// NewClient creates a new steadd API client
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithElevated marks subsequent requests as super-admin resolution.
func (c *Client) WithElevated(elevated bool) *Client {
	c.elevated = elevated
	return c
}

// joinURL safely joins the base URL with a path
func (c *Client) joinURL(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.joinURL(path), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if c.elevated {
		req.Header.Set("X-Stead-Elevated", "true")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Error  string `json:"error"`
			Reason string `json:"reason"`
		}
		data, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Reason != "" {
				return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Reason)
			}
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ListApps lists registered apps, optionally only published ones
func (c *Client) ListApps(publishedOnly bool) ([]models.AppDefinition, error) {
	path := "/api/v1/apps"
	if publishedOnly {
		path = "/api/v1/apps/published"
	}

	var resp struct {
		Apps []models.AppDefinition `json:"apps"`
	}
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Apps, nil
}

// GetApp fetches one app definition by key
func (c *Client) GetApp(key string) (*models.AppDefinition, error) {
	var def models.AppDefinition
	if err := c.do(http.MethodGet, "/api/v1/apps/"+url.PathEscape(key), nil, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// ResolveApps returns the apps a workspace is entitled to
func (c *Client) ResolveApps(workspaceID string) ([]models.AppDefinition, error) {
	var resp struct {
		Apps []models.AppDefinition `json:"apps"`
	}
	path := fmt.Sprintf("/api/v1/workspaces/%s/apps", url.PathEscape(workspaceID))
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Apps, nil
}

// Navigation returns the composed menu for a workspace
func (c *Client) Navigation(workspaceID, currentPath string) ([]nav.Item, error) {
	var resp struct {
		Items []nav.Item `json:"items"`
	}
	path := fmt.Sprintf("/api/v1/workspaces/%s/navigation", url.PathEscape(workspaceID))
	if currentPath != "" {
		path += "?path=" + url.QueryEscape(currentPath)
	}
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetEntitlements reads a workspace's synced feature set
func (c *Client) GetEntitlements(workspaceID string) (*models.EntitlementsResponse, error) {
	var resp models.EntitlementsResponse
	path := fmt.Sprintf("/api/v1/workspaces/%s/entitlements", url.PathEscape(workspaceID))
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SetEntitlements replaces a workspace's feature set
func (c *Client) SetEntitlements(workspaceID string, features []string) error {
	path := fmt.Sprintf("/api/v1/workspaces/%s/entitlements", url.PathEscape(workspaceID))
	return c.do(http.MethodPut, path, models.SetEntitlementsRequest{Features: features}, nil)
}

// ListItems lists the marketplace catalog
func (c *Client) ListItems() ([]models.MarketplaceItem, error) {
	var resp struct {
		Items []models.MarketplaceItem `json:"items"`
	}
	if err := c.do(http.MethodGet, "/api/v1/marketplace/items", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Install installs a marketplace item into a workspace
func (c *Client) Install(workspaceID, itemID string) (*models.Install, error) {
	var install models.Install
	path := fmt.Sprintf("/api/v1/workspaces/%s/installs", url.PathEscape(workspaceID))
	if err := c.do(http.MethodPost, path, models.InstallRequest{ItemID: itemID}, &install); err != nil {
		return nil, err
	}
	return &install, nil
}

// SetEnabled toggles an installed item
func (c *Client) SetEnabled(workspaceID, itemID string, enabled bool) error {
	path := fmt.Sprintf("/api/v1/workspaces/%s/installs/%s", url.PathEscape(workspaceID), url.PathEscape(itemID))
	return c.do(http.MethodPatch, path, models.SetEnabledRequest{Enabled: &enabled}, nil)
}

// ListInstalls lists a workspace's install records
func (c *Client) ListInstalls(workspaceID string) ([]models.Install, error) {
	var resp models.ListInstallsResponse
	path := fmt.Sprintf("/api/v1/workspaces/%s/installs", url.PathEscape(workspaceID))
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Installs, nil
}

// CheckCompat runs a compatibility pre-flight on the server
func (c *Client) CheckCompat(min, current string) (*semver.Compatibility, error) {
	var result semver.Compatibility
	path := "/api/v1/compat?min=" + url.QueryEscape(min)
	if current != "" {
		path += "&current=" + url.QueryEscape(current)
	}
	if err := c.do(http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
