package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sitestead/sitestead/internal/steadd/docs"
	"github.com/sitestead/sitestead/internal/steadd/marketplace"
	"github.com/sitestead/sitestead/internal/steadd/models"
	"github.com/sitestead/sitestead/internal/steadd/semver"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":          "healthy",
		"platformVersion": s.cfg.PlatformVersion,
		"apps":            len(s.reg.ListAll()),
	})
}

func (s *Server) handleListApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apps": s.reg.ListAll()})
}

func (s *Server) handleListPublishedApps(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"apps": s.reg.ListPublished()})
}

func (s *Server) handleGetApp(c *gin.Context) {
	def, ok := s.reg.GetByKey(c.Param("key"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "app not found"})
		return
	}
	c.JSON(http.StatusOK, def)
}

func (s *Server) handleListItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": s.ledger.Items()})
}

func (s *Server) handleCheckCompat(c *gin.Context) {
	current := c.DefaultQuery("current", s.cfg.PlatformVersion)
	result := semver.CheckCompatibility(c.Query("min"), current)
	c.JSON(http.StatusOK, result)
}

// entitlementSet loads the workspace's synced feature set, honoring the
// elevated header.
func (s *Server) entitlementSet(c *gin.Context, workspaceID string) (models.EntitlementSet, error) {
	if elevated(c) {
		return models.EntitlementSet{Elevated: true}, nil
	}

	features, err := s.features.List(workspaceID)
	if err != nil {
		return models.EntitlementSet{}, err
	}
	return models.EntitlementSet{Features: features}, nil
}

func (s *Server) handleResolveApps(c *gin.Context) {
	workspaceID := c.Param("workspaceId")

	set, err := s.entitlementSet(c, workspaceID)
	if err != nil {
		s.log.WithError(err).Error("failed to load entitlements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load entitlements"})
		return
	}

	apps := s.resolver.Resolve(set)
	if apps == nil {
		apps = []models.AppDefinition{}
	}
	c.JSON(http.StatusOK, gin.H{"apps": apps})
}

func (s *Server) handleNavigation(c *gin.Context) {
	workspaceID := c.Param("workspaceId")

	set, err := s.entitlementSet(c, workspaceID)
	if err != nil {
		s.log.WithError(err).Error("failed to load entitlements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load entitlements"})
		return
	}

	items := s.composer.Compose(set, c.Query("path"))
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) handleGetEntitlements(c *gin.Context) {
	workspaceID := c.Param("workspaceId")

	features, err := s.features.List(workspaceID)
	if err != nil {
		s.log.WithError(err).Error("failed to load entitlements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load entitlements"})
		return
	}

	c.JSON(http.StatusOK, models.EntitlementsResponse{
		WorkspaceID: workspaceID,
		Features:    features,
	})
}

func (s *Server) handleSetEntitlements(c *gin.Context) {
	workspaceID := c.Param("workspaceId")

	var req models.SetEntitlementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "features is required"})
		return
	}

	if err := s.features.Replace(workspaceID, req.Features); err != nil {
		s.log.WithError(err).Error("failed to sync entitlements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync entitlements"})
		return
	}

	s.log.WithFields(logrus.Fields{
		"workspace": workspaceID,
		"features":  len(req.Features),
	}).Info("entitlements synced")

	c.JSON(http.StatusOK, models.EntitlementsResponse{
		WorkspaceID: workspaceID,
		Features:    req.Features,
	})
}

func (s *Server) handleListInstalls(c *gin.Context) {
	installs, err := s.ledger.ListInstalls(c.Param("workspaceId"))
	if err != nil {
		s.log.WithError(err).Error("failed to list installs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list installs"})
		return
	}

	c.JSON(http.StatusOK, models.ListInstallsResponse{
		Installs: installs,
		Total:    len(installs),
	})
}

func (s *Server) handleInstall(c *gin.Context) {
	workspaceID := c.Param("workspaceId")

	var req models.InstallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}

	install, err := s.ledger.Install(workspaceID, req.ItemID)
	if err != nil {
		var incompatErr *marketplace.IncompatibleVersionError
		switch {
		case errors.Is(err, marketplace.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "marketplace item not found"})
		case errors.As(err, &incompatErr):
			c.JSON(http.StatusConflict, gin.H{
				"error":           "incompatible platform version",
				"reason":          incompatErr.Reason,
				"requiredMin":     incompatErr.RequiredMin,
				"platformVersion": incompatErr.PlatformVersion,
			})
		default:
			s.log.WithError(err).Error("failed to install item")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to install item"})
		}
		return
	}

	c.JSON(http.StatusCreated, install)
}

func (s *Server) handleSetEnabled(c *gin.Context) {
	workspaceID := c.Param("workspaceId")
	itemID := c.Param("itemId")

	var req models.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Enabled == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}

	if err := s.ledger.SetEnabled(workspaceID, itemID, *req.Enabled); err != nil {
		if errors.Is(err, marketplace.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "marketplace item not found"})
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "install not found"})
		return
	}

	install, err := s.ledger.ListInstalls(workspaceID)
	if err == nil {
		for _, rec := range install {
			if rec.ItemID == itemID {
				c.JSON(http.StatusOK, rec)
				return
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"itemId": itemID, "enabled": *req.Enabled})
}

func (s *Server) handleDocs(c *gin.Context) {
	workspaceID := c.Param("workspaceId")

	slugs, err := s.ledger.VisibleDocSlugs(workspaceID)
	if err != nil {
		s.log.WithError(err).Error("failed to list doc slugs")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list docs"})
		return
	}

	type docEntry struct {
		Slug    string `json:"slug"`
		Content string `json:"content,omitempty"`
	}

	entries := make([]docEntry, 0, len(slugs))
	for _, slug := range slugs {
		entry := docEntry{Slug: slug}
		if s.docs != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
			content, err := s.docs.Resolve(ctx, slug)
			cancel()
			switch {
			case err == nil:
				entry.Content = string(content)
			case errors.Is(err, docs.ErrNotFound):
				// Slug with no content still appears in the list
			default:
				s.log.WithError(err).WithField("slug", slug).Warn("failed to resolve doc")
			}
		}
		entries = append(entries, entry)
	}

	c.JSON(http.StatusOK, gin.H{"docs": entries})
}
