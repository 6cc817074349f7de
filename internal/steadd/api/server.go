package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sitestead/sitestead/internal/steadd/config"
	"github.com/sitestead/sitestead/internal/steadd/docs"
	"github.com/sitestead/sitestead/internal/steadd/entitlement"
	"github.com/sitestead/sitestead/internal/steadd/marketplace"
	"github.com/sitestead/sitestead/internal/steadd/nav"
	"github.com/sitestead/sitestead/internal/steadd/registry"
	"github.com/sitestead/sitestead/internal/steadd/store"
)

// Server is the HTTP surface of the add-on engine.
type Server struct {
	cfg      *config.Config
	reg      *registry.Registry
	resolver *entitlement.Resolver
	composer *nav.Composer
	ledger   *marketplace.Ledger
	features *store.FeatureStore
	docs     docs.Store
	log      *logrus.Logger
	router   *gin.Engine
}

// Deps bundles the collaborators the server is wired with. Docs may be nil
// when no docs bucket is configured; the docs endpoint then returns slugs
// without content.
type Deps struct {
	Registry *registry.Registry
	Ledger   *marketplace.Ledger
	Features *store.FeatureStore
	Docs     docs.Store
	Log      *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, deps Deps) *Server {
	if cfg.LogLevel == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	resolver := entitlement.NewResolver(deps.Registry)

	s := &Server{
		cfg:      cfg,
		reg:      deps.Registry,
		resolver: resolver,
		composer: nav.NewComposer(resolver),
		ledger:   deps.Ledger,
		features: deps.Features,
		docs:     deps.Docs,
		log:      deps.Log,
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(s.requestLogger())

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Health check (no auth)
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api/v1")
	api.Use(s.authMiddleware())
	{
		// Catalog
		api.GET("/apps", s.handleListApps)
		api.GET("/apps/published", s.handleListPublishedApps)
		api.GET("/apps/:key", s.handleGetApp)
		api.GET("/marketplace/items", s.handleListItems)

		// Compatibility pre-flight for installer flows
		api.GET("/compat", s.handleCheckCompat)

		// Workspace surfaces
		api.GET("/workspaces/:workspaceId/apps", s.handleResolveApps)
		api.GET("/workspaces/:workspaceId/navigation", s.handleNavigation)
		api.GET("/workspaces/:workspaceId/entitlements", s.handleGetEntitlements)
		api.PUT("/workspaces/:workspaceId/entitlements", s.handleSetEntitlements)
		api.GET("/workspaces/:workspaceId/installs", s.handleListInstalls)
		api.POST("/workspaces/:workspaceId/installs", s.handleInstall)
		api.PATCH("/workspaces/:workspaceId/installs/:itemId", s.handleSetEnabled)
		api.GET("/workspaces/:workspaceId/docs", s.handleDocs)
	}
}

// Router exposes the underlying handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.cfg.Port)
	s.log.WithField("addr", addr).Info("starting steadd")
	return s.router.Run(addr)
}
