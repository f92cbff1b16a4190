// Package api wires the gin router, grounded on the teacher's
// internal/api/server.go (same Server struct, cors.DefaultConfig, route
// grouping under /api), repointed at the job-submission surface of
// SPEC_FULL.md §9.3.
package api

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ricferreira/roster-optimizer/internal/api/handlers"
	"github.com/ricferreira/roster-optimizer/internal/assistant"
	"github.com/ricferreira/roster-optimizer/internal/roster"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type Server struct {
	router *gin.Engine
}

// NewServer wires the router against an already-constructed Orchestrator.
// explainer may be nil (SPEC_FULL.md §9.6 disabled).
func NewServer(orchestrator *roster.Orchestrator, explainer *assistant.Explainer, allowedOrigins []string) *Server {
	s := &Server{router: gin.Default()}

	config := cors.DefaultConfig()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	s.router.Use(cors.New(config))

	s.setupRoutes(orchestrator, explainer)
	return s
}

func (s *Server) setupRoutes(orchestrator *roster.Orchestrator, explainer *assistant.Explainer) {
	h := handlers.NewHandler(orchestrator, explainer)

	api := s.router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		api.GET("/version", func(c *gin.Context) {
			version := Version
			if v := os.Getenv("APP_VERSION"); v != "" {
				version = v
			}
			c.JSON(http.StatusOK, gin.H{"version": version})
		})

		api.POST("/rosters", h.SubmitRoster)
		api.GET("/rosters/:id", h.GetRoster)
	}
}

func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
