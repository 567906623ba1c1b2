package api

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/genvault/genvault/api/auth"
	"github.com/genvault/genvault/api/handler"
	"github.com/genvault/genvault/config"
	"github.com/genvault/genvault/database"
)

type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	db           database.DB
	authProvider *auth.Provider
	generator    handler.Generator
}

func New(cfg *config.Config, db database.DB, gen handler.Generator) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	return &Server{
		cfg:          cfg,
		ginEngine:    gin.Default(),
		db:           db,
		authProvider: auth.New(db, cfg),
		generator:    gen,
	}, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("genvault_session", store))
}

func (s *Server) setupRoutes() {
	s.setupSession()
	s.ginEngine.Use(gzip.Gzip(gzip.DefaultCompression))

	s.ginEngine.POST("/register", s.authProvider.Register)
	s.ginEngine.POST("/login", s.authProvider.Login)

	protected := s.ginEngine.Group("/")
	protected.Use(s.authProvider.RequireAuth())

	protected.POST("/logout", s.authProvider.Logout)

	h := handler.New(s.db, s.generator)
	protected.POST("/generate", h.Generate)
	protected.GET("/responses", h.Responses)

	s.setupStatic()
}

// setupStatic serves the prebuilt client bundle: the index at the root and
// any other bundle file by its path.
func (s *Server) setupStatic() {
	s.ginEngine.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(s.cfg.StaticDir, "index.html"))
	})

	s.ginEngine.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}

		// Clean the path against traversal before hitting the filesystem.
		file := filepath.Join(s.cfg.StaticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			c.File(file)
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
}

func (s *Server) Run() error {
	s.setupRoutes()

	return s.ginEngine.Run(s.cfg.Listen)
}
