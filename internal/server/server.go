package server

import (
	"log/slog"
	"time"

	"codefolio/internal/controller"
	"codefolio/internal/session"

	"github.com/gin-gonic/gin"
)

// Server assembles the gin engine: templates, middleware, routes.
type Server struct {
	engine    *gin.Engine
	sessions  *session.Manager
	auth      *controller.AuthController
	projects  *controller.ProjectController
	portfolio *controller.PortfolioController
}

// New builds the HTTP surface. templatesGlob points at the server-rendered
// page templates.
func New(
	templatesGlob string,
	sessions *session.Manager,
	auth *controller.AuthController,
	projects *controller.ProjectController,
	portfolio *controller.PortfolioController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.LoadHTMLGlob(templatesGlob)

	s := &Server{
		engine:    engine,
		sessions:  sessions,
		auth:      auth,
		projects:  projects,
		portfolio: portfolio,
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying handler for http.Server.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	e := s.engine
	e.Use(s.identify())

	e.GET("/", s.portfolio.Home)
	e.GET("/register", s.auth.ShowRegister)
	e.POST("/register", s.auth.Register)
	e.GET("/login", s.auth.ShowLogin)
	e.POST("/login", s.auth.Login)
	e.GET("/logout", s.auth.Logout)

	e.GET("/portfolio/:username", s.portfolio.Portfolio)
	e.GET("/search", s.portfolio.Search)

	authed := e.Group("", s.requireAuth())
	authed.GET("/dashboard", s.projects.Dashboard)
	authed.POST("/dashboard", s.projects.Create)
	authed.GET("/edit/:id", s.projects.ShowEdit)
	authed.POST("/edit/:id", s.projects.Update)
	authed.POST("/delete/:id", s.projects.Delete)

	e.NoRoute(controller.NotFoundPage)
}

// requestLogger logs one line per request through the ambient slog logger.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
