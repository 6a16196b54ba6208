package http

import (
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas base.
func NewRouter(
	logger *zap.Logger,
	portfolioH *PortfolioHandler,
	chatH *ChatHandler,
	contactH *ContactHandler,
	healthH *HealthHandler,
	staticDir string,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", healthH.Health)

	api := r.Group("/api")
	api.Use(jsonContentTypeMiddleware())
	api.GET("/portfolio", portfolioH.GetPortfolio)
	api.GET("/profile", portfolioH.GetProfile)
	api.GET("/experiences", portfolioH.ListExperiences)
	api.GET("/projects", portfolioH.ListProjects)
	api.GET("/skills", portfolioH.ListSkills)
	api.POST("/chat", chatH.PostChat)
	api.POST("/contact", contactH.PostContact)

	// El front es estatico; el servidor solo entrega los archivos.
	if staticDir != "" {
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
		r.Static("/assets", filepath.Join(staticDir, "assets"))
	}

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
