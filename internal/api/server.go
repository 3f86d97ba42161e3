// Package api serves the portal's REST API.
package api

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/heptiolabs/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/dph/portal/internal/service"
)

// Server wires the portal services to HTTP routes.
type Server struct {
	Contact  *service.ContactService
	Feedback *service.FeedbackService
	Banners  *service.BannerService

	// DB backs the readiness check. Optional.
	DB *sql.DB

	Addr            string
	ShutdownTimeout time.Duration
}

// Router builds the gin engine with logging, recovery, metrics and health
// endpoints.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Add a ginzap middleware, which:
	//   - Logs all requests, like a combined access and error log.
	//   - RFC3339 with UTC time format.
	router.Use(ginzap.Ginzap(zap.L(), time.RFC3339, true))

	// Logs all panic to error log
	//   - stack means whether output the stack info.
	router.Use(ginzap.RecoveryWithZap(zap.L(), true))

	router.Use(metricsMiddleware())

	health := healthcheck.NewHandler()
	health.AddLivenessCheck("goroutine-threshold", healthcheck.GoroutineCountCheck(10000))
	if s.DB != nil {
		health.AddReadinessCheck("database", healthcheck.DatabasePingCheck(s.DB, time.Second))
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "online")
	})
	router.GET("/live", gin.WrapF(health.LiveEndpoint))
	router.GET("/ready", gin.WrapF(health.ReadyEndpoint))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/contact-us", s.getContact)
		api.PUT("/contact-us", s.updateContact)

		api.POST("/feedback", s.submitFeedback)
		api.GET("/feedback", s.listFeedback)

		banners := api.Group("/admin/homepage-banners")
		banners.POST("", s.createBanner)
		banners.GET("", s.listBanners)
		banners.GET("/:id", s.getBanner)
		banners.PUT("/:id", s.updateBanner)
		banners.PATCH("/:id/toggle-status", s.toggleBanner)
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		zap.S().Infow("REST API listening", "addr", s.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	zap.S().Infow("Shutting down REST API", "timeout", timeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
