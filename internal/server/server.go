package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rlion219-collab/tanzania-political-dashboard/internal/dataset"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/handler"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/middleware"
	"github.com/rlion219-collab/tanzania-political-dashboard/internal/service"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	router *gin.Engine
	logger *zap.Logger
}

func NewServer(store *dataset.Store, loc *time.Location, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	s := &Server{
		router: router,
		logger: logger,
	}

	s.setupRoutes(store, loc)
	return s
}

func (s *Server) setupRoutes(store *dataset.Store, loc *time.Location) {
	dashboard := service.NewDashboard(store, loc, s.logger)
	dashboardHandler := handler.NewDashboardHandler(dashboard, s.logger)
	exportHandler := handler.NewExportHandler(dashboard, s.logger)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "tanzania-political-dashboard",
			"posts":   store.Len(),
		})
	})

	api := s.router.Group("/api/v1")
	{
		api.GET("/topics", dashboardHandler.GetTopics)
		api.GET("/dashboard", dashboardHandler.GetOverview)
		api.GET("/posts/:id", dashboardHandler.GetPost)

		api.GET("/export/csv", exportHandler.ExportCSV)
		api.GET("/export/json", exportHandler.ExportJSON)
	}
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() http.Handler { return s.router }

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("Server starting", zap.String("port", port))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}
