package server

import (
	"context"
	"net/http"

	"github.com/arthur12320/flash-cards-simple/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is the HTTP front of the application: routing, auth middleware and
// request handlers over the service layer.
type Server struct {
	cfg      config.HTTPConfig
	handlers *Handlers
	auth     *AuthMiddleware
	log      *zap.Logger
	httpSrv  *http.Server
}

func NewServer(cfg config.HTTPConfig, handlers *Handlers, auth *AuthMiddleware, env string, log *zap.Logger) *Server {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		handlers: handlers,
		auth:     auth,
		log:      log,
	}

	s.httpSrv = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

func (s *Server) router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api", s.auth.RequireAuth())
	{
		api.POST("/auth/signin", s.handlers.SignIn)

		api.GET("/me", s.handlers.Me)
		api.PUT("/me/settings", s.handlers.UpdateSettings)
		api.PUT("/me/intervals", s.handlers.UpdateReviewIntervals)
		api.DELETE("/me", s.handlers.DeleteAccount)

		api.GET("/collections", s.handlers.ListCollections)
		api.POST("/collections", s.handlers.CreateCollection)
		api.DELETE("/collections/:id", s.handlers.DeleteCollection)
		api.GET("/collections/:id/cards", s.handlers.ListCollectionCards)
		api.GET("/collections/:id/stats", s.handlers.CollectionStats)
		api.POST("/collections/:id/cards", s.handlers.CreateCard)
		api.POST("/collections/:id/cards/bulk", s.handlers.CreateCardsBulk)

		api.DELETE("/cards/:id", s.handlers.DeleteCard)
		api.POST("/cards/:id/review", s.handlers.ReviewCard)
		api.POST("/cards/:id/reset", s.handlers.ResetCardProgress)

		api.GET("/collections/:id/due", s.handlers.DueCards)
		api.POST("/collections/:id/study", s.handlers.StartSession)
		api.POST("/collections/:id/study/complete", s.handlers.CompleteSession)
		api.GET("/study/current", s.handlers.CurrentCard)
		api.POST("/study/review", s.handlers.RecordDifficulty)
		api.POST("/study/advance", s.handlers.AdvanceSession)
		api.POST("/study/retreat", s.handlers.RetreatSession)
		api.POST("/study/restart", s.handlers.RestartSession)
	}

	return r
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.httpSrv.Addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	return s.httpSrv.Shutdown(shutdownCtx)
}
