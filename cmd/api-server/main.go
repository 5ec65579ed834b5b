package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AllanGabay/vitadex/internal/auth"
	"github.com/AllanGabay/vitadex/internal/cards"
	"github.com/AllanGabay/vitadex/internal/extract"
	"github.com/AllanGabay/vitadex/internal/imagegen"
	"github.com/AllanGabay/vitadex/internal/notify"
	"github.com/AllanGabay/vitadex/internal/scan"
	"github.com/AllanGabay/vitadex/pkg/database"
	"github.com/AllanGabay/vitadex/pkg/utils"
)

func main() {
	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	ctx := context.Background()
	aiCfg := utils.LoadAIConfig()
	if aiCfg.APIKey == "" {
		log.Println("VITADEX_GEMINI_API_KEY not set; scans will fail until it is")
	}

	extractor, err := extract.NewGeminiExtractor(ctx, aiCfg)
	if err != nil {
		log.Fatalf("extractor init failed: %v", err)
	}
	generator, err := imagegen.NewGeminiGenerator(ctx, aiCfg)
	if err != nil {
		log.Fatalf("image generator init failed: %v", err)
	}

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	hub := notify.NewHub()
	router.GET("/ws", notify.WSHandler(hub))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "not_ready",
				"db_error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":     "ok",
			"db":         cfg.Path,
			"ws_clients": hub.ClientCount(),
		})
	})

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Protected routes
	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/users/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"email":    claims.Email,
		})
	})

	// Collection
	cardRepo := cards.NewRepo(db)
	cardHandler := cards.NewHandler(cardRepo)
	cardHandler.RegisterRoutes(protected)

	// Scan pipeline
	pipeline := scan.NewPipeline(extractor, generator, cardRepo)
	scanHandler := scan.NewHandler(pipeline, hub)
	scanHandler.RegisterRoutes(protected)

	httpSrv := &http.Server{
		Addr:    ":8080",
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Println("HTTP API server listening on :8080")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	log.Println("server stopped")
}
