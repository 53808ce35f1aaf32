package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookcatalog/internal/audit"
	"github.com/mrlokans/bookcatalog/internal/config"
	"github.com/mrlokans/bookcatalog/internal/database"
	auditdb "github.com/mrlokans/bookcatalog/internal/database/audit"
	"github.com/mrlokans/bookcatalog/internal/database/reviews"
	http_controllers "github.com/mrlokans/bookcatalog/internal/http"
	"github.com/mrlokans/bookcatalog/internal/scheduler"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the scheduler)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Catalog v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// The Mongo client connects lazily on first review operation; a bad URI
	// surfaces as a 500 on review endpoints, not as a startup failure.
	reviewRepo := reviews.NewRepository(cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ReviewsCollection)

	auditService := audit.NewService(auditdb.NewRepository(db.DB))

	retention := time.Duration(cfg.Audit.RetentionDays) * 24 * time.Hour
	cleanupScheduler := scheduler.NewAuditCleanupScheduler(auditService, cfg.Audit.CleanupSchedule, retention)
	if err := cleanupScheduler.Start(context.Background()); err != nil {
		log.Printf("WARNING: audit cleanup scheduler not started: %v", err)
	}

	templatesPath := cfg.UI.TemplatesPath
	if _, err := os.Stat(templatesPath); os.IsNotExist(err) {
		log.Printf("WARNING: templates path %s does not exist, home page disabled", templatesPath)
		templatesPath = ""
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:      db,
		ReviewStore:   reviewRepo,
		MongoPinger:   reviewRepo,
		AuditService:  auditService,
		TemplatesPath: templatesPath,
		StaticPath:    cfg.UI.StaticPath,
		Version:       version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		cleanupScheduler.Stop()
		if err := reviewRepo.Close(ctx); err != nil {
			log.Printf("Failed to disconnect from mongodb: %v", err)
		}
	})
}
