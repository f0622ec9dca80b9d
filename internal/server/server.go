package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/kpi"
	"taskboard/internal/storage"
	"taskboard/internal/store"
)

type Server struct {
	Engine *gin.Engine
	Store  *store.Store
	Config *config.Config
}

func Init(cfg *config.Config) (*Server, error) {
	adapter, err := openAdapter(cfg)
	if err != nil {
		return nil, err
	}

	st := store.New(adapter)
	log.Println("✅ Board state loaded")

	// Setup Gin
	r := gin.Default()

	// Initialize handlers
	kpiEngine := kpi.NewEngine(nil)
	boardHandler := handler.NewBoardHandler(st)
	columnHandler := handler.NewColumnHandler(st)
	cardHandler := handler.NewCardHandler(st)
	kpiHandler := handler.NewKPIHandler(st, kpiEngine)
	exportHandler := handler.NewExportHandler(st, kpiEngine)

	// Board routes
	r.POST("/boards", boardHandler.Create)
	r.GET("/boards", boardHandler.GetAll)
	r.GET("/boards/active", boardHandler.GetActive)
	r.PUT("/boards/active", boardHandler.SetActive)
	r.GET("/boards/:id", boardHandler.GetByID)
	r.PUT("/boards/:id", boardHandler.Update)
	r.DELETE("/boards/:id", boardHandler.Delete)

	// Column routes
	r.POST("/boards/:id/columns", columnHandler.Create)
	r.PUT("/boards/:id/columns/:column_id", columnHandler.Update)
	r.DELETE("/boards/:id/columns/:column_id", columnHandler.Delete)

	// Card routes
	r.POST("/boards/:id/columns/:column_id/cards", cardHandler.Create)
	r.PUT("/boards/:id/columns/:column_id/cards/:card_id", cardHandler.Update)
	r.DELETE("/boards/:id/columns/:column_id/cards/:card_id", cardHandler.Delete)
	r.POST("/boards/:id/cards/move", cardHandler.Move)

	// KPI and export routes
	r.GET("/kpis", kpiHandler.Get)
	r.GET("/boards/:id/export", exportHandler.Export)

	return &Server{
		Engine: r,
		Store:  st,
		Config: cfg,
	}, nil
}

func openAdapter(cfg *config.Config) (storage.Adapter, error) {
	switch cfg.StorageDriver {
	case config.DriverFile:
		return storage.NewFileAdapter(cfg.DataFile), nil
	case config.DriverSQLite:
		db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("❌ failed to open database: %w", err)
		}
		log.Println("✅ Connected to database")
		adapter := storage.NewGormAdapter(db)
		if err := adapter.Migrate(); err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func (s *Server) Run() {
	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Engine,
	}

	go func() {
		log.Printf("🚀 Server running on port %s\n", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %s", err)
	}

	log.Println("✅ Server exited properly")
}
