package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"adsniper/internal/delivery"
	"adsniper/internal/domain"
	"adsniper/internal/infrastructure"
	"adsniper/internal/usecase"
	"adsniper/pkg/config"
	"adsniper/pkg/logger"
	"adsniper/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info("Starting server")

	m := metrics.New()

	clock := infrastructure.SystemClock{}
	ids := infrastructure.NewTimestampIDSource(clock)

	// Durable slot for the campaign list; fall back to in-memory storage
	// when the data dir is unusable so startup never fails.
	var slot domain.SlotStore
	fileSlot, err := infrastructure.NewFileSlot(cfg.Storage.DataDir, cfg.Storage.SlotName, log)
	if err != nil {
		log.WithError(err).Warn("Storage unavailable, campaigns will not survive a restart")
		m.RecordPersistenceFailure("write")
		slot = infrastructure.NewMemorySlot()
	} else {
		slot = fileSlot
	}

	campaigns := usecase.NewCampaignService(slot, clock, ids, log, m)

	mapHost := infrastructure.NewRecordingMapHost(log)
	editor := usecase.NewGeometryEditor(mapHost, cfg.Editor.BoundsPadding, ids, log, m)

	handlers := delivery.NewHTTPHandlers(campaigns, editor, mapHost, delivery.MapDefaults{
		CenterLat: cfg.Editor.DefaultCenterLat,
		CenterLng: cfg.Editor.DefaultCenterLng,
		Zoom:      cfg.Editor.DefaultZoom,
	}, log, m)

	router := delivery.NewHTTPRouter(handlers, cfg.HTTP, log, m)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.SetupRoutes(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	log.WithField("port", cfg.Server.Port).Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("Server forced to shutdown")
	}

	log.Info("Server exited")
}
