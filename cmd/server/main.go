package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"steam-gamedata/internal/api"
	"steam-gamedata/internal/config"
	"steam-gamedata/internal/pipeline"
	"steam-gamedata/internal/scraper"
	"steam-gamedata/internal/steamapi"
)

func main() {
	cfg := config.Load()

	client := scraper.NewClient(cfg.FetchTimeout, 5*time.Second, 5*1024*1024) // 5MB cap per listing
	harvester := scraper.NewHarvester(client, cfg.Categories())
	details := steamapi.NewClient(cfg.APIBaseURL, cfg.FetchTimeout)
	pipe := pipeline.New(harvester, details)

	r := gin.Default()
	api.NewHandler(pipe).RegisterRoutes(r)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	slog.Info("bye")
}
