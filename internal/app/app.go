package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/avdeev/courtside-media/config"
	"github.com/avdeev/courtside-media/internal/controller/restapi"
	"github.com/avdeev/courtside-media/internal/infrastructure/videointel"
	"github.com/avdeev/courtside-media/internal/migrate"
	"github.com/avdeev/courtside-media/internal/repo/persistent"
	"github.com/avdeev/courtside-media/internal/usecase/clip"
	"github.com/avdeev/courtside-media/internal/usecase/media"
	"github.com/avdeev/courtside-media/internal/usecase/user"
	"github.com/avdeev/courtside-media/pkg/gcsclient"
	"github.com/avdeev/courtside-media/pkg/httpserver"
	"github.com/avdeev/courtside-media/pkg/logger"
	"github.com/avdeev/courtside-media/pkg/postgres"
)

func Run(cfg *config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Logger
	l := logger.New(cfg.Log.Level)

	// Repository

	// gcs
	gcsCtx, gcsCancel := context.WithTimeout(ctx, cfg.GCS.CfgLoadTimeout)
	defer gcsCancel()
	gcs, err := gcsclient.New(gcsCtx, cfg.GCS.Credentials, cfg.GCS.Bucket)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - gcsclient.New: %w", err))
	}
	defer gcs.Close()

	// postgres
	err = migrate.Up(ctx, cfg.PG.URL)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - migrate.Up: %w", err))
	}

	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.PoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pg.Close()

	// video annotation
	annotator, err := videointel.New(ctx, cfg.GCS.Credentials)
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - videointel.New: %w", err))
	}
	defer annotator.Close()

	// Use-Case
	userUseCase := user.New(persistent.NewUserRepo(pg))
	mediaUseCase := media.New(persistent.NewObjectRepo(gcs), l)
	clipUseCase := clip.New(annotator, cfg.Video.AnnotateTimeout, l)

	// HTTP Server
	httpServer := httpserver.New(l, httpserver.Port(cfg.HTTP.Port), httpserver.Prefork(cfg.HTTP.UsePreforkMode))
	restapi.NewRouter(httpServer.App, cfg, userUseCase, mediaUseCase, clipUseCase, l)

	// Start
	httpServer.Start()

	// Waiting Signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		l.Info("app - Run - signal: %s", s.String())
	case err = <-httpServer.Notify():
		l.Error(fmt.Errorf("app - Run - httpServer.Notify: %w", err))
	}

	// Shutdown
	err = httpServer.Shutdown()
	if err != nil {
		l.Error(fmt.Errorf("app - Run - httpServer.Shutdown: %w", err))
	}
}
