package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"forwarding/cmd"
	httpadapter "forwarding/internal/adapters/in/http"
	pgadapter "forwarding/internal/adapters/out/postgres"
	applogger "forwarding/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := applogger.New(configs.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := pgadapter.Migrate(gormDB); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		logger.Fatal("failed to build application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to release resources", zap.Error(err))
		}
	}()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := startWebServer(ctx, app, configs.HTTPPort); err != nil {
		logger.Error("web server stopped", zap.Error(err))
	}
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string) error {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	if err := httpadapter.Register(e, app.CreateHTTPServer(), app.Metrics(), app.Registry(), app.Logger()); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
