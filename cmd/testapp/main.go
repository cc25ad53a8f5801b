package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aescanero/portman-testapp/internal/config"
	"github.com/aescanero/portman-testapp/pkg/api/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

// shutdownTimeout bounds connection draining after a signal
const shutdownTimeout = 5 * time.Second

func main() {
	startedAt := time.Now()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger()
	defer logger.Sync()

	logger.Info("starting test web app",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	gin.SetMode(gin.ReleaseMode)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	if err := run(cfg, startedAt, logger, sigCh); err != nil {
		logger.Error("test web app failed", zap.Error(err))
		logger.Sync()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run binds the configured port, serves until a signal arrives and then
// drains. A bind failure is returned before anything is served.
func run(cfg *config.Config, startedAt time.Time, logger *zap.Logger, sigCh <-chan os.Signal) error {
	httpServer := http.NewServer(&http.Config{
		Addr:      cfg.GetHTTPAddr(),
		Port:      cfg.Port,
		StartedAt: startedAt,
		Logger:    logger,
	})

	if err := httpServer.Listen(); err != nil {
		return err
	}

	logger.Info("Test web app running", zap.Int("port", cfg.Port))
	logger.Info("Visit the app", zap.String("url", fmt.Sprintf("http://localhost:%d", cfg.Port)))
	logger.Info("This app is for testing the portman CLI tool")
	logger.Info("Started at", zap.Time("started_at", startedAt))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case sig := <-sigCh:
		logger.Info("Received signal, shutting down gracefully...",
			zap.String("signal", signalName(sig)))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		// Draining is best effort; the process still exits cleanly.
		logger.Warn("HTTP server shutdown error", zap.Error(err))
	}

	return nil
}

// signalName returns the conventional name of the termination signals
func signalName(sig os.Signal) string {
	switch sig {
	case os.Interrupt:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return sig.String()
	}
}

// initLogger builds the production logger writing to standard output
func initLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
