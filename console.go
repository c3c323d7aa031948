package console

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aiops-console/console/handler"
	"github.com/aiops-console/console/helper"
	"github.com/aiops-console/console/store"
	"github.com/aiops-console/console/upload"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
)

// LoadEnv reads a .env file from the working directory when present.
// Variables already set in the environment win.
func LoadEnv() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env file: %v", err)
	}
}

// NewLogger creates the console logger at the level of CONSOLE_LOG_LEVEL.
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: helper.GetLogLevelFromEnv("CONSOLE_LOG_LEVEL"),
	}))
}

// ConsoleServer initializes the console handler, sets up routes and starts the
// Echo server. It returns after an interrupt once in-flight requests finished.
func ConsoleServer(port string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := NewLogger(os.Stdout)
	ch, err := InitConsoleHandler(logger)
	if err != nil {
		log.Fatalf("Failed to initialize console handler: %v", err)
	}

	e := echo.New()
	e.HideBanner = true
	SetupRoutes(e, ch, logger, "localhost:"+port, "127.0.0.1:"+port)

	go func() {
		err := e.Start(":" + port)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down console server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = e.Shutdown(shutdownCtx)
	if err != nil {
		logger.Error("Failed to shut down server", "error", err)
	}
}

// InitConsoleHandler creates the console handler from the environment: the
// fixture store (CONSOLE_FIXTURES or the embedded fixtures) and the report
// storage (CONSOLE_STORAGE_MODE).
func InitConsoleHandler(logger *slog.Logger) (*handler.ConsoleHandler, error) {
	filesystem, err := upload.CreateFilesystemFromEnv()
	if err != nil {
		return nil, helper.NewError("create filesystem", err)
	}

	var fixtureStore *store.FixtureStore
	fixturePath := helper.GetEnvOrDefault("CONSOLE_FIXTURES", "")
	if fixturePath != "" {
		fixtureStore, err = store.NewFixtureStoreFromFile(fixturePath, logger)
	} else {
		fixtureStore, err = store.NewDefaultFixtureStore(logger)
	}
	if err != nil {
		return nil, helper.NewError("create fixture store", err)
	}

	return handler.NewConsoleHandler(fixtureStore, filesystem, logger), nil
}
