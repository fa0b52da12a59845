package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/foot-analises/foot-stats-service/internal/config"
	"github.com/foot-analises/foot-stats-service/internal/logging"
	"github.com/foot-analises/foot-stats-service/internal/server"
)

const (
	appVersion  = "dev"
	serviceName = "foot-stats-service"
)

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	// The env file may set LOG_LEVEL and LOG_FORMAT, so it is read before the
	// logger exists and a failure is reported right after.
	envErr := loadDotEnv(os.Getenv("ENV_FILE"))
	logger := newLogger()
	if envErr != nil {
		logging.Warn(logger, "env file not loaded", logging.FieldError, envErr)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error(logger, "invalid configuration", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server.New(cfg, logger).Run(ctx, stop)
	return 0
}

func newLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: serviceName,
		Version: appVersion,
	})
}

// loadDotEnv reads path (".env" when empty) without overriding variables
// already set in the process. A missing default file is not an error.
func loadDotEnv(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
