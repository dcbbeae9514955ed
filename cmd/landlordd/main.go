// Command landlordd serves the decision engine over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"landlord/internal/app"
	"landlord/internal/config"
	"landlord/internal/logging"
	"landlord/internal/ports/httpapi"

	"github.com/joho/godotenv"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()

	if path := os.Getenv("LANDLORD_CONFIG"); path != "" {
		if err := config.LoadEngineConfig(path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	cfg := config.GetEngineConfig()
	logger := logging.New(os.Stderr, getenv("LANDLORD_LOG_LEVEL", cfg.LogLevel))
	addr := getenv("LANDLORD_HTTP_ADDR", ":8080")

	srv := &http.Server{
		Addr:         addr,
		Handler:      httpapi.Router(app.NewService(cfg), logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			logger.Error("shutdown: %v", err)
		}
	}()

	logger.Info("listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("serve: %v", err)
		os.Exit(1)
	}
}
