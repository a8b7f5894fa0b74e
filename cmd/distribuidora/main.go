package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mrbebidas/distribuidora/internal/app"
	"github.com/mrbebidas/distribuidora/internal/config"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	cfg := config.Load()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to connect to document store")
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		zlog.Warn().Err(err).Msg("document store unreachable, serving static catalog")
	}

	application := app.New(client.Database(cfg.MongoDB), cfg)

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()
	application.Start(rootCtx)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: application.HTTPHandler(),
	}

	go func() {
		zlog.Info().Str("port", cfg.Port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	stop()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = server.Shutdown(shutdownCtx)
	_ = client.Disconnect(shutdownCtx)
}
