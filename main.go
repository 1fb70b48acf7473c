package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/redis/go-redis/v9"
	"github.com/uptrace/bun"

	"github.com/KingLex25/innovationhub/cliparse"
	"github.com/KingLex25/innovationhub/db"
	"github.com/KingLex25/innovationhub/metrics"
	"github.com/KingLex25/innovationhub/router"
	"github.com/KingLex25/innovationhub/session"
)

func main() {
	// A missing .env is fine; the environment may already be set
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.RFC1123Z,
	})))

	if err := run(cfg); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg cliparse.Config) error {
	ctx := context.Background()

	// Connect to the database
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	m := metrics.New()
	dbConn.AddQueryHook(m.QueryHook())

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	if err := db.Seed(ctx, dbConn, cfg); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	store, closeStore, err := sessionStore(ctx, cfg, dbConn)
	if err != nil {
		return err
	}
	defer closeStore()
	sessions := session.NewManager(store, cfg.SessionSecret, cfg.SessionTTL, cfg.SecureCookies)

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(dbConn, cfg, sessions, m),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		return err
	}

	slog.Info("Listening", "port", cfg.Port)
	return serve(&server, ln, ctrlc)
}

// serve runs server on ln until stop fires, then shuts it down and waits for
// in-flight requests before returning
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	// drained is closed once in-flight requests have finished
	drained := make(chan struct{})
	go func() {
		defer close(drained)

		<-stop
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Serve returns as soon as Shutdown starts; keep the database and
	// session store open until the handlers are done with them
	<-drained
	slog.Info("Server closed")
	return nil
}

// sessionStore uses Redis when REDIS_URL is set, otherwise the sessions table.
// The returned func releases the store's connection.
func sessionStore(ctx context.Context, cfg cliparse.Config, dbConn *bun.DB) (session.Store, func(), error) {
	if cfg.RedisURL == "" {
		return session.NewSQLStore(dbConn), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	slog.Info("Sessions stored in redis", "addr", opts.Addr)
	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Error("failed to close redis client", "error", err)
		}
	}
	return session.NewRedisStore(client), closeClient, nil
}
