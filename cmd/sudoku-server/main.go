package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	httpadapter "github.com/renitt0/Sudoku-Solver/internal/adapters/http"
	"github.com/renitt0/Sudoku-Solver/internal/config"
	"github.com/renitt0/Sudoku-Solver/internal/infrastructure/storage"
	"github.com/renitt0/Sudoku-Solver/internal/platform/ratelimiter"
	"github.com/renitt0/Sudoku-Solver/internal/solver"
	"github.com/renitt0/Sudoku-Solver/internal/usecase"
)

func parseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func main() {
	cfgPath := flag.String("config", "", "optional TOML config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	dbPath := flag.String("db-path", "", "SQLite database path (overrides config)")
	levelStr := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		errLog := zerolog.New(os.Stderr)
		errLog.Fatal().Err(err).Msg("load config")
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *levelStr != "" {
		cfg.LogLevel = *levelStr
	}

	log := zerolog.New(os.Stdout).Level(parseLevel(cfg.LogLevel)).With().Timestamp().Logger()

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	st, err := storage.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer st.Close()

	// Wire providers → use cases → HTTP adapter.
	uc := usecase.NewService(solver.NewBacktracking(), st, cfg.SolveTimeout(), log)
	rl := ratelimiter.New(cfg.RateLimitRPS, cfg.RateLimitBurst)
	h := httpadapter.New(uc, log, rl)

	gin.SetMode(gin.ReleaseMode)
	e := gin.New()
	e.Use(gin.Recovery(), httpadapter.RequestLogger(log))
	e.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type"},
	}))
	h.Register(e)
	e.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
