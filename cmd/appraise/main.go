package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appraise/internal/assessment"
	"appraise/internal/auth"
	"appraise/internal/config"
	"appraise/internal/db"
	httpx "appraise/internal/http"
	"appraise/internal/logging"
	"appraise/internal/payment"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.Production)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	deps := httpx.Deps{
		JWT:     auth.NewJWT(cfg.JWTSecret),
		Gateway: payment.NewStripeGateway(cfg.StripeSecretKey),
		Log:     log,
	}

	if cfg.DatabaseURL != "" {
		gdb, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("connect database", zap.Error(err))
		}
		if err := db.AutoMigrateAndIndexes(gdb); err != nil {
			log.Fatal("migrate database", zap.Error(err))
		}
		deps.Users = &auth.GormUserStore{DB: gdb}
		deps.Assessments = &assessment.GormStore{DB: gdb}
		log.Info("using postgres store")
	} else {
		deps.Users = auth.NewMemoryUserStore()
		deps.Assessments = assessment.NewMemoryStore()
		log.Info("using in-memory store")
	}

	if cfg.StripeSecretKey == "" {
		log.Warn("STRIPE_SECRET_KEY not set; payments will fail")
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpx.NewRouter(cfg, deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info("server is running", zap.String("addr", cfg.HTTPAddr), zap.Bool("production", cfg.Production))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
