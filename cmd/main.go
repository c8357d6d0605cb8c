package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/cache"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/claims"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/config"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/db"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/kafka"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/logger"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/notify"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/repository/postgresql"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/server"
	"github.com/donmoreno09/Online-Lost-And-Found-System/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	l := logger.New()
	defer l.Sync()

	dbase, err := db.NewDb(ctx, cfg.DB.DSN())
	if err != nil {
		l.Fatal("database init error", zap.Error(err))
	}
	defer dbase.GetPool().Close()

	itemRepo := postgresql.NewItemRepo(dbase)
	userRepo := postgresql.NewUserRepo(dbase)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	itemCache := cache.NewItemCache(itemRepo, l)
	if err := itemCache.LoadInitialData(ctx); err != nil {
		l.Warn("item cache priming failed, starting cold", zap.Error(err))
	}

	gateway := notify.NewSMTPGateway(cfg.SMTP, l)
	dispatcher := notify.NewDispatcher(gateway, 2, 256, l)

	engine := claims.NewEngine(itemRepo, userRepo, itemCache, dispatcher, l, cfg.BaseURL, cfg.ClaimTTL)
	itemService := storage.NewItemService(itemRepo, itemCache, l)

	imageStore, err := storage.NewImageStore(cfg.ImageDir, l)
	if err != nil {
		l.Fatal("image store init error", zap.Error(err))
	}

	producer := kafka.NewWriterProducer(cfg.Kafka.Brokers, l)
	publisher := kafka.NewPublisher(dbase, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	}, l)

	audit := server.NewAuditManager(2, 5, 500*time.Millisecond, outboxRepo, dbase, cfg.Kafka.AuditTopic, l)

	srv := server.New(itemService, engine, userRepo, imageStore, cfg.Auth, audit, l)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Run(gctx, cfg.HTTPPort)
	})

	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	g.Go(func() error {
		ticker := time.NewTicker(cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				released, err := engine.ExpireStaleClaims(gctx)
				if err != nil {
					l.Error("stale claim sweep failed", zap.Error(err))
					continue
				}
				if released > 0 {
					l.Info("stale claim sweep finished", zap.Int("released", released))
				}
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		<-gctx.Done()
		l.Info("shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error("server shutdown failed", zap.Error(err))
		}
		dispatcher.Shutdown(shutdownCtx)
		publisher.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		l.Fatal("fatal error", zap.Error(err))
	}

	l.Info("server gracefully stopped")
}
