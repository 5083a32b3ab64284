package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"aurum/internal/application"
	"aurum/internal/audit"
	"aurum/internal/customer"
	"aurum/internal/identity"
	"aurum/internal/jwttoken"
	"aurum/internal/notification"
	"aurum/internal/officer"
	"aurum/internal/platform/config"
	"aurum/internal/platform/httpserver"
	"aurum/internal/platform/logger"
	"aurum/internal/platform/metrics"
	"aurum/internal/platform/redis"
	"aurum/internal/recordstore"
	"aurum/internal/session"
	httptransport "aurum/internal/transport/http"
	"aurum/internal/visit"
)

// main wires the stores and services and runs the HTTP server. Optional
// backends (Postgres, Redis, Kafka) attach only when configured; the
// flat-file and in-memory defaults carry a bare deployment.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := recordstore.OpenCSV(cfg.DataDir)
	if err != nil {
		log.Error("open record store", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	custStore := customer.NewRecordStore(records)
	offStore := officer.NewRecordStore(records)
	if err := officer.Seed(ctx, offStore); err != nil {
		log.Error("seed officers", "error", err)
		os.Exit(1)
	}

	var appStore application.Store = application.NewRecordStore(records)
	var auditStore audit.Store = audit.NewRecordStore(records)
	if cfg.PostgresDSN != "" {
		db, err := sql.Open("postgres", cfg.PostgresDSN)
		if err != nil {
			log.Error("open postgres", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping postgres", "error", err)
			os.Exit(1)
		}
		appStore = application.NewPostgresStore(db)
		auditStore = audit.NewPostgresStore(db)
		log.Info("postgres storage enabled")
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	notifyOpts := []notification.Option{notification.WithCounter(m.NotificationsWritten)}
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err := notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("connect kafka", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		notifyOpts = append(notifyOpts, notification.WithPublisher(publisher))
		log.Info("kafka notification fan-out enabled", "topic", cfg.KafkaTopic)
	}

	var drafts session.DraftStore = session.NewMemoryStore(cfg.SessionTTL)
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		drafts = session.NewRedisStore(redisClient, cfg.SessionTTL)
		log.Info("redis draft storage enabled")
	}

	custSvc := customer.NewService(custStore)
	offSvc := officer.NewService(offStore)
	notes := notification.NewService(notification.NewRecordStore(records), log, notifyOpts...)
	auditor := audit.NewPublisher(auditStore)
	appSvc := application.NewService(appStore, custSvc, identity.NewRuleMatcher(),
		notes, auditor, visit.NewRecordStore(records), log)

	tokens := jwttoken.NewService(cfg.JWTSigningKey, "aurum")

	handler := httptransport.New(httptransport.Config{
		Logger:        log,
		Metrics:       m,
		Customers:     custSvc,
		Officers:      offSvc,
		Applications:  appSvc,
		Notifications: notes,
		AuditTrail:    auditor,
		Drafts:        drafts,
		Tokens:        tokens,
		Validator:     jwttoken.NewAdapter(tokens),
		SessionTTL:    cfg.SessionTTL,
	})

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler, registry))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server listening", "addr", cfg.Addr, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
