package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "keypadCalc/internal/api/http"
	"keypadCalc/internal/api/http/controllers/calculator"
	"keypadCalc/internal/api/http/controllers/system"
	"keypadCalc/internal/infrastructure/click"
	"keypadCalc/internal/infrastructure/kafka"
	"keypadCalc/internal/infrastructure/redis"
	"keypadCalc/internal/pkg/logger"
	"keypadCalc/internal/ports"
	calcUsecase "keypadCalc/internal/usecase/calculator"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (внешние сервисы подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// backends — включённые внешние зависимости. Выключенная зависимость остаётся nil-интерфейсом.
type backends struct {
	store     ports.ISessionStore
	producer  ports.IProducer
	analytics ports.IHistoryAnalytics
	pingers   map[string]system.Pinger
	closers   []func() error
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			slog.Warn("close backend", "error", err)
		}
	}
}

// connect подключает Redis, Kafka-продюсер и ClickHouse по флагам ENABLED.
func (a *App) connect(ctx context.Context, log *slog.Logger) (*backends, error) {
	b := &backends{pingers: make(map[string]system.Pinger)}

	if a.cfg.Redis.Enabled {
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			b.close()
			return nil, fmt.Errorf("redis: %w", err)
		}
		b.closers = append(b.closers, rdb.Close)
		store := redis.NewSessionStore(rdb, a.cfg.Redis.Prefix, a.cfg.Redis.TTL, log)
		b.store = store
		b.pingers["redis"] = store
	}

	if a.cfg.ClickHouse.Enabled {
		ch, err := click.New(&a.cfg.ClickHouse)
		if err != nil {
			b.close()
			return nil, fmt.Errorf("clickhouse: %w", err)
		}
		b.closers = append(b.closers, ch.Close)
		writer := click.NewHistoryWriter(ch, a.cfg.ClickHouse.Database)
		if err := writer.EnsureTable(ctx); err != nil {
			b.close()
			return nil, fmt.Errorf("clickhouse migrate: %w", err)
		}
		b.analytics = writer
		b.pingers["clickhouse"] = ch
	}

	if a.cfg.Kafka.Enabled {
		producer := kafka.NewProducer(&a.cfg.Kafka)
		b.closers = append(b.closers, producer.Close)
		b.producer = producer
	}

	return b, nil
}

// Run подключает включённые бэкенды, поднимает use case, консьюмера Kafka и HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel, a.cfg.LogFile)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := a.connect(ctx, log)
	if err != nil {
		return err
	}
	defer b.close()

	uc := calcUsecase.New(a.cfg.Session, b.store, b.producer, b.analytics, log)
	go uc.RunJanitor(ctx)

	if a.cfg.Kafka.Enabled {
		consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("kafka consumer failed", "error", err)
			}
		}()
	}

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(b.pingers, log),
		calculator.New(uc, log))

	log.Info("application started",
		"http", a.cfg.Server.Host+":"+a.cfg.Server.Port,
		"redis", a.cfg.Redis.Enabled,
		"kafka", a.cfg.Kafka.Enabled,
		"clickhouse", a.cfg.ClickHouse.Enabled)

	return srv.Start(ctx)
}
