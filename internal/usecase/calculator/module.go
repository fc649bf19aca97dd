package calculator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/ports"
)

// Config — настройки сессий виджета. Переменные: CALCULATOR_SESSION_TTL, CALCULATOR_SESSION_ERROR_RESET_DELAY, ...
type Config struct {
	TTL             time.Duration `envconfig:"TTL" default:"30m"`
	ErrorResetDelay time.Duration `envconfig:"ERROR_RESET_DELAY" default:"1500ms"`
	JanitorInterval time.Duration `envconfig:"JANITOR_INTERVAL" default:"1m"`
}

// session — один виджет: движок со своей историей. mu сериализует нажатия.
type session struct {
	mu       sync.Mutex
	engine   *calc.Engine
	lastSeen time.Time
}

// UseCase — бизнес-логика виджета: держит сессии в памяти, публикует вычисления и сохраняет снапшоты.
// store, broker и analytics могут быть nil — тогда соответствующий шаг пропускается.
type UseCase struct {
	cfg       Config
	store     ports.ISessionStore
	broker    ports.IProducer
	analytics ports.IHistoryAnalytics
	log       *slog.Logger
	engineOpt []calc.Option
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// New создаёт юзкейс калькулятора. opts передаются каждому движку сессии.
func New(cfg Config, store ports.ISessionStore, broker ports.IProducer, analytics ports.IHistoryAnalytics, log *slog.Logger, opts ...calc.Option) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{
		cfg:       cfg,
		store:     store,
		broker:    broker,
		analytics: analytics,
		log:       log,
		engineOpt: opts,
		now:       time.Now,
		sessions:  make(map[string]*session),
	}
}

// session возвращает сессию по id, создавая её (и поднимая снапшот из store) при первом обращении.
func (u *UseCase) session(ctx context.Context, id string) *session {
	u.mu.Lock()
	if s, ok := u.sessions[id]; ok {
		s.lastSeen = u.now()
		u.mu.Unlock()
		return s
	}

	s := &session{lastSeen: u.now()}
	opts := append([]calc.Option{
		calc.WithResetDelay(u.cfg.ErrorResetDelay),
		calc.WithAutoResetHook(func() { u.saveAfterReset(id, s) }),
	}, u.engineOpt...)
	s.engine = calc.New(calc.NewHistory(), opts...)

	s.mu.Lock()
	defer s.mu.Unlock()
	u.sessions[id] = s
	sessionsActive.Inc()
	u.mu.Unlock()

	if u.store != nil {
		state, found, err := u.store.Load(ctx, id)
		switch {
		case err != nil:
			u.log.Warn("session load", "session", id, "error", err)
		case found:
			s.engine.Restore(state)
			u.log.Info("session restored", "session", id, "history", len(state.History))
		}
	}
	return s
}

// saveAfterReset сохраняет снапшот после автосброса по таймеру (вне запроса, поэтому свой контекст).
func (u *UseCase) saveAfterReset(id string, s *session) {
	if u.store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.mu.Lock()
	defer s.mu.Unlock()
	u.save(ctx, id, s)
}

// RunJanitor раз в JanitorInterval выкидывает из памяти сессии, простаивающие дольше TTL. Блокируется до отмены ctx.
func (u *UseCase) RunJanitor(ctx context.Context) {
	interval := u.cfg.JanitorInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ids := u.evictIdle(ctx); len(ids) > 0 {
				u.log.Info("idle sessions evicted", "count", len(ids))
			}
		}
	}
}

// evictIdle убирает из памяти простаивающие сессии вместе с их снапшотами и возвращает id.
// Снапшот удаляется под u.mu, чтобы новый запрос той же сессии не поднял устаревшее состояние.
func (u *UseCase) evictIdle(ctx context.Context) []string {
	if u.cfg.TTL <= 0 {
		return nil
	}
	deadline := u.now().Add(-u.cfg.TTL)

	u.mu.Lock()
	defer u.mu.Unlock()
	var ids []string
	for id, s := range u.sessions {
		if s.lastSeen.Before(deadline) {
			s.engine.Close()
			delete(u.sessions, id)
			sessionsActive.Dec()
			u.dropSnapshot(ctx, id)
			ids = append(ids, id)
		}
	}
	return ids
}

// dropSnapshot удаляет снапшот вытесненной сессии: простоявшая дольше TTL сессия начинается заново.
func (u *UseCase) dropSnapshot(ctx context.Context, id string) {
	if u.store == nil {
		return
	}
	if err := u.store.Delete(ctx, id); err != nil {
		u.log.Warn("session delete", "session", id, "error", err)
	}
}
