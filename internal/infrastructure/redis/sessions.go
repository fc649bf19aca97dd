package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/ports"
)

var _ ports.ISessionStore = (*SessionStore)(nil)

const defaultPrefix = "keypadcalc:session:"

// SessionStore реализует ports.ISessionStore через Redis: один JSON-снапшот на сессию, TTL продлевается при каждом сохранении.
type SessionStore struct {
	cli    *Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewSessionStore возвращает хранилище сессий. ttl == 0 — без истечения.
func NewSessionStore(cli *Client, prefix string, ttl time.Duration, log *slog.Logger) *SessionStore {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &SessionStore{cli: cli, prefix: prefix, ttl: ttl, log: log}
}

func (s *SessionStore) key(sessionID string) string {
	return s.prefix + sessionID
}

// Load возвращает снапшот сессии. Если ключа нет — found == false.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (calc.State, bool, error) {
	b, err := s.cli.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return calc.State{}, false, nil
		}
		s.log.Debug("session get failed", "session", sessionID, "error", err)
		return calc.State{}, false, err
	}
	var state calc.State
	if err := json.Unmarshal(b, &state); err != nil {
		s.log.Debug("session decode failed", "session", sessionID, "error", err)
		return calc.State{}, false, fmt.Errorf("session decode: %w", err)
	}
	return state, true, nil
}

// Save перезаписывает снапшот сессии.
func (s *SessionStore) Save(ctx context.Context, sessionID string, state calc.State) error {
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("session encode: %w", err)
	}
	if err := s.cli.Set(ctx, s.key(sessionID), b, s.ttl).Err(); err != nil {
		s.log.Debug("session set failed", "session", sessionID, "error", err)
		return err
	}
	return nil
}

// Delete удаляет снапшот сессии.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.cli.Del(ctx, s.key(sessionID)).Err()
}

// Ping проверяет соединение (для readiness).
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.cli.Ping(ctx)
}
