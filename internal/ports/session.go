package ports

//go:generate mockgen -source=session.go -destination=../mocks/session_mock.go -package=mocks

import (
	"context"

	"keypadCalc/internal/calc"
)

// ISessionStore — снапшоты сессий виджета (например, Redis с TTL). Нужен, чтобы сессия
// пережила рестарт процесса в пределах своего времени жизни.
type ISessionStore interface {
	Load(ctx context.Context, sessionID string) (state calc.State, found bool, err error)
	Save(ctx context.Context, sessionID string, state calc.State) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
