package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"keypadCalc/internal/domain"
)

// ICalculatorUseCase — контракт бизнес-логики виджета: нажатия клавиш, экран, история, события из Kafka.
type ICalculatorUseCase interface {
	Press(ctx context.Context, sessionID string, key domain.Key) (domain.Display, error)
	Display(ctx context.Context, sessionID string) (domain.Display, error)
	History(ctx context.Context, sessionID string) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context, sessionID string) error
	UseHistoryEntry(ctx context.Context, sessionID string, index int) (domain.Display, error)
	HandleComputationEvent(ctx context.Context, ev domain.ComputationEvent) error
}
