package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"keypadCalc/internal/domain"
)

// IHistoryAnalytics — запись вычислений в хранилище для аналитики (например, ClickHouse).
type IHistoryAnalytics interface {
	WriteComputation(ctx context.Context, ev domain.ComputationEvent) error
}
