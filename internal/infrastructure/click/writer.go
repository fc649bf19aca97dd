package click

import (
	"context"
	"fmt"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

var _ ports.IHistoryAnalytics = (*HistoryWriter)(nil)

const historyAnalyticsTable = "calculator_history_analytics"

// HistoryWriter записывает вычисления в ClickHouse в формате, удобном для аналитики (GROUP BY operation, по времени и т.д.).
type HistoryWriter struct {
	db    *Client
	table string
}

// NewHistoryWriter создаёт писатель истории в таблицу <database>.calculator_history_analytics.
func NewHistoryWriter(db *Client, database string) *HistoryWriter {
	if database == "" {
		database = "default"
	}
	return &HistoryWriter{db: db, table: database + "." + historyAnalyticsTable}
}

// EnsureTable создаёт таблицу, если её ещё нет. Вызови один раз при старте приложения.
func (w *HistoryWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			session_id String,
			expression String,
			result String,
			operation LowCardinality(String),
			created_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (created_at, operation)
		PARTITION BY toYYYYMM(created_at)`,
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteComputation реализует ports.IHistoryAnalytics: пишет одно вычисление в ClickHouse.
func (w *HistoryWriter) WriteComputation(ctx context.Context, ev domain.ComputationEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (session_id, expression, result, operation, created_at) VALUES (?, ?, ?, ?, ?)",
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.SessionID, ev.Expression, ev.Result, ev.Operation.String(), ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert computation: %w", err)
	}
	return nil
}

// CountByOperation возвращает число вычислений по каждой операции (для отчётов и интеграционных тестов).
func (w *HistoryWriter) CountByOperation(ctx context.Context) (map[string]uint64, error) {
	rows, err := w.db.DB().QueryContext(ctx,
		fmt.Sprintf("SELECT operation, count() FROM %s GROUP BY operation", w.table))
	if err != nil {
		return nil, fmt.Errorf("count by operation: %w", err)
	}
	defer rows.Close()

	out := make(map[string]uint64)
	for rows.Next() {
		var (
			op string
			n  uint64
		)
		if err := rows.Scan(&op, &n); err != nil {
			return nil, err
		}
		out[op] = n
	}
	return out, rows.Err()
}
