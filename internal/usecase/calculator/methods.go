package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/domain"
)

// Press — нажатие клавиши: передаёт действие движку, публикует новые записи истории и сохраняет снапшот.
func (u *UseCase) Press(ctx context.Context, sessionID string, key domain.Key) (domain.Display, error) {
	if sessionID == "" {
		return domain.Display{}, domain.ErrEmptySession
	}
	if err := key.Validate(); err != nil {
		return domain.Display{}, err
	}

	s := u.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.engine.History().Len()
	apply(s.engine, key)
	display := s.engine.Display()

	if display.Error {
		errorsTotal.WithLabelValues("division_by_zero").Inc()
		u.log.Info("division by zero", "session", sessionID)
	}
	for _, entry := range s.engine.History().Since(before) {
		computationsTotal.WithLabelValues(entry.Operation.String()).Inc()
		u.publish(ctx, sessionID, entry)
	}
	u.save(ctx, sessionID, s)

	return display, nil
}

// apply вызывает метод движка, соответствующий клавише. Клавиша уже провалидирована.
func apply(e *calc.Engine, key domain.Key) {
	switch key.Action {
	case domain.ActionDigit:
		e.AppendDigitOrPoint(key.Value)
	case domain.ActionDecimal:
		e.AppendDigitOrPoint(".")
	case domain.ActionOperator:
		op, err := domain.ParseOperation(key.Value)
		if err == nil {
			e.ChooseOperation(op)
		}
	case domain.ActionCalculate:
		e.Compute()
	case domain.ActionClear:
		e.ClearAll()
	case domain.ActionDelete:
		e.DeleteLastChar()
	case domain.ActionPercent:
		e.ApplyPercent()
	}
}

// Display — текущее состояние экрана.
func (u *UseCase) Display(ctx context.Context, sessionID string) (domain.Display, error) {
	if sessionID == "" {
		return domain.Display{}, domain.ErrEmptySession
	}
	s := u.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Display(), nil
}

// History — история сессии, новые записи первыми.
func (u *UseCase) History(ctx context.Context, sessionID string) ([]domain.HistoryEntry, error) {
	if sessionID == "" {
		return nil, domain.ErrEmptySession
	}
	s := u.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(s.engine.History().NewestFirst()), nil
}

// ClearHistory очищает историю сессии.
func (u *UseCase) ClearHistory(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrEmptySession
	}
	s := u.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.History().Clear()
	u.save(ctx, sessionID, s)
	u.log.Info("history cleared", "session", sessionID)
	return nil
}

// UseHistoryEntry подставляет результат index-й записи (0 — самая новая) в текущий операнд.
func (u *UseCase) UseHistoryEntry(ctx context.Context, sessionID string, index int) (domain.Display, error) {
	if sessionID == "" {
		return domain.Display{}, domain.ErrEmptySession
	}
	s := u.session(ctx, sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.engine.History().At(index)
	if !ok {
		return domain.Display{}, fmt.Errorf("%w: %d", domain.ErrHistoryIndex, index)
	}
	s.engine.LoadValue(entry.Result)
	u.save(ctx, sessionID, s)
	return s.engine.Display(), nil
}

// HandleComputationEvent вызывается консьюмером при получении сообщения из топика вычислений (часть ICalculatorUseCase).
func (u *UseCase) HandleComputationEvent(ctx context.Context, ev domain.ComputationEvent) error {
	if u.analytics == nil {
		return nil
	}
	if err := u.analytics.WriteComputation(ctx, ev); err != nil {
		u.log.Warn("analytics write", "error", err)
		return err
	}
	u.log.Info("computation stored to click", "session", ev.SessionID, "expression", ev.Expression, "result", ev.Result)
	return nil
}

// publish отправляет запись истории в брокер. Ошибка брокера не ломает нажатие.
func (u *UseCase) publish(ctx context.Context, sessionID string, entry domain.HistoryEntry) {
	if u.broker == nil {
		return
	}
	value, err := json.Marshal(domain.ComputationEvent{
		SessionID:  sessionID,
		Expression: entry.Expression,
		Result:     entry.Result,
		Operation:  entry.Operation,
		CreatedAt:  u.now(),
	})
	if err != nil {
		u.log.Warn("event marshal", "session", sessionID, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(sessionID), value); err != nil {
		u.log.Warn("broker send", "session", sessionID, "error", err)
		return
	}
	u.log.Info("computation published", "session", sessionID, "expression", entry.Expression, "result", entry.Result)
}

// save пишет снапшот сессии в store. Вызывается под s.mu.
func (u *UseCase) save(ctx context.Context, sessionID string, s *session) {
	if u.store == nil {
		return
	}
	if err := u.store.Save(ctx, sessionID, s.engine.State()); err != nil {
		u.log.Warn("session save", "session", sessionID, "error", err)
	}
}
