package calculator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/domain"
	"keypadCalc/internal/mocks"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// stubTimer — таймер автосброса, который срабатывает только по команде.
type stubTimer struct {
	f func()
}

func (s *stubTimer) schedule(_ time.Duration, f func()) func() bool {
	s.f = f
	return func() bool { return true }
}

func keys(t *testing.T, uc *UseCase, sessionID string, ks ...domain.Key) domain.Display {
	t.Helper()
	var d domain.Display
	for _, k := range ks {
		var err error
		d, err = uc.Press(context.Background(), sessionID, k)
		require.NoError(t, err)
	}
	return d
}

func digit(v string) domain.Key { return domain.Key{Action: domain.ActionDigit, Value: v} }
func op(v string) domain.Key { return domain.Key{Action: domain.ActionOperator, Value: v} }
func action(a domain.Action) domain.Key { return domain.Key{Action: a} }

// Тест 1: вычисление публикуется в брокер ровно один раз, на "="
func TestPress_PublishesComputation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := mocks.NewMockIProducer(ctrl)

	var sent []byte
	mockBroker.EXPECT().
		Send(gomock.Any(), []byte("s1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, value []byte) error {
			sent = value
			return nil
		})

	uc := New(Config{}, nil, mockBroker, nil, newTestLogger())
	before := testutil.ToFloat64(computationsTotal.WithLabelValues("divide"))

	d := keys(t, uc, "s1", digit("6"), op("divide"), digit("2"), action(domain.ActionCalculate))

	assert.Equal(t, domain.Display{Current: "3"}, d)
	assert.Equal(t, before+1, testutil.ToFloat64(computationsTotal.WithLabelValues("divide")))

	var ev domain.ComputationEvent
	require.NoError(t, json.Unmarshal(sent, &ev))
	assert.Equal(t, "s1", ev.SessionID)
	assert.Equal(t, "6 ÷ 2", ev.Expression)
	assert.Equal(t, "3", ev.Result)
	assert.Equal(t, domain.OpDivide, ev.Operation)
}

// Тест 2: цепочка 2 + 3 × публикует промежуточное вычисление
func TestPress_ChainPublishesIntermediate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := mocks.NewMockIProducer(ctrl)
	mockBroker.EXPECT().Send(gomock.Any(), []byte("s1"), gomock.Any()).Return(nil).Times(1)

	uc := New(Config{}, nil, mockBroker, nil, newTestLogger())

	d := keys(t, uc, "s1", digit("2"), op("+"), digit("3"), op("×"))
	assert.Equal(t, domain.Display{Previous: "5 ×"}, d)
}

// Тест 3: деление на ноль — ничего не публикуется, экран Error, потом сброс
func TestPress_DivisionByZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Send не ожидается: любой вызов уронит тест
	mockBroker := mocks.NewMockIProducer(ctrl)
	mockStore := mocks.NewMockISessionStore(ctrl)
	mockStore.EXPECT().Load(gomock.Any(), "s1").Return(calc.State{}, false, nil)
	mockStore.EXPECT().Save(gomock.Any(), "s1", gomock.Any()).Return(nil).Times(4)

	timer := &stubTimer{}
	uc := New(Config{}, mockStore, mockBroker, nil, newTestLogger(), calc.WithScheduler(timer.schedule))
	before := testutil.ToFloat64(errorsTotal.WithLabelValues("division_by_zero"))

	d := keys(t, uc, "s1", digit("5"), op("divide"), digit("0"), action(domain.ActionCalculate))
	assert.Equal(t, domain.Display{Current: calc.ErrorText, Previous: "5 ÷", Error: true}, d)
	assert.Equal(t, before+1, testutil.ToFloat64(errorsTotal.WithLabelValues("division_by_zero")))

	history, err := uc.History(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	// автосброс сохраняет снапшот ещё раз
	mockStore.EXPECT().Save(gomock.Any(), "s1", calc.State{Current: "0"}).Return(nil)
	require.NotNil(t, timer.f)
	timer.f()

	d, err = uc.Display(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.Display{Current: "0"}, d)
}

// Тест 4: ошибка брокера не ломает нажатие
func TestPress_BrokerErrorIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBroker := mocks.NewMockIProducer(ctrl)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))

	uc := New(Config{}, nil, mockBroker, nil, newTestLogger())

	d := keys(t, uc, "s1", digit("1"), op("add"), digit("1"), action(domain.ActionCalculate))
	assert.Equal(t, "2", d.Current)
}

// Тест 5: сессия поднимается из хранилища при первом обращении
func TestPress_RestoresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	saved := calc.State{
		Current:     "",
		Previous:    "10",
		Operation:   domain.OpSubtract,
		ResetScreen: true,
		History:     []domain.HistoryEntry{{Expression: "4 + 6", Result: "10", Operation: domain.OpAdd}},
	}

	mockStore := mocks.NewMockISessionStore(ctrl)
	gomock.InOrder(
		mockStore.EXPECT().Load(gomock.Any(), "s1").Return(saved, true, nil),
		mockStore.EXPECT().Save(gomock.Any(), "s1", gomock.Any()).Return(nil).Times(2),
	)

	uc := New(Config{}, mockStore, nil, nil, newTestLogger())

	d := keys(t, uc, "s1", digit("4"), action(domain.ActionCalculate))
	assert.Equal(t, domain.Display{Current: "6"}, d)

	history, err := uc.History(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "10 − 4", history[0].Expression)
	assert.Equal(t, "4 + 6", history[1].Expression)
}

// Тест 6: ошибка хранилища при загрузке — сессия начинается с нуля
func TestPress_StoreLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockISessionStore(ctrl)
	mockStore.EXPECT().Load(gomock.Any(), "s1").Return(calc.State{}, false, errors.New("redis down"))
	mockStore.EXPECT().Save(gomock.Any(), "s1", gomock.Any()).Return(errors.New("redis down"))

	uc := New(Config{}, mockStore, nil, nil, newTestLogger())

	d, err := uc.Press(context.Background(), "s1", digit("7"))
	require.NoError(t, err)
	assert.Equal(t, "7", d.Current)
}

func TestPress_Validation(t *testing.T) {
	uc := New(Config{}, nil, nil, nil, newTestLogger())
	ctx := context.Background()

	_, err := uc.Press(ctx, "", digit("1"))
	assert.ErrorIs(t, err, domain.ErrEmptySession)

	_, err = uc.Press(ctx, "s1", domain.Key{Action: "sqrt"})
	assert.ErrorIs(t, err, domain.ErrUnknownAction)

	_, err = uc.Press(ctx, "s1", op("pow"))
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)

	assert.Empty(t, uc.sessions, "невалидное нажатие не создаёт сессию")
}

func TestPress_AllActions(t *testing.T) {
	uc := New(Config{}, nil, nil, nil, newTestLogger())

	d := keys(t, uc, "s1",
		digit("5"), digit("0"), action(domain.ActionPercent),
	)
	assert.Equal(t, "0.5", d.Current)

	d = keys(t, uc, "s1", action(domain.ActionDecimal))
	assert.Equal(t, "0.5", d.Current, "вторая точка игнорируется")

	d = keys(t, uc, "s1", action(domain.ActionDelete), action(domain.ActionDelete))
	assert.Equal(t, "0", d.Current)

	d = keys(t, uc, "s1", digit("9"), op("subtract"), action(domain.ActionClear))
	assert.Equal(t, domain.Display{Current: "0"}, d)
}

func TestSessionsAreIsolated(t *testing.T) {
	uc := New(Config{}, nil, nil, nil, newTestLogger())

	keys(t, uc, "a", digit("1"), op("+"), digit("1"), action(domain.ActionCalculate))
	keys(t, uc, "b", digit("8"))

	da, err := uc.Display(context.Background(), "a")
	require.NoError(t, err)
	db, err := uc.Display(context.Background(), "b")
	require.NoError(t, err)

	assert.Equal(t, "2", da.Current)
	assert.Equal(t, "8", db.Current)

	hb, err := uc.History(context.Background(), "b")
	require.NoError(t, err)
	assert.Empty(t, hb)
}

func TestHistory_UseAndClear(t *testing.T) {
	uc := New(Config{}, nil, nil, nil, newTestLogger())
	ctx := context.Background()

	keys(t, uc, "s1", digit("2"), op("*"), digit("3"), action(domain.ActionCalculate))
	keys(t, uc, "s1", digit("1"), digit("0"), op("/"), digit("4"), action(domain.ActionCalculate))

	history, err := uc.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "2.5", history[0].Result)
	assert.Equal(t, "6", history[1].Result)

	d, err := uc.UseHistoryEntry(ctx, "s1", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Display{Current: "6"}, d)

	_, err = uc.UseHistoryEntry(ctx, "s1", 5)
	assert.ErrorIs(t, err, domain.ErrHistoryIndex)

	require.NoError(t, uc.ClearHistory(ctx, "s1"))
	history, err = uc.History(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = uc.UseHistoryEntry(ctx, "s1", 0)
	assert.ErrorIs(t, err, domain.ErrHistoryIndex)
}

func TestHandleComputationEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalytics := mocks.NewMockIHistoryAnalytics(ctrl)
	ev := domain.ComputationEvent{SessionID: "s1", Expression: "1 + 1", Result: "2", Operation: domain.OpAdd}

	gomock.InOrder(
		mockAnalytics.EXPECT().WriteComputation(gomock.Any(), ev).Return(nil),
		mockAnalytics.EXPECT().WriteComputation(gomock.Any(), ev).Return(errors.New("click down")),
	)

	uc := New(Config{}, nil, nil, mockAnalytics, newTestLogger())

	assert.NoError(t, uc.HandleComputationEvent(context.Background(), ev))
	assert.Error(t, uc.HandleComputationEvent(context.Background(), ev))
}

func TestEvictIdle(t *testing.T) {
	uc := New(Config{TTL: time.Minute}, nil, nil, nil, newTestLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	keys(t, uc, "old", digit("1"))
	now = now.Add(50 * time.Second)
	keys(t, uc, "fresh", digit("2"))
	now = now.Add(20 * time.Second)

	assert.Equal(t, []string{"old"}, uc.evictIdle(context.Background()))
	assert.Contains(t, uc.sessions, "fresh")
	assert.NotContains(t, uc.sessions, "old")

	// вытесненная сессия начинается заново
	d, err := uc.Display(context.Background(), "old")
	require.NoError(t, err)
	assert.Equal(t, "0", d.Current)
}

func TestEvictIdle_DropsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := mocks.NewMockISessionStore(ctrl)
	mockStore.EXPECT().Load(gomock.Any(), "old").Return(calc.State{}, false, nil)
	mockStore.EXPECT().Save(gomock.Any(), "old", gomock.Any()).Return(nil)
	mockStore.EXPECT().Delete(gomock.Any(), "old").Return(errors.New("redis down"))

	uc := New(Config{TTL: time.Minute}, mockStore, nil, nil, newTestLogger())
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	keys(t, uc, "old", digit("1"))
	now = now.Add(2 * time.Minute)

	// ошибка удаления только логируется, сессия всё равно вытесняется
	assert.Equal(t, []string{"old"}, uc.evictIdle(context.Background()))
	assert.Empty(t, uc.sessions)
	assert.Empty(t, uc.evictIdle(context.Background()))
}
