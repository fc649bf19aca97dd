package redis

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/domain"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cli, err := New(&Config{Host: mr.Host(), Port: mr.Port()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cli.Close() })

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewSessionStore(cli, "", ttl, log), mr
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	store, mr := newTestStore(t, 0)
	ctx := context.Background()

	state := calc.State{
		Current:     "",
		Previous:    "1200",
		Operation:   domain.OpMultiply,
		ResetScreen: true,
		History:     []domain.HistoryEntry{{Expression: "600 × 2", Result: "1200", Operation: domain.OpMultiply}},
	}
	require.NoError(t, store.Save(ctx, "s1", state))
	assert.True(t, mr.Exists("keypadcalc:session:s1"))

	got, found, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, state, got)
}

func TestSessionStore_LoadNotFound(t *testing.T) {
	store, _ := newTestStore(t, 0)

	got, found, err := store.Load(context.Background(), "нет-такой")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, calc.State{}, got)
}

func TestSessionStore_TTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", calc.State{Current: "5"}))
	assert.Equal(t, time.Minute, mr.TTL("keypadcalc:session:s1"))

	mr.FastForward(2 * time.Minute)

	_, found, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found, "сессия должна истечь")
}

func TestSessionStore_Delete(t *testing.T) {
	store, _ := newTestStore(t, 0)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s1", calc.State{Current: "5"}))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, found, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionStore_CorruptedSnapshot(t *testing.T) {
	store, mr := newTestStore(t, 0)
	require.NoError(t, mr.Set("keypadcalc:session:s1", "{not json"))

	_, found, err := store.Load(context.Background(), "s1")
	assert.Error(t, err)
	assert.False(t, found)
}

func TestSessionStore_Ping(t *testing.T) {
	store, mr := newTestStore(t, 0)
	require.NoError(t, store.Ping(context.Background()))

	mr.Close()
	assert.Error(t, store.Ping(context.Background()))
}
