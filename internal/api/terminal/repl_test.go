package terminal

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypadCalc/internal/domain"
	"keypadCalc/internal/usecase/calculator"
)

func newREPL() (*REPL, *bytes.Buffer) {
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	uc := calculator.New(calculator.Config{}, nil, nil, nil, log)
	var buf bytes.Buffer
	return New(uc, &buf, false, false), &buf
}

func TestKeys(t *testing.T) {
	keys, ok := Keys("12.5")
	require.True(t, ok)
	assert.Equal(t, []domain.Key{
		{Action: domain.ActionDigit, Value: "1"},
		{Action: domain.ActionDigit, Value: "2"},
		{Action: domain.ActionDecimal},
		{Action: domain.ActionDigit, Value: "5"},
	}, keys)

	keys, ok = Keys("×")
	require.True(t, ok)
	assert.Equal(t, []domain.Key{{Action: domain.ActionOperator, Value: "multiply"}}, keys)

	_, ok = Keys("12a")
	assert.False(t, ok)
	_, ok = Keys("sqrt")
	assert.False(t, ok)
}

func TestLine_Compute(t *testing.T) {
	r, out := newREPL()

	quit, err := r.Line(context.Background(), "1200 * 3")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Equal(t, []string{"1,200 ×", "3"}, trimmed(out.String()))

	out.Reset()
	_, err = r.Line(context.Background(), "=")
	require.NoError(t, err)
	assert.Equal(t, []string{"3,600"}, trimmed(out.String()))
}

func TestLine_History(t *testing.T) {
	r, out := newREPL()
	ctx := context.Background()

	_, err := r.Line(ctx, "6 / 2 = 1 + 1 =")
	require.NoError(t, err)

	out.Reset()
	_, err = r.Line(ctx, "h")
	require.NoError(t, err)
	assert.Equal(t, []string{"0  1 + 1 = 2", "1  6 ÷ 2 = 3", "2"}, trimmed(out.String()))

	out.Reset()
	_, err = r.Line(ctx, "u 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, trimmed(out.String()))

	out.Reset()
	_, err = r.Line(ctx, "hc h")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "история пуста")
}

func TestLine_UnknownAndQuit(t *testing.T) {
	r, out := newREPL()

	quit, err := r.Line(context.Background(), "7 sqrt")
	require.NoError(t, err)
	assert.False(t, quit)
	assert.Contains(t, out.String(), "неизвестная клавиша: sqrt")
	assert.Contains(t, out.String(), "7")

	quit, err = r.Line(context.Background(), "q")
	require.NoError(t, err)
	assert.True(t, quit)
}

func TestRun(t *testing.T) {
	r, out := newREPL()

	err := r.Run(context.Background(), strings.NewReader("9 del 8\n\nq\n5\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"8"}, trimmed(out.String()), "после q ввод не читается")
}

func trimmed(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
