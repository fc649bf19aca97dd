// Package terminal — клавиатура калькулятора в терминале: строка токенов превращается в нажатия клавиш.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"keypadCalc/internal/calc"
	"keypadCalc/internal/domain"
	"keypadCalc/internal/ports"
)

// SessionID — сессия, в которой работает терминал.
const SessionID = "terminal"

const help = `клавиши: цифры и "." | + - * / × ÷ | = | c (сброс) | del | % | h (история) | hc (очистить) | u <n> (взять из истории) | q (выход)`

// REPL читает строки токенов и печатает экран после каждой строки.
type REPL struct {
	uc      ports.ICalculatorUseCase
	out     *termenv.Output
	profile termenv.Profile
	prompt  bool
}

// New создаёт REPL. color и prompt включаются, когда вход и выход — терминал.
func New(uc ports.ICalculatorUseCase, w io.Writer, color, prompt bool) *REPL {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	return &REPL{
		uc:      uc,
		out:     termenv.NewOutput(w, termenv.WithProfile(profile)),
		profile: profile,
		prompt:  prompt,
	}
}

// Run обрабатывает вход до EOF, "q" или отмены ctx.
func (r *REPL) Run(ctx context.Context, in io.Reader) error {
	if r.prompt {
		fmt.Fprintln(r.out, r.styled(help, "#818cf8", false))
	}
	sc := bufio.NewScanner(in)
	for {
		if r.prompt {
			fmt.Fprint(r.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		quit, err := r.Line(ctx, sc.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Line выполняет одну строку токенов. Возвращает true, если встретился выход.
func (r *REPL) Line(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	for i := 0; i < len(fields); i++ {
		tok := fields[i]
		switch tok {
		case "q", "quit", "exit":
			return true, nil
		case "h":
			if err := r.printHistory(ctx); err != nil {
				return false, err
			}
			continue
		case "hc":
			if err := r.uc.ClearHistory(ctx, SessionID); err != nil {
				return false, err
			}
			continue
		case "u":
			if i+1 >= len(fields) {
				r.warn("u: нужен номер записи")
				continue
			}
			i++
			n, err := strconv.Atoi(fields[i])
			if err != nil {
				r.warn("u: номер должен быть числом: " + fields[i])
				continue
			}
			if _, err := r.uc.UseHistoryEntry(ctx, SessionID, n); err != nil {
				if errors.Is(err, domain.ErrHistoryIndex) {
					r.warn(err.Error())
					continue
				}
				return false, err
			}
			continue
		}

		keys, ok := Keys(tok)
		if !ok {
			r.warn("неизвестная клавиша: " + tok)
			continue
		}
		for _, k := range keys {
			if _, err := r.uc.Press(ctx, SessionID, k); err != nil {
				return false, err
			}
		}
	}
	return false, r.printDisplay(ctx)
}

// Keys переводит токен в нажатия. Число раскладывается на цифры и точку.
func Keys(tok string) ([]domain.Key, bool) {
	switch tok {
	case "=":
		return []domain.Key{{Action: domain.ActionCalculate}}, true
	case "c", "C":
		return []domain.Key{{Action: domain.ActionClear}}, true
	case "del":
		return []domain.Key{{Action: domain.ActionDelete}}, true
	case "%":
		return []domain.Key{{Action: domain.ActionPercent}}, true
	}
	if op, err := domain.ParseOperation(tok); err == nil && op != domain.OpNone {
		return []domain.Key{{Action: domain.ActionOperator, Value: op.String()}}, true
	}

	keys := make([]domain.Key, 0, len(tok))
	for _, ch := range tok {
		switch {
		case ch >= '0' && ch <= '9':
			keys = append(keys, domain.Key{Action: domain.ActionDigit, Value: string(ch)})
		case ch == '.':
			keys = append(keys, domain.Key{Action: domain.ActionDecimal})
		default:
			return nil, false
		}
	}
	return keys, true
}

func (r *REPL) printDisplay(ctx context.Context) error {
	d, err := r.uc.Display(ctx, SessionID)
	if err != nil {
		return err
	}
	if d.Previous != "" {
		fmt.Fprintln(r.out, r.styled(fmt.Sprintf("%20s", d.Previous), "#9ca3af", false))
	}
	color := "#f9fafb"
	if d.Error {
		color = "#fb7185"
	}
	fmt.Fprintln(r.out, r.styled(fmt.Sprintf("%20s", d.Current), color, true))
	return nil
}

func (r *REPL) printHistory(ctx context.Context) error {
	list, err := r.uc.History(ctx, SessionID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(r.out, r.styled("история пуста", "#9ca3af", false))
		return nil
	}
	for i, e := range list {
		fmt.Fprintf(r.out, "%3d  %s = %s\n", i, e.Expression, r.styled(calc.Format(e.Result), "#a78bfa", true))
	}
	return nil
}

func (r *REPL) warn(msg string) {
	fmt.Fprintln(r.out, r.styled(msg, "#fbbf24", false))
}

func (r *REPL) styled(s, color string, bold bool) string {
	st := r.out.String(s).Foreground(r.profile.Color(color))
	if bold {
		st = st.Bold()
	}
	return st.String()
}
