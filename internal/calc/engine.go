// Package calc — ядро калькулятора: ввод операндов, отложенная операция, вычисление,
// форматирование и история сессии. Пакет не знает ни о HTTP, ни о хранилищах.
package calc

import (
	"errors"
	"sync"
	"time"

	"keypadCalc/internal/domain"
)

const (
	// DefaultResetDelay — сколько держится "Error" после деления на ноль.
	DefaultResetDelay = 1500 * time.Millisecond
	// ErrorText — что показывает экран при делении на ноль.
	ErrorText = "Error"
)

// Scheduler откладывает вызов f на d и возвращает функцию отмены (как time.Timer.Stop).
type Scheduler func(d time.Duration, f func()) (cancel func() bool)

func afterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}

// Option настраивает Engine.
type Option func(*Engine)

// WithResetDelay задаёт задержку автосброса после ошибки.
func WithResetDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.resetDelay = d
		}
	}
}

// WithScheduler подменяет таймер автосброса (в тестах — ручной).
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) {
		if s != nil {
			e.schedule = s
		}
	}
}

// WithAutoResetHook вызывается после того, как сработал автосброс (вне блокировки движка).
func WithAutoResetHook(f func()) Option {
	return func(e *Engine) {
		e.onAutoReset = f
	}
}

// State — снимок движка и истории для хранения сессии.
type State struct {
	Current     string                `json:"current"`
	Previous    string                `json:"previous"`
	Operation   domain.Operation      `json:"operation"`
	ResetScreen bool                  `json:"reset_screen"`
	History     []domain.HistoryEntry `json:"history"`
}

// Engine — состояние калькулятора: текущий и предыдущий операнды, выбранная операция
// и флаг "следующая цифра начинает новое число". Все методы тотальны: ошибок не возвращают.
//
// Деление на ноль переводит экран в "Error" и планирует ClearAll через resetDelay.
// Любое другое действие до срабатывания таймера отменяет его.
type Engine struct {
	mu      sync.Mutex
	history *History

	current     Operand
	previous    Operand
	op          domain.Operation
	resetScreen bool

	failed      bool
	cancelReset func() bool
	resetSeq    uint64
	resetDelay  time.Duration
	schedule    Scheduler
	onAutoReset func()
}

// New создаёт движок, пишущий успешные вычисления в history.
func New(history *History, opts ...Option) *Engine {
	if history == nil {
		history = NewHistory()
	}
	e := &Engine{
		history:    history,
		current:    NewOperand("0"),
		resetDelay: DefaultResetDelay,
		schedule:   afterFunc,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// History возвращает историю, в которую пишет движок.
func (e *Engine) History() *History {
	return e.history
}

// AppendDigitOrPoint обрабатывает цифру "0"–"9" или точку. Прочие токены игнорируются.
func (e *Engine) AppendDigitOrPoint(token string) {
	if !isEntryToken(token) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()

	if e.current.String() == "0" || e.resetScreen {
		if token == point {
			e.current = NewOperand("0.")
		} else {
			e.current = NewOperand(token)
		}
		e.resetScreen = false
		return
	}
	e.current, _ = e.current.Append(token)
}

// ChooseOperation выбирает операцию. Если уже есть левый операнд и набран правый,
// сначала вычисляет отложенное выражение (цепочка 2 + 3 × ...).
func (e *Engine) ChooseOperation(op domain.Operation) {
	if !op.Valid() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()

	if e.current.IsEmpty() {
		if !e.previous.IsEmpty() {
			e.op = op
		}
		return
	}
	if !e.previous.IsEmpty() {
		e.compute()
		if e.failed {
			return
		}
	}
	e.op = op
	e.previous = e.current
	e.current = Operand{}
	e.resetScreen = true
}

// Compute вычисляет previous <op> current. Без операции или с неразбираемым операндом ничего не делает.
func (e *Engine) Compute() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	e.compute()
}

func (e *Engine) compute() {
	prev, ok := e.previous.Value()
	if !ok {
		return
	}
	cur, ok := e.current.Value()
	if !ok {
		return
	}
	if !e.op.Valid() {
		return
	}

	expression := Format(e.previous.String()) + " " + e.op.Symbol() + " " + Format(formatNumber(cur))

	value, err := e.op.Apply(prev, cur)
	if err != nil {
		if errors.Is(err, domain.ErrDivisionByZero) {
			e.fail()
		}
		return
	}

	result := formatNumber(roundSignificant(value))
	e.history.Record(domain.HistoryEntry{
		Expression: expression,
		Result:     result,
		Operation:  e.op,
	})

	e.current = NewOperand(result)
	e.op = domain.OpNone
	e.previous = Operand{}
	e.resetScreen = true
}

// DeleteLastChar стирает последний символ текущего операнда.
func (e *Engine) DeleteLastChar() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	e.current = e.current.DropLast()
}

// ClearAll возвращает движок в начальное состояние. История не трогается.
func (e *Engine) ClearAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
	e.clearAll()
}

func (e *Engine) clearAll() {
	e.current = NewOperand("0")
	e.previous = Operand{}
	e.op = domain.OpNone
	e.resetScreen = false
}

// ApplyPercent делит текущий операнд на 100 (без округления до 15 знаков).
func (e *Engine) ApplyPercent() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()

	v, ok := e.current.Value()
	if !ok {
		return
	}
	e.current = NewOperand(formatNumber(v / 100))
}

// LoadValue подставляет результат из истории как текущий операнд.
func (e *Engine) LoadValue(result string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()

	e.current = NewOperand(result)
	e.op = domain.OpNone
	e.previous = Operand{}
	e.resetScreen = true
}

// Failed сообщает, что экран сейчас показывает "Error".
func (e *Engine) Failed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.failed
}

// CurrentDisplay — отформатированный текущий операнд или "Error".
func (e *Engine) CurrentDisplay() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentDisplay()
}

// PendingDisplay — строка над экраном: "1,200 ×" при выбранной операции, иначе пусто.
func (e *Engine) PendingDisplay() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pendingDisplay()
}

// Display возвращает обе строки экрана одним снимком.
func (e *Engine) Display() domain.Display {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.Display{
		Current:  e.currentDisplay(),
		Previous: e.pendingDisplay(),
		Error:    e.failed,
	}
}

func (e *Engine) currentDisplay() string {
	if e.failed {
		return ErrorText
	}
	return Format(e.current.String())
}

func (e *Engine) pendingDisplay() string {
	if e.op == domain.OpNone {
		return ""
	}
	return Format(e.previous.String()) + " " + e.op.Symbol()
}

// State возвращает снимок движка вместе с историей.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Current:     e.current.String(),
		Previous:    e.previous.String(),
		Operation:   e.op,
		ResetScreen: e.resetScreen,
		History:     e.history.Entries(),
	}
}

// Restore загружает снимок, отменяя отложенный автосброс.
func (e *Engine) Restore(s State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()

	e.current = NewOperand(s.Current)
	e.previous = NewOperand(s.Previous)
	e.op = s.Operation
	if !e.op.Valid() {
		e.op = domain.OpNone
	}
	e.resetScreen = s.ResetScreen
	e.history.Replace(s.History)
}

// Close отменяет отложенный автосброс (движок выбрасывается).
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.settle()
}

// settle снимает состояние ошибки и отменяет таймер автосброса. Вызывается под mu.
func (e *Engine) settle() {
	if e.cancelReset != nil {
		e.cancelReset()
		e.cancelReset = nil
	}
	e.resetSeq++
	e.failed = false
}

func (e *Engine) fail() {
	e.failed = true
	seq := e.resetSeq
	e.cancelReset = e.schedule(e.resetDelay, func() { e.autoReset(seq) })
}

func (e *Engine) autoReset(seq uint64) {
	e.mu.Lock()
	if seq != e.resetSeq || !e.failed {
		e.mu.Unlock()
		return
	}
	e.cancelReset = nil
	e.failed = false
	e.clearAll()
	hook := e.onAutoReset
	e.mu.Unlock()

	if hook != nil {
		hook()
	}
}
