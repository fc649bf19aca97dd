package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownOperation возвращается, когда операция не поддерживается.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrDivisionByZero — деление на ноль (движок показывает Error и сбрасывается сам).
	ErrDivisionByZero = errors.New("division by zero")
	// ErrUnknownAction — нажата клавиша, которой нет на клавиатуре.
	ErrUnknownAction = errors.New("unknown action")
	// ErrHistoryIndex — в истории нет записи с таким номером.
	ErrHistoryIndex = errors.New("history index out of range")
	// ErrEmptySession — пустой идентификатор сессии.
	ErrEmptySession = errors.New("empty session id")
)

// Operation — бинарная операция калькулятора. Нулевое значение OpNone — операция не выбрана.
type Operation int

// Константы арифметических операций.
const (
	OpNone Operation = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

// ParseOperation разбирает имя операции (как в data-action клавиатуры) или её символ.
func ParseOperation(s string) (Operation, error) {
	switch s {
	case "add", "+":
		return OpAdd, nil
	case "subtract", "-", "−":
		return OpSubtract, nil
	case "multiply", "*", "×":
		return OpMultiply, nil
	case "divide", "/", "÷":
		return OpDivide, nil
	}
	return OpNone, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// Valid сообщает, что выбрана одна из четырёх операций.
func (o Operation) Valid() bool {
	return o >= OpAdd && o <= OpDivide
}

// String возвращает имя операции: add, subtract, multiply, divide; для OpNone — пустую строку.
func (o Operation) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	}
	return ""
}

// Symbol возвращает символ операции для экрана и истории.
func (o Operation) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "−"
	case OpMultiply:
		return "×"
	case OpDivide:
		return "÷"
	}
	return ""
}

// Apply выполняет операцию над двумя числами.
func (o Operation) Apply(a, b float64) (float64, error) {
	switch o {
	case OpAdd:
		return a + b, nil
	case OpSubtract:
		return a - b, nil
	case OpMultiply:
		return a * b, nil
	case OpDivide:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case OpNone:
	}
	return 0, fmt.Errorf("%w: %d", ErrUnknownOperation, int(o))
}

// MarshalText кодирует операцию именем (для JSON снапшотов сессии).
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText декодирует операцию из имени; пустая строка — OpNone.
func (o *Operation) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*o = OpNone
		return nil
	}
	op, err := ParseOperation(string(b))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// HistoryEntry — запись истории: выражение и результат. Создаётся только успешным вычислением.
type HistoryEntry struct {
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Operation  Operation `json:"operation"`
}

// Display — то, что виджет показывает после каждого действия.
type Display struct {
	Current  string `json:"current"`
	Previous string `json:"previous"`
	Error    bool   `json:"error"`
}

// ComputationEvent — событие о вычислении, уходит в брокер и дальше в аналитику.
type ComputationEvent struct {
	SessionID  string    `json:"session_id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	Operation  Operation `json:"operation"`
	CreatedAt  time.Time `json:"created_at"`
}
