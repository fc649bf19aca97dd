package domain

import "fmt"

// Action — клавиша виджета (значения совпадают с data-action разметки).
type Action string

// Клавиши калькулятора.
const (
	ActionDigit     Action = "digit"
	ActionDecimal   Action = "decimal"
	ActionOperator  Action = "operator"
	ActionCalculate Action = "calculate"
	ActionClear     Action = "clear"
	ActionDelete    Action = "delete"
	ActionPercent   Action = "percent"
)

// Key — одно нажатие: действие и, для цифр и операторов, значение.
type Key struct {
	Action Action
	Value  string
}

// Validate проверяет, что клавиша известна и у цифры/оператора есть значение.
func (k Key) Validate() error {
	switch k.Action {
	case ActionDigit:
		if len(k.Value) != 1 || k.Value[0] < '0' || k.Value[0] > '9' {
			return fmt.Errorf("%w: digit %q", ErrUnknownAction, k.Value)
		}
	case ActionOperator:
		if _, err := ParseOperation(k.Value); err != nil {
			return err
		}
	case ActionDecimal, ActionCalculate, ActionClear, ActionDelete, ActionPercent:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, k.Action)
	}
	return nil
}
