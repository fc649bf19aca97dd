package calc

import "strings"

const (
	// MaxOperandLen — после этой длины ввод новых символов молча игнорируется.
	MaxOperandLen = 15

	point = "."
)

// Operand — вводимое число: исходный текст и его разобранное значение.
// Текст, набранный через Append, всегда содержит не больше одной точки.
type Operand struct {
	text  string
	value float64
	ok    bool
}

// NewOperand создаёт операнд из готовой строки (например, результата из истории).
func NewOperand(text string) Operand {
	v, ok := parseNumber(text)
	return Operand{text: text, value: v, ok: ok}
}

// String возвращает текст операнда как он набран.
func (o Operand) String() string {
	return o.text
}

// IsEmpty сообщает, что операнд ещё не набран.
func (o Operand) IsEmpty() bool {
	return o.text == ""
}

// Value возвращает числовое значение; ok == false, если текст не разбирается как число.
func (o Operand) Value() (float64, bool) {
	return o.value, o.ok
}

// Append дописывает цифру или точку. Вторая точка и символы сверх MaxOperandLen отбрасываются.
func (o Operand) Append(token string) (Operand, bool) {
	if token == point && strings.Contains(o.text, point) {
		return o, false
	}
	if len(o.text) > MaxOperandLen {
		return o, false
	}
	return NewOperand(o.text + token), true
}

// DropLast удаляет последний символ; из одного символа получается "0".
func (o Operand) DropLast() Operand {
	if len(o.text) <= 1 {
		return NewOperand("0")
	}
	return NewOperand(o.text[:len(o.text)-1])
}

func isEntryToken(token string) bool {
	if token == point {
		return true
	}
	return len(token) == 1 && token[0] >= '0' && token[0] <= '9'
}
