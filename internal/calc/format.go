package calc

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format группирует целую часть числа по тысячам (en), дробную часть оставляет как есть.
// Точность не меняется: "1234567.89" → "1,234,567.89", "12." → "12.", "" → "".
func Format(s string) string {
	if s == "" {
		return ""
	}
	intPart, frac, hasFrac := strings.Cut(s, point)

	var intDisplay string
	if v, ok := parseNumber(intPart); ok {
		p := message.NewPrinter(language.English)
		intDisplay = p.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(0)))
		// "-0" печатается без знака, а "-0.5" должно его сохранить
		if strings.HasPrefix(intPart, "-") && !strings.HasPrefix(intDisplay, "-") {
			intDisplay = "-" + intDisplay
		}
	}
	if !hasFrac {
		return intDisplay
	}
	frac, _, _ = strings.Cut(frac, point)
	return intDisplay + point + frac
}
