package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// significantDigits — точность нормализации результата вычисления.
const significantDigits = 15

// parseNumber разбирает строку операнда. NaN и пустая строка не считаются числом.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// roundSignificant округляет до 15 значащих цифр, убирая шум двоичной арифметики (0.1+0.2 → 0.3).
func roundSignificant(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', significantDigits, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// formatNumber возвращает каноническую строку числа в том же виде, в каком его показывает
// браузерный виджет: кратчайшее представление, экспонента для |v| >= 1e21 и |v| < 1e-6.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
