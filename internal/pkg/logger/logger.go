package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// DefaultFile — файл лога по умолчанию (рядом с бинарником).
const DefaultFile = "keypadcalc.log"

// logWriter открывает файл лога и возвращает writer в файл + stderr.
// Пустое имя или ошибка открытия — только stderr.
func logWriter(file string) io.Writer {
	if file == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// New возвращает логгер с текстовым выводом в keypadcalc.log и stderr, уровень Info.
func New() *slog.Logger {
	return NewWithLevel("info", DefaultFile)
}

// ParseLevel переводит строку (debug, info, warn, error) в slog.Level. Неизвестное значение — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewWithLevel возвращает логгер с заданным уровнем; file == "" пишет только в stderr.
func NewWithLevel(level, file string) *slog.Logger {
	return NewTo(logWriter(file), level)
}

// NewFile — логгер только в файл (без stderr). Вызывающий закрывает файл через closeFn.
// file == "" — лог в stderr, closeFn ничего не делает.
func NewFile(level, file string) (log *slog.Logger, closeFn func() error, err error) {
	if file == "" {
		return NewTo(os.Stderr, level), func() error { return nil }, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewTo(f, level), f.Close, nil
}

// NewTo — логгер в произвольный writer (терминальный режим, тесты).
func NewTo(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}
