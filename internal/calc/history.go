package calc

import (
	"iter"
	"sync"

	"keypadCalc/internal/domain"
)

// History — журнал вычислений сессии в порядке добавления. Без вытеснения: живёт столько же, сколько виджет.
type History struct {
	mu      sync.RWMutex
	entries []domain.HistoryEntry
}

// NewHistory создаёт пустую историю.
func NewHistory() *History {
	return &History{}
}

// Record добавляет запись в конец.
func (h *History) Record(e domain.HistoryEntry) {
	h.mu.Lock()
	h.entries = append(h.entries, e)
	h.mu.Unlock()
}

// Clear очищает историю целиком.
func (h *History) Clear() {
	h.mu.Lock()
	h.entries = nil
	h.mu.Unlock()
}

// Replace заменяет историю копией entries (восстановление сессии).
func (h *History) Replace(entries []domain.HistoryEntry) {
	cp := make([]domain.HistoryEntry, len(entries))
	copy(cp, entries)
	h.mu.Lock()
	h.entries = cp
	h.mu.Unlock()
}

// IsEmpty сообщает, что записей нет.
func (h *History) IsEmpty() bool {
	return h.Len() == 0
}

// Len — число записей.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.entries)
}

// NewestFirst возвращает записи от новых к старым. Последовательность ленивая, её можно
// обходить повторно; каждый обход видит историю на момент своего начала.
func (h *History) NewestFirst() iter.Seq[domain.HistoryEntry] {
	return func(yield func(domain.HistoryEntry) bool) {
		h.mu.RLock()
		entries := h.entries
		h.mu.RUnlock()
		for i := len(entries) - 1; i >= 0; i-- {
			if !yield(entries[i]) {
				return
			}
		}
	}
}

// At возвращает i-ю запись, считая от самой новой (0 — последняя).
func (h *History) At(i int) (domain.HistoryEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if i < 0 || i >= len(h.entries) {
		return domain.HistoryEntry{}, false
	}
	return h.entries[len(h.entries)-1-i], true
}

// Entries возвращает копию записей в хронологическом порядке.
func (h *History) Entries() []domain.HistoryEntry {
	return h.Since(0)
}

// Since возвращает копию записей, добавленных после первых n.
func (h *History) Since(n int) []domain.HistoryEntry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	if n >= len(h.entries) {
		return nil
	}
	out := make([]domain.HistoryEntry, len(h.entries)-n)
	copy(out, h.entries[n:])
	return out
}
