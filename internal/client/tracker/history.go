package tracker

import (
	"sync"

	"github.com/iudanet/codeclimb/pkg/api"
)

// History кеширует списки сохраненных попыток по задачам.
// Порядок: новые первыми, как отдает сервер. Заполняется лениво,
// по явному Load, и поддерживается reconciler'ом при сохранениях.
type History struct {
	entries map[int][]api.Attempt
	mu      sync.Mutex
}

// NewHistory создает пустой кеш истории
func NewHistory() *History {
	return &History{entries: make(map[int][]api.Attempt)}
}

// Entries возвращает копию закешированной истории задачи.
// Второй результат false, если история еще не загружалась.
func (h *History) Entries(problemID int) ([]api.Attempt, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, ok := h.entries[problemID]
	if !ok {
		return nil, false
	}
	out := make([]api.Attempt, len(entries))
	copy(out, entries)
	return out, true
}

// ReplaceAll заменяет историю задачи свежезагруженным списком
func (h *History) ReplaceAll(problemID int, entries []api.Attempt) {
	h.mu.Lock()
	defer h.mu.Unlock()

	copied := make([]api.Attempt, len(entries))
	copy(copied, entries)
	h.entries[problemID] = copied
}

// ApplySaved вносит успешно сохраненную запись: заменяет запись с тем же
// id или вставляет в голову, если запись новая. Незагруженная история
// не создается: до первого Load кешировать нечего.
func (h *History) ApplySaved(problemID int, attempt api.Attempt) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, ok := h.entries[problemID]
	if !ok {
		return
	}

	rest := make([]api.Attempt, 0, len(entries)+1)
	rest = append(rest, attempt)
	for _, entry := range entries {
		if entry.ID != attempt.ID {
			rest = append(rest, entry)
		}
	}
	h.entries[problemID] = rest
}

// Remove удаляет запись из кеша и возвращает новую голову истории
// (nil, если история пуста или не загружена)
func (h *History) Remove(problemID int, attemptID string) *api.Attempt {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, ok := h.entries[problemID]
	if !ok {
		return nil
	}

	rest := make([]api.Attempt, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != attemptID {
			rest = append(rest, entry)
		}
	}
	h.entries[problemID] = rest

	if len(rest) == 0 {
		return nil
	}
	head := rest[0]
	return &head
}

// Reset очищает кеш (смена списка)
func (h *History) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = make(map[int][]api.Attempt)
}
