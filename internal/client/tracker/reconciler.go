package tracker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	clientapi "github.com/iudanet/codeclimb/internal/client/api"
	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/pkg/api"
)

// Reconciler превращает draft в create/update/delete запрос к серверу
// и вливает авторитетный ответ обратно в store и кеш истории.
//
// Порядок применения ответов обеспечивается счетчиком версий на задачу:
// версия инкрементируется при выпуске запроса, ответ применяется только
// если его версия все еще последняя. Опоздавший ответ более раннего
// запроса молча отбрасывается: это единственный механизм, защищающий
// состояние от перезаписи устаревшими данными.
type Reconciler struct {
	client      clientapi.ClientAPI
	store       *Store
	history     *History
	logger      *slog.Logger
	versions    map[int]uint64
	retryTimers map[int]*time.Timer
	onSaved     func(problemID int, attempt *api.Attempt)
	onAuthError func(err error)
	listID      string
	token       string
	backoff     time.Duration
	mu          sync.Mutex
	closed      bool
}

// NewReconciler создает reconciler для одного списка задач.
// onSaved (опционально) вызывается после каждого примененного ответа
// сервера, onAuthError при 401/403 (обработкой сессии занимается вызывающий).
func NewReconciler(
	client clientapi.ClientAPI,
	store *Store,
	history *History,
	listID, token string,
	backoff time.Duration,
	logger *slog.Logger,
) *Reconciler {
	return &Reconciler{
		client:      client,
		store:       store,
		history:     history,
		listID:      listID,
		token:       token,
		backoff:     backoff,
		logger:      logger,
		versions:    make(map[int]uint64),
		retryTimers: make(map[int]*time.Timer),
	}
}

// SetOnSaved устанавливает колбек успешного сохранения.
// attempt == nil означает, что запись была удалена (пустой draft).
func (r *Reconciler) SetOnSaved(fn func(problemID int, attempt *api.Attempt)) {
	r.onSaved = fn
}

// SetOnAuthError устанавливает колбек истекшей сессии
func (r *Reconciler) SetOnAuthError(fn func(err error)) {
	r.onAuthError = fn
}

// issueVersion инкрементирует и возвращает версию запроса для задачи
func (r *Reconciler) issueVersion(problemID int) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.versions[problemID]++
	return r.versions[problemID]
}

// isCurrent сообщает, является ли версия последней выпущенной для задачи
func (r *Reconciler) isCurrent(problemID int, version uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.versions[problemID] == version
}

// Save выполняет сохранение draft задачи: решает create против update,
// шлет запрос и вливает ответ. retried взведен у повторной попытки после
// transport-ошибки: повторяем ровно один раз.
func (r *Reconciler) Save(ctx context.Context, problemID int, draft *models.AttemptDraft, retried bool) {
	row := r.store.Row(problemID)

	if draft.IsEmpty() && row.RecordID == "" {
		// Нечего сохранять: поле потрогали, но ничего не ввели.
		// Пустая запись не должна появиться на сервере.
		r.store.MarkIdle(problemID)
		return
	}

	r.save(ctx, problemID, draft, r.issueVersion(problemID), retried)
}

// save отправляет запрос под уже выпущенной версией. Retry после
// transport-ошибки заходит сюда с версией исходного запроса: новая версия
// не выпускается, иначе повтор старого draft вытеснил бы более свежее
// сохранение, успевшее уйти за время backoff.
func (r *Reconciler) save(ctx context.Context, problemID int, draft *models.AttemptDraft, version uint64, retried bool) {
	row := r.store.Row(problemID)
	r.store.MarkSaving(problemID)

	if draft.IsEmpty() {
		// Пользователь очистил все поля сохраненной записи, удаляем ее
		r.deleteRecord(ctx, problemID, row.RecordID, draft, version, retried)
		return
	}

	recordID := row.RecordID
	if recordID == "" && row.HasServerData {
		// После hydrate из каталога id записи неизвестен. Разрешаем через
		// историю, чтобы обновить существующую запись, а не задублировать.
		entries, err := r.client.AttemptHistory(ctx, r.token, r.listID, problemID)
		if err != nil {
			r.handleFailure(ctx, problemID, draft, version, retried, err)
			return
		}
		if r.isCurrent(problemID, version) {
			r.history.ReplaceAll(problemID, entries)
			if len(entries) > 0 {
				recordID = entries[0].ID
				r.store.AdoptRecordID(problemID, recordID)
			}
		}
	}

	var attempt *api.Attempt
	var err error
	if recordID != "" {
		attempt, err = r.client.PatchAttempt(ctx, r.token, recordID, draft.ToRequest())
	} else {
		attempt, err = r.client.CreateAttempt(ctx, r.token, r.listID, problemID, draft.ToRequest())
	}

	if err != nil {
		r.handleFailure(ctx, problemID, draft, version, retried, err)
		return
	}

	if !r.isCurrent(problemID, version) {
		// Пока запрос летел, было выпущено более новое сохранение,
		// его ответ уже авторитетнее нашего
		r.logger.Debug("discarding stale save response",
			"problem_id", problemID, "version", version)
		return
	}

	// Сервер авторитетен: нормализованные им значения перекрывают локальные
	r.store.ApplyServerRecord(problemID, attempt)
	r.history.ApplySaved(problemID, *attempt)

	if r.onSaved != nil {
		r.onSaved(problemID, attempt)
	}
}

// deleteRecord удаляет сохраненную запись после очистки всех полей
func (r *Reconciler) deleteRecord(ctx context.Context, problemID int, recordID string, draft *models.AttemptDraft, version uint64, retried bool) {
	if err := r.client.DeleteAttempt(ctx, r.token, recordID); err != nil {
		r.handleFailure(ctx, problemID, draft, version, retried, err)
		return
	}

	if !r.isCurrent(problemID, version) {
		return
	}

	r.history.Remove(problemID, recordID)
	r.store.ClearRecord(problemID, draft, "")

	if r.onSaved != nil {
		r.onSaved(problemID, nil)
	}
}

// handleFailure применяет политику ошибок сохранения
func (r *Reconciler) handleFailure(ctx context.Context, problemID int, draft *models.AttemptDraft, version uint64, retried bool, err error) {
	switch {
	case clientapi.IsAuth(err):
		// Сессия истекла: отдаем наружу, дальнейшими сохранениями занимается вызывающий
		r.logger.Warn("save rejected: session expired", "problem_id", problemID)
		if r.isCurrent(problemID, version) {
			r.store.MarkError(problemID, "session expired")
		}
		if r.onAuthError != nil {
			r.onAuthError(err)
		}

	case clientapi.IsTransport(err) && !retried:
		// Ответа не было: повторяем ровно один раз после backoff,
		// с тем же draft. Статус остается saving, ошибку не показываем.
		r.logger.Warn("save transport failure, scheduling retry",
			"problem_id", problemID, "backoff", r.backoff, "error", err)
		r.scheduleRetry(ctx, problemID, draft, version)

	case clientapi.IsValidation(err) && r.store.Row(problemID).RecordID == "" && draft.IsEmpty():
		// Гонка: поля очистили между планированием и отправкой.
		// Сервер отверг пустой payload, считаем benign no-op.
		if r.isCurrent(problemID, version) {
			r.store.MarkIdle(problemID)
		}

	default:
		// Прочие ошибки и повторная transport-ошибка: показываем error
		// с возможностью ручного retry
		if r.isCurrent(problemID, version) {
			r.store.MarkError(problemID, err.Error())
		}
		r.logger.Error("save failed", "problem_id", problemID, "error", err)
	}
}

// scheduleRetry взводит единственный retry-таймер задачи.
// Retry-таймер живет отдельно от debounce-таймеров: он не должен
// вытеснять запланированное сохранение более свежей правки. Повтор
// уходит под версией исходного запроса и молча отменяется, если к
// моменту срабатывания была выпущена более новая версия.
func (r *Reconciler) scheduleRetry(ctx context.Context, problemID int, draft *models.AttemptDraft, version uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}

	if prev, ok := r.retryTimers[problemID]; ok {
		prev.Stop()
	}
	r.retryTimers[problemID] = time.AfterFunc(r.backoff, func() {
		r.mu.Lock()
		delete(r.retryTimers, problemID)
		skip := r.closed || r.versions[problemID] != version
		r.mu.Unlock()
		if skip {
			return
		}
		r.save(ctx, problemID, draft, version, true)
	})
}

// Close отменяет запланированные retry и запрещает новые
func (r *Reconciler) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.closed = true
	for id, timer := range r.retryTimers {
		timer.Stop()
		delete(r.retryTimers, id)
	}
}
