// Package tracker реализует оптимистичное автосохранение попыток:
// правки применяются к локальному draft синхронно, коалесцируются
// debounce-таймером и примиряются с сервером reconciler'ом.
// Ошибка одной задачи никогда не блокирует остальные.
package tracker

import (
	"context"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/codeclimb/internal/client/api"
	"github.com/iudanet/codeclimb/internal/client/storage"
	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/pkg/api"
)

const (
	// DefaultDebounceDelay пауза покоя перед отправкой сохранения.
	// Подобрана для полей, набираемых посимвольно (notes, complexity).
	DefaultDebounceDelay = 650 * time.Millisecond

	// DefaultRetryBackoff пауза перед единственным повтором после
	// transport-ошибки
	DefaultRetryBackoff = 2 * time.Second
)

// Options настраивает Tracker
type Options struct {
	// Drafts опциональный офлайн-кеш несохраненных правок
	Drafts storage.DraftStorage

	// OnChange вызывается после каждого изменения состояния строки
	// (для перерисовки). Может быть nil.
	OnChange func(problemID int)

	// OnAuthError вызывается при 401/403: сессией управляет хост
	OnAuthError func(err error)

	DebounceDelay time.Duration
	RetryBackoff  time.Duration
}

// Tracker объединяет draft store, debounce scheduler, reconciler и кеш
// истории для одного списка задач. Несколько Tracker'ов (несколько
// открытых списков) не разделяют состояния и не конфликтуют.
type Tracker struct {
	store      *Store
	scheduler  *Scheduler
	reconciler *Reconciler
	history    *History
	drafts     storage.DraftStorage
	client     clientapi.ClientAPI
	logger     *slog.Logger
	onChange   func(problemID int)
	cancel     context.CancelFunc
	ctx        context.Context
	listID     string
	token      string
	debounce   time.Duration
}

// New создает Tracker для одного списка
func New(client clientapi.ClientAPI, listID, token string, logger *slog.Logger, opts Options) *Tracker {
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = DefaultDebounceDelay
	}
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = DefaultRetryBackoff
	}

	ctx, cancel := context.WithCancel(context.Background())

	t := &Tracker{
		store:     NewStore(),
		scheduler: NewScheduler(),
		history:   NewHistory(),
		drafts:    opts.Drafts,
		client:    client,
		logger:    logger,
		onChange:  opts.OnChange,
		ctx:       ctx,
		cancel:    cancel,
		listID:    listID,
		token:     token,
		debounce:  opts.DebounceDelay,
	}

	t.reconciler = NewReconciler(client, t.store, t.history, listID, token, opts.RetryBackoff, logger)
	t.reconciler.SetOnSaved(t.handleSaved)
	if opts.OnAuthError != nil {
		t.reconciler.SetOnAuthError(opts.OnAuthError)
	}

	return t
}

// Hydrate заполняет store каталогом задач и доигрывает несохраненные
// drafts прошлой сессии из офлайн-кеша
func (t *Tracker) Hydrate(ctx context.Context, problems []api.Problem) {
	t.store.Hydrate(problems)
	t.history.Reset()

	if t.drafts == nil {
		return
	}

	pending, err := t.drafts.PendingDrafts(ctx, t.listID)
	if err != nil {
		t.logger.Warn("failed to load pending drafts", "error", err)
		return
	}

	for _, cached := range pending {
		draft := cached.Draft
		if draft == nil {
			continue
		}
		t.logger.Info("replaying pending draft", "problem_id", cached.ProblemID)
		t.Edit(cached.ProblemID, func(d *models.AttemptDraft) {
			*d = *draft.Clone()
		})
	}
}

// Edit применяет правку к draft задачи и планирует debounced сохранение.
// Правка видна синхронно: draft служит источником правды для рендера,
// независимо от исхода сохранения.
func (t *Tracker) Edit(problemID int, apply func(*models.AttemptDraft)) {
	snapshot := t.store.ApplyEdit(problemID, apply)
	t.cacheDraft(problemID, snapshot)
	t.notify(problemID)

	t.scheduler.Schedule(problemID, t.debounce, func() {
		t.reconciler.Save(t.ctx, problemID, snapshot, false)
		t.notify(problemID)
	})
}

// EditImmediate применяет правку и сохраняет без debounce.
// Для дискретных действий: чекбокс solved, инкремент счетчика попыток.
func (t *Tracker) EditImmediate(problemID int, apply func(*models.AttemptDraft)) {
	snapshot := t.store.ApplyEdit(problemID, apply)
	t.cacheDraft(problemID, snapshot)
	t.notify(problemID)

	t.scheduler.ScheduleImmediate(problemID, func() {
		t.reconciler.Save(t.ctx, problemID, snapshot, false)
		t.notify(problemID)
	})
}

// Retry вручную повторяет сохранение строки в состоянии error,
// с последним известным draft
func (t *Tracker) Retry(problemID int) {
	snapshot := t.store.Draft(problemID)
	t.scheduler.ScheduleImmediate(problemID, func() {
		t.reconciler.Save(t.ctx, problemID, snapshot, false)
		t.notify(problemID)
	})
}

// Flush немедленно выполняет все запланированные сохранения.
// Вызывается при выходе клиента.
func (t *Tracker) Flush() {
	t.scheduler.Flush()
}

// LoadHistory запрашивает историю попыток задачи и кеширует ее.
// Если у строки еще нет record id, а история непуста, id головы
// принимается: следующие правки будут обновлять запись, а не плодить новые.
// Ошибка загрузки не трогает закешированное состояние.
func (t *Tracker) LoadHistory(ctx context.Context, problemID int) ([]api.Attempt, error) {
	entries, err := t.client.AttemptHistory(ctx, t.token, t.listID, problemID)
	if err != nil {
		return nil, err
	}

	t.history.ReplaceAll(problemID, entries)
	if len(entries) > 0 && t.store.Row(problemID).RecordID == "" {
		t.store.AdoptRecordID(problemID, entries[0].ID)
	}
	t.notify(problemID)

	return entries, nil
}

// History возвращает закешированную историю задачи,
// второй результат false до первого LoadHistory
func (t *Tracker) History(problemID int) ([]api.Attempt, bool) {
	return t.history.Entries(problemID)
}

// DeleteAttempt удаляет сохраненную запись из истории. Если удалена
// запись, принятая строкой, строка откатывается на новую голову истории
// (или на пустой sentinel, если истории не осталось).
func (t *Tracker) DeleteAttempt(ctx context.Context, problemID int, attemptID string) error {
	if err := t.client.DeleteAttempt(ctx, t.token, attemptID); err != nil {
		return err
	}

	head := t.history.Remove(problemID, attemptID)

	if t.store.Row(problemID).RecordID == attemptID {
		if head != nil {
			t.store.ClearRecord(problemID, models.DraftFromAttempt(head), head.ID)
		} else {
			t.store.ClearRecord(problemID, nil, "")
		}
	}
	t.notify(problemID)

	return nil
}

// Draft возвращает копию текущего draft задачи
func (t *Tracker) Draft(problemID int) *models.AttemptDraft {
	return t.store.Draft(problemID)
}

// Row возвращает копию состояния строки
func (t *Tracker) Row(problemID int) RowState {
	return t.store.Row(problemID)
}

// Rows возвращает копии всех состояний строк
func (t *Tracker) Rows() map[int]RowState {
	return t.store.Rows()
}

// Close останавливает таймеры и отменяет контекст сохранений:
// запросы в полете обрываются вместе с ним. Вызывающий, которому важно
// дожать несохраненные правки, делает Flush перед Close.
func (t *Tracker) Close() {
	t.scheduler.Stop()
	t.reconciler.Close()
	t.cancel()
}

// handleSaved вызывается reconciler'ом после примененного ответа сервера
func (t *Tracker) handleSaved(problemID int, _ *api.Attempt) {
	if t.drafts != nil {
		if err := t.drafts.DeleteDraft(t.ctx, t.listID, problemID); err != nil {
			t.logger.Warn("failed to drop cached draft", "problem_id", problemID, "error", err)
		}
	}
	t.notify(problemID)
}

// cacheDraft синхронно пишет правку в офлайн-кеш.
// Пустой draft из кеша убирается: доигрывать нечего.
func (t *Tracker) cacheDraft(problemID int, draft *models.AttemptDraft) {
	if t.drafts == nil {
		return
	}

	var err error
	if draft.IsEmpty() && t.store.Row(problemID).RecordID == "" {
		err = t.drafts.DeleteDraft(t.ctx, t.listID, problemID)
	} else {
		err = t.drafts.SaveDraft(t.ctx, &storage.CachedDraft{
			ListID:    t.listID,
			ProblemID: problemID,
			Draft:     draft,
		})
	}
	if err != nil {
		t.logger.Warn("failed to cache draft", "problem_id", problemID, "error", err)
	}
}

func (t *Tracker) notify(problemID int) {
	if t.onChange != nil {
		t.onChange(problemID)
	}
}
