package tracker

import (
	"sync"

	"github.com/iudanet/codeclimb/internal/models"
	"github.com/iudanet/codeclimb/pkg/api"
)

// Status представляет статус сохранения строки
type Status string

const (
	// StatusIdle нет несохраненных изменений или изменения ждут debounce
	StatusIdle Status = "idle"
	// StatusSaving запрос на сохранение в полете (или запланирован retry)
	StatusSaving Status = "saving"
	// StatusError последнее сохранение не удалось, нужен ручной retry
	StatusError Status = "error"
)

// RowState связывает draft одной задачи с идентификатором сохраненной
// записи и статусом сохранения
type RowState struct {
	Draft      *models.AttemptDraft
	RecordID   string // id сохраненной записи, "" если запись неизвестна
	ErrMessage string
	Status     Status
	// HasServerData true, если у задачи есть сохраненная попытка на сервере,
	// даже когда ее id еще не известен (после hydrate из каталога)
	HasServerData bool
}

// Store хранит RowState по id задачи. Единственный источник правды
// для отображения: и редактор строки, и сводный список читают через него.
// Мутации сериализуются мьютексом: таймеры и сетевые колбеки приходят
// из разных горутин.
type Store struct {
	rows map[int]*RowState
	mu   sync.Mutex
}

// NewStore создает пустой store
func NewStore() *Store {
	return &Store{rows: make(map[int]*RowState)}
}

// row возвращает RowState, создавая пустой при первом обращении.
// Вызывается только под мьютексом.
func (s *Store) row(problemID int) *RowState {
	if state, ok := s.rows[problemID]; ok {
		return state
	}
	state := &RowState{Draft: &models.AttemptDraft{}, Status: StatusIdle}
	s.rows[problemID] = state
	return state
}

// Draft возвращает копию текущего draft задачи.
// Для неизвестной задачи возвращается пустой sentinel. Не падает никогда.
func (s *Store) Draft(problemID int) *models.AttemptDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.row(problemID).Draft.Clone()
}

// Row возвращает копию RowState задачи
func (s *Store) Row(problemID int) RowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.row(problemID)
	copied := *state
	copied.Draft = state.Draft.Clone()
	return copied
}

// Rows возвращает копии всех состояний по id задачи
func (s *Store) Rows() map[int]RowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int]RowState, len(s.rows))
	for id, state := range s.rows {
		copied := *state
		copied.Draft = state.Draft.Clone()
		out[id] = copied
	}
	return out
}

// ApplyEdit применяет правку пользователя: apply мутирует копию текущего
// draft, копия становится новым draft. Статус сбрасывается в idle
// (в том числе из error), прошлая ошибка очищается.
// Возвращает snapshot нового draft для планирования сохранения.
func (s *Store) ApplyEdit(problemID int, apply func(*models.AttemptDraft)) *models.AttemptDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	next := state.Draft.Clone()
	apply(next)
	state.Draft = next
	state.Status = StatusIdle
	state.ErrMessage = ""
	return next.Clone()
}

// ApplyServerRecord перезаписывает draft и record id авторитетной записью
// сервера (ответ create/update или выбор из истории). Статус становится idle:
// "saved" немедленно нормализуется, отдельного состояния у него нет.
func (s *Store) ApplyServerRecord(problemID int, attempt *api.Attempt) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	state.Draft = models.DraftFromAttempt(attempt)
	state.RecordID = attempt.ID
	state.HasServerData = true
	state.Status = StatusIdle
	state.ErrMessage = ""
}

// AdoptRecordID устанавливает record id, не трогая draft.
// Используется при разрешении неизвестного id через историю.
func (s *Store) AdoptRecordID(problemID int, recordID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	state.RecordID = recordID
	if recordID != "" {
		state.HasServerData = true
	}
}

// ClearRecord сбрасывает связь строки с сохраненной записью и заменяет
// draft. Используется при удалении записи (fallback на новую голову
// истории или пустой sentinel).
func (s *Store) ClearRecord(problemID int, fallback *models.AttemptDraft, fallbackID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	state.RecordID = fallbackID
	state.HasServerData = fallbackID != ""
	if fallback != nil {
		state.Draft = fallback.Clone()
	} else {
		state.Draft = &models.AttemptDraft{}
	}
	state.Status = StatusIdle
	state.ErrMessage = ""
}

// MarkSaving переводит строку в состояние saving
func (s *Store) MarkSaving(problemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	state.Status = StatusSaving
	state.ErrMessage = ""
}

// MarkIdle переводит строку в состояние idle (успех или benign no-op)
func (s *Store) MarkIdle(problemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	state.Status = StatusIdle
	state.ErrMessage = ""
}

// MarkError переводит строку в состояние error с сообщением
func (s *Store) MarkError(problemID int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.row(problemID)
	state.Status = StatusError
	state.ErrMessage = message
}

// Hydrate перестраивает store из каталога задач. Record id попытки каталог
// не отдает, поэтому HasServerData взводится по наличию непустой последней
// попытки, а id разрешается позже через историю.
func (s *Store) Hydrate(problems []api.Problem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows = make(map[int]*RowState, len(problems))
	for _, problem := range problems {
		draft := models.DraftFromLatest(problem.LatestAttempt)
		s.rows[problem.ProblemID] = &RowState{
			Draft:         draft,
			Status:        StatusIdle,
			HasServerData: problem.LatestAttempt != nil && !draft.IsEmpty(),
		}
	}
}

// Reset очищает store (смена списка)
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make(map[int]*RowState)
}
