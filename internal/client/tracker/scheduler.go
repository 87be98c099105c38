package tracker

import (
	"sync"
	"time"
)

// Scheduler коалесцирует частые правки в одно сохранение на задачу.
// Каждый Schedule отменяет предыдущий таймер задачи и взводит новый,
// поэтому snapshot, захваченный в fn на момент планирования, всегда
// соответствует последней правке.
type Scheduler struct {
	pending map[int]*pendingSave
	mu      sync.Mutex
	stopped bool
}

type pendingSave struct {
	timer *time.Timer
	fn    func()
}

// NewScheduler создает scheduler без запланированных сохранений
func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[int]*pendingSave)}
}

// Schedule отменяет ожидающий таймер задачи и взводит новый.
// По срабатыванию fn выполняется ровно один раз.
func (s *Scheduler) Schedule(problemID int, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if prev, ok := s.pending[problemID]; ok {
		prev.timer.Stop()
	}

	save := &pendingSave{fn: fn}
	save.timer = time.AfterFunc(delay, func() {
		// Снимаем себя с учета до запуска: Flush не должен выполнить fn второй раз
		s.mu.Lock()
		current, ok := s.pending[problemID]
		if !ok || current != save {
			// Таймер был заменен или отменен между срабатыванием и захватом мьютекса
			s.mu.Unlock()
			return
		}
		delete(s.pending, problemID)
		s.mu.Unlock()

		fn()
	})
	s.pending[problemID] = save
}

// ScheduleImmediate отменяет ожидающий таймер задачи и выполняет fn
// синхронно. Используется для дискретных действий (чекбокс solved,
// инкремент счетчика попыток), где важна мгновенность.
func (s *Scheduler) ScheduleImmediate(problemID int, fn func()) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	if prev, ok := s.pending[problemID]; ok {
		prev.timer.Stop()
		delete(s.pending, problemID)
	}
	s.mu.Unlock()

	fn()
}

// Cancel отменяет ожидающий таймер задачи, если есть
func (s *Scheduler) Cancel(problemID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.pending[problemID]; ok {
		prev.timer.Stop()
		delete(s.pending, problemID)
	}
}

// Flush выполняет все ожидающие сохранения немедленно.
// Используется при выходе клиента, чтобы не потерять хвост правок.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.pending))
	for id, save := range s.pending {
		save.timer.Stop()
		fns = append(fns, save.fn)
		delete(s.pending, id)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Stop отменяет все таймеры и запрещает новые планирования.
// Вызывается при размонтировании view или пересборке набора задач,
// чтобы не сохранять в чужой контекст.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for id, save := range s.pending {
		save.timer.Stop()
		delete(s.pending, id)
	}
}
