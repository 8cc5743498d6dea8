package timerscheduler

import (
	"context"
	"errors"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/reminder"
	"sync"
	"time"
)

const source = "TimerScheduler"

type stopper interface {
	Stop() bool
}

type entry struct {
	reminder reminder.Reminder
	timer    stopper
	version  uint64
}

// Scheduler keeps every armed reminder in an in-process registry of one-shot
// timers. Pending reminders do not survive a process restart.
type Scheduler struct {
	log       logging.Logger
	now       func() time.Time
	afterFunc func(d time.Duration, f func()) stopper

	mu      sync.Mutex
	entries map[reminder.ID]*entry
	version uint64
	handler reminder.FiredHandler
	stopped bool

	inFlight sync.WaitGroup
}

func New(log logging.Logger, now func() time.Time) *Scheduler {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Scheduler{
		log: log,
		now: now,
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		entries: make(map[reminder.ID]*entry),
	}
}

// Consume registers the handler invoked for every fired reminder. Each
// invocation runs on its own goroutine.
func (s *Scheduler) Consume(handler reminder.FiredHandler) error {
	if handler == nil {
		return e.NewNilArgumentError("handler")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.handler != nil {
		return errors.New("reminder consumer is already registered")
	}
	s.handler = handler
	return nil
}

// ScheduleReminder arms a timer for r.At. Arming a reminder with an ID that is
// already pending replaces the previous timer.
func (s *Scheduler) ScheduleReminder(ctx context.Context, r reminder.Reminder) error {
	if err := r.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return reminder.ErrSchedulerStopped
	}
	if prev, ok := s.entries[r.ID]; ok {
		prev.timer.Stop()
		delete(s.entries, r.ID)
	}
	s.version++
	version := s.version
	delay := r.Delay(s.now())
	ent := &entry{reminder: r, version: version}
	ent.timer = s.afterFunc(delay, func() { s.fire(r.ID, version) })
	s.entries[r.ID] = ent
	pending := len(s.entries)
	s.mu.Unlock()

	s.log.Info(
		ctx,
		"Reminder timer has been armed.",
		logging.Entry("reminderID", r.ID),
		logging.Entry("at", r.At),
		logging.Entry("delay", delay.String()),
		logging.Entry("pending", pending),
		logging.Source(source),
	)
	return nil
}

func (s *Scheduler) CancelReminder(ctx context.Context, id reminder.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[id]
	if !ok {
		return reminder.ErrReminderDoesNotExist
	}
	ent.timer.Stop()
	delete(s.entries, id)
	return nil
}

func (s *Scheduler) ListPending(ctx context.Context, options reminder.ListOptions) []reminder.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := make([]reminder.Reminder, 0, len(s.entries))
	for _, ent := range s.entries {
		if options.Identity.IsPresent && ent.reminder.Identity != options.Identity.Value {
			continue
		}
		pending = append(pending, ent.reminder)
	}
	return pending
}

// Stop disarms every pending timer and waits for fired reminders that are
// still being handled, until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	dropped := len(s.entries)
	for id, ent := range s.entries {
		ent.timer.Stop()
		delete(s.entries, id)
	}
	s.mu.Unlock()

	if dropped > 0 {
		s.log.Warning(
			ctx,
			"Pending reminders are dropped on shutdown.",
			logging.Entry("count", dropped),
			logging.Source(source),
		)
	}

	done := make(chan struct{})
	go func() {
		s.inFlight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) fire(id reminder.ID, version uint64) {
	s.mu.Lock()
	ent, ok := s.entries[id]
	if !ok || ent.version != version || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.entries, id)
	handler := s.handler
	s.inFlight.Add(1)
	s.mu.Unlock()
	defer s.inFlight.Done()

	ctx := context.Background()
	if handler == nil {
		s.log.Error(
			ctx,
			"Reminder fired but no consumer is registered.",
			logging.Entry("reminderID", id),
			logging.Source(source),
		)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			logging.Error(ctx, s.log, e.NewPanicError(r), logging.Entry("reminderID", id), logging.Source(source))
		}
	}()
	handler(ctx, ent.reminder)
}
