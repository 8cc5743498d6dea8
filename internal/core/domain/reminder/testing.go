package reminder

import (
	"context"
	"sync"
)

type TestReminderScheduler struct {
	Scheduled   []Reminder
	Canceled    []ID
	Error       error
	CancelError error
	lock        sync.Mutex
}

func NewTestReminderScheduler() *TestReminderScheduler {
	return &TestReminderScheduler{}
}

func (s *TestReminderScheduler) ScheduleReminder(ctx context.Context, r Reminder) error {
	if s.Error != nil {
		return s.Error
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Scheduled = append(s.Scheduled, r)
	return nil
}

func (s *TestReminderScheduler) CancelReminder(ctx context.Context, id ID) error {
	if s.CancelError != nil {
		return s.CancelError
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for ix, r := range s.Scheduled {
		if r.ID == id {
			s.Scheduled = append(s.Scheduled[:ix], s.Scheduled[ix+1:]...)
			s.Canceled = append(s.Canceled, id)
			return nil
		}
	}
	return ErrReminderDoesNotExist
}

func (s *TestReminderScheduler) ListPending(ctx context.Context, options ListOptions) []Reminder {
	s.lock.Lock()
	defer s.lock.Unlock()
	pending := make([]Reminder, 0, len(s.Scheduled))
	for _, r := range s.Scheduled {
		if options.Identity.IsPresent && r.Identity != options.Identity.Value {
			continue
		}
		pending = append(pending, r)
	}
	return pending
}
