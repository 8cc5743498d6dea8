package listpendingreminders

import (
	"context"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	"sort"
)

type Input struct {
	Identity c.Optional[user.Identity]
}

type Result struct {
	Reminders []reminder.Reminder
}

type service struct {
	scheduler reminder.Scheduler
}

func New(scheduler reminder.Scheduler) services.Service[Input, Result] {
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	return &service{scheduler: scheduler}
}

// Run returns the reminders armed and not yet fired, earliest first.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	pending := s.scheduler.ListPending(ctx, reminder.ListOptions{Identity: input.Identity})
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].At.Equal(pending[j].At) {
			return pending[i].ID < pending[j].ID
		}
		return pending[i].At.Before(pending[j].At)
	})
	result.Reminders = pending
	return result, nil
}
