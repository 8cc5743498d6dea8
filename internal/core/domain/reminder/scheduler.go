package reminder

import (
	"context"
	c "pushreminder/internal/core/domain/common"
	"pushreminder/internal/core/domain/user"
)

type ListOptions struct {
	Identity c.Optional[user.Identity]
}

type Scheduler interface {
	ScheduleReminder(ctx context.Context, r Reminder) error
	CancelReminder(ctx context.Context, id ID) error
	ListPending(ctx context.Context, options ListOptions) []Reminder
}

// FiredHandler is invoked once per reminder when its firing instant is reached.
type FiredHandler func(ctx context.Context, r Reminder)
