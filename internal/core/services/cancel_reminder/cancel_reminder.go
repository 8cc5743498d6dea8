package cancelreminder

import (
	"context"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/services"
)

type Input struct {
	ReminderID reminder.ID
}

type Result struct{}

type service struct {
	log       logging.Logger
	scheduler reminder.Scheduler
}

func New(log logging.Logger, scheduler reminder.Scheduler) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	return &service{log: log, scheduler: scheduler}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if err := s.scheduler.CancelReminder(ctx, input.ReminderID); err != nil {
		s.log.Info(
			ctx,
			"Could not cancel reminder.",
			logging.Entry("reminderID", input.ReminderID),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(ctx, "Reminder has been canceled.", logging.Entry("reminderID", input.ReminderID))
	return result, nil
}
