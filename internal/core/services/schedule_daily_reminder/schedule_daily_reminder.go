package scheduledailyreminder

import (
	"context"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	"time"
)

const source = "ScheduleDailyReminder"

type Input struct {
	Identity  user.Identity
	Subject   string
	TimeOfDay string
}

func (i Input) GetRateLimitKey() string {
	return "schedule_daily_reminder::" + string(i.Identity)
}

type Result struct {
	Scheduled bool
	Reminder  reminder.Reminder
}

type service struct {
	log       logging.Logger
	scheduler reminder.Scheduler
	now       func() time.Time
}

func New(
	log logging.Logger,
	scheduler reminder.Scheduler,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if scheduler == nil {
		panic(e.NewNilArgumentError("scheduler"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{log: log, scheduler: scheduler, now: now}
}

// Run arms a one-shot reminder for the next occurrence of input.TimeOfDay.
// A malformed time of day is dropped without an error and nothing is armed.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	tod, err := reminder.ParseTimeOfDay(input.TimeOfDay)
	if err != nil {
		s.log.Debug(
			ctx,
			"Reminder is dropped due to invalid time of day.",
			logging.Entry("input", input),
			logging.Source(source),
		)
		return result, nil
	}

	now := s.now()
	rem := reminder.Reminder{
		ID:            reminder.NewID(),
		Identity:      input.Identity,
		Subject:       input.Subject,
		TimeOfDay:     tod,
		RequestedTime: input.TimeOfDay,
		At:            reminder.NextFiringInstant(now, tod),
		CreatedAt:     now,
	}
	if err := s.scheduler.ScheduleReminder(ctx, rem); err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("reminder", rem), logging.Source(source))
		return result, err
	}

	s.log.Info(
		ctx,
		"Reminder has been scheduled.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("identity", rem.Identity),
		logging.Entry("subject", rem.Subject),
		logging.Entry("time", rem.DisplayTime()),
		logging.Entry("at", rem.At),
		logging.Entry("delay", rem.Delay(now).String()),
		logging.Source(source),
	)
	return Result{Scheduled: true, Reminder: rem}, nil
}
