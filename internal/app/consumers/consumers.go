package consumers

import (
	"context"
	"pushreminder/internal/app/deps"
	"pushreminder/internal/app/services"
	dl "pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/reminder"
	deliverreminder "pushreminder/internal/core/services/deliver_reminder"
	"time"
)

type firedReminderSource interface {
	Consume(handler reminder.FiredHandler) error
}

func newFiredReminderHandler(
	log dl.Logger,
	timeout time.Duration,
	deliver func(ctx context.Context, input deliverreminder.Input) (deliverreminder.Result, error),
) reminder.FiredHandler {
	return func(ctx context.Context, r reminder.Reminder) {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if _, err := deliver(ctx, deliverreminder.Input{Reminder: r}); err != nil {
			log.Error(ctx, "Reminder delivery returned an error.", dl.Entry("err", err), dl.Entry("reminderID", r.ID))
		}
	}
}

func initFiredReminderConsumer(deps *deps.Deps, services *services.Services, source firedReminderSource) {
	handler := newFiredReminderHandler(
		deps.Logger,
		deps.Config.ReminderDeliveryTimeout,
		services.DeliverReminder.Run,
	)
	if err := source.Consume(handler); err != nil {
		deps.Logger.Error(context.Background(), "Could not start consuming fired reminders.", dl.Entry("err", err))
		panic(err)
	}
	deps.Logger.Info(context.Background(), "Fired reminder consumer has started.")
}

func InitConsumers(deps *deps.Deps, services *services.Services) {
	initFiredReminderConsumer(deps, services, deps.ReminderScheduler)
}
