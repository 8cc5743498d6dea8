package services

import (
	"pushreminder/internal/app/deps"
	drl "pushreminder/internal/core/domain/rate_limiter"
	"pushreminder/internal/core/services"
	cancelreminder "pushreminder/internal/core/services/cancel_reminder"
	deliverreminder "pushreminder/internal/core/services/deliver_reminder"
	listpendingreminders "pushreminder/internal/core/services/list_pending_reminders"
	ratelimiting "pushreminder/internal/core/services/rate_limiting"
	registerdeliveryidentity "pushreminder/internal/core/services/register_delivery_identity"
	scheduledailyreminder "pushreminder/internal/core/services/schedule_daily_reminder"
	sendnotification "pushreminder/internal/core/services/send_notification"
)

type Services struct {
	ScheduleDailyReminder services.Service[scheduledailyreminder.Input, scheduledailyreminder.Result]
	DeliverReminder       services.Service[deliverreminder.Input, deliverreminder.Result]
	CancelReminder        services.Service[cancelreminder.Input, cancelreminder.Result]
	ListPendingReminders  services.Service[listpendingreminders.Input, listpendingreminders.Result]

	SendNotification         services.Service[sendnotification.Input, sendnotification.Result]
	RegisterDeliveryIdentity services.Service[registerdeliveryidentity.Input, registerdeliveryidentity.Result]
}

func InitServices(deps *deps.Deps) *Services {
	return &Services{
		ScheduleDailyReminder: ratelimiting.New(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Hour, Value: deps.Config.ScheduleRateLimitPerHour},
			scheduledailyreminder.New(
				deps.Logger,
				deps.ReminderScheduler,
				deps.Now,
			),
		),
		DeliverReminder: deliverreminder.New(
			deps.Logger,
			deps.DeliveryIdentityRepository,
			deps.Dispatcher,
		),
		CancelReminder: cancelreminder.New(
			deps.Logger,
			deps.ReminderScheduler,
		),
		ListPendingReminders: listpendingreminders.New(
			deps.ReminderScheduler,
		),
		SendNotification: sendnotification.New(
			deps.Dispatcher,
		),
		RegisterDeliveryIdentity: registerdeliveryidentity.New(
			deps.Logger,
			deps.DeliveryIdentityRepository,
		),
	}
}
