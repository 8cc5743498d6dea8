package deliverreminder

import (
	"context"
	"errors"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/logging"
	"pushreminder/internal/core/domain/notification"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
)

const source = "DeliverReminder"

type Input struct {
	Reminder reminder.Reminder
}

type Result struct {
	Delivered bool
	Skipped   bool
}

type service struct {
	log        logging.Logger
	identities user.DeliveryIdentityRepository
	dispatcher notification.Dispatcher
}

func New(
	log logging.Logger,
	identities user.DeliveryIdentityRepository,
	dispatcher notification.Dispatcher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if identities == nil {
		panic(e.NewNilArgumentError("identities"))
	}
	if dispatcher == nil {
		panic(e.NewNilArgumentError("dispatcher"))
	}
	return &service{log: log, identities: identities, dispatcher: dispatcher}
}

// Run is the fire-time continuation of a reminder. The delivery identity is
// resolved on every run and never cached. Every failure is logged here and
// the returned error is always nil.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	rem := input.Reminder
	defer func() {
		if r := recover(); r != nil {
			logging.Error(
				ctx,
				s.log,
				e.NewPanicError(r),
				logging.Entry("reminderID", rem.ID),
				logging.Source(source),
			)
			result, err = Result{}, nil
		}
	}()

	identity, err := s.identities.GetDeliveryIdentity(ctx, rem.Identity)
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Debug(
			ctx,
			"Reminder is skipped due to unknown identity.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("identity", rem.Identity),
			logging.Source(source),
		)
		return Result{Skipped: true}, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not resolve delivery identity.",
			logging.Entry("err", err),
			logging.Entry("reminderID", rem.ID),
			logging.Entry("identity", rem.Identity),
			logging.Source(source),
		)
		return result, nil
	}
	if !identity.IsUsable() {
		s.log.Debug(
			ctx,
			"Reminder is skipped due to missing push provider id.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("identity", rem.Identity),
			logging.Source(source),
		)
		return Result{Skipped: true}, nil
	}

	payload := notification.NewReminderPayload(identity, rem)
	if !s.dispatcher.Send(ctx, payload) {
		s.log.Warning(
			ctx,
			"Reminder has not been delivered.",
			logging.Entry("reminderID", rem.ID),
			logging.Entry("subject", rem.Subject),
			logging.Entry("time", rem.TimeOfDay.String()),
			logging.Source(source),
		)
		return result, nil
	}

	s.log.Info(
		ctx,
		"Reminder has been sent.",
		logging.Entry("reminderID", rem.ID),
		logging.Entry("subject", rem.Subject),
		logging.Entry("time", rem.TimeOfDay.String()),
		logging.Source(source),
	)
	return Result{Delivered: true}, nil
}
