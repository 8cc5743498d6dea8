package reminder

import "errors"

var (
	ErrInvalidTimeOfDay     = errors.New("invalid time of day, expected HH:MM")
	ErrInvalidReminder      = errors.New("invalid reminder")
	ErrReminderDoesNotExist = errors.New("reminder does not exist")
	ErrSchedulerStopped     = errors.New("reminder scheduler is stopped")
)
