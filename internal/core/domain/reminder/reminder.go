package reminder

import (
	"fmt"
	"pushreminder/internal/core/domain/user"
	"time"

	"github.com/google/uuid"
)

type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

type Reminder struct {
	ID        ID
	Identity  user.Identity
	Subject   string
	TimeOfDay TimeOfDay

	// RequestedTime is the time of day as the caller wrote it.
	RequestedTime string
	At            time.Time
	CreatedAt     time.Time
}

// DisplayTime is the time of day shown to the user: the caller's own text when
// known, "HH:MM" otherwise.
func (r *Reminder) DisplayTime() string {
	if r.RequestedTime != "" {
		return r.RequestedTime
	}
	return r.TimeOfDay.String()
}

func (r *Reminder) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: id must be set", ErrInvalidReminder)
	}
	if err := r.TimeOfDay.Validate(); err != nil {
		return err
	}
	if !r.At.After(r.CreatedAt) {
		return fmt.Errorf("%w: firing instant must be after creation time", ErrInvalidReminder)
	}
	return nil
}

// Delay is how long a timer armed at now must wait for the reminder.
func (r *Reminder) Delay(now time.Time) time.Duration {
	d := r.At.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
