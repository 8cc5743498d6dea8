package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time recurring every day, minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	t := TimeOfDay{Hour: hour, Minute: minute}
	return t, t.Validate()
}

func (t TimeOfDay) Validate() error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 {
		return ErrInvalidTimeOfDay
	}
	return nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ParseTimeOfDay parses "HH:MM". Single digit components ("9:05") and blanks
// around either component ("14: 30") are accepted.
func ParseTimeOfDay(value string) (t TimeOfDay, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return t, ErrInvalidTimeOfDay
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return t, ErrInvalidTimeOfDay
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return t, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

// NextFiringInstant returns the next moment strictly after now at which the
// wall clock in now's location shows t. It is either today or tomorrow; across
// a DST change tomorrow is 23 or 25 hours away.
func NextFiringInstant(now time.Time, t TimeOfDay) time.Time {
	loc := now.Location()
	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, loc)
	if !at.After(now) {
		at = at.AddDate(0, 0, 1)
	}
	return at
}
