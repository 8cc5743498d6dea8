package response

import (
	"pushreminder/internal/core/domain/reminder"
	"time"
)

type Reminder struct {
	ID        string    `json:"id"`
	Identity  string    `json:"identity"`
	Subject   string    `json:"subject"`
	Time      string    `json:"time"`
	At        time.Time `json:"at"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Reminder) FromDomainType(dr reminder.Reminder) {
	r.ID = string(dr.ID)
	r.Identity = string(dr.Identity)
	r.Subject = dr.Subject
	r.Time = dr.TimeOfDay.String()
	r.At = dr.At
	r.CreatedAt = dr.CreatedAt
}

func FromReminders(reminders []reminder.Reminder) []Reminder {
	result := make([]Reminder, 0, len(reminders))
	for _, dr := range reminders {
		var r Reminder
		r.FromDomainType(dr)
		result = append(result, r)
	}
	return result
}
