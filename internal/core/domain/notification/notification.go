package notification

import (
	"errors"
	"fmt"
	c "pushreminder/internal/core/domain/common"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/domain/user"

	validation "github.com/go-ozzo/ozzo-validation"
)

var ErrIncompletePayload = errors.New("incomplete notification payload")

const (
	ReminderTitle = "È ora di prendere la medicina!"
	ReminderType  = "medicine_reminder"
)

type Payload struct {
	PushProviderID     string
	PushSubscriptionID c.Optional[string]
	Title              string
	Message            string
	Data               map[string]interface{}
}

// Validate reports ErrIncompletePayload unless provider id, title and message are set.
func (p Payload) Validate() error {
	err := validation.ValidateStruct(&p,
		validation.Field(&p.PushProviderID, validation.Required),
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Message, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrIncompletePayload, err.Error())
	}
	return nil
}

func NewReminderPayload(d user.DeliveryIdentity, r reminder.Reminder) Payload {
	tod := r.DisplayTime()
	return Payload{
		PushProviderID:     d.PushProviderID,
		PushSubscriptionID: d.PushSubscriptionID,
		Title:              ReminderTitle,
		Message:            fmt.Sprintf("È ora di prendere %s alle %s", r.Subject, tod),
		Data: map[string]interface{}{
			"type":         ReminderType,
			"medicineName": r.Subject,
			"time":         tod,
		},
	}
}
