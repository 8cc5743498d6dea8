package scheduledailyreminder

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "pushreminder/internal/core/domain/errors"
	ratelimiter "pushreminder/internal/core/domain/rate_limiter"
	"pushreminder/internal/core/domain/reminder"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	service "pushreminder/internal/core/services/schedule_daily_reminder"
	"pushreminder/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Identity string `json:"identity"`
	Subject  string `json:"subject"`
	Time     string `json:"time"`
}

type Result struct {
	Scheduled bool               `json:"scheduled"`
	Reminder  *response.Reminder `json:"reminder,omitempty"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

// Validate leaves Time alone: a malformed time of day is accepted and dropped.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Identity, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.Subject, validation.Required, validation.Length(1, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		service.Input{
			Identity:  user.Identity(input.Identity),
			Subject:   input.Subject,
			TimeOfDay: input.Time,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, reminder.ErrSchedulerStopped):
			response.RenderError(rw, err.Error(), http.StatusServiceUnavailable)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{Scheduled: result.Scheduled}
	if result.Scheduled {
		res.Reminder = &response.Reminder{}
		res.Reminder.FromDomainType(result.Reminder)
	}
	response.Render(rw, res, http.StatusAccepted)
}
