package sendnotification

import (
	"encoding/json"
	"io"
	"net/http"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/notification"
	"pushreminder/internal/core/services"
	service "pushreminder/internal/core/services/send_notification"
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
	PushProviderID     string                 `json:"push_provider_id"`
	PushSubscriptionID *string                `json:"push_subscription_id"`
	Title              string                 `json:"title"`
	Message            string                 `json:"message"`
	Data               map[string]interface{} `json:"data"`
}

type Result struct {
	Delivered bool `json:"delivered"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

// Validate bounds field sizes only. Completeness is judged by the dispatcher.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PushProviderID, validation.Length(0, 256)),
		validation.Field(&i.PushSubscriptionID, validation.Length(0, 256)),
		validation.Field(&i.Title, validation.Length(0, 256)),
		validation.Field(&i.Message, validation.Length(0, 2048)),
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

	payload := notification.Payload{
		PushProviderID: input.PushProviderID,
		Title:          input.Title,
		Message:        input.Message,
		Data:           input.Data,
	}
	if input.PushSubscriptionID != nil {
		payload.PushSubscriptionID = c.OptionalString(*input.PushSubscriptionID)
	}

	result, err := h.service.Run(r.Context(), service.Input{Payload: payload})
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Delivered: result.Delivered}, http.StatusOK)
}
