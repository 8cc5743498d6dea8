package registerdeliveryidentity

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	service "pushreminder/internal/core/services/register_delivery_identity"
	"pushreminder/internal/http/handlers/response"

	"github.com/go-chi/chi/v5"
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
	PushProviderID     string  `json:"push_provider_id"`
	PushSubscriptionID *string `json:"push_subscription_id"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.PushProviderID, validation.Required, validation.Length(1, 256)),
		validation.Field(&i.PushSubscriptionID, validation.Length(0, 256)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	identity := chi.URLParam(r, "identity")
	if identity == "" {
		response.RenderError(rw, "invalid identity", http.StatusBadRequest)
		return
	}
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{
		Identity:       user.Identity(identity),
		PushProviderID: input.PushProviderID,
	}
	if input.PushSubscriptionID != nil {
		serviceInput.PushSubscriptionID = c.OptionalString(*input.PushSubscriptionID)
	}

	_, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidIdentity), errors.Is(err, user.ErrInvalidDeliveryIdentity):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.RenderNoContent(rw)
}
