package listpendingreminders

import (
	"net/http"
	c "pushreminder/internal/core/domain/common"
	e "pushreminder/internal/core/domain/errors"
	"pushreminder/internal/core/domain/user"
	"pushreminder/internal/core/services"
	service "pushreminder/internal/core/services/list_pending_reminders"
	"pushreminder/internal/http/handlers/response"
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

type Result struct {
	Reminders []response.Reminder `json:"reminders"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := service.Input{}
	values := r.URL.Query()
	if values.Has("identity") {
		identity := values.Get("identity")
		if identity == "" {
			response.RenderError(rw, "identity must not be empty", http.StatusBadRequest)
			return
		}
		input.Identity = c.NewOptional(user.Identity(identity), true)
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	response.Render(rw, Result{Reminders: response.FromReminders(result.Reminders)}, http.StatusOK)
}
