package health

import (
	"net/http"
	"pushreminder/internal/http/handlers/response"
)

type Result struct {
	Status string `json:"status"`
}

func Handle(rw http.ResponseWriter, r *http.Request) {
	response.Render(rw, Result{Status: "ok"}, http.StatusOK)
}
