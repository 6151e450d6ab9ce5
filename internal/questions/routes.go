package questions

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/getQuestions", h.GetQuestions).Methods(http.MethodGet)
}
