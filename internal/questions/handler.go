package questions

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/trivia-quest/backend/internal/generator"
	"github.com/trivia-quest/backend/internal/models"
)

const (
	msgNoQuestions      = "No questions found for this level"
	msgGenerationFailed = "Failed to generate question using AI"
	msgErrorPrefix      = "An error occurred: "
)

type Handler struct {
	service *Service
	log     zerolog.Logger
}

func NewHandler(service *Service, log zerolog.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// GetQuestions serves GET /getQuestions?level=&use_ai=.
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r)

	req, err := ParseRequest(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: err.Error()})
		return
	}

	questions, err := h.service.GetQuestions(r.Context(), req)
	if err != nil {
		status, msg := h.mapError(err)
		ev := log.Warn()
		if status >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Err(err).
			Str("level", string(req.Level)).
			Bool("use_ai", req.UseAI).
			Int("status", status).
			Msg("getQuestions failed")
		writeJSON(w, status, models.ErrorResponse{Message: msg})
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

// mapError turns a service error into a status and a caller-safe message.
func (h *Handler) mapError(err error) (int, string) {
	var (
		upstream *UpstreamError
		svcErr   *generator.ServiceError
		parseErr *generator.ParseError
	)
	switch {
	case errors.Is(err, ErrNoQuestions):
		return http.StatusNotFound, msgNoQuestions
	case errors.As(err, &svcErr), errors.As(err, &parseErr):
		return http.StatusInternalServerError, msgGenerationFailed
	case errors.As(err, &upstream):
		return http.StatusInternalServerError, msgErrorPrefix + upstream.Detail()
	default:
		return http.StatusInternalServerError, msgErrorPrefix + "internal error"
	}
}

// logger prefers the request-scoped logger set by middleware.
func (h *Handler) logger(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &h.log
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
