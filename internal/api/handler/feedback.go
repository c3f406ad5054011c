package handler

import (
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/feedback"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

const maxFeedbackBodyBytes = 1 << 20

type FeedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	Message string `json:"message"`
}

type FeedbackSubmitResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type FeedbackListResponse struct {
	Feedback []*domain.Feedback `json:"feedback"`
	Count    int                `json:"count"`
}

// SubmitFeedback aceita o formulário (urlencoded ou multipart) ou um corpo JSON.
// Nenhum campo é obrigatório.
func SubmitFeedback(service feedback.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		r.Body = http.MaxBytesReader(w, r.Body, maxFeedbackBodyBytes)

		req, err := decodeFeedback(r)
		if err != nil {
			logger.WithError(err).Warn("feedback: corpo inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		saved, err := service.Submit(r.Context(), domain.Feedback{
			Name:    req.Name,
			Email:   req.Email,
			Purpose: req.Purpose,
			Message: req.Message,
		})
		if err != nil {
			logger.WithError(err).Error("feedback: erro ao registrar")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao registrar feedback", nil)
			return
		}

		writeJSON(w, http.StatusCreated, FeedbackSubmitResponse{ID: saved.ID, Status: "success"})
	})
}

func decodeFeedback(r *http.Request) (*FeedbackRequest, error) {
	req := &FeedbackRequest{}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			return nil, err
		}
		return req, nil
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxFeedbackBodyBytes); err != nil {
			return nil, err
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, err
	}

	req.Name = r.FormValue("name")
	req.Email = r.FormValue("email")
	req.Purpose = r.FormValue("purpose")
	req.Message = r.FormValue("message")

	return req, nil
}

// ListFeedback devolve os feedbacks mais recentes primeiro
func ListFeedback(service feedback.Collector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limit inválido", map[string]any{
					"param": "limit",
					"value": raw,
				})
				return
			}
			limit = parsed
		}

		items, err := service.List(r.Context(), limit)
		if err != nil {
			logger.WithError(err).Error("feedback: erro ao listar")
			code := apiErrors.ErrInternalServer
			if errors.Is(err, feedback.ErrList) {
				code = apiErrors.ErrDatabaseOperation
			}
			apiErrors.WriteError(w, code, "Erro ao listar feedbacks", nil)
			return
		}

		if items == nil {
			items = []*domain.Feedback{}
		}

		writeJSON(w, http.StatusOK, FeedbackListResponse{Feedback: items, Count: len(items)})
	})
}
