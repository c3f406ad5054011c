package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
)

type HealthcheckResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Records int    `json:"records"`
}

func HealthcheckHandler(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthcheckResponse{
			Status:  "ok",
			Time:    time.Now().Format(time.RFC3339),
			Records: service.RecordCount(),
		})
	})
}
