package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

const CronJobTypeFeedbackRetention = "feedback-retention"

// RetentionJob é o job de retenção de feedback visto pela API
type RetentionJob interface {
	GetStatus() map[string]any
	TriggerManualPurge(ctx context.Context)
}

// RunCronJob dispara manualmente uma cron job
func RunCronJob(retention RetentionJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		switch cronType {
		case CronJobTypeFeedbackRetention:
			if retention == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de feedback não disponível", nil)
				return
			}
			retention.TriggerManualPurge(r.Context())
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"accepted": []string{CronJobTypeFeedbackRetention},
			})
			return
		}

		log.ForContext(r.Context()).WithField("cron_type", cronType).Info("cron: execução manual disparada")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(retention RetentionJob) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if retention != nil {
			status[CronJobTypeFeedbackRetention] = retention.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
