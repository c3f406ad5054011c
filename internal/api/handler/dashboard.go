package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/pkg/apiErrors"
	"github.com/vfg2006/sales-insights-api/pkg/log"
)

type RegionsResponse struct {
	Regions []string `json:"regions"`
}

// Dashboard aplica os filtros da query string e devolve KPIs, gráficos, tabela,
// insights e resumo calculados sobre o subconjunto filtrado
func Dashboard(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		criteria, err := analyzing.ParseCriteria(
			query.Get(analyzing.ParamStartDate),
			query.Get(analyzing.ParamEndDate),
			query.Get(analyzing.ParamRegion),
		)
		if err != nil {
			handleCriteriaError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": query.Get(analyzing.ParamStartDate),
			"end_date":   query.Get(analyzing.ParamEndDate),
			"region":     query.Get(analyzing.ParamRegion),
		}).Debug("dashboard: filtros recebidos")

		response, err := service.Dashboard(criteria)
		if err != nil {
			handleAnalyzerError(w, logger, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	})
}

// Regions devolve as regiões do dataset completo para o controle de filtro
func Regions(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, RegionsResponse{Regions: service.Regions()})
	})
}

func handleCriteriaError(w http.ResponseWriter, logger log.Logger, err error) {
	var inputErr *domain.InputError
	if errors.As(err, &inputErr) {
		logger.WithError(err).Warn("dashboard: parâmetro inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", map[string]any{
			"param": inputErr.Param,
			"value": inputErr.Value,
		})
		return
	}

	logger.WithError(err).Error("dashboard: erro ao interpretar filtros")
	apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Filtros inválidos", nil)
}

func handleAnalyzerError(w http.ResponseWriter, logger log.Logger, err error) {
	logger.WithError(err).Error("dashboard: erro ao calcular métricas")

	if errors.Is(err, analyzing.ErrDatasetNotLoaded) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset de vendas indisponível", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular o dashboard", nil)
}
