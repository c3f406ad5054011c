package analyzing

import (
	"strings"

	"github.com/samber/lo"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// Nomes dos parâmetros de consulta aceitos pelo dashboard
const (
	ParamStartDate = "start_date"
	ParamEndDate   = "end_date"
	ParamRegion    = "region"
)

// ParseCriteria monta os filtros a partir dos parâmetros brutos da requisição.
// Parâmetros vazios desativam o filtro; datas não vazias e inválidas geram *domain.InputError.
func ParseCriteria(startDate, endDate, region string) (*domain.FilterCriteria, error) {
	criteria := &domain.FilterCriteria{}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, &domain.InputError{Param: ParamStartDate, Value: startDate, Err: err}
	}
	criteria.StartDate = start

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return nil, &domain.InputError{Param: ParamEndDate, Value: endDate, Err: err}
	}
	criteria.EndDate = end

	if strings.TrimSpace(region) != "" {
		criteria.Region = &region
	}

	return criteria, nil
}

// Filter retorna os registros que atendem a todos os filtros ativos, preservando a ordem.
// Um resultado vazio não é erro.
func Filter(records []domain.SalesRecord, criteria *domain.FilterCriteria) []domain.SalesRecord {
	if criteria.IsEmpty() {
		return records
	}

	return lo.Filter(records, func(r domain.SalesRecord, _ int) bool {
		return criteria.Matches(r)
	})
}
