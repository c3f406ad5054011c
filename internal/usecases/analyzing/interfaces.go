package analyzing

import (
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// Analyzer é a interface consumida pela camada HTTP e pelo CLI de relatório
type Analyzer interface {
	// Dashboard filtra o dataset, calcula métricas, insights e resumo e
	// devolve tudo no formato esperado pelos gráficos
	Dashboard(criteria *domain.FilterCriteria) (*domain.DashboardResponse, error)

	// Metrics retorna apenas as métricas calculadas sobre o subconjunto filtrado
	Metrics(criteria *domain.FilterCriteria) (*domain.MetricsResult, error)

	// Regions retorna as regiões do dataset completo, independente de filtros
	Regions() []string

	// RecordCount retorna quantos registros foram carregados
	RecordCount() int
}
