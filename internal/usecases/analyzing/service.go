package analyzing

import (
	"errors"
	"maps"
	"slices"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const DefaultTableRowLimit = 10

var ErrDatasetNotLoaded = errors.New("sales dataset not loaded")

var _ Analyzer = (*Service)(nil)

type Service struct {
	salesRepository repository.SalesRepository
	rules           []Rule
	tableRowLimit   int
}

// NewService cria o serviço de análise sobre o dataset já carregado
func NewService(salesRepository repository.SalesRepository, tableRowLimit int) *Service {
	if tableRowLimit <= 0 {
		tableRowLimit = DefaultTableRowLimit
	}

	return &Service{
		salesRepository: salesRepository,
		rules:           DefaultRules(),
		tableRowLimit:   tableRowLimit,
	}
}

func (s *Service) Regions() []string {
	if s.salesRepository == nil {
		return []string{}
	}
	return s.salesRepository.Regions()
}

func (s *Service) RecordCount() int {
	if s.salesRepository == nil {
		return 0
	}
	return s.salesRepository.Len()
}

func (s *Service) Metrics(criteria *domain.FilterCriteria) (*domain.MetricsResult, error) {
	if s.salesRepository == nil {
		return nil, ErrDatasetNotLoaded
	}

	return ComputeMetrics(Filter(s.salesRepository.All(), criteria)), nil
}

func (s *Service) Dashboard(criteria *domain.FilterCriteria) (*domain.DashboardResponse, error) {
	if s.salesRepository == nil {
		return nil, ErrDatasetNotLoaded
	}

	filtered := Filter(s.salesRepository.All(), criteria)
	metrics := ComputeMetrics(filtered)
	insights := GenerateInsights(metrics, s.rules)

	logrus.WithFields(logrus.Fields{
		"records":  len(filtered),
		"insights": len(insights),
	}).Debug("Dashboard calculado")

	response := &domain.DashboardResponse{
		TotalSales:    utils.RoundWithTwoDecimalPlace(metrics.TotalSales),
		TotalProfit:   utils.RoundWithTwoDecimalPlace(metrics.TotalProfit),
		TotalOrders:   metrics.TotalOrders,
		ShippingRatio: metrics.ShippingRatio,
		TopProduct:    metrics.TopProduct,
		Regions:       s.salesRepository.Regions(),
		TableData:     buildTable(filtered, s.tableRowLimit),
		AutoInsights:  insights,
		AISummary:     GenerateSummary(metrics),
		Filters:       criteria,
	}

	response.Months = lo.Map(metrics.MonthlySales, func(mv domain.MonthValue, _ int) string { return mv.Month })
	response.MonthlySales = lo.Map(metrics.MonthlySales, func(mv domain.MonthValue, _ int) float64 { return mv.Value })
	response.Products, response.ProductSales = parallelArrays(metrics.ProductSales)
	response.RegionNames, response.RegionProfit = parallelArrays(metrics.RegionProfit)

	return response, nil
}

// parallelArrays converte um mapa em rótulos (ordem crescente) e valores correspondentes
func parallelArrays(values map[string]float64) ([]string, []float64) {
	labels := slices.Sorted(maps.Keys(values))
	if labels == nil {
		labels = []string{}
	}

	return labels, lo.Map(labels, func(label string, _ int) float64 { return values[label] })
}

// buildTable retorna as primeiras limit linhas do subconjunto filtrado para a tabela de detalhes
func buildTable(records []domain.SalesRecord, limit int) []domain.TableRow {
	if len(records) > limit {
		records = records[:limit]
	}

	return lo.Map(records, func(r domain.SalesRecord, _ int) domain.TableRow {
		return domain.TableRow{
			Product:    r.Product,
			Region:     r.Region,
			TotalPrice: r.TotalPrice,
			Profit:     r.Profit(),
		}
	})
}
