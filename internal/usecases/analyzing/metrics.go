package analyzing

import (
	"maps"
	"slices"

	"github.com/samber/lo"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// ComputeMetrics calcula KPIs e agrupamentos sobre o subconjunto já filtrado.
// Nunca falha: num subconjunto vazio os totais ficam zerados e as quantidades
// indefinidas (proporção de frete, produto líder, lucro médio) ficam nil.
func ComputeMetrics(records []domain.SalesRecord) *domain.MetricsResult {
	result := &domain.MetricsResult{
		RecordCount:  len(records),
		MonthlySales: make([]domain.MonthValue, 0),
		ProductSales: make(map[string]float64),
		RegionProfit: make(map[string]float64),
	}

	monthly := make(map[string]float64)
	for _, r := range records {
		profit := r.Profit()

		result.TotalSales += r.TotalPrice
		result.TotalShipping += r.ShippingCost
		result.TotalDiscount += r.DiscountAmount()
		result.TotalProfit += profit

		monthly[r.MonthLabel()] += r.TotalPrice
		result.ProductSales[r.Product] += r.TotalPrice
		result.RegionProfit[r.Region] += profit
	}

	orderIDs := lo.Compact(lo.Map(records, func(r domain.SalesRecord, _ int) string {
		return r.OrderID
	}))
	result.TotalOrders = len(lo.Uniq(orderIDs))

	// yyyy-mm ordena lexicograficamente em ordem cronológica
	for _, month := range slices.Sorted(maps.Keys(monthly)) {
		result.MonthlySales = append(result.MonthlySales, domain.MonthValue{
			Month: month,
			Value: monthly[month],
		})
	}

	if result.TotalSales != 0 {
		ratio := result.TotalShipping / result.TotalSales
		result.ShippingRatio = &ratio
	}

	result.TopProduct = topKey(result.ProductSales)

	if result.RecordCount > 0 {
		average := result.TotalProfit / float64(result.RecordCount)
		result.AverageProfit = &average
	}

	return result
}

// topKey retorna a chave de maior valor; em empate vence a menor chave em ordem alfabética
func topKey(values map[string]float64) *string {
	var (
		top   string
		found bool
	)

	for _, key := range slices.Sorted(maps.Keys(values)) {
		if !found || values[key] > values[top] {
			top = key
			found = true
		}
	}

	if !found {
		return nil
	}
	return &top
}
