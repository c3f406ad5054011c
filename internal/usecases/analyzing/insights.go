package analyzing

import (
	"fmt"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// HighShippingRatio é o limite (exclusivo) a partir do qual o frete é considerado alto
const HighShippingRatio = 0.25

// Rule é uma regra de insight independente, avaliada sobre métricas já calculadas.
// Retorna false quando não se aplica ou quando depende de uma quantidade indefinida.
type Rule interface {
	Name() string
	Evaluate(metrics *domain.MetricsResult) (domain.Insight, bool)
}

// DefaultRules retorna as regras na ordem em que os insights são apresentados
func DefaultRules() []Rule {
	return []Rule{
		PeakMonthRule{},
		TroughMonthRule{},
		AverageProfitRule{},
		HighShippingRule{Threshold: HighShippingRatio},
		TopProductRule{},
	}
}

// GenerateInsights avalia as regras em ordem e acumula os insights emitidos.
// Um subconjunto vazio não gera insights.
func GenerateInsights(metrics *domain.MetricsResult, rules []Rule) []domain.Insight {
	insights := make([]domain.Insight, 0, len(rules))
	if metrics.IsEmpty() {
		return insights
	}

	for _, rule := range rules {
		if insight, ok := rule.Evaluate(metrics); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

// PeakMonthRule aponta o mês de maior venda (primeiro em ordem cronológica em caso de empate)
type PeakMonthRule struct{}

func (PeakMonthRule) Name() string { return "peak_month" }

func (PeakMonthRule) Evaluate(metrics *domain.MetricsResult) (domain.Insight, bool) {
	month, ok := extremeMonth(metrics, func(candidate, current float64) bool { return candidate > current })
	if !ok {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Insight: fmt.Sprintf("Highest sales occurred in %s, indicating seasonal demand.", month),
		Action:  "Increase inventory and marketing efforts during this period.",
	}, true
}

// TroughMonthRule aponta o mês de menor venda (primeiro em ordem cronológica em caso de empate)
type TroughMonthRule struct{}

func (TroughMonthRule) Name() string { return "trough_month" }

func (TroughMonthRule) Evaluate(metrics *domain.MetricsResult) (domain.Insight, bool) {
	month, ok := extremeMonth(metrics, func(candidate, current float64) bool { return candidate < current })
	if !ok {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Insight: fmt.Sprintf("Lowest sales were observed in %s, suggesting weaker demand.", month),
		Action:  "Run promotions or discounts to boost demand during this period.",
	}, true
}

func extremeMonth(metrics *domain.MetricsResult, better func(candidate, current float64) bool) (string, bool) {
	if metrics == nil || len(metrics.MonthlySales) == 0 {
		return "", false
	}

	best := metrics.MonthlySales[0]
	for _, mv := range metrics.MonthlySales[1:] {
		if better(mv.Value, best.Value) {
			best = mv
		}
	}

	return best.Month, true
}

// AverageProfitRule classifica o lucro médio por registro; zero conta como positivo
type AverageProfitRule struct{}

func (AverageProfitRule) Name() string { return "average_profit" }

func (AverageProfitRule) Evaluate(metrics *domain.MetricsResult) (domain.Insight, bool) {
	if metrics == nil || metrics.AverageProfit == nil {
		return domain.Insight{}, false
	}

	if *metrics.AverageProfit < 0 {
		return domain.Insight{
			Insight: "Overall average profit is negative, indicating high costs or discounts.",
			Action:  "Review cost structure and optimize discount strategies.",
		}, true
	}

	return domain.Insight{
		Insight: "Overall average profit is positive, showing healthy business performance.",
		Action:  "Continue current strategies and explore scaling opportunities.",
	}, true
}

// HighShippingRule dispara quando frete / vendas é estritamente maior que Threshold
type HighShippingRule struct {
	Threshold float64
}

func (HighShippingRule) Name() string { return "high_shipping" }

func (r HighShippingRule) Evaluate(metrics *domain.MetricsResult) (domain.Insight, bool) {
	if !shippingAbove(metrics, r.Threshold) {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Insight: "Shipping cost exceeds 25% of total sales, significantly impacting profit.",
		Action:  "Negotiate shipping contracts or switch to cost-effective delivery options.",
	}, true
}

func shippingAbove(metrics *domain.MetricsResult, threshold float64) bool {
	return metrics != nil && metrics.ShippingRatio != nil && *metrics.ShippingRatio > threshold
}

// TopProductRule destaca o produto com maior receita
type TopProductRule struct{}

func (TopProductRule) Name() string { return "top_product" }

func (TopProductRule) Evaluate(metrics *domain.MetricsResult) (domain.Insight, bool) {
	if metrics == nil || metrics.TopProduct == nil {
		return domain.Insight{}, false
	}

	product := *metrics.TopProduct
	return domain.Insight{
		Insight: fmt.Sprintf("%s is the top-selling product by revenue.", product),
		Action:  fmt.Sprintf("Ensure sufficient stock levels and focus marketing on %s.", product),
	}, true
}
