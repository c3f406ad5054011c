package analyzing

import (
	"strings"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// GenerateSummary compõe o resumo narrativo a partir de um template fixo.
// O texto é determinístico: mesmas métricas, mesmo resumo.
func GenerateSummary(metrics *domain.MetricsResult) string {
	if metrics == nil {
		metrics = &domain.MetricsResult{}
	}

	var sb strings.Builder
	sb.WriteString("The business shows ")

	if metrics.TotalSales > 0 {
		sb.WriteString("active sales performance ")
	} else {
		sb.WriteString("weak sales performance ")
	}

	if metrics.TotalProfit > 0 {
		sb.WriteString("with overall profitability remaining positive. ")
	} else {
		sb.WriteString("but profitability is under pressure. ")
	}

	if shippingAbove(metrics, HighShippingRatio) {
		sb.WriteString("High shipping costs are significantly impacting profit margins. ")
		sb.WriteString("Optimizing logistics could improve financial outcomes. ")
	}

	if metrics.TopProduct != nil {
		sb.WriteString(*metrics.TopProduct)
		sb.WriteString(" emerges as the top-performing product, presenting opportunities for focused growth strategies.")
	}

	return strings.TrimSpace(sb.String())
}
