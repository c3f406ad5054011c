package analyzing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func TestGenerateSummary(t *testing.T) {
	tests := []struct {
		name    string
		metrics *domain.MetricsResult
		want    string
	}{
		{
			name:    "vendas e lucro positivos",
			metrics: ComputeMetrics(twoRecords()),
			want: "The business shows active sales performance with overall profitability remaining positive. " +
				"Widget emerges as the top-performing product, presenting opportunities for focused growth strategies.",
		},
		{
			name: "frete alto e lucro sob pressão",
			metrics: &domain.MetricsResult{
				TotalSales:    100,
				TotalProfit:   -5,
				ShippingRatio: ptr(0.3),
				TopProduct:    ptr("Crate"),
			},
			want: "The business shows active sales performance but profitability is under pressure. " +
				"High shipping costs are significantly impacting profit margins. " +
				"Optimizing logistics could improve financial outcomes. " +
				"Crate emerges as the top-performing product, presenting opportunities for focused growth strategies.",
		},
		{
			name: "proporção de frete exatamente no limite não gera alerta",
			metrics: &domain.MetricsResult{
				TotalSales:    100,
				TotalProfit:   0,
				ShippingRatio: ptr(0.25),
				TopProduct:    ptr("A"),
			},
			want: "The business shows active sales performance but profitability is under pressure. " +
				"A emerges as the top-performing product, presenting opportunities for focused growth strategies.",
		},
		{
			name:    "subconjunto vazio omite o produto líder",
			metrics: ComputeMetrics(nil),
			want:    "The business shows weak sales performance but profitability is under pressure.",
		},
		{
			name:    "métricas nil",
			metrics: nil,
			want:    "The business shows weak sales performance but profitability is under pressure.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSummary(tt.metrics))
		})
	}
}

func TestGenerateSummary_Deterministic(t *testing.T) {
	metrics := ComputeMetrics(mixedRecords())
	assert.Equal(t, GenerateSummary(metrics), GenerateSummary(metrics))
}
