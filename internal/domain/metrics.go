package domain

// MonthValue é um ponto da série mensal de vendas
type MonthValue struct {
	Month string  `json:"month"` // Formato yyyy-mm
	Value float64 `json:"value"`
}

// MetricsResult agrega os KPIs e agrupamentos calculados sobre o subconjunto filtrado.
// Quantidades indefinidas (subconjunto vazio, divisão por zero) ficam nil.
type MetricsResult struct {
	TotalSales    float64            `json:"total_sales"`
	TotalProfit   float64            `json:"total_profit"`
	TotalOrders   int                `json:"total_orders"`
	TotalShipping float64            `json:"total_shipping"`
	TotalDiscount float64            `json:"total_discount"`
	RecordCount   int                `json:"record_count"`
	MonthlySales  []MonthValue       `json:"monthly_sales"`
	ProductSales  map[string]float64 `json:"product_sales"`
	RegionProfit  map[string]float64 `json:"region_profit"`
	ShippingRatio *float64           `json:"shipping_ratio"`
	TopProduct    *string            `json:"top_product"`
	AverageProfit *float64           `json:"average_profit"`
}

// IsEmpty indica se as métricas foram calculadas sobre um subconjunto vazio
func (m *MetricsResult) IsEmpty() bool {
	return m == nil || m.RecordCount == 0
}
