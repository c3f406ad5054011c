package domain

// Insight é um par (observação, ação recomendada) gerado pelas regras de negócio
type Insight struct {
	Insight string `json:"insight"`
	Action  string `json:"action"`
}

// TableRow é uma linha da tabela de detalhes exibida no dashboard
type TableRow struct {
	Product    string  `json:"Product"`
	Region     string  `json:"Region"`
	TotalPrice float64 `json:"TotalPrice"`
	Profit     float64 `json:"Profit"`
}

// DashboardResponse é a estrutura consumida pela camada de visualização:
// arrays paralelos para os gráficos, KPIs, tabela, insights e resumo.
type DashboardResponse struct {
	TotalSales    float64         `json:"total_sales"`
	TotalProfit   float64         `json:"total_profit"`
	TotalOrders   int             `json:"total_orders"`
	ShippingRatio *float64        `json:"shipping_ratio"`
	TopProduct    *string         `json:"top_product"`
	Regions       []string        `json:"regions"`
	Months        []string        `json:"months"`
	MonthlySales  []float64       `json:"monthly_sales"`
	Products      []string        `json:"products"`
	ProductSales  []float64       `json:"product_sales"`
	RegionNames   []string        `json:"region_names"`
	RegionProfit  []float64       `json:"region_profit"`
	TableData     []TableRow      `json:"table_data"`
	AutoInsights  []Insight       `json:"auto_insights"`
	AISummary     string          `json:"ai_summary"`
	Filters       *FilterCriteria `json:"filters"`
}
