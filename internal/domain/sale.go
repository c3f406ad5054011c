package domain

import "time"

// SalesRecord representa uma linha do dataset de vendas. Imutável após a carga.
type SalesRecord struct {
	OrderID      string    `json:"order_id"`
	OrderDate    time.Time `json:"order_date"`
	Region       string    `json:"region"`
	Product      string    `json:"product"`
	TotalPrice   float64   `json:"total_price"`
	ShippingCost float64   `json:"shipping_cost"`
	Discount     float64   `json:"discount"` // Percentual (0-100)
}

// DiscountAmount retorna o valor do desconto aplicado sobre o preço total
func (r SalesRecord) DiscountAmount() float64 {
	return r.TotalPrice * r.Discount / 100
}

// Profit é o único ponto onde o lucro de um registro é derivado:
// preço - frete - (preço * desconto / 100)
func (r SalesRecord) Profit() float64 {
	return r.TotalPrice - r.ShippingCost - r.DiscountAmount()
}

// MonthLabel retorna o mês do pedido no formato ordenável yyyy-mm
func (r SalesRecord) MonthLabel() string {
	return r.OrderDate.Format(MonthLayout)
}

// MonthLayout é o formato dos rótulos mensais (ex: 2023-01)
const MonthLayout = "2006-01"
