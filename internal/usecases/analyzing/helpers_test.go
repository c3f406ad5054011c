package analyzing

import (
	"time"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

// twoRecords é o cenário de referência: duas vendas de Widget em regiões e meses diferentes
func twoRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{OrderID: "1", OrderDate: day(2023, time.January, 5), Region: "East", Product: "Widget", TotalPrice: 100, ShippingCost: 10},
		{OrderID: "2", OrderDate: day(2023, time.February, 10), Region: "West", Product: "Widget", TotalPrice: 50, ShippingCost: 20},
	}
}

// mixedRecords cobre vários meses, produtos, regiões e descontos
func mixedRecords() []domain.SalesRecord {
	return []domain.SalesRecord{
		{OrderID: "A1", OrderDate: day(2023, time.March, 1), Region: "North", Product: "Gadget", TotalPrice: 200, ShippingCost: 15, Discount: 10},
		{OrderID: "A2", OrderDate: day(2023, time.January, 31), Region: "South", Product: "Widget", TotalPrice: 80, ShippingCost: 30, Discount: 5},
		{OrderID: "A2", OrderDate: day(2023, time.January, 31), Region: "South", Product: "Gizmo", TotalPrice: 40, ShippingCost: 2, Discount: 0},
		{OrderID: "A3", OrderDate: day(2023, time.February, 14), Region: "North", Product: "Widget", TotalPrice: 120, ShippingCost: 8, Discount: 50},
		{OrderID: "A4", OrderDate: day(2023, time.March, 31), Region: "East", Product: "Gizmo", TotalPrice: 60.5, ShippingCost: 70, Discount: 0},
		{OrderID: "A5", OrderDate: day(2022, time.December, 24), Region: "East", Product: "Gadget", TotalPrice: 15.25, ShippingCost: 1.5, Discount: 20},
	}
}
