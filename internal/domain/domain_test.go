package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSalesRecord_Profit(t *testing.T) {
	tests := []struct {
		name   string
		record SalesRecord
		want   float64
	}{
		{name: "sem desconto", record: SalesRecord{TotalPrice: 100, ShippingCost: 10}, want: 90},
		{name: "com desconto", record: SalesRecord{TotalPrice: 200, ShippingCost: 15, Discount: 10}, want: 165},
		{name: "frete maior que o preço", record: SalesRecord{TotalPrice: 60.5, ShippingCost: 70}, want: -9.5},
		{name: "desconto total", record: SalesRecord{TotalPrice: 50, Discount: 100}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.record.Profit(), 1e-9)
			assert.InDelta(t, tt.record.TotalPrice-tt.record.ShippingCost-tt.record.DiscountAmount(), tt.record.Profit(), 1e-9)
		})
	}
}

func TestSalesRecord_MonthLabel(t *testing.T) {
	record := SalesRecord{OrderDate: day(2023, time.February, 28)}
	assert.Equal(t, "2023-02", record.MonthLabel())
}

func TestFilterCriteria_Matches(t *testing.T) {
	start := day(2023, time.January, 1)
	end := day(2023, time.January, 31)
	east := "East"

	record := SalesRecord{OrderDate: day(2023, time.January, 31), Region: "East"}

	tests := []struct {
		name     string
		criteria *FilterCriteria
		record   SalesRecord
		want     bool
	}{
		{name: "criteria nil", criteria: nil, record: record, want: true},
		{name: "sem filtros", criteria: &FilterCriteria{}, record: record, want: true},
		{name: "fim inclusivo", criteria: &FilterCriteria{EndDate: &end}, record: record, want: true},
		{name: "início inclusivo", criteria: &FilterCriteria{StartDate: &start}, record: SalesRecord{OrderDate: start}, want: true},
		{name: "antes do início", criteria: &FilterCriteria{StartDate: &start}, record: SalesRecord{OrderDate: day(2022, time.December, 31)}, want: false},
		{name: "depois do fim", criteria: &FilterCriteria{EndDate: &end}, record: SalesRecord{OrderDate: day(2023, time.February, 1)}, want: false},
		{name: "região igual", criteria: &FilterCriteria{Region: &east}, record: record, want: true},
		{name: "região diferente", criteria: &FilterCriteria{Region: &east}, record: SalesRecord{Region: "east"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.criteria.Matches(tt.record))
		})
	}
}

func TestFilterCriteria_IsEmpty(t *testing.T) {
	region := "West"

	assert.True(t, (*FilterCriteria)(nil).IsEmpty())
	assert.True(t, (&FilterCriteria{}).IsEmpty())
	assert.False(t, (&FilterCriteria{Region: &region}).IsEmpty())
}

func TestInputError(t *testing.T) {
	cause := errors.New("parsing time")
	var err error = &InputError{Param: "start_date", Value: "ontem", Err: cause}

	assert.Contains(t, err.Error(), "start_date")
	assert.Contains(t, err.Error(), `"ontem"`)
	assert.ErrorIs(t, err, cause)

	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "start_date", inputErr.Param)
}

func TestMetricsResult_IsEmpty(t *testing.T) {
	assert.True(t, (*MetricsResult)(nil).IsEmpty())
	assert.True(t, (&MetricsResult{}).IsEmpty())
	assert.False(t, (&MetricsResult{RecordCount: 1}).IsEmpty())
}
