// Package dataset lê o arquivo tabular de vendas (CSV ou XLSX) para memória
package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// Colunas obrigatórias do dataset
const (
	ColumnOrderID      = "OrderID"
	ColumnOrderDate    = "OrderDate"
	ColumnRegion       = "Region"
	ColumnProduct      = "Product"
	ColumnTotalPrice   = "TotalPrice"
	ColumnShippingCost = "ShippingCost"
	ColumnDiscount     = "Discount"
)

var requiredColumns = []string{
	ColumnOrderID,
	ColumnOrderDate,
	ColumnRegion,
	ColumnProduct,
	ColumnTotalPrice,
	ColumnShippingCost,
	ColumnDiscount,
}

// Formatos de data aceitos na coluna OrderDate, na ordem de tentativa.
// Formatos numéricos são sempre mês antes do dia; 1/2/06 é a data curta do Excel.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"1/2/2006",
	"1/2/06",
	"01-02-2006",
}

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrNonFinite     = errors.New("value is not a finite number")
)

// columnIndex mapeia o nome de cada coluna obrigatória para sua posição no cabeçalho
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	index := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "column %s", column)
		}
	}

	return index, nil
}

func (c columnIndex) value(row []string, column string) string {
	i := c[column]
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseRecord converte uma linha bruta em SalesRecord. line é usado apenas nas mensagens de erro.
func (c columnIndex) parseRecord(row []string, line int) (domain.SalesRecord, error) {
	orderDate, err := parseOrderDate(c.value(row, ColumnOrderDate))
	if err != nil {
		return domain.SalesRecord{}, errors.Wrapf(err, "line %d: column %s", line, ColumnOrderDate)
	}

	numbers := make(map[string]float64, 3)
	for _, column := range []string{ColumnTotalPrice, ColumnShippingCost, ColumnDiscount} {
		raw := c.value(row, column)
		if raw == "" {
			numbers[column] = 0
			continue
		}

		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.SalesRecord{}, errors.Wrapf(err, "line %d: column %s", line, column)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return domain.SalesRecord{}, errors.Wrapf(ErrNonFinite, "line %d: column %s", line, column)
		}
		numbers[column] = n
	}

	return domain.SalesRecord{
		OrderID:      c.value(row, ColumnOrderID),
		OrderDate:    orderDate,
		Region:       c.value(row, ColumnRegion),
		Product:      c.value(row, ColumnProduct),
		TotalPrice:   numbers[ColumnTotalPrice],
		ShippingCost: numbers[ColumnShippingCost],
		Discount:     numbers[ColumnDiscount],
	}, nil
}

func parseOrderDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("empty date")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return utils.TruncateToDay(t), nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date %q", raw)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
