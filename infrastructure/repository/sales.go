package repository

import (
	"slices"

	"github.com/samber/lo"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// SalesRepository expõe o dataset carregado na inicialização apenas para leitura
type SalesRepository interface {
	// All retorna uma cópia dos registros, na ordem do arquivo
	All() []domain.SalesRecord
	// Regions retorna as regiões distintas do dataset completo, em ordem crescente
	Regions() []string
	Len() int
}

type salesRepository struct {
	records []domain.SalesRecord
	regions []string
}

// NewSalesRepository cria o container imutável a partir dos registros carregados.
// O slice recebido é copiado; alterações posteriores do chamador não o afetam.
func NewSalesRepository(records []domain.SalesRecord) SalesRepository {
	owned := slices.Clone(records)

	regions := lo.Uniq(lo.Map(owned, func(r domain.SalesRecord, _ int) string {
		return r.Region
	}))
	slices.Sort(regions)

	return &salesRepository{
		records: owned,
		regions: regions,
	}
}

func (r *salesRepository) All() []domain.SalesRecord {
	return slices.Clone(r.records)
}

func (r *salesRepository) Regions() []string {
	return slices.Clone(r.regions)
}

func (r *salesRepository) Len() int {
	return len(r.records)
}
