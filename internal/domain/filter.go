package domain

import (
	"fmt"
	"time"
)

// FilterCriteria representa os filtros opcionais de uma requisição do dashboard.
// Campos nil significam "sem filtro nessa dimensão".
type FilterCriteria struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Region    *string    `json:"region,omitempty"`
}

// IsEmpty indica se nenhum filtro está ativo
func (f *FilterCriteria) IsEmpty() bool {
	return f == nil || (f.StartDate == nil && f.EndDate == nil && f.Region == nil)
}

// Matches verifica se o registro atende a todos os filtros ativos.
// As datas são inclusivas nas duas pontas.
func (f *FilterCriteria) Matches(record SalesRecord) bool {
	if f == nil {
		return true
	}

	if f.StartDate != nil && record.OrderDate.Before(*f.StartDate) {
		return false
	}

	if f.EndDate != nil && record.OrderDate.After(*f.EndDate) {
		return false
	}

	if f.Region != nil && record.Region != *f.Region {
		return false
	}

	return true
}

// InputError indica um parâmetro de requisição inválido que o usuário pode corrigir
type InputError struct {
	Param string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Param, e.Value, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
