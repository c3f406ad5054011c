package utils

import (
	"strings"
	"time"
)

// ParseDate interpreta uma data no formato yyyy-mm-dd.
// String vazia significa "sem data" e retorna nil sem erro.
func ParseDate(dateStr string) (*time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// TruncateToDay remove a parte de horário de uma data, mantendo o dia em UTC
func TruncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
