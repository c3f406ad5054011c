package dataset

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

// ReadCSV lê registros de vendas de um CSV com cabeçalho.
// Qualquer linha inválida aborta a leitura inteira.
func ReadCSV(r io.Reader) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}

	index, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "read csv line %d", line)
		}

		if isBlank(row) {
			continue
		}

		record, err := index.parseRecord(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// ReadCSVFile abre o arquivo e delega para ReadCSV
func ReadCSVFile(path string) ([]domain.SalesRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer f.Close()

	return ReadCSV(f)
}
