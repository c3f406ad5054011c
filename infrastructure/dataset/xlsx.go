package dataset

import (
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

// ReadXLSX lê registros de vendas de uma planilha. Sem sheet, usa a primeira aba.
func ReadXLSX(r io.Reader, sheet string) ([]domain.SalesRecord, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "open workbook")
	}
	defer file.Close()

	return readWorkbook(file, sheet)
}

// ReadXLSXFile abre a planilha do disco e delega para readWorkbook
func ReadXLSXFile(path string, sheet string) ([]domain.SalesRecord, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "open dataset")
	}
	defer file.Close()

	return readWorkbook(file, sheet)
}

func readWorkbook(file *excelize.File, sheet string) ([]domain.SalesRecord, error) {
	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "read sheet %s", sheet)
	}

	if len(rows) == 0 {
		return nil, errors.Errorf("sheet %s is empty", sheet)
	}

	index, err := newColumnIndex(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}

		record, err := index.parseRecord(row, i+2)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
