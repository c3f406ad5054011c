package dataset

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// Load lê o dataset escolhendo o leitor pela extensão do arquivo (.csv ou .xlsx)
func Load(path string, sheet string) ([]domain.SalesRecord, error) {
	var (
		records []domain.SalesRecord
		err     error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv", ".txt", "":
		records, err = ReadCSVFile(path)
	case ".xlsx", ".xlsm":
		records, err = ReadXLSXFile(path, sheet)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "extension %s", ext)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "load dataset %s", path)
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
	}).Info("Dataset de vendas carregado")

	return records, nil
}
