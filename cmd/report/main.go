// Command report imprime KPIs, insights e o resumo do dataset de vendas sem subir a API.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/vfg2006/sales-insights-api/infrastructure/dataset"
	"github.com/vfg2006/sales-insights-api/infrastructure/repository"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

const (
	formatText = "text"
	formatJSON = "json"
)

type options struct {
	datasetPath string
	sheet       string
	startDate   string
	endDate     string
	region      string
	format      string
	rows        int
}

func main() {
	logrus.SetLevel(logrus.WarnLevel)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "report:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, output io.Writer) (*options, error) {
	opts := &options{}

	fs := pflag.NewFlagSet("report", pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&opts.datasetPath, "dataset", "d", "Business_Sales_Dataset.csv", "caminho do dataset (.csv ou .xlsx)")
	fs.StringVar(&opts.sheet, "sheet", "", "planilha do arquivo .xlsx (padrão: a primeira)")
	fs.StringVar(&opts.startDate, "start", "", "data inicial inclusiva (YYYY-MM-DD)")
	fs.StringVar(&opts.endDate, "end", "", "data final inclusiva (YYYY-MM-DD)")
	fs.StringVarP(&opts.region, "region", "r", "", "filtra por região")
	fs.StringVarP(&opts.format, "format", "f", formatText, "formato de saída: text ou json")
	fs.IntVar(&opts.rows, "rows", analyzing.DefaultTableRowLimit, "linhas da tabela de detalhes")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.format = strings.ToLower(opts.format)
	if opts.format != formatText && opts.format != formatJSON {
		return nil, fmt.Errorf("formato inválido: %s", opts.format)
	}

	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	criteria, err := analyzing.ParseCriteria(opts.startDate, opts.endDate, opts.region)
	if err != nil {
		return err
	}

	records, err := dataset.Load(opts.datasetPath, opts.sheet)
	if err != nil {
		return err
	}

	service := analyzing.NewService(repository.NewSalesRepository(records), opts.rows)
	dashboard, err := service.Dashboard(criteria)
	if err != nil {
		return err
	}

	if opts.format == formatJSON {
		_, err = fmt.Fprintln(stdout, utils.PrettyJson(dashboard))
		return err
	}

	return writeText(stdout, dashboard)
}

func writeText(w io.Writer, d *domain.DashboardResponse) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Total sales:   %.2f\n", d.TotalSales)
	fmt.Fprintf(&sb, "Total profit:  %.2f\n", d.TotalProfit)
	fmt.Fprintf(&sb, "Total orders:  %d\n", d.TotalOrders)
	if d.ShippingRatio != nil {
		fmt.Fprintf(&sb, "Shipping ratio: %.2f%%\n", *d.ShippingRatio*100)
	}
	if d.TopProduct != nil {
		fmt.Fprintf(&sb, "Top product:   %s\n", *d.TopProduct)
	}

	if len(d.Months) > 0 {
		sb.WriteString("\nMonthly sales\n")
		for i, month := range d.Months {
			fmt.Fprintf(&sb, "  %s  %12.2f\n", month, d.MonthlySales[i])
		}
	}

	if len(d.AutoInsights) > 0 {
		sb.WriteString("\nInsights\n")
		for _, insight := range d.AutoInsights {
			fmt.Fprintf(&sb, "  - %s\n    %s\n", insight.Insight, insight.Action)
		}
	}

	sb.WriteString("\nSummary\n  ")
	sb.WriteString(d.AISummary)
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
