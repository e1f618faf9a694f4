package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
	ColWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  28,
		ValueWidth: 18,
		ColWidth:   14,
	}
}

// Reporter печатает результаты расчетов в виде текстовых таблиц
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

// padRight дополняет строку пробелами до ширины в символах, а не в байтах
func padRight(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func (c *Reporter) funcs() template.FuncMap {
	return template.FuncMap{
		"row": func(name string, value float64) string {
			return fmt.Sprintf("| %s | %*.2f |", padRight(name, c.config.NameWidth), c.config.ValueWidth, utils.Round2(value))
		},
		"intRow": func(name string, value int) string {
			return fmt.Sprintf("| %s | %*d |", padRight(name, c.config.NameWidth), c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
		"cols": func(values ...interface{}) string {
			parts := make([]string, 0, len(values))
			for _, v := range values {
				switch x := v.(type) {
				case float64:
					parts = append(parts, fmt.Sprintf("%*.2f", c.config.ColWidth, utils.Round2(x)))
				default:
					parts = append(parts, padLeft(fmt.Sprint(x), c.config.ColWidth))
				}
			}
			return strings.Join(parts, " ")
		},
	}
}

const bestandTmpl = `
Bestand (покупка и удержание)

{{separator}}
{{row "Общие вложения" .TotalInvestment}}
{{row "Собственный капитал" .Equity}}
{{row "Сумма кредита" .LoanAmount}}
{{row "Годовой аннуитет" .YearlyAnnuity}}
{{row "Ежемесячный платеж" .MonthlyRate}}
{{row "Валовая доходность, %" .GrossYield}}
{{row "Чистый операционный доход" .NetOperatingIncome}}
{{row "Месячный денежный поток" .MonthlyCashflow}}
{{row "Доходность на капитал, %" .CashOnCash}}
{{row "Кредит к стоимости, %" .LoanToValue}}
{{row "Покрытие долга (DSCR)" .DSCR}}
{{intRow "Год полного погашения" .FullRepaymentYear}}
{{row "Проценты за весь срок" .TotalInterest}}
{{row "Долг через 10 лет" .Debt10}}
{{row "Долг через 20 лет" .Debt20}}
{{row "Капитал через 10 лет" .Wealth10}}
{{row "Капитал через 20 лет" .Wealth20}}
{{row "Стоимость через 40 лет" .Value40}}
{{row "Прирост капитала" .WealthGrowth}}
{{row "ROI, %" .ROI}}
{{row "Годовая доходность, %" .AnnualizedReturn}}
{{separator}}

{{cols "год" "проценты" "погашение" "долг" "стоимость" "капитал"}}
{{range .YearlyData}}{{cols .Year .Interest .Repayment .RemainingDebt .PropertyValue .Equity}}
{{end}}`

const aufteilerTmpl = `
Aufteiler (покупка, раздел, продажа)

{{separator}}
{{row "Сопутствующие расходы" .AncillaryCosts}}
{{row "Затраты на приобретение" .TotalAcquisitionCosts}}
{{row "Собственный капитал" .Equity}}
{{row "Сумма кредита" .LoanAmount}}
{{row "Процентные расходы" .InterestCosts}}
{{row "Арендный доход" .RentIncome}}
{{row "Чистые затраты" .NetCosts}}
{{row "Цена продажи брутто" .SalesPriceGross}}
{{row "Мультипликатор" .Factor}}
{{row "Комиссия за продажу" .SalesCommissionAmount}}
{{row "Цена продажи нетто" .SalesPriceNet}}
{{row "Прибыль" .Profit}}
{{row "Маржа прибыли, %" .ProfitMargin}}
{{row "ROI на капитал, %" .ROIOnEquity}}
{{separator}}

{{cols "доходность" "цена продажи" "прибыль"}}
{{range .SensitivityData}}{{cols .Label .SalesPrice .Profit}}
{{end}}`

func (c *Reporter) render(name, tmpl string, data interface{}) error {
	t, err := template.New(name).Funcs(c.funcs()).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("ошибка разбора шаблона: %w", err)
	}
	if err := t.Execute(c.writer, data); err != nil {
		return fmt.Errorf("ошибка формирования отчета: %w", err)
	}
	return nil
}

// Bestand печатает отчет по стратегии удержания
func (c *Reporter) Bestand(r calculations.BestandResult) error {
	return c.render("bestand", bestandTmpl, r)
}

// Aufteiler печатает отчет по стратегии перепродажи
func (c *Reporter) Aufteiler(r calculations.AufteilerResult) error {
	return c.render("aufteiler", aufteilerTmpl, r)
}
