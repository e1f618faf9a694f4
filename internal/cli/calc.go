package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/internal/tools"
)

type floatFlag struct {
	name  string
	value float64
	usage string
}

// calcCmd общая часть команд расчета: флаги превращаются в параметры инструмента
type calcCmd struct {
	flags    []*floatFlag
	asJSON   bool
	reporter *Reporter
}

func (c *calcCmd) bind(cmd *cobra.Command) {
	for _, f := range c.flags {
		cmd.Flags().Float64Var(&f.value, f.name, f.value, f.usage)
	}
	cmd.Flags().BoolVar(&c.asJSON, "json", false, "Вывести результат в формате JSON")
}

func (c *calcCmd) params() map[string]interface{} {
	params := make(map[string]interface{}, len(c.flags))
	for _, f := range c.flags {
		params[flagToParam(f.name)] = f.value
	}
	return params
}

func flagToParam(name string) string {
	out := []byte(name)
	for i, b := range out {
		if b == '-' {
			out[i] = '_'
		}
	}
	return string(out)
}

func (c *calcCmd) run(ctx context.Context, newHandler func(tools.Deps) tools.ToolHandler) (interface{}, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	h := newHandler(tools.Deps{Config: cfg, Log: zerolog.Nop()})
	return h(ctx, c.params())
}

func (c *calcCmd) print(cmd *cobra.Command, result interface{}, text func() error) error {
	if c.asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	return text()
}

func newBestandCmd(reporter *Reporter) *cobra.Command {
	c := &calcCmd{
		reporter: reporter,
		flags: []*floatFlag{
			{name: "purchase-price", usage: "Цена покупки без расходов"},
			{name: "monthly-rent", usage: "Месячная арендная плата брутто"},
			{name: "equity-percent", value: 20, usage: "Доля собственного капитала в общих вложениях, %"},
			{name: "interest-rate", value: 4, usage: "Годовая процентная ставка, %"},
			{name: "repayment-rate", value: 2, usage: "Начальная ставка погашения в год, %"},
			{name: "rent-increase-rate", usage: "Ежегодный рост аренды, %"},
			{name: "value-increase-rate", usage: "Ежегодный рост стоимости, %"},
			{name: "management-cost-percent", usage: "Расходы на управление от аренды, %"},
			{name: "maintenance-percent", usage: "Годовое содержание от цены покупки, %"},
			{name: "ancillary-cost-percent", value: 10, usage: "Разовые сопутствующие расходы, %"},
		},
	}

	cmd := &cobra.Command{
		Use:   "bestand",
		Short: "Расчет стратегии удержания (Bestand)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.run(cmd.Context(), tools.CalcBestandHandler)
			if err != nil {
				return err
			}
			result := out.(calculations.BestandResult)
			return c.print(cmd, result, func() error { return c.reporter.Bestand(result) })
		},
	}
	c.bind(cmd)
	_ = cmd.MarkFlagRequired("purchase-price")
	_ = cmd.MarkFlagRequired("monthly-rent")
	return cmd
}

func newAufteilerCmd(reporter *Reporter) *cobra.Command {
	c := &calcCmd{
		reporter: reporter,
		flags: []*floatFlag{
			{name: "purchase-price", usage: "Цена покупки без расходов"},
			{name: "yearly-rent", usage: "Текущая годовая аренда"},
			{name: "target-yield", value: 4, usage: "Доходность, ожидаемая конечным покупателем, %"},
			{name: "sales-commission", value: 0, usage: "Комиссия за продажу от цены брутто, %"},
			{name: "holding-period-months", value: 24, usage: "Месяцев между покупкой и продажей"},
			{name: "ancillary-cost-percent", value: 10, usage: "Разовые сопутствующие расходы, %"},
			{name: "interest-rate", value: 5, usage: "Годовая ставка на период удержания, %"},
			{name: "equity-percent", value: 30, usage: "Доля собственного капитала в затратах на приобретение, %"},
			{name: "project-costs", usage: "Ремонт и прочие проектные расходы"},
		},
	}

	cmd := &cobra.Command{
		Use:   "aufteiler",
		Short: "Расчет стратегии перепродажи (Aufteiler)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.run(cmd.Context(), tools.CalcAufteilerHandler)
			if err != nil {
				return err
			}
			result := out.(calculations.AufteilerResult)
			return c.print(cmd, result, func() error { return c.reporter.Aufteiler(result) })
		},
	}
	c.bind(cmd)
	_ = cmd.MarkFlagRequired("purchase-price")
	_ = cmd.MarkFlagRequired("yearly-rent")
	return cmd
}
