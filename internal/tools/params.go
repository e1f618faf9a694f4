package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
)

// ErrInvalidParams помечает ошибки входных параметров
var ErrInvalidParams = errors.New("неверные параметры")

func invalidParam(name string) error {
	return fmt.Errorf("%w: invalid parameter: %s", ErrInvalidParams, name)
}

// getFloat извлекает число из параметров. Отсутствующий необязательный параметр равен 0.
func getFloat(params map[string]interface{}, name string, required bool) (float64, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		if required {
			return 0, invalidParam(name)
		}
		return 0, nil
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, invalidParam(name)
		}
		return f, nil
	}
	return 0, invalidParam(name)
}

func getString(params map[string]interface{}, name string, required bool) (string, error) {
	raw, ok := params[name]
	if !ok || raw == nil {
		if required {
			return "", invalidParam(name)
		}
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidParam(name)
	}
	return s, nil
}

type floatField struct {
	name     string
	required bool
	dst      *float64
}

func extract(params map[string]interface{}, fields []floatField) error {
	for _, f := range fields {
		v, err := getFloat(params, f.name, f.required)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	return nil
}

// BestandParamsFrom извлекает параметры стратегии удержания
func BestandParamsFrom(params map[string]interface{}) (calculations.BestandParams, error) {
	var p calculations.BestandParams
	err := extract(params, []floatField{
		{"purchase_price", true, &p.PurchasePrice},
		{"monthly_rent", true, &p.MonthlyRent},
		{"equity_percent", true, &p.EquityPercent},
		{"interest_rate", true, &p.InterestRate},
		{"repayment_rate", true, &p.RepaymentRate},
		{"rent_increase_rate", false, &p.RentIncreaseRate},
		{"value_increase_rate", false, &p.ValueIncreaseRate},
		{"management_cost_percent", false, &p.ManagementCostPercent},
		{"maintenance_percent", false, &p.MaintenancePercent},
		{"ancillary_cost_percent", false, &p.AncillaryCostPercent},
	})
	return p, err
}

// AufteilerParamsFrom извлекает параметры стратегии перепродажи
func AufteilerParamsFrom(params map[string]interface{}) (calculations.AufteilerParams, error) {
	var p calculations.AufteilerParams
	err := extract(params, []floatField{
		{"purchase_price", true, &p.PurchasePrice},
		{"yearly_rent", true, &p.YearlyRent},
		{"target_yield", true, &p.TargetYield},
		{"holding_period_months", true, &p.HoldingPeriodMonths},
		{"sales_commission", false, &p.SalesCommission},
		{"ancillary_cost_percent", false, &p.AncillaryCostPercent},
		{"interest_rate", false, &p.InterestRate},
		{"equity_percent", false, &p.EquityPercent},
		{"project_costs", false, &p.ProjectCosts},
	})
	return p, err
}
