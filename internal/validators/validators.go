package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// ValidateNumber проверяет, что число конечное и в допустимом диапазоне
func ValidateNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// CheckPurchasePrice проверяет цену покупки
func CheckPurchasePrice(cfg *config.Config, price float64) error {
	if err := ValidateNumber("purchase_price", price, 0, cfg.MaxPurchasePrice); err != nil {
		return err
	}
	if price == 0 {
		return fmt.Errorf("purchase_price: значение должно быть больше 0")
	}
	return nil
}

// CheckAmount проверяет неотрицательную денежную сумму
func CheckAmount(cfg *config.Config, name string, amount float64) error {
	return ValidateNumber(name, amount, 0, cfg.MaxPurchasePrice)
}

// CheckPercent проверяет долю в процентах
func CheckPercent(name string, value float64) error {
	return ValidateNumber(name, value, 0, 100)
}

// CheckRate проверяет годовую ставку
func CheckRate(cfg *config.Config, name string, rate float64) error {
	return ValidateNumber(name, rate, 0, cfg.MaxRate)
}

// CheckGrowthRate проверяет темп роста, который может быть отрицательным
func CheckGrowthRate(cfg *config.Config, name string, rate float64) error {
	return ValidateNumber(name, rate, -cfg.MaxRate, cfg.MaxRate)
}

// CheckTargetYield проверяет целевую доходность покупателя.
// Доходность должна превышать шаг чувствительности, иначе нижний сценарий
// получает неположительную доходность.
func CheckTargetYield(cfg *config.Config, yield float64) error {
	if err := CheckRate(cfg, "target_yield", yield); err != nil {
		return err
	}
	if yield <= calculations.SensitivityStep {
		return fmt.Errorf("target_yield: значение должно быть больше %.1f", calculations.SensitivityStep)
	}
	return nil
}

// CheckHoldingPeriod проверяет срок владения в месяцах
func CheckHoldingPeriod(cfg *config.Config, months float64) error {
	return ValidateNumber("holding_period_months", months, 1, float64(cfg.MaxHoldingMonths))
}

// CheckBestand проверяет все параметры стратегии удержания
func CheckBestand(cfg *config.Config, p calculations.BestandParams) error {
	return errors.Join(
		CheckPurchasePrice(cfg, p.PurchasePrice),
		CheckAmount(cfg, "monthly_rent", p.MonthlyRent),
		CheckPercent("equity_percent", p.EquityPercent),
		CheckRate(cfg, "interest_rate", p.InterestRate),
		CheckRate(cfg, "repayment_rate", p.RepaymentRate),
		CheckGrowthRate(cfg, "rent_increase_rate", p.RentIncreaseRate),
		CheckGrowthRate(cfg, "value_increase_rate", p.ValueIncreaseRate),
		CheckPercent("management_cost_percent", p.ManagementCostPercent),
		CheckPercent("maintenance_percent", p.MaintenancePercent),
		CheckPercent("ancillary_cost_percent", p.AncillaryCostPercent),
	)
}

// CheckAufteiler проверяет все параметры стратегии перепродажи
func CheckAufteiler(cfg *config.Config, p calculations.AufteilerParams) error {
	return errors.Join(
		CheckPurchasePrice(cfg, p.PurchasePrice),
		CheckAmount(cfg, "yearly_rent", p.YearlyRent),
		CheckTargetYield(cfg, p.TargetYield),
		CheckPercent("sales_commission", p.SalesCommission),
		CheckHoldingPeriod(cfg, p.HoldingPeriodMonths),
		CheckPercent("ancillary_cost_percent", p.AncillaryCostPercent),
		CheckRate(cfg, "interest_rate", p.InterestRate),
		CheckPercent("equity_percent", p.EquityPercent),
		CheckAmount(cfg, "project_costs", p.ProjectCosts),
	)
}
