package calculations

import (
	"fmt"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// CalcAufteilerFull рассчитывает стратегию перепродажи за один проход.
// Период владения учитывается как плоская поправка (простые проценты и аренда
// за период), без помесячного графика.
func CalcAufteilerFull(p AufteilerParams) AufteilerResult {
	ancillaryCosts := utils.PercentOf(p.PurchasePrice, p.AncillaryCostPercent)
	totalAcquisitionCosts := p.PurchasePrice + ancillaryCosts + p.ProjectCosts
	equity := utils.PercentOf(totalAcquisitionCosts, p.EquityPercent)
	loanAmount := totalAcquisitionCosts - equity

	holdingYears := p.HoldingPeriodMonths / 12
	interestCosts := utils.PercentOf(loanAmount, p.InterestRate) * holdingYears
	rentIncome := p.YearlyRent * holdingYears
	netCosts := totalAcquisitionCosts + interestCosts - rentIncome

	sale := salesAt(p, p.TargetYield, netCosts)

	var profitMargin float64
	if sale.net > 0 {
		profitMargin = sale.profit / sale.net * 100
	}

	sensitivity := make([]SensitivityPoint, 0, 3)
	for _, delta := range []float64{-SensitivityStep, 0, SensitivityStep} {
		y := p.TargetYield + delta
		s := salesAt(p, y, netCosts)
		sensitivity = append(sensitivity, SensitivityPoint{
			Label:       YieldLabel(y),
			TargetYield: y,
			SalesPrice:  s.gross,
			Profit:      s.profit,
		})
	}

	return AufteilerResult{
		AncillaryCosts:        ancillaryCosts,
		TotalAcquisitionCosts: totalAcquisitionCosts,
		LoanAmount:            loanAmount,
		Equity:                equity,
		InterestCosts:         interestCosts,
		RentIncome:            rentIncome,
		NetCosts:              netCosts,
		SalesPriceGross:       sale.gross,
		Factor:                utils.SafeDiv(sale.gross, p.YearlyRent),
		SalesCommissionAmount: sale.commission,
		SalesPriceNet:         sale.net,
		Profit:                sale.profit,
		ProfitMargin:          profitMargin,
		ROIOnEquity:           utils.SafeDiv(sale.profit*100, equity),
		SensitivityData:       sensitivity,
	}
}

// YieldLabel форматирует доходность для подписи варианта чувствительности
func YieldLabel(yield float64) string {
	return fmt.Sprintf("%.1f %%", yield)
}

type salesFigures struct {
	gross      float64
	commission float64
	net        float64
	profit     float64
}

// salesAt рассчитывает цену продажи при заданной доходности покупателя; издержки владения фиксированы
func salesAt(p AufteilerParams, targetYield, netCosts float64) salesFigures {
	gross := utils.SafeDiv(p.YearlyRent*100, targetYield)
	commission := utils.PercentOf(gross, p.SalesCommission)
	net := gross - commission
	return salesFigures{
		gross:      gross,
		commission: commission,
		net:        net,
		profit:     net - netCosts,
	}
}
