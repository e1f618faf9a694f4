package calculations

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// CalcBestandFull рассчитывает стратегию удержания: структуру финансирования,
// ключевые показатели первого года, 30-летний график погашения и 40-летний
// прогноз капитала. Функция чистая и не возвращает ошибок: деление на ноль
// дает 0.
func CalcBestandFull(p BestandParams) BestandResult {
	totalInvestment := p.PurchasePrice + utils.PercentOf(p.PurchasePrice, p.AncillaryCostPercent)
	equity := utils.PercentOf(totalInvestment, p.EquityPercent)
	loanAmount := totalInvestment - equity
	yearlyAnnuity := utils.PercentOf(loanAmount, p.InterestRate+p.RepaymentRate)

	yearlyRent := p.MonthlyRent * 12
	maintenance := utils.PercentOf(p.PurchasePrice, p.MaintenancePercent)
	netRentShare := 100 - p.ManagementCostPercent

	schedule := AmortizationSchedule(loanAmount, p.InterestRate, yearlyAnnuity, AmortizationYears)

	yearly := make([]YearlyData, 0, len(schedule))
	interests := make([]float64, 0, len(schedule))
	repayments := make([]float64, 0, len(schedule))
	for _, e := range schedule {
		value := utils.Compound(p.PurchasePrice, p.ValueIncreaseRate, e.Year)
		rent := utils.Compound(yearlyRent, p.RentIncreaseRate, e.Year-1)
		yearly = append(yearly, YearlyData{
			AmortizationEntry: e,
			PropertyValue:     value,
			Equity:            value - e.RemainingDebt,
			Rent:              rent,
			Cashflow:          utils.PercentOf(rent, netRentShare) - maintenance - e.Interest - e.Repayment,
		})
		interests = append(interests, e.Interest)
		repayments = append(repayments, e.Repayment)
	}

	projection := make([]ValuePoint, 0, ProjectionYears)
	for y := 1; y <= ProjectionYears; y++ {
		value := utils.Compound(p.PurchasePrice, p.ValueIncreaseRate, y)
		debt := debtAt(schedule, y)
		projection = append(projection, ValuePoint{
			Year:          y,
			PropertyValue: value,
			RemainingDebt: debt,
			Wealth:        value - debt,
		})
	}
	last := projection[len(projection)-1]
	wealthGrowth := last.Wealth - equity

	noi := utils.PercentOf(yearlyRent, netRentShare) - maintenance
	cashflow := noi - yearlyAnnuity

	var annualized float64
	if equity > 0 && last.Wealth > 0 {
		annualized = (math.Pow(last.Wealth/equity, 1.0/float64(ProjectionYears)) - 1.0) * 100
	}

	return BestandResult{
		TotalInvestment:   totalInvestment,
		Equity:            equity,
		LoanAmount:        loanAmount,
		MaxFinancing:      loanAmount,
		YearlyAnnuity:     yearlyAnnuity,
		MonthlyRate:       yearlyAnnuity / 12,
		GrossYield:        utils.SafeDiv(yearlyRent*100, p.PurchasePrice),
		FullRepaymentYear: FullRepaymentYear(schedule, loanAmount),
		TotalInterest:     floats.Sum(interests),
		TotalRepayment:    floats.Sum(repayments),
		Debt10:            yearly[9].RemainingDebt,
		Debt20:            yearly[19].RemainingDebt,
		Wealth10:          yearly[9].Equity,
		Wealth20:          yearly[19].Equity,
		Value40:           last.PropertyValue,
		WealthGrowth:      wealthGrowth,
		ROI:               utils.SafeDiv(wealthGrowth*100, equity),

		NetOperatingIncome: noi,
		MonthlyCashflow:    cashflow / 12,
		CashOnCash:         utils.SafeDiv(cashflow*100, equity),
		LoanToValue:        utils.SafeDiv(loanAmount*100, totalInvestment),
		DSCR:               utils.SafeDiv(noi, yearlyAnnuity),
		AnnualizedReturn:   annualized,

		YearlyData:      yearly,
		ValueProjection: projection,
	}
}
