package calculations

const (
	// AmortizationYears горизонт графика погашения
	AmortizationYears = 30
	// ProjectionYears горизонт прогноза стоимости объекта
	ProjectionYears = 40
	// NotRepaidYear значение FullRepaymentYear, если долг не погашен в пределах горизонта
	NotRepaidYear = AmortizationYears + 1
	// SensitivityStep шаг целевой доходности для анализа чувствительности, п.п.
	SensitivityStep = 0.5
)

// BestandParams описывает параметры стратегии удержания (Bestand).
// Все проценты задаются в процентах, а не долях: 3.5 означает 3,5 %.
type BestandParams struct {
	PurchasePrice         float64 `json:"purchase_price"`
	MonthlyRent           float64 `json:"monthly_rent"`
	EquityPercent         float64 `json:"equity_percent"`
	InterestRate          float64 `json:"interest_rate"`
	RepaymentRate         float64 `json:"repayment_rate"`
	RentIncreaseRate      float64 `json:"rent_increase_rate"`
	ValueIncreaseRate     float64 `json:"value_increase_rate"`
	ManagementCostPercent float64 `json:"management_cost_percent"`
	MaintenancePercent    float64 `json:"maintenance_percent"`
	AncillaryCostPercent  float64 `json:"ancillary_cost_percent"`
}

// AmortizationEntry одна строка годового графика погашения
type AmortizationEntry struct {
	Year          int     `json:"year"`
	Interest      float64 `json:"interest"`
	Repayment     float64 `json:"repayment"`
	RemainingDebt float64 `json:"remaining_debt"`
}

// YearlyData год прогноза стратегии удержания
type YearlyData struct {
	AmortizationEntry
	PropertyValue float64 `json:"property_value"`
	Equity        float64 `json:"equity"`
	Rent          float64 `json:"rent"`
	Cashflow      float64 `json:"cashflow"`
}

// ValuePoint точка долгосрочного прогноза стоимости и капитала
type ValuePoint struct {
	Year          int     `json:"year"`
	PropertyValue float64 `json:"property_value"`
	RemainingDebt float64 `json:"remaining_debt"`
	Wealth        float64 `json:"wealth"`
}

// BestandResult результат расчета стратегии удержания
type BestandResult struct {
	TotalInvestment   float64 `json:"total_investment"`
	Equity            float64 `json:"equity"`
	LoanAmount        float64 `json:"loan_amount"`
	MaxFinancing      float64 `json:"max_financing"`
	YearlyAnnuity     float64 `json:"yearly_annuity"`
	MonthlyRate       float64 `json:"monthly_rate"`
	GrossYield        float64 `json:"gross_yield"`
	FullRepaymentYear int     `json:"full_repayment_year"`
	TotalInterest     float64 `json:"total_interest"`
	TotalRepayment    float64 `json:"total_repayment"`
	Debt10            float64 `json:"debt10"`
	Debt20            float64 `json:"debt20"`
	Wealth10          float64 `json:"wealth10"`
	Wealth20          float64 `json:"wealth20"`
	Value40           float64 `json:"value40"`
	WealthGrowth      float64 `json:"wealth_growth"`
	ROI               float64 `json:"roi"`

	NetOperatingIncome float64 `json:"net_operating_income"`
	MonthlyCashflow    float64 `json:"monthly_cashflow"`
	CashOnCash         float64 `json:"cash_on_cash"`
	LoanToValue        float64 `json:"loan_to_value"`
	DSCR               float64 `json:"dscr"`
	AnnualizedReturn   float64 `json:"annualized_return"`

	YearlyData      []YearlyData `json:"yearly_data"`
	ValueProjection []ValuePoint `json:"value_projection"`
}

// AufteilerParams описывает параметры стратегии перепродажи (Aufteiler)
type AufteilerParams struct {
	PurchasePrice        float64 `json:"purchase_price"`
	YearlyRent           float64 `json:"yearly_rent"`
	TargetYield          float64 `json:"target_yield"`
	SalesCommission      float64 `json:"sales_commission"`
	HoldingPeriodMonths  float64 `json:"holding_period_months"`
	AncillaryCostPercent float64 `json:"ancillary_cost_percent"`
	InterestRate         float64 `json:"interest_rate"`
	EquityPercent        float64 `json:"equity_percent"`
	ProjectCosts         float64 `json:"project_costs"`
}

// SensitivityPoint вариант расчета при смещенной целевой доходности
type SensitivityPoint struct {
	Label       string  `json:"label"`
	TargetYield float64 `json:"target_yield"`
	SalesPrice  float64 `json:"sales_price"`
	Profit      float64 `json:"profit"`
}

// AufteilerResult результат расчета стратегии перепродажи
type AufteilerResult struct {
	AncillaryCosts        float64            `json:"ancillary_costs"`
	TotalAcquisitionCosts float64            `json:"total_acquisition_costs"`
	LoanAmount            float64            `json:"loan_amount"`
	Equity                float64            `json:"equity"`
	InterestCosts         float64            `json:"interest_costs"`
	RentIncome            float64            `json:"rent_income"`
	NetCosts              float64            `json:"net_costs"`
	SalesPriceGross       float64            `json:"sales_price_gross"`
	Factor                float64            `json:"factor"`
	SalesCommissionAmount float64            `json:"sales_commission_amount"`
	SalesPriceNet         float64            `json:"sales_price_net"`
	Profit                float64            `json:"profit"`
	ProfitMargin          float64            `json:"profit_margin"`
	ROIOnEquity           float64            `json:"roi_on_equity"`
	SensitivityData       []SensitivityPoint `json:"sensitivity_data"`
}
