package calculations

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleAufteilerParams() AufteilerParams {
	return AufteilerParams{
		PurchasePrice:        1500000,
		YearlyRent:           100000,
		TargetYield:          4.0,
		SalesCommission:      8.0,
		HoldingPeriodMonths:  24,
		AncillaryCostPercent: 10,
		InterestRate:         5.0,
		EquityPercent:        30,
		ProjectCosts:         0,
	}
}

func TestCalcAufteilerFull(t *testing.T) {
	tests := []struct {
		name        string
		params      func() AufteilerParams
		checkResult func(*testing.T, AufteilerResult)
	}{
		{
			name:   "reference scenario",
			params: sampleAufteilerParams,
			checkResult: func(t *testing.T, r AufteilerResult) {
				assertClose(t, "ancillary costs", 150000, r.AncillaryCosts)
				assertClose(t, "total acquisition costs", 1650000, r.TotalAcquisitionCosts)
				assertClose(t, "equity", 495000, r.Equity)
				assertClose(t, "loan amount", 1155000, r.LoanAmount)
				assertClose(t, "interest costs", 115500, r.InterestCosts)
				assertClose(t, "rent income", 200000, r.RentIncome)
				assertClose(t, "net costs", 1565500, r.NetCosts)
				assertClose(t, "sales price gross", 2500000, r.SalesPriceGross)
				assertClose(t, "factor", 25, r.Factor)
				assertClose(t, "sales commission", 200000, r.SalesCommissionAmount)
				assertClose(t, "sales price net", 2300000, r.SalesPriceNet)
				assertClose(t, "profit", 734500, r.Profit)
				assertClose(t, "profit margin", 734500.0/2300000.0*100, r.ProfitMargin)
				assertClose(t, "roi on equity", 734500.0/495000.0*100, r.ROIOnEquity)
			},
		},
		{
			name: "project costs are financed",
			params: func() AufteilerParams {
				p := sampleAufteilerParams()
				p.ProjectCosts = 350000
				return p
			},
			checkResult: func(t *testing.T, r AufteilerResult) {
				assertClose(t, "total acquisition costs", 2000000, r.TotalAcquisitionCosts)
				assertClose(t, "loan amount", 1400000, r.LoanAmount)
			},
		},
		{
			name: "zero target yield",
			params: func() AufteilerParams {
				p := sampleAufteilerParams()
				p.TargetYield = 0
				return p
			},
			checkResult: func(t *testing.T, r AufteilerResult) {
				if r.SalesPriceGross != 0 || r.Factor != 0 || r.ProfitMargin != 0 {
					t.Errorf("expected guarded sales figures, got gross %f factor %f margin %f",
						r.SalesPriceGross, r.Factor, r.ProfitMargin)
				}
			},
		},
		{
			name: "zero rent",
			params: func() AufteilerParams {
				p := sampleAufteilerParams()
				p.YearlyRent = 0
				return p
			},
			checkResult: func(t *testing.T, r AufteilerResult) {
				if r.Factor != 0 {
					t.Errorf("expected factor 0, got %f", r.Factor)
				}
			},
		},
		{
			name: "full equity",
			params: func() AufteilerParams {
				p := sampleAufteilerParams()
				p.EquityPercent = 100
				return p
			},
			checkResult: func(t *testing.T, r AufteilerResult) {
				if r.LoanAmount != 0 || r.InterestCosts != 0 {
					t.Errorf("expected no financing, got loan %f interest %f", r.LoanAmount, r.InterestCosts)
				}
			},
		},
		{
			name:   "empty params",
			params: func() AufteilerParams { return AufteilerParams{} },
			checkResult: func(t *testing.T, r AufteilerResult) {
				if r.ROIOnEquity != 0 || r.ProfitMargin != 0 {
					t.Errorf("expected guarded ratios, got roi %f margin %f", r.ROIOnEquity, r.ProfitMargin)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := CalcAufteilerFull(tt.params())
			if _, err := json.Marshal(r); err != nil {
				t.Fatalf("result contains non-finite values: %v", err)
			}
			if len(r.SensitivityData) != 3 {
				t.Fatalf("expected 3 sensitivity points, got %d", len(r.SensitivityData))
			}
			tt.checkResult(t, r)
		})
	}
}

func TestCalcAufteilerFull_FactorIdentity(t *testing.T) {
	for _, y := range []float64{2.5, 3, 3.7, 4, 5.25, 8} {
		p := sampleAufteilerParams()
		p.TargetYield = y
		r := CalcAufteilerFull(p)
		assertClose(t, "factor", 100/y, r.Factor)
	}
}

func TestCalcAufteilerFull_Sensitivity(t *testing.T) {
	r := CalcAufteilerFull(sampleAufteilerParams())
	s := r.SensitivityData

	wantLabels := []string{"3.5 %", "4.0 %", "4.5 %"}
	for i, point := range s {
		if point.Label != wantLabels[i] {
			t.Errorf("point %d: expected label %q, got %q", i, wantLabels[i], point.Label)
		}
	}

	assertClose(t, "middle price", r.SalesPriceGross, s[1].SalesPrice)
	assertClose(t, "middle profit", r.Profit, s[1].Profit)

	for i := 1; i < len(s); i++ {
		if s[i].SalesPrice >= s[i-1].SalesPrice {
			t.Errorf("sales price should fall as yield rises: %f >= %f", s[i].SalesPrice, s[i-1].SalesPrice)
		}
		if s[i].Profit >= s[i-1].Profit {
			t.Errorf("profit should fall as yield rises: %f >= %f", s[i].Profit, s[i-1].Profit)
		}
	}
}

func TestCalcAufteilerFull_Idempotent(t *testing.T) {
	p := sampleAufteilerParams()
	p.ProjectCosts = 123456.78
	if !reflect.DeepEqual(CalcAufteilerFull(p), CalcAufteilerFull(p)) {
		t.Error("expected identical results for identical params")
	}
}
