package validators

import (
	"math"
	"strings"
	"testing"

	"github.com/cloud-ru/mcp-realestate-go/internal/calculations"
	"github.com/cloud-ru/mcp-realestate-go/internal/config"
)

func TestValidators(t *testing.T) {
	cfg, _ := config.LoadConfig()

	tests := []struct {
		name      string
		validator func(*config.Config, float64) error
		value     float64
		wantError bool
	}{
		{
			name:      "valid purchase price",
			validator: CheckPurchasePrice,
			value:     1000000.0,
			wantError: false,
		},
		{
			name:      "invalid purchase price zero",
			validator: CheckPurchasePrice,
			value:     0.0,
			wantError: true,
		},
		{
			name:      "invalid purchase price negative",
			validator: CheckPurchasePrice,
			value:     -1000.0,
			wantError: true,
		},
		{
			name:      "invalid purchase price NaN",
			validator: CheckPurchasePrice,
			value:     math.NaN(),
			wantError: true,
		},
		{
			name:      "valid target yield",
			validator: CheckTargetYield,
			value:     4.5,
			wantError: false,
		},
		{
			name:      "invalid target yield zero",
			validator: CheckTargetYield,
			value:     0,
			wantError: true,
		},
		{
			name:      "invalid target yield below sensitivity step",
			validator: CheckTargetYield,
			value:     0.3,
			wantError: true,
		},
		{
			name:      "invalid target yield equal to sensitivity step",
			validator: CheckTargetYield,
			value:     0.5,
			wantError: true,
		},
		{
			name:      "valid target yield just above sensitivity step",
			validator: CheckTargetYield,
			value:     0.6,
			wantError: false,
		},
		{
			name:      "valid holding period",
			validator: CheckHoldingPeriod,
			value:     24,
			wantError: false,
		},
		{
			name:      "invalid holding period zero",
			validator: CheckHoldingPeriod,
			value:     0,
			wantError: true,
		},
		{
			name:      "valid negative growth",
			validator: func(cfg *config.Config, v float64) error { return CheckGrowthRate(cfg, "value_increase_rate", v) },
			value:     -1.5,
			wantError: false,
		},
		{
			name:      "invalid negative rate",
			validator: func(cfg *config.Config, v float64) error { return CheckRate(cfg, "interest_rate", v) },
			value:     -1.0,
			wantError: true,
		},
		{
			name:      "invalid percent above 100",
			validator: func(_ *config.Config, v float64) error { return CheckPercent("equity_percent", v) },
			value:     120,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validator(cfg, tt.value)
			if (err != nil) != tt.wantError {
				t.Errorf("validator error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestCheckBestand(t *testing.T) {
	cfg, _ := config.LoadConfig()

	valid := calculations.BestandParams{
		PurchasePrice:        1000000,
		MonthlyRent:          5000,
		EquityPercent:        20,
		InterestRate:         4,
		RepaymentRate:        2,
		AncillaryCostPercent: 10,
	}
	if err := CheckBestand(cfg, valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := valid
	invalid.PurchasePrice = 0
	invalid.EquityPercent = 101
	err := CheckBestand(cfg, invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	// Все ошибки собираются вместе
	if !strings.Contains(err.Error(), "purchase_price") || !strings.Contains(err.Error(), "equity_percent") {
		t.Errorf("expected both fields in error, got %v", err)
	}
}

func TestCheckAufteiler(t *testing.T) {
	cfg, _ := config.LoadConfig()

	p := calculations.AufteilerParams{
		PurchasePrice:        1500000,
		YearlyRent:           100000,
		TargetYield:          4,
		SalesCommission:      8,
		HoldingPeriodMonths:  24,
		AncillaryCostPercent: 10,
		InterestRate:         5,
		EquityPercent:        30,
	}
	if err := CheckAufteiler(cfg, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.HoldingPeriodMonths = 0
	if err := CheckAufteiler(cfg, p); err == nil {
		t.Error("expected error for zero holding period")
	}
}
