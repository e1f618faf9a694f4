package calculations

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func TestAmortizationSchedule(t *testing.T) {
	tests := []struct {
		name          string
		loanAmount    float64
		interestRate  float64
		yearlyAnnuity float64
		checkSchedule func(*testing.T, []AmortizationEntry)
	}{
		{
			name:          "fixed annuity",
			loanAmount:    880000,
			interestRate:  4,
			yearlyAnnuity: 52800,
			checkSchedule: func(t *testing.T, s []AmortizationEntry) {
				if len(s) != AmortizationYears {
					t.Fatalf("expected %d years, got %d", AmortizationYears, len(s))
				}
				first := s[0]
				if math.Abs(first.Interest-35200) > tolerance {
					t.Errorf("expected first year interest 35200, got %f", first.Interest)
				}
				if math.Abs(first.Repayment-17600) > tolerance {
					t.Errorf("expected first year repayment 17600, got %f", first.Repayment)
				}
				if math.Abs(first.RemainingDebt-862400) > tolerance {
					t.Errorf("expected remaining debt 862400, got %f", first.RemainingDebt)
				}
				// Доля процентов падает, доля погашения растет
				if s[1].Interest >= first.Interest || s[1].Repayment <= first.Repayment {
					t.Error("interest should shrink and repayment should grow")
				}
			},
		},
		{
			name:          "zero annuity keeps debt",
			loanAmount:    100000,
			interestRate:  0,
			yearlyAnnuity: 0,
			checkSchedule: func(t *testing.T, s []AmortizationEntry) {
				for _, e := range s {
					if e.Interest != 0 || e.Repayment != 0 {
						t.Fatalf("year %d: expected no payments, got interest %f repayment %f", e.Year, e.Interest, e.Repayment)
					}
					if e.RemainingDebt != 100000 {
						t.Fatalf("year %d: expected debt 100000, got %f", e.Year, e.RemainingDebt)
					}
				}
			},
		},
		{
			name:          "annuity below interest is interest only",
			loanAmount:    100000,
			interestRate:  5,
			yearlyAnnuity: 3000,
			checkSchedule: func(t *testing.T, s []AmortizationEntry) {
				for _, e := range s {
					if e.Repayment != 0 {
						t.Fatalf("year %d: expected repayment 0, got %f", e.Year, e.Repayment)
					}
					if e.RemainingDebt != 100000 {
						t.Fatalf("year %d: debt must not grow, got %f", e.Year, e.RemainingDebt)
					}
				}
			},
		},
		{
			name:          "payoff clamps final repayment",
			loanAmount:    100000,
			interestRate:  0,
			yearlyAnnuity: 30000,
			checkSchedule: func(t *testing.T, s []AmortizationEntry) {
				if s[3].Repayment != 10000 {
					t.Errorf("expected last repayment 10000, got %f", s[3].Repayment)
				}
				for _, e := range s[3:] {
					if e.RemainingDebt != 0 {
						t.Fatalf("year %d: expected debt 0, got %f", e.Year, e.RemainingDebt)
					}
				}
				for _, e := range s[4:] {
					if e.Interest != 0 || e.Repayment != 0 {
						t.Fatalf("year %d: expected no payments after payoff", e.Year)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AmortizationSchedule(tt.loanAmount, tt.interestRate, tt.yearlyAnnuity, AmortizationYears)
			tt.checkSchedule(t, s)
		})
	}
}

func TestAmortizationSchedule_Monotonic(t *testing.T) {
	s := AmortizationSchedule(500000, 3.5, 500000*0.08, AmortizationYears)

	prev := 500000.0
	paidOff := false
	for _, e := range s {
		if e.RemainingDebt > prev {
			t.Fatalf("year %d: debt increased from %f to %f", e.Year, prev, e.RemainingDebt)
		}
		if paidOff && e.RemainingDebt != 0 {
			t.Fatalf("year %d: debt reappeared after payoff", e.Year)
		}
		if e.RemainingDebt == 0 {
			paidOff = true
		}
		prev = e.RemainingDebt
	}
	if !paidOff {
		t.Error("expected loan to be repaid within horizon at 8% annuity")
	}
}

func TestAmortizationSchedule_Conservation(t *testing.T) {
	annuity := 880000 * 0.06
	s := AmortizationSchedule(880000, 4, annuity, AmortizationYears)

	for _, e := range s {
		sum := e.Interest + e.Repayment
		if e.RemainingDebt > 0 {
			if math.Abs(sum-annuity) > tolerance {
				t.Errorf("year %d: interest+repayment = %f, want %f", e.Year, sum, annuity)
			}
		} else if sum > annuity+tolerance {
			t.Errorf("year %d: payoff year paid %f, more than annuity %f", e.Year, sum, annuity)
		}
	}
}

func TestFullRepaymentYear(t *testing.T) {
	tests := []struct {
		name          string
		loanAmount    float64
		interestRate  float64
		yearlyAnnuity float64
		want          int
	}{
		{name: "no loan", loanAmount: 0, interestRate: 4, yearlyAnnuity: 0, want: 0},
		{name: "repaid in year four", loanAmount: 100000, interestRate: 0, yearlyAnnuity: 30000, want: 4},
		{name: "repaid exactly in year two", loanAmount: 100000, interestRate: 0, yearlyAnnuity: 50000, want: 2},
		{name: "never repaid", loanAmount: 100000, interestRate: 5, yearlyAnnuity: 0, want: NotRepaidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := AmortizationSchedule(tt.loanAmount, tt.interestRate, tt.yearlyAnnuity, AmortizationYears)
			if got := FullRepaymentYear(s, tt.loanAmount); got != tt.want {
				t.Errorf("FullRepaymentYear() = %d, want %d", got, tt.want)
			}
		})
	}
}
