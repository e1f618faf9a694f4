package calculations

import (
	"math"

	"github.com/cloud-ru/mcp-realestate-go/pkg/utils"
)

// AmortizationSchedule рассчитывает годовой график кредита с фиксированной аннуитетой.
// Аннуитета первого года сохраняется на весь горизонт. Если аннуитета не покрывает
// проценты, погашение равно нулю и долг не растет.
func AmortizationSchedule(loanAmount, interestRate, yearlyAnnuity float64, years int) []AmortizationEntry {
	if years < 0 {
		years = 0
	}
	schedule := make([]AmortizationEntry, 0, years)
	remaining := loanAmount

	for y := 1; y <= years; y++ {
		var interest, repayment float64

		if remaining > 0 {
			interest = utils.PercentOf(remaining, interestRate)
			repayment = math.Min(yearlyAnnuity-interest, remaining)
			if repayment < 0 {
				repayment = 0
			}
			remaining = math.Max(0, remaining-repayment)
		} else {
			remaining = 0
		}

		schedule = append(schedule, AmortizationEntry{
			Year:          y,
			Interest:      interest,
			Repayment:     repayment,
			RemainingDebt: remaining,
		})
	}

	return schedule
}

// FullRepaymentYear возвращает первый год, в котором остаток долга равен нулю.
// 0 означает, что финансирования нет; NotRepaidYear означает, что долг
// не погашен в пределах графика.
func FullRepaymentYear(schedule []AmortizationEntry, loanAmount float64) int {
	if loanAmount <= 0 {
		return 0
	}
	for _, e := range schedule {
		if e.RemainingDebt <= 0 {
			return e.Year
		}
	}
	return len(schedule) + 1
}

// debtAt возвращает остаток долга на конец года; после горизонта графика долг считается нулевым
func debtAt(schedule []AmortizationEntry, year int) float64 {
	if year < 1 || year > len(schedule) {
		return 0
	}
	return schedule[year-1].RemainingDebt
}
