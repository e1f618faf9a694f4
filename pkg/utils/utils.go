package utils

import "math"

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// SafeDiv делит a на b и возвращает 0, если знаменатель равен нулю
// или результат не является конечным числом
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	q := a / b
	if !IsFinite(q) {
		return 0
	}
	return q
}

// PercentOf возвращает value * percent / 100
func PercentOf(value, percent float64) float64 {
	return value * percent / 100.0
}

// Compound возвращает base * (1 + ratePercent/100)^years
func Compound(base, ratePercent float64, years int) float64 {
	return base * math.Pow(1.0+ratePercent/100.0, float64(years))
}
