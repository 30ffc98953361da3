package value

import "github.com/shopspring/decimal"

// Lakh — 100 000 рупий. Модель обучена на ценах в лакхах.
const Lakh = 100_000

const (
	UnitLakhs      = "Lakhs"
	CurrencySymbol = "₹"
	// PriceScale — знаков после запятой при отображении цены.
	PriceScale = 2
)

// LakhsToRupees переводит сумму в лакхах в рупии.
func LakhsToRupees(lakhs decimal.Decimal) decimal.Decimal {
	return lakhs.Mul(decimal.NewFromInt(Lakh))
}
