package value

// Допустимые диапазоны признаков. Вне их модель не обучалась.
const (
	MinBedrooms = 1
	MaxBedrooms = 10

	MinBathrooms = 1
	MaxBathrooms = 5

	MinTotalSquareFeet = 200
	MaxTotalSquareFeet = 10000
)
