package entity

// Listing — одна строка обучающей выборки. Price в лакхах.
type Listing struct {
	Location        string
	TotalSquareFeet float64
	Bathrooms       int
	Bedrooms        int
	Price           float64
}
