package dataset

import "house_price/internal/domain/entity"

// listingSchema — строка таблицы с объявлениями.
type listingSchema struct {
	Location        string  `db:"location"`
	TotalSquareFeet float64 `db:"total_sqft"`
	Bathrooms       int     `db:"bath"`
	Bedrooms        int     `db:"bhk"`
	Price           float64 `db:"price"`
}

func (s *listingSchema) toDomain() entity.Listing {
	return entity.Listing{
		Location:        s.Location,
		TotalSquareFeet: s.TotalSquareFeet,
		Bathrooms:       s.Bathrooms,
		Bedrooms:        s.Bedrooms,
		Price:           s.Price,
	}
}
