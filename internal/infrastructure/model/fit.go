package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/pkg/errcodes"
)

const numericFeatures = 3

// Fit обучает линейную регрессию методом наименьших квадратов: район
// кодируется one-hot, остальные признаки идут как есть.
//
// Решается задача без свободного члена, где у каждого района свой сдвиг a_i.
// Затем intercept = mean(a_i), а коэффициент района = a_i - intercept: это
// решение минимальной нормы, которое даёт LinearRegression для полного
// one-hot блока. Неизвестный район получает intercept, то есть средний сдвиг.
//
// Объявления без района пропускаются: такой район нельзя ни выбрать, ни
// отправить в форме.
func Fit(listings []entity.Listing, trainedAt time.Time) (*Artifact, error) {
	listings = lo.Filter(listings, func(l entity.Listing, _ int) bool {
		return strings.TrimSpace(l.Location) != ""
	})

	if len(listings) == 0 {
		return nil, domain.NewError(errcodes.InvalidModel, "no listings to fit")
	}

	locations := lo.Uniq(lo.Map(listings, func(l entity.Listing, _ int) string {
		return strings.TrimSpace(l.Location)
	}))
	slices.Sort(locations)

	index := make(map[string]int, len(locations))
	for i, location := range locations {
		index[location] = i
	}

	k := len(locations)
	cols := k + numericFeatures

	if len(listings) < cols {
		return nil, domain.NewError(
			errcodes.InvalidModel,
			fmt.Sprintf("need at least %d listings for %d locations, got %d", cols, k, len(listings)),
		)
	}

	x := mat.NewDense(len(listings), cols, nil)
	y := mat.NewVecDense(len(listings), nil)

	for row, l := range listings {
		if !finite(l.TotalSquareFeet) || !finite(l.Price) {
			return nil, domain.NewError(errcodes.InvalidModel, fmt.Sprintf("listing %d has a non-finite value", row))
		}

		x.Set(row, index[strings.TrimSpace(l.Location)], 1)
		x.Set(row, k, l.TotalSquareFeet)
		x.Set(row, k+1, float64(l.Bathrooms))
		x.Set(row, k+2, float64(l.Bedrooms))
		y.SetVec(row, l.Price)
	}

	var beta mat.VecDense

	if err := beta.SolveVec(x, y); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, domain.WrapError(err, errcodes.InvalidModel, "features are collinear, cannot fit")
		}

		return nil, fmt.Errorf("mat.SolveVec: %w", err)
	}

	var intercept float64
	for i := range k {
		intercept += beta.AtVec(i)
	}
	intercept /= float64(k)

	coefs := make(map[string]float64, k)
	for i, location := range locations {
		coefs[location] = beta.AtVec(i) - intercept
	}

	a := &Artifact{
		Version:   ArtifactVersion,
		TrainedAt: trainedAt.UTC(),
		Samples:   len(listings),
		Intercept: intercept,
		Coefficients: Coefficients{
			TotalSquareFeet: beta.AtVec(k),
			Bathrooms:       beta.AtVec(k + 1),
			Bedrooms:        beta.AtVec(k + 2),
		},
		Locations: coefs,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}
