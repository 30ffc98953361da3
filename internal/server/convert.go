package server

import (
	"house_price/internal/domain/entity"
	"house_price/internal/domain/value"
	"house_price/pkg/rest"
)

func newRESTPrediction(estimate entity.Estimate) rest.Prediction {
	return rest.Prediction{
		Price:   estimate.Lakhs.StringFixed(value.PriceScale),
		Amount:  estimate.Rupees.String(),
		Unit:    estimate.Unit,
		Display: estimate.Display,
	}
}

func newRawFields(request rest.PredictionRequest) value.RawFields {
	return value.RawFields{
		value.FieldLocation: request.Location,
		value.FieldBHK:      request.BHK.String(),
		value.FieldBath:     request.Bath.String(),
		value.FieldSqft:     request.Sqft.String(),
	}
}
