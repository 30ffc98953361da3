package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/internal/domain/value"
	"house_price/pkg/errcodes"
)

const (
	MsgBedroomsRange        = "Number of BHK should be between 1 and 10."
	MsgBathroomsRange       = "Number of bathrooms should be between 1 and 5."
	MsgBathroomsExceedBHK   = "Bathrooms cannot be more than bedrooms (BHK)."
	MsgTotalSquareFeetRange = "Total square feet should be between 200 and 10,000."
	MsgLocationRequired     = "Location is required."

	MsgBedroomsMalformed        = "Number of BHK must be a whole number."
	MsgBathroomsMalformed       = "Number of bathrooms must be a whole number."
	MsgTotalSquareFeetMalformed = "Total square feet must be a number."
)

// features — распарсенная форма. Порядок полей и тегов задаёт порядок
// проверок: validator идёт по полям сверху вниз и на каждом поле
// останавливается на первом упавшем теге, так что первая ошибка в списке —
// ровно та, что нужно показать.
type features struct {
	Bedrooms        int     `validate:"min=1,max=10"`
	Bathrooms       int     `validate:"min=1,max=5,ltefield=Bedrooms"`
	TotalSquareFeet float64 `validate:"min=200,max=10000"`
	Location        string  `validate:"required"`
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate парсит сырые поля формы и проверяет доменные ограничения.
// Ошибка всегда *domain.AppError с кодом MalformedInput или ValidationError.
func (v *Validator) Validate(raw value.RawFields) (entity.PredictionRequest, error) {
	f, err := parse(raw)
	if err != nil {
		return entity.PredictionRequest{}, err
	}

	if err := v.validate.Struct(f); err != nil {
		return entity.PredictionRequest{}, firstViolation(err)
	}

	return entity.PredictionRequest{
		Location:        f.Location,
		TotalSquareFeet: f.TotalSquareFeet,
		Bathrooms:       f.Bathrooms,
		Bedrooms:        f.Bedrooms,
	}, nil
}

func parse(raw value.RawFields) (features, error) {
	bhk, err := strconv.Atoi(strings.TrimSpace(raw.Get(value.FieldBHK)))
	if err != nil {
		return features{}, domain.WrapError(err, errcodes.MalformedInput, MsgBedroomsMalformed)
	}

	bath, err := strconv.Atoi(strings.TrimSpace(raw.Get(value.FieldBath)))
	if err != nil {
		return features{}, domain.WrapError(err, errcodes.MalformedInput, MsgBathroomsMalformed)
	}

	sqft, err := strconv.ParseFloat(strings.TrimSpace(raw.Get(value.FieldSqft)), 64)
	if err != nil {
		return features{}, domain.WrapError(err, errcodes.MalformedInput, MsgTotalSquareFeetMalformed)
	}

	if math.IsNaN(sqft) || math.IsInf(sqft, 0) {
		return features{}, domain.NewError(errcodes.MalformedInput, MsgTotalSquareFeetMalformed)
	}

	return features{
		Bedrooms:        bhk,
		Bathrooms:       bath,
		TotalSquareFeet: sqft,
		Location:        strings.TrimSpace(raw.Get(value.FieldLocation)),
	}, nil
}

func firstViolation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.WrapError(err, errcodes.InternalServerError, "validation failed")
	}

	fe := verrs[0]

	var msg string

	switch fe.StructField() {
	case "Bedrooms":
		msg = MsgBedroomsRange
	case "Bathrooms":
		msg = MsgBathroomsRange
		if fe.Tag() == "ltefield" {
			msg = MsgBathroomsExceedBHK
		}
	case "TotalSquareFeet":
		msg = MsgTotalSquareFeetRange
	case "Location":
		msg = MsgLocationRequired
	default:
		msg = fmt.Sprintf("Invalid %s.", fe.Field())
	}

	return domain.WrapError(fe, errcodes.ValidationError, msg)
}
