package validation_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/internal/domain/service/validation"
	"house_price/internal/domain/value"
	"house_price/pkg/errcodes"
	"house_price/pkg/tests"
)

func fields(location, bhk, bath, sqft string) value.RawFields {
	return value.RawFields{
		value.FieldLocation: location,
		value.FieldBHK:      bhk,
		value.FieldBath:     bath,
		value.FieldSqft:     sqft,
	}
}

func TestValidate(t *testing.T) {
	rq := require.New(t)

	v := validation.New()

	testCases := []struct {
		name    string
		raw     value.RawFields
		want    entity.PredictionRequest
		code    string
		message string
	}{
		{
			name: "Valid request",
			raw:  fields("Whitefield", "2", "2", "1200"),
			want: entity.PredictionRequest{Location: "Whitefield", TotalSquareFeet: 1200, Bathrooms: 2, Bedrooms: 2},
		},
		{
			name: "Whitespace is trimmed",
			raw:  fields("  Whitefield ", " 3", "2 ", " 1500.5 "),
			want: entity.PredictionRequest{Location: "Whitefield", TotalSquareFeet: 1500.5, Bathrooms: 2, Bedrooms: 3},
		},
		{
			name: "Unknown location is accepted",
			raw:  fields("Atlantis", "1", "1", "200"),
			want: entity.PredictionRequest{Location: "Atlantis", TotalSquareFeet: 200, Bathrooms: 1, Bedrooms: 1},
		},
		{
			name: "Upper bounds are inclusive",
			raw:  fields("X", "10", "5", "10000"),
			want: entity.PredictionRequest{Location: "X", TotalSquareFeet: 10000, Bathrooms: 5, Bedrooms: 10},
		},
		{
			name:    "Zero bedrooms",
			raw:     fields("X", "0", "1", "1000"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgBedroomsRange,
		},
		{
			name:    "Bathrooms exceed bedrooms",
			raw:     fields("X", "3", "4", "1000"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgBathroomsExceedBHK,
		},
		{
			name:    "Bedrooms not a number",
			raw:     fields("X", "abc", "1", "1000"),
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgBedroomsMalformed,
		},
		{
			name:    "Fractional bedrooms",
			raw:     fields("X", "2.5", "1", "1000"),
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgBedroomsMalformed,
		},
		{
			name:    "Missing bathrooms",
			raw:     value.RawFields{value.FieldLocation: "X", value.FieldBHK: "2", value.FieldSqft: "1000"},
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgBathroomsMalformed,
		},
		{
			name:    "Square feet not a number",
			raw:     fields("X", "2", "1", "big"),
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgTotalSquareFeetMalformed,
		},
		{
			name:    "Square feet NaN",
			raw:     fields("X", "2", "1", "NaN"),
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgTotalSquareFeetMalformed,
		},
		{
			name:    "Square feet infinite",
			raw:     fields("X", "2", "1", "+Inf"),
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgTotalSquareFeetMalformed,
		},
		{
			name:    "Malformed input wins over range violations",
			raw:     fields("X", "0", "1", "abc"),
			code:    errcodes.MalformedInput.String(),
			message: validation.MsgTotalSquareFeetMalformed,
		},
		{
			name:    "Too many bathrooms",
			raw:     fields("X", "8", "6", "1000"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgBathroomsRange,
		},
		{
			name:    "Bathroom range is checked before the relation",
			raw:     fields("X", "2", "6", "1000"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgBathroomsRange,
		},
		{
			name:    "Bedrooms are checked before everything else",
			raw:     fields("", "11", "9", "50"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgBedroomsRange,
		},
		{
			name:    "Relation is checked before square feet",
			raw:     fields("X", "1", "2", "50"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgBathroomsExceedBHK,
		},
		{
			name:    "Square feet too small",
			raw:     fields("X", "2", "1", "199.99"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgTotalSquareFeetRange,
		},
		{
			name:    "Square feet too large",
			raw:     fields("X", "2", "1", "10000.5"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgTotalSquareFeetRange,
		},
		{
			name:    "Empty location",
			raw:     fields("   ", "2", "1", "1000"),
			code:    errcodes.ValidationError.String(),
			message: validation.MsgLocationRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got, err := v.Validate(tc.raw)

			if tc.code == "" {
				rq.NoError(err)
				rq.Equal(tc.want, got)

				return
			}

			rq.Error(err)
			rq.Equal(entity.PredictionRequest{}, got)

			appErr, ok := domain.AsAppError(err)
			rq.True(ok)
			rq.Equal(tc.code, appErr.Code.String())
			rq.Equal(tc.message, appErr.Message)
		})
	}
}

func TestValidateBedroomsOutOfRange(t *testing.T) {
	rq := require.New(t)

	v := validation.New()
	random := tests.NewRandomizer()

	for range 200 {
		bhk := random.IntOutside(value.MinBedrooms, value.MaxBedrooms, 1000)
		bath := random.IntBetween(-3, 12)
		sqft := random.Float64() * 20000

		_, err := v.Validate(fields(
			"X",
			strconv.Itoa(bhk),
			strconv.Itoa(bath),
			strconv.FormatFloat(sqft, 'f', -1, 64),
		))

		appErr, ok := domain.AsAppError(err)
		rq.True(ok, "bhk=%d", bhk)
		rq.Equal(validation.MsgBedroomsRange, appErr.Message, "bhk=%d bath=%d sqft=%f", bhk, bath, sqft)
	}
}

func TestValidateBathroomsExceedBedrooms(t *testing.T) {
	rq := require.New(t)

	v := validation.New()
	random := tests.NewRandomizer()

	for range 200 {
		bath := random.IntBetween(value.MinBathrooms+1, value.MaxBathrooms)
		bhk := random.IntBetween(value.MinBedrooms, bath-1)
		sqft := random.Float64() * 20000

		_, err := v.Validate(fields(
			"X",
			strconv.Itoa(bhk),
			strconv.Itoa(bath),
			strconv.FormatFloat(sqft, 'f', -1, 64),
		))

		appErr, ok := domain.AsAppError(err)
		rq.True(ok)
		rq.Equal(errcodes.ValidationError, appErr.Code)
		rq.Equal(validation.MsgBathroomsExceedBHK, appErr.Message, "bhk=%d bath=%d", bhk, bath)
	}
}

func TestValidateSquareFeetOutOfRange(t *testing.T) {
	rq := require.New(t)

	v := validation.New()
	random := tests.NewRandomizer()

	for range 200 {
		bhk := random.IntBetween(value.MinBedrooms, value.MaxBedrooms)
		bath := random.IntBetween(value.MinBathrooms, min(bhk, value.MaxBathrooms))
		sqft := random.FloatOutside(value.MinTotalSquareFeet, value.MaxTotalSquareFeet, 50000)

		_, err := v.Validate(fields(
			"X",
			strconv.Itoa(bhk),
			strconv.Itoa(bath),
			strconv.FormatFloat(sqft, 'f', -1, 64),
		))

		appErr, ok := domain.AsAppError(err)
		rq.True(ok, "sqft=%f", sqft)
		rq.Equal(validation.MsgTotalSquareFeetRange, appErr.Message, "sqft=%f", sqft)
	}
}
