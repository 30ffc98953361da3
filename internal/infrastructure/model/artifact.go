package model

import (
	"fmt"
	"io"
	"math"
	"time"

	jsoniter "github.com/json-iterator/go"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/pkg/errcodes"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// ArtifactVersion — версия формата файла модели.
const ArtifactVersion = 1

// Artifact — обученная линейная модель:
//
//	price = intercept + sqft*TotalSquareFeet + bath*Bathrooms + bhk*Bedrooms + locations[location]
//
// Район, которого не было в обучающей выборке, даёт вклад 0.
type Artifact struct {
	Version      int                `json:"version"`
	TrainedAt    time.Time          `json:"trainedAt"`
	Samples      int                `json:"samples"`
	Intercept    float64            `json:"intercept"`
	Coefficients Coefficients       `json:"coefficients"`
	Locations    map[string]float64 `json:"locations"`
}

type Coefficients struct {
	TotalSquareFeet float64 `json:"total_sqft"`
	Bathrooms       float64 `json:"bath"`
	Bedrooms        float64 `json:"bhk"`
}

func (a *Artifact) Validate() error {
	if a.Version != ArtifactVersion {
		return domain.NewError(errcodes.InvalidModel, fmt.Sprintf("unsupported artifact version %d", a.Version))
	}

	for name, v := range map[string]float64{
		"intercept":  a.Intercept,
		"total_sqft": a.Coefficients.TotalSquareFeet,
		"bath":       a.Coefficients.Bathrooms,
		"bhk":        a.Coefficients.Bedrooms,
	} {
		if !finite(v) {
			return domain.NewError(errcodes.InvalidModel, fmt.Sprintf("coefficient %s is not finite", name))
		}
	}

	for location, v := range a.Locations {
		if !finite(v) {
			return domain.NewError(errcodes.InvalidModel, fmt.Sprintf("coefficient for location %q is not finite", location))
		}
	}

	return nil
}

// Estimate считает цену в лакхах.
func (a *Artifact) Estimate(req entity.PredictionRequest) float64 {
	return a.Intercept +
		a.Coefficients.TotalSquareFeet*req.TotalSquareFeet +
		a.Coefficients.Bathrooms*float64(req.Bathrooms) +
		a.Coefficients.Bedrooms*float64(req.Bedrooms) +
		a.Locations[req.Location]
}

func Decode(data []byte) (*Artifact, error) {
	var a Artifact

	if err := json.Unmarshal(data, &a); err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidModel, "model artifact is not valid JSON")
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return &a, nil
}

func Encode(w io.Writer, a *Artifact) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(a); err != nil {
		return fmt.Errorf("json.Encode: %w", err)
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
