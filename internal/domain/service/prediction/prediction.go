package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/internal/domain/value"
	"house_price/pkg/contextx"
	"house_price/pkg/errcodes"
	"house_price/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	rejectedPrefix = "❗ "

	MsgMalformedForm    = rejectedPrefix + "Could not read the submitted form."
	MsgModelUnavailable = "⚠️ Price model is unavailable, please try again later."
	MsgPredictionFailed = "⚠️ Something went wrong while estimating the price."
)

type Validator interface {
	Validate(raw value.RawFields) (entity.PredictionRequest, error)
}

// Predictor — обученная модель. Ready == false значит, что артефакт не
// загрузился и Predict вызывать бессмысленно.
type Predictor interface {
	Ready() bool
	Predict(ctx context.Context, req entity.PredictionRequest) (float64, error)
}

// Recorder считает исходы запросов.
type Recorder interface {
	Observe(status entity.PredictionStatus, elapsed time.Duration)
}

type Service struct {
	validator Validator
	predictor Predictor
	recorder  Recorder
}

func New(validator Validator, predictor Predictor, recorder Recorder) *Service {
	return &Service{
		validator: validator,
		predictor: predictor,
		recorder:  recorder,
	}
}

// Handle проводит один запрос через проверку и модель. Ошибки наружу не
// выходят: любой исход упакован в PredictionResult.
func (s *Service) Handle(ctx context.Context, raw value.RawFields) entity.PredictionResult {
	start := time.Now()

	result := s.handle(ctx, raw)

	if s.recorder != nil {
		s.recorder.Observe(result.Status, time.Since(start))
	}

	return result
}

func (s *Service) handle(ctx context.Context, raw value.RawFields) entity.PredictionResult {
	req, err := s.validator.Validate(raw)
	if err != nil {
		return rejected(ctx, err)
	}

	if !s.predictor.Ready() {
		logger(ctx).Warn("prediction requested while model is unavailable")

		return unavailable()
	}

	lakhs, err := s.predict(ctx, req)
	if err != nil {
		if domain.HasCode(err, errcodes.ModelUnavailable) {
			return unavailable()
		}

		logger(ctx).Error(
			"prediction failed",
			slog.String(logx.FieldLocation, req.Location),
			logx.Error(err),
		)

		return entity.PredictionResult{
			Status:  entity.PredictionFailed,
			Code:    errcodes.PredictionFailure,
			Message: MsgPredictionFailed,
		}
	}

	return entity.PredictionResult{
		Status:   entity.PredictionSucceeded,
		Estimate: Format(lakhs),
	}
}

// predict оборачивает вызов модели: паника и нечисловой ответ тоже ошибки.
func (s *Service) predict(ctx context.Context, req entity.PredictionRequest) (lakhs float64, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("prediction.predict: panic: %v", rec)
		}
	}()

	lakhs, err = s.predictor.Predict(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("prediction.predict: %w", err)
	}

	if math.IsNaN(lakhs) || math.IsInf(lakhs, 0) {
		return 0, domain.NewError(errcodes.PredictionFailure, fmt.Sprintf("non-finite estimate %v", lakhs))
	}

	return lakhs, nil
}

func rejected(ctx context.Context, err error) entity.PredictionResult {
	appErr, ok := domain.AsAppError(err)
	if !ok {
		logger(ctx).Error("unexpected validation error", logx.Error(err))

		return entity.PredictionResult{
			Status:  entity.PredictionFailed,
			Code:    errcodes.PredictionFailure,
			Message: MsgPredictionFailed,
		}
	}

	logger(ctx).Debug(
		"prediction request rejected",
		slog.String(logx.FieldErrorCode, appErr.Code.String()),
		logx.Error(err),
	)

	return entity.PredictionResult{
		Status:  entity.PredictionRejected,
		Code:    appErr.Code,
		Message: rejectedPrefix + appErr.Message,
	}
}

func unavailable() entity.PredictionResult {
	return entity.PredictionResult{
		Status:  entity.PredictionUnavailable,
		Code:    errcodes.ModelUnavailable,
		Message: MsgModelUnavailable,
	}
}

// Format округляет оценку модели до копеек лакха и собирает строку вида
// "₹ 45.67 Lakhs".
func Format(lakhs float64) entity.Estimate {
	rounded := decimal.NewFromFloat(lakhs).Round(value.PriceScale)

	return entity.Estimate{
		Lakhs:   rounded,
		Rupees:  value.LakhsToRupees(rounded),
		Unit:    value.UnitLakhs,
		Display: fmt.Sprintf("%s %s %s", value.CurrencySymbol, rounded.StringFixed(value.PriceScale), value.UnitLakhs),
	}
}
