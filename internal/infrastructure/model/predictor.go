package model

import (
	"context"
	"log/slog"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/pkg/contextx"
	"house_price/pkg/errcodes"
	"house_price/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Predictor оценивает цену по загруженному артефакту. Без артефакта он
// выключен: Ready == false, Predict всегда ModelUnavailable.
type Predictor struct {
	artifact *Artifact
}

func NewPredictor(a *Artifact) *Predictor {
	return &Predictor{artifact: a}
}

// Load скачивает и проверяет артефакт. Любая ошибка даёт выключенный
// предиктор и предупреждение в лог, но не останавливает старт.
func Load(ctx context.Context, source Source) *Predictor {
	data, err := source.Fetch(ctx)
	if err != nil {
		logger(ctx).Warn(
			"model unavailable, predictions disabled",
			slog.String(logx.FieldModelSource, source.String()),
			logx.Error(err),
		)

		return NewPredictor(nil)
	}

	a, err := Decode(data)
	if err != nil {
		logger(ctx).Warn(
			"model artifact rejected, predictions disabled",
			slog.String(logx.FieldModelSource, source.String()),
			logx.Error(err),
		)

		return NewPredictor(nil)
	}

	logger(ctx).Info(
		"model loaded",
		slog.String(logx.FieldModelSource, source.String()),
		slog.Int(logx.FieldLocations, len(a.Locations)),
		slog.Time("trained-at", a.TrainedAt),
	)

	return NewPredictor(a)
}

func (p *Predictor) Ready() bool {
	return p.artifact != nil
}

func (p *Predictor) Predict(_ context.Context, req entity.PredictionRequest) (float64, error) {
	if p.artifact == nil {
		return 0, domain.NewError(errcodes.ModelUnavailable, "model is not loaded")
	}

	price := p.artifact.Estimate(req)
	if !finite(price) {
		return 0, domain.NewError(errcodes.PredictionFailure, "model produced a non-finite estimate")
	}

	return price, nil
}
