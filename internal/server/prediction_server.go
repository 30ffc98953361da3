package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"

	"house_price/internal/domain/entity"
	"house_price/internal/domain/service/prediction"
	"house_price/internal/domain/value"
	"house_price/pkg/contextx"
	"house_price/pkg/errcodes"
	"house_price/pkg/httpx/reply"
	"house_price/pkg/httpx/req"
	"house_price/pkg/logx"
	"house_price/pkg/rest"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type predictionService interface {
	Handle(ctx context.Context, raw value.RawFields) entity.PredictionResult
}

type locationCatalog interface {
	Locations() []string
}

type PredictionServer struct {
	predictionService predictionService
	locationCatalog   locationCatalog
	templates         *template.Template
}

func NewPredictionServer(predictionService predictionService, locationCatalog locationCatalog) PredictionServer {
	return PredictionServer{
		predictionService: predictionService,
		locationCatalog:   locationCatalog,
		templates:         parseTemplates(),
	}
}

type indexPage struct {
	Locations []string
}

type resultPage struct {
	OK    bool
	Price string
}

func (s PredictionServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	reply.HTML(r.Context(), w, http.StatusOK, s.templates, templateIndex, indexPage{
		Locations: s.locationCatalog.Locations(),
	})

	return nil
}

// postPredict всегда отвечает 200: ошибка ввода или модели показывается
// на странице результата вместо цены.
func (s PredictionServer) postPredict(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	form, err := req.ReadForm(r, value.FormFields...)
	if err != nil {
		logger(ctx).Warn("unreadable prediction form", logx.Error(err))

		reply.HTML(ctx, w, http.StatusOK, s.templates, templateResult, resultPage{
			Price: prediction.MsgMalformedForm,
		})

		return nil
	}

	result := s.predictionService.Handle(ctx, form)

	reply.HTML(ctx, w, http.StatusOK, s.templates, templateResult, resultPage{
		OK:    result.OK(),
		Price: result.Text(),
	})

	return nil
}

func (s PredictionServer) getV1Locations(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Locations{
		Locations: s.locationCatalog.Locations(),
	})

	return nil
}

func (s PredictionServer) postV1Predict(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictionRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	result := s.predictionService.Handle(ctx, newRawFields(request))

	switch result.Status {
	case entity.PredictionSucceeded:
		reply.JSON(ctx, w, http.StatusOK, newRESTPrediction(result.Estimate))
	case entity.PredictionRejected:
		reply.Problem(ctx, w, http.StatusBadRequest, result.Code, result.Message)
	case entity.PredictionUnavailable:
		reply.Problem(ctx, w, http.StatusServiceUnavailable, result.Code, result.Message)
	default:
		reply.Problem(ctx, w, http.StatusInternalServerError, errcodes.PredictionFailure, result.Message)
	}

	return nil
}
