package model_test

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"house_price/internal/domain"
	"house_price/internal/domain/entity"
	"house_price/internal/infrastructure/model"
	"house_price/pkg/errcodes"
	"house_price/pkg/httpx"
)

func artifact() *model.Artifact {
	return &model.Artifact{
		Version:   model.ArtifactVersion,
		TrainedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		Samples:   7000,
		Intercept: -12.5,
		Coefficients: model.Coefficients{
			TotalSquareFeet: 0.046,
			Bathrooms:       4.2,
			Bedrooms:        2.1,
		},
		Locations: map[string]float64{
			"Whitefield":      3.4,
			"Electronic City": -18.9,
		},
	}
}

func TestPredictor(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	p := model.NewPredictor(artifact())
	rq.True(p.Ready())

	price, err := p.Predict(ctx, entity.PredictionRequest{
		Location: "Whitefield", TotalSquareFeet: 1200, Bathrooms: 2, Bedrooms: 2,
	})
	rq.NoError(err)
	rq.InDelta(-12.5+0.046*1200+4.2*2+2.1*2+3.4, price, 1e-9)

	first, err := p.Predict(ctx, entity.PredictionRequest{Location: "Nowhere", TotalSquareFeet: 1000, Bathrooms: 1, Bedrooms: 1})
	rq.NoError(err)
	second, err := p.Predict(ctx, entity.PredictionRequest{Location: "Nowhere", TotalSquareFeet: 1000, Bathrooms: 1, Bedrooms: 1})
	rq.NoError(err)
	rq.Equal(first, second)
	rq.InDelta(-12.5+46+4.2+2.1, first, 1e-9)
}

func TestPredictorDisabled(t *testing.T) {
	rq := require.New(t)

	p := model.NewPredictor(nil)
	rq.False(p.Ready())

	_, err := p.Predict(context.Background(), entity.PredictionRequest{Location: "Whitefield", TotalSquareFeet: 1200, Bathrooms: 2, Bedrooms: 2})
	rq.True(domain.HasCode(err, errcodes.ModelUnavailable))
}

func TestPredictorNonFinite(t *testing.T) {
	rq := require.New(t)

	a := artifact()
	a.Coefficients.TotalSquareFeet = math.MaxFloat64

	_, err := model.NewPredictor(a).Predict(context.Background(), entity.PredictionRequest{
		Location: "Whitefield", TotalSquareFeet: 10000, Bathrooms: 2, Bedrooms: 2,
	})
	rq.True(domain.HasCode(err, errcodes.PredictionFailure))
}

func TestLoadFromFile(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()
	dir := t.TempDir()

	path := filepath.Join(dir, "model.json")
	rq.NoError(model.SaveFile(path, artifact()))

	p := model.Load(ctx, model.NewFileSource(path))
	rq.True(p.Ready())

	p = model.Load(ctx, model.NewFileSource(filepath.Join(dir, "absent.json")))
	rq.False(p.Ready())

	broken := filepath.Join(dir, "broken.json")
	rq.NoError(os.WriteFile(broken, []byte(`{"version": 1, "intercept": "lots"`), 0o600))
	rq.False(model.Load(ctx, model.NewFileSource(broken)).Ready())

	future := filepath.Join(dir, "future.json")
	rq.NoError(os.WriteFile(future, []byte(`{"version": 2}`), 0o600))
	rq.False(model.Load(ctx, model.NewFileSource(future)).Ready())
}

func TestDecodeRoundTrip(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer
	rq.NoError(model.Encode(&buf, artifact()))

	a, err := model.Decode(buf.Bytes())
	rq.NoError(err)
	rq.Equal(artifact(), a)
}

func TestLoadFromHTTP(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	var body bytes.Buffer
	rq.NoError(model.Encode(&body, artifact()))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/latest.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body.Bytes())
	}))
	t.Cleanup(srv.Close)

	client := httpx.NewClient(time.Second, httpx.WithLogFieldMaxLen(256))

	p := model.Load(ctx, model.NewHTTPSource(client, srv.URL+"/models/latest.json"))
	rq.True(p.Ready())

	p = model.Load(ctx, model.NewHTTPSource(client, srv.URL+"/models/missing.json"))
	rq.False(p.Ready())
}
