package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"house_price/internal/config"
	"house_price/internal/domain/service/catalog"
	"house_price/internal/domain/service/prediction"
	"house_price/internal/domain/service/validation"
	"house_price/internal/infrastructure/dataset"
	inframetrics "house_price/internal/infrastructure/metrics"
	"house_price/internal/infrastructure/model"
	"house_price/internal/infrastructure/notifier"
	"house_price/internal/server"
	"house_price/pkg/application/connectors"
	"house_price/pkg/application/modules"
	"house_price/pkg/contextx"
	"house_price/pkg/httpx"
	"house_price/pkg/logx"
	"house_price/pkg/metrics"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	componentCatalog = "catalog"
	componentModel   = "model"
)

// Run поднимает сервис и блокируется до отмены ctx или падения одного из
// серверов. Каталог и модель грузятся до того, как HTTP-сервер начнёт
// слушать порт; их недоступность не мешает старту.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	g, ctx := errgroup.WithContext(ctx)

	registry := metrics.NewRegistry()

	recorder, err := inframetrics.NewPredictionRecorder(registry)
	if err != nil {
		return fmt.Errorf("metrics.NewPredictionRecorder: %w", err)
	}

	probeServer := modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Probe.ListenAddress,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.ListenAddress,
		Gatherer:      registry,
	}.Run(ctx, g)

	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
		ConnectTimeout:  cfg.Postgres.ConnectTimeout,
	}
	defer pg.Close(ctx)

	rdb := &connectors.Redis{
		Username:           cfg.Redis.Username,
		Password:           cfg.Redis.Password,
		Address:            cfg.Redis.Address,
		DatabaseNumber:     cfg.Redis.DatabaseNumber,
		PoolSize:           cfg.Redis.PoolSize,
		MinIdleConnections: cfg.Redis.MinIdleConnections,
		MaxIdleConnections: cfg.Redis.MaxIdleConnections,
	}
	defer rdb.Close(ctx)

	locations, datasetSource := loadCatalog(ctx, cfg, pg)
	probeServer.SetComponent(componentCatalog, catalogStatus(locations))

	predictor, modelSource := loadModel(ctx, cfg, rdb)
	probeServer.SetComponent(componentModel, modelStatus(predictor))

	report := notifier.StartupReport{
		AppName:       cfg.App.Name,
		AppVersion:    cfg.App.Version,
		DatasetSource: datasetSource,
		Locations:     locations.Len(),
		ModelSource:   modelSource,
		ModelReady:    predictor.Ready(),
	}

	if report.Degraded() {
		alertDegraded(ctx, cfg.Bot, report)
	}

	svc := prediction.New(validation.New(), predictor, recorder)

	srv := server.NewServer(server.NewPredictionServer(svc, locations))

	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr: cfg.HTTP.ListenAddress,
		Handler: server.NewRouter(srv, server.RouterOptions{
			Logger:              logger(ctx),
			SensitiveDataMasker: logx.NewSensitiveDataMasker(),
			LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
		}),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		OnListen:        probeServer.MarkReady,
	}.Run(ctx, g, httpServer)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

func loadCatalog(ctx context.Context, cfg config.Config, pg *connectors.Postgres) (*catalog.LocationCatalog, string) {
	switch cfg.Dataset.Source {
	case config.DatasetSourcePostgres:
		db, err := pg.Client(ctx)
		if err != nil {
			logger(ctx).Warn("postgres unavailable, serving empty location list", logx.Error(err))
			return catalog.New(nil), string(cfg.Dataset.Source)
		}

		source, err := dataset.NewPostgresSource(db, cfg.Dataset.Table)
		if err != nil {
			logger(ctx).Warn("postgres dataset misconfigured, serving empty location list", logx.Error(err))
			return catalog.New(nil), string(cfg.Dataset.Source)
		}

		return catalog.Load(ctx, source), source.String()
	default:
		source := dataset.NewCSVSource(cfg.Dataset.Path)

		return catalog.Load(ctx, source), source.String()
	}
}

func loadModel(ctx context.Context, cfg config.Config, rdb *connectors.Redis) (*model.Predictor, string) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Model.FetchTimeout)
	defer cancel()

	var source model.Source

	switch cfg.Model.Source {
	case config.ModelSourceRedis:
		client, err := rdb.Client(ctx)
		if err != nil {
			logger(ctx).Warn(
				"redis unavailable, predictions disabled",
				slog.String(logx.FieldModelSource, string(cfg.Model.Source)),
				logx.Error(err),
			)

			return model.NewPredictor(nil), string(cfg.Model.Source)
		}

		source = model.NewRedisSource(client, cfg.Model.RedisKey)
	case config.ModelSourceHTTP:
		client := httpx.NewClient(
			cfg.Model.FetchTimeout,
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.HTTP.LogFieldMaxLen),
		)

		source = model.NewHTTPSource(client, cfg.Model.URL)
	default:
		source = model.NewFileSource(cfg.Model.Path)
	}

	return model.Load(ctx, source), source.String()
}

func alertDegraded(ctx context.Context, cfg config.Bot, report notifier.StartupReport) {
	if !cfg.Enabled() {
		return
	}

	bot, err := notifier.NewTelegramBot(cfg.Token, cfg.ChatID)
	if err != nil {
		logger(ctx).Error("notifier.NewTelegramBot", logx.Error(err))
		return
	}

	if err := bot.SendStartupAlert(ctx, report); err != nil {
		logger(ctx).Error("bot.SendStartupAlert", logx.Error(err))
	}
}

func catalogStatus(c *catalog.LocationCatalog) string {
	if c.Len() == 0 {
		return "empty"
	}

	return "ok"
}

func modelStatus(p *model.Predictor) string {
	if !p.Ready() {
		return "unavailable"
	}

	return "ok"
}
