package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"house_price/internal/domain/entity"
	"house_price/internal/infrastructure/dataset"
	"house_price/internal/infrastructure/model"
	"house_price/pkg/application/connectors"
)

type listingsReader interface {
	ReadListings(ctx context.Context) ([]entity.Listing, error)
	String() string
}

func train(ctx context.Context, opts options, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	reader, closeFn, err := openSource(ctx, opts)
	if err != nil {
		return err
	}
	defer closeFn()

	start := time.Now()

	listings, err := reader.ReadListings(ctx)
	if err != nil {
		return fmt.Errorf("read listings: %w", err)
	}

	log.Info("dataset loaded",
		zap.String("source", reader.String()),
		zap.Int("listings", len(listings)),
	)

	artifact, err := model.Fit(listings, time.Now())
	if err != nil {
		return fmt.Errorf("model.Fit: %w", err)
	}

	log.Info("model fitted",
		zap.Int("locations", len(artifact.Locations)),
		zap.Float64("intercept", artifact.Intercept),
		zap.Float64("total_sqft", artifact.Coefficients.TotalSquareFeet),
		zap.Float64("bath", artifact.Coefficients.Bathrooms),
		zap.Float64("bhk", artifact.Coefficients.Bedrooms),
		zap.Duration("took", time.Since(start)),
	)

	if err := model.SaveFile(opts.out, artifact); err != nil {
		return fmt.Errorf("model.SaveFile: %w", err)
	}

	log.Info("artifact written", zap.String("path", opts.out))

	if !opts.publishRedis {
		return nil
	}

	rdb := &connectors.Redis{Address: opts.redisAddr, PoolSize: 1}
	defer rdb.Close(ctx)

	client, err := rdb.Client(ctx)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}

	if err := model.Publish(ctx, client, opts.redisKey, artifact); err != nil {
		return fmt.Errorf("model.Publish: %w", err)
	}

	log.Info("artifact published", zap.String("redis-key", opts.redisKey))

	return nil
}

func openSource(ctx context.Context, opts options) (listingsReader, func(), error) {
	switch opts.source {
	case "csv":
		return dataset.NewCSVSource(opts.dataPath), func() {}, nil
	case "postgres":
		if opts.pgDSN == "" {
			return nil, nil, fmt.Errorf("--pg-dsn is required for --source postgres")
		}

		pg := &connectors.Postgres{DSN: opts.pgDSN, MaxOpenConns: 1, MaxIdleConns: 1, ConnectTimeout: 10 * time.Second}

		db, err := pg.Client(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres: %w", err)
		}

		source, err := dataset.NewPostgresSource(db, opts.table)
		if err != nil {
			pg.Close(ctx)
			return nil, nil, fmt.Errorf("dataset.NewPostgresSource: %w", err)
		}

		return source, func() { pg.Close(ctx) }, nil
	default:
		return nil, nil, fmt.Errorf("unknown --source %q (use csv or postgres)", opts.source)
	}
}
