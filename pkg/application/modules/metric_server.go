package modules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"house_price/pkg/metrics"
)

// MetricServer отдаёт /metrics из переданного реестра. Пустой адрес
// отключает сервер, счётчики при этом продолжают собираться.
type MetricServer struct {
	ListenAddress string
	Gatherer      prometheus.Gatherer
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.ListenAddress == "" {
		logger(ctx).Info("metrics server disabled")

		return
	}

	prometheusServer := metrics.NewPrometheusServer(m.ListenAddress, m.Gatherer)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("metrics server %s: %w", m.ListenAddress, err)
		}

		return nil
	})
}
