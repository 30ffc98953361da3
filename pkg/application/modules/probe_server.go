package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"house_price/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
}

// Run возвращает probe-сервер, чтобы приложение отмечало готовность и
// состояние компонентов. С пустым адресом сервер не слушает, но
// состояние по-прежнему копится.
func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) *probe.Server {
	probeServer := probe.NewServer(p.ListenAddress, probe.Options{
		Name:    p.Name,
		Version: p.Version,
	})

	if p.ListenAddress == "" {
		logger(ctx).Info("probe server disabled")

		return probeServer
	}

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probe server %s: %w", p.ListenAddress, err)
		}

		return nil
	})

	return probeServer
}
