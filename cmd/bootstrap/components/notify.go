package components

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stock-ledger/internal/infra/notify"
	"stock-ledger/internal/pkg/config"
	"stock-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

// NewNotifier fans out to every configured backend.
func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*notify.Fanout, error) {
	var sinks []shared.Notifier
	for _, backend := range cfg.Notify.Backends {
		switch strings.TrimSpace(backend) {
		case config.NotifyBackendLog:
			sinks = append(sinks, notify.NewLogNotifier(logger))

		case config.NotifyBackendRedis:
			client := notify.NewRedisClient(cfg.Redis)
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					if err := client.Ping(ctx).Err(); err != nil {
						logger.Warn("redis notifier unreachable", "addr", cfg.Redis.Addr, "error", err.Error())
					}
					return nil
				},
				OnStop: func(_ context.Context) error {
					return client.Close()
				},
			})
			sinks = append(sinks, notify.NewRedisNotifier(client, cfg.Redis.Channel))

		case config.NotifyBackendAMQP:
			conn, ch, err := notify.SetupConn(cfg.AMQP.URL, cfg.AMQP.Exchange, logger)
			if err != nil {
				return nil, err
			}
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					_ = ch.Close()
					return conn.Close()
				},
			})
			sinks = append(sinks, notify.NewAMQPNotifier(ch, cfg.AMQP.Exchange))

		case "":
		default:
			return nil, fmt.Errorf("unknown notify backend %q", backend)
		}
	}
	return notify.NewFanout(sinks...), nil
}
