// Package healthcheck keeps the gRPC health service in step with the database.
package healthcheck

import (
	"context"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/socialfeed-server/internal/logger"
	"github.com/dtroode/socialfeed-server/internal/model"
)

const pingTimeout = 2 * time.Second

// Monitor pings the database on an interval and publishes the result as the
// overall serving status.
type Monitor struct {
	pinger   model.Pinger
	server   *health.Server
	interval time.Duration
	logger   *logger.Logger
}

func NewMonitor(pinger model.Pinger, server *health.Server, interval time.Duration, logger *logger.Logger) *Monitor {
	return &Monitor{
		pinger:   pinger,
		server:   server,
		interval: interval,
		logger:   logger,
	}
}

// Run probes once immediately and then on every tick until ctx is cancelled.
// On return the service is marked NOT_SERVING.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("Health monitor: started", "interval", m.interval.String())

	last := m.CheckOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			m.logger.Info("Health monitor: stopped")
			return
		case <-ticker.C:
			status := m.CheckOnce(ctx)
			if status != last {
				m.logger.Warn("Health monitor: status changed",
					"from", last.String(),
					"to", status.String())
				last = status
			}
		}
	}
}

// CheckOnce pings the database and records the resulting status.
func (m *Monitor) CheckOnce(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := m.pinger.Ping(pingCtx); err != nil {
		m.logger.Error("Health monitor: database ping failed", "error", err.Error())
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	m.server.SetServingStatus("", status)
	return status
}
