package health

import (
	"context"
	"time"

	"github.com/sbilibin2017/fitness-tracker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the service reported by the health server next to the overall "" entry.
const ServiceName = "fitness-tracker"

// DefaultInterval is how often dependencies are pinged by Run.
const DefaultInterval = 10 * time.Second

// Pinger is a dependency whose reachability decides the serving status.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

// PingContext calls f.
func (f PingFunc) PingContext(ctx context.Context) error {
	return f(ctx)
}

// Checker publishes dependency health over the standard gRPC health protocol.
type Checker struct {
	srv      *health.Server
	pingers  map[string]Pinger
	interval time.Duration
}

// NewChecker creates a Checker for the named dependencies. Status starts as NOT_SERVING.
func NewChecker(interval time.Duration, pingers map[string]Pinger) *Checker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &Checker{
		srv:      health.NewServer(),
		pingers:  pingers,
		interval: interval,
	}
	c.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	return c
}

// Register exposes the health service on s.
func (c *Checker) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, c.srv)
}

// Probe pings every dependency once and updates the status. It reports whether all were reachable.
func (c *Checker) Probe(ctx context.Context) bool {
	ok := true
	for name, p := range c.pingers {
		pingCtx, cancel := context.WithTimeout(ctx, c.interval)
		err := p.PingContext(pingCtx)
		cancel()
		if err != nil {
			logger.Log.Warnw("health check failed", "dependency", name, "err", err)
			ok = false
		}
	}

	if ok {
		c.setStatus(healthpb.HealthCheckResponse_SERVING)
	} else {
		c.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
	}
	return ok
}

// Run probes on every interval until ctx is done, then marks the service as shutting down.
func (c *Checker) Run(ctx context.Context) {
	c.Probe(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.srv.Shutdown()
			return
		case <-ticker.C:
			c.Probe(ctx)
		}
	}
}

func (c *Checker) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	c.srv.SetServingStatus("", status)
	c.srv.SetServingStatus(ServiceName, status)
}
