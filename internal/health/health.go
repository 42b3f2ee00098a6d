package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
)

// ServiceName is the gRPC health service name reported for the auction site.
// The empty service name mirrors it.
const ServiceName = "auctions"

const defaultCheckTimeout = 2 * time.Second

// Check is a named dependency probe.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// Checker probes the service dependencies and publishes the result to a
// gRPC health server.
type Checker struct {
	server  *health.Server
	checks  []Check
	timeout time.Duration
}

// NewChecker creates a Checker. The health server starts out NOT_SERVING
// until the first Run.
func NewChecker(server *health.Server, checks ...Check) *Checker {
	server.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return &Checker{server: server, checks: checks, timeout: defaultCheckTimeout}
}

// Run pings every dependency concurrently and updates the serving status.
// It returns the failed checks keyed by name.
func (c *Checker) Run(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		failures = make(map[string]string)
	)
	for _, check := range c.checks {
		wg.Add(1)
		go func(check Check) {
			defer wg.Done()
			if err := check.Ping(ctx); err != nil {
				mu.Lock()
				failures[check.Name] = err.Error()
				mu.Unlock()
			}
		}(check)
	}
	wg.Wait()

	status := healthpb.HealthCheckResponse_SERVING
	if len(failures) > 0 {
		status = healthpb.HealthCheckResponse_NOT_SERVING
		logger.Log.Errorw("health check failed", "failures", failures)
	}
	c.server.SetServingStatus("", status)
	c.server.SetServingStatus(ServiceName, status)

	return failures
}

// Watch reruns the checks every interval until ctx is done.
func (c *Checker) Watch(ctx context.Context, interval time.Duration) {
	c.Run(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Run(ctx)
		}
	}
}

// Response is the /healthz body.
type Response struct {
	Status   string            `json:"status"`
	Failures map[string]string `json:"failures,omitempty"`
}

// Handler returns the HTTP liveness handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} health.Response
// @Failure 503 {object} health.Response
// @Router /healthz [get]
func (c *Checker) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		failures := c.Run(r.Context())

		resp := Response{Status: "ok"}
		code := http.StatusOK
		if len(failures) > 0 {
			resp = Response{Status: "unavailable", Failures: failures}
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// Shutdown marks every service NOT_SERVING and stops further updates.
func (c *Checker) Shutdown() {
	c.server.Shutdown()
}

// NewGRPCServer returns a gRPC server exposing the health service.
func NewGRPCServer(server *health.Server, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	healthpb.RegisterHealthServer(s, server)
	return s
}
