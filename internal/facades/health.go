package facades

import (
	"context"

	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/actuallyyun/cs50w-project2-commerce/internal/logger"
)

// HealthChecker is the part of the generated gRPC health client the facade uses.
type HealthChecker interface {
	Check(ctx context.Context, in *healthpb.HealthCheckRequest, opts ...grpc.CallOption) (*healthpb.HealthCheckResponse, error)
}

// HealthGRPCFacade queries a running server's gRPC health service.
type HealthGRPCFacade struct {
	client HealthChecker
}

// NewHealthGRPCFacade creates a new facade with a gRPC client.
func NewHealthGRPCFacade(client HealthChecker) *HealthGRPCFacade {
	return &HealthGRPCFacade{client: client}
}

// IsServing reports whether the service is SERVING.
func (f *HealthGRPCFacade) IsServing(ctx context.Context, service string) (bool, error) {
	resp, err := f.client.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		logger.Log.Errorw("failed to check health via gRPC", "service", service, "error", err)
		return false, err
	}

	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}
