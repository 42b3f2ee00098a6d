package health

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func okCheck(name string) Check {
	return Check{Name: name, Ping: func(context.Context) error { return nil }}
}

func failingCheck(name string) Check {
	return Check{Name: name, Ping: func(context.Context) error { return errors.New(name + " down") }}
}

func servingStatus(t *testing.T, hs *health.Server, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.Status
}

func TestChecker_StartsNotServing(t *testing.T) {
	hs := health.NewServer()
	NewChecker(hs, okCheck("postgres"))

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, hs, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, hs, ServiceName))
}

func TestChecker_Run(t *testing.T) {
	hs := health.NewServer()
	c := NewChecker(hs, okCheck("postgres"), okCheck("redis"))

	assert.Empty(t, c.Run(context.Background()))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, servingStatus(t, hs, ServiceName))

	c.checks = append(c.checks, failingCheck("kafka"))
	failures := c.Run(context.Background())
	assert.Equal(t, map[string]string{"kafka": "kafka down"}, failures)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, servingStatus(t, hs, ""))
}

func TestChecker_Handler(t *testing.T) {
	tests := []struct {
		name         string
		checks       []Check
		expectedCode int
		expected     Response
	}{
		{
			name:         "healthy",
			checks:       []Check{okCheck("postgres"), okCheck("redis")},
			expectedCode: http.StatusOK,
			expected:     Response{Status: "ok"},
		},
		{
			name:         "redis down",
			checks:       []Check{okCheck("postgres"), failingCheck("redis")},
			expectedCode: http.StatusServiceUnavailable,
			expected:     Response{Status: "unavailable", Failures: map[string]string{"redis": "redis down"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewChecker(health.NewServer(), tt.checks...)

			w := httptest.NewRecorder()
			c.Handler()(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var got Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestChecker_WatchStopsWithContext(t *testing.T) {
	hs := health.NewServer()
	c := NewChecker(hs, okCheck("postgres"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.Watch(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return servingStatus(t, hs, ServiceName) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not stop")
	}
}

func TestGRPCServer_ServesHealth(t *testing.T) {
	hs := health.NewServer()
	c := NewChecker(hs, okCheck("postgres"))
	c.Run(context.Background())

	lis := bufconn.Listen(1024 * 1024)
	s := NewGRPCServer(hs)
	go func() { _ = s.Serve(lis) }()
	defer s.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	defer conn.Close()

	client := healthpb.NewHealthClient(conn)
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	c.Shutdown()
	resp, err = client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}
