// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/mock"
	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/models"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockAppInfoService) {
	t.Helper()

	info := mock.NewMockAppInfoService(gomock.NewController(t))
	h := NewHandler(&service.Services{AppInfoService: info}, logger.Nop())
	return h, info
}

// dial serves h on an in-memory listener and returns a health client.
func dial(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLogging))
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_NotServingBeforeFirstProbe(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dial(t, h)

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestHealth_ProbeFollowsDatabase(t *testing.T) {
	h, info := newTestHandler(t)
	client := dial(t, h)

	info.EXPECT().GetSiteSummary(gomock.Any()).Return(models.SiteSummary{Users: 3, Trees: 1}, nil)
	h.probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))

	info.EXPECT().GetSiteSummary(gomock.Any()).Return(models.SiteSummary{}, assert.AnError)
	h.probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestHealth_RunStopsWithContext(t *testing.T) {
	h, info := newTestHandler(t)
	h.interval = 5 * time.Millisecond
	info.EXPECT().GetSiteSummary(gomock.Any()).Return(models.SiteSummary{}, nil).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	client := dial(t, h)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestHealth_UnknownService(t *testing.T) {
	h, _ := newTestHandler(t)
	client := dial(t, h)

	_, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: "nope"})
	assert.Error(t, err)
}
