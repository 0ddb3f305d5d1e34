// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
)

// Handlers only keep the services pointer at construction, so nil services
// are fine here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		server   config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both", server: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "only http", server: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "only grpc", server: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "none", server: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.StructuredConfig{
				Server: tt.server,
				App:    config.App{Languages: []string{"en-GB"}},
			}

			h, err := NewHandlers(nil, cfg, prometheus.NewRegistry(), logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
