// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-tree-admin/internal/utils"
)

// traceIDKey is the metadata key of the caller's trace id. It matches the
// X-Trace-ID header of the web transport.
const traceIDKey = "x-trace-id"

var traceIDs = utils.NewUUIDGenerator()

// UnaryLogging attaches a trace-stamped logger to every call and logs its
// outcome.
func (h *Handler) UnaryLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = traceIDs.Generate()
	}

	log := h.logger.WithTraceID(traceID)
	ctx = log.WithContext(context.WithValue(ctx, utils.TraceIDCtxKey, traceID))

	start := time.Now()
	resp, err := handler(ctx, req)

	log.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
