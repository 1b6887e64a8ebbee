// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// GetHealthStatus returns per-component health status with system metrics
// (authenticated).
func (h *Health) GetHealthStatus(
	ctx echo.Context,
) error {
	reqCtx := ctx.Request().Context()

	var natsErr, kvErr error
	if checker, ok := h.Checker.(*NATSChecker); ok {
		natsErr = checker.CheckNATS()
		kvErr = checker.CheckKV()
	}

	resp := h.buildStatusResponse(reqCtx, natsErr, kvErr)

	if resp.Status != "ok" {
		return ctx.JSON(http.StatusServiceUnavailable, resp)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// buildStatusResponse constructs the status response from component checks
// and metrics.
func (h *Health) buildStatusResponse(
	ctx context.Context,
	natsErr error,
	kvErr error,
) StatusResponse {
	natsComponent := ComponentHealth{Status: "ok"}
	if natsErr != nil {
		natsComponent = ComponentHealth{Status: "error", Error: natsErr.Error()}
	}

	kvComponent := ComponentHealth{Status: "ok"}
	if kvErr != nil {
		kvComponent = ComponentHealth{Status: "error", Error: kvErr.Error()}
	}

	overall := "ok"
	if natsErr != nil || kvErr != nil {
		overall = "degraded"
	}

	resp := StatusResponse{
		Status: overall,
		Components: map[string]ComponentHealth{
			"nats": natsComponent,
			"kv":   kvComponent,
		},
		Version: h.Version,
		Uptime:  time.Since(h.StartTime).Round(time.Second).String(),
	}

	if h.Metrics != nil {
		h.populateMetrics(ctx, &resp)
	}

	return resp
}

// populateMetrics enriches the response with system metrics. Each call is
// independent; a failing source is logged and skipped.
func (h *Health) populateMetrics(
	ctx context.Context,
	resp *StatusResponse,
) {
	if natsInfo, err := h.Metrics.GetNATSInfo(ctx); err != nil {
		h.logger.Warn("failed to get NATS info for status", "error", err)
	} else {
		resp.NATS = &NATSInfo{
			URL:     natsInfo.URL,
			Version: natsInfo.Version,
		}
	}

	if kvBuckets, err := h.Metrics.GetKVInfo(ctx); err != nil {
		h.logger.Warn("failed to get KV info for status", "error", err)
	} else {
		bucketInfos := make([]KVBucketInfo, 0, len(kvBuckets))
		for _, b := range kvBuckets {
			bucketInfos = append(bucketInfos, KVBucketInfo{
				Name:  b.Name,
				Keys:  b.Keys,
				Bytes: int(b.Bytes),
			})
		}
		resp.KVBuckets = &bucketInfos
	}

	if fleetStats, err := h.Metrics.GetFleetStats(ctx); err != nil {
		h.logger.Warn("failed to get fleet stats for status", "error", err)
	} else {
		resp.Fleet = &FleetStats{
			Drivers:        fleetStats.Drivers,
			OpenViolations: fleetStats.OpenViolations,
			CertifiedLogs:  fleetStats.CertifiedLogs,
		}
	}
}
