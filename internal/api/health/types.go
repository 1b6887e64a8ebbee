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
	"log/slog"
	"time"
)

// Checker checks the health of a dependency.
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// MetricsProvider retrieves system metrics for the status endpoint.
type MetricsProvider interface {
	GetNATSInfo(ctx context.Context) (*NATSMetrics, error)
	GetKVInfo(ctx context.Context) ([]KVMetrics, error)
	GetFleetStats(ctx context.Context) (*FleetMetrics, error)
}

// NATSMetrics holds NATS connection information.
type NATSMetrics struct {
	URL     string
	Version string
}

// KVMetrics holds KV bucket statistics.
type KVMetrics struct {
	Name  string
	Keys  int
	Bytes uint64
}

// FleetMetrics holds fleet compliance statistics.
type FleetMetrics struct {
	Drivers        int
	OpenViolations int
	CertifiedLogs  int
}

// ClosureMetricsProvider implements MetricsProvider using function closures.
type ClosureMetricsProvider struct {
	NATSInfoFn   func(ctx context.Context) (*NATSMetrics, error)
	KVInfoFn     func(ctx context.Context) ([]KVMetrics, error)
	FleetStatsFn func(ctx context.Context) (*FleetMetrics, error)
}

// GetNATSInfo delegates to the NATSInfoFn closure.
func (p *ClosureMetricsProvider) GetNATSInfo(
	ctx context.Context,
) (*NATSMetrics, error) {
	return p.NATSInfoFn(ctx)
}

// GetKVInfo delegates to the KVInfoFn closure.
func (p *ClosureMetricsProvider) GetKVInfo(
	ctx context.Context,
) ([]KVMetrics, error) {
	return p.KVInfoFn(ctx)
}

// GetFleetStats delegates to the FleetStatsFn closure.
func (p *ClosureMetricsProvider) GetFleetStats(
	ctx context.Context,
) (*FleetMetrics, error) {
	return p.FleetStatsFn(ctx)
}

// Health implementation of the Health APIs operations.
type Health struct {
	// Checker performs dependency health checks.
	Checker Checker
	// StartTime records when the server started.
	StartTime time.Time
	// Version is the application version string.
	Version string
	// Metrics provides system metrics (optional, can be nil).
	Metrics MetricsProvider
	logger  *slog.Logger
}

// ErrorResponse is the error body returned by health endpoints.
type ErrorResponse struct {
	// Error describes what went wrong.
	Error string `json:"error"`
}

// ComponentHealth is one dependency's health state.
type ComponentHealth struct {
	// Status is "ok" or "error".
	Status string `json:"status"`
	// Error holds the failure detail when Status is "error".
	Error string `json:"error,omitempty"`
}

// NATSInfo is the NATS connection block of the status response.
type NATSInfo struct {
	URL     string `json:"url"`
	Version string `json:"version"`
}

// KVBucketInfo is one KV bucket's statistics in the status response.
type KVBucketInfo struct {
	Name  string `json:"name"`
	Keys  int    `json:"keys"`
	Bytes int    `json:"bytes"`
}

// FleetStats is the fleet compliance block of the status response.
type FleetStats struct {
	Drivers        int `json:"drivers"`
	OpenViolations int `json:"open_violations"`
	CertifiedLogs  int `json:"certified_logs"`
}

// StatusResponse is the detailed status body.
type StatusResponse struct {
	// Status is "ok" or "degraded".
	Status string `json:"status"`
	// Components holds per-dependency health.
	Components map[string]ComponentHealth `json:"components"`
	// Version is the application version string.
	Version string `json:"version"`
	// Uptime is the time since server start.
	Uptime string `json:"uptime"`
	// NATS holds connection info when metrics are available.
	NATS *NATSInfo `json:"nats,omitempty"`
	// KVBuckets holds bucket statistics when metrics are available.
	KVBuckets *[]KVBucketInfo `json:"kv_buckets,omitempty"`
	// Fleet holds compliance statistics when metrics are available.
	Fleet *FleetStats `json:"fleet,omitempty"`
}
