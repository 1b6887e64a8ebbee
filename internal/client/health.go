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

package client

import (
	"context"
	"net/http"

	"github.com/fleethos-io/fleethos/internal/api/health"
)

// GetHealth checks process liveness.
func (c *Client) GetHealth(
	ctx context.Context,
) (*health.LivenessResponse, error) {
	var out health.LivenessResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetHealthReady checks dependency readiness.
func (c *Client) GetHealthReady(
	ctx context.Context,
) (*health.ReadinessResponse, error) {
	var out health.ReadinessResponse
	if err := c.do(ctx, http.MethodGet, "/health/ready", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetHealthStatus retrieves per-component health with system metrics.
func (c *Client) GetHealthStatus(
	ctx context.Context,
) (*health.StatusResponse, error) {
	var out health.StatusResponse
	if err := c.do(ctx, http.MethodGet, "/health/status", nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
