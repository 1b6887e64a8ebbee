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
	"net/url"

	apihos "github.com/fleethos-io/fleethos/internal/api/hos"
	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/engine"
)

// AppendEvent appends a duty event.
func (c *Client) AppendEvent(
	ctx context.Context,
	req apihos.PostEventRequest,
) (*apihos.PostEventResponse, error) {
	var out apihos.PostEventResponse
	if err := c.do(ctx, http.MethodPost, "/hos/events", nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AmendEvent amends a duty event.
func (c *Client) AmendEvent(
	ctx context.Context,
	eventID string,
	req apihos.PatchEventRequest,
) (*apihos.PatchEventResponse, error) {
	var out apihos.PatchEventResponse
	path := "/hos/events/" + url.PathEscape(eventID)
	if err := c.do(ctx, http.MethodPatch, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetDailyLog retrieves one driver-day's log.
func (c *Client) GetDailyLog(
	ctx context.Context,
	driverID string,
	date string,
) (*hos.DailyLog, error) {
	var out hos.DailyLog
	path := "/hos/drivers/" + url.PathEscape(driverID) + "/logs/" + url.PathEscape(date)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetSummary retrieves a driver's remaining drive-time balances.
func (c *Client) GetSummary(
	ctx context.Context,
	driverID string,
) (*engine.Summary, error) {
	var out engine.Summary
	path := "/hos/drivers/" + url.PathEscape(driverID) + "/summary"
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Certify certifies one driver-day's log.
func (c *Client) Certify(
	ctx context.Context,
	driverID string,
	date string,
	signature string,
) (*hos.CertifiedSnapshot, error) {
	var out hos.CertifiedSnapshot
	path := "/hos/drivers/" + url.PathEscape(driverID) +
		"/logs/" + url.PathEscape(date) + "/certify"
	req := apihos.PostCertifyRequest{Signature: signature}
	if err := c.do(ctx, http.MethodPost, path, nil, req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListViolations retrieves violations matching the filters. Empty filter
// values are omitted from the query.
func (c *Client) ListViolations(
	ctx context.Context,
	driverID string,
	status string,
) (*apihos.ListViolationsResponse, error) {
	query := url.Values{}
	if driverID != "" {
		query.Set("driver_id", driverID)
	}
	if status != "" {
		query.Set("status", status)
	}

	var out apihos.ListViolationsResponse
	if err := c.do(ctx, http.MethodGet, "/hos/violations", query, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
