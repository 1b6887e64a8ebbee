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
	"strconv"

	apiaudit "github.com/fleethos-io/fleethos/internal/api/audit"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
)

// ListAudit retrieves a page of audit entries.
func (c *Client) ListAudit(
	ctx context.Context,
	limit int,
	offset int,
) (*apiaudit.ListResponse, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var out apiaudit.ListResponse
	if err := c.do(ctx, http.MethodGet, "/audit", query, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetAudit retrieves a single audit entry by ID.
func (c *Client) GetAudit(
	ctx context.Context,
	id string,
) (*audittrail.Entry, error) {
	var out audittrail.Entry
	path := "/audit/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ListAuditByTarget retrieves the full history for one target.
func (c *Client) ListAuditByTarget(
	ctx context.Context,
	targetType string,
	targetID string,
) (*apiaudit.ListResponse, error) {
	var out apiaudit.ListResponse
	path := "/audit/targets/" + url.PathEscape(targetType) + "/" + url.PathEscape(targetID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
