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

package audit

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
	"github.com/fleethos-io/fleethos/internal/validation"
)

// ListParams are the query filters for listing audit entries.
type ListParams struct {
	// From restricts results to entries at or after this instant,
	// formatted RFC 3339.
	From string `query:"from"`
	// To restricts results to entries before this instant, formatted
	// RFC 3339.
	To string `query:"to"`
	// Limit caps the page size.
	Limit int `query:"limit"  validate:"omitempty,gte=1,lte=100"`
	// Offset skips entries for pagination.
	Offset int `query:"offset" validate:"omitempty,gte=0"`
}

// ListResponse is a paginated page of audit entries.
type ListResponse struct {
	// Items are the matching entries, oldest first.
	Items []audittrail.Entry `json:"items"`
	// TotalItems is the total matching count across all pages.
	TotalItems int `json:"total_items"`
}

// List returns a paginated list of audit entries.
func (a *Audit) List(
	ctx echo.Context,
) error {
	var params ListParams
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid query parameters",
		})
	}

	if errMsg, ok := validation.Struct(params); !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
	}

	limit := 20
	if params.Limit > 0 {
		limit = params.Limit
	}

	from := time.Time{}
	if params.From != "" {
		parsed, err := time.Parse(time.RFC3339, params.From)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "from must be formatted RFC 3339",
			})
		}
		from = parsed
	}

	to := time.Now().Add(24 * time.Hour)
	if params.To != "" {
		parsed, err := time.Parse(time.RFC3339, params.To)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "to must be formatted RFC 3339",
			})
		}
		to = parsed
	}

	entries, total, err := a.Trail.Range(
		ctx.Request().Context(),
		from,
		to,
		limit,
		params.Offset,
	)
	if err != nil {
		a.logger.Error(
			"failed to list audit entries",
			slog.String("error", err.Error()),
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list audit entries",
		})
	}

	return ctx.JSON(http.StatusOK, ListResponse{
		Items:      entries,
		TotalItems: total,
	})
}
