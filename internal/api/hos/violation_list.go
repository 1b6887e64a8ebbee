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

package hos

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/store"
	"github.com/fleethos-io/fleethos/internal/validation"
)

// ListViolationsParams are the query filters for listing violations.
type ListViolationsParams struct {
	// DriverID restricts results to one driver.
	DriverID string `query:"driver_id"`
	// CarrierID restricts results to one carrier.
	CarrierID string `query:"carrier_id"`
	// Status restricts results to one review status.
	Status string `query:"status"     validate:"omitempty,oneof=OPEN ACKNOWLEDGED DISPUTED RESOLVED"`
	// From restricts results to windows starting at or after this instant,
	// formatted RFC 3339.
	From string `query:"from"       validate:"omitempty"`
	// To restricts results to windows starting before this instant,
	// formatted RFC 3339.
	To string `query:"to"         validate:"omitempty"`
}

// ListViolationsResponse is the filtered violation list.
type ListViolationsResponse struct {
	// Items are the matching violations.
	Items []hos.Violation `json:"items"`
	// TotalItems is the number of matches.
	TotalItems int `json:"total_items"`
}

// ListViolations returns violations matching the query filters.
func (h *HOS) ListViolations(
	ctx echo.Context,
) error {
	var params ListViolationsParams
	if err := ctx.Bind(&params); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid query parameters",
		})
	}

	if errMsg, ok := validation.Struct(params); !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
	}

	filter := store.ViolationFilter{
		DriverID:  params.DriverID,
		CarrierID: params.CarrierID,
		Status:    hos.ViolationStatus(params.Status),
	}

	if params.From != "" {
		from, err := time.Parse(time.RFC3339, params.From)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "from must be formatted RFC 3339",
			})
		}
		filter.From = from
	}

	if params.To != "" {
		to, err := time.Parse(time.RFC3339, params.To)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Error: "to must be formatted RFC 3339",
			})
		}
		filter.To = to
	}

	violations, err := h.Engine.ListViolations(ctx.Request().Context(), filter)
	if err != nil {
		return h.writeError(ctx, "list violations", err)
	}

	return ctx.JSON(http.StatusOK, ListViolationsResponse{
		Items:      violations,
		TotalItems: len(violations),
	})
}
