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
)

// GetDailyLog returns one driver-day's log with events, totals, and
// remaining balances.
func (h *HOS) GetDailyLog(
	ctx echo.Context,
) error {
	driverID := ctx.Param("driverId")
	date := ctx.Param("date")

	if _, err := time.Parse(hos.DateFormat, date); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "date must be formatted " + hos.DateFormat,
		})
	}

	log, err := h.Engine.GetDailyLog(ctx.Request().Context(), driverID, date)
	if err != nil {
		return h.writeError(ctx, "get daily log", err)
	}

	return ctx.JSON(http.StatusOK, log)
}
