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

	"github.com/labstack/echo/v4"
)

// PutShortHaulRequest is the body for toggling the short-haul exemption.
type PutShortHaulRequest struct {
	// Enabled is the new exemption state.
	Enabled bool `json:"enabled"`
}

// PutShortHaul toggles the short-haul exemption for one driver-day and
// recomputes it so the 14-hour suppression takes effect immediately.
func (h *HOS) PutShortHaul(
	ctx echo.Context,
) error {
	driverID := ctx.Param("driverId")
	date := ctx.Param("date")

	var req PutShortHaulRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	log, err := h.Engine.SetShortHaul(
		ctx.Request().Context(),
		driverID,
		date,
		req.Enabled,
		actor(ctx),
	)
	if err != nil {
		return h.writeError(ctx, "set short haul", err)
	}

	return ctx.JSON(http.StatusOK, log)
}
