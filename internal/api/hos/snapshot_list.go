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

	"github.com/fleethos-io/fleethos/internal/hos"
)

// ListSnapshotsResponse is the list of certified snapshots for one
// driver-day, oldest first.
type ListSnapshotsResponse struct {
	// Items are the frozen snapshots.
	Items []hos.CertifiedSnapshot `json:"items"`
	// TotalItems is the number of snapshots.
	TotalItems int `json:"total_items"`
}

// ListSnapshots returns every certified snapshot frozen for one
// driver-day. A day certified, amended, and re-certified has more
// than one.
func (h *HOS) ListSnapshots(
	ctx echo.Context,
) error {
	driverID := ctx.Param("driverId")
	date := ctx.Param("date")

	snapshots, err := h.Engine.Snapshots(ctx.Request().Context(), driverID, date)
	if err != nil {
		return h.writeError(ctx, "list snapshots", err)
	}

	return ctx.JSON(http.StatusOK, ListSnapshotsResponse{
		Items:      snapshots,
		TotalItems: len(snapshots),
	})
}
