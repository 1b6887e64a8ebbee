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
	"github.com/fleethos-io/fleethos/internal/hos/eventlog"
	"github.com/fleethos-io/fleethos/internal/validation"
)

// PatchEventRequest is the body for amending a duty event. Only the
// provided fields change; the original event is retained superseded.
type PatchEventRequest struct {
	// Status replaces the duty status.
	Status *string `json:"status,omitempty"             validate:"omitempty,oneof=OFF_DUTY SLEEPER_BERTH DRIVING ON_DUTY_NOT_DRIVING PERSONAL_CONVEYANCE YARD_MOVE"`
	// StartTime replaces the interval start.
	StartTime *time.Time `json:"start_time,omitempty"`
	// EndTime replaces the interval end.
	EndTime *time.Time `json:"end_time,omitempty"`
	// VehicleID replaces the vehicle reference.
	VehicleID *string `json:"vehicle_id,omitempty"`
	// Location replaces the reported location.
	Location *string `json:"location,omitempty"`
	// OdometerMiles replaces the odometer reading.
	OdometerMiles *float64 `json:"odometer_miles,omitempty"     validate:"omitempty,gte=0"`
	// Annotation replaces the driver remark.
	Annotation *string `json:"annotation,omitempty"         validate:"omitempty,max=60"`
	// AdverseConditions replaces the adverse-conditions flag.
	AdverseConditions *bool `json:"adverse_conditions,omitempty"`
	// Reason is the justification for the edit, mandatory once the day has
	// been certified.
	Reason string `json:"reason,omitempty"`
}

// PatchEventResponse is the amendment result.
type PatchEventResponse struct {
	// Original is the superseded event.
	Original hos.DutyEvent `json:"original"`
	// Amended is the replacement event.
	Amended hos.DutyEvent `json:"amended"`
	// Log is the recomputed daily log for the amended event's day.
	Log hos.DailyLog `json:"log"`
}

// PatchEvent amends a duty event and recomputes the affected days.
func (h *HOS) PatchEvent(
	ctx echo.Context,
) error {
	eventID := ctx.Param("id")

	var req PatchEventRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
	}

	changes := eventlog.Changes{
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		VehicleID:         req.VehicleID,
		Location:          req.Location,
		OdometerMiles:     req.OdometerMiles,
		Annotation:        req.Annotation,
		AdverseConditions: req.AdverseConditions,
	}
	if req.Status != nil {
		status := hos.DutyStatus(*req.Status)
		changes.Status = &status
	}

	out, err := h.Engine.AmendEvent(
		ctx.Request().Context(),
		eventID,
		changes,
		req.Reason,
		actor(ctx),
	)
	if err != nil {
		return h.writeError(ctx, "amend event", err)
	}

	return ctx.JSON(http.StatusOK, PatchEventResponse{
		Original: out.Original,
		Amended:  out.Amended,
		Log:      out.Log,
	})
}
