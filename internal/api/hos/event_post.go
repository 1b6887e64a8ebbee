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
	"github.com/fleethos-io/fleethos/internal/validation"
)

// PostEventRequest is the body for appending a duty event.
type PostEventRequest struct {
	// ID is an optional client-supplied identifier, used for idempotent
	// retries. Generated when empty.
	ID string `json:"id"                           validate:"omitempty,uuid"`
	// DriverID identifies the driver the event belongs to.
	DriverID string `json:"driver_id"                    validate:"required"`
	// VehicleID identifies the CMV, when one is involved.
	VehicleID string `json:"vehicle_id,omitempty"`
	// Status is the duty status for the interval.
	Status string `json:"status"                       validate:"required,oneof=OFF_DUTY SLEEPER_BERTH DRIVING ON_DUTY_NOT_DRIVING PERSONAL_CONVEYANCE YARD_MOVE"`
	// StartTime is the UTC instant the interval began.
	StartTime time.Time `json:"start_time"                   validate:"required"`
	// EndTime is the UTC instant the interval ended, absent while open.
	EndTime *time.Time `json:"end_time,omitempty"`
	// Location is the reported location at the status change.
	Location string `json:"location,omitempty"`
	// OdometerMiles is the vehicle odometer at the status change.
	OdometerMiles float64 `json:"odometer_miles,omitempty"     validate:"omitempty,gte=0"`
	// Annotation is a free-form driver remark.
	Annotation string `json:"annotation,omitempty"         validate:"omitempty,max=60"`
	// AdverseConditions marks driving under adverse conditions.
	AdverseConditions bool `json:"adverse_conditions,omitempty"`
}

// PostEventResponse is the append result.
type PostEventResponse struct {
	// Event is the stored event.
	Event hos.DutyEvent `json:"event"`
	// Log is the recomputed daily log for the event's day.
	Log hos.DailyLog `json:"log"`
	// Duplicate is true when an identical event was already stored and the
	// append was a no-op.
	Duplicate bool `json:"duplicate,omitempty"`
}

// PostEvent appends a duty event and recomputes the affected days.
func (h *HOS) PostEvent(
	ctx echo.Context,
) error {
	var req PostEventRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
	}

	event := hos.DutyEvent{
		ID:                req.ID,
		DriverID:          req.DriverID,
		VehicleID:         req.VehicleID,
		Status:            hos.DutyStatus(req.Status),
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Location:          req.Location,
		OdometerMiles:     req.OdometerMiles,
		Annotation:        req.Annotation,
		AdverseConditions: req.AdverseConditions,
	}

	out, err := h.Engine.AppendEvent(ctx.Request().Context(), event, actor(ctx))
	if err != nil {
		return h.writeError(ctx, "append event", err)
	}

	status := http.StatusCreated
	if out.Duplicate {
		status = http.StatusOK
	}

	return ctx.JSON(status, PostEventResponse{
		Event:     out.Event,
		Log:       out.Log,
		Duplicate: out.Duplicate,
	})
}
