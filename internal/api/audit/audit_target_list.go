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

	"github.com/labstack/echo/v4"

	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
)

// validTargetTypes are the target kinds entries can be listed by.
var validTargetTypes = map[audittrail.TargetType]bool{
	audittrail.TargetEvent:         true,
	audittrail.TargetCertification: true,
	audittrail.TargetDailyLog:      true,
	audittrail.TargetViolation:     true,
}

// ListByTarget returns the full history for one target, oldest first.
func (a *Audit) ListByTarget(
	ctx echo.Context,
) error {
	targetType := audittrail.TargetType(ctx.Param("type"))
	targetID := ctx.Param("id")

	if !validTargetTypes[targetType] {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "unknown target type",
		})
	}

	entries, err := a.Trail.ByTarget(ctx.Request().Context(), targetType, targetID)
	if err != nil {
		a.logger.Error(
			"failed to list audit entries for target",
			slog.String("error", err.Error()),
			slog.String("target_type", string(targetType)),
			slog.String("target_id", targetID),
		)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to list audit entries for target",
		})
	}

	return ctx.JSON(http.StatusOK, ListResponse{
		Items:      entries,
		TotalItems: len(entries),
	})
}
