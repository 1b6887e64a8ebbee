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

// Package hos provides the duty-log API handlers.
package hos

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleethos-io/fleethos/internal/authtoken"
	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/engine"
)

// HOS implementation of the duty-log API operations.
type HOS struct {
	// Engine executes duty-log operations.
	Engine *engine.Engine

	logger *slog.Logger
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	eng *engine.Engine,
) *HOS {
	return &HOS{
		Engine: eng,
		logger: logger,
	}
}

// ErrorResponse is the error body returned by duty-log endpoints.
type ErrorResponse struct {
	// Error describes what went wrong.
	Error string `json:"error"`
}

// actor returns the authenticated subject set by the auth middleware.
func actor(
	ctx echo.Context,
) string {
	if subject, ok := ctx.Get(authtoken.ContextKeySubject).(string); ok && subject != "" {
		return subject
	}

	return "unknown"
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(
	err error,
) int {
	switch {
	case errors.Is(err, hos.ErrNotFound),
		errors.Is(err, hos.ErrUnknownDriverOrVehicle):
		return http.StatusNotFound
	case errors.Is(err, hos.ErrOverlappingEvent),
		errors.Is(err, hos.ErrInvalidEventOrdering),
		errors.Is(err, hos.ErrEditAfterCertificationWithoutReason),
		errors.Is(err, hos.ErrMalformedHistoricalData):
		return http.StatusUnprocessableEntity
	case errors.Is(err, hos.ErrCertificationConflict),
		errors.Is(err, hos.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, hos.ErrRecomputationTimeout):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError logs the failure and writes the mapped error response.
func (h *HOS) writeError(
	ctx echo.Context,
	operation string,
	err error,
) error {
	status := errorStatus(err)

	if status == http.StatusInternalServerError {
		h.logger.Error(
			operation+" failed",
			slog.String("error", err.Error()),
		)
		return ctx.JSON(status, ErrorResponse{Error: operation + " failed"})
	}

	return ctx.JSON(status, ErrorResponse{Error: err.Error()})
}
