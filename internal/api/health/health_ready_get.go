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

package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ReadinessResponse is the readiness body.
type ReadinessResponse struct {
	// Status is "ok" when all dependencies pass their checks.
	Status string `json:"status"`
	// Error holds the failure detail when Status is "error".
	Error string `json:"error,omitempty"`
}

// GetHealthReady reports readiness by running all dependency checks.
func (h *Health) GetHealthReady(
	ctx echo.Context,
) error {
	if err := h.Checker.CheckHealth(ctx.Request().Context()); err != nil {
		return ctx.JSON(http.StatusServiceUnavailable, ReadinessResponse{
			Status: "error",
			Error:  err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, ReadinessResponse{Status: "ok"})
}
