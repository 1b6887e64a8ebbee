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

	"github.com/fleethos-io/fleethos/internal/validation"
)

// PostCertifyRequest is the body for certifying a daily log.
type PostCertifyRequest struct {
	// Signature is the driver's attestation signature.
	Signature string `json:"signature" validate:"required"`
}

// PostCertify certifies a driver's daily log, freezing an immutable
// snapshot. Re-certifying with the same signature is a no-op.
func (h *HOS) PostCertify(
	ctx echo.Context,
) error {
	driverID := ctx.Param("driverId")
	date := ctx.Param("date")

	var req PostCertifyRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if errMsg, ok := validation.Struct(req); !ok {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: errMsg})
	}

	snapshot, err := h.Engine.Certify(
		ctx.Request().Context(),
		driverID,
		date,
		req.Signature,
		actor(ctx),
	)
	if err != nil {
		return h.writeError(ctx, "certify log", err)
	}

	return ctx.JSON(http.StatusCreated, snapshot)
}
