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

package api

import (
	"github.com/labstack/echo/v4"

	apihos "github.com/fleethos-io/fleethos/internal/api/hos"
	"github.com/fleethos-io/fleethos/internal/authtoken"
	"github.com/fleethos-io/fleethos/internal/hos/engine"
)

// GetHOSHandler returns duty-log handler registrations.
func (s *Server) GetHOSHandler(
	eng *engine.Engine,
) []func(e *echo.Echo) {
	hosHandler := apihos.New(s.logger, eng)

	signingKey := s.appConfig.API.Server.Security.SigningKey
	requires := func(scopes ...string) echo.MiddlewareFunc {
		return scopeMiddleware(s.tokenManager, signingKey, s.customRoles, scopes...)
	}

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.POST("/hos/events",
				hosHandler.PostEvent, requires(authtoken.PermLogWrite))
			e.PATCH("/hos/events/:id",
				hosHandler.PatchEvent, requires(authtoken.PermLogWrite))

			e.GET("/hos/drivers/:driverId/logs/:date",
				hosHandler.GetDailyLog, requires(authtoken.PermLogRead))
			e.POST("/hos/drivers/:driverId/logs/:date/certify",
				hosHandler.PostCertify, requires(authtoken.PermLogCertify))
			e.GET("/hos/drivers/:driverId/logs/:date/snapshots",
				hosHandler.ListSnapshots, requires(authtoken.PermLogRead))
			e.PUT("/hos/drivers/:driverId/logs/:date/short-haul",
				hosHandler.PutShortHaul, requires(authtoken.PermLogWrite))
			e.GET("/hos/drivers/:driverId/summary",
				hosHandler.GetSummary, requires(authtoken.PermLogRead))

			e.GET("/hos/violations",
				hosHandler.ListViolations, requires(authtoken.PermViolationRead))
			e.PATCH("/hos/violations/:id",
				hosHandler.PatchViolation, requires(authtoken.PermViolationWrite))
		},
	}
}
