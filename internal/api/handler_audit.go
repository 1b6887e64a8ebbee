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

	apiaudit "github.com/fleethos-io/fleethos/internal/api/audit"
	"github.com/fleethos-io/fleethos/internal/authtoken"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
)

// GetAuditHandler returns audit-trail handler registrations.
func (s *Server) GetAuditHandler(
	trail *audittrail.Trail,
) []func(e *echo.Echo) {
	auditHandler := apiaudit.New(s.logger, trail)

	signingKey := s.appConfig.API.Server.Security.SigningKey
	requires := scopeMiddleware(
		s.tokenManager,
		signingKey,
		s.customRoles,
		authtoken.PermAuditRead,
	)

	return []func(e *echo.Echo){
		func(e *echo.Echo) {
			e.GET("/audit", auditHandler.List, requires)
			e.GET("/audit/:id", auditHandler.Get, requires)
			e.GET("/audit/targets/:type/:id", auditHandler.ListByTarget, requires)
		},
	}
}
