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
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fleethos-io/fleethos/internal/authtoken"
)

// TokenValidator parses and validates JWT tokens.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// scopeMiddleware validates JWT tokens and checks for required permissions.
// The request passes when the token holds any one of the required scopes.
func scopeMiddleware(
	tokenManager TokenValidator,
	signingKey string,
	customRoles map[string][]string,
	requiredScopes ...string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			authHeader := ctx.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "Bearer token required",
				})
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokenManager.Validate(tokenString, signingKey)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Error: "Invalid token: " + err.Error(),
				})
			}

			// Inject user identity into context for handlers and audit
			// attribution.
			ctx.Set(authtoken.ContextKeySubject, claims.Subject)
			ctx.Set(authtoken.ContextKeyRoles, claims.Roles)
			if claims.DriverID != "" {
				ctx.Set(authtoken.ContextKeyDriverID, claims.DriverID)
			}

			if len(requiredScopes) == 0 {
				return next(ctx)
			}

			resolved := authtoken.ResolvePermissions(
				claims.Roles,
				claims.Permissions,
				customRoles,
			)

			for _, required := range requiredScopes {
				if authtoken.HasPermission(resolved, required) {
					return next(ctx)
				}
			}

			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Error: fmt.Sprintf(
					"Insufficient permissions. Required: %v, resolved: %v",
					requiredScopes,
					resolved,
				),
			})
		}
	}
}
