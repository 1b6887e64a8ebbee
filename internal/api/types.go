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

// Package api provides the HTTP surface of the compliance engine.
package api

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"github.com/fleethos-io/fleethos/internal/config"
)

// Server wraps the Echo server and its route handlers.
type Server struct {
	// Echo is the underlying Echo instance.
	Echo *echo.Echo

	logger       *slog.Logger
	appConfig    config.Config
	customRoles  map[string][]string
	tokenManager TokenValidator
}

// Option is a function that configures the Server.
type Option func(*Server)

// WithTokenValidator overrides the JWT validator, used by tests.
func WithTokenValidator(
	tm TokenValidator,
) Option {
	return func(s *Server) {
		s.tokenManager = tm
	}
}

// ErrorResponse is the error body returned by all endpoints.
type ErrorResponse struct {
	// Error describes what went wrong.
	Error string `json:"error"`
}
