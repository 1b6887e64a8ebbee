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

// Package authtoken issues and validates the JWTs guarding the API.
package authtoken

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Issuer is the iss claim stamped on generated tokens.
const Issuer = "fleethos"

// RoleHierarchy lists the built-in roles from most to least privileged.
var RoleHierarchy = []string{"admin", "driver", "safety", "read"}

// CustomClaims are the JWT claims carried by API tokens.
type CustomClaims struct {
	// Roles granted to the subject.
	Roles []string `json:"roles" validate:"required,dive,oneof=admin driver safety read"`
	// Permissions is an optional direct permission grant that bypasses
	// role expansion (IdP override).
	Permissions []string `json:"permissions,omitempty"`
	// DriverID scopes a driver token to its own log.
	DriverID string `json:"driver_id,omitempty"`

	jwt.RegisteredClaims
}

// Token issues and validates JWTs.
type Token struct {
	logger *slog.Logger
}

// New creates a new Token.
func New(
	logger *slog.Logger,
) *Token {
	return &Token{
		logger: logger,
	}
}

// Generate signs a token for the subject with the given roles. Tokens
// expire after 24 hours.
func (t *Token) Generate(
	signingKey string,
	roles []string,
	subject string,
	permissions []string,
) (string, error) {
	now := time.Now()
	claims := CustomClaims{
		Roles:       roles,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(signingKey))
}

// GenerateAllowedRoles flattens a role hierarchy into the set accepted by
// token generation.
func GenerateAllowedRoles(
	hierarchy []string,
) []string {
	out := make([]string, len(hierarchy))
	copy(out, hierarchy)

	return out
}
