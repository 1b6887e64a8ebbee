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

package messaging_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/messaging"
)

type NamespacePublicTestSuite struct {
	suite.Suite
}

func (s *NamespacePublicTestSuite) TestApplyNamespaceToInfraName() {
	tests := []struct {
		name      string
		namespace string
		infraName string
		want      string
	}{
		{
			name:      "empty namespace",
			namespace: "",
			infraName: "hos_daily_logs",
			want:      "hos_daily_logs",
		},
		{
			name:      "namespaced bucket",
			namespace: "staging",
			infraName: "hos_daily_logs",
			want:      "staging-hos_daily_logs",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			got := messaging.ApplyNamespaceToInfraName(tc.namespace, tc.infraName)
			s.Equal(tc.want, got)
		})
	}
}

func (s *NamespacePublicTestSuite) TestApplyNamespaceToSubject() {
	tests := []struct {
		name      string
		namespace string
		subject   string
		want      string
	}{
		{
			name:      "empty namespace",
			namespace: "",
			subject:   "hos.violation.detected",
			want:      "hos.violation.detected",
		},
		{
			name:      "namespaced subject",
			namespace: "staging",
			subject:   "hos.violation.detected",
			want:      "staging.hos.violation.detected",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			got := messaging.ApplyNamespaceToSubject(tc.namespace, tc.subject)
			s.Equal(tc.want, got)
		})
	}
}

func TestNamespacePublicTestSuite(t *testing.T) {
	suite.Run(t, new(NamespacePublicTestSuite))
}
