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

package certify_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/certify"
)

type CertifyPublicTestSuite struct {
	suite.Suite
}

func (s *CertifyPublicTestSuite) TestCanCertify() {
	tests := []struct {
		name  string
		state hos.CertificationState
		want  bool
	}{
		{
			name:  "draft",
			state: hos.StateDraft,
			want:  true,
		},
		{
			name:  "pending certification",
			state: hos.StatePendingCertification,
			want:  true,
		},
		{
			name:  "amended loops back",
			state: hos.StateAmended,
			want:  true,
		},
		{
			name:  "already certified",
			state: hos.StateCertified,
			want:  false,
		},
		{
			name:  "unknown state",
			state: hos.CertificationState("BOGUS"),
			want:  false,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, certify.CanCertify(tc.state))
		})
	}
}

func (s *CertifyPublicTestSuite) TestTransitionCertify() {
	state, err := certify.TransitionCertify(hos.StateDraft)

	s.Require().NoError(err)
	s.Equal(hos.StateCertified, state)
}

func (s *CertifyPublicTestSuite) TestTransitionCertifyRejectsCertified() {
	_, err := certify.TransitionCertify(hos.StateCertified)

	s.Require().Error(err)
	s.ErrorIs(err, hos.ErrIllegalTransition)
}

func (s *CertifyPublicTestSuite) TestTransitionComplete() {
	tests := []struct {
		name  string
		state hos.CertificationState
		want  hos.CertificationState
	}{
		{
			name:  "draft moves to pending",
			state: hos.StateDraft,
			want:  hos.StatePendingCertification,
		},
		{
			name:  "pending stays pending",
			state: hos.StatePendingCertification,
			want:  hos.StatePendingCertification,
		},
		{
			name:  "certified keeps its signature",
			state: hos.StateCertified,
			want:  hos.StateCertified,
		},
		{
			name:  "amended stays amended",
			state: hos.StateAmended,
			want:  hos.StateAmended,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, certify.TransitionComplete(tc.state))
		})
	}
}

func (s *CertifyPublicTestSuite) TestTransitionAmend() {
	tests := []struct {
		name  string
		state hos.CertificationState
		want  hos.CertificationState
	}{
		{
			name:  "certified log voids the signature",
			state: hos.StateCertified,
			want:  hos.StateAmended,
		},
		{
			name:  "draft log is untouched",
			state: hos.StateDraft,
			want:  hos.StateDraft,
		},
		{
			name:  "amended log stays amended",
			state: hos.StateAmended,
			want:  hos.StateAmended,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.Equal(tc.want, certify.TransitionAmend(tc.state))
		})
	}
}

func (s *CertifyPublicTestSuite) TestFreezeAndThaw() {
	at := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	log := hos.DailyLog{
		DriverID: "driver-1",
		Date:     "2026-03-10",
		Timezone: "UTC",
		Version:  3,
		State:    hos.StatePendingCertification,
		Totals:   hos.DailyTotals{DrivingMinutes: 420, OffDutyMinutes: 1020},
	}
	violations := []hos.Violation{
		{
			ID:       "viol-1",
			DriverID: "driver-1",
			RuleID:   hos.Rule11HourDriving,
			Severity: hos.SeverityWarning,
		},
	}

	snap, err := certify.Freeze(log, violations, "sig-abc", "driver-1", at)

	s.Require().NoError(err)
	s.NotEmpty(snap.ID)
	s.Equal("driver-1", snap.DriverID)
	s.Equal("2026-03-10", snap.Date)
	s.Equal(3, snap.Version)
	s.Equal(at, snap.CertifiedAt)
	s.Equal("sig-abc", snap.Signature)
	s.NotEmpty(snap.Raw)

	thawedLog, thawedViolations, err := certify.Thaw(snap)

	s.Require().NoError(err)
	s.Equal(log.DriverID, thawedLog.DriverID)
	s.Equal(log.Version, thawedLog.Version)
	s.Equal(log.Totals, thawedLog.Totals)
	s.Require().Len(thawedViolations, 1)
	s.Equal("viol-1", thawedViolations[0].ID)
}

func (s *CertifyPublicTestSuite) TestFreezeRawIsStable() {
	at := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	log := hos.DailyLog{DriverID: "driver-1", Date: "2026-03-10", Version: 1}

	first, err := certify.Freeze(log, nil, "sig", "driver-1", at)
	s.Require().NoError(err)

	second, err := certify.Freeze(log, nil, "sig", "driver-1", at)
	s.Require().NoError(err)

	// The frozen payload depends only on the log and violation set.
	s.Equal(first.Raw, second.Raw)
}

func (s *CertifyPublicTestSuite) TestThawRejectsGarbage() {
	_, _, err := certify.Thaw(hos.CertifiedSnapshot{
		ID:  "snap-1",
		Raw: []byte("not json"),
	})

	s.Error(err)
}

func TestCertifyPublicTestSuite(t *testing.T) {
	suite.Run(t, new(CertifyPublicTestSuite))
}
