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

package hos_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apihos "github.com/fleethos-io/fleethos/internal/api/hos"
	"github.com/fleethos-io/fleethos/internal/authtoken"
	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
	"github.com/fleethos-io/fleethos/internal/hos/engine"
	"github.com/fleethos-io/fleethos/internal/hos/store"
	"github.com/fleethos-io/fleethos/internal/notify"
)

// handlerSuite wires the duty-log handlers to a real engine over in-memory
// stores, the same assembly the server performs at startup.
type handlerSuite struct {
	suite.Suite

	ctx     context.Context
	now     time.Time
	stores  *store.Memory
	trail   *audittrail.Trail
	engine  *engine.Engine
	handler *apihos.HOS
	echo    *echo.Echo
	subject string
}

func (s *handlerSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = s.at("2026-03-10T18:00:00Z")
	s.stores = store.NewMemory()
	s.trail = audittrail.New(
		slog.Default(),
		audittrail.NewMemoryStore(),
		audittrail.WithClock(func() time.Time { return s.now }),
	)

	directory := engine.NewStaticDirectory(
		[]engine.DriverInfo{
			{ID: "driver-1", CarrierID: "carrier-1", Timezone: "UTC"},
		},
		[]string{"truck-7"},
	)

	s.engine = engine.New(
		slog.Default(),
		engine.Stores{
			Events:     s.stores.Events,
			Logs:       s.stores.Logs,
			Violations: s.stores.Violations,
			Snapshots:  s.stores.Snapshots,
		},
		s.trail,
		notify.NewLogNotifier(slog.Default()),
		directory,
		engine.WithClock(func() time.Time { return s.now }),
	)

	s.handler = apihos.New(slog.Default(), s.engine)
	s.echo = echo.New()
	s.subject = "dispatcher-9"
}

func (s *handlerSuite) at(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	s.Require().NoError(err)

	return t
}

// do invokes a handler the way the router would, with path params and the
// authenticated subject already bound.
func (s *handlerSuite) do(
	handler echo.HandlerFunc,
	method string,
	target string,
	body string,
	params map[string]string,
) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ctx := s.echo.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for name, value := range params {
		names = append(names, name)
		values = append(values, value)
	}
	ctx.SetParamNames(names...)
	ctx.SetParamValues(values...)

	if s.subject != "" {
		ctx.Set(authtoken.ContextKeySubject, s.subject)
	}

	s.Require().NoError(handler(ctx))

	return rec
}

func (s *handlerSuite) decode(
	rec *httptest.ResponseRecorder,
	out any,
) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out))
}

func (s *handlerSuite) errBody(
	rec *httptest.ResponseRecorder,
) string {
	var resp apihos.ErrorResponse
	s.decode(rec, &resp)

	return resp.Error
}

// seedEvent appends an event for driver-1 directly through the engine.
func (s *handlerSuite) seedEvent(
	status hos.DutyStatus,
	start string,
	end string,
) hos.DutyEvent {
	ev := hos.DutyEvent{
		DriverID:  "driver-1",
		VehicleID: "truck-7",
		Status:    status,
		StartTime: s.at(start),
	}
	if end != "" {
		e := s.at(end)
		ev.EndTime = &e
	}

	out, err := s.engine.AppendEvent(s.ctx, ev, "seed")
	s.Require().NoError(err)

	return out.Event
}

func (s *handlerSuite) certifyDay(
	date string,
) hos.CertifiedSnapshot {
	snap, err := s.engine.Certify(s.ctx, "driver-1", date, "sig-1", "driver-1")
	s.Require().NoError(err)

	return snap
}
