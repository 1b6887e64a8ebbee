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

// Package notify delivers outbound notifications when VIOLATION-severity
// records are created. The engine only sees the Notifier interface;
// deployments choose the transport.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/telemetry"
)

// Notifier is the outbound hook invoked for each new VIOLATION record.
type Notifier interface {
	// Notify delivers one violation notification.
	Notify(ctx context.Context, v hos.Violation) error
}

// Message is the wire payload published for a violation.
type Message struct {
	// EmittedAt is when the notification was published.
	EmittedAt time.Time `json:"emitted_at"`
	// Violation is the full record.
	Violation hos.Violation `json:"violation"`
}

// Compile-time interface checks.
var (
	_ Notifier = (*NATSNotifier)(nil)
	_ Notifier = (*LogNotifier)(nil)
)

// NATSNotifier publishes violation notifications to a NATS subject.
type NATSNotifier struct {
	nc      *nats.Conn
	subject string
	logger  *slog.Logger
	now     func() time.Time
}

// NewNATSNotifier creates a new NATSNotifier.
func NewNATSNotifier(
	logger *slog.Logger,
	nc *nats.Conn,
	subject string,
) *NATSNotifier {
	return &NATSNotifier{
		nc:      nc,
		subject: subject,
		logger:  logger,
		now:     time.Now,
	}
}

// Notify publishes the violation as JSON. The caller's trace context
// rides along in the message headers so consumers can join the span.
func (n *NATSNotifier) Notify(
	ctx context.Context,
	v hos.Violation,
) error {
	data, err := json.Marshal(Message{
		EmittedAt: n.now(),
		Violation: v,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	msg := &nats.Msg{
		Subject: n.subject,
		Header:  nats.Header{},
		Data:    data,
	}
	telemetry.InjectTraceContextToHeader(ctx, http.Header(msg.Header))

	if err := n.nc.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}

	n.logger.Info(
		"violation notification published",
		slog.String("subject", n.subject),
		slog.String("violation_id", v.ID),
		slog.String("rule_id", string(v.RuleID)),
	)

	return nil
}

// LogNotifier writes notifications to the log only. It backs development
// runs and tests.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(
	logger *slog.Logger,
) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify logs the violation.
func (n *LogNotifier) Notify(
	_ context.Context,
	v hos.Violation,
) error {
	n.logger.Warn(
		"hos violation",
		slog.String("violation_id", v.ID),
		slog.String("driver_id", v.DriverID),
		slog.String("rule_id", string(v.RuleID)),
		slog.Int("excess_minutes", v.ExcessMinutes),
	)

	return nil
}
