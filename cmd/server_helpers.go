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

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	natsclient "github.com/osapi-io/nats-client/pkg/client"

	"github.com/fleethos-io/fleethos/internal/api"
	"github.com/fleethos-io/fleethos/internal/api/health"
	"github.com/fleethos-io/fleethos/internal/cli"
	"github.com/fleethos-io/fleethos/internal/config"
	"github.com/fleethos-io/fleethos/internal/hos"
	"github.com/fleethos-io/fleethos/internal/hos/audittrail"
	"github.com/fleethos-io/fleethos/internal/hos/engine"
	"github.com/fleethos-io/fleethos/internal/hos/store"
	"github.com/fleethos-io/fleethos/internal/hos/violation"
	"github.com/fleethos-io/fleethos/internal/messaging"
	"github.com/fleethos-io/fleethos/internal/notify"
	"github.com/fleethos-io/fleethos/internal/scheduler"
)

// serverVersion is reported by the detailed health endpoint.
const serverVersion = "0.1.0"

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetHOSHandler returns duty-log handler registrations.
	GetHOSHandler(eng *engine.Engine) []func(e *echo.Echo)
	// GetAuditHandler returns audit-trail handler registrations.
	GetAuditHandler(trail *audittrail.Trail) []func(e *echo.Echo)
	// GetHealthHandler returns health handler registrations.
	GetHealthHandler(
		checker health.Checker,
		startTime time.Time,
		version string,
		metrics health.MetricsProvider,
	) []func(e *echo.Echo)
	// GetMetricsHandler returns Prometheus metrics handler for registration.
	GetMetricsHandler(metricsHandler http.Handler, path string) []func(e *echo.Echo)
	// RegisterHandlers registers handler groups with the Echo instance.
	RegisterHandlers(registrations ...[]func(e *echo.Echo))
}

// defaultBuckets names the KV buckets when the config leaves them blank.
var defaultBuckets = map[string]string{
	"events":     "hos-events",
	"logs":       "hos-logs",
	"violations": "hos-violations",
	"snapshots":  "hos-snapshots",
	"audit":      "hos-audit",
}

// serverRuntime holds the NATS connection and the engine collaborators
// created by setupServer.
type serverRuntime struct {
	nc        messaging.NATSClient
	engine    *engine.Engine
	scheduler *scheduler.Scheduler
	buckets   map[string]nats.KeyValue
}

// setupServer connects to NATS, binds the KV buckets, assembles the
// compliance engine and sweep scheduler, and creates the API server with
// all handlers registered. It is used by the standalone server start and
// combined start commands.
func setupServer(
	ctx context.Context,
	log *slog.Logger,
	metricsHandler http.Handler,
	metricsPath string,
) (ServerManager, *serverRuntime) {
	connCfg := appConfig.API.NATS
	namespace := connCfg.Namespace

	nc := connectNATS(log, connCfg)
	buckets := bindBuckets(log, nc, namespace)

	stores := engine.Stores{
		Events:     store.NewKVEventStore(log, buckets["events"]),
		Logs:       store.NewKVDailyLogStore(log, buckets["logs"]),
		Violations: store.NewKVViolationStore(log, buckets["violations"]),
		Snapshots:  store.NewKVSnapshotStore(log, buckets["snapshots"]),
	}

	trail := audittrail.New(log, audittrail.NewKVStore(log, buckets["audit"]))
	directory := buildDirectory()
	notifier := buildNotifier(log, nc, namespace)

	eng := engine.New(
		log,
		stores,
		trail,
		notifier,
		directory,
		engineOptions(log)...,
	)

	sched := scheduler.New(
		log,
		eng,
		func(fnCtx context.Context) ([]string, error) {
			drivers, err := directory.Drivers(fnCtx)
			if err != nil {
				return nil, err
			}

			ids := make([]string, 0, len(drivers))
			for _, d := range drivers {
				ids = append(ids, d.ID)
			}
			return ids, nil
		},
		scheduler.WithSchedule(appConfig.HOS.SweepSchedule),
	)

	checker := newHealthChecker(nc, buckets["logs"])
	metricsProvider := newMetricsProvider(nc, buckets, directory, eng)

	sm := api.New(appConfig, log)
	sm.RegisterHandlers(
		sm.GetHOSHandler(eng),
		sm.GetAuditHandler(trail),
		sm.GetHealthHandler(checker, time.Now(), serverVersion, metricsProvider),
		sm.GetMetricsHandler(metricsHandler, metricsPath),
	)

	return sm, &serverRuntime{
		nc:        nc,
		engine:    eng,
		scheduler: sched,
		buckets:   buckets,
	}
}

func connectNATS(
	log *slog.Logger,
	connCfg config.NATSConnection,
) messaging.NATSClient {
	var nc messaging.NATSClient = natsclient.New(log, &natsclient.Options{
		Host: connCfg.Host,
		Port: connCfg.Port,
		Auth: cli.BuildNATSAuthOptions(connCfg.Auth),
		Name: connCfg.ClientName,
	})

	if err := nc.Connect(); err != nil {
		cli.LogFatal(log, "failed to connect to NATS", err)
	}

	return nc
}

// bindBuckets resolves each bucket's namespaced name and binds it,
// creating the bucket when it does not yet exist.
func bindBuckets(
	log *slog.Logger,
	nc messaging.NATSClient,
	namespace string,
) map[string]nats.KeyValue {
	configured := map[string]config.NATSBucket{
		"events":     appConfig.NATS.Events,
		"logs":       appConfig.NATS.Logs,
		"violations": appConfig.NATS.Violations,
		"snapshots":  appConfig.NATS.Snapshots,
		"audit":      appConfig.NATS.Audit,
	}

	buckets := make(map[string]nats.KeyValue, len(configured))
	for key, bucketCfg := range configured {
		name := bucketCfg.Bucket
		if name == "" {
			name = defaultBuckets[key]
		}

		kv, err := nc.CreateKVBucket(messaging.ApplyNamespaceToInfraName(namespace, name))
		if err != nil {
			cli.LogFatal(log, "failed to bind KV bucket", err, "bucket", name)
		}

		buckets[key] = kv
	}

	return buckets
}

// buildDirectory seeds the master-data directory from config.
func buildDirectory() *engine.StaticDirectory {
	drivers := make([]engine.DriverInfo, 0, len(appConfig.HOS.Drivers))
	for _, d := range appConfig.HOS.Drivers {
		drivers = append(drivers, engine.DriverInfo{
			ID:        d.ID,
			CarrierID: d.CarrierID,
			Timezone:  d.Timezone,
			RulesetID: d.Ruleset,
		})
	}

	return engine.NewStaticDirectory(drivers, appConfig.HOS.Vehicles)
}

// buildNotifier publishes violations to NATS when the raw connection is
// reachable, and falls back to log-only delivery otherwise.
func buildNotifier(
	log *slog.Logger,
	nc messaging.NATSClient,
	namespace string,
) notify.Notifier {
	subject := appConfig.HOS.NotifySubject
	if subject == "" {
		subject = "hos.violations"
	}
	subject = messaging.ApplyNamespaceToSubject(namespace, subject)

	if natsConn, ok := nc.(*natsclient.Client); ok && natsConn.NC != nil {
		if wrapper, ok := natsConn.NC.(*natsclient.NATSConnWrapper); ok && wrapper.Conn != nil {
			return notify.NewNATSNotifier(log, wrapper.Conn, subject)
		}
	}

	return notify.NewLogNotifier(log)
}

// engineOptions maps HOS config onto engine options.
func engineOptions(
	log *slog.Logger,
) []engine.Option {
	var opts []engine.Option

	if id := appConfig.HOS.Ruleset; id != "" {
		rs, err := hos.RulesetByID(id)
		if err != nil {
			cli.LogFatal(log, "invalid ruleset", err, "ruleset", id)
		}
		opts = append(opts, engine.WithRuleset(rs))
	}

	if raw := appConfig.HOS.LockTimeout; raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			cli.LogFatal(log, "invalid lock timeout", err, "lock_timeout", raw)
		}
		opts = append(opts, engine.WithLockTimeout(d))
	}

	if buffer := appConfig.HOS.WarningBufferMinutes; buffer > 0 {
		opts = append(opts, engine.WithDetector(
			violation.New(log, violation.WithWarningBuffer(buffer)),
		))
	}

	return opts
}

func newHealthChecker(
	nc messaging.NATSClient,
	logsKV nats.KeyValue,
) *health.NATSChecker {
	return &health.NATSChecker{
		NATSCheck: func() error {
			natsConn, ok := nc.(*natsclient.Client)
			if !ok || natsConn.NC == nil {
				return fmt.Errorf("nats client unavailable")
			}

			if natsConn.NC.ConnectedUrl() == "" {
				return fmt.Errorf("nats not connected")
			}

			return nil
		},
		KVCheck: func() error {
			_, err := logsKV.Status()
			if err != nil {
				return fmt.Errorf("kv bucket not accessible: %w", err)
			}

			return nil
		},
	}
}

func newMetricsProvider(
	nc messaging.NATSClient,
	buckets map[string]nats.KeyValue,
	directory engine.DriverDirectory,
	eng *engine.Engine,
) *health.ClosureMetricsProvider {
	return &health.ClosureMetricsProvider{
		NATSInfoFn: func(_ context.Context) (*health.NATSMetrics, error) {
			natsConn, ok := nc.(*natsclient.Client)
			if !ok || natsConn.NC == nil {
				return nil, fmt.Errorf("NATS client unavailable")
			}

			metrics := &health.NATSMetrics{
				URL: natsConn.NC.ConnectedUrl(),
			}

			if wrapper, ok := natsConn.NC.(*natsclient.NATSConnWrapper); ok &&
				wrapper.Conn != nil {
				metrics.Version = wrapper.Conn.ConnectedServerVersion()
			}

			return metrics, nil
		},
		KVInfoFn: func(_ context.Context) ([]health.KVMetrics, error) {
			results := make([]health.KVMetrics, 0, len(buckets))

			for _, kv := range buckets {
				if kv == nil {
					continue
				}

				status, err := kv.Status()
				if err != nil {
					continue
				}

				results = append(results, health.KVMetrics{
					Name:  status.Bucket(),
					Keys:  int(status.Values()),
					Bytes: status.Bytes(),
				})
			}

			return results, nil
		},
		FleetStatsFn: func(fnCtx context.Context) (*health.FleetMetrics, error) {
			drivers, err := directory.Drivers(fnCtx)
			if err != nil {
				return nil, fmt.Errorf("fleet stats: %w", err)
			}

			open, err := eng.ListViolations(fnCtx, store.ViolationFilter{
				Status: hos.ViolationOpen,
			})
			if err != nil {
				return nil, fmt.Errorf("fleet stats: %w", err)
			}

			certified := 0
			for _, d := range drivers {
				loc, err := time.LoadLocation(d.Timezone)
				if err != nil {
					continue
				}

				date := time.Now().In(loc).Format(hos.DateFormat)
				log, err := eng.GetDailyLog(fnCtx, d.ID, date)
				if err != nil {
					continue
				}
				if log.State == hos.StateCertified {
					certified++
				}
			}

			return &health.FleetMetrics{
				Drivers:        len(drivers),
				OpenViolations: len(open),
				CertifiedLogs:  certified,
			}, nil
		},
	}
}
