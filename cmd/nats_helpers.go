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
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/fleethos-io/fleethos/internal/cli"
	"github.com/fleethos-io/fleethos/internal/config"
)

// natsReadyTimeout bounds how long we wait for the embedded server to
// accept connections.
const natsReadyTimeout = 10 * time.Second

// natsLifecycle adapts the embedded NATS server to the Lifecycle interface
// used by the start commands. The server is already running when the
// lifecycle is constructed; Start is a no-op.
type natsLifecycle struct {
	server *natsserver.Server
}

func (n *natsLifecycle) Start() {}

func (n *natsLifecycle) Stop(
	_ context.Context,
) {
	n.server.Shutdown()
	n.server.WaitForShutdown()
}

// setupNATSServer starts the embedded NATS server with JetStream enabled
// and provisions the duty-log KV buckets.
func setupNATSServer(
	ctx context.Context,
	log *slog.Logger,
) *natsserver.Server {
	serverCfg := appConfig.NATS.Server

	opts := &natsserver.Options{
		Host:      serverCfg.Host,
		Port:      serverCfg.Port,
		JetStream: true,
		StoreDir:  serverCfg.StoreDir,
	}

	applyServerAuth(opts, serverCfg.Auth)

	s, err := natsserver.NewServer(opts)
	if err != nil {
		cli.LogFatal(log, "failed to create NATS server", err)
	}

	go s.Start()

	if !s.ReadyForConnections(natsReadyTimeout) {
		cli.LogFatal(log, "NATS server not ready", fmt.Errorf("timed out after %s", natsReadyTimeout))
	}

	log.Info(
		"embedded NATS server started",
		slog.String("url", s.ClientURL()),
		slog.String("store_dir", serverCfg.StoreDir),
	)

	provisionKVBuckets(ctx, log, s.ClientURL(), serverCfg)

	return s
}

// applyServerAuth maps server-side auth config onto NATS server options.
func applyServerAuth(
	opts *natsserver.Options,
	auth config.NATSServerAuth,
) {
	switch auth.Type {
	case "user_pass":
		users := make([]*natsserver.User, 0, len(auth.Users))
		for _, u := range auth.Users {
			users = append(users, &natsserver.User{
				Username: u.Username,
				Password: u.Password,
			})
		}
		opts.Users = users
	case "nkey":
		nkeys := make([]*natsserver.NkeyUser, 0, len(auth.NKeys))
		for _, pub := range auth.NKeys {
			nkeys = append(nkeys, &natsserver.NkeyUser{Nkey: pub})
		}
		opts.Nkeys = nkeys
	}
}

// provisionKVBuckets creates or updates the KV buckets with their
// configured TTL, storage, and replica settings so the API server can
// bind them on connect. Provisioning is skipped under nkey auth since
// the server config carries no client seed.
func provisionKVBuckets(
	ctx context.Context,
	log *slog.Logger,
	url string,
	serverCfg config.NATSServer,
) {
	var connOpts []nats.Option
	switch serverCfg.Auth.Type {
	case "user_pass":
		if len(serverCfg.Auth.Users) == 0 {
			log.Warn("skipping bucket provisioning, no users configured")
			return
		}
		u := serverCfg.Auth.Users[0]
		connOpts = append(connOpts, nats.UserInfo(u.Username, u.Password))
	case "nkey":
		log.Warn("skipping bucket provisioning under nkey auth")
		return
	}

	nc, err := nats.Connect(url, connOpts...)
	if err != nil {
		cli.LogFatal(log, "failed to connect for provisioning", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		cli.LogFatal(log, "failed to create jetstream context", err)
	}

	namespace := serverCfg.Namespace
	configured := map[string]config.NATSBucket{
		"events":     appConfig.NATS.Events,
		"logs":       appConfig.NATS.Logs,
		"violations": appConfig.NATS.Violations,
		"snapshots":  appConfig.NATS.Snapshots,
		"audit":      appConfig.NATS.Audit,
	}

	for key, bucketCfg := range configured {
		if bucketCfg.Bucket == "" {
			bucketCfg.Bucket = defaultBuckets[key]
		}

		kvCfg := cli.BuildKVConfig(namespace, bucketCfg)
		if _, err := js.CreateOrUpdateKeyValue(ctx, kvCfg); err != nil {
			cli.LogFatal(log, "failed to provision KV bucket", err, "bucket", kvCfg.Bucket)
		}

		log.Info(
			"KV bucket provisioned",
			slog.String("bucket", kvCfg.Bucket),
			slog.String("storage", bucketCfg.Storage),
		)
	}
}
