// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/app-deployer/pkg/k8s/client"
	"github.com/NVIDIA/app-deployer/pkg/logging"
	"github.com/NVIDIA/app-deployer/pkg/server"
	"github.com/NVIDIA/app-deployer/pkg/submitter"
)

const (
	name           = "appd"
	versionDefault = "dev"

	// RouteDeploy accepts application descriptors.
	RouteDeploy = "/deploy"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/app-deployer/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, builds the cluster client and submitter from the
// environment, and handles graceful shutdown.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := submitter.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("invalid deploy configuration: %w", err)
	}

	clientset, err := client.Default()
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	slog.Info("deploy configuration",
		"namespace", cfg.Namespace,
		"containerPort", cfg.ContainerPort,
		"mode", string(cfg.Mode),
		"rollback", cfg.Rollback,
		"timeout", cfg.Timeout,
	)

	s := newServer(submitter.New(clientset, submitter.WithConfig(cfg)))

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// routes maps the deploy endpoint, with and without the trailing slash.
// Deeper paths under /deploy/ are not matched.
func routes(sub *submitter.Submitter) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		RouteDeploy:          sub.HandleDeploy,
		RouteDeploy + "/{$}": sub.HandleDeploy,
	}
}

func newServer(sub *submitter.Submitter, opts ...server.Option) *server.Server {
	base := []server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(sub)),
	}
	return server.New(append(base, opts...)...)
}
