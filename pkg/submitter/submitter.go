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

package submitter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/app-deployer/pkg/defaults"
	"github.com/NVIDIA/app-deployer/pkg/descriptor"
	apperrors "github.com/NVIDIA/app-deployer/pkg/errors"
	"github.com/NVIDIA/app-deployer/pkg/manifest"
)

// Submitter turns a validated descriptor into cluster objects.
type Submitter struct {
	clientset kubernetes.Interface
	config    Config
}

// New returns a Submitter writing through clientset.
func New(clientset kubernetes.Interface, opts ...Option) *Submitter {
	s := &Submitter{
		clientset: clientset,
		config:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Config returns the effective configuration.
func (s *Submitter) Config() Config {
	return s.config
}

// Deploy writes the objects for d in order: Secret (when d has secrets),
// Deployment, Service and Ingress (when external access is requested).
// The first failing step stops the sequence and a *Failure is returned.
func (s *Submitter) Deploy(ctx context.Context, d *descriptor.Descriptor) (*Result, error) {
	if d == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "descriptor is required")
	}
	if s.clientset == nil {
		return nil, apperrors.New(apperrors.ErrCodeUnavailable, "kubernetes client is not configured")
	}

	bundle, err := manifest.Build(d, manifest.Options{
		Namespace:     s.config.Namespace,
		ContainerPort: s.config.ContainerPort,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to build manifests", err)
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	start := time.Now()
	log := slog.With("app", d.AppName, "namespace", s.config.Namespace, "mode", string(s.config.Mode))
	log.Info("deploying application")

	steps := s.plan(bundle)
	applied := make([]AppliedObject, 0, len(steps))
	var created []step

	for _, st := range steps {
		action, err := st.apply(ctx)
		if err != nil {
			stepsTotal.WithLabelValues(st.kind, "failed").Inc()
			log.Error("deploy step failed", "kind", st.kind, "name", st.name, "error", err)

			failure := s.fail(ctx, d.AppName, st, applied, created, err)
			observeDeploy(resultFailed, start)
			return nil, failure
		}

		stepsTotal.WithLabelValues(st.kind, string(action)).Inc()
		log.Debug("deploy step applied", "kind", st.kind, "name", st.name, "action", string(action))

		applied = append(applied, st.object(action))
		if action == ActionCreated {
			created = append(created, st)
		}
	}

	observeDeploy(resultSuccess, start)
	log.Info("application deployed", "objects", len(applied), "duration", time.Since(start))

	return newResult(d.AppName, applied), nil
}

// fail classifies cause and, when enabled, deletes what this request created.
func (s *Submitter) fail(ctx context.Context, appName string, failed step,
	applied []AppliedObject, created []step, cause error) *Failure {

	verb := "create"
	if s.config.Mode == ModeApply {
		verb = "apply"
	}

	failure := &Failure{
		AppName: appName,
		Step:    failed.kind,
		Applied: applied,
		Err: apperrors.WrapKubernetes(
			fmt.Sprintf("failed to %s %s %q", verb, failed.kind, failed.name),
			cause,
			map[string]any{
				"app":       appName,
				"kind":      failed.kind,
				"name":      failed.name,
				"namespace": failed.namespace,
			}),
	}

	if s.config.Rollback && len(created) > 0 {
		failure.RolledBack, failure.RollbackErrors = compensate(ctx, created)
		if len(failure.RollbackErrors) > 0 {
			failure.Err.Context["rollbackErrors"] = failure.RollbackErrors
		}
	}

	return failure
}

// compensate deletes created objects in reverse order. It runs detached from
// ctx cancellation so a timed out request still cleans up.
func compensate(ctx context.Context, created []step) ([]AppliedObject, []string) {
	rollbackTotal.Inc()

	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.K8sCleanupTimeout)
	defer cancel()

	var (
		deleted []AppliedObject
		errs    []string
	)
	for i := len(created) - 1; i >= 0; i-- {
		st := created[i]
		if err := st.remove(cleanupCtx); err != nil {
			slog.Warn("rollback delete failed", "kind", st.kind, "name", st.name,
				"namespace", st.namespace, "error", err)
			errs = append(errs, fmt.Sprintf("%s %q: %v", st.kind, st.name, err))
			continue
		}
		slog.Info("rolled back object", "kind", st.kind, "name", st.name, "namespace", st.namespace)
		deleted = append(deleted, st.object(ActionDeleted))
	}

	return deleted, errs
}
