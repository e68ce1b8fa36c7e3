/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/app-deployer/pkg/defaults"
	"github.com/NVIDIA/app-deployer/pkg/header"
	"github.com/NVIDIA/app-deployer/pkg/k8s/client"
	"github.com/NVIDIA/app-deployer/pkg/k8s/rollout"
	"github.com/NVIDIA/app-deployer/pkg/serializer"
	"github.com/NVIDIA/app-deployer/pkg/submitter"
)

// DeployResult reports the outcome of a deploy run.
type DeployResult struct {
	header.Header `json:",inline" yaml:",inline"`

	App            string                    `json:"app" yaml:"app"`
	Namespace      string                    `json:"namespace" yaml:"namespace"`
	Mode           submitter.Mode            `json:"mode" yaml:"mode"`
	Status         string                    `json:"status" yaml:"status"`
	Message        string                    `json:"message" yaml:"message"`
	Code           string                    `json:"code,omitempty" yaml:"code,omitempty"`
	Step           string                    `json:"step,omitempty" yaml:"step,omitempty"`
	Applied        []submitter.AppliedObject `json:"applied" yaml:"applied"`
	RolledBack     []submitter.AppliedObject `json:"rolledBack,omitempty" yaml:"rolledBack,omitempty"`
	RollbackErrors []string                  `json:"rollbackErrors,omitempty" yaml:"rollbackErrors,omitempty"`
	Rollout        *rollout.Status           `json:"rollout,omitempty" yaml:"rollout,omitempty"`
}

const statusFailed = "failed"

// newClientset builds the cluster client for deploy; replaced in tests.
var newClientset = func(kubeconfig string) (client.Interface, error) {
	return client.New(client.Options{Kubeconfig: kubeconfig})
}

func deployCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deploy",
		EnableShellCompletion: true,
		Usage:                 "Deploy an application descriptor to a cluster",
		Description: `Submit the objects for a descriptor to a Kubernetes cluster, in order:
Secret (when secrets are set), Deployment, Service and Ingress (when
external_access is true).

The first failing write stops the deploy. With --rollback, objects created by
the failed run are deleted again in reverse order.

# Modes

  create - objects must not exist yet; a second deploy of the same app fails
  apply  - existing objects are updated in place

# Examples

  appctl deploy -f app.yaml
  appctl deploy -f app.yaml -n staging --mode apply
  appctl deploy -f app.yaml --kubeconfig ~/.kube/dev --timeout 1m --format json
  appctl deploy -f app.yaml --wait 2m`,
		Flags: []cli.Flag{
			fileFlag(),
			kubeconfigFlag(),
			namespaceFlag(),
			containerPortFlag(),
			&cli.StringFlag{
				Name:    "mode",
				Value:   string(submitter.ModeCreate),
				Usage:   fmt.Sprintf("Deploy mode (supported: %s, %s)", submitter.ModeCreate, submitter.ModeApply),
				Sources: cli.EnvVars(submitter.EnvMode),
			},
			&cli.BoolFlag{
				Name:    "rollback",
				Value:   true,
				Usage:   "Delete objects created by a failed deploy",
				Sources: cli.EnvVars(submitter.EnvRollback),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   defaults.SubmitTimeout,
				Usage:   "Deadline for the whole deploy (0 means none)",
				Sources: cli.EnvVars(submitter.EnvSubmitTimeout),
			},
			&cli.DurationFlag{
				Name:  "wait",
				Usage: "Wait up to this long for the Deployment to become available (0 means do not wait)",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			mode, err := submitter.ParseMode(cmd.String("mode"))
			if err != nil {
				return err
			}

			port, err := parseContainerPort(cmd)
			if err != nil {
				return err
			}

			cfg := submitter.Config{
				Namespace:     cmd.String("namespace"),
				ContainerPort: port,
				Mode:          mode,
				Rollback:      cmd.Bool("rollback"),
				Timeout:       cmd.Duration("timeout"),
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid deploy configuration: %w", err)
			}

			d, err := loadDescriptor(cmd)
			if err != nil {
				return err
			}

			clientset, err := newClientset(cmd.String("kubeconfig"))
			if err != nil {
				return fmt.Errorf("failed to create kubernetes client: %w", err)
			}

			res := &DeployResult{
				App:       d.AppName,
				Namespace: cfg.Namespace,
				Mode:      cfg.Mode,
			}
			res.Init(header.KindDeployResult, header.APIVersion, version)

			result, deployErr := submitter.New(clientset, submitter.WithConfig(cfg)).Deploy(ctx, d)

			var (
				failure *submitter.Failure
				waitErr error
			)
			switch {
			case deployErr == nil:
				res.Status = result.Status
				res.Message = result.Message
				res.Applied = result.Applied

				if timeout := cmd.Duration("wait"); timeout > 0 {
					slog.Info("waiting for rollout", "app", d.AppName, "timeout", timeout)
					st, err := rollout.WaitForDeployment(ctx, clientset, cfg.Namespace, d.AppName, timeout)
					res.Rollout = &st
					waitErr = err
				}
			case errors.As(deployErr, &failure):
				res.Status = statusFailed
				res.Message = failure.Detail()
				res.Code = string(failure.Code())
				res.Step = failure.Step
				res.Applied = failure.Applied
				res.RolledBack = failure.RolledBack
				res.RollbackErrors = failure.RollbackErrors
			default:
				return fmt.Errorf("failed to deploy %q: %w", d.AppName, deployErr)
			}

			if err := withWriter(cmd, outFormat, func(w *serializer.Writer) error {
				return w.Serialize(ctx, res)
			}); err != nil {
				slog.Error("failed to write deploy result", "error", err)
			}

			if deployErr != nil {
				return fmt.Errorf("deploy of %q failed at %s: %w", d.AppName, strings.ToLower(failure.Step), deployErr)
			}
			if waitErr != nil {
				return fmt.Errorf("rollout of %q did not complete: %w", d.AppName, waitErr)
			}
			return nil
		},
	}
}
