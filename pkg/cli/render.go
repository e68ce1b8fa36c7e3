/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/app-deployer/pkg/manifest"
	"github.com/NVIDIA/app-deployer/pkg/serializer"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Print the Kubernetes objects for an application descriptor",
		Description: `Render the Secret, Deployment, Service and Ingress synthesized from a
descriptor, in the order deploy would submit them.

YAML output is a multi-document stream accepted by kubectl apply -f.
JSON output is a v1 List. Table output lists kind, name and namespace.

# Examples

  appctl render -f app.yaml
  appctl render -f app.yaml -n staging -o manifests.yaml
  appctl render -f app.yaml --format table`,
		Flags: []cli.Flag{
			fileFlag(),
			namespaceFlag(),
			containerPortFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			port, err := parseContainerPort(cmd)
			if err != nil {
				return err
			}

			d, err := loadDescriptor(cmd)
			if err != nil {
				return err
			}

			bundle, err := manifest.Build(d, manifest.Options{
				Namespace:     cmd.String("namespace"),
				ContainerPort: port,
			})
			if err != nil {
				return fmt.Errorf("failed to build manifests for %q: %w", d.AppName, err)
			}

			return withWriter(cmd, outFormat, func(w *serializer.Writer) error {
				return serializer.WriteObjects(ctx, w, bundle.Objects())
			})
		},
	}
}
