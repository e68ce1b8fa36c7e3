/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/NVIDIA/app-deployer/pkg/defaults"
	"github.com/NVIDIA/app-deployer/pkg/descriptor"
	"github.com/NVIDIA/app-deployer/pkg/serializer"
	"github.com/NVIDIA/app-deployer/pkg/submitter"
)

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "file",
		Aliases:  []string{"f"},
		Required: true,
		Usage:    "Path to the application descriptor (.yaml, .yml or .json)",
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func kubeconfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "kubeconfig",
		Aliases: []string{"k"},
		Usage:   "Path to kubeconfig file (default: KUBECONFIG, then ~/.kube/config, then in-cluster)",
	}
}

func namespaceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "namespace",
		Aliases: []string{"n"},
		Value:   defaults.Namespace,
		Usage:   "Namespace receiving the application objects",
		Sources: cli.EnvVars(submitter.EnvNamespace),
	}
}

func containerPortFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "container-port",
		Value:   int(defaults.ContainerPort),
		Usage:   "Port the application container listens on",
		Sources: cli.EnvVars(submitter.EnvContainerPort),
	}
}

// parseOutputFormat returns the --format value, rejecting unknown formats.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// parseContainerPort returns --container-port, range-checked before it is
// narrowed to int32.
func parseContainerPort(cmd *cli.Command) (int32, error) {
	port := cmd.Int("container-port")
	if errs := validation.IsValidPortNum(port); len(errs) > 0 {
		return 0, fmt.Errorf("invalid container port %d: %s", port, strings.Join(errs, "; "))
	}
	return int32(port), nil
}

// loadDescriptor reads and validates the --file descriptor.
func loadDescriptor(cmd *cli.Command) (*descriptor.Descriptor, error) {
	path := cmd.String("file")
	slog.Debug("loading descriptor", "path", path)

	d, err := descriptor.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load descriptor from %q: %w", path, err)
	}
	return d, nil
}

// withWriter opens the --output destination, runs fn and closes it.
func withWriter(cmd *cli.Command, format serializer.Format, fn func(*serializer.Writer) error) error {
	w := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()
	return fn(w)
}
