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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/app-deployer/pkg/descriptor"
	"github.com/NVIDIA/app-deployer/pkg/header"
	"github.com/NVIDIA/app-deployer/pkg/serializer"
)

// ValidationResult reports the outcome of validating one descriptor file.
type ValidationResult struct {
	header.Header `json:",inline" yaml:",inline"`

	File   string                  `json:"file" yaml:"file"`
	Valid  bool                    `json:"valid" yaml:"valid"`
	App    string                  `json:"app,omitempty" yaml:"app,omitempty"`
	Errors []descriptor.FieldError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:                  "validate",
		EnableShellCompletion: true,
		Usage:                 "Validate an application descriptor",
		Description: `Decode and validate an application descriptor without contacting a cluster.

Every field error is reported, not only the first one. The command exits with
a non-zero status when the descriptor is invalid.

# Examples

  appctl validate -f app.yaml
  appctl validate -f app.json --format json`,
		Flags: []cli.Flag{
			fileFlag(),
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			path := cmd.String("file")
			res := &ValidationResult{File: path}
			res.Init(header.KindValidationResult, header.APIVersion, version)

			d, err := descriptor.Load(path)
			var verr *descriptor.ValidationError
			switch {
			case err == nil:
				res.Valid = true
				res.App = d.AppName
			case errors.As(err, &verr):
				res.Errors = verr.Errors
			default:
				return fmt.Errorf("failed to load descriptor from %q: %w", path, err)
			}

			slog.Debug("descriptor validated", "path", path, "valid", res.Valid, "errors", len(res.Errors))

			if err := withWriter(cmd, outFormat, func(w *serializer.Writer) error {
				return w.Serialize(ctx, res)
			}); err != nil {
				return fmt.Errorf("failed to write validation result: %w", err)
			}

			if !res.Valid {
				return fmt.Errorf("descriptor %q is invalid: %d error(s)", path, len(res.Errors))
			}
			return nil
		},
	}
}
