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
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/NVIDIA/app-deployer/pkg/defaults"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvNamespace     = "DEPLOY_NAMESPACE"
	EnvContainerPort = "CONTAINER_PORT"
	EnvMode          = "DEPLOY_MODE"
	EnvRollback      = "ROLLBACK_ON_FAILURE"
	EnvSubmitTimeout = "SUBMIT_TIMEOUT"
)

// Mode selects how objects are written to the cluster.
type Mode string

const (
	// ModeCreate only creates objects; an existing object fails the deploy.
	ModeCreate Mode = "create"
	// ModeApply creates missing objects and updates existing ones.
	ModeApply Mode = "apply"
)

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeCreate, ModeApply:
		return m, nil
	default:
		return "", fmt.Errorf("invalid deploy mode %q: must be %q or %q", s, ModeCreate, ModeApply)
	}
}

// Config holds the cluster-side settings of a Submitter.
type Config struct {
	// Namespace receives every object.
	Namespace string
	// ContainerPort is the application container port and Service target port.
	ContainerPort int32
	// Mode is create-only or apply.
	Mode Mode
	// Rollback deletes the objects created by a failed deploy.
	Rollback bool
	// Timeout bounds a whole deploy. Zero leaves the caller's context as is.
	Timeout time.Duration
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Namespace:     defaults.Namespace,
		ContainerPort: defaults.ContainerPort,
		Mode:          ModeCreate,
		Rollback:      true,
		Timeout:       defaults.SubmitTimeout,
	}
}

// ConfigFromEnv returns DefaultConfig with environment overrides applied.
// Malformed values are reported rather than ignored.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvNamespace); v != "" {
		cfg.Namespace = v
	}

	if v := os.Getenv(EnvContainerPort); v != "" {
		port, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvContainerPort, v, err)
		}
		cfg.ContainerPort = int32(port)
	}

	if v := os.Getenv(EnvMode); v != "" {
		mode, err := ParseMode(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvMode, err)
		}
		cfg.Mode = mode
	}

	if v := os.Getenv(EnvRollback); v != "" {
		rollback, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvRollback, v, err)
		}
		cfg.Rollback = rollback
	}

	if v := os.Getenv(EnvSubmitTimeout); v != "" {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSubmitTimeout, v, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if msgs := validation.IsDNS1123Label(c.Namespace); len(msgs) > 0 {
		return fmt.Errorf("invalid namespace %q: %s", c.Namespace, strings.Join(msgs, "; "))
	}
	if msgs := validation.IsValidPortNum(int(c.ContainerPort)); len(msgs) > 0 {
		return fmt.Errorf("invalid container port %d: %s", c.ContainerPort, strings.Join(msgs, "; "))
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid submit timeout %s: must not be negative", c.Timeout)
	}
	return nil
}

// Option configures a Submitter.
type Option func(*Submitter)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *Submitter) {
		s.config = cfg
	}
}

// WithNamespace sets the target namespace.
func WithNamespace(namespace string) Option {
	return func(s *Submitter) {
		s.config.Namespace = namespace
	}
}

// WithContainerPort sets the container port.
func WithContainerPort(port int32) Option {
	return func(s *Submitter) {
		s.config.ContainerPort = port
	}
}

// WithMode sets create or apply mode.
func WithMode(mode Mode) Option {
	return func(s *Submitter) {
		s.config.Mode = mode
	}
}

// WithRollback enables or disables compensation on failure.
func WithRollback(enabled bool) Option {
	return func(s *Submitter) {
		s.config.Rollback = enabled
	}
}

// WithTimeout bounds each deploy.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Submitter) {
		s.config.Timeout = timeout
	}
}
