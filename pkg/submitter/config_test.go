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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "create", want: ModeCreate},
		{in: "APPLY", want: ModeApply},
		{in: " apply ", want: ModeApply},
		{in: "", wantErr: true},
		{in: "upsert", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "default", cfg.Namespace)
	assert.Equal(t, int32(80), cfg.ContainerPort)
	assert.Equal(t, ModeCreate, cfg.Mode)
	assert.True(t, cfg.Rollback)
	assert.Zero(t, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvNamespace, "apps")
	t.Setenv(EnvContainerPort, "8080")
	t.Setenv(EnvMode, "apply")
	t.Setenv(EnvRollback, "false")
	t.Setenv(EnvSubmitTimeout, "45s")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Namespace:     "apps",
		ContainerPort: 8080,
		Mode:          ModeApply,
		Rollback:      false,
		Timeout:       45 * time.Second,
	}, cfg)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		env   string
		value string
	}{
		{EnvNamespace, "Not_A_Namespace"},
		{EnvContainerPort, "http"},
		{EnvContainerPort, "70000"},
		{EnvMode, "replace"},
		{EnvRollback, "maybe"},
		{EnvSubmitTimeout, "soon"},
		{EnvSubmitTimeout, "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.env+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.env, tt.value)
			_, err := ConfigFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestOptions(t *testing.T) {
	s := New(nil,
		WithNamespace("apps"),
		WithContainerPort(8080),
		WithMode(ModeApply),
		WithRollback(false),
		WithTimeout(time.Minute),
	)

	assert.Equal(t, Config{
		Namespace:     "apps",
		ContainerPort: 8080,
		Mode:          ModeApply,
		Timeout:       time.Minute,
	}, s.Config())

	s = New(nil, WithConfig(Config{Namespace: "x"}), WithMode(ModeApply))
	assert.Equal(t, "x", s.Config().Namespace)
	assert.Equal(t, ModeApply, s.Config().Mode)
}
