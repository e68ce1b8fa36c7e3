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

package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoJSON = `{
  "app_name": "demo",
  "replicas": 2,
  "image_address": "nginx",
  "image_tag": "1.25",
  "domain_address": "demo.example.com",
  "service_port": 8080,
  "resources": {"cpu": "100m"},
  "envs": {"ENV": "prod"},
  "external_access": true
}`

const demoYAML = `app_name: demo
replicas: 2
image_address: nginx
image_tag: "1.25"
domain_address: demo.example.com
service_port: 8080
resources:
  cpu: 100m
envs:
  ENV: prod
external_access: true
`

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		want        Format
	}{
		{"application/json", FormatJSON},
		{"application/json; charset=utf-8", FormatJSON},
		{"", FormatJSON},
		{"application/yaml", FormatYAML},
		{"application/x-yaml", FormatYAML},
		{"text/yaml; charset=utf-8", FormatYAML},
		{"text/plain", FormatJSON},
		{";;;", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			if got := FormatFromContentType(tt.contentType); got != tt.want {
				t.Errorf("FormatFromContentType(%q) = %q, want %q", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestDecode_Demo(t *testing.T) {
	for name, input := range map[string]struct {
		body   string
		format Format
	}{
		"json": {demoJSON, FormatJSON},
		"yaml": {demoYAML, FormatYAML},
	} {
		t.Run(name, func(t *testing.T) {
			d, err := Decode(strings.NewReader(input.body), input.format)
			require.NoError(t, err)

			assert.Equal(t, "demo", d.AppName)
			assert.Equal(t, int32(2), d.Replicas)
			assert.Equal(t, "nginx:1.25", d.Image())
			assert.Equal(t, "demo.example.com", d.DomainAddress)
			assert.Equal(t, int32(8080), d.ServicePort)
			assert.Equal(t, map[string]string{"cpu": "100m"}, d.Resources)
			assert.Equal(t, map[string]string{"ENV": "prod"}, d.Envs)
			assert.Nil(t, d.Secrets)
			assert.True(t, d.ExternalAccess)
		})
	}
}

func TestDecode_OptionalFields(t *testing.T) {
	body := `{"app_name":"api","replicas":0,"image_address":"ghcr.io/acme/api",
		"image_tag":"v1","service_port":80,"resources":{},"envs":{}}`

	d, err := Decode(strings.NewReader(body), FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, d.DomainAddress)
	assert.False(t, d.ExternalAccess)
	assert.False(t, d.HasSecrets())
	assert.Equal(t, int32(0), d.Replicas)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		format   Format
		wantType string
		wantLoc  []string
	}{
		{
			name:     "empty body",
			body:     "  ",
			format:   FormatJSON,
			wantType: ErrTypeMissing,
			wantLoc:  []string{"body"},
		},
		{
			name:     "malformed json",
			body:     `{"app_name":`,
			format:   FormatJSON,
			wantType: ErrTypeJSONInvalid,
			wantLoc:  []string{"body"},
		},
		{
			name:     "wrong json type",
			body:     strings.Replace(demoJSON, `"replicas": 2`, `"replicas": "two"`, 1),
			format:   FormatJSON,
			wantType: ErrTypeType,
			wantLoc:  []string{"body", "replicas"},
		},
		{
			name:     "missing json field",
			body:     strings.Replace(demoJSON, `"image_tag": "1.25",`, "", 1),
			format:   FormatJSON,
			wantType: ErrTypeMissing,
			wantLoc:  []string{"body", "image_tag"},
		},
		{
			name:     "wrong yaml type",
			body:     strings.Replace(demoYAML, "replicas: 2", "replicas: two", 1),
			format:   FormatYAML,
			wantType: ErrTypeType,
			wantLoc:  []string{"body", "replicas"},
		},
		{
			name:     "json array",
			body:     `[1, 2]`,
			format:   FormatJSON,
			wantType: ErrTypeType,
			wantLoc:  []string{"body"},
		},
		{
			name:     "yaml scalar",
			body:     "demo",
			format:   FormatYAML,
			wantType: ErrTypeType,
			wantLoc:  []string{"body"},
		},
		{
			name:     "yaml comments only",
			body:     "# nothing here\n",
			format:   FormatYAML,
			wantType: ErrTypeMissing,
			wantLoc:  []string{"body"},
		},
		{
			name:     "malformed yaml",
			body:     "app_name: [demo",
			format:   FormatYAML,
			wantType: ErrTypeYAMLInvalid,
			wantLoc:  []string{"body"},
		},
		{
			name:     "semantic failure after decode",
			body:     strings.Replace(demoJSON, `"replicas": 2`, `"replicas": -1`, 1),
			format:   FormatJSON,
			wantType: ErrTypeValue,
			wantLoc:  []string{"body", "replicas"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body), tt.format)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected *ValidationError, got %T", err)
			require.NotEmpty(t, verr.Errors)
			assert.Equal(t, tt.wantType, verr.Errors[0].Type)
			assert.Equal(t, tt.wantLoc, verr.Errors[0].Loc)
		})
	}
}

func TestDecode_DomainWithoutIngress(t *testing.T) {
	body := strings.NewReplacer(
		`"domain_address": "demo.example.com"`, `"domain_address": "N/A"`,
		`"external_access": true`, `"external_access": false`,
	).Replace(demoJSON)

	d, err := Decode(strings.NewReader(body), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "N/A", d.DomainAddress)
	assert.False(t, d.ExternalAccess)
}

func TestDecode_EnvOrder(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		format Format
	}{
		{
			name: "json",
			body: `{"app_name":"api","replicas":1,"image_address":"nginx","image_tag":"1",
				"service_port":80,"resources":{},
				"envs":{"Z_HOST":"db","A_URL":"http://$(Z_HOST)","M_PORT":"5432"}}`,
			format: FormatJSON,
		},
		{
			name: "yaml",
			body: `app_name: api
replicas: 1
image_address: nginx
image_tag: "1"
service_port: 80
resources: {}
envs:
  Z_HOST: db
  A_URL: http://$(Z_HOST)
  M_PORT: "5432"
`,
			format: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Decode(strings.NewReader(tt.body), tt.format)
			require.NoError(t, err)
			assert.Equal(t, []string{"Z_HOST", "A_URL", "M_PORT"}, d.EnvOrder)
			assert.Equal(t, []string{"Z_HOST", "A_URL", "M_PORT"}, d.EnvNames())
		})
	}
}

func TestDecode_KeysAreCaseSensitive(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		format Format
	}{
		{
			name:   "json",
			body:   strings.Replace(demoJSON, `"app_name"`, `"APP_NAME"`, 1),
			format: FormatJSON,
		},
		{
			name:   "yaml",
			body:   strings.Replace(demoYAML, "app_name:", "App_Name:", 1),
			format: FormatYAML,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.body), tt.format)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Errors, 1)
			assert.Equal(t, ErrTypeMissing, verr.Errors[0].Type)
			assert.Equal(t, []string{"body", "app_name"}, verr.Errors[0].Loc)
		})
	}
}

func TestDecode_ReportsAllMissingFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{}`), FormatJSON)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	var missing []string
	for _, fe := range verr.Errors {
		assert.Equal(t, ErrTypeMissing, fe.Type)
		missing = append(missing, fe.Loc[len(fe.Loc)-1])
	}
	assert.Equal(t, []string{"app_name", "replicas", "image_address", "image_tag", "service_port", "resources", "envs"}, missing)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "app.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(demoYAML), 0o600))
	jsonPath := filepath.Join(dir, "app.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(demoJSON), 0o600))

	for _, path := range []string{yamlPath, jsonPath} {
		d, err := Load(path)
		require.NoError(t, err, path)
		assert.Equal(t, "demo", d.AppName)
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr))
}
