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
	"encoding/base64"
	"fmt"
	"sort"
)

// Descriptor describes one application to deploy.
type Descriptor struct {
	// AppName names every object created for the application and labels its pods.
	AppName string `json:"app_name" yaml:"app_name"`

	// Replicas is the desired number of pods.
	Replicas int32 `json:"replicas" yaml:"replicas"`

	// ImageAddress is the image repository, without tag.
	ImageAddress string `json:"image_address" yaml:"image_address"`

	// ImageTag is appended to ImageAddress.
	ImageTag string `json:"image_tag" yaml:"image_tag"`

	// DomainAddress is the Ingress host. Only used when ExternalAccess is set.
	DomainAddress string `json:"domain_address,omitempty" yaml:"domain_address,omitempty"`

	// ServicePort is the port exposed by the ClusterIP Service.
	ServicePort int32 `json:"service_port" yaml:"service_port"`

	// Resources are container resource requests (cpu, memory, ...).
	Resources map[string]string `json:"resources" yaml:"resources"`

	// Envs are container environment variables.
	Envs map[string]string `json:"envs" yaml:"envs"`

	// EnvOrder holds the Envs names in document order. Kubernetes only
	// expands $(VAR) references to variables listed earlier.
	EnvOrder []string `json:"-" yaml:"-"`

	// Secrets are base64 encoded values stored in a Secret named AppName.
	Secrets map[string]string `json:"secrets,omitempty" yaml:"secrets,omitempty"`

	// ExternalAccess adds an Ingress routing DomainAddress to the Service.
	ExternalAccess bool `json:"external_access" yaml:"external_access"`
}

// Image returns the container image reference "<image_address>:<image_tag>".
func (d *Descriptor) Image() string {
	return d.ImageAddress + ":" + d.ImageTag
}

// HasSecrets reports whether a Secret is created for the application.
func (d *Descriptor) HasSecrets() bool {
	return len(d.Secrets) > 0
}

// SecretData decodes the base64 secret values into the byte form stored in
// Secret.Data. The client encodes Data as base64 on the wire, so the API
// server receives the caller's strings unchanged.
func (d *Descriptor) SecretData() (map[string][]byte, error) {
	if !d.HasSecrets() {
		return nil, nil
	}

	data := make(map[string][]byte, len(d.Secrets))
	for _, key := range SortedKeys(d.Secrets) {
		decoded, err := base64.StdEncoding.DecodeString(d.Secrets[key])
		if err != nil {
			return nil, fmt.Errorf("secret %q is not valid base64: %w", key, err)
		}
		data[key] = decoded
	}
	return data, nil
}

// EnvNames returns the Envs names in document order. Names absent from
// EnvOrder, as when Envs is filled in code, follow in lexical order.
func (d *Descriptor) EnvNames() []string {
	names := make([]string, 0, len(d.Envs))
	seen := make(map[string]bool, len(d.Envs))
	for _, name := range d.EnvOrder {
		if _, ok := d.Envs[name]; ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, name := range SortedKeys(d.Envs) {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
