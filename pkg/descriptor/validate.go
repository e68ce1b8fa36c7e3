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
	"net"
	"strconv"
	"strings"

	"github.com/distribution/reference"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/apimachinery/pkg/util/validation"
)

// Validate checks the descriptor against the rules enforced before any
// cluster call is made. All violations are collected into one
// *ValidationError.
func (d *Descriptor) Validate() error {
	verr := &ValidationError{}

	d.validateName(verr)
	if d.Replicas < 0 {
		verr.add(ErrTypeValue, "Input should be greater than or equal to 0", "replicas")
	}
	d.validateImage(verr)
	for _, msg := range validation.IsValidPortNum(int(d.ServicePort)) {
		verr.add(ErrTypeValue, msg, "service_port")
	}
	d.validateDomain(verr)
	d.validateResources(verr)

	for _, key := range d.EnvNames() {
		for _, msg := range validation.IsEnvVarName(key) {
			verr.add(ErrTypeValue, msg, "envs", key)
		}
	}

	for _, key := range SortedKeys(d.Secrets) {
		for _, msg := range validation.IsConfigMapKey(key) {
			verr.add(ErrTypeValue, msg, "secrets", key)
		}
		if _, err := base64.StdEncoding.DecodeString(d.Secrets[key]); err != nil {
			verr.add(ErrTypeValue, "Value must be base64 encoded", "secrets", key)
		}
	}

	return verr.orNil()
}

func (d *Descriptor) validateName(verr *ValidationError) {
	if d.AppName == "" {
		verr.add(ErrTypeValue, "String should have at least 1 character", "app_name")
		return
	}
	// The name is shared by the Deployment, Service, Secret and Ingress;
	// Service names are the strictest.
	for _, msg := range validation.IsDNS1035Label(d.AppName) {
		verr.add(ErrTypeValue, msg, "app_name")
	}
}

func (d *Descriptor) validateImage(verr *ValidationError) {
	if d.ImageAddress == "" {
		verr.add(ErrTypeValue, "String should have at least 1 character", "image_address")
	} else {
		named, err := reference.ParseNormalizedNamed(d.ImageAddress)
		switch {
		case err != nil:
			verr.add(ErrTypeValue, "invalid image repository: "+err.Error(), "image_address")
		case !reference.IsNameOnly(named):
			verr.add(ErrTypeValue, "image repository must not carry a tag or digest", "image_address")
		default:
			if d.ImageTag != "" {
				if _, err := reference.WithTag(named, d.ImageTag); err != nil {
					verr.add(ErrTypeValue, "invalid image tag: "+err.Error(), "image_tag")
				}
			}
		}
	}

	if d.ImageTag == "" {
		verr.add(ErrTypeValue, "String should have at least 1 character", "image_tag")
	}
}

// validateDomain checks domain_address only when an Ingress will use it.
func (d *Descriptor) validateDomain(verr *ValidationError) {
	if !d.ExternalAccess {
		return
	}
	if d.DomainAddress == "" {
		verr.add(ErrTypeMissing, "Field required when external_access is true", "domain_address")
		return
	}

	if net.ParseIP(d.DomainAddress) != nil {
		verr.add(ErrTypeValue, "must be a DNS name, not an IP address", "domain_address")
		return
	}

	host := d.DomainAddress
	if strings.HasPrefix(host, "*.") {
		for _, msg := range validation.IsWildcardDNS1123Subdomain(host) {
			verr.add(ErrTypeValue, msg, "domain_address")
		}
		return
	}
	for _, msg := range validation.IsDNS1123Subdomain(host) {
		verr.add(ErrTypeValue, msg, "domain_address")
	}
}

func (d *Descriptor) validateResources(verr *ValidationError) {
	for _, key := range SortedKeys(d.Resources) {
		for _, msg := range validation.IsQualifiedName(key) {
			verr.add(ErrTypeValue, msg, "resources", key)
		}

		q, err := resource.ParseQuantity(d.Resources[key])
		if err != nil {
			verr.add(ErrTypeValue, "invalid quantity "+strconv.Quote(d.Resources[key])+": "+err.Error(), "resources", key)
			continue
		}
		if q.Sign() < 0 {
			verr.add(ErrTypeValue, "quantity must not be negative", "resources", key)
		}
	}
}
