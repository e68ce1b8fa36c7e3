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

package manifest

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	"github.com/NVIDIA/app-deployer/pkg/defaults"
	"github.com/NVIDIA/app-deployer/pkg/descriptor"
)

// Kind names of the synthesized objects.
const (
	KindSecret     = "Secret"
	KindDeployment = "Deployment"
	KindService    = "Service"
	KindIngress    = "Ingress"
)

// Options control cluster-wide settings that are not part of the descriptor.
type Options struct {
	// Namespace of every object. Defaults to defaults.Namespace.
	Namespace string

	// ContainerPort is the port the container listens on and the Service
	// target port. Defaults to defaults.ContainerPort.
	ContainerPort int32
}

func (o Options) withDefaults() Options {
	if o.Namespace == "" {
		o.Namespace = defaults.Namespace
	}
	if o.ContainerPort == 0 {
		o.ContainerPort = defaults.ContainerPort
	}
	return o
}

// Bundle holds the objects synthesized for one application.
type Bundle struct {
	// Secret is nil when the descriptor has no secrets.
	Secret     *corev1.Secret
	Deployment *appsv1.Deployment
	Service    *corev1.Service
	// Ingress is nil unless external access is requested.
	Ingress *networkingv1.Ingress
}

// Build synthesizes all objects for d.
func Build(d *descriptor.Descriptor, opts Options) (*Bundle, error) {
	if d == nil {
		return nil, fmt.Errorf("descriptor is nil")
	}
	opts = opts.withDefaults()

	b := &Bundle{}

	if d.HasSecrets() {
		secret, err := Secret(d, opts)
		if err != nil {
			return nil, err
		}
		b.Secret = secret
	}

	deployment, err := Deployment(d, opts, b.Secret != nil)
	if err != nil {
		return nil, err
	}
	b.Deployment = deployment
	b.Service = Service(d, opts)

	if d.ExternalAccess {
		b.Ingress = Ingress(d, opts)
	}

	return b, nil
}

// Objects returns the bundle's objects in submission order.
func (b *Bundle) Objects() []runtime.Object {
	objs := make([]runtime.Object, 0, 4)
	if b.Secret != nil {
		objs = append(objs, b.Secret)
	}
	if b.Deployment != nil {
		objs = append(objs, b.Deployment)
	}
	if b.Service != nil {
		objs = append(objs, b.Service)
	}
	if b.Ingress != nil {
		objs = append(objs, b.Ingress)
	}
	return objs
}

// Labels returns the pod template labels matched by the Deployment and
// Service selectors. Object metadata carries no labels.
func Labels(appName string) map[string]string {
	return map[string]string{defaults.AppLabelKey: appName}
}

func objectMeta(d *descriptor.Descriptor, opts Options) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name:      d.AppName,
		Namespace: opts.Namespace,
	}
}
