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
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/app-deployer/pkg/descriptor"
)

// Deployment builds the single-container Deployment for d. When withSecret
// is set the container also loads its environment from the Secret named
// after the application.
func Deployment(d *descriptor.Descriptor, opts Options, withSecret bool) (*appsv1.Deployment, error) {
	opts = opts.withDefaults()

	requests, err := resourceRequests(d.Resources)
	if err != nil {
		return nil, fmt.Errorf("failed to build deployment %q: %w", d.AppName, err)
	}

	container := corev1.Container{
		Name:  d.AppName,
		Image: d.Image(),
		Ports: []corev1.ContainerPort{
			{ContainerPort: opts.ContainerPort},
		},
		Env: envVars(d),
		Resources: corev1.ResourceRequirements{
			Requests: requests,
		},
	}
	if withSecret {
		container.EnvFrom = []corev1.EnvFromSource{
			{
				SecretRef: &corev1.SecretEnvSource{
					LocalObjectReference: corev1.LocalObjectReference{Name: d.AppName},
				},
			},
		}
	}

	return &appsv1.Deployment{
		TypeMeta: metav1.TypeMeta{
			APIVersion: appsv1.SchemeGroupVersion.String(),
			Kind:       KindDeployment,
		},
		ObjectMeta: objectMeta(d, opts),
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(d.Replicas),
			Selector: &metav1.LabelSelector{
				MatchLabels: Labels(d.AppName),
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: Labels(d.AppName),
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{container},
				},
			},
		},
	}, nil
}

// envVars converts envs to container env vars in document order so that
// $(VAR) references resolve against earlier entries.
func envVars(d *descriptor.Descriptor) []corev1.EnvVar {
	if len(d.Envs) == 0 {
		return nil
	}
	vars := make([]corev1.EnvVar, 0, len(d.Envs))
	for _, name := range d.EnvNames() {
		vars = append(vars, corev1.EnvVar{Name: name, Value: d.Envs[name]})
	}
	return vars
}

func resourceRequests(resources map[string]string) (corev1.ResourceList, error) {
	if len(resources) == 0 {
		return nil, nil
	}
	list := make(corev1.ResourceList, len(resources))
	for name, value := range resources {
		q, err := resource.ParseQuantity(value)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity %q for resource %q: %w", value, name, err)
		}
		list[corev1.ResourceName(name)] = q
	}
	return list, nil
}
