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

package rollout

import (
	"context"
	"errors"
	"fmt"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/client-go/kubernetes"
)

// DefaultInterval is the poll interval between Deployment status reads.
const DefaultInterval = 500 * time.Millisecond

// ErrProgressDeadline is returned when the Deployment controller reports
// that the rollout exceeded its progress deadline.
var ErrProgressDeadline = errors.New("deployment exceeded its progress deadline")

// Status summarizes a Deployment rollout.
type Status struct {
	Name      string `json:"name" yaml:"name"`
	Desired   int32  `json:"desired" yaml:"desired"`
	Updated   int32  `json:"updated" yaml:"updated"`
	Available int32  `json:"available" yaml:"available"`
	Ready     bool   `json:"ready" yaml:"ready"`
}

// StatusOf evaluates d the way kubectl rollout status does.
func StatusOf(d *appsv1.Deployment) (Status, error) {
	desired := int32(1)
	if d.Spec.Replicas != nil {
		desired = *d.Spec.Replicas
	}

	st := Status{
		Name:      d.Name,
		Desired:   desired,
		Updated:   d.Status.UpdatedReplicas,
		Available: d.Status.AvailableReplicas,
	}

	for _, c := range d.Status.Conditions {
		if c.Type == appsv1.DeploymentProgressing && c.Status == corev1.ConditionFalse &&
			c.Reason == "ProgressDeadlineExceeded" {
			return st, fmt.Errorf("%w: %s", ErrProgressDeadline, c.Message)
		}
	}

	// the controller has not seen the latest spec yet
	if d.Generation > d.Status.ObservedGeneration {
		return st, nil
	}

	st.Ready = st.Updated >= desired &&
		d.Status.Replicas == st.Updated &&
		st.Available >= desired
	return st, nil
}

// WaitForDeployment polls the named Deployment until all desired replicas
// are updated and available, the rollout fails, or timeout elapses.
func WaitForDeployment(ctx context.Context, clientset kubernetes.Interface,
	namespace, name string, timeout time.Duration) (Status, error) {

	var last Status
	err := wait.PollUntilContextTimeout(ctx, DefaultInterval, timeout, true,
		func(ctx context.Context) (bool, error) {
			d, err := clientset.AppsV1().Deployments(namespace).Get(ctx, name, metav1.GetOptions{})
			if err != nil {
				return false, fmt.Errorf("failed to get Deployment %s/%s: %w", namespace, name, err)
			}

			st, err := StatusOf(d)
			last = st
			if err != nil {
				return false, err
			}
			return st.Ready, nil
		},
	)
	if err != nil {
		if wait.Interrupted(err) {
			return last, fmt.Errorf("timeout waiting for Deployment %s/%s after %v (%d/%d available)",
				namespace, name, timeout, last.Available, last.Desired)
		}
		return last, err
	}

	return last, nil
}
