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
	"context"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/NVIDIA/app-deployer/pkg/manifest"
)

// FieldManager identifies the deployer in managedFields.
const FieldManager = "app-deployer"

// objectClient is the subset of a typed client-go client used by a step.
type objectClient[T metav1.Object] interface {
	Create(ctx context.Context, obj T, opts metav1.CreateOptions) (T, error)
	Update(ctx context.Context, obj T, opts metav1.UpdateOptions) (T, error)
	Get(ctx context.Context, name string, opts metav1.GetOptions) (T, error)
	Delete(ctx context.Context, name string, opts metav1.DeleteOptions) error
}

// step writes one object and knows how to remove it again.
type step struct {
	kind      string
	name      string
	namespace string
	apply     func(ctx context.Context) (Action, error)
	remove    func(ctx context.Context) error
}

func (s step) object(action Action) AppliedObject {
	return AppliedObject{Kind: s.kind, Name: s.name, Namespace: s.namespace, Action: action}
}

// plan returns the steps for a bundle in submission order.
func (s *Submitter) plan(b *manifest.Bundle) []step {
	steps := make([]step, 0, 4)
	ns := s.config.Namespace

	if b.Secret != nil {
		steps = append(steps, newStep[*corev1.Secret](manifest.KindSecret, s.config.Mode,
			s.clientset.CoreV1().Secrets(ns), b.Secret, nil))
	}
	steps = append(steps, newStep[*appsv1.Deployment](manifest.KindDeployment, s.config.Mode,
		s.clientset.AppsV1().Deployments(ns), b.Deployment, nil))
	steps = append(steps, newStep[*corev1.Service](manifest.KindService, s.config.Mode,
		s.clientset.CoreV1().Services(ns), b.Service, preserveClusterIP))
	if b.Ingress != nil {
		steps = append(steps, newStep[*networkingv1.Ingress](manifest.KindIngress, s.config.Mode,
			s.clientset.NetworkingV1().Ingresses(ns), b.Ingress, nil))
	}

	return steps
}

func newStep[T metav1.Object](kind string, mode Mode, client objectClient[T], desired T,
	merge func(existing, desired T)) step {

	return step{
		kind:      kind,
		name:      desired.GetName(),
		namespace: desired.GetNamespace(),
		apply: func(ctx context.Context) (Action, error) {
			return ensure(ctx, mode, client, desired, merge)
		},
		remove: func(ctx context.Context) error {
			err := client.Delete(ctx, desired.GetName(), metav1.DeleteOptions{
				PropagationPolicy: ptr.To(metav1.DeletePropagationBackground),
			})
			return ignoreNotFound(err)
		},
	}
}

// ensure creates desired. In apply mode an existing object is updated in
// place instead, carrying over its resourceVersion.
func ensure[T metav1.Object](ctx context.Context, mode Mode, client objectClient[T], desired T,
	merge func(existing, desired T)) (Action, error) {

	if mode == ModeApply {
		existing, err := client.Get(ctx, desired.GetName(), metav1.GetOptions{})
		switch {
		case err == nil:
			desired.SetResourceVersion(existing.GetResourceVersion())
			if merge != nil {
				merge(existing, desired)
			}
			if _, err := client.Update(ctx, desired, metav1.UpdateOptions{FieldManager: FieldManager}); err != nil {
				return "", err
			}
			return ActionUpdated, nil
		case !apierrors.IsNotFound(err):
			return "", err
		}
	}

	if _, err := client.Create(ctx, desired, metav1.CreateOptions{FieldManager: FieldManager}); err != nil {
		return "", err
	}
	return ActionCreated, nil
}

// preserveClusterIP keeps the allocated cluster IPs, which are immutable.
func preserveClusterIP(existing, desired *corev1.Service) {
	desired.Spec.ClusterIP = existing.Spec.ClusterIP
	desired.Spec.ClusterIPs = existing.Spec.ClusterIPs
}

func ignoreNotFound(err error) error {
	if apierrors.IsNotFound(err) {
		return nil
	}
	return err
}
