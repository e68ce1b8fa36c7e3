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
	"strings"
	"testing"
	"time"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	"k8s.io/utils/ptr"
)

func deployment(replicas int32, status appsv1.DeploymentStatus) *appsv1.Deployment {
	return &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "apps", Generation: 2},
		Spec:       appsv1.DeploymentSpec{Replicas: ptr.To(replicas)},
		Status:     status,
	}
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name      string
		d         *appsv1.Deployment
		wantReady bool
		wantErr   error
	}{
		{
			name: "ready",
			d: deployment(2, appsv1.DeploymentStatus{
				ObservedGeneration: 2, Replicas: 2, UpdatedReplicas: 2, AvailableReplicas: 2,
			}),
			wantReady: true,
		},
		{
			name: "stale generation",
			d: deployment(2, appsv1.DeploymentStatus{
				ObservedGeneration: 1, Replicas: 2, UpdatedReplicas: 2, AvailableReplicas: 2,
			}),
		},
		{
			name: "old replicas remain",
			d: deployment(2, appsv1.DeploymentStatus{
				ObservedGeneration: 2, Replicas: 3, UpdatedReplicas: 2, AvailableReplicas: 2,
			}),
		},
		{
			name: "not available",
			d: deployment(2, appsv1.DeploymentStatus{
				ObservedGeneration: 2, Replicas: 2, UpdatedReplicas: 2, AvailableReplicas: 1,
			}),
		},
		{
			name:      "zero replicas",
			d:         deployment(0, appsv1.DeploymentStatus{ObservedGeneration: 2}),
			wantReady: true,
		},
		{
			name: "progress deadline",
			d: deployment(2, appsv1.DeploymentStatus{
				ObservedGeneration: 2,
				Conditions: []appsv1.DeploymentCondition{{
					Type:    appsv1.DeploymentProgressing,
					Status:  corev1.ConditionFalse,
					Reason:  "ProgressDeadlineExceeded",
					Message: "ReplicaSet demo-abc has timed out progressing",
				}},
			}),
			wantErr: ErrProgressDeadline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, err := StatusOf(tt.d)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("StatusOf() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("StatusOf() error = %v", err)
			}
			if st.Ready != tt.wantReady {
				t.Errorf("Ready = %v, want %v", st.Ready, tt.wantReady)
			}
		})
	}
}

func TestWaitForDeployment(t *testing.T) {
	ctx := context.Background()

	t.Run("already ready", func(t *testing.T) {
		cs := fake.NewClientset(deployment(2, appsv1.DeploymentStatus{
			ObservedGeneration: 2, Replicas: 2, UpdatedReplicas: 2, AvailableReplicas: 2,
		}))

		st, err := WaitForDeployment(ctx, cs, "apps", "demo", time.Second)
		if err != nil {
			t.Fatalf("WaitForDeployment() error = %v", err)
		}
		if !st.Ready || st.Available != 2 {
			t.Errorf("status = %+v, want ready with 2 available", st)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		cs := fake.NewClientset(deployment(2, appsv1.DeploymentStatus{ObservedGeneration: 2}))

		_, err := WaitForDeployment(ctx, cs, "apps", "demo", 50*time.Millisecond)
		if err == nil || !strings.Contains(err.Error(), "timeout") {
			t.Fatalf("WaitForDeployment() error = %v, want timeout", err)
		}
	})

	t.Run("missing", func(t *testing.T) {
		_, err := WaitForDeployment(ctx, fake.NewClientset(), "apps", "demo", time.Second)
		if err == nil || !strings.Contains(err.Error(), "failed to get Deployment") {
			t.Fatalf("WaitForDeployment() error = %v, want get failure", err)
		}
	})
}
