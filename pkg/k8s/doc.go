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

// Package k8s groups the Kubernetes integration of the Application Deployer.
//
// # Sub-packages
//
// client: cluster client construction with kubeconfig and in-cluster discovery
//
//	clientset, err := client.Default()
//
// rollout: waiting for a Deployment to become available
//
//	st, err := rollout.WaitForDeployment(ctx, clientset, "apps", "demo", time.Minute)
//
// Object synthesis lives in pkg/manifest and object submission in
// pkg/submitter.
package k8s
