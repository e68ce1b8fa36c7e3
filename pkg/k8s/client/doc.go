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

// Package client builds Kubernetes clientsets for the deployer.
//
// Default returns a process wide client created once with sync.Once and
// shared by every request handler:
//
//	clientset, err := client.Default()
//	if err != nil {
//	    return fmt.Errorf("failed to get kubernetes client: %w", err)
//	}
//
// New builds an independent client from explicit Options, which appctl
// uses for its --kubeconfig flag:
//
//	clientset, err := client.New(client.Options{Kubeconfig: path, Timeout: 30 * time.Second})
//
// # Configuration Discovery
//
// The kubeconfig is resolved in this order:
//  1. Options.Kubeconfig
//  2. KUBECONFIG environment variable
//  3. ~/.kube/config, when it exists
//  4. in-cluster service account credentials
//
// Every client carries the app-deployer user agent and client side QPS and
// burst limits from package defaults unless overridden.
//
// # Testing
//
// Interface aliases kubernetes.Interface, so code taking a client.Interface
// accepts k8s.io/client-go/kubernetes/fake clientsets.
package client
