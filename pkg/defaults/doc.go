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

// Package defaults provides centralized configuration constants for the
// application deployer.
//
// Values that used to be hard-coded in the request path (target namespace,
// container port, listen port) live here together with the server and
// Kubernetes timeouts, so every component reads the same documented default.
//
// # Categories
//
//   - Deployment defaults: namespace, container port, pod selector label
//   - Server defaults: listen port, body size limit, HTTP server timeouts
//   - Kubernetes timeouts: cleanup (compensation) budget
//
// # Usage
//
//	import "github.com/NVIDIA/app-deployer/pkg/defaults"
//
//	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.K8sCleanupTimeout)
//	defer cancel()
//
// Each default can be overridden at runtime through the environment variable
// documented next to the consumer (pkg/server, pkg/submitter).
package defaults
