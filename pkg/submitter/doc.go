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

// Package submitter writes the Kubernetes objects for an application
// descriptor to a cluster.
//
// A deploy is a strictly ordered sequence of writes through the typed
// client-go clients:
//
//  1. Secret, only when the descriptor carries secrets
//  2. Deployment
//  3. Service
//  4. Ingress, only when external access is requested
//
// The first failing write stops the sequence. The returned *Failure carries
// the classified error code, the failing kind and the objects already
// written. With rollback enabled, objects created by the failed request are
// deleted again in reverse order. Objects that existed before the request
// are never deleted.
//
// In ModeCreate a name collision fails the deploy. ModeApply updates
// existing objects in place, so repeating a deploy succeeds.
//
// Usage:
//
//	s := submitter.New(clientset, submitter.WithNamespace("apps"))
//	result, err := s.Deploy(ctx, d)
//
// HandleDeploy exposes Deploy over HTTP.
package submitter
