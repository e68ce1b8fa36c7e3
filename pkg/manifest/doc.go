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

// Package manifest synthesizes the Kubernetes objects for an application
// descriptor.
//
// Builders are pure: they take a validated descriptor and return typed
// objects with TypeMeta populated, ready to be submitted or rendered.
//
//	bundle, err := manifest.Build(d, manifest.Options{Namespace: "default", ContainerPort: 80})
//	for _, obj := range bundle.Objects() {
//		...
//	}
//
// Objects are always returned in submission order: Secret (only when the
// descriptor carries secrets), Deployment, Service, Ingress (only when
// external access is requested). Every object is named after the
// application and labeled app=<app_name>.
package manifest
