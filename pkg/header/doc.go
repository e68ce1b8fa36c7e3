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

// Package header provides the envelope shared by appctl output documents.
//
// Every document written by appctl deploy and appctl validate starts with a
// Kubernetes-style header so the output can be identified and versioned:
//
//	kind: DeployResult
//	apiVersion: appdeployer.nvidia.com/v1alpha1
//	metadata:
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v0.3.0
//
// Build one with functional options or Init:
//
//	h := header.New(header.WithKind(header.KindDeployResult), header.WithAPIVersion(header.APIVersion))
//	h.Init(header.KindValidationResult, header.APIVersion, version)
package header
