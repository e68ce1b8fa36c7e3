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

// Package descriptor defines the application descriptor accepted by the
// deployer, together with its decoding and validation rules.
//
// A descriptor is transient: it is decoded from a request body (or a file for
// appctl), validated, consumed once by the submitter and discarded.
//
// # Format
//
// JSON (default) or YAML, selected by Content-Type on the HTTP path and by
// file extension for Load:
//
//	{
//	  "app_name": "demo",
//	  "replicas": 2,
//	  "image_address": "nginx",
//	  "image_tag": "1.25",
//	  "domain_address": "demo.example.com",
//	  "service_port": 8080,
//	  "resources": {"cpu": "100m"},
//	  "envs": {"ENV": "prod"},
//	  "secrets": {"API_KEY": "c2VjcmV0"},
//	  "external_access": true
//	}
//
// # Validation
//
// Decoding reports missing required fields and type mismatches; Validate
// then checks values against Kubernetes naming rules (DNS-1035 app name, DNS-1123
// host, env var names, secret keys, resource quantities, port range) and the
// container image reference grammar. domain_address is only required when
// external_access is true. Secret values must be standard base64; they are
// passed to the API server unchanged.
//
// All failures are collected into a single *ValidationError whose entries
// carry a location path such as ["body", "resources", "cpu"].
package descriptor
