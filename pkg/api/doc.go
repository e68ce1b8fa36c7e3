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

// Package api provides the HTTP API of the Application Deployer (appd).
//
// This package is a thin wrapper around pkg/server. It builds the cluster
// client and the submitter from the environment and mounts the deploy
// handler.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
//	POST /deploy/   Deploy an application descriptor (JSON, or YAML with
//	                Content-Type: application/x-yaml). Also served at /deploy.
//	GET  /health    Liveness
//	GET  /ready     Readiness
//	GET  /metrics   Prometheus metrics
//	GET  /          Service information
//
// # Responses
//
//	200  {"status":"success","message":"Application <name> deployed successfully","applied":[...]}
//	422  {"detail":[{"loc":["body","<field>"],"msg":"...","type":"..."}]}
//	500  {"detail":"<error>","code":"...","step":"...","applied":[...],"rolledBack":[...],"retryable":true}
//
// # Configuration
//
//	PORT                  Listen port (default 8000)
//	LOG_LEVEL             Log level
//	KUBECONFIG            Kubeconfig path; in-cluster config when unset
//	DEPLOY_NAMESPACE      Namespace for application objects (default "default")
//	CONTAINER_PORT        Application container port (default 80)
//	DEPLOY_MODE           create or apply (default create)
//	ROLLBACK_ON_FAILURE   Delete created objects after a failure (default true)
//	SUBMIT_TIMEOUT        Deadline for one deploy, e.g. 30s (default none)
package api
