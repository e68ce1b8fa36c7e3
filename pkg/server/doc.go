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

// Package server provides the HTTP server used by appd.
//
// The server is a thin net/http wrapper that adds the concerns every API
// route shares:
//
//   - rate limiting using a token bucket (golang.org/x/time/rate)
//   - request IDs (X-Request-Id) propagated through the request context
//   - panic recovery
//   - API version negotiation via vendor Accept types
//   - Prometheus RED metrics
//   - graceful shutdown with systemd readiness notifications
//
// # Usage
//
//	s := server.New(
//	    server.WithName("appd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/deploy": handler,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Endpoints
//
// Routes passed with WithHandler are wrapped with the middleware chain.
// The following are always registered and bypass it:
//
//	GET /health    liveness, never touches dependencies
//	GET /ready     readiness, 503 until listening and during shutdown
//	GET /metrics   Prometheus exposition
//
// GET / lists routes and build information unless a custom root handler is
// supplied. Unknown paths return 404.
//
// # Errors
//
// WriteError and WriteErrorFromErr emit a JSON ErrorResponse with a code from
// package errors, the request ID and a retryable hint. HTTPStatusFromCode
// maps codes to statuses (CONFLICT to 409, TIMEOUT to 504 and so on).
//
// # Configuration
//
// NewConfig reads PORT (default 8000), SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT
// and RATE_LIMIT_BURST from the environment.
package server
