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

package defaults

// Deployment defaults applied to every descriptor.
const (
	// Namespace is the namespace all application objects are created in.
	Namespace = "default"

	// ContainerPort is the port the application container listens on.
	// The Service forwards service_port to this port.
	ContainerPort int32 = 80

	// AppLabelKey is the pod label used by the Deployment selector and the
	// Service selector. Its value is always the application name.
	AppLabelKey = "app"

	// IngressPath is the single HTTP path routed by the Ingress.
	IngressPath = "/"
)

// Server defaults.
const (
	// ListenPort is the port appd listens on when PORT is not set.
	ListenPort = 8000

	// MaxRequestBodyBytes caps the size of a descriptor request body.
	MaxRequestBodyBytes int64 = 1 << 20

	// RateLimit is the sustained number of API requests per second.
	RateLimit = 50

	// RateLimitBurst is the token bucket size for API requests.
	RateLimitBurst = 100
)

// Kubernetes client defaults.
const (
	// KubeClientQPS is the sustained request rate to the API server.
	KubeClientQPS float32 = 20

	// KubeClientBurst is the burst size allowed above KubeClientQPS.
	KubeClientBurst = 50

	// KubeClientUserAgent identifies the deployer in API server audit logs.
	KubeClientUserAgent = "app-deployer"
)
