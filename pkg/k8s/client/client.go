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

package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/NVIDIA/app-deployer/pkg/defaults"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// EnvKubeconfig names the environment variable holding the kubeconfig path.
const EnvKubeconfig = "KUBECONFIG"

// Interface is an alias for kubernetes.Interface so callers can swap in
// k8s.io/client-go/kubernetes/fake in tests.
type Interface = kubernetes.Interface

// Options configure how the client is built.
type Options struct {
	// Kubeconfig is an explicit kubeconfig path. Empty means discover.
	Kubeconfig string

	// UserAgent is sent with every request.
	UserAgent string

	// QPS and Burst throttle client side requests.
	QPS   float32
	Burst int

	// Timeout bounds each API request. Zero means no client side timeout.
	Timeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.UserAgent == "" {
		o.UserAgent = defaults.KubeClientUserAgent
	}
	if o.QPS == 0 {
		o.QPS = defaults.KubeClientQPS
	}
	if o.Burst == 0 {
		o.Burst = defaults.KubeClientBurst
	}
	return o
}

var (
	defaultOnce   sync.Once
	defaultClient Interface
	defaultErr    error
)

// Default returns a process wide client built from discovered configuration.
// The first call builds the client; later calls return the cached result,
// including a cached error.
func Default() (Interface, error) {
	defaultOnce.Do(func() {
		defaultClient, defaultErr = New(Options{})
	})
	return defaultClient, defaultErr
}

// New builds a new clientset, bypassing the Default cache.
func New(opts Options) (Interface, error) {
	config, err := RestConfig(opts)
	if err != nil {
		return nil, err
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}
	return clientset, nil
}

// RestConfig resolves the REST configuration for opts.
//
// Resolution order:
//  1. opts.Kubeconfig
//  2. KUBECONFIG environment variable
//  3. ~/.kube/config, if present
//  4. in-cluster service account
func RestConfig(opts Options) (*rest.Config, error) {
	opts = opts.withDefaults()

	var (
		config *rest.Config
		err    error
	)

	path := ResolveKubeconfig(opts.Kubeconfig)
	if path == "" {
		config, err = rest.InClusterConfig()
		if err != nil {
			if errors.Is(err, rest.ErrNotInCluster) {
				return nil, fmt.Errorf("no kubeconfig found and not running in a cluster: %w", err)
			}
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		config, err = clientcmd.BuildConfigFromFlags("", path)
		if err != nil {
			return nil, fmt.Errorf("failed to build kube config from %s: %w", path, err)
		}
	}

	config.UserAgent = opts.UserAgent
	config.QPS = opts.QPS
	config.Burst = opts.Burst
	if opts.Timeout > 0 {
		config.Timeout = opts.Timeout
	}

	return config, nil
}

// ResolveKubeconfig returns the kubeconfig path to use, or an empty string
// when the in-cluster configuration applies.
func ResolveKubeconfig(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvKubeconfig); env != "" {
		return env
	}
	home := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(home); err == nil {
		return home
	}
	return ""
}
