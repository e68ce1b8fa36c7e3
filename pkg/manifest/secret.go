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

package manifest

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/NVIDIA/app-deployer/pkg/descriptor"
)

// Secret builds the Opaque Secret holding the descriptor's secrets.
func Secret(d *descriptor.Descriptor, opts Options) (*corev1.Secret, error) {
	opts = opts.withDefaults()

	data, err := d.SecretData()
	if err != nil {
		return nil, fmt.Errorf("failed to build secret %q: %w", d.AppName, err)
	}

	return &corev1.Secret{
		TypeMeta: metav1.TypeMeta{
			APIVersion: corev1.SchemeGroupVersion.String(),
			Kind:       KindSecret,
		},
		ObjectMeta: objectMeta(d, opts),
		Type:       corev1.SecretTypeOpaque,
		Data:       data,
	}, nil
}
