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

// Package serializer writes values as JSON, YAML or a flattened table.
//
// Writer serializes to any io.Writer:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, result); err != nil {
//		return err
//	}
//
// WriteObjects renders Kubernetes objects so the output can be fed back to
// kubectl apply: YAML becomes a multi-document stream marshaled with
// sigs.k8s.io/yaml (honoring the API json tags), JSON becomes a v1 List.
//
// RespondJSON is the HTTP counterpart. It buffers the encoded body before
// writing headers so encoding failures never produce partial responses.
package serializer
