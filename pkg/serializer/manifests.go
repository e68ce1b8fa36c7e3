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

package serializer

import (
	"context"
	"fmt"
	"io"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

// yamlDocumentSeparator separates objects in a multi-document YAML stream.
const yamlDocumentSeparator = "---\n"

// WriteObjects writes Kubernetes objects in a form kubectl apply accepts.
// YAML output is a multi-document stream; JSON and table output is a v1 List.
func WriteObjects(ctx context.Context, w *Writer, objs []runtime.Object) error {
	switch w.Format() {
	case FormatYAML:
		return writeYAMLStream(w.Output(), objs)
	case FormatTable:
		return w.Serialize(ctx, objectSummaries(objs))
	default:
		return w.Serialize(ctx, listOf(objs))
	}
}

// ObjectSummary identifies one object for table output.
type ObjectSummary struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

// objectList mirrors the kubectl v1 List envelope.
type objectList struct {
	APIVersion string           `json:"apiVersion"`
	Kind       string           `json:"kind"`
	Items      []runtime.Object `json:"items"`
}

func listOf(objs []runtime.Object) objectList {
	items := objs
	if items == nil {
		items = []runtime.Object{}
	}
	return objectList{APIVersion: "v1", Kind: "List", Items: items}
}

func writeYAMLStream(out io.Writer, objs []runtime.Object) error {
	for i, obj := range objs {
		data, err := yaml.Marshal(obj)
		if err != nil {
			return fmt.Errorf("failed to serialize object %d to YAML: %w", i, err)
		}
		if i > 0 {
			if _, err := io.WriteString(out, yamlDocumentSeparator); err != nil {
				return fmt.Errorf("failed to write YAML separator: %w", err)
			}
		}
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("failed to write YAML document: %w", err)
		}
	}
	return nil
}

func objectSummaries(objs []runtime.Object) []ObjectSummary {
	summaries := make([]ObjectSummary, 0, len(objs))
	for _, obj := range objs {
		s := ObjectSummary{Kind: obj.GetObjectKind().GroupVersionKind().Kind}
		if meta, ok := obj.(interface {
			GetName() string
			GetNamespace() string
		}); ok {
			s.Name = meta.GetName()
			s.Namespace = meta.GetNamespace()
		}
		summaries = append(summaries, s)
	}
	return summaries
}
