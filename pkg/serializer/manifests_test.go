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
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/yaml"
)

func testObjects() []runtime.Object {
	return []runtime.Object{
		&corev1.Secret{
			TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "default"},
			Data:       map[string][]byte{"TOKEN": []byte("s3cr3t")},
		},
		&corev1.Service{
			TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Service"},
			ObjectMeta: metav1.ObjectMeta{Name: "demo", Namespace: "default"},
			Spec:       corev1.ServiceSpec{Type: corev1.ServiceTypeClusterIP},
		},
	}
}

func TestWriteObjects_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteObjects(context.Background(), NewWriter(FormatYAML, &buf), testObjects()); err != nil {
		t.Fatalf("WriteObjects failed: %v", err)
	}

	docs := strings.Split(buf.String(), "---\n")
	if len(docs) != 2 {
		t.Fatalf("expected 2 YAML documents, got %d:\n%s", len(docs), buf.String())
	}

	var secret corev1.Secret
	if err := yaml.Unmarshal([]byte(docs[0]), &secret); err != nil {
		t.Fatalf("failed to decode secret: %v", err)
	}
	if secret.Kind != "Secret" || string(secret.Data["TOKEN"]) != "s3cr3t" {
		t.Errorf("unexpected secret %+v", secret)
	}
	if !strings.Contains(docs[0], "TOKEN: czNjcjN0") {
		t.Errorf("expected base64 data in YAML, got:\n%s", docs[0])
	}

	var svc corev1.Service
	if err := yaml.Unmarshal([]byte(docs[1]), &svc); err != nil {
		t.Fatalf("failed to decode service: %v", err)
	}
	if svc.Spec.Type != corev1.ServiceTypeClusterIP {
		t.Errorf("unexpected service %+v", svc)
	}
}

func TestWriteObjects_JSONList(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteObjects(context.Background(), NewWriter(FormatJSON, &buf), testObjects()); err != nil {
		t.Fatalf("WriteObjects failed: %v", err)
	}

	var list struct {
		APIVersion string            `json:"apiVersion"`
		Kind       string            `json:"kind"`
		Items      []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(buf.Bytes(), &list); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if list.APIVersion != "v1" || list.Kind != "List" || len(list.Items) != 2 {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestWriteObjects_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteObjects(context.Background(), NewWriter(FormatJSON, &buf), nil); err != nil {
		t.Fatalf("WriteObjects failed: %v", err)
	}
	if !strings.Contains(buf.String(), "\"items\": []") {
		t.Errorf("expected empty items array, got %s", buf.String())
	}
}

func TestWriteObjects_Table(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteObjects(context.Background(), NewWriter(FormatTable, &buf), testObjects()); err != nil {
		t.Fatalf("WriteObjects failed: %v", err)
	}
	for _, want := range []string{"[0].kind", "Secret", "[1].name", "demo", "[1].namespace", "default"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected %q in table:\n%s", want, buf.String())
		}
	}
}
