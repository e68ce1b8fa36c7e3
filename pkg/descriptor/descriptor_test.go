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

package descriptor

import (
	"reflect"
	"testing"
)

func TestImage(t *testing.T) {
	d := &Descriptor{ImageAddress: "ghcr.io/acme/api", ImageTag: "v1.2.3"}
	if got := d.Image(); got != "ghcr.io/acme/api:v1.2.3" {
		t.Errorf("Image() = %q", got)
	}
}

func TestSecretData(t *testing.T) {
	d := &Descriptor{}
	data, err := d.SecretData()
	if err != nil || data != nil {
		t.Fatalf("SecretData() without secrets = %v, %v", data, err)
	}

	d.Secrets = map[string]string{"USER": "YWRtaW4=", "PASS": "czNjcjN0"}
	data, err = d.SecretData()
	if err != nil {
		t.Fatalf("SecretData() error: %v", err)
	}
	want := map[string][]byte{"USER": []byte("admin"), "PASS": []byte("s3cr3t")}
	if !reflect.DeepEqual(data, want) {
		t.Errorf("SecretData() = %v, want %v", data, want)
	}

	d.Secrets["BAD"] = "%%%"
	if _, err := d.SecretData(); err == nil {
		t.Error("SecretData() expected error for invalid base64")
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]string{"b": "", "c": "", "a": ""})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("SortedKeys() = %v", got)
	}
	if got := SortedKeys(nil); len(got) != 0 {
		t.Errorf("SortedKeys(nil) = %v", got)
	}
}

func TestEnvNames(t *testing.T) {
	d := &Descriptor{
		Envs:     map[string]string{"B": "", "A": "", "Z": "", "C": ""},
		EnvOrder: []string{"Z", "GONE", "B", "Z"},
	}
	want := []string{"Z", "B", "A", "C"}
	if got := d.EnvNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("EnvNames() = %v, want %v", got, want)
	}
}
