/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
	k8stesting "k8s.io/client-go/testing"

	"github.com/NVIDIA/app-deployer/pkg/header"
	"github.com/NVIDIA/app-deployer/pkg/k8s/client"
	"github.com/NVIDIA/app-deployer/pkg/submitter"
)

const demoYAML = `app_name: demo
replicas: 2
image_address: nginx
image_tag: "1.25"
domain_address: demo.example.com
service_port: 8080
resources:
  cpu: 100m
envs:
  ENV: prod
secrets:
  TOKEN: c2VjcmV0
external_access: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, args ...string) error {
	t.Helper()
	return newRootCmd().Run(context.Background(), append([]string{name}, args...))
}

func readOutput(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return data
}

func useFakeClientset(t *testing.T, cs *fake.Clientset) {
	t.Helper()
	orig := newClientset
	newClientset = func(string) (client.Interface, error) { return cs, nil }
	t.Cleanup(func() { newClientset = orig })
}

func TestValidateCmd(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		in := writeFile(t, "app.yaml", demoYAML)
		out := filepath.Join(t.TempDir(), "result.json")

		if err := run(t, "validate", "-f", in, "-o", out, "--format", "json"); err != nil {
			t.Fatalf("validate error = %v", err)
		}

		var res ValidationResult
		if err := json.Unmarshal(readOutput(t, out), &res); err != nil {
			t.Fatalf("invalid output: %v", err)
		}
		if !res.Valid || res.App != "demo" {
			t.Errorf("result = %+v, want valid demo", res)
		}
		if res.Kind != header.KindValidationResult {
			t.Errorf("kind = %q, want %q", res.Kind, header.KindValidationResult)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		in := writeFile(t, "app.yaml", strings.Replace(demoYAML, "replicas: 2", "replicas: -1", 1))
		out := filepath.Join(t.TempDir(), "result.json")

		err := run(t, "validate", "-f", in, "-o", out, "--format", "json")
		if err == nil {
			t.Fatal("expected error for invalid descriptor")
		}

		var res ValidationResult
		if err := json.Unmarshal(readOutput(t, out), &res); err != nil {
			t.Fatalf("invalid output: %v", err)
		}
		if res.Valid || len(res.Errors) != 1 {
			t.Fatalf("result = %+v, want one error", res)
		}
		if got := strings.Join(res.Errors[0].Loc, "."); got != "body.replicas" {
			t.Errorf("loc = %q, want body.replicas", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		err := run(t, "validate", "-f", filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		in := writeFile(t, "app.yaml", demoYAML)
		if err := run(t, "validate", "-f", in, "--format", "xml"); err == nil {
			t.Fatal("expected error for unknown format")
		}
	})
}

func TestRenderCmd(t *testing.T) {
	in := writeFile(t, "app.yaml", demoYAML)

	t.Run("yaml stream", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "manifests.yaml")
		if err := run(t, "render", "-f", in, "-o", out, "-n", "staging"); err != nil {
			t.Fatalf("render error = %v", err)
		}

		got := string(readOutput(t, out))
		if n := strings.Count(got, "---\n"); n != 3 {
			t.Errorf("document separators = %d, want 3", n)
		}
		for _, kind := range []string{"kind: Secret", "kind: Deployment", "kind: Service", "kind: Ingress"} {
			if !strings.Contains(got, kind) {
				t.Errorf("output missing %q", kind)
			}
		}
		if !strings.Contains(got, "namespace: staging") {
			t.Error("output missing namespace override")
		}
		if strings.Index(got, "kind: Secret") > strings.Index(got, "kind: Deployment") {
			t.Error("Secret must precede Deployment")
		}
	})

	t.Run("json list", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "manifests.json")
		if err := run(t, "render", "-f", in, "-o", out, "--format", "json", "--container-port", "8081"); err != nil {
			t.Fatalf("render error = %v", err)
		}

		var list struct {
			Kind  string            `json:"kind"`
			Items []json.RawMessage `json:"items"`
		}
		data := readOutput(t, out)
		if err := json.Unmarshal(data, &list); err != nil {
			t.Fatalf("invalid output: %v", err)
		}
		if list.Kind != "List" || len(list.Items) != 4 {
			t.Errorf("list = %s with %d items, want List with 4", list.Kind, len(list.Items))
		}
		if !strings.Contains(string(data), `"containerPort": 8081`) {
			t.Error("container port override not applied")
		}
	})

	t.Run("container port out of range", func(t *testing.T) {
		for _, port := range []string{"0", "65536", "4294967376"} {
			out := filepath.Join(t.TempDir(), "manifests.yaml")
			if err := run(t, "render", "-f", in, "-o", out, "--container-port", port); err == nil {
				t.Errorf("expected error for container port %s", port)
			}
		}
	})
}

func TestDeployCmd(t *testing.T) {
	in := writeFile(t, "app.yaml", demoYAML)

	t.Run("success", func(t *testing.T) {
		cs := fake.NewClientset()
		useFakeClientset(t, cs)
		out := filepath.Join(t.TempDir(), "result.json")

		if err := run(t, "deploy", "-f", in, "-o", out, "--format", "json", "-n", "apps"); err != nil {
			t.Fatalf("deploy error = %v", err)
		}

		var res DeployResult
		if err := json.Unmarshal(readOutput(t, out), &res); err != nil {
			t.Fatalf("invalid output: %v", err)
		}
		if res.Status != submitter.StatusSuccess {
			t.Errorf("status = %q, want %q", res.Status, submitter.StatusSuccess)
		}
		if len(res.Applied) != 4 {
			t.Errorf("applied = %d, want 4", len(res.Applied))
		}
		if res.Kind != header.KindDeployResult {
			t.Errorf("kind = %q, want %q", res.Kind, header.KindDeployResult)
		}

		if _, err := cs.AppsV1().Deployments("apps").Get(context.Background(), "demo", metav1.GetOptions{}); err != nil {
			t.Errorf("deployment not created: %v", err)
		}
	})

	t.Run("failure reports rollback", func(t *testing.T) {
		cs := fake.NewClientset()
		cs.PrependReactor("create", "services", func(k8stesting.Action) (bool, runtime.Object, error) {
			return true, nil, apierrors.NewInternalError(errors.New("boom"))
		})
		useFakeClientset(t, cs)
		out := filepath.Join(t.TempDir(), "result.json")

		if err := run(t, "deploy", "-f", in, "-o", out, "--format", "json"); err == nil {
			t.Fatal("expected deploy error")
		}

		var res DeployResult
		if err := json.Unmarshal(readOutput(t, out), &res); err != nil {
			t.Fatalf("invalid output: %v", err)
		}
		if res.Status != statusFailed || res.Step != "Service" {
			t.Errorf("status/step = %q/%q, want failed/Service", res.Status, res.Step)
		}
		if len(res.RolledBack) != 2 {
			t.Errorf("rolled back = %v, want Deployment and Secret", res.RolledBack)
		}
	})

	t.Run("wait times out", func(t *testing.T) {
		useFakeClientset(t, fake.NewClientset())
		out := filepath.Join(t.TempDir(), "result.json")

		err := run(t, "deploy", "-f", in, "-o", out, "--format", "json", "--wait", "50ms")
		if err == nil || !strings.Contains(err.Error(), "rollout") {
			t.Fatalf("deploy error = %v, want rollout timeout", err)
		}

		var res DeployResult
		if err := json.Unmarshal(readOutput(t, out), &res); err != nil {
			t.Fatalf("invalid output: %v", err)
		}
		if res.Status != submitter.StatusSuccess {
			t.Errorf("status = %q, want %q", res.Status, submitter.StatusSuccess)
		}
		if res.Rollout == nil || res.Rollout.Ready || res.Rollout.Desired != 2 {
			t.Errorf("rollout = %+v, want not ready with 2 desired", res.Rollout)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		useFakeClientset(t, fake.NewClientset())
		if err := run(t, "deploy", "-f", in, "--mode", "replace"); err == nil {
			t.Fatal("expected error for invalid mode")
		}
	})

	t.Run("container port wraps int32", func(t *testing.T) {
		cs := fake.NewClientset()
		useFakeClientset(t, cs)

		// 4294967376 narrows to 80 in int32
		err := run(t, "deploy", "-f", in, "--container-port", "4294967376")
		if err == nil || !strings.Contains(err.Error(), "invalid container port") {
			t.Fatalf("deploy error = %v, want invalid container port", err)
		}
		if n := len(cs.Actions()); n != 0 {
			t.Errorf("cluster actions = %d, want 0", n)
		}
	})

	t.Run("client error", func(t *testing.T) {
		orig := newClientset
		newClientset = func(string) (client.Interface, error) { return nil, errors.New("no cluster") }
		t.Cleanup(func() { newClientset = orig })

		if err := run(t, "deploy", "-f", in); err == nil {
			t.Fatal("expected error when no client can be built")
		}
	})
}
