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

// Package rollout waits for a Deployment to finish rolling out.
//
// Readiness follows kubectl rollout status: the controller has observed the
// latest generation, every desired replica runs the new template and is
// available. A ProgressDeadlineExceeded condition ends the wait early.
//
//	st, err := rollout.WaitForDeployment(ctx, clientset, "apps", "demo", 2*time.Minute)
package rollout
