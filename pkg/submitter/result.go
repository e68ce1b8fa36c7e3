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

package submitter

import (
	"fmt"

	apperrors "github.com/NVIDIA/app-deployer/pkg/errors"
)

// StatusSuccess is the status reported for a completed deploy.
const StatusSuccess = "success"

// Action is what a step did to the cluster.
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// AppliedObject identifies one object written by a deploy.
type AppliedObject struct {
	Kind      string `json:"kind" yaml:"kind"`
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Action    Action `json:"action" yaml:"action"`
}

// String renders the object as Kind/namespace/name.
func (o AppliedObject) String() string {
	return fmt.Sprintf("%s/%s/%s", o.Kind, o.Namespace, o.Name)
}

// Result is returned by a successful deploy.
type Result struct {
	Status  string          `json:"status" yaml:"status"`
	Message string          `json:"message" yaml:"message"`
	Applied []AppliedObject `json:"applied" yaml:"applied"`
}

func newResult(appName string, applied []AppliedObject) *Result {
	return &Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf("Application %s deployed successfully", appName),
		Applied: applied,
	}
}

// Failure is returned when a step fails. Steps after Step were not attempted.
type Failure struct {
	// AppName is the application being deployed.
	AppName string
	// Step is the kind of the object whose write failed.
	Step string
	// Applied lists objects written before the failure.
	Applied []AppliedObject
	// RolledBack lists objects deleted by compensation.
	RolledBack []AppliedObject
	// RollbackErrors holds compensation failures. They never replace Err.
	RollbackErrors []string
	// Err is the classified cause.
	Err *apperrors.StructuredError
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return f.Err.Error()
}

// Unwrap exposes the structured error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Code is the classified error code.
func (f *Failure) Code() apperrors.ErrorCode {
	return f.Err.Code
}

// Retryable reports whether repeating the same deploy may succeed.
func (f *Failure) Retryable() bool {
	return f.Err.Code.Retryable()
}

// Detail is the human readable failure text: the step message followed by
// the API server's error.
func (f *Failure) Detail() string {
	if f.Err.Cause != nil {
		return fmt.Sprintf("%s: %v", f.Err.Message, f.Err.Cause)
	}
	return f.Err.Message
}

// RolledBackCleanly reports whether every created object was removed.
func (f *Failure) RolledBackCleanly() bool {
	return len(f.RollbackErrors) == 0
}
