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
	"errors"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/app-deployer/pkg/defaults"
	"github.com/NVIDIA/app-deployer/pkg/descriptor"
	apperrors "github.com/NVIDIA/app-deployer/pkg/errors"
	"github.com/NVIDIA/app-deployer/pkg/serializer"
	"github.com/NVIDIA/app-deployer/pkg/server"
)

// ValidationResponse is the 422 body.
type ValidationResponse struct {
	Detail []descriptor.FieldError `json:"detail"`
}

// FailureResponse is the 500 body written when a cluster write fails.
type FailureResponse struct {
	Detail         string          `json:"detail"`
	Code           string          `json:"code"`
	Step           string          `json:"step"`
	Applied        []AppliedObject `json:"applied"`
	RolledBack     []AppliedObject `json:"rolledBack"`
	RollbackErrors []string        `json:"rollbackErrors,omitempty"`
	Retryable      bool            `json:"retryable"`
	RequestID      string          `json:"requestId,omitempty"`
}

// HandleDeploy serves POST /deploy. The body is a JSON descriptor, or YAML
// when the content type says so.
func (s *Submitter) HandleDeploy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
	format := descriptor.FormatFromContentType(r.Header.Get("Content-Type"))

	d, err := descriptor.Decode(r.Body, format)
	if err != nil {
		var verr *descriptor.ValidationError
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &verr):
			slog.Debug("descriptor rejected", "errors", len(verr.Errors))
			serializer.RespondJSON(w, http.StatusUnprocessableEntity, ValidationResponse{Detail: verr.Errors})
		case errors.As(err, &maxErr):
			server.WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeInvalidRequest,
				"Request body too large", false, map[string]any{"limit": maxErr.Limit})
		default:
			server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
				"Failed to read request body", false, map[string]any{"error": err.Error()})
		}
		return
	}

	result, err := s.Deploy(r.Context(), d)
	if err != nil {
		var failure *Failure
		if errors.As(err, &failure) {
			serializer.RespondJSON(w, http.StatusInternalServerError, FailureResponse{
				Detail:         failure.Detail(),
				Code:           string(failure.Code()),
				Step:           failure.Step,
				Applied:        nonNil(failure.Applied),
				RolledBack:     nonNil(failure.RolledBack),
				RollbackErrors: failure.RollbackErrors,
				Retryable:      failure.Retryable(),
				RequestID:      server.RequestIDFromContext(r.Context()),
			})
			return
		}
		server.WriteErrorFromErr(w, r, err, "Failed to deploy application",
			map[string]any{"app": d.AppName})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, result)
}

func nonNil(objs []AppliedObject) []AppliedObject {
	if objs == nil {
		return []AppliedObject{}
	}
	return objs
}
