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

package errors

import (
	"context"
	stderrors "errors"
	"net"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	utilnet "k8s.io/apimachinery/pkg/util/net"
)

// CodeFromKubernetes classifies an error returned by a Kubernetes API call.
// A nil error yields an empty code.
func CodeFromKubernetes(err error) ErrorCode {
	if err == nil {
		return ""
	}

	switch {
	case apierrors.IsAlreadyExists(err), apierrors.IsConflict(err):
		return ErrCodeConflict
	case apierrors.IsUnauthorized(err), apierrors.IsForbidden(err):
		return ErrCodeUnauthorized
	case apierrors.IsInvalid(err), apierrors.IsBadRequest(err):
		return ErrCodeInvalidRequest
	case apierrors.IsNotFound(err):
		return ErrCodeNotFound
	case apierrors.IsTimeout(err), apierrors.IsServerTimeout(err),
		stderrors.Is(err, context.DeadlineExceeded):
		return ErrCodeTimeout
	case apierrors.IsTooManyRequests(err), apierrors.IsServiceUnavailable(err),
		stderrors.Is(err, context.Canceled), isNetworkError(err):
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// WrapKubernetes wraps a Kubernetes API error with the classified code.
func WrapKubernetes(message string, cause error, context map[string]any) *StructuredError {
	return WrapWithContext(CodeFromKubernetes(cause), message, cause, context)
}

func isNetworkError(err error) bool {
	if utilnet.IsConnectionRefused(err) || utilnet.IsConnectionReset(err) || utilnet.IsProbableEOF(err) {
		return true
	}
	var netErr net.Error
	return stderrors.As(err, &netErr)
}
