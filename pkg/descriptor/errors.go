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
	"fmt"
	"strings"
)

// Field error types.
const (
	ErrTypeMissing     = "missing"
	ErrTypeType        = "type_error"
	ErrTypeValue       = "value_error"
	ErrTypeJSONInvalid = "json_invalid"
	ErrTypeYAMLInvalid = "yaml_invalid"
)

// FieldError is a single validation failure.
type FieldError struct {
	// Loc is the path to the offending value, rooted at "body".
	Loc  []string `json:"loc" yaml:"loc"`
	Msg  string   `json:"msg" yaml:"msg"`
	Type string   `json:"type" yaml:"type"`
}

// String renders the error as "body.field: message".
func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", strings.Join(e.Loc, "."), e.Msg)
}

// ValidationError collects every field error found in a descriptor.
type ValidationError struct {
	Errors []FieldError
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.String())
	}
	return fmt.Sprintf("invalid application descriptor: %s", strings.Join(msgs, "; "))
}

func (e *ValidationError) add(typ, msg string, loc ...string) {
	e.Errors = append(e.Errors, FieldError{
		Loc:  append([]string{"body"}, loc...),
		Msg:  msg,
		Type: typ,
	})
}

func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
