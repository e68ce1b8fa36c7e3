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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a descriptor document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromContentType maps an HTTP Content-Type to a descriptor format.
// Anything that is not a YAML media type is treated as JSON.
func FormatFromContentType(contentType string) Format {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return FormatJSON
	}
	switch mediaType {
	case "application/x-yaml", "application/yaml", "text/yaml", "text/x-yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawDescriptor mirrors Descriptor with pointer fields so that missing
// required fields can be told apart from zero values.
type rawDescriptor struct {
	AppName        *string
	Replicas       *int32
	ImageAddress   *string
	ImageTag       *string
	DomainAddress  *string
	ServicePort    *int32
	Resources      map[string]string
	Envs           map[string]string
	EnvOrder       []string
	Secrets        map[string]string
	ExternalAccess *bool
}

// fieldOrder lists the document keys in declaration order. Keys match
// exactly; any other key is ignored.
var fieldOrder = []string{
	"app_name",
	"replicas",
	"image_address",
	"image_tag",
	"domain_address",
	"service_port",
	"resources",
	"envs",
	"secrets",
	"external_access",
}

func (r *rawDescriptor) targets() map[string]any {
	return map[string]any{
		"app_name":        &r.AppName,
		"replicas":        &r.Replicas,
		"image_address":   &r.ImageAddress,
		"image_tag":       &r.ImageTag,
		"domain_address":  &r.DomainAddress,
		"service_port":    &r.ServicePort,
		"resources":       &r.Resources,
		"envs":            &r.Envs,
		"secrets":         &r.Secrets,
		"external_access": &r.ExternalAccess,
	}
}

// Decode reads a descriptor document from r, checks required fields and
// validates it. Every failure is reported as a *ValidationError.
func Decode(r io.Reader, format Format) (*Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates a descriptor document.
func Parse(data []byte, format Format) (*Descriptor, error) {
	verr := &ValidationError{}

	if len(bytes.TrimSpace(data)) == 0 {
		verr.add(ErrTypeMissing, "Field required")
		return nil, verr
	}

	var raw rawDescriptor
	switch format {
	case FormatYAML:
		decodeYAML(data, &raw, verr)
	default:
		decodeJSON(data, &raw, verr)
	}
	if len(verr.Errors) > 0 {
		return nil, verr
	}

	d := raw.toDescriptor(verr)
	if len(verr.Errors) > 0 {
		return nil, verr
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads a descriptor from a file. Files ending in .json are decoded as
// JSON, everything else as YAML.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file %q: %w", path, err)
	}

	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	return Parse(data, format)
}

func decodeJSON(data []byte, raw *rawDescriptor, verr *ValidationError) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		addJSONError(verr, err)
		return
	}
	if fields == nil {
		verr.add(ErrTypeType, msgDictionary)
		return
	}

	targets := raw.targets()
	for _, name := range fieldOrder {
		value, ok := fields[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, targets[name]); err != nil {
			addJSONError(verr, err, name)
		}
	}

	if raw.Envs != nil {
		raw.EnvOrder = jsonKeyOrder(fields["envs"])
	}
}

const msgDictionary = "Input should be a valid dictionary"

func addJSONError(verr *ValidationError, err error, loc ...string) {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		if len(loc) == 0 && typeErr.Field == "" {
			verr.add(ErrTypeType, msgDictionary)
			return
		}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		verr.add(ErrTypeType,
			fmt.Sprintf("Input should be a valid %s, got %s", typeErr.Type.String(), typeErr.Value),
			loc...)
	case errors.As(err, &syntaxErr):
		verr.add(ErrTypeJSONInvalid,
			fmt.Sprintf("JSON decode error at offset %d: %v", syntaxErr.Offset, syntaxErr), loc...)
	default:
		verr.add(ErrTypeJSONInvalid, fmt.Sprintf("JSON decode error: %v", err), loc...)
	}
}

// jsonKeyOrder returns the keys of a JSON object in document order, first
// occurrence wins.
func jsonKeyOrder(data json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(data))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	seen := make(map[string]bool)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return keys
		}
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func decodeYAML(data []byte, raw *rawDescriptor, verr *ValidationError) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		verr.add(ErrTypeYAMLInvalid, fmt.Sprintf("YAML decode error: %v", err))
		return
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	switch {
	case root.Kind == 0, root.Kind == yaml.DocumentNode:
		// comments only
		verr.add(ErrTypeMissing, "Field required")
		return
	case root.Kind != yaml.MappingNode:
		verr.add(ErrTypeType, msgDictionary)
		return
	}

	values := make(map[string]*yaml.Node, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		if _, dup := values[root.Content[i].Value]; !dup {
			values[root.Content[i].Value] = root.Content[i+1]
		}
	}

	targets := raw.targets()
	for _, name := range fieldOrder {
		node, ok := values[name]
		if !ok {
			continue
		}
		if err := node.Decode(targets[name]); err != nil {
			var typeErr *yaml.TypeError
			if errors.As(err, &typeErr) {
				for _, msg := range typeErr.Errors {
					verr.add(ErrTypeType, msg, name)
				}
				continue
			}
			verr.add(ErrTypeYAMLInvalid, fmt.Sprintf("YAML decode error: %v", err), name)
		}
	}

	if node, ok := values["envs"]; ok && raw.Envs != nil {
		raw.EnvOrder = yamlKeyOrder(node)
	}
}

// yamlKeyOrder returns the keys of a YAML mapping in document order.
func yamlKeyOrder(node *yaml.Node) []string {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}

	keys := make([]string, 0, len(node.Content)/2)
	seen := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}
	return keys
}

func (r *rawDescriptor) toDescriptor(verr *ValidationError) *Descriptor {
	const required = "Field required"

	d := &Descriptor{
		Resources: r.Resources,
		Envs:      r.Envs,
		EnvOrder:  r.EnvOrder,
		Secrets:   r.Secrets,
	}

	if r.AppName == nil {
		verr.add(ErrTypeMissing, required, "app_name")
	} else {
		d.AppName = *r.AppName
	}
	if r.Replicas == nil {
		verr.add(ErrTypeMissing, required, "replicas")
	} else {
		d.Replicas = *r.Replicas
	}
	if r.ImageAddress == nil {
		verr.add(ErrTypeMissing, required, "image_address")
	} else {
		d.ImageAddress = *r.ImageAddress
	}
	if r.ImageTag == nil {
		verr.add(ErrTypeMissing, required, "image_tag")
	} else {
		d.ImageTag = *r.ImageTag
	}
	if r.DomainAddress != nil {
		d.DomainAddress = *r.DomainAddress
	}
	if r.ServicePort == nil {
		verr.add(ErrTypeMissing, required, "service_port")
	} else {
		d.ServicePort = *r.ServicePort
	}
	if r.Resources == nil {
		verr.add(ErrTypeMissing, required, "resources")
	}
	if r.Envs == nil {
		verr.add(ErrTypeMissing, required, "envs")
	}
	if r.ExternalAccess != nil {
		d.ExternalAccess = *r.ExternalAccess
	}

	return d
}
