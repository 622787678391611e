// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package schemadoc

import (
	"encoding/json"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/samber/oops"
	jschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// schemaState holds the compiled schema and a sync.Once guarding it.
type schemaState struct {
	once   sync.Once
	schema *jschema.Schema
	err    error
}

var globalSchemaState = &schemaState{}

// SchemaID is the $id advertised by GenerateSchema and used by bootstrap
// manifest files that want to reference it explicitly.
const SchemaID = "https://datafixer.dev/schemas/manifest.schema.json"

// GenerateSchema generates a JSON Schema from the Manifest struct.
func GenerateSchema() ([]byte, error) {
	r := jsonschema.Reflector{
		DoNotReference: true,
	}
	schema := r.Reflect(&Manifest{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "DataFixer Type Registry Manifest"
	schema.Description = "Schema for the bootstrap type-registry declaration file"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, oops.In("schemadoc").Hint("failed to marshal schema").Wrap(err)
	}
	data = append(data, '\n')
	return data, nil
}

// ValidateManifest validates raw YAML or JSON manifest bytes against the
// Manifest JSON Schema. It does not unmarshal into a Manifest struct; use
// ParseManifest for that once validation passes.
func ValidateManifest(data []byte) error {
	if len(data) == 0 {
		return oops.In("schemadoc").New("manifest data is empty")
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return oops.In("schemadoc").Hint("invalid YAML/JSON").Wrap(err)
	}
	jsonDoc := convertToJSONTypes(doc)

	sch, err := getCompiledSchema()
	if err != nil {
		return oops.In("schemadoc").Hint("failed to compile schema").Wrap(err)
	}
	if err := sch.Validate(jsonDoc); err != nil {
		return oops.In("schemadoc").Hint("manifest validation failed").Wrap(err)
	}
	return nil
}

// ParseManifest validates data against the schema, then unmarshals it into
// a Manifest. Accepts both YAML and JSON, since JSON is valid YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	if err := ValidateManifest(data); err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, oops.In("schemadoc").Hint("failed to decode manifest").Wrap(err)
	}
	return &m, nil
}

func getCompiledSchema() (*jschema.Schema, error) {
	globalSchemaState.once.Do(func() {
		globalSchemaState.schema, globalSchemaState.err = compileSchema()
	})
	return globalSchemaState.schema, globalSchemaState.err
}

func compileSchema() (*jschema.Schema, error) {
	schemaBytes, err := GenerateSchema()
	if err != nil {
		return nil, err
	}

	var schemaData any
	if err := json.Unmarshal(schemaBytes, &schemaData); err != nil {
		return nil, oops.In("schemadoc").Hint("failed to parse schema JSON").Wrap(err)
	}

	c := jschema.NewCompiler()
	if err := c.AddResource("manifest.json", schemaData); err != nil {
		return nil, oops.In("schemadoc").Hint("failed to add schema resource").Wrap(err)
	}

	sch, err := c.Compile("manifest.json")
	if err != nil {
		return nil, oops.In("schemadoc").Hint("failed to compile schema").Wrap(err)
	}
	return sch, nil
}

// convertToJSONTypes recursively normalizes yaml.Unmarshal's map[string]any
// output into the plain JSON-compatible shapes jsonschema/v6 expects.
func convertToJSONTypes(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v := range val {
			result[k] = convertToJSONTypes(v)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v := range val {
			result[i] = convertToJSONTypes(v)
		}
		return result
	case string, int, int64, float64, bool, nil:
		return val
	default:
		if b, err := json.Marshal(val); err == nil {
			var result any
			if err := json.Unmarshal(b, &result); err == nil {
				return result
			}
		}
		return val
	}
}

// ResetSchemaCache clears the cached compiled schema. Exposed for tests
// that call GenerateSchema/ValidateManifest repeatedly against different
// reflector states.
func ResetSchemaCache() {
	globalSchemaState = &schemaState{}
}
