// Package schema provides JSON schema validation for install.yaml files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/claude-commands/dbapps/schema"
)

var (
	installSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		installData, err := schemafs.FS.ReadFile("install.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read install schema: %w", err)
			return
		}

		installDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(installData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal install schema: %w", err)
			return
		}

		if err := compiler.AddResource("install.schema.json", installDoc); err != nil {
			compileErr = fmt.Errorf("add install schema resource: %w", err)
			return
		}

		installSchema, err = compiler.Compile("install.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile install schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateInstall validates raw install.yaml data against the install schema.
// The YAML document is converted to its JSON value form before validation,
// so YAML-only constructs (non-string keys, custom tags) are rejected.
func ValidateInstall(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}

	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("config is not JSON-compatible: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := installSchema.Validate(doc); err != nil {
		return fmt.Errorf("install config validation failed: %w", err)
	}

	return nil
}
