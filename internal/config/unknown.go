package config

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWithWarnings parses config data and returns any unknown field warnings.
func LoadWithWarnings(path string, data []byte) (*Config, []string, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Detect unknown fields
	warnings := detectUnknownFields(data)

	return &cfg, warnings, nil
}

// detectUnknownFields compares raw YAML with known struct fields.
// Note: Since this is called after successful Config parsing, a parse failure
// here would indicate an unexpected internal inconsistency.
func detectUnknownFields(data []byte) []string {
	var warnings []string

	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// This should never happen since the data was already parsed successfully.
		// Return a warning so the condition is visible rather than silently ignored.
		return []string{"internal: failed to re-parse config for unknown field detection"}
	}

	knownTopLevel := getYAMLFields(reflect.TypeOf(Config{}))
	for key := range raw {
		if key == "$schema" {
			continue // $schema is explicitly allowed and ignored
		}
		if !knownTopLevel[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q at root level (ignored)", key))
		}
	}

	if node, ok := raw["project"]; ok {
		warnings = append(warnings, checkSectionUnknownFields(node, "project", reflect.TypeOf(ProjectConfig{}))...)
	}
	if node, ok := raw["install"]; ok {
		warnings = append(warnings, checkSectionUnknownFields(node, "install", reflect.TypeOf(InstallConfig{}))...)
	}
	if node, ok := raw["commands"]; ok {
		warnings = append(warnings, checkCommandsUnknownFields(node)...)
	}

	return warnings
}

func checkSectionUnknownFields(node yaml.Node, section string, t reflect.Type) []string {
	var warnings []string

	var fields map[string]yaml.Node
	if err := node.Decode(&fields); err != nil {
		// Should not happen since the section parsed successfully.
		return nil
	}

	known := getYAMLFields(t)
	for key := range fields {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q in %s (ignored)", key, section))
		}
	}

	return warnings
}

func checkCommandsUnknownFields(node yaml.Node) []string {
	var warnings []string

	var commands []map[string]yaml.Node
	if err := node.Decode(&commands); err != nil {
		return nil
	}

	known := getYAMLFields(reflect.TypeOf(CommandConfig{}))
	for i, command := range commands {
		for key := range command {
			if !known[key] {
				warnings = append(warnings, fmt.Sprintf("unknown field %q in commands[%d] (ignored)", key, i))
			}
		}
	}

	return warnings
}

// getYAMLFields returns a map of known YAML field names for a struct type.
func getYAMLFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		// Extract field name from tag (before comma)
		name := strings.Split(tag, ",")[0]
		if name != "" {
			fields[name] = true
		}
	}
	return fields
}
