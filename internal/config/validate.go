package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation patterns for install.yaml fields.
var (
	// Project name: must start with lowercase letter, may contain lowercase, digits, hyphens.
	// Hyphens must not be consecutive or trailing.
	projectNamePattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

	// Command name: lowercase letters, digits, and hyphens.
	commandNamePattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a configuration for errors and returns warnings for non-fatal issues.
// Duplicate manifest entries are reported as warnings, not errors.
func Validate(cfg *Config) (warnings []string, err error) {
	if err := validateProject(cfg); err != nil {
		return nil, err
	}

	if err := validateInstall(cfg); err != nil {
		return nil, err
	}

	if err := validateCommands(cfg); err != nil {
		return nil, err
	}

	warnings = append(warnings, duplicateFileWarnings(cfg)...)

	return warnings, nil
}

func validateProject(cfg *Config) error {
	return ValidateProjectName(cfg.Project.Name)
}

func validateInstall(cfg *Config) error {
	if cfg.Install.Source == "" {
		return &ValidationError{Field: "install.source", Message: "is required"}
	}

	if cfg.Install.Destination == "" {
		return &ValidationError{Field: "install.destination", Message: "is required"}
	}

	for i, name := range cfg.Install.Files {
		if err := validateManifestEntry(i, name); err != nil {
			return err
		}
	}

	return nil
}

func validateManifestEntry(index int, name string) error {
	field := fmt.Sprintf("install.files[%d]", index)

	if name == "" {
		return &ValidationError{Field: field, Message: "must not be empty"}
	}

	if strings.ContainsAny(name, `/\`) {
		return &ValidationError{
			Field:   field,
			Message: "must be a plain file name without path separators",
		}
	}

	if name == "." || name == ".." {
		return &ValidationError{Field: field, Message: "must be a file name"}
	}

	return nil
}

func validateCommands(cfg *Config) error {
	for i, command := range cfg.Commands {
		if command.Name == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("commands[%d].name", i),
				Message: "is required",
			}
		}
		if !commandNamePattern.MatchString(command.Name) {
			return &ValidationError{
				Field:   fmt.Sprintf("commands[%d].name", i),
				Message: "must match pattern ^[a-z][a-z0-9-]*$ (lowercase letters, digits, hyphens)",
			}
		}
	}
	return nil
}

func duplicateFileWarnings(cfg *Config) []string {
	var warnings []string

	seen := make(map[string]bool, len(cfg.Install.Files))
	for _, name := range cfg.Install.Files {
		if seen[name] {
			warnings = append(warnings, fmt.Sprintf("duplicate manifest entry %q (installed twice)", name))
			continue
		}
		seen[name] = true
	}

	return warnings
}

// ValidateProjectName checks if a project name is valid.
// Returns a ValidationError if the name is empty, too long (>128 chars),
// or doesn't match the required pattern.
func ValidateProjectName(name string) error {
	if name == "" {
		return &ValidationError{Field: "project.name", Message: "is required"}
	}
	if len(name) > 128 {
		return &ValidationError{Field: "project.name", Message: "must be 128 characters or less"}
	}
	if !projectNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "project.name",
			Message: "must match pattern ^[a-z][a-z0-9]*(-[a-z0-9]+)*$ (lowercase letters, digits, non-consecutive hyphens)",
		}
	}
	return nil
}

// ValidateCommandName checks if a slash command name is valid.
func ValidateCommandName(name string) error {
	if name == "" {
		return &ValidationError{Field: "command name", Message: "is required"}
	}
	if !commandNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "command name",
			Message: "must match pattern ^[a-z][a-z0-9-]*$",
		}
	}
	return nil
}
