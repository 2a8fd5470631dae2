// Package errors provides structured error types and exit codes for dbapps-install.
package errors

import (
	"fmt"
)

// Exit codes returned by the installer.
const (
	ExitSuccess          = 0 // Success (including partial installs)
	ExitRuntimeError     = 1 // Runtime error (directory creation failed, copy failed, etc.)
	ExitConfigError      = 2 // Configuration error (invalid install.yaml, bad arguments, etc.)
	ExitEnvironmentError = 3 // Environment error (missing dependency, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindConfig
	KindNotFound
	KindValidation
	KindEnvironment
)

// InstallError is the base error type for dbapps-install.
type InstallError struct {
	Kind    ErrorKind
	Message string
	Path    string // Filesystem path if applicable
	Cause   error  // Underlying error
}

func (e *InstallError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Path)
	}
	return e.Message
}

func (e *InstallError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
func (e *InstallError) ExitCode() int {
	switch e.Kind {
	case KindConfig, KindValidation:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// New creates a new runtime error.
func New(message string) *InstallError {
	return &InstallError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *InstallError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *InstallError {
	return &InstallError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *InstallError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *InstallError {
	return &InstallError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *InstallError {
	return Environment(fmt.Sprintf(format, args...))
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *InstallError {
	return &InstallError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// PathError creates a runtime error naming a filesystem path.
func PathError(err error, message, path string) *InstallError {
	return &InstallError{
		Kind:    KindRuntime,
		Message: message,
		Path:    path,
		Cause:   err,
	}
}

// NotFound creates a not found error.
func NotFound(what, name string) *InstallError {
	return &InstallError{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found: %s", what, name),
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if ie, ok := err.(*InstallError); ok {
		return ie.ExitCode()
	}
	return ExitRuntimeError
}
