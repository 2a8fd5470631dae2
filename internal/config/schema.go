// Package config provides configuration loading and validation for install.yaml.
package config

// Config represents the complete install.yaml configuration.
type Config struct {
	Project  ProjectConfig   `yaml:"project"`
	Install  InstallConfig   `yaml:"install"`
	Commands []CommandConfig `yaml:"commands,omitempty"`
}

// ProjectConfig contains project metadata.
type ProjectConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Repository  string `yaml:"repository,omitempty"`
}

// InstallConfig defines what gets installed and where.
type InstallConfig struct {
	// Source is the directory holding the command files, relative to the
	// project root.
	Source string `yaml:"source,omitempty"`

	// Destination is where files are installed. Relative paths are resolved
	// against the user's home directory.
	Destination string `yaml:"destination,omitempty"`

	// Files is the ordered manifest of file names to install from Source.
	// Order is preserved in output and in the installed-file listing.
	Files []string `yaml:"files,omitempty"`
}

// CommandConfig describes a slash command provided by the installed files.
type CommandConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}
