package config

// Default configuration values.
const (
	DefaultProjectName = "dbapps"
	DefaultRepository  = "https://github.com/claude-commands/dbapps"
	DefaultSource      = "commands"
	DefaultDestination = ".claude/commands"
)

// DefaultFiles is the built-in install manifest, in install order.
func DefaultFiles() []string {
	return []string{
		"dbapps.md",
		"deploy_to_databricks_template.py",
	}
}

// DefaultCommands describes the slash commands provided by the built-in
// manifest.
func DefaultCommands() []CommandConfig {
	return []CommandConfig{
		{
			Name:        "dbapps",
			Description: "Claude will create a React + FastAPI app with Databricks deployment",
		},
	}
}

// Default returns a configuration with all defaults applied.
// Used when no install.yaml is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	if cfg.Project.Name == "" {
		cfg.Project.Name = DefaultProjectName
	}
	if cfg.Project.Repository == "" {
		cfg.Project.Repository = DefaultRepository
	}
	if cfg.Install.Source == "" {
		cfg.Install.Source = DefaultSource
	}
	if cfg.Install.Destination == "" {
		cfg.Install.Destination = DefaultDestination
	}
	if cfg.Install.Files == nil {
		cfg.Install.Files = DefaultFiles()
	}
	if cfg.Commands == nil {
		cfg.Commands = DefaultCommands()
	}
}
