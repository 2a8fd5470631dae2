package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude-commands/dbapps/internal/config"
)

// Project represents a loaded dbapps checkout.
type Project struct {
	Root     string
	Config   *config.Config
	Warnings []string
}

// LoadProject finds and loads a checkout from the current directory.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectOrDefault finds and loads a checkout from the current directory.
// When no install.yaml exists, it falls back to the built-in configuration
// rooted at the working directory and records a warning. Installation must
// proceed even without a config file.
func LoadProjectOrDefault() (*Project, error) {
	root, err := FindRoot()
	if errors.Is(err, ErrNoProjectRoot) {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			return nil, cwdErr
		}
		return &Project{
			Root:     cwd,
			Config:   config.Default(),
			Warnings: []string{"install.yaml not found, using built-in defaults"},
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a checkout from a specified root directory.
func LoadProjectFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, ConfigFileName)

	cfg, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// A missing source directory is not fatal: every manifest entry will be
	// reported as missing at install time instead.
	sourceDir := filepath.Join(root, cfg.Install.Source)
	if info, statErr := os.Stat(sourceDir); statErr != nil || !info.IsDir() {
		warnings = append(warnings, fmt.Sprintf("source directory %q not found", cfg.Install.Source))
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// ConfigPath returns the full path to the checkout configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, ConfigFileName)
}

// SourceDir returns the absolute path to the directory holding command files.
func (p *Project) SourceDir() string {
	return filepath.Join(p.Root, p.Config.Install.Source)
}

// DestinationDir resolves the install destination against the given home
// directory. Absolute destinations are used as-is.
func (p *Project) DestinationDir(home string) string {
	dest := p.Config.Install.Destination
	if filepath.IsAbs(dest) {
		return dest
	}
	return filepath.Join(home, dest)
}
