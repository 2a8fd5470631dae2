// Package installer copies command files into the Claude Code commands directory.
package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/claude-commands/dbapps/internal/errors"
	"github.com/claude-commands/dbapps/internal/output"
)

// Options configures an installation.
type Options struct {
	// SourceDir holds the command files to install.
	SourceDir string

	// DestDir is the directory files are installed into. Created if absent.
	DestDir string

	// Manifest lists the file names to install, in order. Entries missing
	// from SourceDir produce warnings, never errors.
	Manifest []string

	// DryRun prints the installation plan without touching the filesystem.
	DryRun bool
}

// Result reports what an installation did.
type Result struct {
	// Installed holds the manifest entries that were copied, in manifest order.
	Installed []string

	// Missing holds the manifest entries absent from the source directory,
	// in manifest order.
	Missing []string
}

// Installer performs the file installation step.
type Installer struct {
	opts Options
	out  *output.Writer
}

// New creates an Installer with the given options.
func New(opts Options) *Installer {
	return &Installer{
		opts: opts,
		out:  output.New(),
	}
}

// SetOutput sets a custom output writer (for testing).
func (i *Installer) SetOutput(out *output.Writer) {
	i.out = out
}

// Install copies the manifest into the destination directory.
// Missing manifest entries are reported and skipped; the only errors are
// filesystem failures on the destination side.
func (i *Installer) Install() (*Result, error) {
	if i.opts.DryRun {
		return i.dryRun(), nil
	}

	destExisted := dirExists(i.opts.DestDir)
	if !destExisted {
		i.out.Notice("Creating %s...", i.opts.DestDir)
	}
	if err := os.MkdirAll(i.opts.DestDir, 0755); err != nil {
		return nil, errors.PathError(err, "cannot create directory", i.opts.DestDir)
	}

	i.out.Action("Copying command files...")

	result := &Result{}
	for _, name := range i.opts.Manifest {
		src := filepath.Join(i.opts.SourceDir, name)
		if !fileExists(src) {
			i.out.Warning("%s not found", name)
			result.Missing = append(result.Missing, name)
			continue
		}

		dst := filepath.Join(i.opts.DestDir, name)
		if err := copyFile(src, dst); err != nil {
			return nil, errors.PathError(err, fmt.Sprintf("failed to install %s", name), dst)
		}

		i.out.Check("Installed %s", name)
		result.Installed = append(result.Installed, name)
	}

	return result, nil
}

// dryRun prints the installation plan and reports what Install would do.
func (i *Installer) dryRun() *Result {
	i.out.DryRunStart()

	if dirExists(i.opts.DestDir) {
		i.out.Step(1, "Use existing %s", i.opts.DestDir)
	} else {
		i.out.Step(1, "Create %s", i.opts.DestDir)
	}

	result := &Result{}
	i.out.Step(2, "Copy %d file(s) from %s", len(i.opts.Manifest), i.opts.SourceDir)
	for _, name := range i.opts.Manifest {
		src := filepath.Join(i.opts.SourceDir, name)
		if fileExists(src) {
			i.out.StepDetail("%s", name)
			result.Installed = append(result.Installed, name)
		} else {
			i.out.StepDetail("%s (missing)", name)
			result.Missing = append(result.Missing, name)
		}
	}

	i.out.DryRunEnd()
	return result
}

// dirExists reports whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// fileExists reports whether path exists and is a regular file.
// Directories masquerading as manifest entries count as missing.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
