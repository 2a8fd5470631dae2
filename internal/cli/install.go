package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/claude-commands/dbapps/internal/errors"
	"github.com/claude-commands/dbapps/internal/installer"
	"github.com/claude-commands/dbapps/internal/project"
	"github.com/claude-commands/dbapps/internal/updater"
)

// newUpdater allows tests to substitute the git updater.
var newUpdater = func(dir string) updater.Updater {
	return updater.NewGit(dir)
}

// userHomeDirFunc allows tests to override home directory resolution.
var userHomeDirFunc = os.UserHomeDir

// cmdInstall runs the update step (when requested) and installs the manifest.
func cmdInstall(args []string, opts *GlobalOptions) int {
	if wantsHelp(args) {
		printUsage()
		return 0
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			out.ErrorPrefix("install: unknown flag: %s", arg)
		} else {
			out.ErrorPrefix("install: unexpected argument: %s", arg)
		}
		return errors.ExitConfigError
	}

	// A missing install.yaml falls back to built-in defaults, so any error
	// here means the configuration itself is broken.
	proj, err := project.LoadProjectOrDefault()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}
	for _, warning := range proj.Warnings {
		out.WarningSimple("%s", warning)
	}

	srcDir := proj.SourceDir()
	if opts.Source != "" {
		srcDir = absPath(opts.Source)
	}

	destDir := opts.Dest
	if destDir == "" {
		home, homeErr := userHomeDirFunc()
		if homeErr != nil {
			out.ErrorPrefix("cannot determine home directory: %v", homeErr)
			return errors.ExitRuntimeError
		}
		destDir = proj.DestinationDir(home)
	} else {
		destDir = absPath(destDir)
	}

	if opts.DryRun {
		if opts.Update {
			out.Notice("Repository update is skipped in a dry run")
		}
	} else {
		out.Banner(installBannerTitle(proj))
		out.Blank()
		if opts.Update {
			runUpdateStep(proj)
			out.Blank()
		}
	}

	inst := installer.New(installer.Options{
		SourceDir: srcDir,
		DestDir:   destDir,
		Manifest:  proj.Config.Install.Files,
		DryRun:    opts.DryRun,
	})
	inst.SetOutput(out)

	result, err := inst.Install()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.GetExitCode(err)
	}

	if opts.DryRun {
		return errors.ExitSuccess
	}

	printInstallSummary(proj, destDir, result)
	return errors.ExitSuccess
}

// runUpdateStep best-effort syncs the checkout with its remote before
// installing. Every failure is downgraded to a warning so installation
// always proceeds.
func runUpdateStep(proj *project.Project) {
	repo := proj.Config.Project.Repository
	if !CheckGit().Installed {
		out.Warning("git is not installed, skipping update")
		PrintGitInstallInstructions()
		return
	}

	ctx := context.Background()
	upd := newUpdater(proj.Root)
	if !upd.IsRepository(ctx) {
		out.Warning("%s is not a git repository; clone from %s to get updates", proj.Root, repo)
		return
	}

	out.Action("Updating repository...")
	result := upd.Pull(ctx)
	switch result.Status {
	case updater.StatusUpdated:
		out.Check("%s", result.Message)
		markUpdated()
	case updater.StatusAlreadyCurrent:
		out.Info("%s", result.Message)
		markUpdated()
	default:
		out.Warning("update failed: %s", result.Message)
	}
}

// installBannerTitle names the primary command in the opening banner when the
// configuration provides exactly one.
func installBannerTitle(proj *project.Project) string {
	if len(proj.Config.Commands) == 1 {
		return fmt.Sprintf("Installing /%s command for Claude Code", proj.Config.Commands[0].Name)
	}
	name := proj.Config.Project.Description
	if name == "" {
		name = proj.Config.Project.Name
	}
	return fmt.Sprintf("Installing %s commands for Claude Code", name)
}

// printInstallSummary prints the completion banner, the usage summary, the
// destination path of every manifest entry, and the final install count.
func printInstallSummary(proj *project.Project, destDir string, result *installer.Result) {
	manifest := proj.Config.Install.Files

	out.Blank()
	out.BannerSuccess("Installation complete!")
	out.Blank()

	printCommandSummary(proj)

	out.Action("Files installed to:")
	for _, name := range manifest {
		out.Info("  %s", filepath.Join(destDir, name))
	}
	out.Blank()

	if len(result.Missing) > 0 {
		out.Check("Successfully installed %d of %d file(s)", len(result.Installed), len(manifest))
	} else {
		out.Check("Successfully installed %d file(s)", len(result.Installed))
	}
}

// printCommandSummary explains how to use the installed commands.
func printCommandSummary(proj *project.Project) {
	commands := proj.Config.Commands

	if len(commands) == 1 {
		cmd := commands[0]
		out.Action("The /%s command is now available in Claude Code!", cmd.Name)
		out.Blank()
		out.Action("Usage:")
		out.Step(1, "Open Claude Code in any directory")
		out.Step(2, "Type: /%s", cmd.Name)
		if cmd.Description != "" {
			out.Step(3, "%s", cmd.Description)
		} else {
			out.Step(3, "Describe what you want to build")
		}
		out.Blank()
		return
	}

	if len(commands) > 1 {
		titleCase := cases.Title(language.English)
		out.Action("The following commands are now available in Claude Code:")
		out.Blank()
		for _, cmd := range commands {
			desc := cmd.Description
			if desc == "" {
				desc = titleCase.String(strings.ReplaceAll(cmd.Name, "-", " "))
			}
			out.Info("  /%s - %s", cmd.Name, desc)
		}
		out.Blank()
		out.Action("Usage:")
		out.Step(1, "Open Claude Code in any directory")
		out.Step(2, "Type a command name to get started")
		out.Blank()
	}
}

// absPath resolves a user-supplied path against the working directory.
func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
