// Package cli provides command-line interface functionality for dbapps-install.
package cli

import (
	"fmt"
	"strings"

	"github.com/claude-commands/dbapps/internal/errors"
	"github.com/claude-commands/dbapps/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Help text alignment widths for consistent formatting.
const (
	helpCommandWidth = 10 // Width for commands like "completion"
	helpFlagWidth    = 14 // Width for flags like "--source=<dir>"
	helpEnvVarWidth  = 27 // Width for environment variables
)

// wantsHelp returns true if args contain -h or --help.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

// Run executes the CLI with the given arguments and returns an exit code.
// Running without a command installs the manifest.
func Run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			printUsage()
			return 0
		case "--version", "version":
			out.Println("dbapps-install %s", Version)
			return 0
		}
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	initUpdateReminder(opts.Quiet)

	// Show the reminder at the end of the run (unless skipped)
	defer showUpdateReminder()

	if len(remaining) == 0 {
		return cmdInstall(nil, opts)
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "install":
		return cmdInstall(cmdArgs, opts)
	case "validate":
		skipUpdateReminder()
		return cmdValidate(cmdArgs)
	case "completion":
		skipUpdateReminder()
		return cmdCompletion(cmdArgs)
	case "version":
		skipUpdateReminder()
		out.Println("dbapps-install %s", Version)
		return 0
	case "help":
		printUsage()
		return 0
	default:
		if strings.HasPrefix(cmd, "-") {
			out.ErrorPrefix("unknown flag: %s", cmd)
		} else {
			out.ErrorPrefix("unknown command %q", cmd)
		}
		out.Errorln("run 'dbapps-install --help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Update bool
	DryRun bool
	Quiet  bool
	Source string
	Dest   string
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of the stdlib flag package because flags can
// appear on either side of the command word and unknown arguments must be
// reported with a usage hint rather than a flag package error.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-u" || arg == "--update":
			opts.Update = true
			i++
		case arg == "-n" || arg == "--dry-run":
			opts.DryRun = true
			i++
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--source":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--source requires a value")
			}
			opts.Source = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--source="):
			opts.Source = strings.TrimPrefix(arg, "--source=")
			if opts.Source == "" {
				return nil, nil, fmt.Errorf("--source requires a value")
			}
			i++
		case arg == "--dest":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--dest requires a value")
			}
			opts.Dest = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--dest="):
			opts.Dest = strings.TrimPrefix(arg, "--dest=")
			if opts.Dest == "" {
				return nil, nil, fmt.Errorf("--dest requires a value")
			}
			i++
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	// Quiet applies to every command, so configure the shared writer here.
	out.SetQuiet(opts.Quiet)

	return opts, remaining, nil
}

func printUsage() {
	out.HelpTitle("dbapps-install - install Claude Code slash commands")

	out.HelpSection("Usage:")
	out.HelpUsage("dbapps-install [flags]            Install the command files")
	out.HelpUsage("dbapps-install <command> [flags]")

	out.HelpSection("Commands:")
	out.HelpCommand("install", "Install command files into ~/.claude/commands (default)", helpCommandWidth)
	out.HelpCommand("validate", "Validate the install.yaml configuration", helpCommandWidth)
	out.HelpCommand("completion", "Generate shell completion (bash, zsh, fish)", helpCommandWidth)
	out.HelpCommand("version", "Show version information", helpCommandWidth)
	out.HelpCommand("help", "Show this help", helpCommandWidth)

	out.HelpSection("Flags:")
	out.HelpFlag("-u, --update", "Pull the latest repository changes before installing", helpFlagWidth)
	out.HelpFlag("-n, --dry-run", "Show what would be installed without writing", helpFlagWidth)
	out.HelpFlag("-q, --quiet", "Minimal output (errors only)", helpFlagWidth)
	out.HelpFlag("--source=<dir>", "Override the command source directory", helpFlagWidth)
	out.HelpFlag("--dest=<dir>", "Override the install destination directory", helpFlagWidth)
	out.HelpFlag("-h, --help", "Show this help", helpFlagWidth)
	out.HelpFlag("--version", "Show version", helpFlagWidth)

	out.HelpSection("Environment:")
	out.HelpEnvVar("DBAPPS_NO_UPDATE_REMINDER=1", "Disable the periodic update reminder", helpEnvVarWidth)

	out.HelpSection("Examples:")
	out.HelpExample("dbapps-install", "Install the /dbapps command")
	out.HelpExample("dbapps-install --update", "Pull the latest changes, then install")
	out.HelpExample("dbapps-install --dry-run", "Preview without writing files")
	out.HelpExample("dbapps-install validate", "Check install.yaml for problems")
	out.Println("")
}
