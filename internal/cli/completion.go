package cli

import (
	"fmt"
	"strings"

	"github.com/claude-commands/dbapps/internal/errors"
)

// cmdCompletion generates shell completion scripts.
func cmdCompletion(args []string) int {
	shell := ""
	alias := ""

	// Parse arguments
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printCompletionUsage()
			return 0
		case strings.HasPrefix(arg, "--alias="):
			alias = strings.TrimPrefix(arg, "--alias=")
		case arg == "--alias":
			out.ErrorPrefix("completion: --alias requires a value (--alias=<name>)")
			return errors.ExitConfigError
		case strings.HasPrefix(arg, "-"):
			out.ErrorPrefix("completion: unknown flag: %s", arg)
			printCompletionUsage()
			return errors.ExitConfigError
		default:
			if shell != "" {
				out.ErrorPrefix("completion: unexpected argument: %s", arg)
				return errors.ExitConfigError
			}
			shell = arg
		}
	}

	if shell == "" {
		out.ErrorPrefix("completion: shell required (bash, zsh, fish)")
		printCompletionUsage()
		return errors.ExitConfigError
	}

	cmdName := "dbapps-install"
	if alias != "" {
		cmdName = alias
	}

	switch shell {
	case "bash":
		out.Print("%s", generateBashCompletion(cmdName))
	case "zsh":
		out.Print("%s", generateZshCompletion(cmdName))
	case "fish":
		out.Print("%s", generateFishCompletion(cmdName))
	default:
		out.ErrorPrefix("completion: unsupported shell %q (use bash, zsh, or fish)", shell)
		return errors.ExitConfigError
	}

	return 0
}

// printCompletionUsage prints the help text for the completion command.
func printCompletionUsage() {
	out.HelpTitle("dbapps-install completion - generate shell completion scripts")

	out.HelpSection("Usage:")
	out.HelpUsage("dbapps-install completion <shell> [--alias=<name>]")

	out.HelpSection("Arguments:")
	out.HelpFlag("<shell>", "Shell type: bash, zsh, or fish", helpFlagWidth)

	out.HelpSection("Options:")
	out.HelpFlag("--alias=<name>", "Generate completion for a command alias", helpFlagWidth)
	out.HelpFlag("-h, --help", "Show this help", helpFlagWidth)

	out.HelpSection("Installation:")
	out.Println("  Bash:  eval \"$(dbapps-install completion bash)\"")
	out.Println("  Zsh:   eval \"$(dbapps-install completion zsh)\"")
	out.Println("  Fish:  dbapps-install completion fish | source")
	out.Println("")
}

// builtinCommands returns the list of built-in CLI commands.
func builtinCommands() []string {
	return []string{
		"install",
		"validate",
		"completion",
		"version",
		"help",
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []string {
	return []string{
		"--update",
		"--dry-run",
		"--quiet",
		"--source",
		"--dest",
		"--help",
		"--version",
	}
}

func generateBashCompletion(cmdName string) string {
	commands := builtinCommands()
	flags := globalFlags()

	// Generate function name from command (replace - with _)
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_") + "_completions"

	var aliasNote string
	if cmdName == "dbapps-install" {
		aliasNote = `
# Alias support:
# If you use an alias (e.g., alias dbi="dbapps-install"), add completion for it:
#   complete -F _dbapps_install_completions dbi
# Or generate completion directly for your alias:
#   eval "$(dbapps-install completion bash --alias=dbi)"
`
	} else {
		aliasNote = fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="dbapps-install"
`, cmdName, cmdName)
	}

	return fmt.Sprintf(`# dbapps-install bash completion
# Add to ~/.bashrc: eval "$(dbapps-install completion bash)"
%s
%s() {
    local cur prev words cword
    _init_completion || return

    local commands="%s"
    local flags="%s"
    local completion_shells="bash zsh fish"

    case "${prev}" in
        %s)
            COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
            return
            ;;
        completion)
            COMPREPLY=($(compgen -W "${completion_shells}" -- "${cur}"))
            return
            ;;
        --source|--dest)
            _filedir -d
            return
            ;;
    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=($(compgen -W "${flags}" -- "${cur}"))
        return
    fi

    COMPREPLY=($(compgen -W "${commands} ${flags}" -- "${cur}"))
}

complete -F %s %s
`, aliasNote, funcName, strings.Join(commands, " "), strings.Join(flags, " "), cmdName, funcName, cmdName)
}

func generateZshCompletion(cmdName string) string {
	// Generate function name from command (replace - with _)
	funcName := "_" + strings.ReplaceAll(cmdName, "-", "_")

	var aliasNote string
	if cmdName == "dbapps-install" {
		aliasNote = `
# Alias support:
# If you use an alias (e.g., alias dbi="dbapps-install"), add completion for it:
#   compdef _dbapps_install dbi
# Or generate completion directly for your alias:
#   eval "$(dbapps-install completion zsh --alias=dbi)"
`
	} else {
		aliasNote = fmt.Sprintf(`
# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="dbapps-install"
`, cmdName, cmdName)
	}

	return fmt.Sprintf(`#compdef %s
# dbapps-install zsh completion
# Add to ~/.zshrc: eval "$(dbapps-install completion zsh)"
%s
%s() {
    local -a commands flags completion_shells

    commands=(
        'install:Install command files into ~/.claude/commands'
        'validate:Validate the install.yaml configuration'
        'completion:Generate shell completion'
        'version:Show version information'
        'help:Show help'
    )

    flags=(
        '(-u --update)'{-u,--update}'[Pull the latest repository changes before installing]'
        '(-n --dry-run)'{-n,--dry-run}'[Show what would be installed without writing]'
        '(-q --quiet)'{-q,--quiet}'[Minimal output]'
        '--source=[Override the command source directory]:directory:_files -/'
        '--dest=[Override the install destination directory]:directory:_files -/'
        '--help[Show help]'
        '--version[Show version]'
    )

    completion_shells=(
        'bash:Generate bash completion'
        'zsh:Generate zsh completion'
        'fish:Generate fish completion'
    )

    local cur_pos=$((CURRENT - 1))

    if (( cur_pos == 1 )); then
        _describe -t commands 'command' commands
        _arguments -s $flags[@]
        return
    fi

    case "${words[2]}" in
        completion)
            _describe -t shells 'shell' completion_shells
            ;;
        *)
            _arguments -s $flags[@]
            ;;
    esac
}

compdef %s %s
`, cmdName, aliasNote, funcName, funcName, cmdName)
}

func generateFishCompletion(cmdName string) string {
	var sb strings.Builder

	var aliasNote string
	if cmdName == "dbapps-install" {
		aliasNote = `# Alias support:
# If you use an alias (e.g., alias dbi="dbapps-install"), add completion for it:
#   complete -c dbi -w dbapps-install
# Or generate completion directly for your alias:
#   dbapps-install completion fish --alias=dbi | source
`
	} else {
		aliasNote = fmt.Sprintf(`# This completion is generated for the alias "%s"
# Make sure you have the alias defined: alias %s="dbapps-install"
`, cmdName, cmdName)
	}

	sb.WriteString(fmt.Sprintf(`# dbapps-install fish completion
# Add to config: dbapps-install completion fish | source

%s
# Disable file completion by default
complete -c %s -f

`, aliasNote, cmdName))

	commandDescs := [][2]string{
		{"install", "Install command files into ~/.claude/commands"},
		{"validate", "Validate the install.yaml configuration"},
		{"completion", "Generate shell completion"},
		{"version", "Show version information"},
		{"help", "Show help"},
	}

	for _, cmd := range commandDescs {
		sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_use_subcommand' -a '%s' -d '%s'\n", cmdName, cmd[0], cmd[1]))
	}

	sb.WriteString("\n# Global flags\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -s u -l update -d 'Pull the latest repository changes before installing'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -s n -l dry-run -d 'Show what would be installed without writing'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -s q -l quiet -d 'Minimal output'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l source -d 'Override the command source directory' -xa '(__fish_complete_directories)'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l dest -d 'Override the install destination directory' -xa '(__fish_complete_directories)'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l help -d 'Show help'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -l version -d 'Show version'\n", cmdName))

	sb.WriteString("\n# completion subcommands\n")
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from completion' -a 'bash' -d 'Generate bash completion'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from completion' -a 'zsh' -d 'Generate zsh completion'\n", cmdName))
	sb.WriteString(fmt.Sprintf("complete -c %s -n '__fish_seen_subcommand_from completion' -a 'fish' -d 'Generate fish completion'\n", cmdName))

	return sb.String()
}
