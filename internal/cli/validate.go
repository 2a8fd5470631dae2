package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/claude-commands/dbapps/internal/errors"
	"github.com/claude-commands/dbapps/internal/project"
	"github.com/claude-commands/dbapps/internal/schema"
)

// cmdValidate checks install.yaml against the configuration schema and the
// loader rules without installing anything.
func cmdValidate(args []string) int {
	if wantsHelp(args) {
		printValidateUsage()
		return 0
	}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			out.ErrorPrefix("validate: unknown flag: %s", arg)
		} else {
			out.ErrorPrefix("validate: unexpected argument: %s", arg)
		}
		return errors.ExitConfigError
	}

	proj, err := project.LoadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	for _, warning := range proj.Warnings {
		out.WarningSimple("%s", warning)
	}

	data, err := os.ReadFile(proj.ConfigPath())
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitRuntimeError
	}
	if err := schema.ValidateInstall(data); err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.Check("Configuration is valid.")
	out.SummaryItem("Project", proj.Config.Project.Name)
	out.SummaryItem("Source", proj.Config.Install.Source)
	out.SummaryItem("Destination", proj.Config.Install.Destination)
	out.SummaryItem("Files", fmt.Sprintf("%d", len(proj.Config.Install.Files)))
	if len(proj.Warnings) > 0 {
		out.SummaryItem("Warnings", fmt.Sprintf("%d", len(proj.Warnings)))
	}
	return 0
}

func printValidateUsage() {
	out.HelpTitle("dbapps-install validate - validate the install.yaml configuration")

	out.HelpSection("Usage:")
	out.HelpUsage("dbapps-install validate")

	out.HelpSection("Checks:")
	out.Println("  - install.yaml parses and matches the configuration schema")
	out.Println("  - manifest entries are plain file names")
	out.Println("  - unknown and duplicate entries produce warnings")
	out.Println("")
}
