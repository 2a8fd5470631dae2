package cli

import (
	"os/exec"
	"runtime"
	"strings"
)

// GitStatus represents the git installation status.
type GitStatus struct {
	Installed bool
	Version   string
	Path      string
}

// lookGitPath allows tests to stub git discovery.
var lookGitPath = func() (string, error) {
	return exec.LookPath("git")
}

// gitVersionOutput allows tests to stub the version probe.
var gitVersionOutput = func() ([]byte, error) {
	return exec.Command("git", "--version").Output()
}

// CheckGit checks if git is installed and returns its status.
func CheckGit() GitStatus {
	path, err := lookGitPath()
	if err != nil {
		return GitStatus{Installed: false}
	}

	raw, err := gitVersionOutput()
	if err != nil {
		return GitStatus{Installed: true, Path: path}
	}

	// Version output is like "git version 2.43.0"
	version := strings.TrimSpace(string(raw))
	version = strings.TrimPrefix(version, "git version ")

	return GitStatus{
		Installed: true,
		Version:   version,
		Path:      path,
	}
}

// PrintGitInstallInstructions prints instructions for installing git.
func PrintGitInstallInstructions() {
	out.Println("git is not installed.")
	out.Println("")
	out.Println("To install git, run:")
	out.Println("")
	switch runtime.GOOS {
	case "darwin":
		out.Println("  brew install git")
		out.Println("  # or")
		out.Println("  xcode-select --install")
	case "linux":
		out.Println("  sudo apt install git    # Debian/Ubuntu")
		out.Println("  sudo dnf install git    # Fedora")
	case "windows":
		out.Println("  winget install --id Git.Git")
	default:
		out.Println("  see https://git-scm.com/downloads")
	}
	out.Println("")
	out.Println("For more information, visit: https://git-scm.com")
}
