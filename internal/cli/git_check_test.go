package cli

import (
	"os"
	"strings"
	"testing"
)

func TestCheckGit_Found(t *testing.T) {
	oldLook := lookGitPath
	oldVersion := gitVersionOutput
	lookGitPath = func() (string, error) { return "/usr/bin/git", nil }
	gitVersionOutput = func() ([]byte, error) { return []byte("git version 2.43.0\n"), nil }
	t.Cleanup(func() {
		lookGitPath = oldLook
		gitVersionOutput = oldVersion
	})

	status := CheckGit()
	if !status.Installed {
		t.Fatal("CheckGit().Installed = false, want true")
	}
	if status.Path != "/usr/bin/git" {
		t.Errorf("Path = %q, want /usr/bin/git", status.Path)
	}
	if status.Version != "2.43.0" {
		t.Errorf("Version = %q, want 2.43.0", status.Version)
	}
}

func TestCheckGit_NotFound(t *testing.T) {
	oldLook := lookGitPath
	lookGitPath = func() (string, error) { return "", os.ErrNotExist }
	t.Cleanup(func() { lookGitPath = oldLook })

	status := CheckGit()
	if status.Installed {
		t.Error("CheckGit().Installed = true, want false")
	}
	if status.Path != "" || status.Version != "" {
		t.Errorf("status = %+v, want zero Path and Version", status)
	}
}

func TestCheckGit_VersionProbeFails(t *testing.T) {
	oldLook := lookGitPath
	oldVersion := gitVersionOutput
	lookGitPath = func() (string, error) { return "/usr/bin/git", nil }
	gitVersionOutput = func() ([]byte, error) { return nil, os.ErrPermission }
	t.Cleanup(func() {
		lookGitPath = oldLook
		gitVersionOutput = oldVersion
	})

	status := CheckGit()
	if !status.Installed {
		t.Fatal("CheckGit().Installed = false, want true when only the probe fails")
	}
	if status.Version != "" {
		t.Errorf("Version = %q, want empty", status.Version)
	}
	if status.Path != "/usr/bin/git" {
		t.Errorf("Path = %q, want /usr/bin/git", status.Path)
	}
}

func TestPrintGitInstallInstructions(t *testing.T) {
	stdout, stderr := swapOutput(t)

	PrintGitInstallInstructions()

	text := stdout.String()
	if !strings.Contains(text, "git is not installed.") {
		t.Errorf("stdout missing status line:\n%s", text)
	}
	if !strings.Contains(text, "To install git, run:") {
		t.Errorf("stdout missing instructions header:\n%s", text)
	}
	if !strings.Contains(text, "https://git-scm.com") {
		t.Errorf("stdout missing reference URL:\n%s", text)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr:\n%s", stderr.String())
	}
}
