package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/claude-commands/dbapps/internal/output"
)

// swapOutput replaces the shared output writer with buffered writers for the
// duration of a test.
func swapOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	old := out
	out = output.NewWithWriters(&stdout, &stderr, false)
	t.Cleanup(func() { out = old })
	return &stdout, &stderr
}

// stubSettingsDir redirects global settings and the update stamp into a
// temporary directory so tests never touch the real home directory.
func stubSettingsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	old := globalSettingsBasePath
	globalSettingsBasePath = dir
	t.Cleanup(func() { globalSettingsBasePath = old })
	return dir
}

// withWorkingDir changes to dir, runs fn, then restores original directory
func withWorkingDir(t *testing.T, dir string, fn func()) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(originalWd)
	})
	fn()
}

// writeCheckout creates a temporary checkout with an install.yaml and the
// given command files, returning its root.
func writeCheckout(t *testing.T, configYAML string, files map[string]string) string {
	t.Helper()
	root := t.TempDir()

	if err := os.WriteFile(filepath.Join(root, "install.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}

	srcDir := filepath.Join(root, "commands")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(srcDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return root
}

const testConfig = `project:
  name: dbapps
  repository: https://github.com/claude-commands/dbapps
install:
  source: commands
  files:
    - dbapps.md
    - deploy_to_databricks_template.py
commands:
  - name: dbapps
    description: Claude will create a React + FastAPI app with Databricks deployment
`

func TestParseGlobalFlags(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantUpdate    bool
		wantDryRun    bool
		wantQuiet     bool
		wantSource    string
		wantDest      string
		wantRemaining []string
		wantErr       bool
	}{
		{
			name:          "no flags",
			args:          []string{"install"},
			wantRemaining: []string{"install"},
		},
		{
			name:       "-u flag",
			args:       []string{"-u"},
			wantUpdate: true,
		},
		{
			name:       "--update flag",
			args:       []string{"--update"},
			wantUpdate: true,
		},
		{
			name:       "-n flag",
			args:       []string{"-n"},
			wantDryRun: true,
		},
		{
			name:       "--dry-run flag",
			args:       []string{"--dry-run"},
			wantDryRun: true,
		},
		{
			name:      "-q flag",
			args:      []string{"-q"},
			wantQuiet: true,
		},
		{
			name:       "--source with space",
			args:       []string{"--source", "payload"},
			wantSource: "payload",
		},
		{
			name:       "--source=value",
			args:       []string{"--source=payload"},
			wantSource: "payload",
		},
		{
			name:     "--dest with space",
			args:     []string{"--dest", "/tmp/cmds"},
			wantDest: "/tmp/cmds",
		},
		{
			name:     "--dest=value",
			args:     []string{"--dest=/tmp/cmds"},
			wantDest: "/tmp/cmds",
		},
		{
			name:          "flags after command",
			args:          []string{"install", "--update"},
			wantUpdate:    true,
			wantRemaining: []string{"install"},
		},
		{
			name:          "combined flags",
			args:          []string{"-u", "-n", "-q", "install"},
			wantUpdate:    true,
			wantDryRun:    true,
			wantQuiet:     true,
			wantRemaining: []string{"install"},
		},
		{
			name:    "--source without value",
			args:    []string{"--source"},
			wantErr: true,
		},
		{
			name:    "--source= empty value",
			args:    []string{"--source="},
			wantErr: true,
		},
		{
			name:    "--dest without value",
			args:    []string{"--dest"},
			wantErr: true,
		},
		{
			name:          "unknown flag passes through",
			args:          []string{"--bogus"},
			wantRemaining: []string{"--bogus"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swapOutput(t)
			opts, remaining, err := parseGlobalFlags(tt.args)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseGlobalFlags(%v) expected error", tt.args)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseGlobalFlags(%v) error = %v", tt.args, err)
			}
			if opts.Update != tt.wantUpdate {
				t.Errorf("Update = %v, want %v", opts.Update, tt.wantUpdate)
			}
			if opts.DryRun != tt.wantDryRun {
				t.Errorf("DryRun = %v, want %v", opts.DryRun, tt.wantDryRun)
			}
			if opts.Quiet != tt.wantQuiet {
				t.Errorf("Quiet = %v, want %v", opts.Quiet, tt.wantQuiet)
			}
			if opts.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", opts.Source, tt.wantSource)
			}
			if opts.Dest != tt.wantDest {
				t.Errorf("Dest = %q, want %q", opts.Dest, tt.wantDest)
			}
			if len(remaining) != 0 || len(tt.wantRemaining) != 0 {
				if !reflect.DeepEqual(remaining, tt.wantRemaining) {
					t.Errorf("remaining = %v, want %v", remaining, tt.wantRemaining)
				}
			}
		})
	}
}

func TestWantsHelp(t *testing.T) {
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"install"}, false},
		{[]string{"-h"}, true},
		{[]string{"--help"}, true},
		{[]string{"install", "--help"}, true},
	}

	for _, tt := range tests {
		if got := wantsHelp(tt.args); got != tt.want {
			t.Errorf("wantsHelp(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestRun_Help(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help", []string{"help"}},
		{"-h", []string{"-h"}},
		{"--help", []string{"--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := swapOutput(t)
			exitCode := Run(tt.args)
			if exitCode != 0 {
				t.Errorf("Run(%v) = %d, want 0", tt.args, exitCode)
			}
			if !strings.Contains(stdout.String(), "dbapps-install") {
				t.Errorf("help output missing program name:\n%s", stdout.String())
			}
			if !strings.Contains(stdout.String(), "--update") {
				t.Errorf("help output missing flags:\n%s", stdout.String())
			}
		})
	}
}

func TestRun_Version(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"version", []string{"version"}},
		{"--version", []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := swapOutput(t)
			exitCode := Run(tt.args)
			if exitCode != 0 {
				t.Errorf("Run(%v) = %d, want 0", tt.args, exitCode)
			}
			if !strings.Contains(stdout.String(), "dbapps-install "+Version) {
				t.Errorf("version output = %q, want to contain %q", stdout.String(), "dbapps-install "+Version)
			}
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	stubSettingsDir(t)
	_, stderr := swapOutput(t)

	exitCode := Run([]string{"frobnicate"})
	if exitCode != 2 {
		t.Errorf("Run([frobnicate]) = %d, want 2", exitCode)
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Errorf("stderr = %q, want unknown command message", stderr.String())
	}
	if !strings.Contains(stderr.String(), "--help") {
		t.Errorf("stderr = %q, want usage hint", stderr.String())
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	stubSettingsDir(t)
	_, stderr := swapOutput(t)

	exitCode := Run([]string{"--frobnicate"})
	if exitCode != 2 {
		t.Errorf("Run([--frobnicate]) = %d, want 2", exitCode)
	}
	if !strings.Contains(stderr.String(), "unknown flag") {
		t.Errorf("stderr = %q, want unknown flag message", stderr.String())
	}
}

func TestRun_FlagValueMissing(t *testing.T) {
	stubSettingsDir(t)
	_, stderr := swapOutput(t)

	exitCode := Run([]string{"--source"})
	if exitCode != 2 {
		t.Errorf("Run([--source]) = %d, want 2", exitCode)
	}
	if !strings.Contains(stderr.String(), "--source requires a value") {
		t.Errorf("stderr = %q, want value-required message", stderr.String())
	}
}

func TestRun_InstallsByDefault(t *testing.T) {
	stubSettingsDir(t)
	stdout, _ := swapOutput(t)

	root := writeCheckout(t, testConfig, map[string]string{
		"dbapps.md":                        "# dbapps\n",
		"deploy_to_databricks_template.py": "print('deploy')\n",
	})
	destDir := filepath.Join(t.TempDir(), "commands")

	withWorkingDir(t, root, func() {
		exitCode := Run([]string{"--dest", destDir})
		if exitCode != 0 {
			t.Fatalf("Run() = %d, want 0\nstdout:\n%s", exitCode, stdout.String())
		}
	})

	for _, name := range []string{"dbapps.md", "deploy_to_databricks_template.py"} {
		if _, err := os.Stat(filepath.Join(destDir, name)); err != nil {
			t.Errorf("%s not installed: %v", name, err)
		}
	}
	if !strings.Contains(stdout.String(), "✓ Successfully installed 2 file(s)") {
		t.Errorf("stdout missing final count:\n%s", stdout.String())
	}
}

func TestRun_ExplicitInstallCommand(t *testing.T) {
	stubSettingsDir(t)
	stdout, _ := swapOutput(t)

	root := writeCheckout(t, testConfig, map[string]string{
		"dbapps.md":                        "# dbapps\n",
		"deploy_to_databricks_template.py": "print('deploy')\n",
	})
	destDir := filepath.Join(t.TempDir(), "commands")

	withWorkingDir(t, root, func() {
		exitCode := Run([]string{"install", "--dest", destDir})
		if exitCode != 0 {
			t.Fatalf("Run(install) = %d, want 0\nstdout:\n%s", exitCode, stdout.String())
		}
	})

	if _, err := os.Stat(filepath.Join(destDir, "dbapps.md")); err != nil {
		t.Errorf("dbapps.md not installed: %v", err)
	}
}

func TestRun_QuietInstall(t *testing.T) {
	stubSettingsDir(t)
	stdout, stderr := swapOutput(t)

	root := writeCheckout(t, testConfig, map[string]string{
		"dbapps.md":                        "# dbapps\n",
		"deploy_to_databricks_template.py": "print('deploy')\n",
	})
	destDir := filepath.Join(t.TempDir(), "commands")

	withWorkingDir(t, root, func() {
		exitCode := Run([]string{"--quiet", "--dest", destDir})
		if exitCode != 0 {
			t.Fatalf("Run(--quiet) = %d, want 0", exitCode)
		}
	})

	if stdout.Len() != 0 {
		t.Errorf("quiet install produced stdout:\n%s", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("quiet install produced stderr:\n%s", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(destDir, "dbapps.md")); err != nil {
		t.Errorf("dbapps.md not installed: %v", err)
	}
}
