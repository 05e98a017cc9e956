package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// resetFlags restores every flag on cmd and its subcommands to its default
// value so state does not leak between Execute calls on the shared rootCmd.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			def := strings.Trim(f.DefValue, "[]")
			var vals []string
			if def != "" {
				vals = strings.Split(def, ",")
			}
			sv.Replace(vals)
		} else {
			f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func resetViper() {
	viper.Reset()
	viper.SetEnvPrefix("HIRELINK")
	viper.AutomaticEnv()
}

// setupDataDir points the CLI at a throwaway data directory.
func setupDataDir(t *testing.T) string {
	t.Helper()
	resetViper()
	dir := t.TempDir()
	viper.Set("data_dir", dir)
	return dir
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags(rootCmd)
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return stdout.String()
}

func writeResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4 test"), 0o644); err != nil {
		t.Fatalf("write resume: %v", err)
	}
	return path
}

func applicationID(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "ID: ") {
			return strings.TrimPrefix(line, "ID: ")
		}
	}
	t.Fatalf("no application id in output: %s", output)
	return ""
}

func submitValidApplication(t *testing.T) string {
	t.Helper()
	output := execute(t, "apply", "1",
		"--name", "Jane Doe",
		"--email", "jane@x.com",
		"--phone", "555-123-4567",
		"--years", "3",
		"--skills", "go,sql",
		"--resume", writeResume(t),
	)
	if !strings.Contains(output, "Application submitted") {
		t.Fatalf("expected successful submission, got: %s", output)
	}
	return applicationID(t, output)
}

func TestApplyCommand_Success(t *testing.T) {
	setupDataDir(t)

	id := submitValidApplication(t)
	if !strings.HasPrefix(id, "APP_") {
		t.Errorf("unexpected id format: %s", id)
	}

	output := execute(t, "show", id)
	if !strings.Contains(output, "Jane Doe") {
		t.Errorf("expected candidate in show output, got: %s", output)
	}
	if !strings.Contains(output, "Stage:      Applied") {
		t.Errorf("expected Applied stage, got: %s", output)
	}
}

func TestApplyCommand_PersonalStepValidation(t *testing.T) {
	setupDataDir(t)

	output := execute(t, "apply", "1",
		"--name", "",
		"--email", "a@b.com",
		"--phone", "5551234567",
		"--resume", writeResume(t),
	)

	if !strings.Contains(output, "Validation failed at the personal information step") {
		t.Fatalf("expected personal step failure, got: %s", output)
	}
	if !strings.Contains(output, "Full name is required") {
		t.Errorf("expected name error, got: %s", output)
	}
	if strings.Contains(output, "Application submitted") {
		t.Error("invalid input must not submit")
	}
}

func TestApplyCommand_ExperienceStepValidation(t *testing.T) {
	setupDataDir(t)

	output := execute(t, "apply", "1",
		"--name", "Jane Doe",
		"--email", "jane@x.com",
		"--phone", "555-123-4567",
		"--skills", "",
		"--resume", writeResume(t),
	)

	if !strings.Contains(output, "Validation failed at the experience step") {
		t.Fatalf("expected experience step failure, got: %s", output)
	}
	if !strings.Contains(output, "Please add at least one skill") {
		t.Errorf("expected skills error, got: %s", output)
	}
}

func TestApplyCommand_MissingResume(t *testing.T) {
	setupDataDir(t)

	output := execute(t, "apply", "1",
		"--name", "Jane Doe",
		"--email", "jane@x.com",
		"--phone", "555-123-4567",
		"--skills", "go",
		"--resume", "",
	)

	if !strings.Contains(output, "Resume file is required") {
		t.Errorf("expected resume error, got: %s", output)
	}
}

func TestApplyCommand_UnknownJob(t *testing.T) {
	setupDataDir(t)

	output := execute(t, "apply", "999",
		"--name", "Jane Doe",
		"--email", "jane@x.com",
		"--phone", "555-123-4567",
		"--skills", "go",
		"--resume", writeResume(t),
	)

	if !strings.Contains(output, "job not found") {
		t.Errorf("expected job-not-found error, got: %s", output)
	}
}
