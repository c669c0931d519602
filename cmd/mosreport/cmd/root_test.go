package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mosreport/internal/config"
)

func setupTestRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	entities := map[string][]string{
		"ACME":      {"01-data", "02-screen", "03-management", "04-moat", "05-mos"},
		"NOTASTOCK": {"01-data", "02-screen", "03-management", "05-mos"},
	}
	snapshots := map[string]string{
		"01-data":       `{"Price": 101.5}`,
		"02-screen":     `{"rating": 7}`,
		"03-management": `{"score": 5}`,
		"04-moat":       `{"score": 3}`,
		"05-mos":        `{"dcfAnalysis": {"buyPrice": "90"}, "warrenBuffettAnalysis": {"buyPrice": "85"}}`,
	}

	for name, categories := range entities {
		for _, c := range categories {
			dir := filepath.Join(root, "Evaluation", name, c)
			if err := os.MkdirAll(dir, 0755); err != nil {
				t.Fatalf("failed to create %s: %v", dir, err)
			}
			if err := os.WriteFile(filepath.Join(dir, "2024-02-01.json"), []byte(snapshots[c]), 0644); err != nil {
				t.Fatalf("failed to write snapshot: %v", err)
			}
		}
	}
	return root
}

// run executes the CLI and returns what it wrote to stdout and stderr
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvRootPath, "")
	t.Setenv(config.EnvLogLevel, "")

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	defer resetFlags(rootCmd)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

// resetFlags restores flag defaults so one run does not leak into the next
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

const wantReport = "Symbol, currentPrice, 02-screen, 03-management, 04-moat, total-score, 05-mos-ourBuy, 05-mos-warren-buy\n" +
	"ACME, 101.5, 7, 5, 3, 15, 90, 85\n"

func TestReportCommand(t *testing.T) {
	root := setupTestRoot(t)

	out, _, err := run(t, "report", "--root", root, "--format", "csv")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if out != wantReport {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out, wantReport)
	}
}

func TestReportCommand_DebugLogsStayOffStdout(t *testing.T) {
	root := setupTestRoot(t)

	out, errOut, err := run(t, "--root", root, "--log-level", "debug")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}

	if out != wantReport {
		t.Errorf("stdout must carry only the report\ngot:\n%s\nwant:\n%s", out, wantReport)
	}
	if !strings.Contains(errOut, "level=debug") {
		t.Errorf("expected debug logs on stderr, got %q", errOut)
	}
	if !strings.Contains(errOut, "entity=NOTASTOCK") {
		t.Errorf("expected skipped folder to be logged, got %q", errOut)
	}
}

func TestReportCommand_CopyNeverFailsTheRun(t *testing.T) {
	root := setupTestRoot(t)
	// No clipboard utilities on PATH
	t.Setenv("PATH", t.TempDir())
	t.Setenv("WAYLAND_DISPLAY", "")

	out, errOut, err := run(t, "report", "--root", root, "--copy")
	if err != nil {
		t.Fatalf("report --copy failed: %v", err)
	}
	if out != wantReport {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", out, wantReport)
	}
	if !strings.Contains(errOut, "could not copy report to clipboard") {
		t.Errorf("expected clipboard failure to be logged, got %q", errOut)
	}
}

func TestReportCommand_MissingRootPrintsNothing(t *testing.T) {
	out, _, err := run(t, "report", "--root", t.TempDir(), "--format", "csv")
	if err == nil {
		t.Fatal("expected error for missing Evaluation folder")
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestListCommand(t *testing.T) {
	root := setupTestRoot(t)

	out, _, err := run(t, "list", "--root", root)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if out != "ACME\n" {
		t.Errorf("expected only ACME, got %q", out)
	}
}

func TestShowCommand_UnknownEntity(t *testing.T) {
	root := setupTestRoot(t)

	if _, _, err := run(t, "show", "NOTASTOCK", "--root", root); err == nil {
		t.Error("expected error for non-qualifying entity")
	}
}
