package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/standings-overlay/internal/output"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
	"github.com/preston-bernstein/standings-overlay/internal/testutil"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestExtractPrintsResultJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte(testutil.StandingsPage(testutil.DefaultRows()...)), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	out, err := runCmd(t, "extract", path, "--team", "CV Gamma", "--top", "2")
	if err != nil {
		t.Fatalf("extract failed: %v\n%s", err, out)
	}

	var res standings.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if res.Outcome != standings.OutcomeOK {
		t.Fatalf("expected ok outcome, got %s", res.Outcome)
	}
	if len(res.Top) != 2 {
		t.Fatalf("expected 2 top rows, got %d", len(res.Top))
	}
	if res.TeamLine() != "3 - CV Gamma (12)" {
		t.Fatalf("unexpected team line %q", res.TeamLine())
	}
}

func TestExtractCompactOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(path, []byte("<p>no tables here</p>"), 0o644); err != nil {
		t.Fatalf("write page: %v", err)
	}

	out, err := runCmd(t, "extract", path, "--pretty=false")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Fatalf("expected single-line json, got %q", out)
	}
	if !strings.Contains(out, `"outcome":"no_table"`) {
		t.Fatalf("expected no_table outcome, got %s", out)
	}
}

func TestExtractMissingFile(t *testing.T) {
	if _, err := runCmd(t, "extract", filepath.Join(t.TempDir(), "missing.html")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExtractRequiresOneArg(t *testing.T) {
	if _, err := runCmd(t, "extract"); err == nil {
		t.Fatal("expected error without a file argument")
	}
}

func TestOnceWritesArtifactsFromFixture(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SOURCE", "fixture")
	t.Setenv("OUTPUT_DIR", dir)
	t.Setenv("TEAM_NAME", "CV Sant Just")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	if out, err := runCmd(t, "--once"); err != nil {
		t.Fatalf("once failed: %v\n%s", err, out)
	}

	raw, err := os.ReadFile(filepath.Join(dir, output.TeamFile))
	if err != nil {
		t.Fatalf("read team file: %v", err)
	}
	if !strings.Contains(string(raw), "CV Sant Just") {
		t.Fatalf("team file missing team: %q", raw)
	}
	if _, err := os.Stat(filepath.Join(dir, output.OverlayFile)); err != nil {
		t.Fatalf("overlay not written: %v", err)
	}
}

func TestOnceRejectsMissingEnvFile(t *testing.T) {
	if _, err := runCmd(t, "--once", "--env-file", filepath.Join(t.TempDir(), "nope.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}
