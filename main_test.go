package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-life/model"
)

func missingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.json")
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunSingleGeneration(t *testing.T) {
	code, out, _ := runCLI(t, "-config", missingConfig(t), "00000,01110,00000")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	want := "00100,00100,00100\n0 0 1 0 0 \n0 0 1 0 0 \n0 0 1 0 0 \n\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRunJoinsMultipleArgs(t *testing.T) {
	code, out, _ := runCLI(t, "-config", missingConfig(t), "000", "111", "000")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out, "010,010,010\n") {
		t.Fatalf("expected vertical blinker, got %q", out)
	}
}

func TestRunBanner(t *testing.T) {
	code, out, _ := runCLI(t, "-config", missingConfig(t), "-banner", "1")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	want := "0\n" + model.DefaultBanner + "\n0 \n\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestRunParseError(t *testing.T) {
	code, out, errOut := runCLI(t, "-config", missingConfig(t), "010,01")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	if !strings.Contains(errOut, "Error:") {
		t.Fatalf("expected error on stderr, got %q", errOut)
	}
}

func TestRunBadFlag(t *testing.T) {
	if code, _, _ := runCLI(t, "-nope"); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRunSelfTests(t *testing.T) {
	code, out, _ := runCLI(t, "-config", missingConfig(t))
	if code != 0 {
		t.Fatalf("expected exit 0, got %d: %s", code, out)
	}
	if !strings.HasSuffix(out, "Tests passed\n") {
		t.Fatalf("expected passing summary, got %q", out)
	}
	if n := strings.Count(out, "PASS "); n != len(selfTestCases)+1 {
		t.Fatalf("expected %d passing cases, got %d", len(selfTestCases)+1, n)
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"row_delimiter": "/", "alive_symbol": "#", "dead_symbol": "."}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, out, _ := runCLI(t, "-config", path, ".#./.#./.#.")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.HasPrefix(out, ".../###/...\n") {
		t.Fatalf("expected custom encoding, got %q", out)
	}
	if !strings.Contains(out, "0 0 0 \n1 1 1 \n0 0 0 \n") {
		t.Fatalf("expected digit rendering, got %q", out)
	}
}

func TestRunInvalidConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	code, _, errOut := runCLI(t, "-config", path, "1")
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(errOut, "[LoadConfig]") {
		t.Fatalf("expected LoadConfig error, got %q", errOut)
	}
}

func TestRunEnvBanner(t *testing.T) {
	t.Setenv("LIFE_SHOW_BANNER", "true")
	t.Setenv("LIFE_BANNER", "==")

	code, out, _ := runCLI(t, "-config", missingConfig(t), "1")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != "0\n==\n0 \n\n" {
		t.Fatalf("expected env banner, got %q", out)
	}

	// an explicit flag overrides the environment
	code, out, _ = runCLI(t, "-config", missingConfig(t), "-banner=false", "1")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if out != "0\n0 \n\n" {
		t.Fatalf("expected no banner, got %q", out)
	}
}

func TestRunVerbose(t *testing.T) {
	code, _, errOut := runCLI(t, "-config", missingConfig(t), "-v", "00000,01110,00000,00000,00000")
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(errOut, "gen: 1 | living: 3 | births: 2 | deaths: 2 | survivals: 1") {
		t.Fatalf("expected stats log, got %q", errOut)
	}
}

func TestRunSelfTestsConcurrentlyKeepsOrder(t *testing.T) {
	results := runSelfTests(selfTestCases)
	if len(results) != len(selfTestCases) {
		t.Fatalf("expected %d results, got %d", len(selfTestCases), len(results))
	}
	for i, r := range results {
		if r.name != selfTestCases[i].name {
			t.Fatalf("result %d: expected %q, got %q", i, selfTestCases[i].name, r.name)
		}
		if !r.passed() {
			t.Fatalf("%s: expected %s, got %s (%v)", r.name, r.want, r.got, r.err)
		}
	}
}

func TestReportSelfTestsFailures(t *testing.T) {
	results := []selfTestResult{
		{name: "ok", got: "1", want: "1"},
		{name: "wrong", got: "0", want: "1"},
		{name: "broken", err: errors.New("boom")},
	}

	var buf bytes.Buffer
	if failed := reportSelfTests(&buf, results); failed != 2 {
		t.Fatalf("expected 2 failures, got %d", failed)
	}
	out := buf.String()
	for _, want := range []string{"PASS ok", "FAIL wrong: expected 1, got 0", "FAIL broken: boom", "Tests failed (2 of 3)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestRunSelfTestReportsParseErrors(t *testing.T) {
	r := runSelfTest(selfTestCase{name: "ragged", start: "01,0", want: "00,0"})
	if r.passed() {
		t.Fatal("expected ragged case to fail")
	}
	if !errors.Is(r.err, model.ErrRaggedGrid) {
		t.Fatalf("expected ErrRaggedGrid, got %v", r.err)
	}
}
