package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/rileylov/dropzone/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stderr, LogInfo)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCheckDefault(t *testing.T) {
	out, _, err := execute(t, "check")
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	for _, want := range []string{
		"Sort the shelves",
		"board:   64x16, 2 zones, 10 tiles",
		"start=move success=stay failure=return",
		"rules:   sorter",
		"zone:    Citrus Fruits (takes citrus, holds 5)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckWithRules(t *testing.T) {
	script := writeFile(t, "rules.lua", `
function evaluate_drop(tile, zone) return true end
function evaluate_game(board) return false end
`)
	out, _, err := execute(t, "check", "--rules", script)
	if err != nil {
		t.Fatalf("check error = %v", err)
	}
	if !strings.Contains(out, "rules:   "+script) {
		t.Errorf("output does not name the script:\n%s", out)
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name string
		args func(t *testing.T) []string
		want string
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{"check", "--config", filepath.Join(t.TempDir(), "none.toml")}
			},
			want: "load",
		},
		{
			name: "unknown key",
			args: func(t *testing.T) []string {
				return []string{"check", "--config", writeFile(t, "p.toml", "colour = \"red\"\n")}
			},
			want: "unknown keys",
		},
		{
			name: "bad behavior",
			args: func(t *testing.T) []string {
				return []string{"check", "--config", writeFile(t, "p.toml", "[drag]\non_failure = \"bounce\"\n")}
			},
			want: "bounce",
		},
		{
			name: "script without hooks",
			args: func(t *testing.T) []string {
				return []string{"check", "--rules", writeFile(t, "r.lua", "x = 1\n")}
			},
			want: "evaluate_drop",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args(t)...)
			if err == nil {
				t.Fatal("check succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestInitRoundTrips(t *testing.T) {
	out, _, err := execute(t, "init")
	if err != nil {
		t.Fatalf("init error = %v", err)
	}
	var cfg config.Config
	if _, err := toml.Decode(out, &cfg); err != nil {
		t.Fatalf("init output does not decode: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("init output is not a valid puzzle: %v", err)
	}

	path := writeFile(t, "puzzle.toml", out)
	if _, _, err := execute(t, "check", "--config", path); err != nil {
		t.Errorf("check on init output: %v", err)
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropzone.log")
	c := New(&bytes.Buffer{}, LogDebug)
	root := c.RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--log-file", path, "check"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "puzzle ok") {
		t.Errorf("log file = %q, want the debug line", data)
	}
}

func TestSetVersion(t *testing.T) {
	SetVersion("1.0.0", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "none", "unknown") })

	if version != "1.0.0" || commit != "abc123" || date != "2026-01-01" {
		t.Errorf("got %q %q %q", version, commit, date)
	}
}
