package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-version"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.HasPrefix(stdout.String(), "TermRacer dev\n") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunHelpFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-h"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(stderr.String(), "Usage: termracer") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Errorf("exit code = %d, want 2", code)
	}
	if code := run([]string{"-words", "-4"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Errorf("exit code for negative words = %d, want 2", code)
	}
}

func TestRunMissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "absent.toml")

	if code := run([]string{"-config", missing}, strings.NewReader(""), &stdout, &stderr); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "failed to load config") {
		t.Errorf("stderr = %q", stderr.String())
	}
}

func TestRunQuit(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := writeConfig(t, "[game]\nwords = 10\n")
	logFile := filepath.Join(t.TempDir(), "race.log")

	args := []string{"-config", cfg, "-log-file", logFile, "-log-level", "debug"}
	if code := run(args, strings.NewReader("help\nquit\n"), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code = %d, want 0 (stderr %q)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Quit TermRacer.") {
		t.Errorf("stdout = %q, want help text", stdout.String())
	}

	logs, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(logs), "termracer dev starting") {
		t.Errorf("log = %q", logs)
	}
}

func TestConfigOptionsOnlyExplicitFlags(t *testing.T) {
	var stderr bytes.Buffer
	f, err := parseFlags([]string{"-format", "json"}, &stderr)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !f.set["format"] || f.set["log-level"] {
		t.Errorf("set = %v, want only format", f.set)
	}
	// The path option plus the format override.
	if got := len(configOptions(f)); got != 2 {
		t.Errorf("configOptions = %d options, want 2", got)
	}
}
