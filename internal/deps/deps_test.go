package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckBinaries(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, "present")
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(present, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	reqs := []Requirement{
		{Name: "Present", Command: present},
		{Name: "Missing", Command: "clearly-not-present-binary"},
	}

	results := CheckBinaries(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}

	if results[1].Available {
		t.Fatalf("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatalf("expected detail message for missing binary")
	}

	if results[0].Detail != "" {
		t.Fatalf("unexpected detail for available dependency: %s", results[0].Detail)
	}
}

func TestCheckImageCmdExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	binary := filepath.Join(tmp, executableName("CoronaImageCmd"))
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(binary, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	status := CheckImageCmd(binary)
	if !status.Available {
		t.Fatalf("expected explicit path to resolve, got detail %q", status.Detail)
	}
	if status.Command != binary {
		t.Fatalf("expected command %q, got %q", binary, status.Command)
	}
}

func TestCheckImageCmdPathLookup(t *testing.T) {
	tmp := t.TempDir()
	binary := filepath.Join(tmp, executableName("CoronaImageCmd"))
	script := []byte("#!/bin/sh\nexit 0\n")
	if err := os.WriteFile(binary, script, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", tmp)

	status := CheckImageCmd("CoronaImageCmd")
	if !status.Available {
		t.Fatalf("expected PATH lookup to succeed, got detail %q", status.Detail)
	}
	if status.Command != binary {
		t.Fatalf("expected resolved command %q, got %q", binary, status.Command)
	}
}

func TestCheckImageCmdMissing(t *testing.T) {
	t.Setenv("PATH", "")
	status := CheckImageCmd("CoronaImageCmd")
	if status.Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if status.Detail == "" {
		t.Fatal("expected detail message when binary is missing")
	}
}

func TestCheckImageCmdUnconfigured(t *testing.T) {
	status := CheckImageCmd("   ")
	if status.Available {
		t.Fatal("expected unconfigured command to be unavailable")
	}
	if status.Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", status.Detail)
	}
}

func TestCheckImageCmdNonExecutablePath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits not meaningful on windows")
	}
	tmp := t.TempDir()
	binary := filepath.Join(tmp, "CoronaImageCmd")
	if err := os.WriteFile(binary, []byte("data"), 0o644); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	status := CheckImageCmd(binary)
	if status.Available {
		t.Fatal("expected non-executable file to be rejected")
	}
}

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}
