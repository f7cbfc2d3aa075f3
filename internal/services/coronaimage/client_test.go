package coronaimage_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"cxrextract/internal/logging"
	"cxrextract/internal/services"
	"cxrextract/internal/services/coronaimage"
)

type stubExecutor struct {
	binary string
	args   []string
	stderr string
	err    error
	calls  int
}

func (s *stubExecutor) Run(_ context.Context, binary string, args []string) (string, error) {
	s.calls++
	s.binary = binary
	s.args = args
	return s.stderr, s.err
}

func newClient(t *testing.T, exec *stubExecutor) *coronaimage.CLI {
	t.Helper()
	client, err := coronaimage.New("CoronaImageCmd", logging.NewNop(), coronaimage.WithExecutor(exec))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := coronaimage.New("  ", logging.NewNop()); err == nil {
		t.Fatal("expected error for blank binary")
	}
}

func TestExtractBuildsBatchArguments(t *testing.T) {
	runner := &stubExecutor{}
	client := newClient(t, runner)

	pairs := []coronaimage.Pair{
		{Input: "/in/shot.0001.cxr", Output: "/out/shot_Reflect.0001.exr"},
		{Input: "/in/shot.0002.cxr", Output: "/out/shot_Reflect.0002.exr"},
	}
	if err := client.Extract(context.Background(), "Reflect", pairs); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if runner.binary != "CoronaImageCmd" {
		t.Fatalf("unexpected binary: %q", runner.binary)
	}
	want := []string{
		"--batch", "-e", "Reflect",
		"/in/shot.0001.cxr", "/out/shot_Reflect.0001.exr",
		"/in/shot.0002.cxr", "/out/shot_Reflect.0002.exr",
	}
	if len(runner.args) != len(want) {
		t.Fatalf("expected %d args, got %v", len(want), runner.args)
	}
	for i, arg := range want {
		if runner.args[i] != arg {
			t.Fatalf("arg %d: expected %q, got %q", i, arg, runner.args[i])
		}
	}
}

func TestExtractWildcardElement(t *testing.T) {
	runner := &stubExecutor{}
	client := newClient(t, runner)

	pairs := []coronaimage.Pair{{Input: "in.cxr", Output: "out.exr"}}
	if err := client.Extract(context.Background(), coronaimage.WildcardElement, pairs); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if runner.args[2] != "*" {
		t.Fatalf("expected wildcard element, got %q", runner.args[2])
	}
}

func TestExtractValidatesInput(t *testing.T) {
	runner := &stubExecutor{}
	client := newClient(t, runner)

	err := client.Extract(context.Background(), "", []coronaimage.Pair{{Input: "a", Output: "b"}})
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty element, got %v", err)
	}
	err = client.Extract(context.Background(), "Reflect", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty pairs, got %v", err)
	}
	if runner.calls != 0 {
		t.Fatalf("executor should not run on invalid input, ran %d times", runner.calls)
	}
}

func TestExtractClassifiesMissingBinary(t *testing.T) {
	runner := &stubExecutor{err: &exec.Error{Name: "CoronaImageCmd", Err: exec.ErrNotFound}}
	client := newClient(t, runner)

	err := client.Extract(context.Background(), "Reflect", []coronaimage.Pair{{Input: "a", Output: "b"}})
	if !errors.Is(err, services.ErrToolNotFound) {
		t.Fatalf("expected tool-not-found error, got %v", err)
	}
}

func TestExtractClassifiesCommandFailure(t *testing.T) {
	runner := &stubExecutor{stderr: "cannot read input", err: errors.New("exit status 1")}
	client := newClient(t, runner)

	err := client.Extract(context.Background(), "Reflect", []coronaimage.Pair{{Input: "a", Output: "b"}})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external-tool error, got %v", err)
	}
	if errors.Is(err, services.ErrToolNotFound) {
		t.Fatalf("failure must not be classified as missing binary: %v", err)
	}
}
