package toolchain

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// fakeRunner scripts the external binary for tests. Results are keyed by
// the first matching substring of the joined argument vector; unmatched
// invocations succeed with empty output.
type fakeRunner struct {
	calls   [][]string
	results map[string]fakeResult
	version string
}

type fakeResult struct {
	stdout string
	stderr string
	err    error
}

func newFakeRunner(version string) *fakeRunner {
	return &fakeRunner{results: map[string]fakeResult{}, version: version}
}

func (r *fakeRunner) failOn(substr, stderr string) {
	r.results[substr] = fakeResult{stderr: stderr, err: fmt.Errorf("exit status 1")}
}

func (r *fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	call := append([]string{name}, args...)
	r.calls = append(r.calls, call)

	joined := strings.Join(args, " ")
	if joined == "compile --version" {
		return "Compactc version: " + r.version, "", nil
	}
	for substr, res := range r.results {
		if strings.Contains(joined, substr) {
			return res.stdout, res.stderr, res.err
		}
	}
	return "", "", nil
}

func testServices(runner Runner) *Services {
	return &Services{
		Binary: "compact",
		Runner: runner,
		Log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
