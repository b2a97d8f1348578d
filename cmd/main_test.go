package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

const (
	runMainEnv = "VERIFICATION_KEYS_RUN_MAIN"
	argsEnv    = "VERIFICATION_KEYS_ARGS"
)

// TestMain lets the test binary stand in for the command when re-executed.
func TestMain(m *testing.M) {
	if os.Getenv(runMainEnv) == "1" {
		os.Args = []string{"verification-keys"}
		if args := os.Getenv(argsEnv); args != "" {
			os.Args = append(os.Args, strings.Split(args, "\n")...)
		}
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func runCommand(t *testing.T, args ...string) (stdout string, exitCode int) {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^$")
	cmd.Env = append(os.Environ(), runMainEnv+"=1", argsEnv+"="+strings.Join(args, "\n"))
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return out.String(), 0
	case errors.As(err, &exitErr):
		return out.String(), exitErr.ExitCode()
	default:
		t.Fatalf("running command: %v\n%s", err, errOut.String())
		return "", -1
	}
}

func TestExitCodes(T *testing.T) {
	dir := T.TempDir()
	data := []struct {
		args      []string
		exitCode  int
		confirmed bool
		usage     bool
	}{
		{[]string{"-n", "3", "-o", filepath.Join(dir, "keys.txt")}, 0, true, false},
		{[]string{"-n", "3", "-o", filepath.Join(dir, "missing", "keys.txt")}, 1, false, false},
		{[]string{"-g", "nope", "-o", filepath.Join(dir, "other.txt")}, 2, false, true},
		{[]string{"-n", "0"}, 2, false, true},
		{[]string{"-a", "AB", "-l", "2", "-n", "5"}, 2, false, true},
	}

	for idx, td := range data {
		T.Run(fmt.Sprint(idx), func(t *testing.T) {
			stdout, code := runCommand(t, td.args...)
			if code != td.exitCode {
				t.Errorf("got exit code %d, want %d\n%s", code, td.exitCode, stdout)
			}
			if got := strings.Contains(stdout, "Keys saved to"); got != td.confirmed {
				t.Errorf("confirmation printed: got %v, want %v\n%s", got, td.confirmed, stdout)
			}
			if got := strings.HasPrefix(stdout, "usage:"); got != td.usage {
				t.Errorf("usage printed: got %v, want %v\n%s", got, td.usage, stdout)
			}
		})
	}
}

func TestDefaultRunWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "verification-keys.txt")
	stdout, code := runCommand(t, "-o", path)
	if code != 0 {
		t.Fatalf("got exit code %d, want 0", code)
	}
	file, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, string(file)) {
		t.Error("stdout should start with the saved document")
	}
	if !strings.HasPrefix(string(file), "# ShoppieApp Verification Keys\n# Generated 500 unique 17-digit activation keys\n\n") {
		t.Errorf("unexpected header:\n%s", strings.SplitN(string(file), "\n", 4)[:3])
	}
}
