package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/archer884/milkrun"
)

func runArgs(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Setenv(milkrun.ConfigEnv, "")
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunPeriapsis(t *testing.T) {
	for _, args := range [][]string{
		{"-a", "keosynchronous", "-p", "6", "-r", "2:3"},
		{"--altitude", "2863330", "--period", "6", "--ratio", "2:3", "--body", "kerbin"},
		{"-a", "2863330x2863330", "-p", "6", "-r", "2:3", "-b", "600000"},
	} {
		code, stdout, stderr := runArgs(t, args...)
		if code != 0 {
			t.Fatalf("%v: exit %d: %s", args, code, stderr)
		}
		if stdout != "1222700.90\n" {
			t.Fatalf("%v: printed %q", args, stdout)
		}
	}
}

func TestRunApoapsis(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-a", "keosynchronous", "-p", "6", "-r", "3:2")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if stdout != "5013162.29\n" {
		t.Fatalf("printed %q", stdout)
	}
}

func TestRunImpossible(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-a", "keosynchronous", "-p", "6", "-r", "1:3")
	if code == 0 || stdout != "" {
		t.Fatalf("exit %d, printed %q", code, stdout)
	}
	if !strings.HasPrefix(stderr, "Impossible: ") {
		t.Fatalf("stderr %q", stderr)
	}
}

func TestRunErrors(t *testing.T) {
	code, _, stderr := runArgs(t, "-a", "keosynchronous", "-p", "6", "-r", "2:3", "-b", "Mars")
	if code != 1 || strings.TrimSpace(stderr) != "body not found: Mars" {
		t.Fatalf("exit %d: %q", code, stderr)
	}
	code, _, stderr = runArgs(t, "-a", "keosynchronous", "-p", "6", "-r", "1:2:3")
	if code != 1 || !strings.Contains(stderr, "too many parts") {
		t.Fatalf("exit %d: %q", code, stderr)
	}
	code, _, _ = runArgs(t, "-a", "keosynchronous", "-p", "6")
	if code != 2 {
		t.Fatalf("missing ratio: exit %d", code)
	}
	code, _, _ = runArgs(t, "-unknown")
	if code != 2 {
		t.Fatalf("unknown flag: exit %d", code)
	}
}

func TestRunVerbose(t *testing.T) {
	code, stdout, stderr := runArgs(t, "-a", "keosynchronous", "-p", "6", "-r", "4:6", "-verbose")
	if code != 0 || stdout != "1222700.90\n" {
		t.Fatalf("exit %d, printed %q", code, stdout)
	}
	for _, exp := range []string{"subsys=param", "reduced=2:3", "subsys=astro", "element=periapsis"} {
		if !strings.Contains(stderr, exp) {
			t.Fatalf("%s not logged:\n%s", exp, stderr)
		}
	}
}
