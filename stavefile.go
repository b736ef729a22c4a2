//go:build stave

package main

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

const (
	buildStamp  = ".build-stamp"
	coverData   = "coverage.out"
	coverReport = "coverage.html"
	benchOutput = "bench.txt"
)

// Default compiles the library.
var Default = Build

// Aliases are short names for the targets used most.
var Aliases = map[string]any{
	"b":   Build,
	"c":   Check,
	"t":   Test.Default,
	"l":   Lint.Default,
	"fmt": Lint.Fmt,
	"bm":  Bench.Default,
}

type (
	Test  st.Namespace
	Lint  st.Namespace
	CI    st.Namespace
	Bench st.Namespace
)

// Build compiles every package unless nothing changed since the stamp was written.
func Build() error {
	stale, err := target.Dir(buildStamp, "pkg/", "internal/", "go.mod", "go.sum")
	if err != nil {
		return err
	}
	if !stale {
		fmt.Println("gotree: nothing to build")
		return nil
	}

	if err := sh.RunV("go", "build", "./..."); err != nil {
		return err
	}
	return os.WriteFile(buildStamp, nil, 0o600)
}

// Check formats, lints and tests, in that order.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default)
}

// Clean deletes the stamp file, coverage output and saved benchmarks.
func Clean() error {
	for _, artifact := range []string{buildStamp, coverData, coverReport, benchOutput} {
		if err := sh.Rm(artifact); err != nil {
			return err
		}
	}
	return nil
}

// Deps downloads modules and tidies go.mod.
func Deps() error {
	if err := sh.RunV("go", "mod", "download"); err != nil {
		return err
	}
	return sh.RunV("go", "mod", "tidy")
}

// Coverage renders the profile of the last test run as HTML.
func Coverage() error {
	st.Deps(Test.Default)
	return sh.RunV("go", "tool", "cover", "-html="+coverData, "-o", coverReport)
}

// gotestsum runs the test suite through gotestsum with the given output format.
func gotestsum(format string, testFlags ...string) error {
	args := append([]string{"tool", "gotestsum", "-f", format, "--"}, testFlags...)
	return sh.RunV("go", append(args, "./...")...)
}

func raceFlags() []string {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return []string{
		"-race",
		"-p", procs,
		"-parallel", procs,
		"-coverprofile=" + coverData,
		"-covermode=atomic",
	}
}

// Default runs the race-enabled suite and records coverage.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails", raceFlags()...)
}

// Verbose is Default with every test name printed.
func (Test) Verbose() error {
	return gotestsum("standard-verbose", append([]string{"-v"}, raceFlags()...)...)
}

// Short skips the race detector and the long-running tests.
func (Test) Short() error {
	return gotestsum("pkgname", "-short")
}

// Default lints and applies the available fixes.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// CI lints without touching the tree.
func (Lint) CI() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Fmt rewrites the sources with gofmt.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", ".")
}

// FmtCheck fails when gofmt would change a file.
func (Lint) FmtCheck() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return fmt.Errorf("gofmt: %w", err)
	}
	if files := strings.TrimSpace(out); files != "" {
		return fmt.Errorf("not gofmt'ed (fix with 'stave lint:fmt'):\n%s", files)
	}
	return nil
}

// Vet runs go vet over all packages.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Gate is the full pipeline a change must pass before merging.
func (CI) Gate() error {
	st.SerialDeps(
		Lint.FmtCheck,
		Lint.Vet,
		Lint.CI,
		Build,
		Test.Default,
		CI.ModTidy,
		CI.Cross,
	)
	fmt.Println("gotree: gate passed")
	return nil
}

// ModTidy fails when go mod tidy changes go.mod or go.sum.
func (CI) ModTidy() error {
	before, err := moduleFiles()
	if err != nil {
		return err
	}
	if err := sh.RunV("go", "mod", "tidy"); err != nil {
		return err
	}
	after, err := moduleFiles()
	if err != nil {
		return err
	}

	if !bytes.Equal(before, after) {
		return errors.New("go mod tidy changed go.mod or go.sum; commit the result")
	}
	return nil
}

func moduleFiles() ([]byte, error) {
	var all []byte
	for _, name := range []string{"go.mod", "go.sum"} {
		content, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		all = append(all, content...)
	}
	return all, nil
}

// Cross builds for 32 and 64 bit targets, which catches integer width assumptions
// in the literal parsers.
func (CI) Cross() error {
	for _, platform := range []string{
		"linux/amd64",
		"linux/arm64",
		"linux/386",
		"linux/arm",
		"darwin/arm64",
		"windows/amd64",
	} {
		goos, goarch, _ := strings.Cut(platform, "/")
		env := map[string]string{"GOOS": goos, "GOARCH": goarch, "CGO_ENABLED": "0"}

		fmt.Println("gotree: building for", platform)
		if err := sh.RunWith(env, "go", "build", "./..."); err != nil {
			return fmt.Errorf("build %s: %w", platform, err)
		}
	}
	return nil
}

// Default runs every benchmark once.
func (Bench) Default() error {
	return gotestsum("pkgname-and-test-fails", "-run=^$", "-bench=.", "-benchmem")
}

// Save records five benchmark runs in bench.txt for comparison with benchstat.
func (Bench) Save() error {
	out, err := sh.Output("go", "test", "-run=^$", "-bench=.", "-benchmem", "-count=5", "./...")
	if err != nil {
		return err
	}
	if err := os.WriteFile(benchOutput, []byte(out+"\n"), 0o600); err != nil {
		return fmt.Errorf("write %s: %w", benchOutput, err)
	}
	return nil
}
