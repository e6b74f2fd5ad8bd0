//go:build mage

// Package main provides build targets for the quick project using Mage.
//
// Usage:
//
//	mage build      Compile the quick binary to bin/
//	mage test       Run all tests
//	mage testUnit   Run tests without the race detector or cache
//	mage cover      Run tests with a coverage profile in bin/
//	mage lint       Run go vet and golangci-lint
//	mage clean      Remove build artifacts
//	mage install    Install quick to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "quick"
	binaryDir  = "bin"
	cmdDir     = "./cmd/quick"
	coverFile  = "cover.out"
)

// Build compiles the quick binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests with the race detector.
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// TestUnit runs the library and internal packages only, skipping the cache.
func TestUnit() error {
	return sh.RunV("go", "test", "-count=1", "./pkg/...", "./internal/...")
}

// Cover writes a coverage profile to bin/ and prints the per-function summary.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, coverFile)
	if err := sh.RunV("go", "test", "-coverprofile="+profile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+profile)
}

// Lint runs go vet, then golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	if err := sh.Copy(dst, src); err != nil {
		return err
	}
	fmt.Println("installed", dst)
	return nil
}
