//go:build mage

// Package main contains Mage build targets for typst-report developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "typst-report"
	cmdPkg  = "./cmd/typst-report"

	defaultGenPath = "./typst_gen/"
)

// projectDirs lists the working directories a report run expects.
var projectDirs = []string{
	"template",
	"dist/pandoc",
}

// Init creates the project directory structure.
func Init() error {
	for _, dir := range projectDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the CLI binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	ldflags := "-X main.version=" + buildVersion()
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the Go unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Generator builds typst_gen in release mode from TYPST_GEN_PATH (default ./typst_gen/).
func Generator() error {
	genPath := os.Getenv("TYPST_GEN_PATH")
	if genPath == "" {
		genPath = defaultGenPath
	}
	manifest := filepath.Join(genPath, "Cargo.toml")
	if err := sh.RunV("cargo", "build", "--release", "--manifest-path", manifest); err != nil {
		return fmt.Errorf("cargo build: %w", err)
	}
	return nil
}

// All builds the CLI and the generator.
func All() {
	mg.Deps(Build, Generator)
}

// buildVersion returns the git description of HEAD, or "dev" outside a checkout.
func buildVersion() string {
	v, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || v == "" {
		return "dev"
	}
	return v
}
