// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"path/filepath"

	"github.com/pdiddy/typst-report/internal/toolchain"
	"github.com/pdiddy/typst-report/pkg/types"
)

const (
	// pandocDir is the subdirectory under the output directory for converter output.
	pandocDir = "pandoc"
	// intermediateName is the converted report consumed by the generator.
	intermediateName = "report.typ"
	// manifestName is the build manifest at the root of the generator sources.
	manifestName = "Cargo.toml"
)

// PandocDir returns <outputDir>/pandoc.
func PandocDir(outputDir string) string {
	return filepath.Join(outputDir, pandocDir)
}

// IntermediatePath returns <outputDir>/pandoc/report.typ.
func IntermediatePath(outputDir string) string {
	return filepath.Join(outputDir, pandocDir, intermediateName)
}

// ManifestPath returns the generator's Cargo.toml under cfg.GenPath.
func ManifestPath(cfg types.Config) string {
	return filepath.Join(cfg.GenPath, manifestName)
}

// BinaryPath returns the release build of the generator under cfg.GenPath.
func BinaryPath(cfg types.Config) string {
	name := cfg.GenBinary
	if name == "" {
		name = toolchain.DefaultGenBinary
	}
	return filepath.Join(cfg.GenPath, "target", "release", name)
}
