// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences report generation: convert the report with
// pandoc, build the generator, then run the generator on the converted
// report. Every step blocks until its process exits; a failed step stops
// the pipeline.
package pipeline

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/pdiddy/typst-report/internal/toolchain"
	"github.com/pdiddy/typst-report/pkg/types"
)

// Converter turns a report source into the intermediate typst file.
type Converter interface {
	Convert(input, output string) (int, error)
}

// Builder compiles the generator from its manifest in release mode.
type Builder interface {
	Build(manifestPath string) (int, error)
}

// Generator runs a built generator binary.
type Generator interface {
	Generate(binary string, args toolchain.GenerateArgs) (int, error)
}

// Tools groups the external programs the pipeline drives.
type Tools struct {
	Converter Converter
	Builder   Builder
	Generator Generator
}

// Orchestrator runs the pipeline with a fixed configuration and toolset.
type Orchestrator struct {
	cfg   types.Config
	tools Tools
	log   zerolog.Logger
}

// New returns an Orchestrator. cfg is used as given; callers resolve
// defaults and environment overrides before constructing it.
func New(cfg types.Config, tools Tools, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{cfg: cfg, tools: tools, log: log}
}

// Validate checks that req carries both required paths.
func Validate(req types.Request) error {
	if req.QuestionPath == "" {
		return &UsageError{Msg: "question-path is required"}
	}
	if req.ReportPath == "" {
		return &UsageError{Msg: "report-path is required"}
	}
	return nil
}

// Run executes the pipeline for req. It returns a *UsageError for missing
// inputs and a *SubprocessError when conversion or build exits non-zero.
// The generator's exit status is not inspected.
func (o *Orchestrator) Run(req types.Request) error {
	if err := Validate(req); err != nil {
		return err
	}

	outDir := PandocDir(req.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	intermediate := IntermediatePath(req.OutputDir)
	o.log.Debug().Str("step", string(StepConvert)).Str("input", req.ReportPath).Str("output", intermediate).Msg("converting report")
	code, err := o.tools.Converter.Convert(req.ReportPath, intermediate)
	if err != nil {
		return fmt.Errorf("%s step: %w", StepConvert, err)
	}
	if code != 0 {
		return &SubprocessError{Step: StepConvert, Code: code}
	}

	manifest := ManifestPath(o.cfg)
	o.log.Debug().Str("step", string(StepBuild)).Str("manifest", manifest).Msg("building generator")
	code, err = o.tools.Builder.Build(manifest)
	if err != nil {
		return fmt.Errorf("%s step: %w", StepBuild, err)
	}
	if code != 0 {
		return &SubprocessError{Step: StepBuild, Code: code}
	}

	binary := BinaryPath(o.cfg)
	o.log.Debug().Str("step", string(StepGenerate)).Str("binary", binary).Msg("generating output")
	code, err = o.tools.Generator.Generate(binary, toolchain.GenerateArgs{
		QuestionPath: req.QuestionPath,
		ReportPath:   intermediate,
		TemplatePath: req.TemplatePath,
	})
	if err != nil {
		return fmt.Errorf("%s step: %w", StepGenerate, err)
	}
	// The generator reports its own failures; its status does not change ours.
	o.log.Debug().Str("step", string(StepGenerate)).Int("exit_code", code).Msg("generator finished")
	return nil
}
