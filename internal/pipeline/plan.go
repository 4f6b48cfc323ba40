// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/typst-report/internal/toolchain"
	"github.com/pdiddy/typst-report/pkg/types"
)

// PlanStep is one external program the pipeline would run.
type PlanStep struct {
	Step Step     `yaml:"step"`
	Argv []string `yaml:"argv"`
}

// Plan describes a pipeline run without performing it.
type Plan struct {
	Mkdir string     `yaml:"mkdir"`
	Steps []PlanStep `yaml:"steps"`
}

// NewPlan returns the directory and command lines Run would use for req.
func NewPlan(req types.Request, cfg types.Config) Plan {
	pandocBin := cfg.PandocBin
	if pandocBin == "" {
		pandocBin = toolchain.DefaultPandocBin
	}
	cargoBin := cfg.CargoBin
	if cargoBin == "" {
		cargoBin = toolchain.DefaultCargoBin
	}
	intermediate := IntermediatePath(req.OutputDir)

	return Plan{
		Mkdir: PandocDir(req.OutputDir),
		Steps: []PlanStep{
			{Step: StepConvert, Argv: toolchain.PandocArgs(pandocBin, req.ReportPath, intermediate)},
			{Step: StepBuild, Argv: toolchain.CargoArgs(cargoBin, ManifestPath(cfg))},
			{Step: StepGenerate, Argv: toolchain.TypstGenArgs(BinaryPath(cfg), toolchain.GenerateArgs{
				QuestionPath: req.QuestionPath,
				ReportPath:   intermediate,
				TemplatePath: req.TemplatePath,
			})},
		},
	}
}

// YAML renders the plan as a YAML document.
func (p Plan) YAML() ([]byte, error) {
	out, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling plan: %w", err)
	}
	return out, nil
}
