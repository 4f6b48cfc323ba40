package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typst-report/internal/config"
	"github.com/pdiddy/typst-report/internal/pipeline"
	"github.com/pdiddy/typst-report/pkg/types"
)

const defaultOutputDir = "dist"

func newTypstCmd(a *app) *cobra.Command {
	var (
		req    types.Request
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   types.CommandTypst,
		Short: "Convert a report and render it with the typst generator",
		Long: `Typst converts the report to <output-dir>/pandoc/report.typ with pandoc,
builds the generator in release mode, then runs it with the question file,
the converted report and the template.

A failing conversion or build stops the run and its exit code is returned.
The generator's own exit status is passed through to its output only.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Command = types.CommandTypst
			return runTypst(a, req, dryRun)
		},
	}

	cmd.Flags().StringVar(&req.QuestionPath, "question-path", "", "path to the survey question file (required)")
	cmd.Flags().StringVar(&req.ReportPath, "report-path", "", "path to the report document to convert (required)")
	cmd.Flags().StringVarP(&req.OutputDir, "output-dir", "o", defaultOutputDir, "base directory for intermediate output")
	cmd.Flags().StringVar(&req.TemplatePath, "template-path", "", "typst template (default <cwd>/template/template.typ)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the planned commands as YAML without running them")

	return cmd
}

func runTypst(a *app, req types.Request, dryRun bool) error {
	if err := pipeline.Validate(req); err != nil {
		return err
	}
	if req.TemplatePath == "" {
		tmpl, err := config.DefaultTemplatePath(a.getwd)
		if err != nil {
			return err
		}
		req.TemplatePath = tmpl
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	if dryRun {
		out, err := pipeline.NewPlan(req, cfg).YAML()
		if err != nil {
			return err
		}
		if _, err := a.stdout.Write(out); err != nil {
			return fmt.Errorf("writing plan: %w", err)
		}
		return nil
	}

	return pipeline.New(cfg, a.newTools(cfg, a.log), a.log).Run(req)
}
