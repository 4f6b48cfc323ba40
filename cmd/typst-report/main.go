// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the typst-report CLI. It converts a
// survey report with pandoc, builds the typst_gen generator with cargo, and
// runs the generator on the converted report.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/typst-report/internal/config"
	"github.com/pdiddy/typst-report/internal/logging"
	"github.com/pdiddy/typst-report/internal/pipeline"
	"github.com/pdiddy/typst-report/internal/toolchain"
	"github.com/pdiddy/typst-report/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// app carries the process-wide dependencies shared by all commands.
type app struct {
	v        *viper.Viper
	stdout   io.Writer
	stderr   io.Writer
	getwd    func() (string, error)
	newTools func(types.Config, zerolog.Logger) pipeline.Tools

	cfgFile string
	verbose bool
	log     zerolog.Logger
}

func newApp() *app {
	return &app{
		v:        viper.New(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		getwd:    os.Getwd,
		newTools: processTools,
		log:      zerolog.Nop(),
	}
}

// processTools wires the pipeline to real child processes.
func processTools(cfg types.Config, log zerolog.Logger) pipeline.Tools {
	inv := toolchain.NewProcessInvoker(log)
	return pipeline.Tools{
		Converter: toolchain.NewPandoc(cfg.PandocBin, inv),
		Builder:   toolchain.NewCargo(cfg.CargoBin, inv),
		Generator: toolchain.NewTypstGen(inv),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "typst-report",
		Short: "Build a typeset survey report from a question file and a report document",
		Long: `typst-report converts a report document to typst markup with pandoc, builds
the typst_gen generator with cargo, and runs it with the question file,
the converted report and a template.

Set TYPST_GEN_PATH to point at a generator checkout other than ./typst_gen/.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = logging.New(a.stderr, a.verbose)
			if err := config.Setup(a.v); err != nil {
				return err
			}
			used, err := config.ReadFile(a.v, a.cfgFile)
			if err != nil {
				return err
			}
			if used != "" {
				a.log.Debug().Str("path", used).Msg("using config file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(a.stderr)
			_ = cmd.Help()
			return &pipeline.UsageError{Msg: "a command is required (choose from: " + types.CommandTypst + ")"}
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./typst-report.yaml or ~/.config/typst-report/config.yaml)")
	root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "log each pipeline step to stderr")

	root.AddCommand(newTypstCmd(a))
	return root
}

// run executes the CLI with args and returns the process exit code.
func run(a *app, args []string) int {
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()

	var usageErr *pipeline.UsageError
	var subErr *pipeline.SubprocessError
	switch {
	case err == nil:
	case errors.As(err, &usageErr):
		fmt.Fprintf(a.stdout, "Error: %s\n", usageErr.Msg)
	case errors.As(err, &subErr):
		// The failing tool has already reported on its own streams.
		a.log.Debug().Err(err).Msg("pipeline stopped")
	default:
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return pipeline.ExitCode(err)
}

func main() {
	os.Exit(run(newApp(), os.Args[1:]))
}
